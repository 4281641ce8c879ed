package model

import (
	"time"
)

type Catalog struct {
	CatalogsID int        `json:"catalogsId"`
	Title      string     `json:"title"`
	Author     string     `json:"author"`
	Publisher  string     `json:"publisher"`
	YearPublic int        `json:"yearPublic"`
	Price      string     `json:"price"`
	Categories []Category `json:"categories,omitempty"`
}

type Category struct {
	CategoryID   int    `json:"categoryId"`
	CategoryName string `json:"categoryName"`
}

type User struct {
	UserID int    `json:"userId"`
	Login  string `json:"login"`
	Email  string `json:"email"`
	// Password is only ever sent to the API, never rendered.
	Password string `json:"password,omitempty"`
	RoleID   *int   `json:"roleId"`
}

type Role struct {
	RoleID   int    `json:"roleId"`
	RoleName string `json:"roleName"`
}

type Order struct {
	OrdersID   int   `json:"ordersId"`
	UsersID    *int  `json:"usersId"`
	CatalogsID *int  `json:"catalogsId"`
	TotalSum   Money `json:"totalSum"`
}

type PosOrder struct {
	PosOrderID int      `json:"posOrderId"`
	OrderID    *int     `json:"orderId"`
	ProductID  *int     `json:"productId"`
	Count      int      `json:"count"`
	Product    *Catalog `json:"product,omitempty"`
}

type Review struct {
	ReviewID   int       `json:"reviewId"`
	ProductID  *int      `json:"productId"`
	UserID     *int      `json:"userId"`
	Rating     int       `json:"rating"`
	ReviewText string    `json:"reviewText"`
	CreatedAt  time.Time `json:"createdAt"`
}

type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Login    string `json:"login"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token string `json:"token"`
}

type AddToCartRequest struct {
	CatalogID int `json:"catalogId"`
}

type UpdateCartRequest struct {
	PosOrderID int `json:"posOrderId"`
	NewCount   int `json:"newCount"`
}

type AddReviewRequest struct {
	ProductID int    `json:"productId"`
	Text      string `json:"text"`
	Rating    int    `json:"rating"`
}

// CartResponse is the raw backend shape; TotalSum is nil when omitted.
type CartResponse struct {
	Items    []PosOrder `json:"items"`
	TotalSum *Money     `json:"totalSum"`
}

type Cart struct {
	Items    []PosOrder
	TotalSum Money
	// Computed is set when the total was summed locally.
	Computed bool
}

type ProductDetails struct {
	Product Catalog  `json:"product"`
	Reviews []Review `json:"reviews"`
}

type AverageRating struct {
	AverageRating float64 `json:"averageRating"`
}

// CatalogPage is a filtered catalog plus the categories of the whole catalog.
type CatalogPage struct {
	Items      []Catalog
	Categories []Category
}

type CatalogFilter struct {
	Category    string
	SearchQuery string
	SortBy      string
}

const (
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortTitle     = "title"
)
