package handler

import (
	"context"

	"github.com/Astemirdum/bookstore-storefront/storefront/internal/apiclient"
	"github.com/Astemirdum/bookstore-storefront/storefront/internal/events"
	"github.com/Astemirdum/bookstore-storefront/storefront/internal/model"
	"github.com/Astemirdum/bookstore-storefront/storefront/internal/service/admin"
	"github.com/Astemirdum/bookstore-storefront/storefront/internal/service/auth"
	"github.com/Astemirdum/bookstore-storefront/storefront/internal/service/customer"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

var (
	_ AuthService     = (*auth.Service)(nil)
	_ AdminService    = (*admin.Service)(nil)
	_ CustomerService = (*customer.Service)(nil)
	_ Publisher       = events.Nop{}
	_ Publisher       = (*events.Kafka)(nil)
)

type AuthService interface {
	Login(ctx context.Context, c *apiclient.Client, req model.LoginRequest) (string, error)
	Register(ctx context.Context, c *apiclient.Client, req model.RegisterRequest) (string, error)
	UserByLogin(ctx context.Context, c *apiclient.Client, login string) (model.User, bool)
}

type AdminService interface {
	ListCatalogs(ctx context.Context, c *apiclient.Client) []model.Catalog
	GetCatalog(ctx context.Context, c *apiclient.Client, id int) (model.Catalog, bool)
	CreateCatalog(ctx context.Context, c *apiclient.Client, v model.Catalog) bool
	UpdateCatalog(ctx context.Context, c *apiclient.Client, id int, v model.Catalog) bool
	DeleteCatalog(ctx context.Context, c *apiclient.Client, id int) bool

	ListCategories(ctx context.Context, c *apiclient.Client) []model.Category
	GetCategory(ctx context.Context, c *apiclient.Client, id int) (model.Category, bool)
	CreateCategory(ctx context.Context, c *apiclient.Client, v model.Category) bool
	UpdateCategory(ctx context.Context, c *apiclient.Client, id int, v model.Category) bool
	DeleteCategory(ctx context.Context, c *apiclient.Client, id int) bool

	ListUsers(ctx context.Context, c *apiclient.Client) []model.User
	GetUser(ctx context.Context, c *apiclient.Client, id int) (model.User, bool)
	CreateUser(ctx context.Context, c *apiclient.Client, v model.User) bool
	UpdateUser(ctx context.Context, c *apiclient.Client, id int, v model.User) bool
	DeleteUser(ctx context.Context, c *apiclient.Client, id int) bool

	ListOrders(ctx context.Context, c *apiclient.Client) []model.Order
	GetOrder(ctx context.Context, c *apiclient.Client, id int) (model.Order, bool)
	UpdateOrder(ctx context.Context, c *apiclient.Client, id int, v model.Order) bool
	DeleteOrder(ctx context.Context, c *apiclient.Client, id int) bool

	ListPosOrders(ctx context.Context, c *apiclient.Client) []model.PosOrder
	GetPosOrder(ctx context.Context, c *apiclient.Client, id int) (model.PosOrder, bool)
	CreatePosOrder(ctx context.Context, c *apiclient.Client, v model.PosOrder) bool
	UpdatePosOrder(ctx context.Context, c *apiclient.Client, id int, v model.PosOrder) bool
	DeletePosOrder(ctx context.Context, c *apiclient.Client, id int) bool

	ListRoles(ctx context.Context, c *apiclient.Client) []model.Role
	Roles(ctx context.Context, c *apiclient.Client) apiclient.Result[[]model.Role]
	Role(ctx context.Context, c *apiclient.Client, id int) apiclient.Result[model.Role]
	UpdateRole(ctx context.Context, c *apiclient.Client, id int, v model.Role) bool
	DeleteRole(ctx context.Context, c *apiclient.Client, id int) bool
}

type CustomerService interface {
	Catalog(ctx context.Context, c *apiclient.Client, f model.CatalogFilter) model.CatalogPage
	ProductDetails(ctx context.Context, c *apiclient.Client, id int) (model.ProductDetails, bool)
	AverageRating(ctx context.Context, c *apiclient.Client, productID int) float64
	AddToCart(ctx context.Context, c *apiclient.Client, catalogID int) bool
	UpdateCart(ctx context.Context, c *apiclient.Client, posOrderID, newCount int) bool
	Cart(ctx context.Context, c *apiclient.Client) model.Cart
	AddReview(ctx context.Context, c *apiclient.Client, req model.AddReviewRequest) bool
}

type Publisher interface {
	Publish(ctx context.Context, ev events.Event) error
}
