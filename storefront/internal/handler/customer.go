package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/bookstore-storefront/pkg/validate"
	"github.com/Astemirdum/bookstore-storefront/storefront/internal/events"
	"github.com/Astemirdum/bookstore-storefront/storefront/internal/model"
)

const (
	catalogPath = "/Customer/Catalog"
	cartPath    = "/Customer/Cart"

	msgAddToCartFailed  = "Failed to add the item to the cart"
	msgUpdateCartFailed = "Failed to update the cart"
	msgAddReviewFailed  = "Failed to add the review"
	msgReviewAdded      = "Thank you for your review"
)

type cartItemForm struct {
	CatalogID int `form:"catalogId" validate:"gt=0"`
}

type cartUpdateForm struct {
	PosOrderID int `form:"posOrderId" validate:"gt=0"`
	NewCount   int `form:"newCount" validate:"gte=0"`
}

type reviewForm struct {
	ProductID int    `form:"productId" validate:"gt=0"`
	Text      string `form:"text" validate:"required"`
	Rating    int    `form:"rating" validate:"gte=1,lte=5"`
}

type sortOption struct {
	Value string
	Label string
}

var sortOptions = []sortOption{
	{Value: "", Label: "Default"},
	{Value: model.SortTitle, Label: "Title"},
	{Value: model.SortPriceAsc, Label: "Price: low to high"},
	{Value: model.SortPriceDesc, Label: "Price: high to low"},
}

type catalogView struct {
	Items       []model.Catalog
	Categories  []model.Category
	Filter      model.CatalogFilter
	SortOptions []sortOption
}

type productView struct {
	Details model.ProductDetails
	Rating  float64
	Review  reviewForm
	Errors  map[string]string
}

func (h *Handler) Catalog(c echo.Context) error {
	filter := model.CatalogFilter{
		Category:    c.QueryParam("category"),
		SearchQuery: c.QueryParam("searchQuery"),
		SortBy:      c.QueryParam("sortBy"),
	}
	page := h.customerSvc.Catalog(c.Request().Context(), h.client(c), filter)
	return h.render(c, http.StatusOK, "catalog", "Catalog", catalogView{
		Items:       page.Items,
		Categories:  page.Categories,
		Filter:      filter,
		SortOptions: sortOptions,
	})
}

func (h *Handler) Product(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	return h.renderProduct(c, id, reviewForm{ProductID: id}, nil)
}

// renderProduct loads the product and then its rating, one call after the other.
func (h *Handler) renderProduct(c echo.Context, id int, review reviewForm, fieldErrs map[string]string) error {
	ctx, cl := c.Request().Context(), h.client(c)
	details, ok := h.customerSvc.ProductDetails(ctx, cl, id)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Product not found")
	}
	rating := h.customerSvc.AverageRating(ctx, cl, id)
	return h.render(c, http.StatusOK, "product", details.Product.Title, productView{
		Details: details,
		Rating:  rating,
		Review:  review,
		Errors:  fieldErrs,
	})
}

func (h *Handler) AddToCart(c echo.Context) error {
	var form cartItemForm
	if err := c.Bind(&form); err != nil || c.Validate(&form) != nil {
		h.setFlash(c, flashError, msgAddToCartFailed)
		return c.Redirect(http.StatusFound, catalogPath)
	}
	if !h.customerSvc.AddToCart(c.Request().Context(), h.client(c), form.CatalogID) {
		h.setFlash(c, flashError, msgAddToCartFailed)
		return c.Redirect(http.StatusFound, catalogPath)
	}
	h.publish(c, events.KindCartAdd, fmt.Sprintf("catalog/%d", form.CatalogID))
	return c.Redirect(http.StatusFound, catalogPath)
}

func (h *Handler) Cart(c echo.Context) error {
	cart := h.customerSvc.Cart(c.Request().Context(), h.client(c))
	return h.render(c, http.StatusOK, "cart", "Cart", cart)
}

func (h *Handler) UpdateCart(c echo.Context) error {
	var form cartUpdateForm
	if err := c.Bind(&form); err != nil || c.Validate(&form) != nil {
		h.setFlash(c, flashError, msgUpdateCartFailed)
		return c.Redirect(http.StatusFound, cartPath)
	}
	if !h.customerSvc.UpdateCart(c.Request().Context(), h.client(c), form.PosOrderID, form.NewCount) {
		h.setFlash(c, flashError, msgUpdateCartFailed)
		return c.Redirect(http.StatusFound, cartPath)
	}
	h.publish(c, events.KindCartUpdate, fmt.Sprintf("posorder/%d", form.PosOrderID))
	return c.Redirect(http.StatusFound, cartPath)
}

func (h *Handler) AddReview(c echo.Context) error {
	var form reviewForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, msgInvalidForm)
	}
	if err := c.Validate(&form); err != nil {
		if form.ProductID <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, msgInvalidForm)
		}
		return h.renderProduct(c, form.ProductID, form, validate.FieldErrors(err))
	}
	productPath := "/Customer/Product/" + strconv.Itoa(form.ProductID)
	ok := h.customerSvc.AddReview(c.Request().Context(), h.client(c), model.AddReviewRequest{
		ProductID: form.ProductID,
		Text:      form.Text,
		Rating:    form.Rating,
	})
	if !ok {
		h.setFlash(c, flashError, msgAddReviewFailed)
		return c.Redirect(http.StatusFound, productPath)
	}
	h.publish(c, events.KindReviewAdd, fmt.Sprintf("catalog/%d", form.ProductID))
	h.setFlash(c, flashSuccess, msgReviewAdded)
	return c.Redirect(http.StatusFound, productPath)
}

func (h *Handler) AverageRating(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	rating := h.customerSvc.AverageRating(c.Request().Context(), h.client(c), id)
	return c.JSON(http.StatusOK, model.AverageRating{AverageRating: rating})
}

func pathID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusNotFound, "Not found")
	}
	return id, nil
}
