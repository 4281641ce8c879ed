package customer

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/Astemirdum/bookstore-storefront/storefront/internal/apiclient"
	"github.com/Astemirdum/bookstore-storefront/storefront/internal/model"
)

const basePath = "/api/Customer"

type Service struct {
	log *zap.Logger
	// localFilter makes Catalog fetch everything and filter here.
	localFilter bool
}

func NewService(log *zap.Logger, localFilter bool) *Service {
	return &Service{
		log:         log.Named("customer"),
		localFilter: localFilter,
	}
}

// Catalog loads the books matching f and the categories of the whole
// catalog. The unfiltered list is fetched once and reused when filtering
// locally or when f is empty.
func (s *Service) Catalog(ctx context.Context, c *apiclient.Client, f model.CatalogFilter) model.CatalogPage {
	all := s.catalog(ctx, c, model.CatalogFilter{})
	page := model.CatalogPage{Categories: DistinctCategories(all)}
	switch {
	case s.localFilter:
		page.Items = FilterCatalog(all, f)
	case f == (model.CatalogFilter{}):
		page.Items = all
	default:
		page.Items = s.catalog(ctx, c, f)
	}
	return page
}

func (s *Service) catalog(ctx context.Context, c *apiclient.Client, f model.CatalogFilter) []model.Catalog {
	q := url.Values{}
	q.Set("category", f.Category)
	q.Set("searchQuery", f.SearchQuery)
	q.Set("sortBy", f.SortBy)

	items := make([]model.Catalog, 0)
	code, err := c.Get(ctx, basePath+"/catalog", q, &items)
	if err != nil {
		s.log.Warn("catalog", zap.Int("status", code), zap.Error(err))
		return make([]model.Catalog, 0)
	}
	if items == nil {
		return make([]model.Catalog, 0)
	}
	return items
}

// DistinctCategories lists the categories present in items, distinct by id,
// in first-seen order.
func DistinctCategories(items []model.Catalog) []model.Category {
	seen := make(map[int]struct{})
	out := make([]model.Category, 0)
	for _, item := range items {
		for _, cat := range item.Categories {
			if _, ok := seen[cat.CategoryID]; ok {
				continue
			}
			seen[cat.CategoryID] = struct{}{}
			out = append(out, cat)
		}
	}
	return out
}

func (s *Service) ProductDetails(ctx context.Context, c *apiclient.Client, id int) (model.ProductDetails, bool) {
	var details model.ProductDetails
	code, err := c.Get(ctx, apiclient.Path(basePath+"/product-details", id), nil, &details)
	if err != nil {
		if code != http.StatusNotFound {
			s.log.Warn("product details", zap.Int("id", id), zap.Int("status", code), zap.Error(err))
		}
		return model.ProductDetails{}, false
	}
	return details, true
}

func (s *Service) AddToCart(ctx context.Context, c *apiclient.Client, catalogID int) bool {
	return c.Send(ctx, http.MethodPost, basePath+"/add-to-cart", model.AddToCartRequest{CatalogID: catalogID})
}

func (s *Service) UpdateCart(ctx context.Context, c *apiclient.Client, posOrderID, newCount int) bool {
	return c.Send(ctx, http.MethodPost, basePath+"/update-cart", model.UpdateCartRequest{
		PosOrderID: posOrderID,
		NewCount:   newCount,
	})
}

// Cart returns the current cart. When the backend leaves totalSum out,
// the total is summed from the line items.
func (s *Service) Cart(ctx context.Context, c *apiclient.Client) model.Cart {
	var resp model.CartResponse
	code, err := c.Get(ctx, basePath+"/cart", nil, &resp)
	if err != nil {
		s.log.Warn("cart", zap.Int("status", code), zap.Error(err))
		return model.Cart{Items: make([]model.PosOrder, 0)}
	}
	cart := model.Cart{Items: resp.Items}
	if cart.Items == nil {
		cart.Items = make([]model.PosOrder, 0)
	}
	if resp.TotalSum != nil {
		cart.TotalSum = *resp.TotalSum
		return cart
	}
	cart.TotalSum = model.NewMoney(CartTotal(cart.Items))
	cart.Computed = true
	return cart
}

func (s *Service) AddReview(ctx context.Context, c *apiclient.Client, req model.AddReviewRequest) bool {
	return c.Send(ctx, http.MethodPost, basePath+"/add-review", req)
}

// AverageRating accepts {"averageRating": x} or a bare number. Failures give 0.
func (s *Service) AverageRating(ctx context.Context, c *apiclient.Client, productID int) float64 {
	var raw json.RawMessage
	code, err := c.Get(ctx, apiclient.Path(basePath+"/average-rating", productID), nil, &raw)
	if err != nil {
		s.log.Warn("average rating", zap.Int("id", productID), zap.Int("status", code), zap.Error(err))
		return 0
	}
	rating, ok := parseRating(raw)
	if !ok {
		s.log.Warn("average rating: unexpected payload", zap.Int("id", productID), zap.ByteString("body", raw))
	}
	return rating
}

func parseRating(raw json.RawMessage) (float64, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, true
	}
	if raw[0] == '{' {
		var v model.AverageRating
		if err := json.Unmarshal(raw, &v); err != nil {
			return 0, false
		}
		return v.AverageRating, true
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return 0, false
	}
	return f, true
}
