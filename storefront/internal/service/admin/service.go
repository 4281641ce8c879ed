package admin

import (
	"context"

	"go.uber.org/zap"

	"github.com/Astemirdum/bookstore-storefront/storefront/internal/apiclient"
	"github.com/Astemirdum/bookstore-storefront/storefront/internal/model"
)

const basePath = "/api/admin"

type Service struct {
	log        *zap.Logger
	catalogs   resource[model.Catalog]
	categories resource[model.Category]
	users      resource[model.User]
	orders     resource[model.Order]
	posOrders  resource[model.PosOrder]
	roles      resource[model.Role]
}

func NewService(log *zap.Logger) *Service {
	log = log.Named("admin")
	return &Service{
		log:        log,
		catalogs:   newResource[model.Catalog](log, "catalogs"),
		categories: newResource[model.Category](log, "categories"),
		users:      newResource[model.User](log, "users"),
		orders:     newResource[model.Order](log, "orders"),
		posOrders:  newResource[model.PosOrder](log, "posorders"),
		roles:      newResource[model.Role](log, "roles"),
	}
}

func (s *Service) ListCatalogs(ctx context.Context, c *apiclient.Client) []model.Catalog {
	return s.catalogs.list(ctx, c)
}

func (s *Service) GetCatalog(ctx context.Context, c *apiclient.Client, id int) (model.Catalog, bool) {
	return s.catalogs.get(ctx, c, id)
}

func (s *Service) CreateCatalog(ctx context.Context, c *apiclient.Client, v model.Catalog) bool {
	return s.catalogs.create(ctx, c, v)
}

func (s *Service) UpdateCatalog(ctx context.Context, c *apiclient.Client, id int, v model.Catalog) bool {
	return s.catalogs.update(ctx, c, id, v)
}

func (s *Service) DeleteCatalog(ctx context.Context, c *apiclient.Client, id int) bool {
	return s.catalogs.delete(ctx, c, id)
}

func (s *Service) ListCategories(ctx context.Context, c *apiclient.Client) []model.Category {
	return s.categories.list(ctx, c)
}

func (s *Service) GetCategory(ctx context.Context, c *apiclient.Client, id int) (model.Category, bool) {
	return s.categories.get(ctx, c, id)
}

func (s *Service) CreateCategory(ctx context.Context, c *apiclient.Client, v model.Category) bool {
	return s.categories.create(ctx, c, v)
}

func (s *Service) UpdateCategory(ctx context.Context, c *apiclient.Client, id int, v model.Category) bool {
	return s.categories.update(ctx, c, id, v)
}

func (s *Service) DeleteCategory(ctx context.Context, c *apiclient.Client, id int) bool {
	return s.categories.delete(ctx, c, id)
}

func (s *Service) ListUsers(ctx context.Context, c *apiclient.Client) []model.User {
	return s.users.list(ctx, c)
}

func (s *Service) GetUser(ctx context.Context, c *apiclient.Client, id int) (model.User, bool) {
	return s.users.get(ctx, c, id)
}

func (s *Service) CreateUser(ctx context.Context, c *apiclient.Client, v model.User) bool {
	return s.users.create(ctx, c, v)
}

func (s *Service) UpdateUser(ctx context.Context, c *apiclient.Client, id int, v model.User) bool {
	return s.users.update(ctx, c, id, v)
}

func (s *Service) DeleteUser(ctx context.Context, c *apiclient.Client, id int) bool {
	return s.users.delete(ctx, c, id)
}

func (s *Service) ListOrders(ctx context.Context, c *apiclient.Client) []model.Order {
	return s.orders.list(ctx, c)
}

func (s *Service) GetOrder(ctx context.Context, c *apiclient.Client, id int) (model.Order, bool) {
	return s.orders.get(ctx, c, id)
}

func (s *Service) UpdateOrder(ctx context.Context, c *apiclient.Client, id int, v model.Order) bool {
	return s.orders.update(ctx, c, id, v)
}

func (s *Service) DeleteOrder(ctx context.Context, c *apiclient.Client, id int) bool {
	return s.orders.delete(ctx, c, id)
}

func (s *Service) ListPosOrders(ctx context.Context, c *apiclient.Client) []model.PosOrder {
	return s.posOrders.list(ctx, c)
}

func (s *Service) GetPosOrder(ctx context.Context, c *apiclient.Client, id int) (model.PosOrder, bool) {
	return s.posOrders.get(ctx, c, id)
}

func (s *Service) CreatePosOrder(ctx context.Context, c *apiclient.Client, v model.PosOrder) bool {
	return s.posOrders.create(ctx, c, v)
}

func (s *Service) UpdatePosOrder(ctx context.Context, c *apiclient.Client, id int, v model.PosOrder) bool {
	return s.posOrders.update(ctx, c, id, v)
}

func (s *Service) DeletePosOrder(ctx context.Context, c *apiclient.Client, id int) bool {
	return s.posOrders.delete(ctx, c, id)
}

// ListRoles swallows failures like the other lists; it backs dropdowns
// where a missing role list is not worth a redirect.
func (s *Service) ListRoles(ctx context.Context, c *apiclient.Client) []model.Role {
	return s.roles.list(ctx, c)
}

// Roles reports a 401 separately so the caller can send the user to login.
func (s *Service) Roles(ctx context.Context, c *apiclient.Client) apiclient.Result[[]model.Role] {
	res := apiclient.Fetch[[]model.Role](ctx, c, s.roles.path, nil)
	if !res.IsOk() && !res.IsUnauthorized() {
		s.log.Warn("roles", zap.Error(res.Err()))
	}
	if res.IsOk() && res.Value() == nil {
		return apiclient.Ok(make([]model.Role, 0))
	}
	return res
}

func (s *Service) Role(ctx context.Context, c *apiclient.Client, id int) apiclient.Result[model.Role] {
	res := apiclient.Fetch[model.Role](ctx, c, apiclient.Path(s.roles.path, id), nil)
	if !res.IsOk() && !res.IsUnauthorized() {
		s.log.Warn("role", zap.Int("id", id), zap.Error(res.Err()))
	}
	return res
}

func (s *Service) UpdateRole(ctx context.Context, c *apiclient.Client, id int, v model.Role) bool {
	return s.roles.update(ctx, c, id, v)
}

func (s *Service) DeleteRole(ctx context.Context, c *apiclient.Client, id int) bool {
	return s.roles.delete(ctx, c, id)
}
