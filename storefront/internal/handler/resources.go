package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/Astemirdum/bookstore-storefront/storefront/internal/apiclient"
	"github.com/Astemirdum/bookstore-storefront/storefront/internal/model"
)

const msgInvalidID = "Must be a number"

type catalogForm struct {
	CatalogsID int    `form:"catalogsId"`
	Title      string `form:"title" validate:"required,max=200"`
	Author     string `form:"author" validate:"required,max=200"`
	Publisher  string `form:"publisher" validate:"max=200"`
	YearPublic int    `form:"yearPublic" validate:"gte=0,lte=2100"`
	Price      string `form:"price" validate:"required,numeric"`
}

type categoryForm struct {
	CategoryID   int    `form:"categoryId"`
	CategoryName string `form:"categoryName" validate:"required,max=100"`
}

// userForm leaves the password empty on edit unless it is being changed.
type userForm struct {
	UserID   int    `form:"userId"`
	Login    string `form:"login" validate:"required,max=100"`
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password"`
	RoleID   string `form:"roleId"`
}

type orderForm struct {
	OrdersID   int    `form:"ordersId"`
	UsersID    string `form:"usersId"`
	CatalogsID string `form:"catalogsId"`
	TotalSum   string `form:"totalSum" validate:"required,numeric"`
}

type posOrderForm struct {
	PosOrderID int    `form:"posOrderId"`
	OrderID    string `form:"orderId"`
	ProductID  string `form:"productId"`
	Count      int    `form:"count" validate:"gte=1"`
}

type roleForm struct {
	RoleID   int    `form:"roleId"`
	RoleName string `form:"roleName" validate:"required,max=50"`
}

func (h *Handler) registerAdmin(g *echo.Group) {
	g.GET("", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, "/Admin/Catalogs")
	})
	register(g, h, h.catalogResource())
	register(g, h, h.categoryResource())
	register(g, h, h.userResource())
	register(g, h, h.orderResource())
	register(g, h, h.posOrderResource())
	register(g, h, h.roleResource())
}

func (h *Handler) catalogResource() resource[model.Catalog, catalogForm] {
	return resource[model.Catalog, catalogForm]{
		name:     "Catalogs",
		singular: "Catalog",
		columns:  []string{"ID", "Title", "Author", "Publisher", "Year", "Price"},
		id:       func(v model.Catalog) int { return v.CatalogsID },
		cells: func(v model.Catalog) []string {
			return []string{strconv.Itoa(v.CatalogsID), v.Title, v.Author, v.Publisher, strconv.Itoa(v.YearPublic), v.Price}
		},
		details: func(v model.Catalog) []detail {
			return []detail{
				{Label: "Title", Value: v.Title},
				{Label: "Author", Value: v.Author},
				{Label: "Publisher", Value: v.Publisher},
				{Label: "Year", Value: strconv.Itoa(v.YearPublic)},
				{Label: "Price", Value: v.Price},
			}
		},
		list: func(ctx context.Context, c *apiclient.Client) apiclient.Result[[]model.Catalog] {
			return apiclient.Ok(h.adminSvc.ListCatalogs(ctx, c))
		},
		get: func(ctx context.Context, c *apiclient.Client, id int) apiclient.Result[model.Catalog] {
			return found(h.adminSvc.GetCatalog(ctx, c, id))
		},
		create: h.adminSvc.CreateCatalog,
		update: h.adminSvc.UpdateCatalog,
		delete: h.adminSvc.DeleteCatalog,
		toForm: func(v model.Catalog) catalogForm {
			return catalogForm{
				CatalogsID: v.CatalogsID,
				Title:      v.Title,
				Author:     v.Author,
				Publisher:  v.Publisher,
				YearPublic: v.YearPublic,
				Price:      v.Price,
			}
		},
		toModel: func(f catalogForm) (model.Catalog, map[string]string) {
			return model.Catalog{
				CatalogsID: f.CatalogsID,
				Title:      f.Title,
				Author:     f.Author,
				Publisher:  f.Publisher,
				YearPublic: f.YearPublic,
				Price:      f.Price,
			}, nil
		},
		formID: func(f catalogForm) int { return f.CatalogsID },
		fields: func(_ context.Context, _ *apiclient.Client, f catalogForm, e map[string]string) []field {
			return []field{
				hidden("catalogsId", f.CatalogsID),
				input("title", "Title", "text", f.Title, e),
				input("author", "Author", "text", f.Author, e),
				input("publisher", "Publisher", "text", f.Publisher, e),
				input("yearPublic", "Year", "number", strconv.Itoa(f.YearPublic), e),
				input("price", "Price", "text", f.Price, e),
			}
		},
	}
}

func (h *Handler) categoryResource() resource[model.Category, categoryForm] {
	return resource[model.Category, categoryForm]{
		name:     "Categories",
		singular: "Category",
		columns:  []string{"ID", "Name"},
		id:       func(v model.Category) int { return v.CategoryID },
		cells: func(v model.Category) []string {
			return []string{strconv.Itoa(v.CategoryID), v.CategoryName}
		},
		details: func(v model.Category) []detail {
			return []detail{{Label: "Name", Value: v.CategoryName}}
		},
		list: func(ctx context.Context, c *apiclient.Client) apiclient.Result[[]model.Category] {
			return apiclient.Ok(h.adminSvc.ListCategories(ctx, c))
		},
		get: func(ctx context.Context, c *apiclient.Client, id int) apiclient.Result[model.Category] {
			return found(h.adminSvc.GetCategory(ctx, c, id))
		},
		create: h.adminSvc.CreateCategory,
		update: h.adminSvc.UpdateCategory,
		delete: h.adminSvc.DeleteCategory,
		toForm: func(v model.Category) categoryForm {
			return categoryForm{CategoryID: v.CategoryID, CategoryName: v.CategoryName}
		},
		toModel: func(f categoryForm) (model.Category, map[string]string) {
			return model.Category{CategoryID: f.CategoryID, CategoryName: f.CategoryName}, nil
		},
		formID: func(f categoryForm) int { return f.CategoryID },
		fields: func(_ context.Context, _ *apiclient.Client, f categoryForm, e map[string]string) []field {
			return []field{
				hidden("categoryId", f.CategoryID),
				input("categoryName", "Name", "text", f.CategoryName, e),
			}
		},
	}
}

func (h *Handler) userResource() resource[model.User, userForm] {
	return resource[model.User, userForm]{
		name:     "Users",
		singular: "User",
		columns:  []string{"ID", "Login", "Email", "Role"},
		id:       func(v model.User) int { return v.UserID },
		cells: func(v model.User) []string {
			return []string{strconv.Itoa(v.UserID), v.Login, v.Email, intPtr(v.RoleID)}
		},
		details: func(v model.User) []detail {
			return []detail{
				{Label: "Login", Value: v.Login},
				{Label: "Email", Value: v.Email},
				{Label: "Role", Value: intPtr(v.RoleID)},
			}
		},
		list: func(ctx context.Context, c *apiclient.Client) apiclient.Result[[]model.User] {
			return apiclient.Ok(h.adminSvc.ListUsers(ctx, c))
		},
		get: func(ctx context.Context, c *apiclient.Client, id int) apiclient.Result[model.User] {
			return found(h.adminSvc.GetUser(ctx, c, id))
		},
		create: h.adminSvc.CreateUser,
		update: h.adminSvc.UpdateUser,
		delete: h.adminSvc.DeleteUser,
		toForm: func(v model.User) userForm {
			return userForm{UserID: v.UserID, Login: v.Login, Email: v.Email, RoleID: intPtr(v.RoleID)}
		},
		toModel: func(f userForm) (model.User, map[string]string) {
			e := map[string]string{}
			return model.User{
				UserID:   f.UserID,
				Login:    f.Login,
				Email:    f.Email,
				Password: f.Password,
				RoleID:   optionalID("roleId", f.RoleID, e),
			}, e
		},
		formID: func(f userForm) int { return f.UserID },
		fields: func(ctx context.Context, c *apiclient.Client, f userForm, e map[string]string) []field {
			roles := h.adminSvc.ListRoles(ctx, c)
			opts := make([]option, 0, len(roles)+1)
			opts = append(opts, option{Value: "", Label: "(none)", Selected: f.RoleID == ""})
			for _, r := range roles {
				v := strconv.Itoa(r.RoleID)
				opts = append(opts, option{Value: v, Label: r.RoleName, Selected: v == f.RoleID})
			}
			roleField := input("roleId", "Role", "select", f.RoleID, e)
			roleField.Options = opts
			return []field{
				hidden("userId", f.UserID),
				input("login", "Login", "text", f.Login, e),
				input("email", "Email", "email", f.Email, e),
				input("password", "Password", "password", "", e),
				roleField,
			}
		},
	}
}

func (h *Handler) orderResource() resource[model.Order, orderForm] {
	return resource[model.Order, orderForm]{
		name:     "Orders",
		singular: "Order",
		columns:  []string{"ID", "User", "Catalog", "Total"},
		id:       func(v model.Order) int { return v.OrdersID },
		cells: func(v model.Order) []string {
			return []string{strconv.Itoa(v.OrdersID), intPtr(v.UsersID), intPtr(v.CatalogsID), v.TotalSum.String()}
		},
		details: func(v model.Order) []detail {
			return []detail{
				{Label: "User", Value: intPtr(v.UsersID)},
				{Label: "Catalog", Value: intPtr(v.CatalogsID)},
				{Label: "Total", Value: v.TotalSum.String()},
			}
		},
		list: func(ctx context.Context, c *apiclient.Client) apiclient.Result[[]model.Order] {
			return apiclient.Ok(h.adminSvc.ListOrders(ctx, c))
		},
		get: func(ctx context.Context, c *apiclient.Client, id int) apiclient.Result[model.Order] {
			return found(h.adminSvc.GetOrder(ctx, c, id))
		},
		update: h.adminSvc.UpdateOrder,
		delete: h.adminSvc.DeleteOrder,
		toForm: func(v model.Order) orderForm {
			return orderForm{
				OrdersID:   v.OrdersID,
				UsersID:    intPtr(v.UsersID),
				CatalogsID: intPtr(v.CatalogsID),
				TotalSum:   v.TotalSum.String(),
			}
		},
		toModel: func(f orderForm) (model.Order, map[string]string) {
			e := map[string]string{}
			total, err := decimal.NewFromString(f.TotalSum)
			if err != nil && f.TotalSum != "" {
				e["totalSum"] = msgInvalidID
			}
			return model.Order{
				OrdersID:   f.OrdersID,
				UsersID:    optionalID("usersId", f.UsersID, e),
				CatalogsID: optionalID("catalogsId", f.CatalogsID, e),
				TotalSum:   model.NewMoney(total),
			}, e
		},
		formID: func(f orderForm) int { return f.OrdersID },
		fields: func(_ context.Context, _ *apiclient.Client, f orderForm, e map[string]string) []field {
			return []field{
				hidden("ordersId", f.OrdersID),
				input("usersId", "User ID", "number", f.UsersID, e),
				input("catalogsId", "Catalog ID", "number", f.CatalogsID, e),
				input("totalSum", "Total", "text", f.TotalSum, e),
			}
		},
		hasDetails: true,
	}
}

func (h *Handler) posOrderResource() resource[model.PosOrder, posOrderForm] {
	return resource[model.PosOrder, posOrderForm]{
		name:     "PosOrders",
		singular: "Order line",
		columns:  []string{"ID", "Order", "Product", "Count"},
		id:       func(v model.PosOrder) int { return v.PosOrderID },
		cells: func(v model.PosOrder) []string {
			return []string{strconv.Itoa(v.PosOrderID), intPtr(v.OrderID), intPtr(v.ProductID), strconv.Itoa(v.Count)}
		},
		details: func(v model.PosOrder) []detail {
			return []detail{
				{Label: "Order", Value: intPtr(v.OrderID)},
				{Label: "Product", Value: intPtr(v.ProductID)},
				{Label: "Count", Value: strconv.Itoa(v.Count)},
			}
		},
		list: func(ctx context.Context, c *apiclient.Client) apiclient.Result[[]model.PosOrder] {
			return apiclient.Ok(h.adminSvc.ListPosOrders(ctx, c))
		},
		get: func(ctx context.Context, c *apiclient.Client, id int) apiclient.Result[model.PosOrder] {
			return found(h.adminSvc.GetPosOrder(ctx, c, id))
		},
		create: h.adminSvc.CreatePosOrder,
		update: h.adminSvc.UpdatePosOrder,
		delete: h.adminSvc.DeletePosOrder,
		toForm: func(v model.PosOrder) posOrderForm {
			return posOrderForm{
				PosOrderID: v.PosOrderID,
				OrderID:    intPtr(v.OrderID),
				ProductID:  intPtr(v.ProductID),
				Count:      v.Count,
			}
		},
		toModel: func(f posOrderForm) (model.PosOrder, map[string]string) {
			e := map[string]string{}
			return model.PosOrder{
				PosOrderID: f.PosOrderID,
				OrderID:    optionalID("orderId", f.OrderID, e),
				ProductID:  optionalID("productId", f.ProductID, e),
				Count:      f.Count,
			}, e
		},
		formID: func(f posOrderForm) int { return f.PosOrderID },
		fields: func(_ context.Context, _ *apiclient.Client, f posOrderForm, e map[string]string) []field {
			return []field{
				hidden("posOrderId", f.PosOrderID),
				input("orderId", "Order ID", "number", f.OrderID, e),
				input("productId", "Product ID", "number", f.ProductID, e),
				input("count", "Count", "number", strconv.Itoa(f.Count), e),
			}
		},
	}
}

// roleResource reads through the Result-returning calls so that a 401
// from the backend sends the caller to login.
func (h *Handler) roleResource() resource[model.Role, roleForm] {
	return resource[model.Role, roleForm]{
		name:     "Roles",
		singular: "Role",
		columns:  []string{"ID", "Name"},
		id:       func(v model.Role) int { return v.RoleID },
		cells: func(v model.Role) []string {
			return []string{strconv.Itoa(v.RoleID), v.RoleName}
		},
		details: func(v model.Role) []detail {
			return []detail{{Label: "Name", Value: v.RoleName}}
		},
		list:   h.adminSvc.Roles,
		get:    h.adminSvc.Role,
		update: h.adminSvc.UpdateRole,
		delete: h.adminSvc.DeleteRole,
		toForm: func(v model.Role) roleForm {
			return roleForm{RoleID: v.RoleID, RoleName: v.RoleName}
		},
		toModel: func(f roleForm) (model.Role, map[string]string) {
			return model.Role{RoleID: f.RoleID, RoleName: f.RoleName}, nil
		},
		formID: func(f roleForm) int { return f.RoleID },
		fields: func(_ context.Context, _ *apiclient.Client, f roleForm, e map[string]string) []field {
			return []field{
				hidden("roleId", f.RoleID),
				input("roleName", "Name", "text", f.RoleName, e),
			}
		},
	}
}

func input(name, label, typ, value string, fieldErrs map[string]string) field {
	return field{Name: name, Label: label, Type: typ, Value: value, Error: fieldErrs[name]}
}

func hidden(name string, id int) field {
	return field{Name: name, Type: "hidden", Value: strconv.Itoa(id)}
}

func intPtr(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

// optionalID parses an optional foreign key; "" is nil.
func optionalID(name, s string, fieldErrs map[string]string) *int {
	if s == "" {
		return nil
	}
	id, err := strconv.Atoi(s)
	if err != nil {
		fieldErrs[name] = msgInvalidID
		return nil
	}
	return &id
}
