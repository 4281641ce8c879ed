package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Astemirdum/bookstore-storefront/pkg/validate"
	"github.com/Astemirdum/bookstore-storefront/storefront/internal/apiclient"
	"github.com/Astemirdum/bookstore-storefront/storefront/internal/errs"
	"github.com/Astemirdum/bookstore-storefront/storefront/internal/events"
	"github.com/Astemirdum/bookstore-storefront/storefront/internal/session"
)

// resource describes one admin collection: how to reach it on the backend,
// how to show it and how its form maps onto the model.
type resource[T any, F any] struct {
	name     string
	singular string
	columns  []string

	id      func(T) int
	cells   func(T) []string
	details func(T) []detail

	list   func(ctx context.Context, c *apiclient.Client) apiclient.Result[[]T]
	get    func(ctx context.Context, c *apiclient.Client, id int) apiclient.Result[T]
	create func(ctx context.Context, c *apiclient.Client, v T) bool // nil disables Create
	update func(ctx context.Context, c *apiclient.Client, id int, v T) bool
	delete func(ctx context.Context, c *apiclient.Client, id int) bool

	toForm  func(T) F
	toModel func(F) (T, map[string]string)
	formID  func(F) int
	fields  func(ctx context.Context, c *apiclient.Client, f F, fieldErrs map[string]string) []field

	// hasDetails adds a read-only details page.
	hasDetails bool
}

type row struct {
	ID    int
	Cells []string
}

type tableView struct {
	Resource   string
	Columns    []string
	Rows       []row
	CanCreate  bool
	HasDetails bool
}

type option struct {
	Value    string
	Label    string
	Selected bool
}

type field struct {
	Name    string
	Label   string
	Type    string
	Value   string
	Error   string
	Options []option
}

type formView struct {
	Resource string
	Action   string
	Fields   []field
	Error    string
}

type detail struct {
	Label string
	Value string
}

type detailsView struct {
	Resource string
	ID       int
	Details  []detail
	Action   string
}

type crud[T any, F any] struct {
	h *Handler
	r resource[T, F]
}

func register[T any, F any](g *echo.Group, h *Handler, r resource[T, F]) {
	a := crud[T, F]{h: h, r: r}
	base := "/" + r.name
	g.GET(base, a.list)
	if r.create != nil {
		g.GET(base+"/Create", a.createPage)
		g.POST(base+"/Create", a.create)
	}
	g.GET(base+"/Edit/:id", a.editPage)
	g.POST(base+"/Edit/:id", a.edit)
	if r.hasDetails {
		g.GET(base+"/Details/:id", a.detailsPage)
	}
	g.GET(base+"/Delete/:id", a.deletePage)
	g.POST(base+"/Delete/:id", a.delete)
}

func (a crud[T, F]) listPath() string {
	return "/Admin/" + a.r.name
}

func (a crud[T, F]) toLogin(c echo.Context) error {
	return c.Redirect(http.StatusFound, session.LoginURL(loginPath, c.Request().URL.RequestURI()))
}

func (a crud[T, F]) list(c echo.Context) error {
	res := a.r.list(c.Request().Context(), a.h.client(c))
	if res.IsUnauthorized() {
		return a.toLogin(c)
	}
	items := res.Value()
	rows := make([]row, 0, len(items))
	for _, item := range items {
		rows = append(rows, row{ID: a.r.id(item), Cells: a.r.cells(item)})
	}
	return a.h.render(c, http.StatusOK, "admin_list", a.r.name, tableView{
		Resource:   a.r.name,
		Columns:    a.r.columns,
		Rows:       rows,
		CanCreate:  a.r.create != nil,
		HasDetails: a.r.hasDetails,
	})
}

// load fetches one item; a 401 sends the caller to login, anything else is a 404.
func (a crud[T, F]) load(c echo.Context) (T, int, error) {
	var zero T
	id, err := pathID(c)
	if err != nil {
		return zero, 0, err
	}
	res := a.r.get(c.Request().Context(), a.h.client(c), id)
	switch {
	case res.IsUnauthorized():
		return zero, id, a.toLogin(c)
	case !res.IsOk():
		return zero, id, echo.NewHTTPError(http.StatusNotFound, a.r.singular+" not found")
	}
	return res.Value(), id, nil
}

func (a crud[T, F]) renderForm(c echo.Context, action string, f F, fieldErrs map[string]string, msg string) error {
	return a.h.render(c, http.StatusOK, "admin_form", action+" "+a.r.singular, formView{
		Resource: a.r.name,
		Action:   action,
		Fields:   a.r.fields(c.Request().Context(), a.h.client(c), f, fieldErrs),
		Error:    msg,
	})
}

// bind reads and checks the submitted form. A non-nil map means the form
// must be shown again.
func (a crud[T, F]) bind(c echo.Context) (F, T, map[string]string) {
	var (
		f F
		v T
	)
	if err := c.Bind(&f); err != nil {
		return f, v, map[string]string{"": msgInvalidForm}
	}
	fieldErrs := map[string]string{}
	if err := c.Validate(&f); err != nil {
		for k, m := range validate.FieldErrors(err) {
			fieldErrs[k] = m
		}
	}
	v, convErrs := a.r.toModel(f)
	for k, m := range convErrs {
		if _, ok := fieldErrs[k]; !ok {
			fieldErrs[k] = m
		}
	}
	if len(fieldErrs) > 0 {
		return f, v, fieldErrs
	}
	return f, v, nil
}

func (a crud[T, F]) createPage(c echo.Context) error {
	var f F
	return a.renderForm(c, "Create", f, nil, "")
}

func (a crud[T, F]) create(c echo.Context) error {
	f, v, fieldErrs := a.bind(c)
	if fieldErrs != nil {
		return a.renderForm(c, "Create", f, fieldErrs, fieldErrs[""])
	}
	if !a.r.create(c.Request().Context(), a.h.client(c), v) {
		return a.renderForm(c, "Create", f, nil, fmt.Sprintf("Failed to create %s", a.r.singular))
	}
	a.h.publish(c, events.KindAdminCreate, a.r.name)
	a.h.setFlash(c, flashSuccess, a.r.singular+" created")
	return c.Redirect(http.StatusFound, a.listPath())
}

func (a crud[T, F]) editPage(c echo.Context) error {
	v, _, err := a.load(c)
	if err != nil || c.Response().Committed {
		return err
	}
	return a.renderForm(c, "Edit", a.r.toForm(v), nil, "")
}

func (a crud[T, F]) edit(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	f, v, fieldErrs := a.bind(c)
	if _, unreadable := fieldErrs[""]; !unreadable && a.r.formID(f) != id {
		return echo.NewHTTPError(http.StatusNotFound, a.r.singular+" not found")
	}
	if fieldErrs != nil {
		return a.renderForm(c, "Edit", f, fieldErrs, fieldErrs[""])
	}
	if !a.r.update(c.Request().Context(), a.h.client(c), id, v) {
		return a.renderForm(c, "Edit", f, nil, fmt.Sprintf("Failed to update %s", a.r.singular))
	}
	a.h.publish(c, events.KindAdminUpdate, a.target(id))
	a.h.setFlash(c, flashSuccess, a.r.singular+" updated")
	return c.Redirect(http.StatusFound, a.listPath())
}

func (a crud[T, F]) detailsPage(c echo.Context) error {
	v, id, err := a.load(c)
	if err != nil || c.Response().Committed {
		return err
	}
	return a.h.render(c, http.StatusOK, "admin_details", a.r.singular+" details", detailsView{
		Resource: a.r.name,
		ID:       id,
		Details:  a.r.details(v),
	})
}

func (a crud[T, F]) deletePage(c echo.Context) error {
	v, id, err := a.load(c)
	if err != nil || c.Response().Committed {
		return err
	}
	return a.h.render(c, http.StatusOK, "admin_delete", "Delete "+a.r.singular, detailsView{
		Resource: a.r.name,
		ID:       id,
		Details:  a.r.details(v),
		Action:   "Delete",
	})
}

func (a crud[T, F]) delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if !a.r.delete(c.Request().Context(), a.h.client(c), id) {
		a.h.setFlash(c, flashError, fmt.Sprintf("Failed to delete %s", a.r.singular))
		return c.Redirect(http.StatusFound, fmt.Sprintf("%s/Delete/%d", a.listPath(), id))
	}
	a.h.publish(c, events.KindAdminDelete, a.target(id))
	a.h.setFlash(c, flashSuccess, a.r.singular+" deleted")
	return c.Redirect(http.StatusFound, a.listPath())
}

func (a crud[T, F]) target(id int) string {
	return a.r.name + "/" + strconv.Itoa(id)
}

// found adapts a (value, ok) read to a Result.
func found[T any](v T, ok bool) apiclient.Result[T] {
	if !ok {
		return apiclient.Failure[T](errors.WithStack(errs.ErrNotFound))
	}
	return apiclient.Ok(v)
}
