package handler

import (
	"embed"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Astemirdum/bookstore-storefront/storefront/internal/session"
)

//go:embed views/*.html
var views embed.FS

const layoutFile = "views/layout.html"

// Renderer executes one template set per page, each sharing the layout.
type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	files, err := fs.Glob(views, "views/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "list views")
	}
	r := &Renderer{pages: make(map[string]*template.Template, len(files))}
	for _, file := range files {
		if file == layoutFile {
			continue
		}
		name := strings.TrimSuffix(path.Base(file), ".html")
		t, err := template.New(name).ParseFS(views, layoutFile, file)
		if err != nil {
			return nil, errors.Wrapf(err, "parse view %s", name)
		}
		r.pages[name] = t
	}
	return r, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		return errors.Errorf("view %q not found", name)
	}
	return t.ExecuteTemplate(w, "layout", data)
}

// page is what every view receives; Data holds the view's own model.
type page struct {
	Title   string
	User    session.Principal
	IsAdmin bool
	CSRF    string
	Flash   *flash
	Data    any
}

func (h *Handler) render(c echo.Context, code int, name, title string, data any) error {
	p, _ := session.PrincipalFrom(c)
	csrf, _ := c.Get(csrfContextKey).(string)
	return c.Render(code, name, page{
		Title:   title,
		User:    p,
		IsAdmin: session.HasRole(p, session.RoleAdmin),
		CSRF:    csrf,
		Flash:   h.popFlash(c),
		Data:    data,
	})
}
