package admin

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/Astemirdum/bookstore-storefront/storefront/internal/apiclient"
)

// resource is the CRUD surface shared by every /api/admin collection.
type resource[T any] struct {
	log  *zap.Logger
	path string
}

func newResource[T any](log *zap.Logger, name string) resource[T] {
	return resource[T]{
		log:  log.With(zap.String("resource", name)),
		path: apiclient.Path(basePath, name),
	}
}

func (r resource[T]) list(ctx context.Context, c *apiclient.Client) []T {
	items := make([]T, 0)
	code, err := c.Get(ctx, r.path, nil, &items)
	if err != nil {
		r.log.Warn("list", zap.Int("status", code), zap.Error(err))
		return make([]T, 0)
	}
	if items == nil {
		return make([]T, 0)
	}
	return items
}

func (r resource[T]) get(ctx context.Context, c *apiclient.Client, id int) (T, bool) {
	var item T
	code, err := c.Get(ctx, apiclient.Path(r.path, id), nil, &item)
	if err != nil {
		if code != http.StatusNotFound {
			r.log.Warn("get", zap.Int("id", id), zap.Int("status", code), zap.Error(err))
		}
		var zero T
		return zero, false
	}
	return item, true
}

func (r resource[T]) create(ctx context.Context, c *apiclient.Client, item T) bool {
	code, err := c.Post(ctx, r.path, item, nil)
	return r.written("create", 0, code, err)
}

func (r resource[T]) update(ctx context.Context, c *apiclient.Client, id int, item T) bool {
	code, err := c.Put(ctx, apiclient.Path(r.path, id), item)
	return r.written("update", id, code, err)
}

func (r resource[T]) delete(ctx context.Context, c *apiclient.Client, id int) bool {
	code, err := c.Delete(ctx, apiclient.Path(r.path, id))
	return r.written("delete", id, code, err)
}

// written reports a write as done only for a 2xx answer.
func (r resource[T]) written(op string, id, code int, err error) bool {
	if err != nil {
		r.log.Warn(op, zap.Int("id", id), zap.Int("status", code), zap.Error(err))
		return false
	}
	return apiclient.IsSuccess(code)
}
