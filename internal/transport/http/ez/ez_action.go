package ez

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type CrudHooks[F any] struct {
	ScopeList func(c *gin.Context, f *F) // 自定义筛选，如公开接口强制只看 active
}

// CrudConfig 基于仓储函数的 CRUD 注册；某个操作函数为 nil 即不挂该路由
type CrudConfig[T any, C any, U any, F any] struct {
	EZ   EZ
	Path string
	Auth bool

	Create func(ctx context.Context, in C) (T, error)
	Get    func(ctx context.Context, id int64) (T, error)
	List   func(ctx context.Context, f F) ([]T, error)
	Update func(ctx context.Context, id int64, in U) (T, error)
	Delete func(ctx context.Context, id int64) error

	Hooks CrudHooks[F]
}

func Crud[T any, C any, U any, F any](cfg CrudConfig[T, C, U, F]) {
	if cfg.Create != nil {
		RegisterAction(cfg.EZ, Action[C, T]{
			Method: http.MethodPost,
			Path:   cfg.Path,
			Binder: BindJSON,
			Auth:   cfg.Auth,
			Handler: func(c *gin.Context, in *C) (T, error) {
				return cfg.Create(c.Request.Context(), *in)
			},
		})
	}

	if cfg.List != nil {
		RegisterAction(cfg.EZ, Action[F, []T]{
			Method: http.MethodGet,
			Path:   cfg.Path,
			Binder: BindQuery,
			Auth:   cfg.Auth,
			Handler: func(c *gin.Context, f *F) ([]T, error) {
				if cfg.Hooks.ScopeList != nil {
					cfg.Hooks.ScopeList(c, f)
				}
				return cfg.List(c.Request.Context(), *f)
			},
		})
	}

	if cfg.Get != nil {
		RegisterAction(cfg.EZ, Action[struct{}, T]{
			Method: http.MethodGet,
			Path:   cfg.Path + "/:id",
			Binder: BindNone,
			Auth:   cfg.Auth,
			Handler: func(c *gin.Context, _ *struct{}) (T, error) {
				var zero T
				id, err := ParseID(c, "id")
				if err != nil {
					return zero, err
				}
				return cfg.Get(c.Request.Context(), id)
			},
		})
	}

	if cfg.Update != nil {
		// 先解析 id 再绑定 body：非法 id 直接 400
		RegisterAction(cfg.EZ, Action[struct{}, T]{
			Method: http.MethodPut,
			Path:   cfg.Path + "/:id",
			Binder: BindNone,
			Auth:   cfg.Auth,
			Handler: func(c *gin.Context, _ *struct{}) (T, error) {
				var zero T
				id, err := ParseID(c, "id")
				if err != nil {
					return zero, err
				}
				var in U
				if err := c.ShouldBindJSON(&in); err != nil {
					return zero, bindError(err)
				}
				return cfg.Update(c.Request.Context(), id, in)
			},
		})
	}

	if cfg.Delete != nil {
		RegisterAction(cfg.EZ, Action[struct{}, gin.H]{
			Method: http.MethodDelete,
			Path:   cfg.Path + "/:id",
			Binder: BindNone,
			Auth:   cfg.Auth,
			Handler: func(c *gin.Context, _ *struct{}) (gin.H, error) {
				id, err := ParseID(c, "id")
				if err != nil {
					return nil, err
				}
				if err := cfg.Delete(c.Request.Context(), id); err != nil {
					return nil, err
				}
				return gin.H{"success": true}, nil
			},
		})
	}
}
