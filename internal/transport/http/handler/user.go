package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"eco-waste-api/internal/core/auth"
	"eco-waste-api/internal/domain"
	"eco-waste-api/internal/service"
	"eco-waste-api/internal/transport/http/ez"
)

// User 注册 / 登录 / 点查
type User struct {
	svc   *service.UserService
	jwter *auth.JWTer
	log   *zap.Logger
}

func NewUser(s *service.UserService, j *auth.JWTer, l *zap.Logger) *User {
	return &User{svc: s, jwter: j, log: l}
}

func (h *User) Priority() int { return 10 }

type loginIn struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginOut struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

func (h *User) MountAPI(g *gin.RouterGroup) {
	e := ez.New(g, h.log)

	ez.RegisterAction(e, ez.Action[domain.NewUser, domain.User]{
		Method: http.MethodPost,
		Path:   "/auth/signup",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *domain.NewUser) (domain.User, error) {
			return h.svc.Signup(c.Request.Context(), *in)
		},
	})

	ez.RegisterAction(e, ez.Action[loginIn, loginOut]{
		Method: http.MethodPost,
		Path:   "/auth/login",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *loginIn) (loginOut, error) {
			u, err := h.svc.Login(c.Request.Context(), in.Username, in.Password)
			if errors.Is(err, service.ErrInvalidCredentials) {
				return loginOut{}, ez.Unauthorized("invalid credentials")
			}
			if err != nil {
				return loginOut{}, err
			}
			tok, err := h.jwter.Issue(u.ID, u.Username)
			if err != nil {
				return loginOut{}, ez.Internal("issue token failed", err)
			}
			return loginOut{Token: tok, User: u}, nil
		},
	})

	ez.Crud(ez.CrudConfig[domain.User, domain.NewUser, struct{}, struct{}]{
		EZ:   e,
		Path: "/users",
		Get:  h.svc.Get,
	})
}

func (h *User) MountAdmin(g *gin.RouterGroup) {
	ez.RegisterAction(ez.New(g, h.log), ez.Action[struct{}, domain.User]{
		Method: http.MethodGet,
		Path:   "/users/by-username/:username",
		Binder: ez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, _ *struct{}) (domain.User, error) {
			return h.svc.GetByUsername(c.Request.Context(), c.Param("username"))
		},
	})
}
