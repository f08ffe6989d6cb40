package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/migge/supershopcart/internal/service"
	"github.com/migge/supershopcart/internal/transport/http/handlers"
	"github.com/migge/supershopcart/internal/transport/http/middleware"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger   *slog.Logger
	Timeout  time.Duration
	BasePath string // например, "/api"; если пустой — роуты регистрируются на корне.

	// EnableDevLogin регистрирует /auth/dev/login. Включается только
	// из конфига unsafe_dev_login; в остальных случаях роута не существует.
	EnableDevLogin bool
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(svc *service.Service, opts Options) http.Handler {
	root := chi.NewRouter()

	// Зависимости хендлеров.
	h := handlers.New(svc)

	// Регистрация маршрутов.
	if opts.BasePath != "" {
		sub := chi.NewRouter()
		registerRoutes(sub, h, opts)
		root.Mount(opts.BasePath, sub)
	} else {
		registerRoutes(root, h, opts)
	}

	// Middleware (внешний -> внутренний).
	mws := []middleware.Middleware{
		middleware.Recover(),            // безопасно ловим паники
		middleware.RequestID(),          // формируем/прокидываем X-Request-Id (до логирования!)
		middleware.Logging(opts.Logger), // кладём request-scoped логгер в контекст и логируем
		middleware.AuthBearer(svc),      // ворота аутентификации: принципал в контекст
	}
	if opts.Timeout > 0 {
		mws = append(mws, middleware.Timeout(opts.Timeout)) // общий дедлайн запроса
	}

	return middleware.Chain(root, mws...)
}

// registerRoutes — единая точка регистрации всех REST-эндпойнтов.
func registerRoutes(r chi.Router, h *handlers.Handlers, opts Options) {
	// auth
	r.Post("/auth/google", h.LoginGoogle)
	r.Post("/auth/register", h.Register)
	r.Post("/auth/login", h.Login)
	r.Post("/auth/refresh", h.Refresh)
	r.Post("/auth/logout", h.Logout)
	r.Post("/auth/logout_all", h.LogoutAll)
	if opts.EnableDevLogin {
		r.Post("/auth/dev/login", h.DevLogin)
	}

	// shoppers
	r.Get("/me", h.Me)

	// carts
	r.Post("/carts", h.CreateCart)
	r.Get("/carts", h.ListCarts)
	r.Get("/carts/{cartID}", h.GetCart)
	r.Delete("/carts/{cartID}", h.DeleteCart)
	r.Post("/carts/{cartID}/items", h.AddItem)
	r.Patch("/carts/{cartID}/items/{index}", h.MarkItem)
	r.Post("/carts/{cartID}/complete", h.CompleteCart)
	r.Post("/carts/{cartID}/share", h.ShareCart)
	r.Delete("/carts/{cartID}/share/{shopperID}", h.UnshareCart)
}
