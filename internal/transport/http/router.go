package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/hotel-booking-api/internal/application/order"
	"github.com/hotel-booking-api/internal/application/verify"
	"github.com/hotel-booking-api/internal/config"
	jwtinfra "github.com/hotel-booking-api/internal/infrastructure/jwt"
	"github.com/hotel-booking-api/internal/infrastructure/smtp"
	"github.com/hotel-booking-api/internal/transport/http/handler"
	appmiddleware "github.com/hotel-booking-api/internal/transport/http/middleware"
	"golang.org/x/time/rate"
)

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	UserRepo    UserRepository
	OrderRepo   OrderRepository
	RoomRepo    RoomRepository
	Mailer      smtp.Mailer
	JWTProvider *jwtinfra.Provider
}

// NewRouter builds and returns the application router. The returned stop
// function releases the rate limiter's background sweeper.
func NewRouter(cfg *config.Config, deps *Deps) (http.Handler, func()) {
	r := chi.NewRouter()
	// Forwarding headers are client-controlled unless a proxy we run sets them.
	if cfg.TrustProxy {
		r.Use(chimiddleware.RealIP)
	}
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Without a key there is no way to verify a session, so orders stay closed.
	authMw := appmiddleware.DenyAll
	if deps.JWTProvider != nil {
		authMw = appmiddleware.Auth(deps.JWTProvider)
	}

	verifyRL := appmiddleware.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)

	verifySvc := verify.NewService(verify.ServiceDeps{
		UserRepo: deps.UserRepo,
		Mailer:   deps.Mailer,
	})
	orderSvc := order.NewService(order.ServiceDeps{
		OrderRepo: deps.OrderRepo,
		RoomRepo:  deps.RoomRepo,
	})

	healthH := handler.NewHealthHandler()
	verifyH := handler.NewVerifyHandler(verifySvc)
	orderH := handler.NewOrderHandler(orderSvc)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthH.Check)

		r.Route("/verify", func(r chi.Router) {
			r.Use(verifyRL.Limit)
			r.With(appmiddleware.RequireJSONBody).Post("/email", verifyH.CheckEmail)
			r.With(appmiddleware.RequireJSONBody).Post("/generateEmailCode", verifyH.GenerateEmailCode)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Use(authMw)
			r.Get("/", orderH.List)
			r.Get("/{id}", orderH.Get)
			r.With(appmiddleware.RequireJSONBody).Post("/", orderH.Create)
			r.Delete("/{id}", orderH.Cancel)
			r.With(appmiddleware.RequireJSONBody).Post("/sendOrderEmail", verifyH.SendOrderEmail)
		})
	})

	return r, verifyRL.Stop
}
