package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/brewpoints/docs"
	adminhandlers "github.com/GlebRadaev/brewpoints/internal/handlers/admin"
	authhandlers "github.com/GlebRadaev/brewpoints/internal/handlers/auth"
	memberhandlers "github.com/GlebRadaev/brewpoints/internal/handlers/member"
	rankhandlers "github.com/GlebRadaev/brewpoints/internal/handlers/rank"
	"github.com/GlebRadaev/brewpoints/internal/metrics"
	"github.com/GlebRadaev/brewpoints/internal/service"
	"github.com/GlebRadaev/brewpoints/pkg/auth"
	"github.com/GlebRadaev/brewpoints/pkg/ratelimit"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type MemberHandler interface {
	GetProfile(w http.ResponseWriter, r *http.Request)
	UpdateProfile(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
	GetRewards(w http.ResponseWriter, r *http.Request)
	Redeem(w http.ResponseWriter, r *http.Request)
	GetRedemptions(w http.ResponseWriter, r *http.Request)
	GetReferral(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	SearchUsers(w http.ResponseWriter, r *http.Request)
	AddPoints(w http.ResponseWriter, r *http.Request)
	SetRole(w http.ResponseWriter, r *http.Request)
	ListRewards(w http.ResponseWriter, r *http.Request)
	CreateReward(w http.ResponseWriter, r *http.Request)
	UpdateReward(w http.ResponseWriter, r *http.Request)
	CompleteRedemption(w http.ResponseWriter, r *http.Request)
	GetSettings(w http.ResponseWriter, r *http.Request)
	UpdateSettings(w http.ResponseWriter, r *http.Request)
	GetAnalytics(w http.ResponseWriter, r *http.Request)
	RunBirthdaySweep(w http.ResponseWriter, r *http.Request)
}

type RankHandler interface {
	GetRank(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler   AuthHandler
	MemberHandler MemberHandler
	AdminHandler  AdminHandler
	RankHandler   RankHandler

	jwtService  auth.JWTServiceInterface
	authLimiter *ratelimit.Limiter
}

func New(
	s *service.Services,
	birthday adminhandlers.BirthdaySweeper,
	jwtService auth.JWTServiceInterface,
	authLimiter *ratelimit.Limiter,
) *Handlers {
	return &Handlers{
		AuthHandler:   authhandlers.New(s.AuthService),
		MemberHandler: memberhandlers.New(s.ProfileService, s.LedgerService, s.RewardService, s.ReferralService),
		AdminHandler: adminhandlers.New(
			s.ProfileService,
			s.LedgerService,
			s.RewardService,
			s.SettingsService,
			s.AnalyticsService,
			birthday,
		),
		RankHandler: rankhandlers.New(s.ProfileService),
		jwtService:  jwtService,
		authLimiter: authLimiter,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		metrics.InstrumentHandler,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Handle("/metrics", metrics.Handler())
	r.Get("/api/rank", h.RankHandler.GetRank)

	r.Route("/api/user", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			if h.authLimiter != nil {
				r.Use(h.authLimiter.Handler)
			}
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware(h.jwtService))
			r.Route("/profile", func(r chi.Router) {
				r.Get("/", h.MemberHandler.GetProfile)
				r.Patch("/", h.MemberHandler.UpdateProfile)
			})
			r.Get("/transactions", h.MemberHandler.GetTransactions)
			r.Route("/rewards", func(r chi.Router) {
				r.Get("/", h.MemberHandler.GetRewards)
				r.Post("/{id}/redeem", h.MemberHandler.Redeem)
			})
			r.Get("/redemptions", h.MemberHandler.GetRedemptions)
			r.Get("/referral", h.MemberHandler.GetReferral)
		})
	})

	r.Route("/api/admin", func(r chi.Router) {
		r.Use(auth.AuthMiddleware(h.jwtService), auth.RequireRole("admin"))
		r.Route("/users", func(r chi.Router) {
			r.Get("/", h.AdminHandler.SearchUsers)
			r.Post("/{id}/points", h.AdminHandler.AddPoints)
			r.Put("/{id}/role", h.AdminHandler.SetRole)
		})
		r.Route("/rewards", func(r chi.Router) {
			r.Get("/", h.AdminHandler.ListRewards)
			r.Post("/", h.AdminHandler.CreateReward)
			r.Put("/{id}", h.AdminHandler.UpdateReward)
		})
		r.Post("/redemptions/{id}/complete", h.AdminHandler.CompleteRedemption)
		r.Route("/settings", func(r chi.Router) {
			r.Get("/", h.AdminHandler.GetSettings)
			r.Put("/", h.AdminHandler.UpdateSettings)
		})
		r.Get("/analytics", h.AdminHandler.GetAnalytics)
		r.Post("/birthday-bonuses", h.AdminHandler.RunBirthdaySweep)
	})

	return r
}
