package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-notes-api/internal/application/auth"
	"github.com/go-notes-api/internal/application/note"
	"github.com/go-notes-api/internal/config"
	"github.com/go-notes-api/internal/infrastructure/google"
	jwtinfra "github.com/go-notes-api/internal/infrastructure/jwt"
	"github.com/go-notes-api/internal/infrastructure/smtp"
	"github.com/go-notes-api/internal/transport/http/handler"
	appmiddleware "github.com/go-notes-api/internal/transport/http/middleware"
)

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	UserRepo    UserRepository
	NoteRepo    NoteRepository
	Mailer      smtp.Mailer
	Verifier    google.TokenVerifier
	JWTProvider *jwtinfra.Provider
}

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", appmiddleware.TokenHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	authSvc := auth.NewService(auth.ServiceDeps{
		UserRepo:    deps.UserRepo,
		Mailer:      deps.Mailer,
		Verifier:    deps.Verifier,
		JWTProvider: deps.JWTProvider,
	})
	noteSvc := note.NewService(deps.NoteRepo)

	healthH := handler.NewHealthHandler()
	authH := handler.NewAuthHandler(authSvc)
	noteH := handler.NewNoteHandler(noteSvc)

	r.Get("/", healthH.Welcome)

	r.Route("/api", func(r chi.Router) {
		// ── Public routes (no auth) ──────────────────────────────────────────
		r.Post("/auth/send-otp", authH.SendSignupOTP)
		r.Post("/auth/signup", authH.VerifySignup)
		r.Post("/auth/google", authH.GoogleLogin)
		r.Post("/auth/login/send-otp", authH.SendLoginOTP)
		r.Post("/auth/login/verify-otp", authH.VerifyLogin)

		// ── Authenticated routes ─────────────────────────────────────────────
		r.Group(func(r chi.Router) {
			r.Use(appmiddleware.Auth(deps.JWTProvider))

			r.Post("/notes", noteH.Create)
			r.Get("/notes", noteH.List)
			r.Delete("/notes/{id}", noteH.Delete)
		})
	})

	return r
}
