// cmd/api/main.go
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"time"

	"github.com/issuetrackhq/issuetrack/internal/auth"
	"github.com/issuetrackhq/issuetrack/internal/config"
	"github.com/issuetrackhq/issuetrack/internal/handler"
	"github.com/issuetrackhq/issuetrack/internal/middleware"
	"github.com/issuetrackhq/issuetrack/internal/repository"
	"github.com/issuetrackhq/issuetrack/internal/service"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "startup error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Initialize structured logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     slog.LevelInfo,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{
					Key:   a.Key,
					Value: slog.StringValue(a.Value.Time().Format(time.RFC3339)),
				}
			}
			return a
		},
	}))
	slog.SetDefault(log)

	cfg := config.Load()

	db, err := setupDatabase(cfg)
	if err != nil {
		return fmt.Errorf("setting up database: %w", err)
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	orgRepo := repository.NewOrganizationRepository(db)
	invitationRepo := repository.NewInvitationRepository(db)
	issueRepo := repository.NewIssueRepository(db)
	contributionRepo := repository.NewContributionRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)

	// Auth
	passwordHasher := auth.NewPasswordHasher()
	tokenManager := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpiryPeriod)

	// Services
	auditService := service.NewAuditService(auditRepo, userRepo)
	accessPolicy := service.NewAccessPolicy(orgRepo)
	userService := service.NewUserService(userRepo, passwordHasher, tokenManager, auditService)
	orgService := service.NewOrganizationService(orgRepo, accessPolicy, auditService)
	invitationService := service.NewInvitationService(invitationRepo, orgRepo, userRepo, accessPolicy, auditService)
	issueService := service.NewIssueService(issueRepo, orgRepo, accessPolicy, auditService)
	contributionService := service.NewContributionService(contributionRepo, issueRepo, accessPolicy, auditService)

	// Handlers
	authHandler := handler.NewAuthHandler(userService)
	orgHandler := handler.NewOrganizationHandler(orgService)
	invitationHandler := handler.NewInvitationHandler(invitationService)
	issueHandler := handler.NewIssueHandler(issueService)
	contributionHandler := handler.NewContributionHandler(contributionService)
	auditHandler := handler.NewAuditLogHandler(auditService)

	// Router
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(loggingMiddleware(log))
	r.Use(recoveryMiddleware(log))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", middleware.OrgHeader},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Group(func(r chi.Router) {
			r.Use(chimw.AllowContentType("application/json"))

			r.Post("/users/register", authHandler.Register)
			r.Post("/users/login", authHandler.Login)
		})

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware(tokenManager))
			r.Use(middleware.OrganizationContext)

			r.Get("/users", authHandler.ListUsers)
			r.Get("/users/me/organizations", orgHandler.MyOrganizations)
			r.Get("/users/me/contributions/stats", contributionHandler.Stats)

			r.Route("/organizations", func(r chi.Router) {
				r.Post("/", orgHandler.Create)
				r.Post("/join", orgHandler.JoinByCode)
				r.Get("/{id}/members", orgHandler.Members)
				r.Post("/{id}/invite-code", orgHandler.GenerateInviteCode)
				r.Post("/{id}/invitations", invitationHandler.Create)
			})

			r.Route("/invitations", func(r chi.Router) {
				r.Get("/me", invitationHandler.Mine)
				r.Post("/{id}/accept", invitationHandler.Accept)
				r.Post("/{id}/decline", invitationHandler.Decline)
			})

			r.Route("/issues", func(r chi.Router) {
				r.Post("/", issueHandler.Create)
				r.Get("/", issueHandler.List)
				r.Patch("/{id}/status", issueHandler.UpdateStatus)
				r.Patch("/{id}/assign", issueHandler.Assign)
				r.Post("/{id}/request-assignment", issueHandler.RequestAssignment)
				r.Delete("/{id}", issueHandler.Delete)
				r.Post("/{id}/contribute", contributionHandler.Request)
				r.Post("/{id}/proofs", contributionHandler.SubmitProof)
			})

			r.Patch("/proofs/{proofId}/review", contributionHandler.ReviewProof)

			r.Get("/audit-logs", auditHandler.List)
		})
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)

	go func() {
		log.Info("server starting", "port", cfg.Server.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		log.Info("shutdown started", "signal", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			srv.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

func setupDatabase(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.SSLMode,
	)

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting database instance: %w", err)
	}

	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return db, nil
}

func loggingMiddleware(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				log.Info("request completed",
					"method", r.Method,
					"path", r.URL.Path,
					"duration", time.Since(start),
					"status", ww.Status(),
					"size", ww.BytesWritten(),
					"requestID", chimw.GetReqID(r.Context()),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

func recoveryMiddleware(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					log.Error("panic recovered",
						"panic", rvr,
						"stack", string(debug.Stack()),
						"requestID", chimw.GetReqID(r.Context()),
					)

					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					w.Write([]byte(`{"error":"internal server error"}`))
					return
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
