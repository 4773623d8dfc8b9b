package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"

	"github.com/rosterly/attendance-backend-go/internal/config"
)

func NewRouter(
	cfg *config.Config,
	healthHandler HealthHandler,
	authHandler AuthHandler,
	workerHandler WorkerHandler,
	customerHandler CustomerHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-backend"),
		slog.String("version", cfg.App.Version),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.App.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)

	r.Get("/", healthHandler.Health)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
	})

	r.Route("/workers", func(r chi.Router) {
		r.Get("/", workerHandler.ListWorkers)
		r.Get("/all", workerHandler.ListEntries)

		r.Route("/attendance", func(r chi.Router) {
			r.Get("/", workerHandler.GetAttendance)
			r.Post("/", workerHandler.UpdateAttendance)
			r.Get("/report", workerHandler.DownloadReport)
		})
	})

	r.Route("/clients", func(r chi.Router) {
		r.Get("/", customerHandler.NewForm)
		r.Get("/all", customerHandler.List)
		r.Post("/save", customerHandler.Save)
		r.Patch("/update", customerHandler.Update)
		r.Post("/bill", customerHandler.Bill)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", customerHandler.Get)
			r.Delete("/", customerHandler.Delete)
		})
	})

	return r
}
