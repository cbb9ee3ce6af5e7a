package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/shiftlens/shiftlens-backend-go/internal/config"
)

func NewRouter(
	cfg *config.Config,
	rosterHandler RosterHandler,
	analyticsHandler AnalyticsHandler,
	adminConfigHandler AdminConfigHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "shiftlens"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.App.CORSAllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/roster", func(r chi.Router) {
			r.Post("/upload", rosterHandler.Upload)
			r.Post("/import-url", rosterHandler.ImportFromURL)
			r.Get("/", rosterHandler.ListRecords)
			r.Get("/staff", rosterHandler.ListStaff)
		})

		r.Route("/analytics", func(r chi.Router) {
			r.Get("/shift-distribution", analyticsHandler.ShiftDistribution)
			r.Get("/median", analyticsHandler.MedianAcrossStaff)
			r.Get("/weekday-weekend", analyticsHandler.WeekdayWeekendSplit)
			r.Get("/admin-percentage", analyticsHandler.AdminPercentage)
		})

		r.Route("/admin-config", func(r chi.Router) {
			r.Get("/", adminConfigHandler.Get)
			r.Put("/", adminConfigHandler.Replace)
			r.Post("/import", adminConfigHandler.Import)
			r.Get("/export", adminConfigHandler.Export)
		})
	})
	return r
}
