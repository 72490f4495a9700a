package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type RouterConfig struct {
	Env            string
	AllowedOrigins []string
}

func NewRouter(
	cfg RouterConfig,
	dashboardHandler DashboardHandler,
	predictionHandler PredictionHandler,
	analysisHandler AnalysisHandler,
	batchHandler BatchHandler,
	settingsHandler SettingsHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "shiftsense"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
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

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/dashboard", dashboardHandler.GetDashboard)

		r.Route("/predictions", func(r chi.Router) {
			r.Get("/", predictionHandler.List)
			r.Post("/", predictionHandler.Save)
		})

		r.Post("/analysis", analysisHandler.Analyze)

		r.Route("/batch", func(r chi.Router) {
			r.Post("/", batchHandler.Upload)
			r.Route("/{jobID}", func(r chi.Router) {
				r.Get("/", batchHandler.Get)
				r.Get("/events", batchHandler.Events)
				r.Post("/cancel", batchHandler.Cancel)
			})
		})

		r.Route("/settings", func(r chi.Router) {
			r.Get("/webhook", settingsHandler.GetWebhook)
			r.Put("/webhook", settingsHandler.SaveWebhook)
		})
	})
	return r
}
