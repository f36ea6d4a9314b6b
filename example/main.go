// Command example serves a small localized page using babel with chi.
//
//	go run ./example
//	curl 'localhost:8080/?lang=de&tz=Europe/Vienna'
package main

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/babel"
	"github.com/dmitrymomot/babel/middlewares"
	"github.com/dmitrymomot/babel/pkg/config"
	"github.com/dmitrymomot/babel/pkg/health"
	"github.com/dmitrymomot/babel/pkg/logger"
)

//go:embed templates/*.html
var templates embed.FS

type appConfig struct {
	Addr string `env:"ADDR" envDefault:":8080"`
	Log  logger.Config
}

func main() {
	config.MustLoadEnv()

	var cfg appConfig
	config.MustLoad(&cfg, "APP_")

	log := logger.NewWithSentry(cfg.Log.Sentry,
		logger.FromConfig(cfg.Log),
		logger.WithExtractors(requestID, babel.LocaleExtractor(), babel.TimezoneExtractor()),
	)

	settings, err := babel.LoadSettings(os.Getenv("APP_CONFIG"))
	if err != nil {
		log.Error("failed to load i18n settings", slog.String("error", err.Error()))
		os.Exit(1)
	}

	b := babel.New(
		babel.WithSettings(settings),
		babel.WithRootPath("example"),
		babel.WithLogger(log),
	)

	tmpl := template.Must(template.New("").Funcs(babel.Placeholders()).ParseFS(templates, "templates/*.html"))

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recoverer)
	r.Get("/health/live", health.LivenessHandler())
	r.Get("/health/ready", health.ReadinessHandler(health.Checks{"i18n": b.Healthcheck}, health.WithLogger(log)))

	r.Group(func(r chi.Router) {
		r.Use(middlewares.Babel(b))
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			data := map[string]any{
				"Now":     time.Now(),
				"Started": time.Now().Add(-90 * time.Minute),
				"Items":   3,
				"Total":   42.5,
			}
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			if err := b.ExecuteTemplate(r.Context(), w, tmpl, "index.html", data); err != nil {
				log.ErrorContext(r.Context(), "render failed", slog.String("error", err.Error()))
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}
		})
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("listening", slog.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown failed", slog.String("error", err.Error()))
	}
}

func requestID(ctx context.Context) (slog.Attr, bool) {
	if id := middleware.GetReqID(ctx); id != "" {
		return slog.String("request_id", id), true
	}
	return slog.Attr{}, false
}
