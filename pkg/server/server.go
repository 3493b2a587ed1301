package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	commandhandler "github.com/life-tools/life-atlas/pkg/handlers/command"
	insighthandler "github.com/life-tools/life-atlas/pkg/handlers/insight"
	lifemiddleware "github.com/life-tools/life-atlas/pkg/server/middleware"
)

type WebAPI struct {
	router *chi.Mux
	logger *zerolog.Logger
	server *http.Server
}

type Dependencies struct {
	Insights   insighthandler.Insights
	Dispatcher commandhandler.Dispatcher
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

func NewWebAPI(logger zerolog.Logger, config Config) *WebAPI {
	insights := insighthandler.NewHandler(config.Dependencies.Insights)
	commands := commandhandler.NewHandler(config.Dependencies.Dispatcher)

	router := chi.NewRouter()

	router.Use(lifemiddleware.Logger(&logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/insights", insights.ListModules)
		r.Get("/insights/{module}", insights.GetAnalysis)
		r.Post("/insights/{module}/refresh", insights.RefreshAnalysis)
		r.Post("/commands/utterance", commands.SubmitUtterance)
		r.Post("/commands/clarify", commands.SubmitClarification)
	})

	return &WebAPI{
		router: router,
		logger: &logger,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: router,
		},
	}
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
