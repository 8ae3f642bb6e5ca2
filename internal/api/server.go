package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-finance-api/internal/api/handler"
	"github.com/vfg2006/ads-finance-api/internal/api/handler/router"
	"github.com/vfg2006/ads-finance-api/internal/config"
	"github.com/vfg2006/ads-finance-api/internal/scheduler"
	"github.com/vfg2006/ads-finance-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-finance-api/internal/usecases/entries"
	"github.com/vfg2006/ads-finance-api/internal/usecases/exchanging"
	"github.com/vfg2006/ads-finance-api/internal/usecases/ingesting"
	"github.com/vfg2006/ads-finance-api/internal/usecases/products"
	"github.com/vfg2006/ads-finance-api/internal/usecases/reporting"
	"github.com/vfg2006/ads-finance-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Server struct {
	httpServer *http.Server
}

func notFoundHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"error": "rota não encontrada",
		})
	})
}

func New(
	config *config.Config,
	ingestService ingesting.Ingester,
	entryService entries.EntryService,
	productService products.ProductService,
	reportService reporting.Reporter,
	rateService exchanging.RateManager,
	rateSyncService *scheduler.ExchangeRateSyncService,
	authenticator authenticating.Authenticator,
) (*Server, error) {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.Ingestion(ingestService, config)...),
		router.WithRoutes(handler.Products(productService)...),
		router.WithRoutes(handler.Entries(entryService)...),
		router.WithRoutes(handler.Reports(reportService)...),
		router.WithRoutes(handler.Rates(rateService)...),
		router.WithRoutes(handler.CronJobs(rateSyncService)...),
		router.WithNotFound(notFoundHandler()),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(authenticator),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	// Aguardar pelo sinal ou pelo cancelamento do contexto
	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	// Define timeout para desligamento
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
