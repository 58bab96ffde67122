package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-dashboard-api/infrastructure/integrator/sheets"
	"github.com/vfg2006/campaign-dashboard-api/infrastructure/integrator/sheets/sheetsclient"
	"github.com/vfg2006/campaign-dashboard-api/infrastructure/integrator/versioner"
	"github.com/vfg2006/campaign-dashboard-api/infrastructure/integrator/versioner/versionerclient"
	"github.com/vfg2006/campaign-dashboard-api/internal/api"
	"github.com/vfg2006/campaign-dashboard-api/internal/cache"
	"github.com/vfg2006/campaign-dashboard-api/internal/config"
	"github.com/vfg2006/campaign-dashboard-api/internal/scheduler"
	"github.com/vfg2006/campaign-dashboard-api/internal/usecases/refreshing"
	"github.com/vfg2006/campaign-dashboard-api/internal/usecases/reporting"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Google.CredentialsJSON == "" {
		logrus.Warn("GOOGLE_CREDENTIALS_JSON não configurado, métricas das planilhas ficarão indisponíveis")
	}

	logrus.WithFields(logrus.Fields{
		"clients":        len(cfg.Clients),
		"versioner_url":  cfg.Versioner.URL,
		"versioner_mode": cfg.Versioner.Mode,
		"cache_ttl":      cfg.Cache.TTL.String(),
	}).Info("Configuração do dashboard carregada")

	store := cache.New(nil)

	sheetsIntegrator := sheets.New(cfg, sheetsclient.NewClient(cfg))
	versionerIntegrator := versioner.New(cfg, versionerclient.NewClient(cfg))

	reportingService := reporting.NewService(cfg, sheetsIntegrator, versionerIntegrator, store, nil)
	refreshService := refreshing.NewService(reportingService, store)

	// Agendador diário que aquece o cache antes do horário de uso
	refreshSyncService := scheduler.NewRefreshSyncService(refreshService, cfg)
	if err := refreshSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de atualização do cache")
	} else {
		logrus.Info("Agendador de atualização do cache iniciado com sucesso")
	}

	server, err := api.New(cfg, reportingService, refreshService, refreshSyncService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
