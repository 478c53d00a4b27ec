package main

import (
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"ProductCatalog/internal/config"
	"ProductCatalog/internal/product"
	"ProductCatalog/pkg/kit"
)

func main() {
	service := "product"

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	log, err := kit.NewLogger(service, cfg.Env, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	svc := product.NewCatalogService(product.NewStubRepository(), log)
	s := &product.Server{Service: svc, Log: log}

	h := product.NewHandler(s, product.HTTPDeps{
		Log:                log,
		Service:            service,
		Registry:           reg,
		MetricsEnabled:     cfg.Metrics.Enabled,
		MetricsToken:       cfg.Metrics.Token,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		Docs:               cfg.IsDevelopment(),
	})

	log.Info("config loaded",
		zap.String("env", cfg.Env),
		zap.String("log_level", cfg.LogLevel),
		zap.Bool("metrics", cfg.Metrics.Enabled),
		zap.Bool("docs", cfg.IsDevelopment()),
	)

	if err := kit.RunHTTPServer(cfg.Server.Addr(), h, log, cfg.Server.ShutdownTimeout); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}
