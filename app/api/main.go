package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"

	"github.com/x-xyz/xionmarket/base/ctx"
	"github.com/x-xyz/xionmarket/base/database/mongoclient"
	"github.com/x-xyz/xionmarket/base/log"
	bValidator "github.com/x-xyz/xionmarket/base/validator"
	"github.com/x-xyz/xionmarket/config"
	"github.com/x-xyz/xionmarket/domain/swap"
	mmiddleware "github.com/x-xyz/xionmarket/middleware"
	"github.com/x-xyz/xionmarket/service/cache"
	"github.com/x-xyz/xionmarket/service/cache/provider/primitive"
	"github.com/x-xyz/xionmarket/service/chain"
	"github.com/x-xyz/xionmarket/service/query"
	hc_delivery "github.com/x-xyz/xionmarket/stores/healthcheck/delivery/http"
	hc_repo "github.com/x-xyz/xionmarket/stores/healthcheck/repository"
	hc_usecase "github.com/x-xyz/xionmarket/stores/healthcheck/usecase"
	swap_delivery "github.com/x-xyz/xionmarket/stores/swap/delivery/http"
	swap_repository "github.com/x-xyz/xionmarket/stores/swap/repository"
	swap_usecase "github.com/x-xyz/xionmarket/stores/swap/usecase"
)

func main() {
	configPath := pflag.String("config", "", "yaml config file")
	pflag.Parse()

	context := ctx.Background()

	cfg, err := config.Load(*configPath)
	if err != nil {
		context.WithField("err", err).Panic("config.Load failed")
	}
	if cfg.Debug {
		log.SetDebug(true)
		context.Info("Service RUN on DEBUG mode")
	}

	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware(cfg.Timeout)
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	validate := bValidator.New()
	e.Validator = bValidator.NewCustomValidator(validate)

	context.WithFields(log.Fields{
		"network": cfg.Network.Name,
		"chainId": cfg.Network.ChainId,
		"lcdUrl":  cfg.Network.LcdUrl,
	}).Info("config")

	// init chain gateway, reads only
	chainService := chain.NewClient(&chain.ClientCfg{
		HttpClient:    http.Client{},
		LcdUrl:        cfg.Network.LcdUrl,
		Timeout:       cfg.Timeout,
		RetryAttempts: cfg.Retry.Attempts,
		RetryDelay:    cfg.Retry.Delay,
		RetryMaxDelay: cfg.Retry.MaxDelay,
	})

	// init mongo client
	var (
		mongoClient *mongoclient.Client
		recordRepo  swap.RecordRepo
	)
	if cfg.Mongo.Uri != "" {
		context.Info("init mongo")
		mongoClient = mongoclient.MustConnectMongoClient(cfg.Mongo.Uri, cfg.Mongo.DbName, 2)
		recordRepo = swap_repository.NewRecordRepo(query.New(mongoClient))
	}

	configCache := cache.New(cache.ServiceConfig{
		Ttl:   cfg.ConfigTtl,
		Pfx:   "config",
		Cache: primitive.NewPrimitive("config", 8),
	})

	// construct repository, usecase and delivery
	hcUsecase := hc_usecase.New(hc_repo.New(mongoClient, chainService))
	swapUsecase := swap_usecase.NewSwapUseCase(&swap_usecase.SwapUseCaseCfg{
		Gateway:     chainService,
		RecordRepo:  recordRepo,
		ConfigCache: configCache,
		Validator:   validate,
	})

	hc_delivery.New(e, hcUsecase)
	httpCache := mmiddleware.CacheHttp(primitive.NewPrimitive("httpCacheMiddleware", 64), 5*time.Second)
	swap_delivery.New(e, swapUsecase, recordRepo, cfg.MarketplaceAddress, cfg.Network.Prefix, httpCache)

	go func() {
		if err := e.Start(cfg.ServerAddress); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
	if mongoClient != nil {
		_ = mongoClient.Disconnect(ctx)
	}
}
