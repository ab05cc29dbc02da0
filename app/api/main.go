package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	bCtx "github.com/bearhustle/goapi/base/ctx"
	"github.com/bearhustle/goapi/base/database/pgclient"
	"github.com/bearhustle/goapi/base/log"
	bValidator "github.com/bearhustle/goapi/base/validator"
	"github.com/bearhustle/goapi/domain"
	mmiddleware "github.com/bearhustle/goapi/middleware"
	hc_delivery "github.com/bearhustle/goapi/stores/healthcheck/delivery/http"
	hc_repo "github.com/bearhustle/goapi/stores/healthcheck/repository"
	hc_usecase "github.com/bearhustle/goapi/stores/healthcheck/usecase"
	listing_delivery "github.com/bearhustle/goapi/stores/listing/delivery/http"
	listing_repository "github.com/bearhustle/goapi/stores/listing/repository"
	listing_usecase "github.com/bearhustle/goapi/stores/listing/usecase"
)

func init() {
	// local overrides, absent in deployed environments
	_ = godotenv.Load()

	viper.SetConfigType("yaml")
	viper.SetConfigFile(`infra/configs/config.yaml`)
	if err := viper.ReadInConfig(); err != nil {
		panic(err)
	}
	viper.AutomaticEnv()

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := bCtx.Background()

	context.Info("init postgres")
	pgUri := viper.GetString("postgres.uri")
	pgClient := pgclient.MustConnectPgClient(pgUri)
	defer pgClient.Close()

	nftContract := viper.GetString("contracts.nft")
	marketplaceContract := viper.GetString("contracts.marketplace")
	for _, addr := range []string{nftContract, marketplaceContract} {
		if !bValidator.IsValidAddress(addr) {
			log.Log().WithField("address", addr).Panic("invalid contract address in config")
		}
	}

	hcRepo := hc_repo.New(pgClient)
	listingRepo := listing_repository.NewListingRepo(pgClient.Pool())

	hcUsecase := hc_usecase.New(hcRepo)
	listingUsecase := listing_usecase.New(&listing_usecase.ListingUseCaseCfg{
		ListingRepo:         listingRepo,
		NftContract:         domain.Address(nftContract),
		MarketplaceContract: domain.Address(marketplaceContract),
	})

	hc_delivery.New(e, hcUsecase)
	listing_delivery.New(e, listingUsecase)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := bCtx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
