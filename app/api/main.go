package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/otccloak/goapi/base/ctx"
	"github.com/otccloak/goapi/base/database/mongoclient"
	"github.com/otccloak/goapi/base/log"
	bValidator "github.com/otccloak/goapi/base/validator"
	"github.com/otccloak/goapi/domain"
	mmiddleware "github.com/otccloak/goapi/middleware"
	"github.com/otccloak/goapi/service/query"
	auction_repository "github.com/otccloak/goapi/stores/auction/repository"
	auction_usecase "github.com/otccloak/goapi/stores/auction/usecase"
	auth_delivery "github.com/otccloak/goapi/stores/auth/delivery/http"
	auth_middleware "github.com/otccloak/goapi/stores/auth/delivery/http/middleware"
	auth_usecase "github.com/otccloak/goapi/stores/auth/usecase"
	deposit_delivery "github.com/otccloak/goapi/stores/deposit/delivery/http"
	deposit_usecase "github.com/otccloak/goapi/stores/deposit/usecase"
	hc_delivery "github.com/otccloak/goapi/stores/healthcheck/delivery/http"
	hc_repo "github.com/otccloak/goapi/stores/healthcheck/repository"
	hc_usecase "github.com/otccloak/goapi/stores/healthcheck/usecase"
	listing_delivery "github.com/otccloak/goapi/stores/listing/delivery/http"
	listing_repository "github.com/otccloak/goapi/stores/listing/repository"
	listing_usecase "github.com/otccloak/goapi/stores/listing/usecase"
	marketconfig_delivery "github.com/otccloak/goapi/stores/marketconfig/delivery/http"
	marketconfig_repository "github.com/otccloak/goapi/stores/marketconfig/repository"
	marketconfig_usecase "github.com/otccloak/goapi/stores/marketconfig/usecase"
	trade_delivery "github.com/otccloak/goapi/stores/trade/delivery/http"
	trade_repository "github.com/otccloak/goapi/stores/trade/repository"
	trade_usecase "github.com/otccloak/goapi/stores/trade/usecase"
)

func init() {
	configFile := pflag.String("config", "infra/configs/config.yaml", "path to the config file")
	pflag.Parse()

	viper.SetConfigType("yaml")
	viper.SetConfigFile(*configFile)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	mmiddleware.SetupCache(16 * 1024 * 1024)

	context := ctx.Background()

	// init mongo client
	context.Info("init mongo")
	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	checkIndex := viper.GetBool("mongo.checkIndex")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	q := query.New(mongoClient, checkIndex)

	marketAccount := domain.AccountName(viper.GetString("market.account"))
	offeredContract := domain.AccountName(viper.GetString("market.offeredContract"))
	paymentContract := domain.AccountName(viper.GetString("market.paymentContract"))
	ownerAccount := domain.AccountName(viper.GetString("market.owner"))

	// construct repository, usecase and delivery
	hcRepo := hc_repo.New(mongoClient)
	listingRepo := listing_repository.NewListingRepo(q)
	listingIdRepo := listing_repository.NewListingIdRepo(q)
	marketConfigRepo := marketconfig_repository.NewMarketConfigRepo(q)
	auctionConfigRepo := auction_repository.NewAuctionConfigRepo(q)
	auctionRoundRepo := auction_repository.NewRoundRepo(q)
	tradeRepo := trade_repository.NewTradeRepo(q)
	transferRepo := trade_repository.NewTransferRepo(q)

	hc := hc_usecase.New(hcRepo)
	oracle := auction_usecase.NewOracle(&auction_usecase.OracleCfg{
		ConfigRepo: auctionConfigRepo,
		RoundRepo:  auctionRoundRepo,
	})
	marketConfig := marketconfig_usecase.New(marketConfigRepo)
	tradeUC := trade_usecase.New(&trade_usecase.TradeUseCaseCfg{
		TradeRepo:        tradeRepo,
		TransferRepo:     transferRepo,
		ListingRepo:      listingRepo,
		MarketConfigRepo: marketConfigRepo,
		Oracle:           oracle,
		Query:            q,
		OfferedContract:  offeredContract,
		PaymentContract:  paymentContract,
	})
	listingUC := listing_usecase.New(&listing_usecase.ListingUseCaseCfg{
		ListingRepo:     listingRepo,
		IdRepo:          listingIdRepo,
		TradeRepo:       tradeRepo,
		TransferRepo:    transferRepo,
		Oracle:          oracle,
		Query:           q,
		OfferedContract: offeredContract,
	})
	depositUC := deposit_usecase.New(&deposit_usecase.DepositUseCaseCfg{
		ListingUseCase:   listingUC,
		TradeUseCase:     tradeUC,
		MarketConfigRepo: marketConfigRepo,
		MarketAccount:    marketAccount,
		OfferedContract:  offeredContract,
		PaymentContract:  paymentContract,
	})
	auth := auth_usecase.New(viper.GetString("auth.jwtSecret"), viper.GetStringMapString("auth.apiKeys"))

	authMiddleware := auth_middleware.New(auth, ownerAccount)

	hc_delivery.New(e, hc)
	auth_delivery.New(e, auth)
	deposit_delivery.New(e, depositUC)
	listing_delivery.New(e, listingUC, oracle, authMiddleware)
	trade_delivery.New(e, tradeUC, authMiddleware)
	marketconfig_delivery.New(e, marketConfig, authMiddleware)

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
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
