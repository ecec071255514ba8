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
	"github.com/spf13/viper"

	"github.com/otccloak/goapi/base/backoff"
	bCtx "github.com/otccloak/goapi/base/ctx"
	"github.com/otccloak/goapi/base/database/mongoclient"
	"github.com/otccloak/goapi/base/log"
	"github.com/otccloak/goapi/domain"
	mmiddleware "github.com/otccloak/goapi/middleware"
	"github.com/otccloak/goapi/service/query"
	"github.com/otccloak/goapi/service/telos"
	auction_repository "github.com/otccloak/goapi/stores/auction/repository"
	auction_usecase "github.com/otccloak/goapi/stores/auction/usecase"
)

func init() {
	configFile := pflag.String("config", "infra/configs/auction-mirror/config.yaml", "path to the config file")
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
	ctx, cancel := bCtx.WithCancel(bCtx.Background())

	// start server to pass cloud run health check
	startEchoServer()

	interval := viper.GetDuration("mirror.interval")
	rpcUrl := viper.GetString("telos.rpcUrl")
	rpcTimeout := viper.GetDuration("telos.timeout")
	auctionContract := domain.AccountName(viper.GetString("telos.auctionContract"))

	ctx.WithFields(log.Fields{
		"rpcUrl":          rpcUrl,
		"auctionContract": auctionContract,
		"interval":        interval,
	}).Info("config")

	ctx.Info("init mongo")
	q := initMongo()

	telosClient := telos.NewClient(&telos.ClientCfg{
		HttpClient: http.Client{},
		RpcUrl:     rpcUrl,
		Timeout:    rpcTimeout,
	})

	mirror := auction_usecase.NewMirror(&auction_usecase.MirrorCfg{
		Telos:      telosClient,
		ConfigRepo: auction_repository.NewAuctionConfigRepo(q),
		RoundRepo:  auction_repository.NewRoundRepo(q),
		Contract:   auctionContract,
	})

	go run(ctx, mirror.SyncOnce, interval)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	cancel()
}

// run invokes sync on every tick and backs off exponentially while the
// chain rpc is failing.
func run(ctx bCtx.Ctx, sync func(bCtx.Ctx) error, interval time.Duration) {
	b := backoff.NewExponential(interval, 10*interval)
	for {
		if err := sync(ctx); err != nil {
			ctx.WithField("err", err).Error("sync failed")
		} else {
			b.Reset()
		}
		if err := b.Backoff(ctx); err != nil {
			ctx.WithField("err", err).Info("stopping mirror")
			return
		}
	}
}

func startEchoServer() {
	context := bCtx.Background()

	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())

	address := viper.GetString("server.address")
	context.WithField("address", address).Info("starting server")
	go func() {
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			context.Error("shutting down the server")
		}
	}()
}

func initMongo() query.Mongo {
	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	checkIndex := viper.GetBool("mongo.checkIndex")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	return query.New(mongoClient, checkIndex)
}
