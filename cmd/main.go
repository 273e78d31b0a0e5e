package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/skydevhost/skyshop-gateway/docs"
	"github.com/skydevhost/skyshop-gateway/internal/app"
	"github.com/skydevhost/skyshop-gateway/internal/config"
	"github.com/skydevhost/skyshop-gateway/internal/entities"
	"github.com/skydevhost/skyshop-gateway/internal/handler"
	"github.com/skydevhost/skyshop-gateway/internal/notifier"
	"github.com/skydevhost/skyshop-gateway/internal/postgres"
	"github.com/skydevhost/skyshop-gateway/internal/provider"
	"github.com/skydevhost/skyshop-gateway/internal/repo"
	"github.com/skydevhost/skyshop-gateway/internal/service"
	"github.com/skydevhost/skyshop-gateway/internal/worker"
	"github.com/skydevhost/skyshop-gateway/pkg/cache"

	"github.com/joho/godotenv"
)

// @title           Skyshop Gateway API
// @version         1.0
// @description     Документация HTTP API шлюза заказов
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	panicIfErr("failed to apply migrations", postgres.Migrate(db))
	logger.Info("postgres connected")

	ordersRepo := repo.NewOrdersRepo(db)
	catalogCache := cache.NewLRUCache(conf.Catalog.CacheCapacity, conf.Catalog.CacheTTL)

	vp := provider.NewVipaymentGateway(logger, conf.Vipayment)
	mg := provider.NewMoogoldGateway(logger, conf.Moogold)
	jm, err := provider.NewJollymaxGateway(logger, conf.Jollymax)
	panicIfErr("failed to init jollymax gateway", err)

	gateways := map[entities.Provider]provider.Gateway{
		entities.ProviderVipayment: vp,
		entities.ProviderMoogold:   mg,
		entities.ProviderJollymax:  jm,
	}

	tgNotifier := notifier.NewTelegramNotifier(logger, conf.Telegram)
	orderService := service.NewOrderService(logger, ordersRepo, gateways, tgNotifier, mg, jm, catalogCache)
	reconciler := worker.NewReconciler(logger, ordersRepo, gateways, conf.Reconciler.Interval)

	kafkaHandler := handler.NewKafkaHandler(logger, conf.Kafka, orderService)
	httpHandler := handler.NewHTTPHandler(logger, orderService)
	handler.RegisterMetrics()

	app := app.New(logger, conf)

	app.SetHTTPHandlers(httpHandler)
	app.SetConsumers(kafkaHandler)
	app.SetWorkers(catalogCache, reconciler)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	app.Start(ctx)
	<-ctx.Done()
	app.Stop()
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
