package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Astemirdum/bookstore-storefront/pkg/kafka"
	"github.com/Astemirdum/bookstore-storefront/pkg/logger"
	"github.com/Astemirdum/bookstore-storefront/storefront/config"
	"github.com/Astemirdum/bookstore-storefront/storefront/internal/apiclient"
	"github.com/Astemirdum/bookstore-storefront/storefront/internal/events"
	"github.com/Astemirdum/bookstore-storefront/storefront/internal/handler"
	"github.com/Astemirdum/bookstore-storefront/storefront/internal/server"
	"github.com/Astemirdum/bookstore-storefront/storefront/internal/service/admin"
	"github.com/Astemirdum/bookstore-storefront/storefront/internal/service/auth"
	"github.com/Astemirdum/bookstore-storefront/storefront/internal/service/customer"
	"github.com/Astemirdum/bookstore-storefront/storefront/internal/session"
)

func Run(cfg config.Config) {
	log := logger.NewLogger(cfg.Log, "storefront")

	clients, err := apiclient.NewFactory(cfg.API, log)
	if err != nil {
		log.Fatal("api client", zap.Error(err))
	}
	sessions, err := session.NewManager(cfg.Session)
	if err != nil {
		log.Fatal("session manager", zap.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	gg, ctx := errgroup.WithContext(ctx)

	var publisher handler.Publisher = events.Nop{}
	if cfg.Kafka.Enabled() {
		producer, err := kafka.NewAsyncProducer(cfg.Kafka)
		if err != nil {
			log.Fatal("kafka producer", zap.Error(err))
		}
		k := events.NewKafka(producer, cfg.Kafka.Topic, log)
		defer func() {
			if err := k.Close(); err != nil {
				log.Error("kafka close", zap.Error(err))
			}
		}()
		gg.Go(func() error { return k.Run(ctx) })
		publisher = k
	}

	h, err := handler.New(log, handler.Services{
		Auth:     auth.NewService(log),
		Admin:    admin.NewService(log),
		Customer: customer.NewService(log, cfg.API.CatalogLocalFilter),
	}, clients, sessions, publisher)
	if err != nil {
		log.Fatal("handler", zap.Error(err))
	}

	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	gg.Go(func() error {
		err := srv.Run()
		cancel()
		return err
	})

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	select {
	case termSig := <-sig:
		log.Debug("Graceful shutdown", zap.Any("signal", termSig))
	case <-ctx.Done():
	}

	closeCtx, closeCancel := context.WithTimeout(context.Background(), time.Second*5)
	defer closeCancel()

	if err := srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	cancel()
	if err := gg.Wait(); err != nil {
		log.Error("server run", zap.Error(err))
	}
	log.Info("Graceful shutdown finished")
}
