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

	"github.com/readspace/library-portal/config"
	"github.com/readspace/library-portal/internal/handler"
	"github.com/readspace/library-portal/internal/repository"
	"github.com/readspace/library-portal/internal/schedule"
	"github.com/readspace/library-portal/internal/server"
	"github.com/readspace/library-portal/internal/service"
	"github.com/readspace/library-portal/migrations"
	"github.com/readspace/library-portal/pkg/kafka"
	"github.com/readspace/library-portal/pkg/logger"
	"github.com/readspace/library-portal/pkg/postgres"
)

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "portal")
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		log.Fatal("repo", zap.Error(err))
	}

	policy, err := schedule.ParsePolicy(cfg.Booking.WorkingDays)
	if err != nil {
		log.Fatal("working-day policy", zap.Error(err))
	}

	producer, err := kafka.NewProducer(cfg.Kafka)
	if err != nil {
		log.Fatal("kafka.NewProducer", zap.Error(err))
	}
	svc := service.NewService(repo, kafka.NewEnqueuer(producer), policy, log)

	consumer, err := kafka.NewConsumer(cfg.Kafka, kafka.PortalConsumerGroup)
	if err != nil {
		log.Fatal("kafka.NewConsumer", zap.Error(err))
	}

	h := handler.New(svc, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))

	runCtx, runCancel := context.WithCancel(context.Background())
	g, gCtx := errgroup.WithContext(runCtx)
	g.Go(func() error {
		return srv.Run()
	})
	g.Go(func() error {
		kafka.Consume(gCtx, consumer, handler.NewConsumer(svc.ConfirmPayment, log), log, kafka.PaymentsTopic)
		return nil
	})

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	runCancel()
	if err = g.Wait(); err != nil {
		log.Error("shutdown", zap.Error(err))
	}
	if err = consumer.Close(); err != nil {
		log.Error("consumer close", zap.Error(err))
	}
	if err = producer.Close(); err != nil {
		log.Error("producer close", zap.Error(err))
	}
	db.Close()
	log.Info("Graceful shutdown finished")
}
