package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/Astemirdum/room-booking/console/config"
	"github.com/Astemirdum/room-booking/console/internal/booking"
	"github.com/Astemirdum/room-booking/console/internal/events"
	"github.com/Astemirdum/room-booking/console/internal/handler"
	"github.com/Astemirdum/room-booking/console/internal/listing"
	"github.com/Astemirdum/room-booking/console/internal/server"
	"github.com/Astemirdum/room-booking/console/internal/service"
	"github.com/Astemirdum/room-booking/console/internal/service/request"
	"github.com/Astemirdum/room-booking/console/internal/service/room"
	"github.com/Astemirdum/room-booking/console/internal/service/user"
	"github.com/Astemirdum/room-booking/console/internal/session"
	"github.com/Astemirdum/room-booking/pkg/kafka"
	"github.com/Astemirdum/room-booking/pkg/logger"
	"go.uber.org/zap"
)

func Run(cfg config.Config) {
	log := logger.NewLogger(cfg.Log, "console")
	defer func() { _ = log.Sync() }()

	store, err := session.NewBadgerStore(cfg.Session.Path)
	if err != nil {
		log.Fatal("session store", zap.Error(err))
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Warn("session store close", zap.Error(err))
		}
	}()
	sessions, err := session.NewManager(log, store)
	if err != nil {
		log.Fatal("session restore", zap.Error(err))
	}

	var publisher events.Publisher = events.Noop{}
	if cfg.Kafka.Enabled() {
		producer, err := kafka.NewAsyncProducer(cfg.Kafka)
		if err != nil {
			log.Fatal("kafka producer", zap.Error(err))
		}
		kp := events.NewKafkaPublisher(producer, cfg.Kafka.Topic, log)
		defer func() {
			if err := kp.Close(); err != nil {
				log.Warn("kafka producer close", zap.Error(err))
			}
		}()
		publisher = kp
	}

	requestSvc := request.NewService(log, service.NewBackend(log, cfg.API))
	roomSvc := room.NewService(log, service.NewBackend(log, cfg.API))
	userSvc := user.NewService(log, service.NewBackend(log, cfg.API))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	aggregator := listing.NewAggregator(log, requestSvc, cfg.Requests.PollInterval)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		aggregator.Run(ctx)
	}()

	desk := booking.NewDesk(log, requestSvc, roomSvc, publisher)
	h := handler.New(log, aggregator, desk, sessions, userSvc)

	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, closeCancel := context.WithTimeout(context.Background(), time.Second*5)
	defer closeCancel()

	if err := srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	cancel()
	wg.Wait()
	desk.Shutdown()
	log.Info("Graceful shutdown finished")
}
