package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"sync"
	"syscall"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/appointment-reminder/internal/api/handlers/reminder"
	"github.com/aliskhannn/appointment-reminder/internal/api/router"
	"github.com/aliskhannn/appointment-reminder/internal/api/server"
	"github.com/aliskhannn/appointment-reminder/internal/config"
	"github.com/aliskhannn/appointment-reminder/internal/metrics"
	"github.com/aliskhannn/appointment-reminder/internal/model"
	"github.com/aliskhannn/appointment-reminder/internal/queue"
	remindermsg "github.com/aliskhannn/appointment-reminder/internal/rabbitmq/handlers/reminder"
	rabbitqueue "github.com/aliskhannn/appointment-reminder/internal/rabbitmq/queue"
	analyticsrepo "github.com/aliskhannn/appointment-reminder/internal/repository/analytics"
	appointmentrepo "github.com/aliskhannn/appointment-reminder/internal/repository/appointment"
	dispatchrepo "github.com/aliskhannn/appointment-reminder/internal/repository/dispatch"
	analyticssvc "github.com/aliskhannn/appointment-reminder/internal/service/analytics"
	remindersvc "github.com/aliskhannn/appointment-reminder/internal/service/reminder"
	retrysvc "github.com/aliskhannn/appointment-reminder/internal/service/retry"
	schedulersvc "github.com/aliskhannn/appointment-reminder/internal/service/scheduler"
	"github.com/aliskhannn/appointment-reminder/internal/timezone"
	"github.com/aliskhannn/appointment-reminder/internal/worker"
	"github.com/aliskhannn/appointment-reminder/pkg/email"
	"github.com/aliskhannn/appointment-reminder/pkg/sms"
	"github.com/aliskhannn/appointment-reminder/pkg/telegram"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()
	val := validator.New()
	clock := timezone.SystemClock{}

	conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL(), cfg.RabbitMQ.Retries, cfg.RabbitMQ.Pause)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to open channel")
	}

	workQueue, err := rabbitqueue.NewReminderQueue(ch, cfg.RabbitMQ)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to create reminder queue")
	}

	db, err := openDB(cfg.Database)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	rdb := redis.New(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.Database)
	if err = rdb.Ping(ctx).Err(); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to redis")
	}

	delayed := queue.NewDelayedSet(rdb, cfg.Queue.DelayedKey)
	locker := queue.NewLocker(rdb, cfg.Queue.LockPrefix, cfg.Queue.LockTTL)

	dispatches := dispatchrepo.NewRepository(db)
	appointments := appointmentrepo.NewRepository(db)
	snapshots := analyticsrepo.NewRepository(db)

	emailClient := email.NewClient(cfg.Email.SMTPHost, cfg.Email.SMTPPort, cfg.Email.Username, cfg.Email.Password, cfg.Email.From)
	smsClient := sms.NewClient(cfg.SMS.AccountSID, cfg.SMS.AuthToken, cfg.SMS.From)
	telegramClient := telegram.NewClient(cfg.Telegram.Token, cfg.Telegram.ChatID)

	notifiers := map[model.Channel]remindersvc.Notifier{
		model.ChannelEmail: emailClient,
		model.ChannelSMS:   smsClient,
	}

	operator := retrysvc.Operator{Address: cfg.Operator.Address, Timeout: cfg.Operator.Timeout}
	switch cfg.Operator.Channel {
	case "email":
		operator.Notifier = emailClient
	case "telegram":
		operator.Notifier = telegramClient
	}

	schedulerService := schedulersvc.NewService(appointments, dispatches, delayed, clock)
	reminderService := remindersvc.NewService(dispatches, appointments, notifiers, rdb, clock)
	retryService := retrysvc.NewService(dispatches, delayed, rdb, operator, clock)
	analyticsService := analyticssvc.NewService(snapshots, clock, cfg.Analytics.Timezone, cfg.Analytics.LatestLimit)

	metrics.Register()
	metrics.StartStatusCollector(ctx, dispatches, 0)

	messageHandler := remindermsg.NewHandler(reminderService, locker, delayed, clock, cfg.Queue.LockTTL, cfg.Queue.LockRetryDelay)
	deliverer := worker.NewDeliverer(workQueue, messageHandler, reminderService)
	pump := worker.NewPump(delayed, workQueue, clock, cfg.Queue.PollInterval, cfg.Queue.BatchSize)
	rescanner := worker.NewRescanner(dispatches, delayed, clock, cfg.Queue.BatchSize)

	var workers sync.WaitGroup
	workers.Add(2)
	go func() {
		defer workers.Done()
		deliverer.Run(ctx, cfg.Retry, cfg.Workers.Count)
	}()
	go func() {
		defer workers.Done()
		pump.Run(ctx, cfg.Retry)
	}()

	if err := rescanner.Start(ctx, cfg.Queue.RescanSpec); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to start rescan job")
	}

	apiHandler := reminder.NewHandler(schedulerService, reminderService, retryService, analyticsService, val, cfg)
	r := router.New(apiHandler)
	s := server.New(cfg.Server.HTTPPort, r)

	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	zlog.Logger.Info().Msg("shutting down server")
	if err := s.Shutdown(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to shutdown server")
	}

	if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
		zlog.Logger.Info().Msg("timeout exceeded, forcing shutdown")
	}

	// in-flight attempts record their outcome before the stores go away
	zlog.Logger.Info().Msg("waiting for workers")
	workers.Wait()
	rescanner.Wait()
	retryService.Wait()

	if err := db.Master.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close master DB")
	}

	for i, s := range db.Slaves {
		if err := s.Close(); err != nil {
			zlog.Logger.Error().Err(err).Int("slave", i).Msg("failed to close slave DB")
		}
	}

	if err := ch.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ channel")
	}

	if err := conn.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ connection")
	}
}

func openDB(cfg config.Database) (*dbpg.DB, error) {
	opts := &dbpg.Options{
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
	}

	slaveDSNs := make([]string, 0, len(cfg.Slaves))
	for _, s := range cfg.Slaves {
		slaveDSNs = append(slaveDSNs, s.DSN())
	}

	return dbpg.New(cfg.Master.DSN(), slaveDSNs, opts)
}
