// Command retry-failed re-arms failed reminders and prints a report.
//
// Usage:
//
//	retry-failed --all
//	retry-failed --queue=reminders
//	retry-failed <id> [<id>...] [--notify=ops@example.com]
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/pflag"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/appointment-reminder/internal/config"
	"github.com/aliskhannn/appointment-reminder/internal/model"
	"github.com/aliskhannn/appointment-reminder/internal/queue"
	dispatchrepo "github.com/aliskhannn/appointment-reminder/internal/repository/dispatch"
	retrysvc "github.com/aliskhannn/appointment-reminder/internal/service/retry"
	"github.com/aliskhannn/appointment-reminder/internal/timezone"
	"github.com/aliskhannn/appointment-reminder/pkg/email"
	"github.com/aliskhannn/appointment-reminder/pkg/telegram"
)

var errNoSelector = errors.New("specify either --all, --queue=name, or reminder ids")

type options struct {
	filter    model.RetryFilter
	notify    bool
	notifyTo  string
	configDir string
}

func parseArgs(args []string) (options, error) {
	fs := pflag.NewFlagSet("retry-failed", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts options
	fs.BoolVar(&opts.filter.All, "all", false, "retry every failed reminder")
	fs.StringVar(&opts.filter.Queue, "queue", "", "retry failed reminders of the named queue")
	fs.StringVar(&opts.notifyTo, "notify", "", "send the report to this address (defaults to operator.address)")
	fs.StringVar(&opts.configDir, "config", "./config", "directory holding config.yaml")
	fs.Lookup("notify").NoOptDefVal = " "

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	for _, raw := range fs.Args() {
		id, err := uuid.Parse(raw)
		if err != nil {
			return options{}, fmt.Errorf("invalid reminder id %q: %w", raw, err)
		}
		opts.filter.IDs = append(opts.filter.IDs, id)
	}

	// the first matching selector wins
	switch {
	case opts.filter.All:
		opts.filter.Queue, opts.filter.IDs = "", nil
	case opts.filter.Queue != "":
		opts.filter.IDs = nil
	}

	if opts.filter.Empty() {
		return options{}, errNoSelector
	}

	opts.notify = fs.Changed("notify")
	if opts.notifyTo == " " {
		opts.notifyTo = ""
	}

	return opts, nil
}

func main() {
	zlog.Init()

	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(opts.configDir)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to load config")
	}

	slaveDSNs := make([]string, 0, len(cfg.Database.Slaves))
	for _, s := range cfg.Database.Slaves {
		slaveDSNs = append(slaveDSNs, s.DSN())
	}

	db, err := dbpg.New(cfg.Database.Master.DSN(), slaveDSNs, &dbpg.Options{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Master.Close()

	rdb := redis.New(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.Database)
	if err = rdb.Ping(ctx).Err(); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to redis")
	}

	svc := retrysvc.NewService(
		dispatchrepo.NewRepository(db),
		queue.NewDelayedSet(rdb, cfg.Queue.DelayedKey),
		rdb,
		operatorFor(cfg, opts.notifyTo),
		timezone.SystemClock{},
	)

	report, err := svc.RetryFailed(ctx, cfg.Retry, opts.filter, opts.notify)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to retry reminders")
	}

	printReport(os.Stdout, report)
	svc.Wait()
}

// operatorFor picks the summary channel. An explicit address without a
// configured channel is treated as an email address.
func operatorFor(cfg *config.Config, to string) retrysvc.Operator {
	op := retrysvc.Operator{Address: cfg.Operator.Address, Timeout: cfg.Operator.Timeout}
	if to != "" {
		op.Address = to
	}

	channel := cfg.Operator.Channel
	if channel == "" && to != "" {
		channel = "email"
	}

	switch channel {
	case "email":
		op.Notifier = email.NewClient(cfg.Email.SMTPHost, cfg.Email.SMTPPort, cfg.Email.Username, cfg.Email.Password, cfg.Email.From)
	case "telegram":
		op.Notifier = telegram.NewClient(cfg.Telegram.Token, cfg.Telegram.ChatID)
	}

	return op
}

func printReport(w io.Writer, r model.RetryReport) {
	if r.TotalProcessed == 0 {
		fmt.Fprintln(w, "No failed reminders found.")
		return
	}

	fmt.Fprintf(w, "Processed %d failed reminders\n", r.TotalProcessed)
	for _, o := range r.Successful {
		fmt.Fprintf(w, "  retried  %s  [%s]\n", o.ID, o.Queue)
	}
	for _, o := range r.Failed {
		fmt.Fprintf(w, "  failed   %s  [%s]: %s\n", o.ID, o.Queue, o.Message)
	}
	fmt.Fprintf(w, "Successfully retried: %d, failed to retry: %d\n", len(r.Successful), len(r.Failed))
}
