package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	drepo "DartWatch/internal/domain/repository"
	"DartWatch/internal/handler/api"
	"DartWatch/internal/service/telegram"
	"DartWatch/internal/usecase"
	"DartWatch/pkg/config"
	xhttp "DartWatch/pkg/http"
	applogger "DartWatch/pkg/logger"
)

// App owns the monitor lifecycle: one-shot by default, resident with an ops
// HTTP server when an interval is configured.
type App struct {
	cfg      *config.Config
	monitor  *usecase.Monitor
	notifier drepo.Notifier
	archive  drepo.EventArchive
	l        *applogger.Logger

	// ready flips once construction is complete; error notifications are
	// only attempted past this point.
	ready bool
}

// New creates a fully constructed App.
func New(
	cfg *config.Config,
	monitor *usecase.Monitor,
	notifier drepo.Notifier,
	archive drepo.EventArchive,
	l *applogger.Logger,
) *App {
	a := &App{
		cfg:      cfg,
		monitor:  monitor,
		notifier: notifier,
		archive:  archive,
		l:        l,
	}
	a.ready = true
	return a
}

// Run executes the monitor. In one-shot mode it performs a single pass and
// returns; in daemon mode it repeats the pass on the configured interval
// until SIGINT/SIGTERM.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	defer a.close()

	if a.notifier.SendText(ctx, telegram.FormatStartup(time.Now())) {
		a.l.Info("startup notification sent")
	}

	if a.cfg.Monitor.Interval <= 0 {
		a.runPass(ctx)
		return nil
	}

	httpServer := xhttp.NewServer(api.NewStatusEchoHandler(a.monitor),
		xhttp.WithPort(a.cfg.Server.Port),
		xhttp.WithShutdownTimeout(a.cfg.Server.ShutdownTimeout),
	)
	if err := httpServer.Start(); err != nil {
		return err
	}

	a.l.Info("monitor resident", applogger.Duration("interval", a.cfg.Monitor.Interval))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	ticker := time.NewTicker(a.cfg.Monitor.Interval)
	defer ticker.Stop()

	a.runPass(ctx)
	for {
		select {
		case <-ticker.C:
			a.runPass(ctx)
		case <-sigCh:
			a.l.Info("shutdown signal received")
			return httpServer.Stop(ctx)
		}
	}
}

// runPass executes one bounded monitoring pass. Every outcome ends in
// exactly one terminal notification, and the completion log line always
// runs.
func (a *App) runPass(ctx context.Context) {
	defer a.l.Info("monitoring pass complete")
	defer func() {
		if r := recover(); r != nil {
			a.l.Error("monitoring pass failed", applogger.Any("cause", r))
			if a.ready {
				a.notifier.SendText(ctx, telegram.FormatError(time.Now(), fmt.Sprint(r)))
			}
		}
	}()

	startDate, endDate := a.monitor.Window()
	events := a.monitor.Run(ctx)

	if len(events) > 0 {
		a.l.Info("purchase events detected", applogger.Int("events", len(events)))
		if err := a.archive.Save(ctx, events); err != nil {
			a.l.Error("event archive failed", applogger.Error(err))
		}
	} else {
		a.l.Info("no purchase events found")
	}

	a.notifier.SendText(ctx, telegram.FormatSummary(time.Now(), startDate, endDate, len(events)))
}

func (a *App) close() {
	if err := a.archive.Close(); err != nil {
		a.l.Error("archive close failed", applogger.Error(err))
	}
}
