package scheduler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"NiftySnapshot/internal/collector"
	"NiftySnapshot/internal/model"
	"NiftySnapshot/internal/notifier"
	"NiftySnapshot/internal/report"
)

// SnapshotWriter persists the rows of one cycle.
type SnapshotWriter interface {
	WriteSnapshot(rows []model.StockRow) (*model.Snapshot, error)
}

// Runner drives the fetch -> write -> print -> wait cycle until its context is cancelled.
type Runner struct {
	Collector *collector.Collector
	Writer    SnapshotWriter
	Notifier  notifier.Notifier
	Schedule  cron.Schedule
	Console   io.Writer
	Logger    *zap.Logger
	Now       func() time.Time
}

// NewRunner creates a Runner whose cycles follow the cron spec, e.g. "@every 60s".
func NewRunner(col *collector.Collector, w SnapshotWriter, n notifier.Notifier, spec string, console io.Writer, logger *zap.Logger) (*Runner, error) {
	sched, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("parse schedule %q: %w", spec, err)
	}
	if n == nil {
		n = notifier.NoopNotifier{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		Collector: col,
		Writer:    w,
		Notifier:  n,
		Schedule:  sched,
		Console:   console,
		Logger:    logger,
		Now:       time.Now,
	}, nil
}

// Run executes cycles until ctx is cancelled. Cancellation is observed only
// between cycles; a cycle in progress always finishes.
func (r *Runner) Run(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			r.Logger.Info("stopped by user")
			return
		}
		_, _ = r.RunOnce(ctx)

		next := r.Schedule.Next(r.Now())
		r.Logger.Debug("waiting for next cycle", zap.Time("next", next))
		timer := time.NewTimer(time.Until(next))
		select {
		case <-ctx.Done():
			timer.Stop()
			r.Logger.Info("stopped by user")
			return
		case <-timer.C:
		}
	}
}

// RunOnce fetches every ticker, writes the snapshot and prints it. Errors are
// logged here and returned for callers that care.
func (r *Runner) RunOnce(ctx context.Context) (*model.Snapshot, error) {
	// The cycle runs to completion even if shutdown is requested mid-way.
	ctx = context.WithoutCancel(ctx)
	log := r.Logger.With(zap.String("cycle_id", uuid.NewString()))
	start := r.Now()

	rows := r.Collector.Collect(ctx)
	log.Info("fetch complete",
		zap.Int("ok", len(rows)), zap.Int("tickers", len(r.Collector.Tickers)),
		zap.Duration("elapsed", r.Now().Sub(start)))

	snap, err := r.Writer.WriteSnapshot(rows)
	var wf *report.WriteFault
	switch {
	case errors.Is(err, report.ErrEmptyInput):
		log.Warn("no tickers fetched, skipping snapshot write")
		return nil, err
	case errors.As(err, &wf):
		log.Error("snapshot write failed", zap.String("path", wf.Path), zap.Error(wf.Err))
	case err != nil:
		log.Error("snapshot failed", zap.Error(err))
		return nil, err
	default:
		log.Info("snapshot written", zap.Int("rows", len(snap.Rows)), zap.String("average", snap.Average.StringFixed(2)))
	}

	if r.Console != nil && snap != nil {
		report.PrintTable(r.Console, snap)
	}
	if err != nil {
		return snap, err
	}

	if nerr := r.Notifier.NotifySnapshot(ctx, snap); nerr != nil {
		log.Error("send snapshot notification", zap.Error(nerr))
	}
	return snap, nil
}
