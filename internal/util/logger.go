package util

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger returns a console logger at debug level when verbose is true and
// a no-op logger otherwise.
func NewLogger(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	cfg.DisableStacktrace = true
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// ProgressLogger tracks and reports enumeration progress.
type ProgressLogger struct {
	log            *zap.Logger
	totalEvents    uint64
	label          string
	loggedEvents   uint64
	logStep        uint64
	nextEventToLog uint64
	enabled        bool
	startTime      time.Time
}

// NewProgressLogger creates a new progress logger. A nil logger or a disabled
// debug level turns it into a no-op.
func NewProgressLogger(log *zap.Logger, totalEvents uint64, label string) *ProgressLogger {
	enabled := log != nil && log.Core().Enabled(zapcore.DebugLevel)
	pl := &ProgressLogger{
		log:         log,
		totalEvents: totalEvents,
		label:       label,
		enabled:     enabled,
		startTime:   time.Now(),
	}

	percFraction := uint64(20) // 5% steps
	if totalEvents >= 100_000_000 {
		percFraction = 100
	}
	pl.logStep = (totalEvents + percFraction - 1) / percFraction
	if pl.logStep == 0 {
		pl.logStep = 1
	}

	if enabled {
		pl.nextEventToLog = pl.logStep
	} else {
		pl.nextEventToLog = ^uint64(0)
	}
	return pl
}

// Log increments the counter and reports progress if the step is reached.
func (pl *ProgressLogger) Log() {
	if !pl.enabled {
		return
	}
	pl.loggedEvents++
	if pl.loggedEvents >= pl.nextEventToLog {
		pl.update(false)
		pl.nextEventToLog += pl.logStep
		if pl.nextEventToLog > pl.totalEvents {
			pl.nextEventToLog = pl.totalEvents
		}
	}
}

// Finalize reports 100% progress with the elapsed time.
func (pl *ProgressLogger) Finalize() {
	if !pl.enabled {
		return
	}
	pl.loggedEvents = pl.totalEvents
	pl.update(true)
}

// Logged returns the number of events seen so far.
func (pl *ProgressLogger) Logged() uint64 {
	return pl.loggedEvents
}

func (pl *ProgressLogger) update(final bool) {
	perc := uint64(0)
	if pl.totalEvents > 0 {
		perc = (100 * pl.loggedEvents) / pl.totalEvents
	}
	fields := []zap.Field{
		zap.Uint64("done", pl.loggedEvents),
		zap.Uint64("total", pl.totalEvents),
		zap.Uint64("percent", perc),
	}
	if final {
		fields = append(fields, zap.Duration("elapsed", time.Since(pl.startTime)))
	}
	pl.log.Debug(pl.label, fields...)
}
