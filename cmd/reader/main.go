// cmd/reader/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/tamzrod/modbus-reader/internal/config"
	"github.com/tamzrod/modbus-reader/internal/metrics"
	"github.com/tamzrod/modbus-reader/internal/reading"
	"github.com/tamzrod/modbus-reader/internal/report"
	"github.com/tamzrod/modbus-reader/internal/status"
	tmodbus "github.com/tamzrod/modbus-reader/internal/transport/modbus"
)

func main() {
	format := flag.String("format", "", "override report.format: table, pretty, csv, json")
	once := flag.Bool("once", false, "read once even if poll.interval_ms is set")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: reader [flags] <config.yaml>\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(status.ExitError)
	}
	os.Exit(run(flag.Arg(0), *format, *once))
}

func run(cfgPath, formatOverride string, once bool) int {
	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		return status.ExitError
	}
	if formatOverride != "" {
		cfg.Report.Format = formatOverride
	}
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "config validation failed: %v\n", err)
		return status.ExitError
	}
	config.Normalize(cfg)

	logger := setupLogger(cfg.Log)

	descs, err := config.Descriptors(cfg)
	if err != nil {
		logger.WithError(err).Error("register map invalid")
		return status.ExitError
	}
	format, err := report.ParseFormat(cfg.Report.Format)
	if err != nil {
		logger.WithError(err).Error("report format invalid")
		return status.ExitError
	}

	// --------------------
	// Transport
	// --------------------

	trace, closeTrace := frameLogger(logger)
	defer closeTrace()

	client, err := tmodbus.New(tmodbus.Config{
		Endpoint: cfg.Source.Endpoint,
		UnitID:   *cfg.Source.UnitID,
		Timeout:  time.Duration(cfg.Source.TimeoutMs) * time.Millisecond,
		Logger:   trace,
	})
	if err != nil {
		logger.WithError(err).WithField("endpoint", cfg.Source.Endpoint).Error("connect failed")
		return status.ExitError
	}
	defer client.Close()
	logger.WithFields(logrus.Fields{
		"endpoint": cfg.Source.Endpoint,
		"unit_id":  *cfg.Source.UnitID,
	}).Info("connected")

	// --------------------
	// Assembler (+ metrics)
	// --------------------

	opts := []reading.Option{reading.WithLogger(logger)}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Metrics.Listen != "" {
		collector := metrics.New()
		opts = append(opts, reading.WithObserver(collector))
		srv := serveMetrics(cfg.Metrics.Listen, collector, logger)
		defer srv.Close()
	}

	asm, err := reading.New(client, opts...)
	if err != nil {
		logger.WithError(err).Error("assembler setup failed")
		return status.ExitError
	}

	// --------------------
	// One-shot
	// --------------------

	if once || cfg.Poll.IntervalMs == 0 {
		rows := asm.Assemble(descs)
		return emit(logger, format, rows).ExitCode()
	}

	// --------------------
	// Polling
	// --------------------

	runner, err := reading.NewRunner(asm, descs, time.Duration(cfg.Poll.IntervalMs)*time.Millisecond)
	if err != nil {
		logger.WithError(err).Error("runner setup failed")
		return status.ExitError
	}

	out := make(chan reading.Batch)
	go func() {
		runner.Run(ctx, out)
		close(out)
	}()

	var last status.Snapshot
	for b := range out {
		last = emit(logger, format, b.Readings)
	}
	logger.Info("shutdown")
	return last.ExitCode()
}

// emit renders one batch to stdout and logs its health.
func emit(logger *logrus.Logger, format report.Format, rows []reading.Reading) status.Snapshot {
	if err := report.Render(os.Stdout, format, rows); err != nil {
		logger.WithError(err).Error("render failed")
	}

	snap := status.Summarize(rows)
	entry := logger.WithFields(logrus.Fields{
		"health": status.HealthName(snap.Health),
		"rows":   snap.Total,
		"failed": snap.Failed,
	})
	if snap.Failed > 0 {
		entry.WithField("last_error_code", snap.LastErrorCode).Warn("batch complete")
	} else {
		entry.Info("batch complete")
	}
	return snap
}

func serveMetrics(addr string, c *metrics.Collector, logger *logrus.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", c.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Error("metrics server stopped")
		}
	}()
	logger.WithField("listen", addr).Info("metrics endpoint enabled")
	return srv
}
