package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/hookguard/internal/adapters/logger"
	"github.com/emiliopalmerini/hookguard/internal/adapters/otel"
	"github.com/emiliopalmerini/hookguard/internal/hook"
	"github.com/emiliopalmerini/hookguard/internal/infrastructure/config"
	"github.com/emiliopalmerini/hookguard/internal/ports"
)

const metricsFlushTimeout = 2 * time.Second

// configOverride allows tests to inject configuration.
// When set, hookConfig returns it instead of reading the environment.
var configOverride *config.Config

// metricsOverride allows tests to observe recorded metrics.
var metricsOverride ports.MetricsExporter

// exitError carries a non-zero exit status out of a command.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

// exitFor converts an outcome to the error Execute turns into an exit code.
func exitFor(o hook.Outcome) error {
	if code := o.ExitCode(); code != hook.ExitAllow {
		return &exitError{code: code}
	}
	return nil
}

func hookConfig() (*config.Config, error) {
	if configOverride != nil {
		return configOverride, nil
	}
	return config.Load()
}

// hookEnv is what every hook command needs once configuration is resolved.
type hookEnv struct {
	cfg     *config.Config
	log     ports.Logger
	metrics ports.MetricsExporter
}

// newHookEnv resolves configuration and metrics. It never fails: a broken
// configuration is logged and the caller is told to allow the tool call.
func newHookEnv(ctx context.Context, stderr io.Writer) (*hookEnv, bool) {
	cfg, err := hookConfig()
	if err != nil {
		logger.New(stderr, false).Error(err.Error())
		return nil, false
	}
	log := logger.New(stderr, cfg.Debug)
	return &hookEnv{cfg: cfg, log: log, metrics: hookMetrics(ctx, cfg, log)}, true
}

// hookMetrics returns the OTEL exporter when enabled, or a no-op exporter.
func hookMetrics(ctx context.Context, cfg *config.Config, log ports.Logger) ports.MetricsExporter {
	if metricsOverride != nil {
		return metricsOverride
	}
	if !cfg.OTEL.Enabled {
		return otel.NewNoOpExporter()
	}
	exp, err := otel.NewExporter(ctx, cfg.OTEL)
	if err != nil {
		log.Error(fmt.Sprintf("metrics disabled: %v", err))
		return otel.NewNoOpExporter()
	}
	return exp
}

// close flushes metrics within a bounded time.
func (e *hookEnv) close() {
	ctx, cancel := context.WithTimeout(context.Background(), metricsFlushTimeout)
	defer cancel()
	if err := e.metrics.Close(ctx); err != nil {
		e.log.Debug(fmt.Sprintf("metrics flush failed: %v", err))
	}
}

// commandContext returns the command's context, which is nil when a RunE
// function is called directly.
func commandContext(cmd *cobra.Command) context.Context {
	if cmd != nil && cmd.Context() != nil {
		return cmd.Context()
	}
	return context.Background()
}
