package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/Belphemur/popcorn/internal/config"
	"github.com/Belphemur/popcorn/internal/metrics"
	"github.com/Belphemur/popcorn/internal/reporting"
)

const pushTimeout = 5 * time.Second

// Run executes the command line in args and returns the process exit code.
// Output printed before a failure stays printed; the failure itself is
// written to deps.Err as "Error: ...".
func Run(ctx context.Context, args []string, deps Dependencies) int {
	defer func() {
		if err := config.Close(); err != nil {
			fmt.Fprintf(deps.Err, "Error: failed to close log file: %v\n", err)
		}
	}()

	config.SetLogOutput(deps.Err)

	a := &app{deps: deps}
	rootCmd := a.rootCommand()
	rootCmd.SetArgs(args)

	executed, err := rootCmd.ExecuteContextC(ctx)
	command := rootCmd.Name()
	if executed != nil {
		command = executed.Name()
	}

	logger := config.GetLogger()

	// cfg stays nil when the command line was rejected before loading it
	cfg := a.cfg
	if cfg != nil {
		pushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), pushTimeout)
		if perr := metrics.Push(pushCtx, cfg.Metrics.PushgatewayURL, cfg.Metrics.Job); perr != nil {
			logger.Warn().Err(perr).Str("job", cfg.Metrics.Job).Msg("Failed to push metrics")
		}
		cancel()
	}

	if err == nil {
		return 0
	}

	// the error is printed once below
	logger.Debug().Err(err).Str("command", command).Msg("Command failed")

	if cfg != nil {
		reporter, rerr := reporting.New(cfg.SentryDSN, "popcorn@"+deps.Version)
		if rerr != nil {
			logger.Warn().Err(rerr).Msg("Error reporting disabled")
		} else {
			reporter.Capture(command, err)
			reporter.Flush()
		}
	}

	fmt.Fprintf(deps.Err, "Error: %v\n", err)
	return 1
}
