package main

import (
	"context"
	"io"
	"naturals/internal/config"
	"naturals/internal/naturals"
	"naturals/pkg/logger"
	"naturals/pkg/runlog"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// rootCommand constructs the naturals command. It reads one integer from the
// command's input, reports its parity and prints 1..n for positive values.
func rootCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "naturals",
		Short: "Classifies an integer as even or odd and prints the natural numbers up to it",
		Args:  cobra.NoArgs,
		// stdout carries only the program's own output; failures are
		// reported through the exit status and the stderr logger.
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runlog.Wrap(cmd.Context(), func(ctx context.Context) error {
				return run(ctx, cfg, cmd.InOrStdin(), cmd.OutOrStdout())
			})
		},
	}

	cmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")

	return cmd
}

func run(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer) error {
	provider, closeMetrics, err := getMetrics(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeMetrics()

	program, err := naturals.New(
		naturals.Deps{Meter: provider.Meter("naturals")},
		naturals.Options{In: in, Out: out},
	)
	if err != nil {
		return err
	}

	state, err := program.Run(ctx)
	logger.Debug(ctx, "program finished", zap.Stringer("state", state))

	return err
}
