package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/jcalabro/approx"
	"github.com/jcalabro/approx/internal/iplog"
)

func newIPCountCommand(logger *zap.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ipcount",
		Short: "Compare exact and HyperLogLog distinct-IP counts over an access log",
		Long: `Extracts IPv4 addresses from an access log and counts the distinct
ones twice: exactly with a set, and approximately with a HyperLogLog
sketch. When the log file is missing, a small built-in sample dataset
is used instead.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := viper.GetString("log-file")

			loader := iplog.Loader{Path: path, Fallback: iplog.Sample}
			ips, err := loader.Load()
			if err != nil {
				return err
			}
			if len(ips) == 0 {
				logger.Warn("no addresses found", zap.String("file", path))
				return nil
			}

			logger.Info("loaded addresses",
				zap.String("file", path),
				zap.Int("count", len(ips)))

			cmp, err := approx.Compare(ips, viper.GetFloat64("error-rate"))
			if err != nil {
				return err
			}

			renderComparison(cmd.OutOrStdout(), cmp)
			return nil
		},
	}

	cmd.Flags().String("log-file", "lms-stage-access.log", "access log to read")
	cmd.Flags().Float64("error-rate", 0.01, "target standard error of the sketch")

	return cmd
}

// renderComparison prints the exact-vs-approximate table.
func renderComparison(w io.Writer, cmp approx.Comparison) {
	color.New(color.FgCyan, color.Bold).Fprintln(w, "Comparison results:")

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "\tExact count\tHyperLogLog\n")
	fmt.Fprintf(tw, "Distinct elements\t%d\t%.1f\n", cmp.ExactCount, cmp.EstimatedCount)
	fmt.Fprintf(tw, "Elapsed\t%s\t%s\n",
		cmp.ExactElapsed.Round(time.Microsecond),
		cmp.EstimateElapsed.Round(time.Microsecond))
	tw.Flush()
}
