// Command approx bundles two demos of the library: classifying candidate
// passwords against a bloom filter of known ones, and comparing exact
// vs. HyperLogLog distinct-IP counts over an access log.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	root := &cobra.Command{
		Use:           "approx",
		Short:         "Approximate membership and distinct-count tools",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Flags can also be supplied via APPROX_* environment
			// variables, e.g. APPROX_LOG_FILE for --log-file.
			viper.SetEnvPrefix("APPROX")
			viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
			viper.AutomaticEnv()
			return viper.BindPFlags(cmd.Flags())
		},
	}

	root.AddCommand(
		newPasswordsCommand(logger),
		newIPCountCommand(logger),
	)

	if err := root.Execute(); err != nil {
		logger.Error("command failed", zap.Error(err))
		os.Exit(1)
	}
}
