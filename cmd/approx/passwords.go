package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/jcalabro/approx"
)

// defaultCandidates mirrors the canonical demo batch: two passwords already
// in use, two fresh ones.
var defaultCandidates = []string{"password123", "newpassword", "admin123", "guest"}

func newPasswordsCommand(logger *zap.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "passwords [candidates...]",
		Short: "Classify candidate passwords against a bloom filter of known ones",
		Long: `Seeds a bloom filter with passwords that are already in use, then
classifies each candidate as unique, already used, or invalid input.
Candidates are taken from the arguments, or from a built-in demo batch
when none are given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := approx.NewFilter(viper.GetUint("size"), viper.GetUint("hashes"))

			for _, password := range viper.GetStringSlice("seed") {
				if err := filter.Add(password); err != nil {
					logger.Warn("skipping seed password", zap.Error(err))
				}
			}

			candidates := args
			if len(candidates) == 0 {
				candidates = defaultCandidates
			}

			logger.Info("classifying candidates",
				zap.Int("count", len(candidates)),
				zap.Uint("size", filter.Cap()),
				zap.Uint("hashes", filter.K()))

			for _, c := range approx.CheckUniqueness(filter, candidates) {
				fmt.Fprintf(cmd.OutOrStdout(), "%q: %s\n", c.Item, c.Status)
			}

			return nil
		},
	}

	cmd.Flags().Uint("size", 1000, "bit array size of the filter")
	cmd.Flags().Uint("hashes", 3, "number of hash functions")
	cmd.Flags().StringSlice("seed", []string{"password123", "admin123", "qwerty123"},
		"passwords already in use")

	return cmd
}
