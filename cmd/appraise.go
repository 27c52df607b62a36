package main

import (
	"context"
	"encoding/json"
	"os"

	"appraiser/internal/appraisal"
	"appraiser/internal/comps"
	"appraiser/internal/config"
	"appraiser/pkg/domain"
	"appraiser/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// appraiseCommand constructs the 'appraise' subcommand: a one-off evaluation
// of a single domain printed as JSON. It runs without postgres or redis, so
// comparables come from the embedded dataset and nothing is persisted; any
// configured adapter credentials are still used.
func appraiseCommand(cfg *config.Config) *cobra.Command {
	var (
		country        string
		monthlyTraffic int64
		ageYears       float64
		noComps        bool
	)

	cmd := &cobra.Command{
		Use:   "appraise [domain]",
		Short: "Appraises a single domain and prints the result as JSON",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			opts := domain.EvaluateOptions{Country: country}
			if cmd.Flags().Changed("traffic") {
				opts.MonthlyTraffic = &monthlyTraffic
			}
			if cmd.Flags().Changed("age") {
				opts.DomainAgeYears = &ageYears
			}
			if noComps {
				f := false
				opts.UseComps = &f
			}

			whoisClient, trafficClient, trademarkClient, commentaryClient := getAdapters(cfg)
			appraiser := appraisal.New(appraisal.Deps{
				Matcher:    comps.NewMatcher(nil, 0),
				Whois:      whoisClient,
				Traffic:    trafficClient,
				Trademark:  trademarkClient,
				Commentary: commentaryClient,
			}, appraisal.NewOptions(cfg))

			result, err := appraiser.Evaluate(ctx, args[0], opts)
			if err != nil {
				logger.Fatal(ctx, "could not appraise domain", zap.String("domain", args[0]), zap.Error(err))
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(result); err != nil {
				logger.Fatal(ctx, "could not encode appraisal", zap.Error(err))
			}
		},
	}

	cmd.Flags().StringVar(&country, "country", "", "Target market as an ISO 3166-1 alpha-2 code")
	cmd.Flags().Int64Var(&monthlyTraffic, "traffic", 0, "Known monthly visits; skips the traffic adapter")
	cmd.Flags().Float64Var(&ageYears, "age", 0, "Known registration age in years; skips the WHOIS lookup")
	cmd.Flags().BoolVar(&noComps, "no-comps", false, "Disable the comparable-sales blend")

	return cmd
}
