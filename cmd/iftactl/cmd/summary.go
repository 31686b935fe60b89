// Package cmd - summary command
package cmd

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/roadledger/roadledger-api/internal/logger"
	"github.com/roadledger/roadledger-api/internal/services"
	"github.com/roadledger/roadledger-api/internal/types/api/params"
	"github.com/roadledger/roadledger-api/internal/types/api/responses"
)

var csvOutput bool

// summaryCmd represents the summary command
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Compute the jurisdiction tax summary for a tax period",
	Long: `Aggregate the period's jurisdiction miles and fuel purchases into
per-jurisdiction tax lines with fleet totals.

Examples:
  iftactl summary --period 2025-Q2
  iftactl summary --period 2025-Q2 --csv > summary.csv`,
	RunE: runSummary,
}

func init() {
	summaryCmd.Flags().BoolVar(&csvOutput, "csv", false, "write CSV instead of a table")
}

func runSummary(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	period, vehicleID, err := parseFlags()
	if err != nil {
		return err
	}

	pool, queries, err := connect(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	summaryService := services.NewTaxSummaryService(queries,
		services.NewDefaultRateTable(), logger.Log)

	summary, err := summaryService.ComputeSummary(ctx, params.ComputeSummaryParams{
		Period:    period,
		VehicleID: vehicleID,
	})
	if err != nil {
		return fmt.Errorf("summary failed: %w", err)
	}

	rows := responses.BuildSummaryCSVRows(summary)

	if csvOutput {
		w := csv.NewWriter(os.Stdout)
		if err := w.WriteAll(rows); err != nil {
			return fmt.Errorf("failed to write CSV: %w", err)
		}
		return nil
	}

	fmt.Printf("Period %s  miles %s  gallons %s  fleet MPG %s\n\n",
		summary.Period,
		summary.FleetTotalMiles.StringFixed(1),
		summary.FleetTotalGallons.StringFixed(2),
		summary.FleetMPG.StringFixed(2))

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, row := range rows {
		for i, cell := range row {
			if i > 0 {
				fmt.Fprint(tw, "\t")
			}
			fmt.Fprint(tw, cell)
		}
		fmt.Fprintln(tw)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	for _, warning := range summary.Warnings {
		fmt.Printf("warning: %s\n", warning)
	}
	return nil
}
