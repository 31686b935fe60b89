// Package cmd - import command
package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roadledger/roadledger-api/internal/logger"
	"github.com/roadledger/roadledger-api/internal/services"
	"github.com/roadledger/roadledger-api/internal/types/api/params"
)

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import completed shipments into a tax period",
	Long: `Convert every completed shipment delivered inside the period into a
trip record, once per shipment. Already-imported shipments are skipped, so
re-running an import is safe.

Examples:
  iftactl import --period 2025-Q2
  iftactl import --period 2025-Q2 --vehicle 5f0d...`,
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
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

	importService := services.NewTripImportService(queries, pool,
		services.NewDistanceReconciler(logger.Log), logger.Log)

	report, err := importService.ImportShipments(ctx, params.ImportShipmentsParams{
		Period:    period,
		VehicleID: vehicleID,
	})
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	fmt.Printf("Period %s: imported %d (gps %d, estimated %d), skipped %d, failed %d\n",
		report.Period, report.Imported, report.GpsTracked, report.Estimated,
		report.Skipped, report.Failed)
	for _, reason := range report.FailureReasons {
		fmt.Printf("  failed: %s\n", reason)
	}
	for _, warning := range report.Warnings {
		fmt.Printf("  warning: %s\n", warning)
	}
	return nil
}
