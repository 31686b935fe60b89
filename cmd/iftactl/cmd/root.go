// Package cmd provides the CLI commands for iftactl.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/roadledger/roadledger-api/internal/constants"
	"github.com/roadledger/roadledger-api/internal/db"
	"github.com/roadledger/roadledger-api/internal/logger"
	"github.com/roadledger/roadledger-api/internal/types/business"
)

var (
	periodFlag  string
	vehicleFlag string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "iftactl",
	Short: "Operate quarterly fuel-tax periods from the command line",
	Long: `iftactl imports completed shipments into a tax period and computes
the period's jurisdiction tax summary against the same database the API
serves.

Examples:
  iftactl import --period 2025-Q2
  iftactl summary --period 2025-Q2
  iftactl summary --period 2025-Q2 --csv > summary.csv`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initEnv)

	rootCmd.PersistentFlags().StringVarP(&periodFlag, "period", "p", "", `tax period, e.g. "2025-Q2" (required)`)
	rootCmd.PersistentFlags().StringVar(&vehicleFlag, "vehicle", "", "restrict to one vehicle ID")

	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(summaryCmd)
}

func initEnv() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Warning: error loading .env file: %v\n", err)
	}
	stage := os.Getenv("STAGE")
	if stage == "" {
		stage = constants.LocalEnvironment
	}
	logger.InitLogger(stage)
}

// parseFlags resolves the shared --period and --vehicle flags.
func parseFlags() (business.TaxPeriod, *uuid.UUID, error) {
	if periodFlag == "" {
		return business.TaxPeriod{}, nil, fmt.Errorf("--period is required")
	}
	period, err := business.ParsePeriod(periodFlag)
	if err != nil {
		return business.TaxPeriod{}, nil, err
	}

	var vehicleID *uuid.UUID
	if vehicleFlag != "" {
		id, err := uuid.Parse(vehicleFlag)
		if err != nil {
			return business.TaxPeriod{}, nil, fmt.Errorf("invalid vehicle ID: %w", err)
		}
		vehicleID = &id
	}
	return period, vehicleID, nil
}

// connect opens the database pool from DATABASE_URL.
func connect(ctx context.Context) (*pgxpool.Pool, *db.Queries, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return nil, nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create database pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return pool, db.New(pool), nil
}
