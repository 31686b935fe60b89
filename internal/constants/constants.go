package constants

// Deployment stages
const (
	ProdEnvironment  = "prod"
	DevEnvironment   = "dev"
	LocalEnvironment = "local"
	TestEnvironment  = "test"

	ErrorLevel = "error"
)

// Error messages used throughout the API handlers
const (
	TripNotFound         = "trip not found"
	FuelPurchaseNotFound = "fuel purchase not found"
	InvalidTaxPeriod     = "invalid tax period"
)
