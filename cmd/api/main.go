package main

import (
	"github.com/roadledger/roadledger-api/internal/server"
)

// @title           RoadLedger API
// @version         1.0
// @description     Quarterly fuel-tax apportionment and reporting for fleet operators

// @host      localhost:8080
// @BasePath  /api/v1
func main() {
	server.Run()
}
