package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/roadledger/roadledger-api/internal/types/business"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ErrInsufficientRouteData means a shipment carries no GPS samples and no
// usable origin/destination, so mileage cannot be apportioned at all.
var ErrInsufficientRouteData = errors.New("insufficient route data: no GPS samples and no origin or destination jurisdiction")

var (
	sampleNoiseFloor   = decimal.RequireFromString("0.1")
	two                = decimal.RequireFromString("2")
	gpsDeviationBounds = decimal.RequireFromString("0.2")
)

// ApportionResult is a normalized apportionment of a shipment's total miles.
type ApportionResult struct {
	Shares     []business.JurisdictionShare
	Provenance business.Provenance
	// Warning carries a data-quality note (GPS total far off the
	// authoritative route miles). The shares are still rescaled to the
	// authoritative total; the note exists so the discrepancy is visible.
	Warning string
}

// DistanceReconciler turns noisy or partial GPS-geofence distance samples
// into per-jurisdiction miles that sum to a shipment's authoritative total.
type DistanceReconciler struct {
	logger *zap.Logger
}

// NewDistanceReconciler creates a reconciler.
func NewDistanceReconciler(logger *zap.Logger) *DistanceReconciler {
	if logger == nil {
		logger = zap.L()
	}
	return &DistanceReconciler{logger: logger}
}

// Apportion distributes totalMiles across jurisdictions. GPS samples above
// the 0.1-mile noise floor are scaled so their relative shares are kept
// while the sum matches totalMiles; without usable samples the miles fall
// back to the origin/destination estimate. Every returned entry is
// positive and the entries sum to totalMiles.
func (r *DistanceReconciler) Apportion(totalMiles decimal.Decimal, samples []business.DistanceSample, origin, destination string) (*ApportionResult, error) {
	origin = normalizeJurisdiction(origin)
	destination = normalizeJurisdiction(destination)

	retained, gpsTotal := retainSamples(samples)
	if len(retained) > 0 && gpsTotal.IsPositive() {
		return r.apportionFromGPS(totalMiles, retained, gpsTotal), nil
	}

	return apportionFromEndpoints(totalMiles, origin, destination)
}

// apportionFromGPS scales each retained sample by totalMiles/gpsTotal,
// rounding each jurisdiction to one decimal place.
func (r *DistanceReconciler) apportionFromGPS(totalMiles decimal.Decimal, retained []business.DistanceSample, gpsTotal decimal.Decimal) *ApportionResult {
	result := &ApportionResult{Provenance: business.ProvenanceGPSTracked}

	for _, s := range retained {
		scaled := s.Miles.Mul(totalMiles).Div(gpsTotal).Round(1)
		if !scaled.IsPositive() {
			continue
		}
		result.Shares = append(result.Shares, business.JurisdictionShare{
			Jurisdiction: s.Jurisdiction,
			Miles:        scaled,
		})
	}

	// Per-entry rounding drifts accumulate with many samples; the largest
	// share absorbs the residue so the entries sum to the total exactly.
	if len(result.Shares) > 0 {
		sum := decimal.Zero
		largest := 0
		for i, share := range result.Shares {
			sum = sum.Add(share.Miles)
			if share.Miles.GreaterThan(result.Shares[largest].Miles) {
				largest = i
			}
		}
		if residue := totalMiles.Sub(sum); !residue.IsZero() {
			if adjusted := result.Shares[largest].Miles.Add(residue); adjusted.IsPositive() {
				result.Shares[largest].Miles = adjusted
			}
		}
	}

	// The source of truth for distance is the odometer total; the GPS trace
	// only contributes relative shares. A trace whose raw sum is far off the
	// total is rescaled anyway, but flagged.
	if totalMiles.IsPositive() {
		deviation := gpsTotal.Sub(totalMiles).Abs()
		if deviation.GreaterThan(totalMiles.Mul(gpsDeviationBounds)) {
			result.Warning = fmt.Sprintf(
				"GPS samples total %s mi deviates more than 20%% from route total %s mi; shares rescaled",
				gpsTotal.StringFixed(1), totalMiles.StringFixed(1))
			r.logger.Warn("GPS distance samples deviate from route total",
				zap.String("gps_total", gpsTotal.String()),
				zap.String("route_total", totalMiles.String()))
		}
	}

	return result
}

// apportionFromEndpoints is the no-GPS fallback: all miles in the shared
// jurisdiction when origin and destination match, an even split otherwise.
func apportionFromEndpoints(totalMiles decimal.Decimal, origin, destination string) (*ApportionResult, error) {
	result := &ApportionResult{Provenance: business.ProvenanceImportedEstimate}

	switch {
	case origin == "" && destination == "":
		return nil, ErrInsufficientRouteData
	case origin == destination || destination == "":
		appendShare(result, origin, totalMiles)
	case origin == "":
		appendShare(result, destination, totalMiles)
	default:
		// The origin entry rounds to one decimal; the destination takes the
		// remainder so the pair sums to the total exactly.
		half := totalMiles.Div(two).Round(1)
		appendShare(result, origin, half)
		appendShare(result, destination, totalMiles.Sub(half))
	}

	return result, nil
}

func retainSamples(samples []business.DistanceSample) ([]business.DistanceSample, decimal.Decimal) {
	var retained []business.DistanceSample
	total := decimal.Zero
	for _, s := range samples {
		if s.Miles.LessThanOrEqual(sampleNoiseFloor) {
			continue
		}
		retained = append(retained, business.DistanceSample{
			Jurisdiction: normalizeJurisdiction(s.Jurisdiction),
			Miles:        s.Miles,
		})
		total = total.Add(s.Miles)
	}
	return retained, total
}

func appendShare(result *ApportionResult, jurisdiction string, miles decimal.Decimal) {
	if !miles.IsPositive() {
		return
	}
	result.Shares = append(result.Shares, business.JurisdictionShare{
		Jurisdiction: jurisdiction,
		Miles:        miles,
	})
}

func normalizeJurisdiction(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
