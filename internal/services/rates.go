package services

import "github.com/shopspring/decimal"

// RateSource supplies the per-gallon fuel tax rate for a jurisdiction.
// Rates are published quarterly by the IFTA clearinghouse and maintained
// outside this service; the aggregator treats the source as a pure lookup.
type RateSource interface {
	// Rate returns the tax rate for a jurisdiction code and whether the
	// jurisdiction is known to the table.
	Rate(jurisdiction string) (decimal.Decimal, bool)
}

// StaticRateTable is an in-memory RateSource.
type StaticRateTable struct {
	rates map[string]decimal.Decimal
}

// NewStaticRateTable builds a rate table from code -> rate-per-gallon.
func NewStaticRateTable(rates map[string]decimal.Decimal) *StaticRateTable {
	copied := make(map[string]decimal.Decimal, len(rates))
	for code, rate := range rates {
		copied[code] = rate
	}
	return &StaticRateTable{rates: copied}
}

// Rate implements RateSource.
func (t *StaticRateTable) Rate(jurisdiction string) (decimal.Decimal, bool) {
	rate, ok := t.rates[jurisdiction]
	return rate, ok
}

// NewDefaultRateTable returns the bundled rate table. Values track the
// published IFTA matrix for the lower-48 plus the common Canadian
// provinces; operators override per quarter via NewStaticRateTable.
func NewDefaultRateTable() *StaticRateTable {
	raw := map[string]string{
		"AL": "0.29", "AR": "0.285", "AZ": "0.26", "CA": "0.959",
		"CO": "0.205", "CT": "0.492", "DE": "0.22", "FL": "0.3757",
		"GA": "0.374", "IA": "0.325", "ID": "0.33", "IL": "0.667",
		"IN": "0.57", "KS": "0.26", "KY": "0.286", "LA": "0.20",
		"MA": "0.24", "MD": "0.4285", "ME": "0.312", "MI": "0.476",
		"MN": "0.285", "MO": "0.27", "MS": "0.18", "MT": "0.2975",
		"NC": "0.405", "ND": "0.23", "NE": "0.312", "NH": "0.222",
		"NJ": "0.49", "NM": "0.21", "NV": "0.27", "NY": "0.4095",
		"OH": "0.47", "OK": "0.19", "OR": "0.00", "PA": "0.741",
		"RI": "0.34", "SC": "0.28", "SD": "0.28", "TN": "0.27",
		"TX": "0.20", "UT": "0.365", "VA": "0.308", "VT": "0.32",
		"WA": "0.494", "WI": "0.329", "WV": "0.357", "WY": "0.24",
		"AB": "0.357", "BC": "0.688", "MB": "0.397", "ON": "0.513",
		"QC": "0.578", "SK": "0.426",
	}
	rates := make(map[string]decimal.Decimal, len(raw))
	for code, s := range raw {
		rates[code] = decimal.RequireFromString(s)
	}
	return &StaticRateTable{rates: rates}
}

var jurisdictionNames = map[string]string{
	"AL": "Alabama", "AR": "Arkansas", "AZ": "Arizona", "CA": "California",
	"CO": "Colorado", "CT": "Connecticut", "DE": "Delaware", "FL": "Florida",
	"GA": "Georgia", "IA": "Iowa", "ID": "Idaho", "IL": "Illinois",
	"IN": "Indiana", "KS": "Kansas", "KY": "Kentucky", "LA": "Louisiana",
	"MA": "Massachusetts", "MD": "Maryland", "ME": "Maine", "MI": "Michigan",
	"MN": "Minnesota", "MO": "Missouri", "MS": "Mississippi", "MT": "Montana",
	"NC": "North Carolina", "ND": "North Dakota", "NE": "Nebraska",
	"NH": "New Hampshire", "NJ": "New Jersey", "NM": "New Mexico",
	"NV": "Nevada", "NY": "New York", "OH": "Ohio", "OK": "Oklahoma",
	"OR": "Oregon", "PA": "Pennsylvania", "RI": "Rhode Island",
	"SC": "South Carolina", "SD": "South Dakota", "TN": "Tennessee",
	"TX": "Texas", "UT": "Utah", "VA": "Virginia", "VT": "Vermont",
	"WA": "Washington", "WI": "Wisconsin", "WV": "West Virginia",
	"WY": "Wyoming",
	"AB": "Alberta", "BC": "British Columbia", "MB": "Manitoba",
	"ON": "Ontario", "QC": "Quebec", "SK": "Saskatchewan",
}

// JurisdictionName returns the display name for a jurisdiction code, or the
// code itself when unknown.
func JurisdictionName(code string) string {
	if name, ok := jurisdictionNames[code]; ok {
		return name
	}
	return code
}
