package business_test

import (
	"testing"
	"time"

	"github.com/roadledger/roadledger-api/internal/types/business"
	"github.com/stretchr/testify/assert"
)

func TestTaxPeriod_Navigation(t *testing.T) {
	tests := []struct {
		name     string
		period   business.TaxPeriod
		next     business.TaxPeriod
		previous business.TaxPeriod
	}{
		{
			name:     "mid-year quarter",
			period:   business.TaxPeriod{Year: 2025, Quarter: 2},
			next:     business.TaxPeriod{Year: 2025, Quarter: 3},
			previous: business.TaxPeriod{Year: 2025, Quarter: 1},
		},
		{
			name:     "Q4 wraps forward into next year",
			period:   business.TaxPeriod{Year: 2025, Quarter: 4},
			next:     business.TaxPeriod{Year: 2026, Quarter: 1},
			previous: business.TaxPeriod{Year: 2025, Quarter: 3},
		},
		{
			name:     "Q1 wraps backward into prior year",
			period:   business.TaxPeriod{Year: 2025, Quarter: 1},
			next:     business.TaxPeriod{Year: 2025, Quarter: 2},
			previous: business.TaxPeriod{Year: 2024, Quarter: 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.next, tt.period.Next())
			assert.Equal(t, tt.previous, tt.period.Previous())
		})
	}
}

func TestTaxPeriod_DateRange(t *testing.T) {
	start, end := business.TaxPeriod{Year: 2025, Quarter: 3}.DateRange()
	assert.Equal(t, time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC), end)

	// Q4 range ends on Jan 1 of the following year.
	start, end = business.TaxPeriod{Year: 2025, Quarter: 4}.DateRange()
	assert.Equal(t, time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestTaxPeriod_Contains(t *testing.T) {
	p := business.TaxPeriod{Year: 2025, Quarter: 3}

	assert.True(t, p.Contains(time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, p.Contains(time.Date(2025, time.September, 30, 23, 59, 0, 0, time.UTC)))
	// Half-open: first day of the next quarter is excluded.
	assert.False(t, p.Contains(time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, p.Contains(time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC)))
}

func TestPeriodFor(t *testing.T) {
	assert.Equal(t, business.TaxPeriod{Year: 2025, Quarter: 1}, business.PeriodFor(time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, business.TaxPeriod{Year: 2025, Quarter: 4}, business.PeriodFor(time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC)))
}

func TestTaxPeriod_Validate(t *testing.T) {
	assert.NoError(t, business.TaxPeriod{Year: 2025, Quarter: 1}.Validate())
	assert.Error(t, business.TaxPeriod{Year: 2025, Quarter: 0}.Validate())
	assert.Error(t, business.TaxPeriod{Year: 2025, Quarter: 5}.Validate())
	assert.Error(t, business.TaxPeriod{Year: 0, Quarter: 2}.Validate())
}

func TestParsePeriod(t *testing.T) {
	p, err := business.ParsePeriod("2025-Q3")
	assert.NoError(t, err)
	assert.Equal(t, business.TaxPeriod{Year: 2025, Quarter: 3}, p)

	_, err = business.ParsePeriod("2025-Q7")
	assert.Error(t, err)
	_, err = business.ParsePeriod("garbage")
	assert.Error(t, err)
}
