package business

import (
	"fmt"
	"time"
)

// TaxPeriod identifies one IFTA reporting quarter. It is a pure value:
// all navigation and range math derives from Year and Quarter alone.
type TaxPeriod struct {
	Year    int `json:"year"`
	Quarter int `json:"quarter"`
}

// PeriodFor returns the tax period containing the given calendar date.
func PeriodFor(t time.Time) TaxPeriod {
	return TaxPeriod{
		Year:    t.Year(),
		Quarter: (int(t.Month())-1)/3 + 1,
	}
}

// Validate checks that the period denotes a real quarter.
func (p TaxPeriod) Validate() error {
	if p.Quarter < 1 || p.Quarter > 4 {
		return fmt.Errorf("quarter must be between 1 and 4, got %d", p.Quarter)
	}
	if p.Year < 1 {
		return fmt.Errorf("year must be positive, got %d", p.Year)
	}
	return nil
}

// Next returns the following quarter, wrapping Q4 into Q1 of the next year.
func (p TaxPeriod) Next() TaxPeriod {
	if p.Quarter == 4 {
		return TaxPeriod{Year: p.Year + 1, Quarter: 1}
	}
	return TaxPeriod{Year: p.Year, Quarter: p.Quarter + 1}
}

// Previous returns the preceding quarter, wrapping Q1 into Q4 of the prior year.
func (p TaxPeriod) Previous() TaxPeriod {
	if p.Quarter == 1 {
		return TaxPeriod{Year: p.Year - 1, Quarter: 4}
	}
	return TaxPeriod{Year: p.Year, Quarter: p.Quarter - 1}
}

// DateRange returns the half-open calendar range [start, end) covered by the
// period. Boundaries are calendar dates, not instants; UTC is used purely as
// a neutral carrier, no time-zone conversion is implied.
func (p TaxPeriod) DateRange() (start, end time.Time) {
	firstMonth := time.Month((p.Quarter-1)*3 + 1)
	start = time.Date(p.Year, firstMonth, 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 3, 0)
	return start, end
}

// Contains reports whether the calendar date of t falls inside the period.
func (p TaxPeriod) Contains(t time.Time) bool {
	start, end := p.DateRange()
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return !d.Before(start) && d.Before(end)
}

// String renders the period in the conventional "2025-Q3" form.
func (p TaxPeriod) String() string {
	return fmt.Sprintf("%d-Q%d", p.Year, p.Quarter)
}

// ParsePeriod parses the "2025-Q3" form produced by String.
func ParsePeriod(s string) (TaxPeriod, error) {
	var p TaxPeriod
	if _, err := fmt.Sscanf(s, "%d-Q%d", &p.Year, &p.Quarter); err != nil {
		return TaxPeriod{}, fmt.Errorf("invalid period %q, expected e.g. 2025-Q3", s)
	}
	if err := p.Validate(); err != nil {
		return TaxPeriod{}, err
	}
	return p, nil
}
