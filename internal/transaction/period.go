package transaction

import (
	"fmt"
	"time"
)

// Period is a calendar year-month.
type Period struct {
	Year  int
	Month time.Month
}

const periodLayout = "2006-01"

func NewPeriod(year int, month time.Month) Period {
	return Period{Year: year, Month: month}
}

func PeriodOf(t time.Time) Period {
	return Period{Year: t.Year(), Month: t.Month()}
}

// ParsePeriod accepts "YYYY-MM".
func ParsePeriod(s string) (Period, error) {
	t, err := time.Parse(periodLayout, s)
	if err != nil {
		return Period{}, fmt.Errorf("parsing period %q: %w", s, err)
	}

	return PeriodOf(t), nil
}

func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}

// Start is the first day of the period.
func (p Period) Start() time.Time {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
}

// End is the first day of the following period.
func (p Period) End() time.Time {
	return p.Start().AddDate(0, 1, 0)
}

func (p Period) Contains(t time.Time) bool {
	return t.Year() == p.Year && t.Month() == p.Month
}

// Title renders the period as "March 2024".
func (p Period) Title() string {
	return p.Start().Format("January 2006")
}

func (p Period) Prev() Period {
	return PeriodOf(p.Start().AddDate(0, -1, 0))
}

func (p Period) Next() Period {
	return PeriodOf(p.End())
}
