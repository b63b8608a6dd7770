package billing_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/wyawin/fineksi-invoice/internal/domain/billing"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDueDate_MonthRollover(t *testing.T) {
	due := billing.DueDate(day(2024, time.January, 25), 14)
	assert.Equal(t, day(2024, time.February, 8), due)
}

func TestDueDate_YearRollover(t *testing.T) {
	due := billing.DueDate(day(2024, time.December, 20), 30)
	assert.Equal(t, day(2025, time.January, 19), due)
}

func TestDueDate_LeapFebruary(t *testing.T) {
	due := billing.DueDate(day(2024, time.February, 20), 14)
	assert.Equal(t, day(2024, time.March, 5), due, "2024 is a leap year, Feb has 29 days")
}

func TestDueDate_ZeroTerms_SameDay(t *testing.T) {
	d := day(2024, time.June, 1)
	assert.Equal(t, d, billing.DueDate(d, 0))
}
