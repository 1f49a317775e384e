package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nurpe/staffdesk/internal/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDaysUntil(t *testing.T) {
	today := date(2025, time.January, 1)

	assert.Equal(t, 19, DaysUntil(date(2025, time.January, 20), today))
	assert.Equal(t, 0, DaysUntil(date(2025, time.January, 1), today))
	assert.Equal(t, -1, DaysUntil(date(2024, time.December, 31), today))
}

func TestDaysUntilIgnoresTimeOfDay(t *testing.T) {
	today := time.Date(2025, time.January, 1, 23, 45, 0, 0, time.UTC)
	target := time.Date(2025, time.January, 2, 0, 1, 0, 0, time.UTC)

	assert.Equal(t, 1, DaysUntil(target, today))
}

func TestContractStatusBoundaries(t *testing.T) {
	today := date(2025, time.January, 1)

	cases := []struct {
		daysOut int
		want    model.ContractStatus
	}{
		{-1, model.ContractStatusExpired},
		{0, model.ContractStatusExpiring30},
		{30, model.ContractStatusExpiring30},
		{31, model.ContractStatusExpiring60},
		{60, model.ContractStatusExpiring60},
		{61, model.ContractStatusExpiring90},
		{90, model.ContractStatusExpiring90},
		{91, model.ContractStatusActive},
	}
	for _, tc := range cases {
		end := today.AddDate(0, 0, tc.daysOut)
		assert.Equal(t, tc.want, ContractStatusAt(end, today), "days out: %d", tc.daysOut)
	}
}
