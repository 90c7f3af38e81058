package billing

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/doorscomputers/megatower-sub002/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseBillingMonth(t *testing.T) {
	tests := []struct {
		token   string
		want    BillingMonth
		wantErr bool
	}{
		{"2025-01", BillingMonth{2025, time.January}, false},
		{"2024-12", BillingMonth{2024, time.December}, false},
		{"2025-13", BillingMonth{}, true},
		{"2025-1", BillingMonth{}, true},
		{"January 2025", BillingMonth{}, true},
		{"", BillingMonth{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := ParseBillingMonth(tt.token)
			if tt.wantErr {
				assert.True(t, shared.IsValidationError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.token, got.String())
		})
	}
}

func TestBillingMonth_Display(t *testing.T) {
	assert.Equal(t, "January 2025", BillingMonth{2025, time.January}.Display())
	assert.Equal(t, "December 2024", BillingMonth{2024, time.December}.Display())
}

func TestBillingMonth_NextPrevious(t *testing.T) {
	assert.Equal(t, BillingMonth{2025, time.January}, BillingMonth{2024, time.December}.Next())
	assert.Equal(t, BillingMonth{2024, time.December}, BillingMonth{2025, time.January}.Previous())
	assert.Equal(t, BillingMonth{2025, time.July}, BillingMonth{2025, time.June}.Next())

	for year := 2023; year <= 2026; year++ {
		for month := time.January; month <= time.December; month++ {
			m := BillingMonth{year, month}
			assert.Equal(t, m, m.Previous().Next(), "round trip for %s", m)
			assert.Equal(t, m, m.Next().Previous(), "reverse round trip for %s", m)
		}
	}
}

func TestBillingMonth_Day_ClampsToMonthEnd(t *testing.T) {
	assert.Equal(t, date(2025, time.February, 28), BillingMonth{2025, time.February}.Day(31))
	assert.Equal(t, date(2024, time.February, 29), BillingMonth{2024, time.February}.Day(30))
	assert.Equal(t, date(2025, time.March, 15), BillingMonth{2025, time.March}.Day(15))
}

func TestGetBillingPeriodInfo(t *testing.T) {
	schedule := ScheduleSettings{
		ReadingDay:         26,
		BillingDay:         27,
		StatementDelayDays: 3,
		DueDateDelayDays:   10,
		GracePeriodDays:    5,
	}

	info, err := GetBillingPeriodInfo(BillingMonth{2025, time.January}, schedule)
	require.NoError(t, err)

	assert.Equal(t, date(2024, time.December, 26), info.ReadingStart)
	assert.Equal(t, date(2025, time.January, 26), info.ReadingEnd)
	assert.Equal(t, date(2025, time.January, 27), info.GenerationDate)
	assert.Equal(t, date(2025, time.January, 30), info.StatementDate)
	assert.Equal(t, date(2025, time.February, 9), info.DueDate)
	assert.Equal(t, date(2025, time.February, 15), info.PenaltyStartDate)
	assert.Equal(t, time.UTC, info.DueDate.Location())

	t.Run("invalid schedule", func(t *testing.T) {
		_, err := GetBillingPeriodInfo(BillingMonth{2025, time.January}, ScheduleSettings{ReadingDay: 40, BillingDay: 1})
		assert.True(t, shared.IsValidationError(err))
	})

	t.Run("invalid month", func(t *testing.T) {
		_, err := GetBillingPeriodInfo(BillingMonth{2025, 13}, schedule)
		assert.True(t, shared.IsValidationError(err))
	})
}

func TestPeriodInfo_Predicates(t *testing.T) {
	info := PeriodInfo{
		DueDate:          date(2025, time.February, 9),
		PenaltyStartDate: date(2025, time.February, 15),
	}

	tests := []struct {
		name       string
		asOf       time.Time
		overdue    bool
		penalty    bool
		monthsOver int
	}{
		{"before due", date(2025, time.February, 1), false, false, 0},
		{"on due date", date(2025, time.February, 9), false, false, 0},
		{"due date afternoon", time.Date(2025, time.February, 9, 18, 0, 0, 0, time.UTC), false, false, 0},
		{"day after due", date(2025, time.February, 10), true, false, 1},
		{"day before penalty start", date(2025, time.February, 14), true, false, 1},
		{"penalty start", date(2025, time.February, 15), true, true, 1},
		{"due anniversary", date(2025, time.March, 9), true, true, 1},
		{"past anniversary", date(2025, time.March, 10), true, true, 2},
		{"across year", date(2026, time.January, 20), true, true, 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.overdue, info.IsOverdue(tt.asOf))
			assert.Equal(t, tt.penalty, info.IsPenaltyApplicable(tt.asOf))
			assert.Equal(t, tt.monthsOver, info.MonthsOverdue(tt.asOf))
		})
	}
}

func TestMonthsOverdue_MonthEnd(t *testing.T) {
	jan31 := date(2025, time.January, 31)
	manila := time.FixedZone("PHT", 8*60*60)

	tests := []struct {
		name string
		due  time.Time
		asOf time.Time
		want int
	}{
		{"on the due date", jan31, jan31, 0},
		// the count follows the calendar month index, so one day late in a new month is a month
		{"first day of next month", jan31, date(2025, time.February, 1), 1},
		{"end of short month", jan31, date(2025, time.February, 28), 1},
		{"first day two months on", jan31, date(2025, time.March, 1), 2},
		{"past the due day", date(2024, time.December, 15), date(2025, time.January, 16), 2},
		{"same day next month", date(2024, time.December, 15), date(2025, time.January, 15), 1},
		{"compared on UTC dates", jan31, time.Date(2025, time.February, 1, 7, 0, 0, 0, manila), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MonthsOverdue(tt.due, tt.asOf))
		})
	}
}

func TestBillingMonth_Text(t *testing.T) {
	line := PenaltyLine{BillingMonth: BillingMonth{2025, time.March}}
	raw, err := json.Marshal(line)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"billing_month":"2025-03"`)

	var decoded PenaltyLine
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, BillingMonth{2025, time.March}, decoded.BillingMonth)

	var m BillingMonth
	assert.True(t, shared.IsValidationError(m.UnmarshalText([]byte("2025-13"))))
}
