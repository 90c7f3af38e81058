package billing

import (
	"fmt"
	"time"

	"github.com/doorscomputers/megatower-sub002/internal/domain/shared"
)

// BillingMonth is the calendar month a bill is issued for, exchanged as "YYYY-MM".
type BillingMonth struct {
	Year  int
	Month time.Month
}

// NewBillingMonth builds a billing month, validating the month number.
func NewBillingMonth(year int, month time.Month) (BillingMonth, error) {
	if month < time.January || month > time.December {
		return BillingMonth{}, shared.NewValidationError("month %d out of range", month)
	}
	if year < 1 || year > 9999 {
		return BillingMonth{}, shared.NewValidationError("year %d out of range", year)
	}
	return BillingMonth{Year: year, Month: month}, nil
}

// ParseBillingMonth parses a "YYYY-MM" token.
func ParseBillingMonth(token string) (BillingMonth, error) {
	t, err := time.Parse("2006-01", token)
	if err != nil {
		return BillingMonth{}, shared.NewValidationError("invalid billing month %q, expected YYYY-MM", token)
	}
	return NewBillingMonth(t.Year(), t.Month())
}

// BillingMonthOf returns the billing month containing t (in UTC).
func BillingMonthOf(t time.Time) BillingMonth {
	u := t.UTC()
	return BillingMonth{Year: u.Year(), Month: u.Month()}
}

// String returns the "YYYY-MM" token
func (m BillingMonth) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// MarshalText encodes the month as YYYY-MM.
func (m BillingMonth) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText parses a YYYY-MM month.
func (m *BillingMonth) UnmarshalText(text []byte) error {
	parsed, err := ParseBillingMonth(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Display formats the month for statements, e.g. "January 2025".
func (m BillingMonth) Display() string {
	return fmt.Sprintf("%s %d", m.Month, m.Year)
}

// IsZero reports whether the month is unset
func (m BillingMonth) IsZero() bool {
	return m.Year == 0 && m.Month == 0
}

// Next returns the following month, rolling December into January.
func (m BillingMonth) Next() BillingMonth {
	if m.Month == time.December {
		return BillingMonth{Year: m.Year + 1, Month: time.January}
	}
	return BillingMonth{Year: m.Year, Month: m.Month + 1}
}

// Previous returns the preceding month, rolling January into December.
func (m BillingMonth) Previous() BillingMonth {
	if m.Month == time.January {
		return BillingMonth{Year: m.Year - 1, Month: time.December}
	}
	return BillingMonth{Year: m.Year, Month: m.Month - 1}
}

// Before reports whether m is earlier than other
func (m BillingMonth) Before(other BillingMonth) bool {
	if m.Year != other.Year {
		return m.Year < other.Year
	}
	return m.Month < other.Month
}

// FirstDay returns midnight UTC on the first of the month.
func (m BillingMonth) FirstDay() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// Day returns midnight UTC on the given day, clamped to the month's last day.
func (m BillingMonth) Day(day int) time.Time {
	last := m.FirstDay().AddDate(0, 1, -1).Day()
	if day > last {
		day = last
	}
	return time.Date(m.Year, m.Month, day, 0, 0, 0, 0, time.UTC)
}

// ScheduleSettings drives every date the scheduler derives.
type ScheduleSettings struct {
	ReadingDay         int `json:"reading_day"`
	BillingDay         int `json:"billing_day"`
	StatementDelayDays int `json:"statement_delay_days"`
	DueDateDelayDays   int `json:"due_date_delay_days"`
	GracePeriodDays    int `json:"grace_period_days"`
}

// DefaultScheduleSettings returns the seeded schedule.
func DefaultScheduleSettings() ScheduleSettings {
	return ScheduleSettings{
		ReadingDay:         26,
		BillingDay:         27,
		StatementDelayDays: 3,
		DueDateDelayDays:   10,
		GracePeriodDays:    0,
	}
}

// Validate checks day ranges and delays
func (s ScheduleSettings) Validate() error {
	if s.ReadingDay < 1 || s.ReadingDay > 31 {
		return shared.NewValidationError("reading day %d must be between 1 and 31", s.ReadingDay)
	}
	if s.BillingDay < 1 || s.BillingDay > 31 {
		return shared.NewValidationError("billing day %d must be between 1 and 31", s.BillingDay)
	}
	if s.StatementDelayDays < 0 || s.DueDateDelayDays < 0 || s.GracePeriodDays < 0 {
		return shared.NewValidationError("schedule delays must not be negative")
	}
	return nil
}

// PeriodInfo holds the key dates of one billing month. All dates are midnight UTC.
type PeriodInfo struct {
	BillingMonth     BillingMonth
	ReadingStart     time.Time
	ReadingEnd       time.Time
	GenerationDate   time.Time
	StatementDate    time.Time
	DueDate          time.Time
	PenaltyStartDate time.Time
}

// GetBillingPeriodInfo derives the period's dates by fixed offsets from the month.
func GetBillingPeriodInfo(month BillingMonth, s ScheduleSettings) (PeriodInfo, error) {
	if err := s.Validate(); err != nil {
		return PeriodInfo{}, err
	}
	if _, err := NewBillingMonth(month.Year, month.Month); err != nil {
		return PeriodInfo{}, err
	}

	generation := month.Day(s.BillingDay)
	statement := generation.AddDate(0, 0, s.StatementDelayDays)
	due := statement.AddDate(0, 0, s.DueDateDelayDays)

	return PeriodInfo{
		BillingMonth:     month,
		ReadingStart:     month.Previous().Day(s.ReadingDay),
		ReadingEnd:       month.Day(s.ReadingDay),
		GenerationDate:   generation,
		StatementDate:    statement,
		DueDate:          due,
		PenaltyStartDate: due.AddDate(0, 0, s.GracePeriodDays+1),
	}, nil
}

// IsOverdue reports asOf > due date.
func (p PeriodInfo) IsOverdue(asOf time.Time) bool {
	return truncateDay(asOf).After(p.DueDate)
}

// IsPenaltyApplicable reports asOf >= penalty start date.
func (p PeriodInfo) IsPenaltyApplicable(asOf time.Time) bool {
	return !truncateDay(asOf).Before(p.PenaltyStartDate)
}

// MonthsOverdue is MonthsOverdue(p.DueDate, asOf).
func (p PeriodInfo) MonthsOverdue(asOf time.Time) int {
	return MonthsOverdue(p.DueDate, asOf)
}

// MonthsOverdue counts whole calendar months from due to asOf, plus one once
// asOf's day of month has passed the due day. It is zero unless asOf is after due.
func MonthsOverdue(due, asOf time.Time) int {
	d, a := truncateDay(due), truncateDay(asOf)
	if !a.After(d) {
		return 0
	}
	months := (a.Year()-d.Year())*12 + int(a.Month()) - int(d.Month())
	if a.Day() > d.Day() {
		months++
	}
	return months
}

func truncateDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
