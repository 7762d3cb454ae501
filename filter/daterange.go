package filter

import (
	"errors"
	"fmt"
	"time"

	"github.com/patricioibar/olist-dashboard/dataset"
)

const DayLayout = "2006-01-02"

var (
	ErrInvalidRange = errors.New("invalid date range")
	ErrOutOfBounds  = fmt.Errorf("%w: outside the observed purchase dates", ErrInvalidRange)
)

// DateRange is an inclusive timestamp interval.
type DateRange struct {
	Start time.Time
	End   time.Time
}

func NewDateRange(start, end time.Time) (DateRange, error) {
	if start.After(end) {
		return DateRange{}, fmt.Errorf("%w: start %s is after end %s", ErrInvalidRange, start, end)
	}
	return DateRange{Start: start, End: end}, nil
}

// DateRangeFromDays builds the range covering whole calendar days. A single
// day selects that day only.
func DateRangeFromDays(days ...time.Time) (DateRange, error) {
	switch len(days) {
	case 1:
		return NewDateRange(startOfDay(days[0]), endOfDay(days[0]))
	case 2:
		return NewDateRange(startOfDay(days[0]), endOfDay(days[1]))
	default:
		return DateRange{}, fmt.Errorf("%w: expected one or two dates, got %d", ErrInvalidRange, len(days))
	}
}

// ParseDays parses one or two YYYY-MM-DD values into a DateRange.
func ParseDays(values ...string) (DateRange, error) {
	days := make([]time.Time, 0, len(values))
	for _, value := range values {
		day, err := time.Parse(DayLayout, value)
		if err != nil {
			return DateRange{}, fmt.Errorf("%w: %q is not a date", ErrInvalidRange, value)
		}
		days = append(days, day)
	}
	return DateRangeFromDays(days...)
}

// Bounds is the whole-day range spanned by the snapshot purchase
// timestamps. ok is false for an empty orders table.
func Bounds(snapshot *dataset.Snapshot) (bounds DateRange, ok bool) {
	first, last, ok := snapshot.PurchaseBounds()
	if !ok {
		return DateRange{}, false
	}
	return DateRange{Start: startOfDay(first), End: endOfDay(last)}, true
}

func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

func (r DateRange) Within(bounds DateRange) bool {
	return !r.Start.Before(bounds.Start) && !r.End.After(bounds.End)
}

// Validate rejects ranges that are inverted or that leave bounds.
func (r DateRange) Validate(bounds DateRange) error {
	if r.Start.After(r.End) {
		return fmt.Errorf("%w: start %s is after end %s", ErrInvalidRange, r.Start, r.End)
	}
	if !r.Within(bounds) {
		return fmt.Errorf(
			"%w: [%s, %s] not within [%s, %s]",
			ErrOutOfBounds,
			r.Start.Format(DayLayout), r.End.Format(DayLayout),
			bounds.Start.Format(DayLayout), bounds.End.Format(DayLayout),
		)
	}
	return nil
}

func (r DateRange) String() string {
	return fmt.Sprintf("[%s, %s]", r.Start.Format(time.DateTime), r.End.Format(time.DateTime))
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}
