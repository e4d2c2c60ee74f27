package sales

import (
	"errors"
	"time"
)

type Period string

const (
	PeriodDay    Period = "day"
	PeriodWeek   Period = "week"
	PeriodMonth  Period = "month"
	PeriodCustom Period = "custom"
)

var (
	ErrUnknownPeriod  = errors.New("unknown period")
	ErrMissingBounds  = errors.New("custom period requires start_date and end_date")
	ErrInvertedBounds = errors.New("start_date must not be after end_date")
)

const dateLayout = "2006-01-02"

// Filter is the validated query forwarded to the sales endpoint.
type Filter struct {
	Period    Period
	Date      string // day only
	StartDate string // custom only
	EndDate   string // custom only
}

// NewFilter validates the raw query. Day without an explicit date
// means today; week and month bounds are computed by the backend;
// custom needs both bounds in order.
func NewFilter(period Period, date, startDate, endDate string, now time.Time) (Filter, error) {
	switch period {
	case PeriodDay:
		if date == "" {
			date = now.Format(dateLayout)
		} else if _, err := time.Parse(dateLayout, date); err != nil {
			return Filter{}, err
		}
		return Filter{Period: PeriodDay, Date: date}, nil

	case PeriodWeek, PeriodMonth:
		return Filter{Period: period}, nil

	case PeriodCustom:
		if startDate == "" || endDate == "" {
			return Filter{}, ErrMissingBounds
		}
		start, err := time.Parse(dateLayout, startDate)
		if err != nil {
			return Filter{}, err
		}
		end, err := time.Parse(dateLayout, endDate)
		if err != nil {
			return Filter{}, err
		}
		if start.After(end) {
			return Filter{}, ErrInvertedBounds
		}
		return Filter{Period: PeriodCustom, StartDate: startDate, EndDate: endDate}, nil
	}

	return Filter{}, ErrUnknownPeriod
}
