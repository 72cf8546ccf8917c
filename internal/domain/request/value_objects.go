package request

import (
	"errors"
	"time"
)

var (
	ErrInvalidDate   = errors.New("invalid date")
	ErrInvalidWindow = errors.New("start time must be before end time")
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// TimeWindow is a requested block of time on a single day. Start and end are
// wall-clock times in HH:MM form; comparisons stay within the same date.
type TimeWindow struct {
	date  string
	start string
	end   string
}

func NewTimeWindow(date, start, end string) (TimeWindow, error) {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return TimeWindow{}, ErrInvalidDate
	}
	st, err := time.Parse(timeLayout, start)
	if err != nil {
		return TimeWindow{}, ErrInvalidWindow
	}
	et, err := time.Parse(timeLayout, end)
	if err != nil {
		return TimeWindow{}, ErrInvalidWindow
	}
	if !st.Before(et) {
		return TimeWindow{}, ErrInvalidWindow
	}
	return TimeWindow{date: date, start: start, end: end}, nil
}

func (w TimeWindow) Date() string  { return w.date }
func (w TimeWindow) Start() string { return w.start }
func (w TimeWindow) End() string   { return w.end }

func (w TimeWindow) Duration() time.Duration {
	st, _ := time.Parse(timeLayout, w.start)
	et, _ := time.Parse(timeLayout, w.end)
	return et.Sub(st)
}
