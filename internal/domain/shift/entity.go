package shift

import (
	"cast-dispatch/internal/domain/request"
)

// AvailabilitySlot is a cast-declared block of time. Slots are created and
// edited outside this engine; the matcher only reads them.
type AvailabilitySlot struct {
	id       int64
	castID   int64
	date     string
	start    string
	end      string
	reserved bool
}

func ReconstructAvailabilitySlot(id, castID int64, date, start, end string, reserved bool) *AvailabilitySlot {
	return &AvailabilitySlot{
		id:       id,
		castID:   castID,
		date:     date,
		start:    start,
		end:      end,
		reserved: reserved,
	}
}

// Covers reports whether the slot fully contains the requested window:
// slot.start <= window.start && slot.end >= window.end, same date, not
// reserved. HH:MM strings compare correctly lexicographically.
func (s *AvailabilitySlot) Covers(w request.TimeWindow) bool {
	if s.reserved {
		return false
	}
	if s.date != w.Date() {
		return false
	}
	return s.start <= w.Start() && s.end >= w.End()
}

func (s *AvailabilitySlot) ID() int64      { return s.id }
func (s *AvailabilitySlot) CastID() int64  { return s.castID }
func (s *AvailabilitySlot) Date() string   { return s.date }
func (s *AvailabilitySlot) Start() string  { return s.start }
func (s *AvailabilitySlot) End() string    { return s.end }
func (s *AvailabilitySlot) Reserved() bool { return s.reserved }
