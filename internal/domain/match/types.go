package match

type Status string

const (
	StatusStarted Status = "started"
	StatusEnded   Status = "ended"
)

func (s Status) String() string {
	return string(s)
}

// Allowed initial durations in minutes.
var allowedDurations = map[int32]struct{}{
	60:  {},
	120: {},
	180: {},
}

func IsAllowedDuration(minutes int32) bool {
	_, ok := allowedDurations[minutes]
	return ok
}

// Allowed extension sizes in hours.
func IsAllowedExtension(hours int32) bool {
	return hours == 1 || hours == 2
}
