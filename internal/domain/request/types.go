package request

type Status string

const (
	StatusPending   Status = "pending"
	StatusAssigned  Status = "assigned"
	StatusClosed    Status = "closed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// IsValid is an allow-list check. Operator-driven status updates accept any
// listed value without a transition table; 運用に合わせて許容している。
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusAssigned, StatusClosed, StatusCancelled:
		return true
	default:
		return false
	}
}
