package assignment

type Status string

const (
	StatusInvited  Status = "invited"
	StatusAccepted Status = "accepted"
	StatusDeclined Status = "declined"
)

func (s Status) String() string {
	return string(s)
}

// Response is an inbound accept/decline action from the invited cast.
type Response string

const (
	ResponseAccept  Response = "accept"
	ResponseDecline Response = "decline"
)

func (r Response) IsValid() bool {
	return r == ResponseAccept || r == ResponseDecline
}

func (r Response) ToStatus() Status {
	if r == ResponseAccept {
		return StatusAccepted
	}
	return StatusDeclined
}
