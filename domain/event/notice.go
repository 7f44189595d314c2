package event

import "time"

// DomainEvent is the marker implemented by every event flowing into a sink.
type DomainEvent interface {
	EventName() string
}

// AssignmentNotice carries everything the delivery layer needs to tell one
// giver who they drew. The receiver's wish rides along so the notification
// can include it without another lookup.
type AssignmentNotice struct {
	Group        string
	Year         int
	GiverID      string
	GiverName    string
	GiverEmail   string
	ReceiverName string
	ReceiverWish string
	DrawnAt      time.Time
}

func (AssignmentNotice) EventName() string {
	return "assignment_notice"
}
