package errors

import "fmt"

var (
	ErrWorkerPanic              = fmt.Errorf("worker panic")
	ErrInsufficientParticipants = fmt.Errorf("insufficient participants")
	ErrNoValidAssignment        = fmt.Errorf("unable to find valid assignment under current constraints")
	ErrMemberAlreadyExists      = fmt.Errorf("member already exists in group")
	ErrMemberNotFound           = fmt.Errorf("member not found")
	ErrInvalidMember            = fmt.Errorf("invalid member")
	ErrSelfExclusion            = fmt.Errorf("a member cannot be excluded from themselves")
	ErrExclusionNotFound        = fmt.Errorf("exclusion not found")
	ErrGroupNotDrawn            = fmt.Errorf("no assignment recorded for this group and year")
	ErrWishNotFound             = fmt.Errorf("no wish recorded")
)
