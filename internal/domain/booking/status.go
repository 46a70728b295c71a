package booking

import "github.com/BruksfildServices01/barber-queue/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending    Status = "PENDING"
	StatusInProgress Status = "IN_PROGRESS"
	StatusDone       Status = "DONE"
	StatusCancelled  Status = "CANCELLED"
)

// ActiveStatuses occupy queue time and feed the projector.
var ActiveStatuses = []string{
	string(StatusPending),
	string(StatusInProgress),
}

func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusPending, StatusInProgress, StatusDone, StatusCancelled:
		return st, nil
	}
	return "", httperr.ErrBusiness(CodeInvalidStatus)
}

func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusInProgress
}

func (s Status) IsTerminal() bool {
	return s == StatusDone || s == StatusCancelled
}

// ===============================
// Transitions
// ===============================

var transitions = map[Status][]Status{
	StatusPending:    {StatusInProgress, StatusCancelled},
	StatusInProgress: {StatusDone, StatusCancelled, StatusPending},
	StatusDone:       {StatusPending},
	StatusCancelled:  {StatusPending},
}

// CanTransition reports whether an admin may move a booking from one status to
// another. Moving back to PENDING is the administrative revert.
func CanTransition(from, to Status) error {
	for _, next := range transitions[from] {
		if next == to {
			return nil
		}
	}
	return httperr.ErrBusiness(CodeInvalidTransition)
}

func InitialStatus() Status {
	return StatusPending
}
