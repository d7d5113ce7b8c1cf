package value_objects

import "fmt"

type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusResolved   Status = "resolved"
	StatusClosed     Status = "closed"
)

var validStatuses = map[Status]bool{
	StatusOpen:       true,
	StatusInProgress: true,
	StatusResolved:   true,
	StatusClosed:     true,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid status: %s", s)
	}
	return status, nil
}

func (s Status) IsOpen() bool {
	return s == StatusOpen
}

func (s Status) IsInProgress() bool {
	return s == StatusInProgress
}

func (s Status) IsResolved() bool {
	return s == StatusResolved
}

func (s Status) IsClosed() bool {
	return s == StatusClosed
}
