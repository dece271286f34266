package models

// AddOutcome reports what happened on a collection insert. Duplicate
// membership is a normal outcome, not an error.
type AddOutcome int

const (
	Added AddOutcome = iota
	AlreadyPresent
)

func (o AddOutcome) String() string {
	if o == Added {
		return "added"
	}
	return "already_present"
}

// RemoveOutcome reports what happened on a collection removal.
type RemoveOutcome int

const (
	Removed RemoveOutcome = iota
	NotPresent
)

func (o RemoveOutcome) String() string {
	if o == Removed {
		return "removed"
	}
	return "not_present"
}
