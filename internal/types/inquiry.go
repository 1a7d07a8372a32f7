package types

// InquiryStatus is a step in the inquiry workflow. The workflow is
// one-directional: RENTED, REJECTED and CANCELLED are terminal.
type InquiryStatus string

const (
	InquiryPending   InquiryStatus = "PENDING"
	InquiryContacted InquiryStatus = "CONTACTED"
	InquiryScheduled InquiryStatus = "SCHEDULED"
	InquiryVisited   InquiryStatus = "VISITED"
	InquiryRented    InquiryStatus = "RENTED"
	InquiryRejected  InquiryStatus = "REJECTED"
	InquiryCancelled InquiryStatus = "CANCELLED"
)

var inquiryTransitions = map[InquiryStatus][]InquiryStatus{
	InquiryPending:   {InquiryContacted, InquiryRejected, InquiryCancelled},
	InquiryContacted: {InquiryScheduled, InquiryRejected, InquiryCancelled},
	InquiryScheduled: {InquiryVisited, InquiryRejected, InquiryCancelled},
	InquiryVisited:   {InquiryRented, InquiryRejected, InquiryCancelled},
	InquiryRented:    {},
	InquiryRejected:  {},
	InquiryCancelled: {},
}

func ValidInquiryStatus(s InquiryStatus) bool {
	_, ok := inquiryTransitions[s]
	return ok
}

// CanTransition reports whether moving from one status to another is a legal
// step in the workflow. A no-op transition (same status) is always allowed.
func CanTransition(from, to InquiryStatus) bool {
	if from == to {
		return true
	}

	for _, next := range inquiryTransitions[from] {
		if next == to {
			return true
		}
	}

	return false
}

// Terminal reports whether no further transitions are possible.
func Terminal(s InquiryStatus) bool {
	return len(inquiryTransitions[s]) == 0
}

// ActiveInquiryStatuses are the statuses that block a second inquiry for the
// same property and student.
var ActiveInquiryStatuses = []InquiryStatus{InquiryPending, InquiryContacted}
