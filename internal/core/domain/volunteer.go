package domain

// VolunteerKind distinguishes the three public forms that share the
// volunteer pipeline.
type VolunteerKind string

const (
	KindVolunteer   VolunteerKind = "volunteer"
	KindPartnership VolunteerKind = "partnership"
	KindContact     VolunteerKind = "contact"
)

// Valid reports whether k is a recognized submission kind.
func (k VolunteerKind) Valid() bool {
	switch k {
	case KindVolunteer, KindPartnership, KindContact:
		return true
	}
	return false
}

// VolunteerStatus tracks the admin follow-up workflow for submissions.
type VolunteerStatus string

const (
	VolunteerSubmitted VolunteerStatus = "submitted"
	VolunteerContacted VolunteerStatus = "contacted"
	VolunteerArchived  VolunteerStatus = "archived"
)

var volunteerTransitions = map[VolunteerStatus][]VolunteerStatus{
	VolunteerSubmitted: {VolunteerContacted, VolunteerArchived},
	VolunteerContacted: {VolunteerArchived},
	VolunteerArchived:  {},
}

// Valid reports whether s is a member of the volunteer status enum.
func (s VolunteerStatus) Valid() bool {
	_, ok := volunteerTransitions[s]
	return ok
}

// Terminal reports whether no further status change is permitted from s.
func (s VolunteerStatus) Terminal() bool {
	next, ok := volunteerTransitions[s]
	return ok && len(next) == 0
}

// CanTransitionTo reports whether the table permits moving from s to next.
// A same-status request on a non-terminal state is a permitted no-op.
func (s VolunteerStatus) CanTransitionTo(next VolunteerStatus) bool {
	if s.Terminal() {
		return false
	}
	if next == s {
		return s.Valid()
	}
	for _, candidate := range volunteerTransitions[s] {
		if candidate == next {
			return true
		}
	}
	return false
}

// Volunteer is a volunteer, partnership, or contact submission.
type Volunteer struct {
	VolunteerID   string               `json:"volunteerID"`
	ReferenceID   string               `json:"referenceID"`
	Kind          VolunteerKind        `json:"kind"`
	Name          string               `json:"name"`
	Email         string               `json:"email"`
	Phone         string               `json:"phone"`
	Message       string               `json:"message"`
	Status        VolunteerStatus      `json:"status"`
	StatusHistory []StatusHistoryEntry `json:"statusHistory"`
	AuditFields
}
