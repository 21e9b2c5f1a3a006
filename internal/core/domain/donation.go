package domain

// DonationStatus indicates where a shoe donation sits in its workflow.
type DonationStatus string

const (
	DonationSubmitted DonationStatus = "submitted"
	DonationReceived  DonationStatus = "received"
	DonationProcessed DonationStatus = "processed"
	DonationCancelled DonationStatus = "cancelled"
)

// donationTransitions is the per-state reachability table. An empty set
// marks a terminal state.
var donationTransitions = map[DonationStatus][]DonationStatus{
	DonationSubmitted: {DonationReceived, DonationProcessed, DonationCancelled},
	DonationReceived:  {DonationProcessed, DonationCancelled},
	DonationProcessed: {},
	DonationCancelled: {},
}

// Valid reports whether s is a member of the donation status enum.
func (s DonationStatus) Valid() bool {
	_, ok := donationTransitions[s]
	return ok
}

// Terminal reports whether no further status change is permitted from s.
func (s DonationStatus) Terminal() bool {
	next, ok := donationTransitions[s]
	return ok && len(next) == 0
}

// CanTransitionTo reports whether the table permits moving from s to next.
// A same-status request on a non-terminal state is treated as a permitted
// no-op (it persists a history entry but triggers no notification).
func (s DonationStatus) CanTransitionTo(next DonationStatus) bool {
	if s.Terminal() {
		return false
	}
	if next == s {
		return s.Valid()
	}
	for _, candidate := range donationTransitions[s] {
		if candidate == next {
			return true
		}
	}
	return false
}

// Donation is a shoe donation submitted through the public form.
type Donation struct {
	DonationID    string               `json:"donationID"`
	ReferenceID   string               `json:"referenceID"`
	OldID         *string              `json:"oldID,omitempty"` // pre-launch id retained by the legacy migration
	DonorName     string               `json:"donorName"`
	Email         string               `json:"email"`
	Phone         string               `json:"phone"`
	Street        string               `json:"street"`
	City          string               `json:"city"`
	State         string               `json:"state"`
	ZipCode       string               `json:"zipCode"`
	NumShoes      int                  `json:"numShoes"`
	Notes         string               `json:"notes"`
	Status        DonationStatus       `json:"status"`
	StatusHistory []StatusHistoryEntry `json:"statusHistory"`
	AuditFields
}
