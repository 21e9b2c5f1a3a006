package domain

// RequestStatus indicates where a shoe request sits in its workflow.
type RequestStatus string

const (
	RequestSubmitted RequestStatus = "submitted"
	RequestApproved  RequestStatus = "approved"
	RequestShipped   RequestStatus = "shipped"
	RequestRejected  RequestStatus = "rejected"
)

// requestTransitions: rejected is terminal; every other state may reach any
// of the other three. The workflow is deliberately not forward-only so
// admins can walk a request back from shipped or approved.
var requestTransitions = map[RequestStatus][]RequestStatus{
	RequestSubmitted: {RequestApproved, RequestShipped, RequestRejected},
	RequestApproved:  {RequestSubmitted, RequestShipped, RequestRejected},
	RequestShipped:   {RequestSubmitted, RequestApproved, RequestRejected},
	RequestRejected:  {},
}

// Valid reports whether s is a member of the request status enum.
func (s RequestStatus) Valid() bool {
	_, ok := requestTransitions[s]
	return ok
}

// Terminal reports whether no further status change is permitted from s.
// Rejection is a hard block: even rejected -> rejected is refused.
func (s RequestStatus) Terminal() bool {
	next, ok := requestTransitions[s]
	return ok && len(next) == 0
}

// CanTransitionTo reports whether the table permits moving from s to next.
// A same-status request on a non-terminal state is a permitted no-op.
func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	if s.Terminal() {
		return false
	}
	if next == s {
		return s.Valid()
	}
	for _, candidate := range requestTransitions[s] {
		if candidate == next {
			return true
		}
	}
	return false
}

// RequestItem is one line of a shoe request. ShoeID binds the line to a
// specific inventory record; unbound lines describe what the requester wants
// and are matched by an admin later.
type RequestItem struct {
	ItemID string  `json:"itemID"`
	ShoeID *string `json:"shoeID,omitempty"`
	Brand  string  `json:"brand"`
	Sport  string  `json:"sport"`
	Gender string  `json:"gender"`
	Size   string  `json:"size"`
	Notes  string  `json:"notes"`
}

// ShoeRequest is a request for donated shoes submitted through the public
// form. Bound inventory is reserved at creation time, not at approval.
type ShoeRequest struct {
	RequestID     string               `json:"requestID"`
	ReferenceID   string               `json:"referenceID"`
	RequesterName string               `json:"requesterName"`
	Email         string               `json:"email"`
	Phone         string               `json:"phone"`
	Street        string               `json:"street"`
	City          string               `json:"city"`
	State         string               `json:"state"`
	ZipCode       string               `json:"zipCode"`
	Notes         string               `json:"notes"`
	Status        RequestStatus        `json:"status"`
	Items         []RequestItem        `json:"items"`
	StatusHistory []StatusHistoryEntry `json:"statusHistory"`
	AuditFields
}
