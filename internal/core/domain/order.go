package domain

// OrderStatus indicates where a shipment order sits in its workflow.
type OrderStatus string

const (
	OrderSubmitted OrderStatus = "submitted"
	OrderShipped   OrderStatus = "shipped"
	OrderCancelled OrderStatus = "cancelled"
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderSubmitted: {OrderShipped, OrderCancelled},
	OrderShipped:   {},
	OrderCancelled: {},
}

// Valid reports whether s is a member of the order status enum.
func (s OrderStatus) Valid() bool {
	_, ok := orderTransitions[s]
	return ok
}

// Terminal reports whether no further status change is permitted from s.
func (s OrderStatus) Terminal() bool {
	next, ok := orderTransitions[s]
	return ok && len(next) == 0
}

// CanTransitionTo reports whether the table permits moving from s to next.
// A same-status request on a non-terminal state is a permitted no-op.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s.Terminal() {
		return false
	}
	if next == s {
		return s.Valid()
	}
	for _, candidate := range orderTransitions[s] {
		if candidate == next {
			return true
		}
	}
	return false
}

// OrderItem is one shoe shipped as part of an order.
type OrderItem struct {
	ItemID string `json:"itemID"`
	ShoeID string `json:"shoeID"`
}

// Order is a fulfillment shipment, usually created from an approved request.
type Order struct {
	OrderID       string               `json:"orderID"`
	ReferenceID   string               `json:"referenceID"`
	RequestID     *string              `json:"requestID,omitempty"` // originating request, if any
	RecipientName string               `json:"recipientName"`
	Email         string               `json:"email"`
	Street        string               `json:"street"`
	City          string               `json:"city"`
	State         string               `json:"state"`
	ZipCode       string               `json:"zipCode"`
	TrackingCode  string               `json:"trackingCode"`
	Status        OrderStatus          `json:"status"`
	Items         []OrderItem          `json:"items"`
	StatusHistory []StatusHistoryEntry `json:"statusHistory"`
	AuditFields
}
