package dto

import (
	"time"

	"github.com/newstepsproject/backend/internal/core/domain"
)

// CreateOrderRequest fulfils an approved shoe request with concrete inventory.
type CreateOrderRequest struct {
	ShoeIDs      []string `json:"shoeIDs" binding:"required,min=1"`
	TrackingCode string   `json:"trackingCode"`
}

// OrderItemResponse is one shipped line of an order.
type OrderItemResponse struct {
	ShoeID string `json:"shoeID"`
}

// OrderResponse is the API representation of an order.
type OrderResponse struct {
	ReferenceID   string                       `json:"referenceID"`
	RequestID     *string                      `json:"requestID,omitempty"`
	RecipientName string                       `json:"recipientName"`
	Email         string                       `json:"email"`
	Street        string                       `json:"street"`
	City          string                       `json:"city"`
	State         string                       `json:"state"`
	ZipCode       string                       `json:"zipCode"`
	TrackingCode  string                       `json:"trackingCode"`
	Status        string                       `json:"status"`
	Items         []OrderItemResponse          `json:"items"`
	StatusHistory []StatusHistoryEntryResponse `json:"statusHistory"`
	CreatedAt     time.Time                    `json:"createdAt"`
}

// ToOrderResponse converts a domain.Order for API output.
func ToOrderResponse(o *domain.Order) OrderResponse {
	items := make([]OrderItemResponse, len(o.Items))
	for i, item := range o.Items {
		items[i] = OrderItemResponse{ShoeID: item.ShoeID}
	}
	return OrderResponse{
		ReferenceID:   o.ReferenceID,
		RequestID:     o.RequestID,
		RecipientName: o.RecipientName,
		Email:         o.Email,
		Street:        o.Street,
		City:          o.City,
		State:         o.State,
		ZipCode:       o.ZipCode,
		TrackingCode:  o.TrackingCode,
		Status:        string(o.Status),
		Items:         items,
		StatusHistory: ToStatusHistoryResponse(o.StatusHistory),
		CreatedAt:     o.CreatedAt,
	}
}

// ListOrdersResponse wraps a page of orders.
type ListOrdersResponse struct {
	Orders    []OrderResponse `json:"orders"`
	NextToken *string         `json:"nextToken,omitempty"`
}
