package models

// Order represents a row of the orders table.
type Order struct {
	OrderID       string  `db:"order_id"`
	ReferenceID   string  `db:"reference_id"`
	RequestID     *string `db:"request_id"`
	RecipientName string  `db:"recipient_name"`
	Email         string  `db:"email"`
	Street        string  `db:"street"`
	City          string  `db:"city"`
	State         string  `db:"state"`
	ZipCode       string  `db:"zip_code"`
	TrackingCode  string  `db:"tracking_code"`
	Status        string  `db:"status"`
	AuditFields
}

// OrderItem represents a row of the order_items table.
type OrderItem struct {
	ItemID  string `db:"item_id"`
	OrderID string `db:"order_id"`
	ShoeID  string `db:"shoe_id"`
}
