package models

// ShoeRequest represents a row of the shoe_requests table.
type ShoeRequest struct {
	RequestID     string `db:"request_id"`
	ReferenceID   string `db:"reference_id"`
	RequesterName string `db:"requester_name"`
	Email         string `db:"email"`
	Phone         string `db:"phone"`
	Street        string `db:"street"`
	City          string `db:"city"`
	State         string `db:"state"`
	ZipCode       string `db:"zip_code"`
	Notes         string `db:"notes"`
	Status        string `db:"status"`
	AuditFields
}

// RequestItem represents a row of the shoe_request_items table. Position
// preserves the order the requester listed the lines in.
type RequestItem struct {
	ItemID    string  `db:"item_id"`
	RequestID string  `db:"request_id"`
	Position  int     `db:"position"`
	ShoeID    *string `db:"shoe_id"`
	Brand     string  `db:"brand"`
	Sport     string  `db:"sport"`
	Gender    string  `db:"gender"`
	Size      string  `db:"size"`
	Notes     string  `db:"notes"`
}
