package models

// Volunteer represents a row of the volunteers table, shared by the
// volunteer, partnership, and contact forms (distinguished by kind).
type Volunteer struct {
	VolunteerID string `db:"volunteer_id"`
	ReferenceID string `db:"reference_id"`
	Kind        string `db:"kind"`
	Name        string `db:"name"`
	Email       string `db:"email"`
	Phone       string `db:"phone"`
	Message     string `db:"message"`
	Status      string `db:"status"`
	AuditFields
}
