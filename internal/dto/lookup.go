package dto

// StatusLookupResponse is the public answer to "where is my submission".
// EntityType is inferred from the reference ID prefix.
type StatusLookupResponse struct {
	ReferenceID   string                       `json:"referenceID"`
	EntityType    string                       `json:"entityType"`
	Status        string                       `json:"status"`
	StatusHistory []StatusHistoryEntryResponse `json:"statusHistory"`
}
