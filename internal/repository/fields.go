package repository

// Canonical field keys for partial updates. Backends translate these to their
// own column or document key names.
const (
	FieldAssignedToID = "assignedToId"
	FieldStatus       = "status"
	FieldCompletedAt  = "completedAt"
)
