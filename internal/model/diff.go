package model

// diffFields is the fixed set of fields that participate in change
// tracking, in output order.
var diffFields = []string{"serialNumber", "type", "size", "location", "notes"}

// FieldChange records one field-level change between two asset snapshots.
type FieldChange struct {
	Field    string `json:"field"`
	OldValue string `json:"oldValue"`
	NewValue string `json:"newValue"`
}

// HistoryEntry is one past change to one asset. History is append-only and
// owned by the remote store; the client only reads it.
type HistoryEntry struct {
	InsoleID  string        `json:"insoleId"`
	Timestamp string        `json:"timestamp"`
	Changes   []FieldChange `json:"changes"`
}

// Diff compares the tracked fields of two asset snapshots and returns one
// change record per differing field, in fixed field order. Identical
// snapshots yield an empty result.
func Diff(oldAsset, newAsset Asset) []FieldChange {
	var changes []FieldChange
	for _, field := range diffFields {
		oldVal := oldAsset.Field(field)
		newVal := newAsset.Field(field)
		if oldVal != newVal {
			changes = append(changes, FieldChange{Field: field, OldValue: oldVal, NewValue: newVal})
		}
	}
	return changes
}
