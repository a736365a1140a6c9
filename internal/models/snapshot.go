package models

// TriggerSnapshot is the cached copy of the whole default-trigger set.
type TriggerSnapshot struct {
	Counts   int              `json:"counts" example:"1"`
	Triggers []DefaultTrigger `json:"triggers"`
} // @name TriggerSnapshot

// NewTriggerSnapshot builds a snapshot whose count matches the list. A nil list becomes empty.
func NewTriggerSnapshot(triggers []DefaultTrigger) TriggerSnapshot {
	if triggers == nil {
		triggers = []DefaultTrigger{}
	}
	return TriggerSnapshot{Counts: len(triggers), Triggers: triggers}
}

// PutSnapshotRequest is the body accepted by the snapshot cache PUT endpoint.
type PutSnapshotRequest struct {
	Triggers []DefaultTrigger `json:"triggers"`
} // @name PutSnapshotRequest
