package model

import "time"

// ChangeType identifies what happened to a document.
type ChangeType string

const (
	ChangeTypeCreated ChangeType = "created"
	ChangeTypeUpdated ChangeType = "updated"
	ChangeTypeDeleted ChangeType = "deleted"
)

// ChangeEvent describes a mutation of a workforce document. It is published
// on the in-process event bus after every write and, when Redis is
// configured, appended to a per-entity stream for external consumers.
type ChangeEvent struct {
	ID          string                 `json:"id"`
	Entity      string                 `json:"entity"`
	BusinessKey string                 `json:"businessKey"`
	Change      ChangeType             `json:"change"`
	Data        map[string]interface{} `json:"data,omitempty"`
	Timestamp   time.Time              `json:"timestamp"`
}

// Name implements eventbus.Event; events are routed as "<entity>.<change>".
func (e ChangeEvent) Name() string {
	return e.Entity + "." + string(e.Change)
}

// Payload implements eventbus.Event.
func (e ChangeEvent) Payload() interface{} {
	return e
}

// OccurredAt implements eventbus.Event.
func (e ChangeEvent) OccurredAt() time.Time {
	return e.Timestamp
}
