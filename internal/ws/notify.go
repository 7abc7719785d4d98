package ws

import (
	"encoding/json"
	"strings"
	"sync/atomic"
	"time"
)

// EntityChangedEvent is pushed to dashboard clients whenever a
// personnel, skill, project, or requirement row changes, so open
// dashboards can refetch without polling.
type EntityChangedEvent struct {
	Type      string `json:"type"`
	Entity    string `json:"entity"`
	Action    string `json:"action"`
	Timestamp string `json:"timestamp"`
}

const (
	EntityPersonnel   = "personnel"
	EntitySkill       = "skill"
	EntityProject     = "project"
	EntityRequirement = "requirement"
	EntityAssignment  = "assignment"

	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

func NotifyEntityChanged(entity, action string) {
	h := defaultHub.Load()
	if h == nil {
		return
	}

	entity = strings.TrimSpace(entity)
	action = strings.TrimSpace(action)
	if entity == "" || action == "" {
		return
	}

	evt := EntityChangedEvent{
		Type:      "entity_changed",
		Entity:    entity,
		Action:    action,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	h.Broadcast(b)
}
