package ws

import (
	"encoding/json"
	"time"
)

const EventSkillsUpdated = "skills_updated"

type SkillsUpdatedEvent struct {
	Type      string `json:"type"`
	Action    string `json:"action"`
	SkillID   int64  `json:"skillId,omitempty"`
	Timestamp string `json:"timestamp"`
}

// Notifier turns skill writes into hub broadcasts.
type Notifier struct {
	hub *Hub
	now func() time.Time
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub, now: time.Now}
}

// NotifySkillsUpdated broadcasts a skills_updated event. A zero skillID is
// used for bulk changes and left out of the payload.
func (n *Notifier) NotifySkillsUpdated(action string, skillID int64) {
	if n == nil || n.hub == nil {
		return
	}

	evt := SkillsUpdatedEvent{
		Type:      EventSkillsUpdated,
		Action:    action,
		SkillID:   skillID,
		Timestamp: n.now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	n.hub.Broadcast(b)
}
