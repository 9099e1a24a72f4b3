package botlist

import (
	"github.com/google/uuid"
)

// Event kinds published on directory activity
const (
	EventSubmission   = "submission"
	EventModeration   = "moderation"
	EventResubmission = "resubmission"
	EventDeletion     = "deletion"
	EventVote         = "vote"
	EventReview       = "review"
)

// Event is a directory activity record fanned out to MQTT and the live feed
type Event struct {
	ID     string `json:"id"`
	Type   string `json:"type"`
	BotID  string `json:"botId"`
	UserID string `json:"userId,omitempty"`
	Detail string `json:"detail,omitempty"`
	At     int64  `json:"at"`
}

func (s *Service) newEvent(kind, botID, userID, detail string) Event {
	return Event{
		ID:     uuid.NewString(),
		Type:   kind,
		BotID:  botID,
		UserID: userID,
		Detail: detail,
		At:     s.now().UnixMilli(),
	}
}
