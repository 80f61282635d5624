package gateway

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mpetrick/draftcaddy/go/internal/advisor"
)

// AdvisorEvent is the envelope for every message pushed to clients.
type AdvisorEvent struct {
	ID        string          `json:"id"`
	Type      EventType       `json:"type"`
	Timestamp time.Time       `json:"timestamp"`
	Data      json.RawMessage `json:"data"`
}

// EventType represents the type of advisor event
type EventType string

const (
	EventTypeTipsUpdated    EventType = "TipsUpdated"
	EventTypeScoresReady    EventType = "ScoresReady"
	EventTypeDraftCompleted EventType = "DraftCompleted"
)

// NewEvent wraps a payload in the event envelope.
func NewEvent(eventType EventType, payload interface{}) (*AdvisorEvent, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event payload: %w", err)
	}
	return &AdvisorEvent{
		ID:        uuid.New().String(),
		Type:      eventType,
		Timestamp: time.Now(),
		Data:      data,
	}, nil
}

// EventsForResult builds the event sequence a pipeline result produces: a
// tips update on every run, plus completion and score events once the draft
// is done.
func EventsForResult(result advisor.Result) ([]*AdvisorEvent, error) {
	tipsEvent, err := NewEvent(EventTypeTipsUpdated, result)
	if err != nil {
		return nil, err
	}
	events := []*AdvisorEvent{tipsEvent}

	if result.Complete {
		completed, err := NewEvent(EventTypeDraftCompleted, map[string]int{"current_pick": result.CurrentPick})
		if err != nil {
			return nil, err
		}
		events = append(events, completed)

		if len(result.Scores) > 0 {
			scores, err := NewEvent(EventTypeScoresReady, result.Scores)
			if err != nil {
				return nil, err
			}
			events = append(events, scores)
		}
	}
	return events, nil
}
