package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventStageStart EventType = "stage_start"
	EventStageEnd   EventType = "stage_end"
)

// StageEvent represents entry into or exit from a pipeline stage.
type StageEvent struct {
	Timestamp  time.Time `json:"timestamp"`
	Type       EventType `json:"type"`
	Experiment string    `json:"experiment"`
	Stage      Stage     `json:"stage"`
	// Timing and Err are only set on EventStageEnd.
	Timing Timing `json:"timing,omitzero"`
	Err    error  `json:"-"`
}

// LifecycleHooks defines callbacks for pipeline observability.
type LifecycleHooks struct {
	OnStageStart func(context.Context, *StageEvent)
	OnStageEnd   func(context.Context, *StageEvent)
}
