// Package session runs a single timed session for one objective
package session

import (
	"context"
	"time"

	"github.com/personaplus/plus/internal/objective"
)

// State is the lifecycle state of a session.
type State int

const (
	Running State = iota
	Paused
	HelpPaused
	Completed
	Cancelled
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case HelpPaused:
		return "help"
	case Completed:
		return "completed"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Event describes what an input did to the engine.
type Event int

const (
	// EventNone means the input was ignored.
	EventNone Event = iota
	// EventTick means the countdown moved.
	EventTick
	// EventLap means a lap ended and the next one started.
	EventLap
	// EventCompleted means the last lap ended.
	EventCompleted
)

// ObjectiveFinder looks objectives up by id.
type ObjectiveFinder interface {
	FindByID(ctx context.Context, id int) (objective.Objective, error)
}

// ObjectiveCompleter marks objectives as done.
type ObjectiveCompleter interface {
	MarkDone(ctx context.Context, id int) (*objective.Set, error)
}

// Repository is the storage a session reads its objective from and reports
// completion to.
type Repository interface {
	ObjectiveFinder
	ObjectiveCompleter
}

// Timeline is a stretch of wall clock time during which the session was
// running.
type Timeline struct {
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

// Record summarises a session once it has ended.
type Record struct {
	StartTime   time.Time          `json:"start_time"`
	EndTime     time.Time          `json:"end_time"`
	Exercise    objective.Exercise `json:"exercise"`
	Timeline    []Timeline         `json:"timeline"`
	ObjectiveID int                `json:"objective_id"`
	Laps        int                `json:"laps"`
	Completed   bool               `json:"completed"`
}

// RunTime returns the wall clock time spent running, excluding pauses.
func (r *Record) RunTime() time.Duration {
	var total time.Duration

	for _, v := range r.Timeline {
		total += v.EndTime.Sub(v.StartTime)
	}

	return total
}
