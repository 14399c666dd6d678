// Package objective defines recurring objectives, the ordered set they are
// persisted in, and the rules that decide which of them are due today
package objective

import (
	"fmt"
	"strings"
	"time"

	"github.com/personaplus/plus/internal/timeutil"
)

// Exercise is the kind of activity an objective is about.
type Exercise string

const (
	Meditation Exercise = "Meditation"
	PushUp     Exercise = "Push Up"
	Lifting    Exercise = "Lifting"
	Running    Exercise = "Running"
	Walking    Exercise = "Walking"
)

// Exercises lists the known exercise kinds.
var Exercises = []Exercise{Meditation, PushUp, Lifting, Running, Walking}

// ParseExercise matches s against the known exercise kinds, ignoring case.
// Unknown kinds are returned as is.
func ParseExercise(s string) Exercise {
	for _, e := range Exercises {
		if strings.EqualFold(string(e), strings.TrimSpace(s)) {
			return e
		}
	}

	return Exercise(strings.TrimSpace(s))
}

// Activity describes what the user is doing during a session of e.
func (e Exercise) Activity() string {
	switch e {
	case Meditation:
		return "Meditating"
	case PushUp:
		return "Doing push ups"
	case Lifting:
		return "Lifting weights"
	case Running:
		return "Running"
	case Walking:
		return "Walking"
	default:
		return "Doing something"
	}
}

// Weekday is a day of the week counted from Monday.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

func (d Weekday) String() string {
	if d < Monday || d > Sunday {
		return fmt.Sprintf("Weekday(%d)", int(d))
	}

	return weekdayNames[d]
}

// WeekdayOf returns the Monday-first weekday of t.
func WeekdayOf(t time.Time) Weekday {
	return Weekday(timeutil.Weekday(t.Weekday()))
}

// Week holds the days an objective recurs on, indexed by Weekday.
type Week [7]bool

// On reports whether the week includes d.
func (w Week) On(d Weekday) bool {
	if d < Monday || d > Sunday {
		return false
	}

	return w[d]
}

func (w Week) String() string {
	var days []string

	for i, on := range w {
		if on {
			days = append(days, Weekday(i).String())
		}
	}

	if len(days) == 0 {
		return "never"
	}

	if len(days) == len(w) {
		return "every day"
	}

	return strings.Join(days, " ")
}

// Objective is a recurring task with a weekly schedule and exercise specific
// parameters.
type Objective struct {
	Detail       ExerciseDetail
	Exercise     Exercise
	DoneOn       string
	ID           int
	Duration     int // minutes
	Repetitions  int
	Rests        int
	RestDuration int // minutes
	Days         Week
	WasDone      bool
}

// Validate checks the invariants of a single objective. Failures match
// ErrInvalidObjective.
func (o Objective) Validate() error {
	if err := o.validate(); err != nil {
		return ErrInvalidObjective.Wrap(err)
	}

	return nil
}

func (o Objective) validate() error {
	if o.ID <= 0 {
		return errInvalidID.Fmt(o.ID)
	}

	if o.Duration <= 0 {
		return errInvalidDuration.Fmt(o.Duration)
	}

	if o.Repetitions < 0 {
		return errNegativeCount.Fmt("repetitions", o.Repetitions)
	}

	if o.Rests < 0 {
		return errNegativeCount.Fmt("rests", o.Rests)
	}

	if o.Rests > 0 && o.RestDuration <= 0 {
		return errMissingRestDuration.Fmt(o.RestDuration)
	}

	return nil
}

// LapLength is the length of a single lap of a session.
func (o Objective) LapLength() time.Duration {
	return time.Duration(o.Duration) * time.Minute
}

// DetailOrDefault returns the objective's detail, falling back to the empty
// variant for its exercise kind.
func (o Objective) DetailOrDefault() ExerciseDetail {
	if o.Detail != nil {
		return o.Detail
	}

	return DefaultDetail(o.Exercise)
}
