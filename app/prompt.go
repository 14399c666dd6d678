package app

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/personaplus/plus/internal/objective"
)

// objectiveForm holds the answers of the add form. Numbers are typed as text.
type objectiveForm struct {
	exercise     objective.Exercise
	duration     string
	reps         string
	rests        string
	restDuration string
	amount       string
	lifts        string
	barWeight    string
	liftWeight   string
	days         []objective.Weekday
	hands        int
	speed        int
}

func validateCount(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return errors.New("enter a whole number")
	}

	return nil
}

func validateWeight(s string) error {
	w, err := strconv.ParseFloat(s, 64)
	if err != nil || w < 0 {
		return errors.New("enter a weight in kilograms")
	}

	return nil
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func atof(s string) float64 {
	f, _ := strconv.ParseFloat(s, 64)
	return f
}

func (f *objectiveForm) build() objective.Objective {
	var days objective.Week
	for _, d := range f.days {
		days[d] = true
	}

	o := objective.Objective{
		Exercise:     f.exercise,
		Duration:     atoi(f.duration),
		Repetitions:  atoi(f.reps),
		Rests:        atoi(f.rests),
		RestDuration: atoi(f.restDuration),
		Days:         days,
	}

	switch f.exercise {
	case objective.PushUp:
		o.Detail = objective.PushUpDetail{Amount: atoi(f.amount), Hands: f.hands}
	case objective.Lifting:
		o.Detail = objective.LiftingDetail{
			BarWeight:  atof(f.barWeight),
			LiftWeight: atof(f.liftWeight),
			Hands:      f.hands,
			Lifts:      atoi(f.lifts),
		}
	case objective.Running:
		o.Detail = objective.RunningDetail{SpeedBracket: f.speed}
	default:
		o.Detail = objective.DefaultDetail(f.exercise)
	}

	return o
}

func exerciseOptions() []huh.Option[objective.Exercise] {
	opts := make([]huh.Option[objective.Exercise], len(objective.Exercises))
	for i, e := range objective.Exercises {
		opts[i] = huh.NewOption(string(e), e)
	}

	return opts
}

func dayOptions() []huh.Option[objective.Weekday] {
	var opts []huh.Option[objective.Weekday]
	for d := objective.Monday; d <= objective.Sunday; d++ {
		opts = append(opts, huh.NewOption(d.String(), d).Selected(true))
	}

	return opts
}

func speedOptions() []huh.Option[int] {
	opts := make([]huh.Option[int], len(objective.SpeedBrackets))
	for i, b := range objective.SpeedBrackets {
		opts[i] = huh.NewOption(b.Name+" ("+b.Range+")", i)
	}

	return opts
}

func (f *objectiveForm) hideUnless(e objective.Exercise) func() bool {
	return func() bool {
		return f.exercise != e
	}
}

// promptObjective asks for the details of a new objective.
func promptObjective() (objective.Objective, error) {
	f := &objectiveForm{
		exercise:     objective.Meditation,
		duration:     "10",
		reps:         "1",
		rests:        "0",
		restDuration: "0",
		amount:       "10",
		lifts:        "10",
		barWeight:    "0",
		liftWeight:   "0",
		hands:        2,
	}

	hands := []huh.Option[int]{
		huh.NewOption("Both hands", 2).Selected(true),
		huh.NewOption("One hand", 1),
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[objective.Exercise]().
				Title("What will you do?").
				Options(exerciseOptions()...).
				Value(&f.exercise),
			huh.NewMultiSelect[objective.Weekday]().
				Title("On which days?").
				Options(dayOptions()...).
				Value(&f.days),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Minutes per lap").
				Validate(validateCount).
				Value(&f.duration),
			huh.NewInput().
				Title("Laps").
				Validate(validateCount).
				Value(&f.reps),
			huh.NewInput().
				Title("Rests").
				Validate(validateCount).
				Value(&f.rests),
			huh.NewInput().
				Title("Minutes per rest").
				Validate(validateCount).
				Value(&f.restDuration),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Push ups per lap").
				Validate(validateCount).
				Value(&f.amount),
			huh.NewSelect[int]().
				Title("Hands").
				Options(hands...).
				Value(&f.hands),
		).WithHideFunc(f.hideUnless(objective.PushUp)),
		huh.NewGroup(
			huh.NewInput().
				Title("Bar weight (kg)").
				Validate(validateWeight).
				Value(&f.barWeight),
			huh.NewInput().
				Title("Weight per hand (kg)").
				Validate(validateWeight).
				Value(&f.liftWeight),
			huh.NewInput().
				Title("Lifts per lap").
				Validate(validateCount).
				Value(&f.lifts),
			huh.NewSelect[int]().
				Title("Hands").
				Options(hands...).
				Value(&f.hands),
		).WithHideFunc(f.hideUnless(objective.Lifting)),
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Speed").
				Options(speedOptions()...).
				Value(&f.speed),
		).WithHideFunc(f.hideUnless(objective.Running)),
	)

	err := form.Run()
	if err != nil {
		return objective.Objective{}, fmt.Errorf("form interaction failed: %w", err)
	}

	return f.build(), nil
}
