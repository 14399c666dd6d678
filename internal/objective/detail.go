package objective

import "fmt"

// ExerciseDetail holds the parameters that only make sense for one kind of
// exercise. The concrete type is selected by the objective's Exercise.
type ExerciseDetail interface {
	Kind() Exercise
	fmt.Stringer
	extra() wireExtra
}

// PushUpDetail is the detail of a Push Up objective.
type PushUpDetail struct {
	Amount int
	Hands  int
}

// LiftingDetail is the detail of a Lifting objective. Weights are in
// kilograms.
type LiftingDetail struct {
	BarWeight  float64
	LiftWeight float64
	Hands      int
	Lifts      int
}

// RunningDetail is the detail of a Running objective.
type RunningDetail struct {
	SpeedBracket int
}

// WalkingDetail is the detail of a Walking objective.
type WalkingDetail struct{}

// MeditationDetail is the detail of a Meditation objective.
type MeditationDetail struct{}

// OtherDetail is used for exercise kinds plus does not know about.
type OtherDetail struct {
	Exercise Exercise
}

func (PushUpDetail) Kind() Exercise     { return PushUp }
func (LiftingDetail) Kind() Exercise    { return Lifting }
func (RunningDetail) Kind() Exercise    { return Running }
func (WalkingDetail) Kind() Exercise    { return Walking }
func (MeditationDetail) Kind() Exercise { return Meditation }
func (d OtherDetail) Kind() Exercise    { return d.Exercise }

func (d PushUpDetail) String() string {
	hands := "both hands"
	if d.Hands == 1 {
		hands = "one hand"
	}

	return fmt.Sprintf("%d push ups, %s", d.Amount, hands)
}

// Total is the full weight lifted in a single lift.
func (d LiftingDetail) Total() float64 {
	return d.BarWeight + d.LiftWeight*float64(d.Hands)
}

func (d LiftingDetail) String() string {
	return fmt.Sprintf("%d lifts of %gkg", d.Lifts, d.Total())
}

func (d RunningDetail) String() string {
	b, ok := Bracket(d.SpeedBracket)
	if !ok {
		return "unknown speed"
	}

	return fmt.Sprintf("%s (%s)", b.Name, b.Range)
}

func (WalkingDetail) String() string    { return "" }
func (MeditationDetail) String() string { return "" }
func (OtherDetail) String() string      { return "" }

// SpeedBracket is a named running speed range.
type SpeedBracket struct {
	Name  string
	Range string
}

// SpeedBrackets is the fixed table RunningDetail.SpeedBracket indexes into.
var SpeedBrackets = []SpeedBracket{
	{"Brisk Walk", "1.6 - 3.2 km/h"},
	{"Light Jog", "3.2 - 4.0 km/h"},
	{"Moderate Run", "4.0 - 4.8 km/h"},
	{"Fast Run", "4.8 - 5.5 km/h"},
	{"Sprint", "5.5 - 6.4 km/h"},
	{"Fast Sprint", "6.4 - 8.0 km/h"},
	{"Running Fast", "8.0 - 9.6 km/h"},
	{"Very Fast Run", "9.6 - 11.3 km/h"},
	{"Sprinting", "11.3 - 12.9 km/h"},
	{"Fast Sprinting", "12.9 - 14.5 km/h"},
	{"Full Speed Sprinting", "14.5 - 16.1 km/h"},
	{"Maximum Speed", "more than 16.1 km/h"},
}

// Bracket looks up a speed bracket by index.
func Bracket(i int) (SpeedBracket, bool) {
	if i < 0 || i >= len(SpeedBrackets) {
		return SpeedBracket{}, false
	}

	return SpeedBrackets[i], true
}

// DefaultDetail returns the zero detail for an exercise kind.
func DefaultDetail(e Exercise) ExerciseDetail {
	switch e {
	case PushUp:
		return PushUpDetail{}
	case Lifting:
		return LiftingDetail{}
	case Running:
		return RunningDetail{}
	case Walking:
		return WalkingDetail{}
	case Meditation:
		return MeditationDetail{}
	default:
		return OtherDetail{Exercise: e}
	}
}

// wireExtra is the flat "extra" payload as it is persisted. Only the fields of
// the detail variant are written; the rest are dropped on read.
type wireExtra struct {
	Amount     *int     `json:"amount,omitempty"     yaml:"amount,omitempty"`
	BarWeight  *float64 `json:"barWeight,omitempty"  yaml:"barWeight,omitempty"`
	Hands      *int     `json:"hands,omitempty"      yaml:"hands,omitempty"`
	LiftWeight *float64 `json:"liftWeight,omitempty" yaml:"liftWeight,omitempty"`
	Lifts      *int     `json:"lifts,omitempty"      yaml:"lifts,omitempty"`
	Speed      *int     `json:"speed,omitempty"      yaml:"speed,omitempty"`
}

func (d PushUpDetail) extra() wireExtra {
	return wireExtra{Amount: &d.Amount, Hands: &d.Hands}
}

func (d LiftingDetail) extra() wireExtra {
	return wireExtra{
		BarWeight:  &d.BarWeight,
		LiftWeight: &d.LiftWeight,
		Hands:      &d.Hands,
		Lifts:      &d.Lifts,
	}
}

func (d RunningDetail) extra() wireExtra {
	return wireExtra{Speed: &d.SpeedBracket}
}

func (WalkingDetail) extra() wireExtra    { return wireExtra{} }
func (MeditationDetail) extra() wireExtra { return wireExtra{} }
func (OtherDetail) extra() wireExtra      { return wireExtra{} }

// detail selects the variant for e and copies over its fields.
func (w wireExtra) detail(e Exercise) ExerciseDetail {
	intOf := func(p *int) int {
		if p == nil {
			return 0
		}

		return *p
	}

	floatOf := func(p *float64) float64 {
		if p == nil {
			return 0
		}

		return *p
	}

	switch e {
	case PushUp:
		return PushUpDetail{Amount: intOf(w.Amount), Hands: intOf(w.Hands)}
	case Lifting:
		return LiftingDetail{
			BarWeight:  floatOf(w.BarWeight),
			LiftWeight: floatOf(w.LiftWeight),
			Hands:      intOf(w.Hands),
			Lifts:      intOf(w.Lifts),
		}
	case Running:
		return RunningDetail{SpeedBracket: intOf(w.Speed)}
	default:
		return DefaultDetail(e)
	}
}
