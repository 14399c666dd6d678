package objective

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// wireObjective is the persisted shape of an objective.
type wireObjective struct {
	Days         []bool    `json:"days"               yaml:"days,flow"`
	Duration     int       `json:"duration"           yaml:"duration"`
	Exercise     Exercise  `json:"exercise"           yaml:"exercise"`
	Extra        wireExtra `json:"extra"              yaml:"extra,omitempty"`
	ID           int       `json:"id"                 yaml:"id"`
	Repetitions  int       `json:"repetitions"        yaml:"repetitions"`
	RestDuration int       `json:"restDuration"       yaml:"restDuration"`
	Rests        int       `json:"rests"              yaml:"rests"`
	WasDone      bool      `json:"wasDone"            yaml:"wasDone"`
	DoneOn       string    `json:"doneOn,omitempty"   yaml:"doneOn,omitempty"`
}

func (o Objective) toWire() wireObjective {
	return wireObjective{
		Days:         o.Days[:],
		Duration:     o.Duration,
		Exercise:     o.Exercise,
		Extra:        o.DetailOrDefault().extra(),
		ID:           o.ID,
		Repetitions:  o.Repetitions,
		RestDuration: o.RestDuration,
		Rests:        o.Rests,
		WasDone:      o.WasDone,
		DoneOn:       o.DoneOn,
	}
}

func (w wireObjective) toObjective() (Objective, error) {
	o := Objective{
		Detail:       w.Extra.detail(w.Exercise),
		Exercise:     w.Exercise,
		DoneOn:       w.DoneOn,
		ID:           w.ID,
		Duration:     w.Duration,
		Repetitions:  w.Repetitions,
		Rests:        w.Rests,
		RestDuration: w.RestDuration,
		WasDone:      w.WasDone,
	}

	// a missing schedule reads as never due
	if w.Days == nil {
		return o, nil
	}

	if len(w.Days) != len(o.Days) {
		return o, errInvalidDays.Fmt(len(w.Days))
	}

	copy(o.Days[:], w.Days)

	return o, nil
}

func (o Objective) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.toWire())
}

func (o *Objective) UnmarshalJSON(b []byte) error {
	var w wireObjective

	err := json.Unmarshal(b, &w)
	if err != nil {
		return err
	}

	*o, err = w.toObjective()

	return err
}

func (o Objective) MarshalYAML() (any, error) {
	return o.toWire(), nil
}

func (o *Objective) UnmarshalYAML(value *yaml.Node) error {
	var w wireObjective

	err := value.Decode(&w)
	if err != nil {
		return err
	}

	*o, err = w.toObjective()

	return err
}
