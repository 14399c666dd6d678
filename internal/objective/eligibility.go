package objective

// Status is the state of an objective on a given day.
type Status int

const (
	// NotToday means the objective does not recur on the day.
	NotToday Status = iota
	// Pending means the objective is due and not done yet.
	Pending
	// Done means the objective is due and already done.
	Done
)

func (s Status) String() string {
	switch s {
	case Pending:
		return "pending"
	case Done:
		return "done"
	default:
		return "not today"
	}
}

// IsDueToday reports whether o recurs on d.
func IsDueToday(o Objective, d Weekday) bool {
	return o.Days.On(d)
}

// IsPending reports whether o is due on d and not done yet.
func IsPending(o Objective, d Weekday) bool {
	return IsDueToday(o, d) && !o.WasDone
}

// StatusOf classifies o for d.
func StatusOf(o Objective, d Weekday) Status {
	switch {
	case !IsDueToday(o, d):
		return NotToday
	case o.WasDone:
		return Done
	default:
		return Pending
	}
}

// PendingToday returns the pending objectives of the set in set order.
func PendingToday(s *Set, d Weekday) []Objective {
	var pending []Objective

	for _, o := range s.All() {
		if IsPending(o, d) {
			pending = append(pending, o)
		}
	}

	return pending
}

// AllResolvedToday reports whether every objective of the set is either not
// due on d or already done. It holds for an empty set.
func AllResolvedToday(s *Set, d Weekday) bool {
	for _, o := range s.All() {
		if IsDueToday(o, d) && !o.WasDone {
			return false
		}
	}

	return true
}
