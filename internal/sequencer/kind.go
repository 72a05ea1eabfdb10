package sequencer

import "strings"

// EventKind is the type assigned to one accepted clock action.
type EventKind string

const (
	ClockIn     EventKind = "CLOCK_IN"
	LunchOut    EventKind = "LUNCH_OUT"
	LunchReturn EventKind = "LUNCH_RETURN"
	ClockOut    EventKind = "CLOCK_OUT"
)

// daily order of marks; index == number of marks already recorded that day
var kinds = [...]EventKind{ClockIn, LunchOut, LunchReturn, ClockOut}

// Kinds returns the daily sequence in order.
func Kinds() []EventKind {
	out := make([]EventKind, len(kinds))
	copy(out, kinds[:])
	return out
}

// Valid reports whether k is one of the four daily kinds.
func (k EventKind) Valid() bool {
	for _, v := range kinds {
		if v == k {
			return true
		}
	}
	return false
}

// Label is the Portuguese caption used on receipts and reports.
func (k EventKind) Label() string {
	switch k {
	case ClockIn:
		return "Entrada"
	case LunchOut:
		return "Saída Almoço"
	case LunchReturn:
		return "Retorno Almoço"
	case ClockOut:
		return "Saída"
	default:
		return strings.ToLower(string(k))
	}
}

// String returns the stored form, e.g. "CLOCK_IN".
func (k EventKind) String() string {
	return string(k)
}
