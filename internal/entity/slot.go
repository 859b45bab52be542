package entity

// SlotState is the occupancy of a single board position.
type SlotState int

const (
	Invalid SlotState = iota
	Empty
	Marble
)

func (that SlotState) String() string {
	switch that {
	case Marble:
		return "O"
	case Empty:
		return "_"
	default:
		return " "
	}
}
