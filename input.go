package sketch

// Button identifies a pointer button.
type Button uint8

// Pointer buttons.
const (
	ButtonLeft Button = iota
	ButtonMiddle
	ButtonRight
	ButtonOther
)

// ButtonState is the direction of a button transition.
type ButtonState uint8

// Button states.
const (
	Released ButtonState = iota
	Pressed
)

// Modifiers is the set of keyboard modifiers held during an event.
type Modifiers uint8

// Modifier keys.
const (
	ModShift Modifiers = 1 << iota
	ModControl
	ModAlt
	ModSuper
)

// Has reports whether every modifier in m2 is held. An empty set is never
// held.
func (m Modifiers) Has(m2 Modifiers) bool {
	return m2 != 0 && m&m2 == m2
}
