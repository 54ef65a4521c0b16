package form

import "fmt"

// Mode selects which field set, schema and endpoint the form uses.
type Mode int

const (
	ModeLogin Mode = iota
	ModeRegister
)

// Modes lists every mode, in toggle order.
var Modes = []Mode{ModeLogin, ModeRegister}

func (m Mode) String() string {
	switch m {
	case ModeLogin:
		return "login"
	case ModeRegister:
		return "register"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Other returns the mode the toggle switches to.
func (m Mode) Other() Mode {
	if m == ModeLogin {
		return ModeRegister
	}
	return ModeLogin
}

// Fields returns the field names of the mode in display order.
func (m Mode) Fields() []string {
	switch m {
	case ModeRegister:
		return []string{FieldFirstName, FieldLastName, FieldLocation, FieldOccupation, FieldPicture, FieldEmail, FieldPassword}
	default:
		return []string{FieldEmail, FieldPassword}
	}
}

// NewValues returns the initial, empty values of the mode.
func (m Mode) NewValues() Values {
	if m == ModeRegister {
		return &RegisterValues{}
	}
	return &LoginValues{}
}

// ParseMode parses "login" or "register".
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes {
		if m.String() == s {
			return m, nil
		}
	}
	return ModeLogin, fmt.Errorf("unknown mode %q (want login or register)", s)
}
