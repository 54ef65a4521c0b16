package form

import "testing"

func TestModeToggleCycle(t *testing.T) {
	if ModeLogin.Other() != ModeRegister || ModeRegister.Other() != ModeLogin {
		t.Error("Other() should alternate between login and register")
	}
}

func TestParseMode(t *testing.T) {
	for _, m := range Modes {
		got, err := ParseMode(m.String())
		if err != nil || got != m {
			t.Errorf("ParseMode(%q) = %v, %v", m.String(), got, err)
		}
	}
	if _, err := ParseMode("signup"); err == nil {
		t.Error("ParseMode(signup) should fail")
	}
}

func TestModeFieldsMatchValues(t *testing.T) {
	for _, m := range Modes {
		values := m.NewValues()
		if values.Mode() != m {
			t.Errorf("%v.NewValues().Mode() = %v", m, values.Mode())
		}
		for _, field := range m.Fields() {
			if _, ok := values.Get(field); !ok {
				t.Errorf("%v field %q missing from values", m, field)
			}
			if Label(field) == field {
				t.Errorf("field %q has no label", field)
			}
		}
	}
	if Mode(9).String() != "Mode(9)" {
		t.Errorf("unknown mode String() = %q", Mode(9).String())
	}
}
