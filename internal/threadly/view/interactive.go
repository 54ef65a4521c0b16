package view

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/fatih/color"

	"github.com/threadly/threadly/internal/threadly/errors"
	"github.com/threadly/threadly/internal/threadly/form"
)

const (
	Banner = "Threadly: Stitching People Together, One Thread at a Time"

	actionFill = "Fill in the form"
	actionQuit = "Quit"
)

type modeText struct {
	title, subtitle string
	submit          string
	switchPrompt    string
	switchHint      string
	switchButton    string
}

// texts has an entry for every form.Mode.
var texts = map[form.Mode]modeText{
	form.ModeLogin: {
		title:        "Login to Your Account",
		subtitle:     "Login with your email and password",
		submit:       "LOGIN",
		switchPrompt: "New Here?",
		switchHint:   "Sign up and discover new opportunities!",
		switchButton: "Sign Up",
	},
	form.ModeRegister: {
		title:        "Create Your Account",
		subtitle:     "Join our community by filling out the form",
		submit:       "REGISTER",
		switchPrompt: "Already Have an Account?",
		switchHint:   "Login to continue!",
		switchButton: "Login",
	},
}

// Interactive drives a form.Form from a terminal.
type Interactive struct {
	Form     *form.Form
	Prompter Prompter
	Out      io.Writer
}

// Run shows the form until a login succeeds or the user quits. It reports whether the user
// logged in.
func (v *Interactive) Run(ctx context.Context) (bool, error) {
	for {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		v.Render()

		text := texts[v.Form.Mode()]
		switchAction := fmt.Sprintf("%s %s", text.switchPrompt, text.switchButton)
		options := []string{actionFill, text.submit, switchAction, actionQuit}

		choice, err := v.Prompter.Select("What next?", options, actionFill)
		if err != nil {
			return false, quitOnInterrupt(err)
		}

		switch choice {
		case actionFill:
			if err := v.fill(); err != nil {
				return false, quitOnInterrupt(err)
			}
		case text.submit:
			if v.submit(ctx) {
				return true, nil
			}
		case switchAction:
			if _, err := v.Form.Toggle(); err != nil {
				v.print(color.RedString("%v\n", err))
			}
		case actionQuit:
			return false, nil
		}
	}
}

func (v *Interactive) submit(ctx context.Context) bool {
	wasRegister := v.Form.Mode() == form.ModeRegister
	err := v.Form.Submit(ctx)

	switch {
	case err == nil && v.Form.SplashVisible():
		return true
	case err == nil && wasRegister:
		v.print(color.GreenString("Account created. Please log in.\n"))
	case errors.Is(err, errors.ErrValidation):
		v.print(color.RedString("Please fix the highlighted fields.\n"))
	case errors.Is(err, errors.ErrSubmitInProgress):
		v.print(color.YellowString("Still submitting, please wait.\n"))
	case err != nil:
		v.print(color.RedString("%s\n", v.Form.SubmitError()))
	}
	return false
}

func (v *Interactive) fill() error {
	for _, field := range v.Form.Mode().Fields() {
		current, _ := v.Form.Value(field)
		label := form.Label(field)

		var (
			answer string
			err    error
		)
		switch field {
		case form.FieldPassword:
			answer, err = v.Prompter.Password(label)
			if err == nil && answer == "" {
				answer = current
			}
		case form.FieldPicture:
			def := ""
			if rv, ok := v.Form.Values().(*form.RegisterValues); ok && rv.Picture != nil {
				def = rv.Picture.Path
			}
			answer, err = v.Prompter.Path("Add Picture Here", def)
		default:
			answer, err = v.Prompter.Input(label, current)
		}
		if err != nil {
			return err
		}

		if err := v.Form.SetField(field, strings.TrimSpace(answer)); err != nil {
			v.print(color.RedString("  %s: %v\n", label, err))
		}
		if err := v.Form.Blur(field); err != nil {
			return err
		}
		if msg := v.Form.FieldError(field); msg != "" {
			v.print(color.RedString("  %s: %s\n", label, msg))
		}
	}
	return nil
}

// Render prints the current state of the form.
func (v *Interactive) Render() {
	mode := v.Form.Mode()
	text := texts[mode]

	v.printf("\n%s\n\n", color.New(color.FgGreen).Sprint(Banner))
	v.printf("%s\n%s\n\n", color.New(color.Bold).Sprint(text.title), text.subtitle)

	for _, field := range mode.Fields() {
		value, _ := v.Form.Value(field)
		switch {
		case field == form.FieldPassword && value != "":
			value = strings.Repeat("*", len(value))
		case field == form.FieldPicture && value == "":
			value = "(no picture)"
		}
		line := fmt.Sprintf("  %-11s %s", form.Label(field)+":", value)
		if msg := v.Form.FieldError(field); msg != "" {
			line += "  " + color.RedString(msg)
		}
		v.printf("%s\n", line)
	}

	if msg := v.Form.SubmitError(); msg != "" {
		v.printf("\n%s\n", color.RedString(msg))
	}
	v.printf("\n%s %s\n\n", color.New(color.Bold).Sprint(text.switchPrompt), text.switchHint)
}

func (v *Interactive) print(s string) {
	_, _ = io.WriteString(v.Out, s)
}

func (v *Interactive) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(v.Out, format, args...)
}

func quitOnInterrupt(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return nil
	}
	return err
}
