package view

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/fatih/color"

	"github.com/threadly/threadly/internal/threadly/api"
	"github.com/threadly/threadly/internal/threadly/form"
	"github.com/threadly/threadly/internal/threadly/router"
	"github.com/threadly/threadly/internal/threadly/store"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

// scriptedPrompter answers prompts from a fixed script.
type scriptedPrompter struct {
	t       *testing.T
	answers []string
	asked   []string
}

func (p *scriptedPrompter) next(message string) (string, error) {
	p.asked = append(p.asked, message)
	if len(p.answers) == 0 {
		return "", io.EOF
	}
	answer := p.answers[0]
	p.answers = p.answers[1:]
	if answer == "^C" {
		return "", terminal.InterruptErr
	}
	return answer, nil
}

func (p *scriptedPrompter) Input(message, _ string) (string, error) { return p.next(message) }
func (p *scriptedPrompter) Path(message, _ string) (string, error)  { return p.next(message) }
func (p *scriptedPrompter) Password(message string) (string, error) { return p.next(message) }

func (p *scriptedPrompter) Select(message string, options []string, _ string) (string, error) {
	answer, err := p.next(message)
	if err != nil {
		return "", err
	}
	for _, o := range options {
		if o == answer {
			return answer, nil
		}
	}
	p.t.Fatalf("answer %q is not one of %v", answer, options)
	return "", nil
}

type stubAuth struct {
	loginErr    error
	registerErr error
	logins      int
	registers   int
}

func (a *stubAuth) Login(_ context.Context, creds api.LoginRequest) (*api.LoginResponse, error) {
	a.logins++
	if a.loginErr != nil {
		return nil, a.loginErr
	}
	user := store.NewUser([]byte(fmt.Sprintf(`{"firstName":"Ada","email":%q}`, creds.Email)))
	return &api.LoginResponse{User: user, Token: "t"}, nil
}

func (a *stubAuth) Register(context.Context, api.RegisterRequest) (*api.RegisterResponse, error) {
	a.registers++
	return &api.RegisterResponse{}, a.registerErr
}

type nopNav struct{}

func (nopNav) Navigate(string) error { return nil }

func newInteractive(t *testing.T, auth form.Authenticator, mode form.Mode, answers ...string) (*Interactive, *store.Store, *bytes.Buffer) {
	t.Helper()
	st := store.New()
	f := form.New(auth, st, nopNav{}, form.Options{Mode: mode, SplashDelay: time.Hour})
	t.Cleanup(f.Close)
	var out bytes.Buffer
	return &Interactive{Form: f, Prompter: &scriptedPrompter{t: t, answers: answers}, Out: &out}, st, &out
}

func TestInteractive_LoginSuccess(t *testing.T) {
	auth := &stubAuth{}
	v, st, out := newInteractive(t, auth, form.ModeLogin,
		actionFill, "a@b.com", "x",
		"LOGIN",
	)

	loggedIn, err := v.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if !loggedIn {
		t.Fatal("Run() should report a successful login")
	}
	if st.State().Token != "t" {
		t.Errorf("store token = %q, want t", st.State().Token)
	}
	if !strings.Contains(out.String(), "Login to Your Account") {
		t.Errorf("output missing login title:\n%s", out.String())
	}
}

func TestInteractive_InvalidEmailShownInline(t *testing.T) {
	auth := &stubAuth{}
	v, _, out := newInteractive(t, auth, form.ModeLogin,
		actionFill, "not-an-email", "x",
		"LOGIN",
		actionQuit,
	)

	loggedIn, err := v.Run(context.Background())
	if err != nil || loggedIn {
		t.Fatalf("Run() = %v, %v; want false, nil", loggedIn, err)
	}
	if auth.logins != 0 {
		t.Errorf("expected no login call, got %d", auth.logins)
	}
	if !strings.Contains(out.String(), "Email: invalid email") {
		t.Errorf("output missing inline error:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "Please fix the highlighted fields.") {
		t.Errorf("output missing validation notice:\n%s", out.String())
	}
}

func TestInteractive_LoginFailureShowsMessage(t *testing.T) {
	auth := &stubAuth{loginErr: &api.HTTPError{StatusCode: 400, Message: "Invalid credentials."}}
	v, _, out := newInteractive(t, auth, form.ModeLogin,
		actionFill, "a@b.com", "wrong",
		"LOGIN",
		actionQuit,
	)

	if loggedIn, err := v.Run(context.Background()); err != nil || loggedIn {
		t.Fatalf("Run() = %v, %v; want false, nil", loggedIn, err)
	}
	if strings.Count(out.String(), "Invalid credentials.") < 2 {
		t.Errorf("failure should be printed and rendered:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "a@b.com") {
		t.Errorf("entered email should be kept after failure:\n%s", out.String())
	}
}

func TestInteractive_RegisterThenLogin(t *testing.T) {
	picture := filepath.Join(t.TempDir(), "ada.png")
	//nolint:gosec // G306: Test file permissions are acceptable
	if err := os.WriteFile(picture, []byte("\x89PNG\r\n\x1a\n"), 0644); err != nil {
		t.Fatalf("write picture: %v", err)
	}

	auth := &stubAuth{}
	v, _, out := newInteractive(t, auth, form.ModeLogin,
		"New Here? Sign Up",
		actionFill, "Ada", "Lovelace", "London", "Mathematician", picture, "ada@example.com", "secret",
		"REGISTER",
		actionFill, "ada@example.com", "secret",
		"LOGIN",
	)

	loggedIn, err := v.Run(context.Background())
	if err != nil || !loggedIn {
		t.Fatalf("Run() = %v, %v; want true, nil", loggedIn, err)
	}
	if auth.registers != 1 || auth.logins != 1 {
		t.Errorf("calls = %d registers, %d logins; want 1 each", auth.registers, auth.logins)
	}
	for _, want := range []string{"Create Your Account", "Account created. Please log in.", "Already Have an Account?"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestInteractive_MissingPictureFile(t *testing.T) {
	auth := &stubAuth{}
	v, _, out := newInteractive(t, auth, form.ModeRegister,
		actionFill, "Ada", "Lovelace", "London", "Mathematician", "/does/not/exist.png", "ada@example.com", "secret",
		"REGISTER",
		actionQuit,
	)

	if _, err := v.Run(context.Background()); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if auth.registers != 0 {
		t.Errorf("expected no register call, got %d", auth.registers)
	}
	if !strings.Contains(out.String(), "Picture: required") {
		t.Errorf("output missing picture error:\n%s", out.String())
	}
}

func TestInteractive_InterruptQuits(t *testing.T) {
	v, _, _ := newInteractive(t, &stubAuth{}, form.ModeLogin, "^C")

	loggedIn, err := v.Run(context.Background())
	if err != nil || loggedIn {
		t.Errorf("Run() = %v, %v; want false, nil", loggedIn, err)
	}
}

func TestInteractive_PromptError(t *testing.T) {
	v, _, _ := newInteractive(t, &stubAuth{}, form.ModeLogin)

	if _, err := v.Run(context.Background()); err != io.EOF {
		t.Errorf("Run() error = %v, want io.EOF", err)
	}
}

func TestInteractive_ContextCanceled(t *testing.T) {
	v, _, _ := newInteractive(t, &stubAuth{}, form.ModeLogin, actionQuit)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := v.Run(ctx); err != context.Canceled {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
}

func TestHome(t *testing.T) {
	st := store.New()
	var out bytes.Buffer
	view := Home(st, &out)

	if err := view(); err != nil {
		t.Fatalf("view() failed: %v", err)
	}
	if !strings.Contains(out.String(), "not logged in") {
		t.Errorf("logged-out home = %q", out.String())
	}

	out.Reset()
	st.Dispatch(store.SetLogin{
		User:  store.NewUser([]byte(`{"firstName":"Ada","lastName":"Lovelace","email":"ada@example.com","location":"London","friends":["b"]}`)),
		Token: "t",
	})
	if err := view(); err != nil {
		t.Fatalf("view() failed: %v", err)
	}
	for _, want := range []string{"Welcome to Threadly, Ada Lovelace!", "ada@example.com", "London", "1 friends"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("home output missing %q:\n%s", want, out.String())
		}
	}
}

func TestHome_WithRouter(t *testing.T) {
	st := store.New()
	st.Dispatch(store.SetLogin{User: store.NewUser([]byte(`{"id":1}`)), Token: "t"})
	var out bytes.Buffer

	r := router.New()
	r.Handle("/home", Home(st, &out))
	if err := r.Navigate("/home"); err != nil {
		t.Fatalf("Navigate() failed: %v", err)
	}
	if !strings.Contains(out.String(), "Welcome to Threadly, friend!") {
		t.Errorf("home output = %q", out.String())
	}
}
