// Package form implements the login/registration form controller: mode toggle, schema
// validation, submission and the post-login transition to the home view.
package form

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/threadly/threadly/internal/log"
	"github.com/threadly/threadly/internal/threadly/api"
	"github.com/threadly/threadly/internal/threadly/errors"
	"github.com/threadly/threadly/internal/threadly/schedule"
	"github.com/threadly/threadly/internal/threadly/store"
)

const (
	DefaultSplashDelay = 2500 * time.Millisecond
	DefaultHomeRoute   = "/home"
)

// Authenticator is the backend used by Submit. *api.Client satisfies it.
type Authenticator interface {
	Login(ctx context.Context, creds api.LoginRequest) (*api.LoginResponse, error)
	Register(ctx context.Context, form api.RegisterRequest) (*api.RegisterResponse, error)
}

// Navigator moves the application to another view.
type Navigator interface {
	Navigate(route string) error
}

// Options configures a Form. Zero values fall back to the defaults.
type Options struct {
	Mode        Mode
	SplashDelay time.Duration
	HomeRoute   string
	// OnSplash runs once, right after a successful login makes the splash visible.
	OnSplash func()
}

// Form is the state machine behind the login/registration view. It is safe for concurrent use.
type Form struct {
	auth  Authenticator
	store store.Dispatcher
	nav   Navigator
	sched *schedule.Scheduler

	delay    time.Duration
	home     string
	onSplash func()

	mu            sync.Mutex
	mode          Mode
	values        Values
	errs          FieldErrors
	touched       map[string]bool
	submitting    bool
	splashVisible bool
	submitErr     string
	navTask       *schedule.Task
}

// New creates a form in opts.Mode (login by default).
func New(auth Authenticator, st store.Dispatcher, nav Navigator, opts Options) *Form {
	f := &Form{
		auth:     auth,
		store:    st,
		nav:      nav,
		sched:    schedule.New(),
		delay:    opts.SplashDelay,
		home:     opts.HomeRoute,
		onSplash: opts.OnSplash,
	}
	if f.delay <= 0 {
		f.delay = DefaultSplashDelay
	}
	if f.home == "" {
		f.home = DefaultHomeRoute
	}
	f.reset(opts.Mode)
	return f
}

// reset installs the initial values of mode and clears validation state. Caller holds f.mu
// or has exclusive access.
func (f *Form) reset(mode Mode) {
	f.mode = mode
	f.values = mode.NewValues()
	f.errs = nil
	f.touched = make(map[string]bool)
	f.submitErr = ""
}

// Mode returns the current mode.
func (f *Form) Mode() Mode {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.mode
}

// Values returns a copy of the active values.
func (f *Form) Values() Values {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values.clone()
}

// Value returns the current value of field.
func (f *Form) Value(field string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.values.Get(field)
	if !ok {
		return "", errors.Wrapf(errors.ErrUnknownField, "%s in %s form", field, f.mode)
	}
	return v, nil
}

// Toggle switches between login and register, discarding entered values and validation state.
func (f *Form) Toggle() (Mode, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.submitting {
		return f.mode, errors.ErrSubmitInProgress
	}
	f.reset(f.mode.Other())
	log.Debug("Form switched to %s", f.mode)
	return f.mode, nil
}

// SetField changes a field of the active values and re-validates. For the picture field the
// value is a local file path; an empty path clears the picture.
func (f *Form) SetField(field, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.values.set(field, value); err != nil {
		return err
	}
	f.errs = Validate(f.values)
	return nil
}

// SetPicture attaches an already-opened picture reference. Only valid in register mode.
func (f *Form) SetPicture(p *Picture) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	rv, ok := f.values.(*RegisterValues)
	if !ok {
		return errors.Wrapf(errors.ErrUnknownField, "%s in %s form", FieldPicture, f.mode)
	}
	if p != nil {
		c := *p
		p = &c
	}
	rv.Picture = p
	f.errs = Validate(f.values)
	return nil
}

// Blur marks field as touched and re-validates, so its error becomes visible.
func (f *Form) Blur(field string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.values.Get(field); !ok {
		return errors.Wrapf(errors.ErrUnknownField, "%s in %s form", field, f.mode)
	}
	f.touched[field] = true
	f.errs = Validate(f.values)
	return nil
}

// FieldError returns the message shown next to field, or "" if it is valid or untouched.
func (f *Form) FieldError(field string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.touched[field] {
		return ""
	}
	return f.errs[field]
}

// Errors returns the visible errors of touched fields.
func (f *Form) Errors() FieldErrors {
	f.mu.Lock()
	defer f.mu.Unlock()
	visible := make(FieldErrors)
	for field, msg := range f.errs {
		if f.touched[field] {
			visible[field] = msg
		}
	}
	return visible
}

// Submitting reports whether a submission is in flight. Views disable the submit control
// while it is true.
func (f *Form) Submitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitting
}

// SplashVisible reports whether a login succeeded and the splash screen should be shown.
func (f *Form) SplashVisible() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.splashVisible
}

// SubmitError returns the user-visible message of the last failed submission.
func (f *Form) SubmitError() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitErr
}

// Submit validates the active values and, if they pass, sends them to the backend.
// Values are reset only after the backend confirms success.
func (f *Form) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return errors.ErrSubmitInProgress
	}
	for _, field := range f.mode.Fields() {
		f.touched[field] = true
	}
	f.errs = Validate(f.values)
	if len(f.errs) > 0 {
		verr := &ValidationError{Mode: f.mode, Fields: f.errs.clone()}
		f.mu.Unlock()
		return verr
	}
	f.submitting = true
	f.submitErr = ""
	values := f.values.clone()
	f.mu.Unlock()

	var err error
	switch v := values.(type) {
	case *LoginValues:
		err = f.login(ctx, v)
	case *RegisterValues:
		err = f.register(ctx, v)
	default:
		err = fmt.Errorf("unsupported values %T", values)
	}

	if err != nil {
		f.mu.Lock()
		f.submitting = false
		f.submitErr = failureMessage(err)
		f.mu.Unlock()
		return err
	}
	return nil
}

func (f *Form) login(ctx context.Context, v *LoginValues) error {
	resp, err := f.auth.Login(ctx, v.Request())
	if err != nil {
		return errors.Wrap(err, "login")
	}

	f.store.Dispatch(store.SetLogin{User: resp.User, Token: resp.Token})

	f.mu.Lock()
	f.reset(ModeLogin)
	f.submitting = false
	f.splashVisible = true
	f.navTask.Cancel()
	f.navTask = nil
	onSplash := f.onSplash
	f.mu.Unlock()

	// The splash is fully rendered before the home navigation can be armed.
	if onSplash != nil {
		onSplash()
	}

	log.Debug("Login succeeded, navigating to %s in %v", f.home, f.delay)
	task := f.sched.After(f.delay, f.navigateHome)
	f.mu.Lock()
	f.navTask = task
	f.mu.Unlock()
	return nil
}

func (f *Form) register(ctx context.Context, v *RegisterValues) error {
	if _, err := f.auth.Register(ctx, v.Request()); err != nil {
		return errors.Wrap(err, "register")
	}

	f.mu.Lock()
	f.reset(ModeLogin)
	f.submitting = false
	f.mu.Unlock()

	log.Debug("Registration succeeded, form switched to login")
	return nil
}

func (f *Form) navigateHome() {
	if err := f.nav.Navigate(f.home); err != nil {
		log.Error("Failed to navigate to %s: %v", f.home, err)
	}
}

// NavigationPending reports whether the post-login navigation is still armed.
func (f *Form) NavigationPending() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.navTask != nil && !f.navTask.Done()
}

// Close tears the form down. A pending navigation is cancelled and will not fire.
func (f *Form) Close() {
	f.sched.Stop()
}

// failureMessage converts a submission error into the text shown to the user.
func failureMessage(err error) string {
	var httpErr *api.HTTPError
	switch {
	case errors.As(err, &httpErr) && httpErr.Message != "":
		return httpErr.Message
	case errors.As(err, &httpErr):
		return fmt.Sprintf("Request failed with status %d.", httpErr.StatusCode)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "The request was cancelled."
	case errors.Is(err, errors.ErrTransport):
		return "Unable to reach the server. Please try again."
	case errors.Is(err, errors.ErrFileNotFound):
		return "The selected picture could not be read."
	default:
		return "Something went wrong. Please try again."
	}
}
