// Package threadly wires the auth client together: config, API client, store, router, form
// and views.
package threadly

import (
	"context"
	"io"
	"os"

	"github.com/threadly/threadly/internal/log"
	"github.com/threadly/threadly/internal/threadly/api"
	"github.com/threadly/threadly/internal/threadly/config"
	"github.com/threadly/threadly/internal/threadly/errors"
	"github.com/threadly/threadly/internal/threadly/form"
	"github.com/threadly/threadly/internal/threadly/router"
	"github.com/threadly/threadly/internal/threadly/splash"
	"github.com/threadly/threadly/internal/threadly/store"
	"github.com/threadly/threadly/internal/threadly/view"
)

// LoginRoute is where the form lives.
const LoginRoute = "/login"

// Options configures New.
type Options struct {
	Mode form.Mode
	Out  io.Writer
	// Auth overrides the HTTP client built from the config.
	Auth form.Authenticator
	// Insecure disables TLS verification of the backend.
	Insecure bool
}

// Threadly is one running client session.
type Threadly struct {
	Config *config.Config
	Store  *store.Store
	Router *router.Router
	Form   *form.Form
	Out    io.Writer
}

// New builds a client from conf.
func New(conf *config.Config, opts Options) (*Threadly, error) {
	if conf == nil {
		conf = config.Default()
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	auth := opts.Auth
	if auth == nil {
		apiOpts := []api.Option{api.WithTimeout(conf.Timeout)}
		if opts.Insecure {
			apiOpts = append(apiOpts, api.WithInsecureTLS())
		}
		client, err := api.New(conf.Url, apiOpts...)
		if err != nil {
			return nil, err
		}
		auth = client
	}

	t := &Threadly{
		Config: conf,
		Store:  store.New(),
		Router: router.New(),
		Out:    out,
	}
	t.Router.Handle(conf.HomeRoute, view.Home(t.Store, out))
	t.Router.Handle(LoginRoute, func() error { return nil })

	t.Form = form.New(auth, t.Store, t.Router, form.Options{
		Mode:        opts.Mode,
		SplashDelay: conf.SplashDelay,
		HomeRoute:   conf.HomeRoute,
		OnSplash: func() {
			if err := (splash.Screen{}).Render(out); err != nil {
				log.Error("Failed to render splash: %v", err)
			}
		},
	})
	return t, nil
}

// Close cancels any pending navigation and ends the session. The token only lives in memory.
func (t *Threadly) Close() {
	t.Form.Close()
	if t.Store.State().LoggedIn() {
		log.Debug("Clearing session")
	}
	t.Store.Dispatch(store.SetLogout{})
}

// Login submits the login form with the given credentials and waits for the home view.
func (t *Threadly) Login(ctx context.Context, email, password string) error {
	if t.Form.Mode() != form.ModeLogin {
		if _, err := t.Form.Toggle(); err != nil {
			return err
		}
	}
	if err := t.fill(map[string]string{form.FieldEmail: email, form.FieldPassword: password}); err != nil {
		return err
	}

	next := t.Router.Next()
	if err := t.Form.Submit(ctx); err != nil {
		return err
	}
	_, err := t.Router.WaitOn(ctx, next)
	return err
}

// Register submits the registration form. On success the form is back in login mode.
func (t *Threadly) Register(ctx context.Context, values form.RegisterValues) error {
	if t.Form.Mode() != form.ModeRegister {
		if _, err := t.Form.Toggle(); err != nil {
			return err
		}
	}
	if err := t.fill(map[string]string{
		form.FieldFirstName:  values.FirstName,
		form.FieldLastName:   values.LastName,
		form.FieldEmail:      values.Email,
		form.FieldPassword:   values.Password,
		form.FieldLocation:   values.Location,
		form.FieldOccupation: values.Occupation,
	}); err != nil {
		return err
	}
	if err := t.Form.SetPicture(values.Picture); err != nil {
		return err
	}
	return t.Form.Submit(ctx)
}

// Interactive runs the terminal form. After a successful login it waits for the home view.
func (t *Threadly) Interactive(ctx context.Context, prompter view.Prompter) error {
	if err := t.Router.Navigate(LoginRoute); err != nil {
		return err
	}

	next := t.Router.Next()
	v := &view.Interactive{Form: t.Form, Prompter: prompter, Out: t.Out}
	loggedIn, err := v.Run(ctx)
	if err != nil || !loggedIn {
		return err
	}
	_, err = t.Router.WaitOn(ctx, next)
	return err
}

func (t *Threadly) fill(values map[string]string) error {
	for field, value := range values {
		if err := t.Form.SetField(field, value); err != nil {
			return errors.Wrapf(err, "set %s", field)
		}
	}
	return nil
}
