package form

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/threadly/threadly/internal/threadly/api"
	"github.com/threadly/threadly/internal/threadly/store"
)

// fakeAuth records calls and answers with canned results.
type fakeAuth struct {
	mu            sync.Mutex
	loginCalls    []api.LoginRequest
	registerCalls []api.RegisterRequest

	loginResp   *api.LoginResponse
	loginErr    error
	registerErr error

	// block, when non-nil, holds every call until it is closed.
	block chan struct{}
}

func (a *fakeAuth) Login(ctx context.Context, creds api.LoginRequest) (*api.LoginResponse, error) {
	a.mu.Lock()
	a.loginCalls = append(a.loginCalls, creds)
	block := a.block
	a.mu.Unlock()
	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if a.loginErr != nil {
		return nil, a.loginErr
	}
	return a.loginResp, nil
}

func (a *fakeAuth) Register(ctx context.Context, form api.RegisterRequest) (*api.RegisterResponse, error) {
	a.mu.Lock()
	a.registerCalls = append(a.registerCalls, form)
	block := a.block
	a.mu.Unlock()
	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if a.registerErr != nil {
		return nil, a.registerErr
	}
	return &api.RegisterResponse{}, nil
}

func (a *fakeAuth) calls() (int, int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.loginCalls), len(a.registerCalls)
}

// fakeNav records navigations with their time.
type fakeNav struct {
	routes chan string
	at     chan time.Time
}

func newFakeNav() *fakeNav {
	return &fakeNav{routes: make(chan string, 4), at: make(chan time.Time, 4)}
}

func (n *fakeNav) Navigate(route string) error {
	n.at <- time.Now()
	n.routes <- route
	return nil
}

func newTestForm(t *testing.T, auth *fakeAuth, opts Options) (*Form, *store.Store, *fakeNav) {
	t.Helper()
	st := store.New()
	nav := newFakeNav()
	f := New(auth, st, nav, opts)
	t.Cleanup(f.Close)
	return f, st, nav
}

func writePicture(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	//nolint:gosec // G306: Test file permissions are acceptable
	if err := os.WriteFile(path, []byte("\x89PNG\r\n\x1a\n"), 0644); err != nil {
		t.Fatalf("write picture: %v", err)
	}
	return path
}

func fill(t *testing.T, f *Form, values map[string]string) {
	t.Helper()
	for field, value := range values {
		if err := f.SetField(field, value); err != nil {
			t.Fatalf("SetField(%s): %v", field, err)
		}
	}
}
