// Package router maps route paths to views and tracks the current route.
package router

import (
	"context"
	"sync"

	"github.com/threadly/threadly/internal/log"
	"github.com/threadly/threadly/internal/threadly/errors"
)

// View renders one screen of the application.
type View func() error

// Router is a minimal in-process router. It is safe for concurrent use.
type Router struct {
	mu        sync.Mutex
	routes    map[string]View
	current   string
	history   []string
	navigated chan struct{}
}

// New creates a router with no routes.
func New() *Router {
	return &Router{
		routes:    make(map[string]View),
		navigated: make(chan struct{}),
	}
}

// Handle registers view under route, replacing any previous view.
func (r *Router) Handle(route string, view View) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.routes[route] = view
}

// Navigate makes route current and renders its view.
func (r *Router) Navigate(route string) error {
	r.mu.Lock()
	view, ok := r.routes[route]
	if !ok {
		r.mu.Unlock()
		return errors.Wrapf(errors.ErrRouteNotFound, "%s", route)
	}
	r.current = route
	r.history = append(r.history, route)
	r.mu.Unlock()

	log.Debug("Navigating to %s", route)
	err := view()

	r.mu.Lock()
	close(r.navigated)
	r.navigated = make(chan struct{})
	r.mu.Unlock()
	return err
}

// Current returns the route of the last navigation, or "" before the first one.
func (r *Router) Current() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// History returns every route navigated to, oldest first.
func (r *Router) History() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.history...)
}

// Next returns a channel that is closed once the next navigation has rendered.
func (r *Router) Next() <-chan struct{} {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.navigated
}

// Wait blocks until the next navigation has rendered and returns its route.
func (r *Router) Wait(ctx context.Context) (string, error) {
	return r.WaitOn(ctx, r.Next())
}

// WaitOn blocks until next, obtained from Next, is closed.
func (r *Router) WaitOn(ctx context.Context, next <-chan struct{}) (string, error) {
	select {
	case <-next:
		return r.Current(), nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}
