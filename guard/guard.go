// Package guard implements the navigation-time role check: a route declares
// the roles allowed to enter it, and the guard compares them against the
// current session before navigation proceeds.
//
// The guard only decides and redirects. It never panics, never mutates the
// session, and makes no authorization decisions beyond set intersection;
// the backend re-checks everything server-side.
package guard

import (
	"github.com/catalogkit/catalogkit/internal/logutil"
	"github.com/catalogkit/catalogkit/session"
	"github.com/sirupsen/logrus"
)

// Route is the data contract a navigation target declares: its path and the
// roles expected to enter it.
type Route struct {
	Path          string
	ExpectedRoles []string
}

// Navigator performs a navigation, the client-side analog of a router
// redirect. Implementations must not block.
type Navigator interface {
	NavigateTo(path string)
}

// NavigatorFunc adapts a function to the Navigator interface.
type NavigatorFunc func(path string)

// NavigateTo implements [Navigator].
func (f NavigatorFunc) NavigateTo(path string) { f(path) }

// NopNavigator discards navigations. Default for embedders without a
// routing concept.
var NopNavigator Navigator = NavigatorFunc(func(string) {})

// Guard gates route entry on the session's role set.
type Guard struct {
	state *session.State
	nav   Navigator
	home  string
	log   logrus.FieldLogger
}

// New returns a guard reading roles from state and redirecting denials to
// homePath via nav.
func New(state *session.State, nav Navigator, homePath string, log logrus.FieldLogger) *Guard {
	if nav == nil {
		nav = NopNavigator
	}
	if log == nil {
		log = logutil.Discard()
	}
	return &Guard{state: state, nav: nav, home: homePath, log: log}
}

// CanActivate reports whether the current session may enter route. Entry is
// allowed iff the session's role set intersects route.ExpectedRoles; any
// single match suffices. A route declaring no expected roles denies by
// default: this guard protects privileged routes only, open routes simply
// do not attach it.
//
// On denial the guard navigates to the home path and returns false; it has
// no other side effects.
func (g *Guard) CanActivate(route Route) bool {
	snap := g.state.Snapshot()
	if snap.HasAnyRole(route.ExpectedRoles...) {
		return true
	}

	g.log.WithFields(logrus.Fields{
		"path":     route.Path,
		"expected": route.ExpectedRoles,
	}).Debug("route denied, redirecting home")
	g.nav.NavigateTo(g.home)
	return false
}
