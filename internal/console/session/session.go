// Package session decides which screen the console may show. The decision is
// a pure predicate over credential presence, re-evaluated from the store on
// every navigation; nothing here talks to the network.
package session

// Route names one console destination.
type Route string

const (
	RouteSignIn     Route = "signin"
	RouteDashboard  Route = "dashboard"
	RouteEmployees  Route = "employees"
	RouteAttendance Route = "attendance"
)

// KeySource yields the current stored credential.
type KeySource interface {
	Get() string
}

type Gate struct {
	keys KeySource
}

func NewGate(keys KeySource) *Gate {
	return &Gate{keys: keys}
}

// Authenticated reports whether a credential is currently stored. It never
// validates the credential against the server; a stale key only surfaces
// when the next API call is rejected.
func (g *Gate) Authenticated() bool {
	return g.keys.Get() != ""
}

// Resolve maps a requested destination to the one actually shown:
// protected destinations require a credential, the sign-in screen bounces
// signed-in users to the dashboard, and unknown destinations land on the
// dashboard or sign-in depending on credential presence.
func (g *Gate) Resolve(requested Route) Route {
	authenticated := g.Authenticated()

	switch requested {
	case RouteSignIn:
		if authenticated {
			return RouteDashboard
		}
		return RouteSignIn
	case RouteDashboard, RouteEmployees, RouteAttendance:
		if !authenticated {
			return RouteSignIn
		}
		return requested
	default:
		if authenticated {
			return RouteDashboard
		}
		return RouteSignIn
	}
}
