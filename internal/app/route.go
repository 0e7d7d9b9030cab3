package app

import (
	"github.com/abhisek/balancer/internal/assessment"
	"github.com/abhisek/balancer/internal/screen"
	"github.com/abhisek/balancer/internal/screens/intro"
	"github.com/abhisek/balancer/internal/screens/pending"
	"github.com/abhisek/balancer/internal/screens/results"
	"github.com/abhisek/balancer/internal/screens/scenario"
)

// newRoute returns a factory for the screen matching the session's
// current position. Screens call it after moving the session.
func newRoute(opts Options) func() screen.Screen {
	var route func() screen.Screen
	route = func() screen.Screen {
		st := opts.Session.MustCurrent()
		if st.Completed {
			return results.New(opts.Session, route, opts.ExportPath)
		}

		pos := assessment.Describe(st, opts.Session.Catalog())
		switch {
		case pos.Intro:
			return intro.New(opts.Session, route)
		case pos.Scenario != nil:
			return scenario.New(opts.Session, route)
		default:
			return pending.New(opts.Session, route)
		}
	}
	return route
}
