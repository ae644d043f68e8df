package cli

import (
	"sync"

	"github.com/dmitrijs2005/jwtconsole/internal/client/views"
)

// router is the views.Navigator of the REPL. Views may navigate from timer
// goroutines, so the route is mutex-guarded.
type router struct {
	mu    sync.Mutex
	route views.Route
}

func (r *router) Navigate(route views.Route) {
	r.mu.Lock()
	r.route = route
	r.mu.Unlock()
}

func (r *router) Route() views.Route {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.route
}
