package engine

import "github.com/akyairhashvil/sprintline/internal/database"

// Engine bundles the lifecycle services over one store. The presentation
// layers take this; tests construct individual services with mocks.
type Engine struct {
	Lifecycle   *Lifecycle
	Memberships *Memberships
	Backlog     *Backlog
	Completion  *Completion
}

func New(store database.Store) *Engine {
	return &Engine{
		Lifecycle:   NewLifecycle(store),
		Memberships: NewMemberships(store, store),
		Backlog:     NewBacklog(store, store),
		Completion:  NewCompletion(store, store, store),
	}
}
