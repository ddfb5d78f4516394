package app

import (
	"github.com/vip25/site/config"
	"github.com/vip25/site/session"
	"github.com/vip25/site/store"
)

// App bundles the dependencies the controllers receive: the store
// handle, the session manager and the configuration. Everything is
// injected at boot; there is no package-level state.
type App struct {
	store.Store
	*session.Manager
	config.Config
}
