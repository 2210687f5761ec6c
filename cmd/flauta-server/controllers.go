package main

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/localshred/flauta/pkg/controllers"
	"github.com/localshred/flauta/pkg/handlers"
)

// controllerSet owns every controller backing the route plan.
type controllerSet struct {
	home   *homeController
	status *statusController
	users  *usersController
}

func newControllers(db *sql.DB, logger *slog.Logger) *controllerSet {
	return &controllerSet{
		home:   &homeController{},
		status: &statusController{db: db, started: time.Now()},
		users:  &usersController{db: db, logger: logger},
	}
}

// registry maps controller identifiers from the route plan to their
// modules.
func (s *controllerSet) registry() *controllers.Registry {
	registry := controllers.NewRegistry()

	registry.Register("home", controllers.Module{
		Handlers: controllers.Handlers{
			"index": s.home.Index,
		},
	})

	registry.Register("status", controllers.Module{
		Handlers: controllers.Handlers{
			"show": s.status.Show,
		},
	})

	registry.Register("api/v1/users", controllers.Module{
		Handlers: controllers.Handlers{
			"index":   s.users.Index,
			"show":    s.users.Show,
			"create":  s.users.Create,
			"update":  s.users.Update,
			"destroy": s.users.Destroy,
		},
	})

	return registry
}

type homeController struct{}

// Index identifies the service.
func (c *homeController) Index(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, map[string]string{
		"service": "flauta-server",
	})
}

type statusController struct {
	db      *sql.DB
	started time.Time
}

// Show reports uptime and database connectivity.
func (c *statusController) Show(w http.ResponseWriter, r *http.Request) {
	dbStatus := "ok"
	if c.db == nil {
		dbStatus = "unconfigured"
	} else if err := c.db.PingContext(r.Context()); err != nil {
		dbStatus = "unreachable"
	}

	handlers.RespondJSON(w, http.StatusOK, map[string]string{
		"uptime":   time.Since(c.started).Round(time.Second).String(),
		"database": dbStatus,
	})
}
