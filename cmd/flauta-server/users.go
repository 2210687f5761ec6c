package main

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/localshred/flauta/pkg/handlers"
)

type usersController struct {
	db     *sql.DB
	logger *slog.Logger
}

type user struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type userRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Index lists all users.
func (c *usersController) Index(w http.ResponseWriter, r *http.Request) {
	rows, err := c.db.QueryContext(r.Context(), "SELECT id, name, email FROM users ORDER BY name")
	if err != nil {
		handlers.RespondError(w, c.logger, http.StatusInternalServerError, err)
		return
	}
	defer rows.Close()

	users := []user{}
	for rows.Next() {
		var u user
		if err := rows.Scan(&u.ID, &u.Name, &u.Email); err != nil {
			handlers.RespondError(w, c.logger, http.StatusInternalServerError, err)
			return
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		handlers.RespondError(w, c.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, users)
}

// Show fetches one user by id.
func (c *usersController) Show(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var u user
	err := c.db.QueryRowContext(r.Context(),
		"SELECT id, name, email FROM users WHERE id = $1", id,
	).Scan(&u.ID, &u.Name, &u.Email)
	if errors.Is(err, sql.ErrNoRows) {
		handlers.RespondError(w, c.logger, http.StatusNotFound, fmt.Errorf("user %s not found", id))
		return
	}
	if err != nil {
		handlers.RespondError(w, c.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, u)
}

// Create inserts a new user.
func (c *usersController) Create(w http.ResponseWriter, r *http.Request) {
	var req userRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondError(w, c.logger, http.StatusBadRequest, err)
		return
	}

	u := user{ID: uuid.NewString(), Name: req.Name, Email: req.Email}
	_, err := c.db.ExecContext(r.Context(),
		"INSERT INTO users (id, name, email) VALUES ($1, $2, $3)",
		u.ID, u.Name, u.Email,
	)
	if err != nil {
		handlers.RespondError(w, c.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, u)
}

// Update modifies an existing user.
func (c *usersController) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req userRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondError(w, c.logger, http.StatusBadRequest, err)
		return
	}

	result, err := c.db.ExecContext(r.Context(),
		"UPDATE users SET name = $2, email = $3 WHERE id = $1",
		id, req.Name, req.Email,
	)
	if err != nil {
		handlers.RespondError(w, c.logger, http.StatusInternalServerError, err)
		return
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		handlers.RespondError(w, c.logger, http.StatusNotFound, fmt.Errorf("user %s not found", id))
		return
	}

	handlers.RespondJSON(w, http.StatusOK, user{ID: id, Name: req.Name, Email: req.Email})
}

// Destroy removes a user.
func (c *usersController) Destroy(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := c.db.ExecContext(r.Context(), "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		handlers.RespondError(w, c.logger, http.StatusInternalServerError, err)
		return
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		handlers.RespondError(w, c.logger, http.StatusNotFound, fmt.Errorf("user %s not found", id))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
