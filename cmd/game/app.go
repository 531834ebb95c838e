package main

import (
	"encoding/json"
	"math/rand/v2"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/watersort-server/internal/config"
	"github.com/vancomm/watersort-server/internal/middleware"
	"github.com/vancomm/watersort-server/internal/repository"
)

type application struct {
	logger  *logrus.Logger
	repo    *repository.Queries
	cookies *config.Cookies
	jwt     *config.JWT
	ws      *config.WebSocket
	rnd     *rand.Rand
}

func (app application) ServeMux() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /game", app.handleNewGame)
	mux.HandleFunc("GET /game/{id}", app.handleFetchGame)
	mux.HandleFunc("POST /game/{id}/pour", app.handlePour)
	mux.HandleFunc("POST /game/{id}/undo", app.handleUndo)
	mux.HandleFunc("POST /game/{id}/forfeit", app.handleForfeit)
	mux.HandleFunc("GET /game/{id}/connect", app.wsConnect)
	mux.HandleFunc("GET /highscores", app.handleFetchHighscores)

	mux.HandleFunc("POST /register", app.handleRegister)
	mux.HandleFunc("POST /login", app.handleLogin)
	mux.HandleFunc("POST /logout", app.handleLogout)
	mux.HandleFunc("GET /status", app.handleAuthStatus)

	return mux
}

func (app application) getSessionId(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

func (app application) badRequest(w http.ResponseWriter, err error) {
	w.WriteHeader(http.StatusBadRequest)
	if err != nil {
		app.replyWith(w, map[string]string{"error": err.Error()})
	}
}

func (app application) unauthorized(w http.ResponseWriter) {
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte("you are not allowed to execute this operation"))
}

func (app application) notFound(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte("not found"))
}

func (app application) internalError(w http.ResponseWriter, msg string, fields logrus.Fields) {
	w.WriteHeader(http.StatusInternalServerError)
	w.Write([]byte("internal error"))
	app.logger.WithFields(fields).Error(msg)
}

func (app application) replyWith(w http.ResponseWriter, v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		app.internalError(w, "failed to marshal json", logrus.Fields{"error": err})
		return
	}
	w.Header().Add("Content-Type", "application/json")
	if _, err = w.Write(payload); err != nil {
		app.logger.WithFields(logrus.Fields{
			"data":  v,
			"error": err,
		}).Error("failed to send data")
	}
}

// sessionOwnedBy checks that an authenticated player only touches their own
// sessions. Anonymous sessions are open to anyone holding the id.
func sessionOwnedBy(session *repository.GameSession, r *http.Request) bool {
	if session.PlayerId == nil {
		return true
	}
	claims, ok := middleware.PlayerClaims(r)
	return ok && claims.PlayerId == *session.PlayerId
}
