package main

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/watersort-server/internal/repository"
)

func (app application) handleForfeit(w http.ResponseWriter, r *http.Request) {
	session, _ := app.fetchOwnedSession(w, r)
	if session == nil {
		return
	}

	dead := true
	params := repository.UpdateGameSessionParams{Dead: &dead}
	if session.EndedAt.Time.IsZero() {
		endedAt := time.Now().UTC()
		params.EndedAt = &endedAt
	}

	session, err := app.repo.UpdateGameSession(r.Context(), session.GameSessionId, params)
	if err != nil {
		app.internalError(w, "unable to update session in db", logrus.Fields{"error": err})
		return
	}

	sessionDTO, err := newGameSessionDTO(*session)
	if err != nil {
		app.internalError(w, "failed to create game session dto", logrus.Fields{"error": err})
		return
	}

	app.replyWith(w, sessionDTO)
}
