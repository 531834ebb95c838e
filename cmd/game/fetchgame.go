package main

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5"
	"github.com/sirupsen/logrus"
)

func (app application) handleFetchGame(w http.ResponseWriter, r *http.Request) {
	sessionId, err := app.getSessionId(r)
	if err != nil {
		app.notFound(w)
		return
	}

	session, err := app.repo.FetchGameSession(r.Context(), sessionId)
	if errors.Is(err, pgx.ErrNoRows) {
		app.notFound(w)
		return
	}
	if err != nil {
		app.internalError(w, "unable to fetch session from db", logrus.Fields{"error": err})
		return
	}

	if !sessionOwnedBy(session, r) {
		app.unauthorized(w)
		return
	}

	sessionDTO, err := newGameSessionDTO(*session)
	if err != nil {
		app.internalError(w, "db returned invalid game_session.state", logrus.Fields{"error": err})
		return
	}

	app.replyWith(w, sessionDTO)
}
