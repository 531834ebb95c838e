package main

import (
	"net/http"

	"github.com/sirupsen/logrus"
)

func (app application) handleUndo(w http.ResponseWriter, r *http.Request) {
	session, state := app.fetchOwnedSession(w, r)
	if session == nil {
		return
	}

	if !state.Undo() {
		// Empty ledger: no-op, reply with the unchanged session.
		sessionDTO, err := newGameSessionDTO(*session)
		if err != nil {
			app.internalError(w, "failed to create game session dto", logrus.Fields{"error": err})
			return
		}
		app.replyWith(w, sessionDTO)
		return
	}

	session, err := app.storeState(r.Context(), session, state)
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
