package main

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/watersort-server/internal/watersort"
)

func (app application) handlePour(w http.ResponseWriter, r *http.Request) {
	dto, err := decodePour(r.URL.Query())
	if err != nil {
		app.badRequest(w, err)
		return
	}

	session, state := app.fetchOwnedSession(w, r)
	if session == nil {
		return
	}

	if !session.EndedAt.Time.IsZero() {
		app.badRequest(w, errors.New("game session has already ended"))
		return
	}

	result, err := state.AttemptPour(dto.From, dto.To)
	var invalid watersort.InvalidParametersError
	if errors.As(err, &invalid) {
		app.badRequest(w, err)
		return
	}
	if errors.Is(err, watersort.ErrIllegalPour) || errors.Is(err, watersort.ErrSourceEmpty) {
		// A rejected pour is not an error: the board is untouched, the
		// client just learns nothing moved.
		sessionDTO, err := newGameSessionDTO(*session)
		if err != nil {
			app.internalError(w, "failed to create game session dto", logrus.Fields{"error": err})
			return
		}
		sessionDTO.LastPour = result
		app.replyWith(w, sessionDTO)
		return
	}

	session, err = app.storeState(r.Context(), session, state)
	if err != nil {
		app.internalError(w, "unable to update session in db", logrus.Fields{"error": err})
		return
	}

	sessionDTO, err := newGameSessionDTO(*session)
	if err != nil {
		app.internalError(w, "failed to create game session dto", logrus.Fields{"error": err})
		return
	}
	sessionDTO.LastPour = result

	app.replyWith(w, sessionDTO)
}
