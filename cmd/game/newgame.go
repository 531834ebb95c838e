package main

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/watersort-server/internal/middleware"
	"github.com/vancomm/watersort-server/internal/repository"
	"github.com/vancomm/watersort-server/internal/watersort"
)

func (app application) handleNewGame(w http.ResponseWriter, r *http.Request) {
	dto, err := decodeNewGame(r.URL.Query())
	if err != nil {
		app.badRequest(w, err)
		return
	}

	params := watersort.GameParams{
		TubeCount:  dto.TubeCount,
		TubeHeight: dto.TubeHeight,
	}

	game, err := watersort.NewGame(&params, app.rnd)
	var invalid watersort.InvalidParametersError
	if errors.As(err, &invalid) {
		app.badRequest(w, err)
		return
	}
	if err != nil {
		app.internalError(w, "unable to generate a new game", logrus.Fields{"error": err})
		return
	}

	sessionParams := repository.CreateGameSessionParams{}
	if claims, ok := middleware.PlayerClaims(r); ok {
		sessionParams.PlayerId = &claims.PlayerId
	}

	session, err := app.repo.CreateGameSession(r.Context(), game, sessionParams)
	if err != nil {
		app.internalError(w, "failed to create game session", logrus.Fields{"error": err})
		return
	}

	sessionDTO, err := newGameSessionDTO(*session)
	if err != nil {
		app.internalError(w, "failed to create game session dto", logrus.Fields{"error": err})
		return
	}

	app.replyWith(w, sessionDTO)
}
