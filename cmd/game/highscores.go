package main

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/watersort-server/internal/repository"
	"github.com/vancomm/watersort-server/internal/watersort"
)

func (app application) handleFetchHighscores(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := repository.HighscoreFilter{}

	if query.Has("seed") {
		gameParams, err := watersort.ParseSeed(query.Get("seed"))
		if err != nil {
			app.badRequest(w, err)
			return
		}
		filter.GameParams = gameParams
	}

	if query.Has("username") {
		username := query.Get("username")
		filter.Username = &username
	}

	highscores, err := app.repo.GetHighscores(r.Context(), filter)
	if err != nil {
		app.internalError(w, "failed to fetch highscores", logrus.Fields{
			"error":  err,
			"filter": filter,
		})
		return
	}

	app.replyWith(w, highscores)
}
