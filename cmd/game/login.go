package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/vancomm/watersort-server/internal/config"
)

func (app application) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		app.badRequest(w, err)
		return
	}

	username := r.FormValue("username")
	password := r.FormValue("password")
	if username == "" || password == "" {
		app.badRequest(w, errBadAuthBody)
		return
	}

	player, err := app.repo.FetchPlayer(r.Context(), username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			app.unauthorized(w)
		} else {
			app.internalError(w, "could not fetch player from db", logrus.Fields{"error": err})
		}
		return
	}

	err = bcrypt.CompareHashAndPassword(player.PasswordHash, []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			app.unauthorized(w)
		} else {
			w.WriteHeader(http.StatusUnauthorized)
			app.logger.WithError(err).Error("bcrypt compare error")
		}
		return
	}

	claims := config.NewPlayerClaims(player.PlayerId, player.Username)
	token, err := app.jwt.Sign(claims)
	if err != nil {
		app.internalError(w, "failed to sign player claims", logrus.Fields{"error": err})
		return
	}

	err = app.cookies.Refresh(w, token, time.Now().Add(app.jwt.TokenLifetime))
	if err != nil {
		app.internalError(w, "failed to set auth cookies", logrus.Fields{"error": err})
		return
	}

	app.replyWith(w, map[string]string{"message": "ok"})
}
