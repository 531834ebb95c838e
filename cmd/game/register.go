package main

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/vancomm/watersort-server/internal/config"
	"github.com/vancomm/watersort-server/internal/repository"
)

var (
	errBadAuthBody     = fmt.Errorf("request body must contain url-encoded username and password")
	errPasswordTooLong = fmt.Errorf("password too long")
	errUsernameTaken   = fmt.Errorf("username taken")
)

func (app application) handleRegister(w http.ResponseWriter, r *http.Request) {
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

	passwordBytes := []byte(password)
	if len(passwordBytes) > 72 {
		app.badRequest(w, errPasswordTooLong)
		return
	}

	hash, err := bcrypt.GenerateFromPassword(passwordBytes, bcrypt.DefaultCost)
	if err != nil {
		app.internalError(w, "unable to hash password", logrus.Fields{"error": err})
		return
	}

	player, err := app.repo.CreatePlayer(r.Context(), repository.CreatePlayerParams{
		Username:     username,
		PasswordHash: hash,
	})
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) &&
		pgerrcode.IsIntegrityConstraintViolation(pgErr.Code) {
		w.WriteHeader(http.StatusConflict)
		app.replyWith(w, map[string]string{"error": errUsernameTaken.Error()})
		return
	}
	if err != nil {
		app.internalError(w, "unable to insert player", logrus.Fields{"error": err})
		return
	}

	token, err := app.jwt.Sign(
		config.NewPlayerClaims(player.PlayerId, player.Username),
	)
	if err != nil {
		app.internalError(w, "unable to create a jwt token", logrus.Fields{"error": err})
		return
	}

	err = app.cookies.Refresh(w, token, time.Now().Add(app.jwt.TokenLifetime))
	if err != nil {
		app.internalError(w, "failed to set auth cookies", logrus.Fields{"error": err})
	}
}
