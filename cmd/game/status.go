package main

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/watersort-server/internal/middleware"
)

type playerInfo struct {
	PlayerId int64  `json:"player_id"`
	Username string `json:"username"`
}

type authStatus struct {
	LoggedIn bool        `json:"logged_in"`
	Player   *playerInfo `json:"player,omitempty"`
}

func (app application) handleAuthStatus(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.PlayerClaims(r)
	if !ok {
		app.cookies.Clear(w)
		app.replyWith(w, authStatus{LoggedIn: false})
		return
	}

	token, err := app.jwt.Sign(claims)
	if err != nil {
		app.internalError(w, "unable to tokenize checked claims", logrus.Fields{"error": err})
		return
	}
	err = app.cookies.Refresh(w, token, time.Now().Add(app.jwt.TokenLifetime))
	if err != nil {
		app.internalError(w, "failed to refresh auth cookies", logrus.Fields{"error": err})
		return
	}

	app.replyWith(w, authStatus{
		LoggedIn: true,
		Player:   &playerInfo{claims.PlayerId, claims.Username},
	})
}
