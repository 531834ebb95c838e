package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/watersort-server/internal/repository"
	"github.com/vancomm/watersort-server/internal/watersort"
)

type wsCommand string

const (
	wsNoop    wsCommand = "g"
	wsPour    wsCommand = "p"
	wsUndo    wsCommand = "u"
	wsForfeit wsCommand = "r" // =)
)

type gameExecutor struct {
	*application
	*watersort.GameState
	forfeited bool
}

func newGameExecutor(app *application, state *watersort.GameState) *gameExecutor {
	return &gameExecutor{application: app, GameState: state}
}

func (game *gameExecutor) pourTubes(args []string) error {
	from, to, err := parseFromTo(args)
	if err != nil {
		return err
	}
	_, err = game.AttemptPour(from, to)
	var invalid watersort.InvalidParametersError
	if errors.As(err, &invalid) {
		return err
	}
	// rejected pours leave the board untouched, the loop carries on
	return nil
}

func (game *gameExecutor) execute(query string) error {
	tokens := strings.Split(query, " ")
	cmd, args := wsCommand(tokens[0]), tokens[1:]
	switch cmd {
	case wsNoop:
		return nil
	case wsPour:
		return game.pourTubes(args)
	case wsUndo:
		game.Undo()
		return nil
	case wsForfeit:
		game.forfeited = true
		return nil
	default:
		return fmt.Errorf("unknown command")
	}
}

func (game *gameExecutor) wsRunGameLoop(
	ctx context.Context, conn *websocket.Conn, session *repository.GameSession,
) error {
	for {
		mt, buf, err := conn.ReadMessage()
		if err != nil {
			return err
		}
		if mt != websocket.TextMessage {
			return nil
		}

		message := strings.TrimSpace(string(buf))
		for _, line := range strings.Split(message, "\n") {
			if err := game.execute(strings.TrimSpace(line)); err != nil {
				return err
			}
			if game.Solved || game.forfeited {
				break
			}
		}

		if game.forfeited {
			dead := true
			params := repository.UpdateGameSessionParams{Dead: &dead}
			if session.EndedAt.Time.IsZero() {
				endedAt := time.Now().UTC()
				params.EndedAt = &endedAt
			}
			session, err = game.repo.UpdateGameSession(ctx, session.GameSessionId, params)
		} else {
			session, err = game.storeState(ctx, session, game.GameState)
		}
		if err != nil {
			return fmt.Errorf("unable to update session in db: %w", err)
		}

		sessionDTO, err := newGameSessionDTO(*session)
		if err != nil {
			return fmt.Errorf("unable to create game session dto: %w", err)
		}
		if err := conn.WriteJSON(sessionDTO); err != nil {
			return fmt.Errorf("unable to write json: %w", err)
		}

		if game.forfeited {
			return nil
		}
	}
}

func (app application) wsConnect(w http.ResponseWriter, r *http.Request) {
	session, state := app.fetchOwnedSession(w, r)
	if session == nil {
		return
	}

	conn, err := app.ws.Upgrader.Upgrade(w, r, nil) // headers sent here
	if err != nil {
		app.logger.WithError(err).Error("unable to upgrade")
		return
	}
	defer conn.Close()

	app.logger.Debug("established WS connection")

	game := newGameExecutor(&app, state)
	if err := game.wsRunGameLoop(r.Context(), conn, session); err != nil {
		if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
			return
		}
		app.logger.WithFields(logrus.Fields{"error": err}).Warn("error in ws loop")
	}
}

func parseFromTo(args []string) (from int, to int, err error) {
	if len(args) != 2 {
		err = fmt.Errorf("invalid args")
		return
	}
	if from, err = strconv.Atoi(args[0]); err != nil {
		err = fmt.Errorf("first argument must be an int")
		return
	}
	if to, err = strconv.Atoi(args[1]); err != nil {
		err = fmt.Errorf("second argument must be an int")
		return
	}
	return
}
