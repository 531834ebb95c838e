package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/watersort-server/internal/repository"
	"github.com/vancomm/watersort-server/internal/watersort"
)

// fetchOwnedSession loads a session and decodes its board, enforcing
// ownership. Replies on failure and returns nil.
func (app application) fetchOwnedSession(
	w http.ResponseWriter, r *http.Request,
) (*repository.GameSession, *watersort.GameState) {
	sessionId, err := app.getSessionId(r)
	if err != nil {
		app.notFound(w)
		return nil, nil
	}

	session, err := app.repo.FetchGameSession(r.Context(), sessionId)
	if errors.Is(err, pgx.ErrNoRows) {
		app.notFound(w)
		return nil, nil
	}
	if err != nil {
		app.internalError(w, "could not fetch session from db", logrus.Fields{"error": err})
		return nil, nil
	}

	if !sessionOwnedBy(session, r) {
		app.unauthorized(w)
		return nil, nil
	}

	state, err := watersort.DecodeGameState(session.State)
	if err != nil {
		app.internalError(w, "db returned invalid game_session.state", logrus.Fields{"error": err})
		return nil, nil
	}

	return session, state
}

// storeState re-checks solvability of the mutated board and persists it.
// A solved board closes the session.
func (app application) storeState(
	ctx context.Context, session *repository.GameSession, state *watersort.GameState,
) (*repository.GameSession, error) {
	state.Dead = !state.Solved && !state.IsSolvable()

	buf, err := state.Bytes()
	if err != nil {
		return nil, err
	}

	elapsed := time.Since(session.StartedAt.Time)
	moveCount := len(state.Moves)
	score := state.Score(elapsed)

	params := repository.UpdateGameSessionParams{
		State:     &buf,
		Solved:    &state.Solved,
		Dead:      &state.Dead,
		MoveCount: &moveCount,
		Score:     &score,
	}
	if state.Solved && session.EndedAt.Time.IsZero() {
		endedAt := time.Now().UTC()
		params.EndedAt = &endedAt
	}

	return app.repo.UpdateGameSession(ctx, session.GameSessionId, params)
}
