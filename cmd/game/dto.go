package main

import (
	"strconv"
	"time"

	"github.com/gorilla/schema"

	"github.com/vancomm/watersort-server/internal/repository"
	"github.com/vancomm/watersort-server/internal/watersort"
)

type newGameDTO struct {
	TubeCount  int `schema:"tube_count,required"`
	TubeHeight int `schema:"tube_height,required"`
}

func decodeNewGame(src map[string][]string) (newGameDTO, error) {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	var dto newGameDTO
	err := dec.Decode(&dto, src)
	return dto, err
}

type pourDTO struct {
	From int `schema:"from,required"`
	To   int `schema:"to,required"`
}

func decodePour(src map[string][]string) (pourDTO, error) {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	var dto pourDTO
	err := dec.Decode(&dto, src)
	return dto, err
}

type gameSessionDTO struct {
	GameSessionId   string                 `json:"game_session_id"`
	Tubes           []watersort.Tube       `json:"tubes"`
	TubeCount       int                    `json:"tube_count"`
	TubeHeight      int                    `json:"tube_height"`
	Solved          bool                   `json:"solved"`
	Dead            bool                   `json:"dead"`
	MoveCount       int                    `json:"move_count"`
	OptimalEstimate int                    `json:"optimal_estimate"`
	Score           int                    `json:"score"`
	StartedAt       int64                  `json:"started_at"`
	EndedAt         *int64                 `json:"ended_at,omitempty"`
	LastPour        *watersort.PourResult  `json:"last_pour,omitempty"`
}

func newGameSessionDTO(s repository.GameSession) (*gameSessionDTO, error) {
	state, err := watersort.DecodeGameState(s.State)
	if err != nil {
		return nil, err
	}

	var (
		endedAt *int64
		elapsed time.Duration
	)
	if !s.EndedAt.Time.IsZero() {
		e := s.EndedAt.Time.UnixMilli()
		endedAt = &e
		elapsed = s.EndedAt.Time.Sub(s.StartedAt.Time)
	} else {
		elapsed = time.Since(s.StartedAt.Time)
	}

	dto := &gameSessionDTO{
		GameSessionId:   strconv.FormatInt(s.GameSessionId, 10),
		Tubes:           state.Tubes,
		TubeCount:       s.TubeCount,
		TubeHeight:      s.TubeHeight,
		Solved:          s.Solved,
		Dead:            s.Dead,
		MoveCount:       len(state.Moves),
		OptimalEstimate: state.OptimalEstimate,
		Score:           state.Score(elapsed),
		StartedAt:       s.StartedAt.Time.UnixMilli(),
		EndedAt:         endedAt,
	}
	return dto, nil
}
