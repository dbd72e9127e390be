package bowling

import (
	"log/slog"

	"github.com/google/uuid"
)

// Game is a single-player game of bowling. Its ID tags every log line the
// player emits so that interleaved games can be told apart.
type Game struct {
	id     uuid.UUID
	player *Player
}

func NewGame(playerName string, options ...Option) *Game {
	id := uuid.New()
	player := NewPlayer(playerName, options...)
	player.logger = player.logger.With(slog.String("game_id", id.String()))
	return &Game{id: id, player: player}
}

func (self *Game) ID() uuid.UUID   { return self.id }
func (self *Game) Player() *Player { return self.player }
func (self *Game) Score() int      { return self.player.CalculateScore() }
