package game

import (
	"fmt"
	"strconv"

	"trivia-night/internal/domain"
)

const (
	botMissThreshold = 0.3
	botMinSeconds    = 2
	botTimeSpread    = 10
)

// BotAnswer is the simulated outcome of one bot for one question.
type BotAnswer struct {
	Correct   bool
	TimeTaken float64
	Points    int
}

// SimulateBot draws an answer for a bot. A draw above 0.3 is a correct answer
// (70% of the time), timed uniformly in [2, 12) seconds.
func SimulateBot(rnd RandomSource, basePoints int) BotAnswer {
	if rnd.Float64() <= botMissThreshold {
		return BotAnswer{}
	}
	elapsed := botMinSeconds + rnd.Float64()*botTimeSpread
	return BotAnswer{
		Correct:   true,
		TimeTaken: elapsed,
		Points:    Points(basePoints, elapsed),
	}
}

// NewBots instantiates simulated players from seed data in seed order.
func NewBots(seeds []domain.BotSeed) []domain.Player {
	bots := make([]domain.Player, 0, len(seeds))
	for i, seed := range seeds {
		bots = append(bots, domain.Player{
			ID:     fmt.Sprintf("sim-%d", i),
			Name:   seed.Name,
			Avatar: seed.Avatar,
		})
	}
	return bots
}

// NewRoomCode draws a cosmetic 4-digit code in [1000, 9999].
func NewRoomCode(rnd RandomSource) string {
	n := 1000 + int(rnd.Float64()*9000)
	if n > 9999 {
		n = 9999
	}
	return strconv.Itoa(n)
}
