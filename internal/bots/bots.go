package bots

import (
	"math/rand"

	"twentyeight/internal/engine"
)

// Bot fills an empty seat. Bots only ever pick among engine.LegalActions.
type Bot interface {
	ChooseAction(state engine.GameState, player int) engine.Action
}

type RandomBot struct {
	RNG *rand.Rand
}

func NewRandom(seed int64) *RandomBot {
	return &RandomBot{RNG: rand.New(rand.NewSource(seed))}
}

// ChooseAction picks uniformly among the legal actions. It returns a pass
// when the seat has nothing to do.
func (b *RandomBot) ChooseAction(state engine.GameState, player int) engine.Action {
	legal := engine.LegalActions(state, player)
	if len(legal) == 0 {
		return engine.Action{Type: engine.ActionPass}
	}
	return legal[b.RNG.Intn(len(legal))]
}

// LowBot passes whenever it may, keeps the provisional trump when allowed and
// sheds its cheapest legal card.
type LowBot struct{}

func NewLow() LowBot {
	return LowBot{}
}

func (LowBot) ChooseAction(state engine.GameState, player int) engine.Action {
	legal := engine.LegalActions(state, player)
	if len(legal) == 0 {
		return engine.Action{Type: engine.ActionPass}
	}
	if state.Phase == engine.PhasePlaying {
		return lowestLegalPlay(legal)
	}
	return legal[0]
}

func lowestLegalPlay(legal []engine.Action) engine.Action {
	best := legal[0]
	bestScore := 1<<31 - 1
	for _, a := range legal {
		if a.Type != engine.ActionPlayCard || a.Card == nil {
			continue
		}
		score := engine.CardPoints(a.Card.Rank)*10 + engine.Order(a.Card.Rank)
		if score < bestScore {
			bestScore = score
			best = a
		}
	}
	return best
}
