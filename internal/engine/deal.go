package engine

import "math/rand"

func BuildDeck(r Rules) []Card {
	deck := make([]Card, 0, len(allSuits)*len(r.DeckRanks))
	for _, s := range allSuits {
		for _, rank := range r.DeckRanks {
			deck = append(deck, Card{Suit: s, Rank: rank})
		}
	}
	return deck
}

func Shuffle(deck []Card, seed int64) []Card {
	shuffled := make([]Card, len(deck))
	copy(shuffled, deck)
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}

// roundSeed derives the shuffle seed for the current round so a game replays
// identically from its initial state.
func roundSeed(g *GameState) int64 {
	return g.Seed + int64(g.Round)
}

// startRound resets per-round state, shuffles a fresh deck and deals the
// first batch. Bidding opens with the seat after the dealer.
func startRound(g *GameState) {
	g.ResetRound()
	g.Deck = Shuffle(BuildDeck(g.Rules), roundSeed(g))
	dealBatch(g)
	startBidding1(g)
}

// dealBatch hands BatchSize cards to every player, starting after the dealer.
func dealBatch(g *GameState) {
	players := g.Rules.Players
	size := g.Rules.BatchSize
	if len(g.Deck) < players*size {
		panic("invalid deal: not enough cards left in deck")
	}
	idx := 0
	for i := 1; i <= players; i++ {
		p := (g.Dealer + i) % players
		g.Players[p].Hand = append(g.Players[p].Hand, g.Deck[idx:idx+size]...)
		idx += size
	}
	g.Deck = append([]Card(nil), g.Deck[idx:]...)
}

func nextSeat(g *GameState, seat int) int {
	return (seat + 1) % g.Rules.Players
}
