package engine

// The functions below are the operation-level API used by UIs. Each one is a
// thin wrapper over ApplyAction and shares its all-or-nothing semantics.

// InitializeGame creates a game for mode with default rules and the given
// target score. A target of zero keeps the preset's target.
func InitializeGame(names []string, mode Mode, target int, seed int64) (GameState, error) {
	r, err := PresetFor(mode)
	if err != nil {
		return GameState{}, err
	}
	if target > 0 {
		r.TargetScore = target
	}
	return NewGame(r, names, seed)
}

// DealInitialCards starts the next round: shuffle, first batch, round-1 bidding.
func DealInitialCards(g *GameState) error {
	return ApplyAction(g, -1, Action{Type: ActionDeal})
}

// ProcessBid places a bid of *amount, or passes when amount is nil.
func ProcessBid(g *GameState, player int, amount *int, honors bool) error {
	if amount == nil {
		return ApplyAction(g, player, Action{Type: ActionPass})
	}
	return ApplyAction(g, player, Action{Type: ActionBid, Bid: *amount, Honors: honors})
}

func SelectProvisionalTrump(g *GameState, player int, card Card) error {
	return ApplyAction(g, player, Action{Type: ActionFoldTrump, Card: &card})
}

// FinalizeTrump keeps the provisional trump or folds card in its place.
func FinalizeTrump(g *GameState, player int, keepProvisional bool, card *Card) error {
	if keepProvisional {
		return ApplyAction(g, player, Action{Type: ActionKeepTrump, Card: card})
	}
	return ApplyAction(g, player, Action{Type: ActionChangeTrump, Card: card})
}

func PlayCard(g *GameState, player int, card Card) error {
	return ApplyAction(g, player, Action{Type: ActionPlayCard, Card: &card})
}

// RequestTrumpReveal is used by an opponent of the declarer who cannot follow
// the lead suit. The asker must then trump this trick if able.
func RequestTrumpReveal(g *GameState, player int) error {
	return ApplyAction(g, player, Action{Type: ActionRequestReveal})
}

func DeclarerRevealTrump(g *GameState, player int) error {
	return ApplyAction(g, player, Action{Type: ActionRevealTrump})
}

// ConfirmTrick moves an awaiting trick into history.
func ConfirmTrick(g *GameState) error {
	return ApplyAction(g, -1, Action{Type: ActionConfirmTrick})
}
