package engine

import (
	"errors"
	"reflect"
	"testing"
)

func TestTrickWinnerTrumpRevealed(t *testing.T) {
	trump := SuitSpades
	plays := []Play{
		{Player: 0, Card: c("JH")},
		{Player: 1, Card: c("QS")},
		{Player: 2, Card: c("AH")},
	}
	if idx := trickWinner(plays, &trump, true); plays[idx].Player != 1 {
		t.Fatalf("expected trump to win trick, got %d", plays[idx].Player)
	}
}

func TestTrickWinnerTrumpHidden(t *testing.T) {
	trump := SuitSpades
	plays := []Play{
		{Player: 0, Card: c("AH")},
		{Player: 1, Card: c("JS")},
		{Player: 2, Card: c("9H")},
	}
	if idx := trickWinner(plays, &trump, false); plays[idx].Player != 2 {
		t.Fatalf("expected 9H to win with trump hidden, got %d", plays[idx].Player)
	}
}

func TestTrickWinnerByOrder(t *testing.T) {
	cases := []struct {
		name  string
		cards []string
		want  int
	}{
		{"jack beats nine", []string{"9C", "JC", "AC"}, 1},
		{"nine beats ace", []string{"AD", "9D", "10D"}, 1},
		{"ace beats ten", []string{"10H", "KH", "AH"}, 2},
		{"off-suit ignored", []string{"QC", "JH", "KC"}, 2},
		{"four player low ranks", []string{"7S", "8S", "QS", "JD"}, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			plays := make([]Play, 0, len(tc.cards))
			for i, id := range tc.cards {
				plays = append(plays, Play{Player: i, Card: c(id)})
			}
			if got := trickWinner(plays, nil, false); got != tc.want {
				t.Fatalf("winner: got %d want %d", got, tc.want)
			}
		})
	}
}

func TestTrumpWinsTrickAfterReveal(t *testing.T) {
	r := ThreePlayerPreset()
	js := c("JS")
	g := playState(t, r, [][]Card{
		cards("AH", "KC"),
		cards("10S", "QD"),
		cards("KH", "9C"),
	}, 0, &js, js, 0)

	mustApply(t, &g, 0, Action{Type: ActionPlayCard, Card: cardPtr(c("AH"))})
	mustApply(t, &g, 1, Action{Type: ActionRequestReveal})
	mustApply(t, &g, 1, Action{Type: ActionPlayCard, Card: cardPtr(c("10S"))})
	mustApply(t, &g, 2, Action{Type: ActionPlayCard, Card: cardPtr(c("KH"))})

	if g.Phase != PhaseTrickComplete {
		t.Fatalf("expected trick_complete, got %v", g.Phase)
	}
	if *g.Trick.Winner != 1 {
		t.Fatalf("expected spade to win, got %d", *g.Trick.Winner)
	}
	if g.Trick.Points != 2 {
		t.Fatalf("trick points: got %d", g.Trick.Points)
	}
}

func TestFollowSuitEnforced(t *testing.T) {
	r := ThreePlayerPreset()
	js := c("JS")
	g := playState(t, r, [][]Card{
		cards("AH", "KC"),
		cards("9H", "10S"),
		cards("KH", "9C"),
	}, 0, &js, js, 0)
	mustApply(t, &g, 0, Action{Type: ActionPlayCard, Card: cardPtr(c("AH"))})

	before := g.Clone()
	err := PlayCard(&g, 1, c("10S"))
	if !errors.Is(err, ErrIllegalPlay) {
		t.Fatalf("expected illegal play, got %v", err)
	}
	if !reflect.DeepEqual(before, g) {
		t.Fatalf("state changed after rejected play")
	}
	actions := LegalActions(g, 1)
	if len(actions) != 1 || *actions[0].Card != c("9H") {
		t.Fatalf("expected only 9H to be legal, got %v", actions)
	}
}

func TestOnlyTrumpMustBePlayed(t *testing.T) {
	r := ThreePlayerPreset()
	js := c("JS")
	g := playState(t, r, [][]Card{
		cards("AH", "KC"),
		cards("9S", "10S"),
		cards("KH", "9C"),
	}, 0, &js, js, 0)
	mustApply(t, &g, 0, Action{Type: ActionPlayCard, Card: cardPtr(c("AH"))})

	for _, a := range LegalActions(g, 1) {
		if a.Type == ActionPlayCard && a.Card.Suit != SuitSpades {
			t.Fatalf("non-trump play offered: %v", a)
		}
	}
}

func TestDeclarerCannotLeadHiddenTrump(t *testing.T) {
	r := ThreePlayerPreset()
	js := c("JS")
	g := playState(t, r, [][]Card{
		cards("QS", "KC"),
		cards("9H", "10S"),
		cards("KH", "9C"),
	}, 0, &js, js, 0)

	if err := PlayCard(&g, 0, c("QS")); !errors.Is(err, ErrIllegalPlay) {
		t.Fatalf("expected illegal lead, got %v", err)
	}
	if err := PlayCard(&g, 0, c("KC")); err != nil {
		t.Fatalf("non-trump lead rejected: %v", err)
	}
}

func TestDeclarerHoldingOnlyTrumpMustReveal(t *testing.T) {
	r := ThreePlayerPreset()
	js := c("JS")
	g := playState(t, r, [][]Card{
		cards("QS", "KS"),
		cards("9H", "10H"),
		cards("KH", "9C"),
	}, 0, &js, js, 0)

	actions := LegalActions(g, 0)
	if len(actions) != 1 || actions[0].Type != ActionRevealTrump {
		t.Fatalf("expected only reveal, got %v", actions)
	}
	if err := DeclarerRevealTrump(&g, 0); err != nil {
		t.Fatalf("reveal: %v", err)
	}
	if !g.Trump.Revealed || !containsCard(g.Players[0].Hand, js) {
		t.Fatalf("folded card not returned on reveal")
	}
	if err := PlayCard(&g, 0, c("QS")); err != nil {
		t.Fatalf("trump lead after reveal rejected: %v", err)
	}
}

func TestAskerMustTrump(t *testing.T) {
	r := ThreePlayerPreset()
	js := c("JS")
	g := playState(t, r, [][]Card{
		cards("AH", "KC"),
		cards("10S", "QD"),
		cards("KH", "9C"),
	}, 0, &js, js, 0)
	mustApply(t, &g, 0, Action{Type: ActionPlayCard, Card: cardPtr(c("AH"))})

	if err := RequestTrumpReveal(&g, 1); err != nil {
		t.Fatalf("request: %v", err)
	}
	if !g.Trump.Revealed || !g.Trump.FoldedReturned {
		t.Fatalf("expected trump revealed and folded card returned")
	}
	if g.Trick.RevealRequestedBy == nil || *g.Trick.RevealRequestedBy != 1 {
		t.Fatalf("trick not tagged with asker")
	}
	if err := PlayCard(&g, 1, c("QD")); !errors.Is(err, ErrIllegalPlay) {
		t.Fatalf("expected asker to be forced to trump, got %v", err)
	}
	if err := PlayCard(&g, 1, c("10S")); err != nil {
		t.Fatalf("trump play rejected: %v", err)
	}
}

func TestRequestRevealPreconditions(t *testing.T) {
	r := ThreePlayerPreset()
	js := c("JS")
	g := playState(t, r, [][]Card{
		cards("AH", "KC"),
		cards("9H", "QD"),
		cards("KD", "9C"),
	}, 0, &js, js, 1)

	if err := RequestTrumpReveal(&g, 1); !errors.Is(err, ErrRevealNotAllowed) {
		t.Fatalf("expected reveal refused before a lead, got %v", err)
	}
	mustApply(t, &g, 1, Action{Type: ActionPlayCard, Card: cardPtr(c("QD"))})
	if err := RequestTrumpReveal(&g, 1); !errors.Is(err, ErrWrongTurn) {
		t.Fatalf("expected wrong turn, got %v", err)
	}
	if err := RequestTrumpReveal(&g, 2); !errors.Is(err, ErrRevealNotAllowed) {
		t.Fatalf("expected refusal for a player who can follow, got %v", err)
	}
}

func TestPartnerCannotRequestReveal(t *testing.T) {
	r := FourPlayerPreset()
	js := c("JS")
	g := playState(t, r, [][]Card{
		cards("AH", "KC"),
		cards("9H", "QD"),
		cards("7S", "9C"),
		cards("KH", "8C"),
	}, 0, &js, js, 1)

	mustApply(t, &g, 1, Action{Type: ActionPlayCard, Card: cardPtr(c("QD"))})
	if err := RequestTrumpReveal(&g, 2); !errors.Is(err, ErrRevealNotAllowed) {
		t.Fatalf("expected declarer's partner to be refused, got %v", err)
	}
	mustApply(t, &g, 2, Action{Type: ActionPlayCard, Card: cardPtr(c("9C"))})
	if err := RequestTrumpReveal(&g, 3); err != nil {
		t.Fatalf("opponent request rejected: %v", err)
	}
}
