package server

import "twentyeight/internal/engine"

type PlayerView struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	Team      int      `json:"team"`
	Hand      []string `json:"hand,omitempty"`
	HandCount int      `json:"handCount"`
	Tricks    int      `json:"tricks"`
	Passed    bool     `json:"passed"`
}

type BidView struct {
	Player int  `json:"player"`
	Amount int  `json:"amount,omitempty"`
	Pass   bool `json:"pass,omitempty"`
	Honors bool `json:"honors,omitempty"`
	Round  int  `json:"round"`
}

type BiddingView struct {
	Round         int       `json:"round"`
	Turn          int       `json:"turn"`
	Bids          []BidView `json:"bids"`
	Contract      *BidView  `json:"contract,omitempty"`
	ContractRound int       `json:"contractRound,omitempty"`
}

// TrumpView shows the trump suit and folded card only to the seat that
// concealed it, until trump is revealed.
type TrumpView struct {
	ProvisionalBidder int     `json:"provisionalBidder"`
	Declarer          int     `json:"declarer"`
	Concealed         bool    `json:"concealed"`
	Revealed          bool    `json:"revealed"`
	Suit              *string `json:"suit,omitempty"`
	FoldedCard        *string `json:"foldedCard,omitempty"`
}

type PlayView struct {
	Player int    `json:"player"`
	Card   string `json:"card"`
}

type TrickView struct {
	Leader            int        `json:"leader"`
	Plays             []PlayView `json:"plays"`
	LeadSuit          *string    `json:"leadSuit,omitempty"`
	Winner            *int       `json:"winner,omitempty"`
	Points            int        `json:"points"`
	RevealRequestedBy *int       `json:"revealRequestedBy,omitempty"`
}

type RoundScoreView struct {
	Round          int   `json:"round"`
	Declarer       int   `json:"declarer"`
	Contract       int   `json:"contract"`
	ContractRound  int   `json:"contractRound"`
	Honors         bool  `json:"honors"`
	Made           bool  `json:"made"`
	DeclarerPoints int   `json:"declarerPoints"`
	OpponentPoints int   `json:"opponentPoints"`
	Awards         []int `json:"awards"`
}

type GameView struct {
	SessionID    string           `json:"sessionId"`
	GameID       string           `json:"gameId"`
	Mode         string           `json:"mode"`
	Viewer       int              `json:"viewer"`
	Phase        string           `json:"phase"`
	Round        int              `json:"round"`
	Dealer       int              `json:"dealer"`
	Turn         int              `json:"turn"`
	Players      []PlayerView     `json:"players"`
	Bidding      BiddingView      `json:"bidding"`
	Trump        TrumpView        `json:"trump"`
	Trick        TrickView        `json:"trick"`
	LastTrick    *TrickView       `json:"lastTrick,omitempty"`
	Scores       []RoundScoreView `json:"scores"`
	Totals       []int            `json:"totals"`
	TargetScore  int              `json:"targetScore"`
	Winners      []int            `json:"winners,omitempty"`
	LegalActions []ActionDTO      `json:"legalActions"`
}

// BuildGameView renders g as seen from viewer's seat. Other hands are
// reduced to counts.
func BuildGameView(g engine.GameState, viewer int, sessionID string) *GameView {
	players := make([]PlayerView, 0, len(g.Players))
	for i, p := range g.Players {
		view := PlayerView{
			ID:        p.ID,
			Name:      p.Name,
			Team:      p.Team,
			HandCount: len(p.Hand),
			Tricks:    len(p.WonTricks),
			Passed:    passed(g, p),
		}
		if i == viewer {
			view.Hand = cardIDs(p.Hand)
		}
		players = append(players, view)
	}

	bids := make([]BidView, 0, len(g.Bidding.Bids))
	for _, b := range g.Bidding.Bids {
		bids = append(bids, bidView(b))
	}
	bidding := BiddingView{
		Round:         g.Bidding.Round,
		Turn:          g.Bidding.Turn,
		Bids:          bids,
		ContractRound: g.Bidding.ContractRound,
	}
	if g.Bidding.Contract != nil {
		c := bidView(*g.Bidding.Contract)
		bidding.Contract = &c
	}

	var last *TrickView
	if n := len(g.CompletedTricks); n > 0 {
		tv := trickView(g.CompletedTricks[n-1])
		last = &tv
	}

	scores := make([]RoundScoreView, 0, len(g.Scores))
	for _, rs := range g.Scores {
		scores = append(scores, RoundScoreView{
			Round:          rs.Round,
			Declarer:       rs.Declarer,
			Contract:       rs.Contract,
			ContractRound:  rs.ContractRound,
			Honors:         rs.Honors,
			Made:           rs.Made,
			DeclarerPoints: rs.DeclarerPoints,
			OpponentPoints: rs.OpponentPoints,
			Awards:         append([]int(nil), rs.Awards...),
		})
	}

	legal := []ActionDTO{}
	for _, a := range engine.LegalActions(g, viewer) {
		legal = append(legal, ActionFromEngine(a))
	}

	view := &GameView{
		SessionID:    sessionID,
		GameID:       g.ID,
		Mode:         g.Rules.Mode.String(),
		Viewer:       viewer,
		Phase:        g.Phase.String(),
		Round:        g.Round,
		Dealer:       g.Dealer,
		Turn:         g.Turn,
		Players:      players,
		Bidding:      bidding,
		Trump:        trumpView(g, viewer),
		Trick:        trickView(g.Trick),
		LastTrick:    last,
		Scores:       scores,
		Totals:       append([]int(nil), g.Totals...),
		TargetScore:  g.Rules.TargetScore,
		LegalActions: legal,
	}
	if g.Phase == engine.PhaseGameOver {
		view.Winners = engine.Winners(g)
	}
	return view
}

func passed(g engine.GameState, p engine.PlayerState) bool {
	if g.Bidding.Round == 2 {
		return p.PassedRound2
	}
	return p.PassedRound1
}

func bidView(b engine.Bid) BidView {
	return BidView{Player: b.Player, Amount: b.Amount, Pass: b.Pass, Honors: b.Honors, Round: b.Round}
}

func trickView(t engine.Trick) TrickView {
	plays := make([]PlayView, 0, len(t.Plays))
	for _, p := range t.Plays {
		plays = append(plays, PlayView{Player: p.Player, Card: p.Card.ID()})
	}
	return TrickView{
		Leader:            t.Leader,
		Plays:             plays,
		LeadSuit:          suitString(t.LeadSuit),
		Winner:            t.Winner,
		Points:            t.Points,
		RevealRequestedBy: t.RevealRequestedBy,
	}
}

// concealer is the seat that owns the folded card: the provisional bidder
// until trump is finalized, the declarer afterwards.
func concealer(g engine.GameState) int {
	if g.Trump.FinalCard != nil {
		return g.Trump.Declarer
	}
	return g.Trump.ProvisionalBidder
}

func trumpView(g engine.GameState, viewer int) TrumpView {
	t := g.Trump
	v := TrumpView{
		ProvisionalBidder: t.ProvisionalBidder,
		Declarer:          t.Declarer,
		Concealed:         t.Folded != nil,
		Revealed:          t.Revealed,
	}
	suit := t.ProvisionalSuit
	if t.FinalSuit != nil {
		suit = t.FinalSuit
	}
	switch {
	case t.Revealed:
		v.Suit = suitString(suit)
	case viewer >= 0 && viewer == concealer(g):
		v.Suit = suitString(suit)
		if t.Folded != nil {
			id := t.Folded.ID()
			v.FoldedCard = &id
		}
	}
	return v
}
