package engine

import "fmt"

type Suit int

type Rank int

const (
	SuitHearts Suit = iota
	SuitDiamonds
	SuitClubs
	SuitSpades
)

// Ranks are declared weakest first so that Order is the declaration index.
const (
	Rank7 Rank = iota
	Rank8
	RankQ
	RankK
	Rank10
	RankA
	Rank9
	RankJ
)

var allSuits = []Suit{SuitHearts, SuitDiamonds, SuitClubs, SuitSpades}

func (s Suit) String() string {
	switch s {
	case SuitHearts:
		return "H"
	case SuitDiamonds:
		return "D"
	case SuitClubs:
		return "C"
	case SuitSpades:
		return "S"
	default:
		return "?"
	}
}

func (r Rank) String() string {
	switch r {
	case Rank7:
		return "7"
	case Rank8:
		return "8"
	case RankQ:
		return "Q"
	case RankK:
		return "K"
	case Rank10:
		return "10"
	case RankA:
		return "A"
	case Rank9:
		return "9"
	case RankJ:
		return "J"
	default:
		return "?"
	}
}

type Card struct {
	Suit Suit
	Rank Rank
}

func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Rank.String(), c.Suit.String())
}

// ID is the stable external identifier of a card, e.g. "JS" or "10H".
func (c Card) ID() string {
	return c.String()
}

type Mode int

const (
	ModeThreePlayer Mode = 3
	ModeFourPlayer  Mode = 4
)

func (m Mode) String() string {
	switch m {
	case ModeThreePlayer:
		return "3p"
	case ModeFourPlayer:
		return "4p"
	default:
		return "?"
	}
}

type Phase int

const (
	PhaseSetup Phase = iota
	PhaseBidding1
	PhaseBidding1Complete
	PhaseBidding2
	PhaseBidding2Complete
	PhasePlaying
	PhaseTrickComplete
	PhaseRoundComplete
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseSetup:
		return "setup"
	case PhaseBidding1:
		return "bidding1_start"
	case PhaseBidding1Complete:
		return "bidding1_complete"
	case PhaseBidding2:
		return "bidding2_start"
	case PhaseBidding2Complete:
		return "bidding2_complete"
	case PhasePlaying:
		return "playing"
	case PhaseTrickComplete:
		return "trick_complete"
	case PhaseRoundComplete:
		return "round_complete"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// ForcedRevealPolicy selects when the engine reveals trump on the declarer's
// behalf and forces the folded card to be played.
type ForcedRevealPolicy int

const (
	// ForcedRevealTrumpLed fires when the declarer's only trump left is the
	// folded card and trump was led, and also when the folded card is the
	// declarer's last card.
	ForcedRevealTrumpLed ForcedRevealPolicy = iota
	// ForcedRevealLastCard fires only when the folded card is the
	// declarer's last card.
	ForcedRevealLastCard
)

func (p ForcedRevealPolicy) String() string {
	switch p {
	case ForcedRevealTrumpLed:
		return "trump_led"
	case ForcedRevealLastCard:
		return "last_card"
	default:
		return "unknown"
	}
}

func ParseForcedReveal(s string) (ForcedRevealPolicy, error) {
	switch s {
	case "trump_led", "":
		return ForcedRevealTrumpLed, nil
	case "last_card":
		return ForcedRevealLastCard, nil
	default:
		return 0, fmt.Errorf("unknown forced reveal policy %q", s)
	}
}

type Rules struct {
	Mode            Mode
	Players         int
	DeckRanks       []Rank
	BatchSize       int
	MinBid          int
	MaxBid          int
	HonorsThreshold int
	TargetScore     int
	ForcedReveal    ForcedRevealPolicy
}

func ThreePlayerPreset() Rules {
	return Rules{
		Mode:            ModeThreePlayer,
		Players:         3,
		DeckRanks:       []Rank{RankJ, Rank9, RankA, Rank10, RankK, RankQ},
		BatchSize:       4,
		MinBid:          14,
		MaxBid:          28,
		HonorsThreshold: 18,
		TargetScore:     6,
		ForcedReveal:    ForcedRevealTrumpLed,
	}
}

func FourPlayerPreset() Rules {
	return Rules{
		Mode:            ModeFourPlayer,
		Players:         4,
		DeckRanks:       []Rank{RankJ, Rank9, RankA, Rank10, RankK, RankQ, Rank8, Rank7},
		BatchSize:       4,
		MinBid:          14,
		MaxBid:          28,
		HonorsThreshold: 20,
		TargetScore:     6,
		ForcedReveal:    ForcedRevealTrumpLed,
	}
}

// PresetFor returns the default rules for a mode.
func PresetFor(m Mode) (Rules, error) {
	switch m {
	case ModeThreePlayer:
		return ThreePlayerPreset(), nil
	case ModeFourPlayer:
		return FourPlayerPreset(), nil
	default:
		return Rules{}, fmt.Errorf("%w: unsupported mode %d", ErrPlayerCount, int(m))
	}
}

type PlayerState struct {
	ID           int
	Name         string
	Team         int
	Hand         []Card
	PassedRound1 bool
	PassedRound2 bool
	BidRound1    bool
	WonTricks    []Trick
}

type Bid struct {
	Amount int
	Player int
	Pass   bool
	Honors bool
	Round  int
	Seq    int
}

type BiddingState struct {
	Round         int
	Turn          int
	Bids          []Bid
	Contract      *Bid
	ContractRound int
}

type TrumpState struct {
	ProvisionalSuit   *Suit
	ProvisionalCard   *Card
	FinalSuit         *Suit
	FinalCard         *Card
	Revealed          bool
	ProvisionalBidder int
	Declarer          int
	// Folded is the concealed card while it sits outside every hand.
	Folded         *Card
	FoldedReturned bool
}

type Play struct {
	Player int
	Card   Card
}

type Trick struct {
	Leader            int
	Plays             []Play
	LeadSuit          *Suit
	Winner            *int
	RevealRequestedBy *int
	Points            int
}

type RoundScore struct {
	Round          int
	Declarer       int
	DeclarerSide   int
	Contract       int
	ContractRound  int
	Honors         bool
	Made           bool
	DeclarerPoints int
	OpponentPoints int
	// Awards is indexed by side: seat in 3p, team in 4p.
	Awards []int
}

type GameState struct {
	ID      string
	Rules   Rules
	Seed    int64
	Phase   Phase
	Round   int
	Dealer  int
	Turn    int
	Players []PlayerState
	Deck    []Card

	Bidding         BiddingState
	Trump           TrumpState
	Trick           Trick
	CompletedTricks []Trick

	Scores []RoundScore
	Totals []int
}

// Sides returns how many scoring sides the game has.
func (g *GameState) Sides() int {
	if g.Rules.Mode == ModeFourPlayer {
		return 2
	}
	return g.Rules.Players
}

// Side maps a seat to its scoring side.
func (g *GameState) Side(player int) int {
	if g.Rules.Mode == ModeFourPlayer {
		return player % 2
	}
	return player
}

// ResetRound clears all per-round state. The dealer and scores survive.
func (g *GameState) ResetRound() {
	g.Bidding = BiddingState{}
	g.Trump = TrumpState{ProvisionalBidder: -1, Declarer: -1}
	g.Trick = Trick{}
	g.CompletedTricks = nil
	g.Deck = nil
	g.Turn = -1
	for i := range g.Players {
		g.Players[i].Hand = nil
		g.Players[i].WonTricks = nil
		g.Players[i].PassedRound1 = false
		g.Players[i].PassedRound2 = false
		g.Players[i].BidRound1 = false
	}
}
