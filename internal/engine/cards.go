package engine

import (
	"fmt"
	"strings"
)

// Order is the strength of a rank within its suit; J is highest.
func Order(r Rank) int {
	return int(r) + 1
}

func CardPoints(r Rank) int {
	switch r {
	case RankJ:
		return 3
	case Rank9:
		return 2
	case RankA, Rank10:
		return 1
	default:
		return 0
	}
}

// TotalPoints sums the point value of cards.
func TotalPoints(cards []Card) int {
	total := 0
	for _, c := range cards {
		total += CardPoints(c.Rank)
	}
	return total
}

// ParseCardID is the inverse of Card.ID.
func ParseCardID(id string) (Card, error) {
	id = strings.ToUpper(strings.TrimSpace(id))
	if len(id) < 2 {
		return Card{}, fmt.Errorf("invalid card id %q", id)
	}
	suit, err := parseSuit(id[len(id)-1:])
	if err != nil {
		return Card{}, fmt.Errorf("invalid card id %q: %w", id, err)
	}
	rank, err := parseRank(id[:len(id)-1])
	if err != nil {
		return Card{}, fmt.Errorf("invalid card id %q: %w", id, err)
	}
	return Card{Suit: suit, Rank: rank}, nil
}

func parseSuit(s string) (Suit, error) {
	for _, suit := range allSuits {
		if suit.String() == s {
			return suit, nil
		}
	}
	return SuitHearts, fmt.Errorf("unknown suit %q", s)
}

func parseRank(s string) (Rank, error) {
	for r := Rank7; r <= RankJ; r++ {
		if r.String() == s {
			return r, nil
		}
	}
	return Rank7, fmt.Errorf("unknown rank %q", s)
}

func hasSuit(cards []Card, suit Suit) bool {
	for _, c := range cards {
		if c.Suit == suit {
			return true
		}
	}
	return false
}

func onlySuit(cards []Card, suit Suit) bool {
	if len(cards) == 0 {
		return false
	}
	for _, c := range cards {
		if c.Suit != suit {
			return false
		}
	}
	return true
}

func filterBySuit(cards []Card, suit Suit) []Card {
	out := []Card{}
	for _, c := range cards {
		if c.Suit == suit {
			out = append(out, c)
		}
	}
	return out
}

func filterOutSuit(cards []Card, suit Suit) []Card {
	out := []Card{}
	for _, c := range cards {
		if c.Suit != suit {
			out = append(out, c)
		}
	}
	return out
}

func containsCard(cards []Card, card Card) bool {
	for _, c := range cards {
		if c == card {
			return true
		}
	}
	return false
}

func removeCard(hand *[]Card, card Card) bool {
	for i, c := range *hand {
		if c == card {
			*hand = append((*hand)[:i], (*hand)[i+1:]...)
			return true
		}
	}
	return false
}
