package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"

	"twentyeight/internal/engine"
	"twentyeight/internal/engine/sim"
)

func main() {
	mode := flag.Int("mode", 4, "players: 3 or 4")
	seed := flag.Int64("seed", 1, "first seed")
	games := flag.Int("games", 1, "number of games, one seed each")
	rounds := flag.Int("rounds", 50, "maximum rounds per game")
	policy := flag.String("forced-reveal", "trump_led", "forced reveal policy: trump_led or last_card")
	verbose := flag.Bool("v", false, "print per-round scores and the last round's tricks")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	fr, err := engine.ParseForcedReveal(*policy)
	if err != nil {
		log.Fatal().Err(err).Msg("bad flag")
	}

	summary := pterm.TableData{{"seed", "rounds", "actions", "totals", "winners"}}
	failed := 0
	for i := 0; i < *games; i++ {
		s := *seed + int64(i)
		res, err := sim.RunSelfPlayRounds(sim.Config{
			Mode:             engine.Mode(*mode),
			Seed:             s,
			Rounds:           *rounds,
			MaxStepsPerRound: 500,
			ForcedReveal:     fr,
		})
		if err != nil {
			failed++
			log.Error().Int64("seed", s).Err(err).Msg("self-play failed")
			continue
		}
		summary = append(summary, []string{
			fmt.Sprint(s),
			fmt.Sprint(res.Rounds),
			fmt.Sprint(res.Actions),
			fmt.Sprint(res.Game.Totals),
			fmt.Sprint(engine.Winners(res.Game)),
		})
		if *verbose {
			renderGame(res.Game)
		}
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(summary).Render(); err != nil {
		log.Error().Err(err).Msg("render summary")
	}
	if failed > 0 {
		pterm.Error.Printfln("%d of %d games failed", failed, *games)
		os.Exit(1)
	}
	pterm.Success.Printfln("%d games played", *games)
}

func renderGame(g engine.GameState) {
	pterm.DefaultSection.Printfln("game %s (%s, seed %d)", g.ID, g.Rules.Mode, g.Seed)

	scores := pterm.TableData{{"round", "declarer", "contract", "made", "points", "awards"}}
	for _, rs := range g.Scores {
		contract := fmt.Sprintf("%d (r%d)", rs.Contract, rs.ContractRound)
		if rs.Honors {
			contract += " honors"
		}
		scores = append(scores, []string{
			fmt.Sprint(rs.Round),
			g.Players[rs.Declarer].Name,
			contract,
			fmt.Sprint(rs.Made),
			fmt.Sprintf("%d-%d", rs.DeclarerPoints, rs.OpponentPoints),
			fmt.Sprint(rs.Awards),
		})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(scores).Render()

	if g.Trump.FinalCard != nil {
		pterm.Info.Printfln("last round trump: %s", prettyCard(*g.Trump.FinalCard))
	}
	for i, t := range g.CompletedTricks {
		plays := make([]string, 0, len(t.Plays))
		for _, p := range t.Plays {
			plays = append(plays, fmt.Sprintf("%s:%s", g.Players[p.Player].Name, prettyCard(p.Card)))
		}
		winner := ""
		if t.Winner != nil {
			winner = g.Players[*t.Winner].Name
		}
		fmt.Printf("  trick %d  %s  -> %s (%d)\n", i+1, strings.Join(plays, " "), winner, t.Points)
	}
}

func prettyCard(c engine.Card) string {
	var suit string
	switch c.Suit {
	case engine.SuitClubs:
		suit = pterm.Black("♣")
	case engine.SuitDiamonds:
		suit = pterm.LightRed("♦")
	case engine.SuitHearts:
		suit = pterm.LightRed("♥")
	case engine.SuitSpades:
		suit = pterm.Black("♠")
	default:
		suit = "?"
	}
	return c.Rank.String() + suit
}
