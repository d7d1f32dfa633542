package sim

import (
	"fmt"
	"strings"

	"twentyeight/internal/bots"
	"twentyeight/internal/engine"
)

type ActionRecord struct {
	Round int
	Step  int
	Phase engine.Phase
	P     int
	A     engine.Action
}

// Config describes one self-play run.
type Config struct {
	Mode             engine.Mode
	Seed             int64
	Rounds           int
	MaxStepsPerRound int
	ForcedReveal     engine.ForcedRevealPolicy
	// Bots maps seats to bots. Seats without an entry get a RandomBot.
	Bots map[int]bots.Bot
}

// Result summarises a finished run.
type Result struct {
	Game    engine.GameState
	Rounds  int
	Actions int
}

// RunSelfPlayRounds plays up to cfg.Rounds rounds, checking engine invariants
// and trick point conservation after every round. It stops early on game over.
func RunSelfPlayRounds(cfg Config) (Result, error) {
	rules, err := engine.PresetFor(cfg.Mode)
	if err != nil {
		return Result{}, err
	}
	rules.ForcedReveal = cfg.ForcedReveal
	names := make([]string, rules.Players)
	for i := range names {
		names[i] = fmt.Sprintf("bot%d", i+1)
	}
	state, err := engine.NewGame(rules, names, cfg.Seed)
	if err != nil {
		return Result{}, err
	}
	seats := make([]bots.Bot, rules.Players)
	for i := range seats {
		if b, ok := cfg.Bots[i]; ok {
			seats[i] = b
			continue
		}
		seats[i] = bots.NewRandom(cfg.Seed + int64(10*(i+1)))
	}

	res := Result{}
	for r := 0; r < cfg.Rounds && state.Phase != engine.PhaseGameOver; r++ {
		if err := engine.ApplyAction(&state, -1, engine.Action{Type: engine.ActionDeal}); err != nil {
			return res, failure(cfg.Seed, r, 0, state.Phase, -1, nil, fmt.Sprintf("deal: %v", err))
		}
		records := []ActionRecord{}
		for step := 0; ; step++ {
			if state.Phase == engine.PhaseRoundComplete || state.Phase == engine.PhaseGameOver {
				break
			}
			if step >= cfg.MaxStepsPerRound {
				return res, failure(cfg.Seed, r, step, state.Phase, -1, records, "round did not finish")
			}
			var action engine.Action
			player, ok := engine.CurrentPlayer(state)
			if ok {
				legal := engine.LegalActions(state, player)
				if len(legal) == 0 {
					return res, failure(cfg.Seed, r, step, state.Phase, player, records, "no legal actions")
				}
				action = seats[player].ChooseAction(state, player)
			} else {
				action = engine.Action{Type: engine.ActionConfirmTrick}
			}
			if err := engine.ApplyAction(&state, player, action); err != nil {
				return res, failure(cfg.Seed, r, step, state.Phase, player, records, fmt.Sprintf("apply error: %v", err))
			}
			records = append(records, ActionRecord{Round: r, Step: step, Phase: state.Phase, P: player, A: action})
			res.Actions++
		}
		if err := checkRound(state); err != nil {
			return res, failure(cfg.Seed, r, len(records), state.Phase, -1, records, err.Error())
		}
		res.Rounds++
	}
	res.Game = state
	return res, nil
}

func checkRound(state engine.GameState) error {
	if err := engine.CheckInvariants(state); err != nil {
		return err
	}
	if len(state.Scores) == 0 {
		return fmt.Errorf("round finished without a score")
	}
	rs := state.Scores[len(state.Scores)-1]
	if rs.DeclarerPoints+rs.OpponentPoints != 28 {
		return fmt.Errorf("trick points %d+%d do not add up to 28", rs.DeclarerPoints, rs.OpponentPoints)
	}
	if !state.Trump.Revealed {
		return fmt.Errorf("round ended with trump concealed")
	}
	for _, p := range state.Players {
		if len(p.Hand) != 0 {
			return fmt.Errorf("player %d ended the round holding %d cards", p.ID, len(p.Hand))
		}
	}
	return nil
}

func failure(seed int64, round int, step int, phase engine.Phase, player int, records []ActionRecord, reason string) error {
	start := 0
	if len(records) > 20 {
		start = len(records) - 20
	}
	var log strings.Builder
	for _, r := range records[start:] {
		fmt.Fprintf(&log, "[r%d s%d p%d %v] %v\n", r.Round, r.Step, r.P, r.Phase, r.A)
	}
	return fmt.Errorf("seed=%d round=%d step=%d phase=%v player=%d reason=%s\nlast actions:\n%s",
		seed, round, step, phase, player, reason, log.String())
}
