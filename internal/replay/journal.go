// Package replay keeps an append-only journal of applied actions. Any earlier
// state is rebuilt by replaying a prefix of the journal from the initial
// state, so undo never needs stored snapshots.
package replay

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"twentyeight/internal/engine"
)

var ErrNothingToUndo = errors.New("nothing to undo")

// Entry is one accepted action.
type Entry struct {
	ID     string
	Player int
	Action engine.Action
	// Phase is the phase the game reached after the action.
	Phase engine.Phase
}

type Journal struct {
	initial engine.GameState
	entries []Entry
	state   engine.GameState
}

// New starts a journal at initial. The journal keeps its own copy.
func New(initial engine.GameState) *Journal {
	return &Journal{
		initial: initial.Clone(),
		state:   initial.Clone(),
	}
}

// Apply runs the action against the current state and records it when the
// engine accepts it. Rejected actions leave the journal untouched.
func (j *Journal) Apply(player int, a engine.Action) (Entry, error) {
	if err := engine.ApplyAction(&j.state, player, a); err != nil {
		return Entry{}, err
	}
	e := Entry{
		ID:     uuid.NewString(),
		Player: player,
		Action: copyAction(a),
		Phase:  j.state.Phase,
	}
	j.entries = append(j.entries, e)
	return e, nil
}

// State returns a copy of the current state.
func (j *Journal) State() engine.GameState {
	return j.state.Clone()
}

func (j *Journal) Len() int {
	return len(j.entries)
}

func (j *Journal) Entries() []Entry {
	return append([]Entry(nil), j.entries...)
}

// Replay rebuilds the state after the first n entries.
func (j *Journal) Replay(n int) (engine.GameState, error) {
	if n < 0 || n > len(j.entries) {
		return engine.GameState{}, fmt.Errorf("replay: %d outside journal of %d entries", n, len(j.entries))
	}
	g := j.initial.Clone()
	for i, e := range j.entries[:n] {
		if err := engine.ApplyAction(&g, e.Player, e.Action); err != nil {
			return engine.GameState{}, fmt.Errorf("replay entry %d (%s): %w", i, e.ID, err)
		}
	}
	return g, nil
}

// Undo drops the last entry and returns it with the rebuilt state.
func (j *Journal) Undo() (Entry, engine.GameState, error) {
	if len(j.entries) == 0 {
		return Entry{}, j.State(), ErrNothingToUndo
	}
	last := j.entries[len(j.entries)-1]
	g, err := j.Replay(len(j.entries) - 1)
	if err != nil {
		return Entry{}, j.State(), err
	}
	j.entries = j.entries[:len(j.entries)-1]
	j.state = g
	return last, g.Clone(), nil
}

func copyAction(a engine.Action) engine.Action {
	if a.Card != nil {
		c := *a.Card
		a.Card = &c
	}
	return a
}
