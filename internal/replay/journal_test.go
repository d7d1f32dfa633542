package replay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"twentyeight/internal/bots"
	"twentyeight/internal/engine"
)

func newJournal(t *testing.T, seed int64) *Journal {
	t.Helper()
	g, err := engine.InitializeGame([]string{"a", "b", "c"}, engine.ModeThreePlayer, 0, seed)
	require.NoError(t, err)
	return New(g)
}

// playSteps applies n bot-chosen actions through the journal.
func playSteps(t *testing.T, j *Journal, n int, seed int64) {
	t.Helper()
	bot := bots.NewRandom(seed)
	for i := 0; i < n; i++ {
		g := j.State()
		player, ok := engine.CurrentPlayer(g)
		var a engine.Action
		if ok {
			a = bot.ChooseAction(g, player)
		} else {
			a = engine.LegalActions(g, -1)[0]
		}
		_, err := j.Apply(player, a)
		require.NoError(t, err, "step %d", i)
	}
}

func TestApplyRecordsOnlyAcceptedActions(t *testing.T) {
	j := newJournal(t, 1)

	_, err := j.Apply(0, engine.Action{Type: engine.ActionPass})
	assert.ErrorIs(t, err, engine.ErrWrongPhase)
	assert.Equal(t, 0, j.Len())

	e, err := j.Apply(-1, engine.Action{Type: engine.ActionDeal})
	require.NoError(t, err)
	assert.NotEmpty(t, e.ID)
	assert.Equal(t, engine.PhaseBidding1, e.Phase)
	assert.Equal(t, 1, j.Len())
}

func TestReplayMatchesLiveState(t *testing.T) {
	j := newJournal(t, 17)
	playSteps(t, j, 30, 17)

	g, err := j.Replay(j.Len())
	require.NoError(t, err)
	assert.Equal(t, j.State(), g)

	mid, err := j.Replay(10)
	require.NoError(t, err)
	assert.Equal(t, j.Entries()[9].Phase, mid.Phase)

	_, err = j.Replay(j.Len() + 1)
	assert.Error(t, err)
}

func TestUndoRestoresPreviousState(t *testing.T) {
	j := newJournal(t, 23)
	playSteps(t, j, 12, 23)
	before, err := j.Replay(11)
	require.NoError(t, err)
	last := j.Entries()[11]

	undone, g, err := j.Undo()
	require.NoError(t, err)
	assert.Equal(t, last.ID, undone.ID)
	assert.Equal(t, before, g)
	assert.Equal(t, before, j.State())
	assert.Equal(t, 11, j.Len())

	// The undone action is legal again from the restored state.
	_, err = j.Apply(undone.Player, undone.Action)
	require.NoError(t, err)
	assert.Equal(t, 12, j.Len())
}

func TestUndoEmptyJournal(t *testing.T) {
	j := newJournal(t, 3)
	_, g, err := j.Undo()
	assert.ErrorIs(t, err, ErrNothingToUndo)
	assert.Equal(t, engine.PhaseSetup, g.Phase)
}

func TestJournalCopiesInitialState(t *testing.T) {
	g, err := engine.InitializeGame([]string{"a", "b", "c"}, engine.ModeThreePlayer, 0, 5)
	require.NoError(t, err)
	j := New(g)
	g.Players[0].Name = "changed"
	assert.Equal(t, "a", j.State().Players[0].Name)
}
