package random

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/montplusa/minesweeper-agent-game/pkg/game"
)

func TestNeverProposesSafeMove(t *testing.T) {
	a := New(2, 2, rand.New(rand.NewSource(1)))
	_, ok := a.MakeSafeMove()
	assert.False(t, ok)
	assert.Empty(t, a.FlagCandidates())
}

func TestRandomMovesExhaustBoard(t *testing.T) {
	a := New(2, 2, rand.New(rand.NewSource(1)))

	seen := make(map[game.Cell]bool)
	for i := 0; i < 4; i++ {
		c, ok := a.MakeRandomMove()
		require.True(t, ok)
		assert.True(t, c.InBounds(2, 2))
		assert.False(t, seen[c], "(%d,%d) が重複して提案された", c.Row, c.Col)
		seen[c] = true
		a.AddKnowledge(c, 0)
	}

	_, ok := a.MakeRandomMove()
	assert.False(t, ok)
}
