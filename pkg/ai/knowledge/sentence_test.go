package knowledge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/montplusa/minesweeper-agent-game/pkg/game"
)

func cell(row, col int) game.Cell {
	return game.Cell{Row: row, Col: col}
}

func TestSentenceKnownMines(t *testing.T) {
	s := NewSentence([]game.Cell{cell(0, 0), cell(0, 1)}, 2)
	assert.ElementsMatch(t, []game.Cell{cell(0, 0), cell(0, 1)}, s.KnownMines())

	// 地雷数がマス数に満たなければ何も確定しない
	s = NewSentence([]game.Cell{cell(0, 0), cell(0, 1)}, 1)
	assert.Empty(t, s.KnownMines())
}

func TestSentenceKnownSafes(t *testing.T) {
	s := NewSentence([]game.Cell{cell(0, 0), cell(0, 1), cell(1, 1)}, 0)
	assert.ElementsMatch(t, []game.Cell{cell(0, 0), cell(0, 1), cell(1, 1)}, s.KnownSafes())

	s = NewSentence([]game.Cell{cell(0, 0), cell(0, 1)}, 1)
	assert.Empty(t, s.KnownSafes())
}

func TestSentenceMarkMine(t *testing.T) {
	s := NewSentence([]game.Cell{cell(0, 0), cell(0, 1)}, 1)

	s.MarkMine(cell(0, 0))
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 0, s.Count())
	assert.False(t, s.Contains(cell(0, 0)))

	// 2回目は何も変化しない
	s.MarkMine(cell(0, 0))
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 0, s.Count())

	// 含まれないマスも何も変化しない
	s.MarkMine(cell(5, 5))
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 0, s.Count())
}

func TestSentenceMarkSafe(t *testing.T) {
	s := NewSentence([]game.Cell{cell(0, 0), cell(0, 1)}, 1)

	s.MarkSafe(cell(0, 1))
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 1, s.Count())

	s.MarkSafe(cell(0, 1))
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 1, s.Count())
}

func TestSentenceEqual(t *testing.T) {
	a := NewSentence([]game.Cell{cell(0, 0), cell(0, 1), cell(1, 0)}, 2)
	b := NewSentence([]game.Cell{cell(1, 0), cell(0, 0), cell(0, 1)}, 2)

	// マス集合の構築順序には依存しない
	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))

	c := NewSentence([]game.Cell{cell(0, 0), cell(0, 1), cell(1, 0)}, 1)
	assert.False(t, a.Equal(c))

	d := NewSentence([]game.Cell{cell(0, 0), cell(0, 1)}, 2)
	assert.False(t, a.Equal(d))
}

func TestSentenceResolve(t *testing.T) {
	a := NewSentence([]game.Cell{cell(0, 0), cell(0, 1), cell(0, 2)}, 1)
	b := NewSentence([]game.Cell{cell(0, 0), cell(0, 1)}, 1)

	require.True(t, b.IsSubsetOf(a))
	require.False(t, a.IsSubsetOf(b))

	d := a.Resolve(b)
	assert.True(t, d.Equal(NewSentence([]game.Cell{cell(0, 2)}, 0)))
}

func TestSentenceString(t *testing.T) {
	s := NewSentence([]game.Cell{cell(1, 0), cell(0, 1)}, 1)
	assert.Equal(t, "{(0,1), (1,0)} = 1", s.String())
}
