package game

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testBoard は地雷位置を固定した盤面を返す
func testBoard(height, width int, mines ...Cell) *Board {
	b := &Board{
		Height:  height,
		Width:   width,
		mines:   make(map[Cell]bool),
		flagged: make(map[Cell]bool),
	}
	for _, c := range mines {
		b.mines[c] = true
	}
	return b
}

func TestNewBoardPlacesExactMineCount(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	b := NewBoard(8, 8, 10, rng)

	require.Equal(t, 10, b.MineCount())
	count := 0
	for row := 0; row < b.Height; row++ {
		for col := 0; col < b.Width; col++ {
			if b.IsMine(Cell{Row: row, Col: col}) {
				count++
			}
		}
	}
	assert.Equal(t, 10, count)
}

func TestNewBoardClampsMineCountToBoardSize(t *testing.T) {
	// マス総数を超える地雷数を指定しても停止する
	rng := rand.New(rand.NewSource(42))
	b := NewBoard(2, 2, 5, rng)
	assert.Equal(t, 4, b.MineCount())
}

func TestNearbyMines(t *testing.T) {
	// 3x3、地雷は (0,0) と (2,2)
	b := testBoard(3, 3, Cell{Row: 0, Col: 0}, Cell{Row: 2, Col: 2})

	assert.Equal(t, 2, b.NearbyMines(Cell{Row: 1, Col: 1}))
	assert.Equal(t, 1, b.NearbyMines(Cell{Row: 0, Col: 1}))
	assert.Equal(t, 0, b.NearbyMines(Cell{Row: 0, Col: 2}))
	// マス自身が地雷でも数えない
	assert.Equal(t, 0, b.NearbyMines(Cell{Row: 0, Col: 0}))
}

func TestWon(t *testing.T) {
	b := testBoard(2, 2, Cell{Row: 0, Col: 0}, Cell{Row: 1, Col: 1})
	assert.False(t, b.Won())

	b.Flag(Cell{Row: 0, Col: 0})
	assert.False(t, b.Won())

	b.Flag(Cell{Row: 1, Col: 1})
	assert.True(t, b.Won())

	// 地雷でないマスへの旗は勝利条件を壊す
	b.Flag(Cell{Row: 0, Col: 1})
	assert.False(t, b.Won())
}

func TestRenderRevealsMines(t *testing.T) {
	color.NoColor = true

	b := testBoard(2, 2, Cell{Row: 0, Col: 0})
	var buf bytes.Buffer
	b.Render(&buf, true)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "-----", lines[0])
	assert.Equal(t, "|X| |", lines[1])
	assert.Equal(t, "| | |", lines[3])

	// reveal なしでは地雷は表示されない
	buf.Reset()
	b.Render(&buf, false)
	assert.NotContains(t, buf.String(), "X")
}
