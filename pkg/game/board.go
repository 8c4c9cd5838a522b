package game

import (
	"fmt"
	"io"
	"math/rand"
	"strings"

	"github.com/fatih/color"
)

var (
	mineMark = color.New(color.FgRed, color.Bold)
	flagMark = color.New(color.FgYellow)
)

// Board は地雷配置を保持する盤面環境
type Board struct {
	Height int
	Width  int

	mines   map[Cell]bool
	flagged map[Cell]bool
}

// NewBoard は指定サイズの盤面に mineCount 個の地雷をランダム配置して返す
// 地雷数はマス総数を上限に切り詰める
func NewBoard(height, width, mineCount int, rng *rand.Rand) *Board {
	b := &Board{
		Height:  height,
		Width:   width,
		mines:   make(map[Cell]bool),
		flagged: make(map[Cell]bool),
	}

	if max := height * width; mineCount > max {
		mineCount = max
	}
	for len(b.mines) < mineCount {
		cell := Cell{Row: rng.Intn(height), Col: rng.Intn(width)}
		b.mines[cell] = true
	}

	return b
}

// IsMine は指定マスが地雷かどうかを返す
func (b *Board) IsMine(c Cell) bool {
	return b.mines[c]
}

// MineCount は地雷の総数を返す
func (b *Board) MineCount() int {
	return len(b.mines)
}

// NearbyMines は指定マスの近傍に含まれる地雷の数を返す
// マス自身は数えない
func (b *Board) NearbyMines(c Cell) int {
	count := 0
	for _, n := range c.Neighbors(b.Height, b.Width) {
		if b.mines[n] {
			count++
		}
	}
	return count
}

// Flag は地雷と推定したマスに旗を立てる
func (b *Board) Flag(c Cell) {
	b.flagged[c] = true
}

// Won は全ての地雷に過不足なく旗が立ったかどうかを返す
func (b *Board) Won() bool {
	if len(b.flagged) != len(b.mines) {
		return false
	}
	for c := range b.mines {
		if !b.flagged[c] {
			return false
		}
	}
	return true
}

// Render は盤面のテキスト表現を書き出す（デバッグ用）
// reveal 指定時は地雷位置を X、それ以外では旗のみを F で表示する
func (b *Board) Render(w io.Writer, reveal bool) {
	border := strings.Repeat("--", b.Width) + "-"
	for row := 0; row < b.Height; row++ {
		fmt.Fprintln(w, border)
		for col := 0; col < b.Width; col++ {
			c := Cell{Row: row, Col: col}
			switch {
			case reveal && b.mines[c]:
				fmt.Fprintf(w, "|%s", mineMark.Sprint("X"))
			case b.flagged[c]:
				fmt.Fprintf(w, "|%s", flagMark.Sprint("F"))
			default:
				fmt.Fprint(w, "| ")
			}
		}
		fmt.Fprintln(w, "|")
	}
	fmt.Fprintln(w, border)
}
