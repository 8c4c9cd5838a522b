package random

import (
	"math/rand"

	"github.com/montplusa/minesweeper-agent-game/pkg/game"
)

const randomMoveTries = 10

// Agent は推論を行わずランダムに着手するベースライン実装
type Agent struct {
	height int
	width  int
	rng    *rand.Rand

	movesMade map[game.Cell]bool
}

// New は指定サイズの盤面用エージェントを生成する
func New(height, width int, rng *rand.Rand) *Agent {
	return &Agent{
		height:    height,
		width:     width,
		rng:       rng,
		movesMade: make(map[game.Cell]bool),
	}
}

// Name はエージェント名を返す
func (a *Agent) Name() string {
	return "random"
}

// AddKnowledge は着手の記録のみ行い、推論はしない
func (a *Agent) AddKnowledge(cell game.Cell, count int) {
	a.movesMade[cell] = true
}

// FlagCandidates は常に空を返す（地雷を確定できない）
func (a *Agent) FlagCandidates() []game.Cell {
	return nil
}

// MakeSafeMove は常に ok=false を返す（安全を確定できない）
func (a *Agent) MakeSafeMove() (game.Cell, bool) {
	return game.Cell{}, false
}

// MakeRandomMove は未着手マスをランダムに返す
func (a *Agent) MakeRandomMove() (game.Cell, bool) {
	for i := 0; i < randomMoveTries; i++ {
		c := game.Cell{Row: a.rng.Intn(a.height), Col: a.rng.Intn(a.width)}
		if !a.movesMade[c] {
			return c, true
		}
	}
	for row := 0; row < a.height; row++ {
		for col := 0; col < a.width; col++ {
			c := game.Cell{Row: row, Col: col}
			if !a.movesMade[c] {
				return c, true
			}
		}
	}
	return game.Cell{}, false
}
