package naive

import (
	"math/rand"
	"sort"

	"github.com/montplusa/minesweeper-agent-game/pkg/game"
)

const randomMoveTries = 10

// Agent は単一マスの数字だけから判定する素朴なソルバー
// 文同士の組み合わせ（部分集合解消）は行わないベースライン実装
type Agent struct {
	height int
	width  int
	rng    *rand.Rand

	movesMade map[game.Cell]bool
	counts    map[game.Cell]int // 観測済みマスの近傍地雷数
	safes     map[game.Cell]bool
	mines     map[game.Cell]bool
}

// New は指定サイズの盤面用エージェントを生成する
func New(height, width int, rng *rand.Rand) *Agent {
	return &Agent{
		height:    height,
		width:     width,
		rng:       rng,
		movesMade: make(map[game.Cell]bool),
		counts:    make(map[game.Cell]int),
		safes:     make(map[game.Cell]bool),
		mines:     make(map[game.Cell]bool),
	}
}

// Name はエージェント名を返す
func (a *Agent) Name() string {
	return "naive"
}

// AddKnowledge は観測を記録し、単一マス規則を変化がなくなるまで適用する
// 規則: 未確定近傍数 == 残り地雷数なら全て地雷、残り地雷数 0 なら全て安全
func (a *Agent) AddKnowledge(cell game.Cell, count int) {
	a.movesMade[cell] = true
	a.safes[cell] = true
	a.counts[cell] = count

	for changed := true; changed; {
		changed = false
		for c, n := range a.counts {
			hidden, found := a.splitNeighbors(c)
			if len(hidden) == 0 {
				continue
			}
			switch {
			case n-found == len(hidden):
				for _, h := range hidden {
					a.mines[h] = true
				}
				changed = true
			case n == found:
				for _, h := range hidden {
					a.safes[h] = true
				}
				changed = true
			}
		}
	}
}

// splitNeighbors は近傍を未確定マスと確定済み地雷数に分ける
func (a *Agent) splitNeighbors(c game.Cell) (hidden []game.Cell, found int) {
	for _, n := range c.Neighbors(a.height, a.width) {
		switch {
		case a.mines[n]:
			found++
		case !a.safes[n]:
			hidden = append(hidden, n)
		}
	}
	return hidden, found
}

// FlagCandidates は地雷と確定しているマスを行優先順で返す
func (a *Agent) FlagCandidates() []game.Cell {
	cells := make([]game.Cell, 0, len(a.mines))
	for c := range a.mines {
		cells = append(cells, c)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Row != cells[j].Row {
			return cells[i].Row < cells[j].Row
		}
		return cells[i].Col < cells[j].Col
	})
	return cells
}

// MakeSafeMove は安全と確定している未着手マスを返す
func (a *Agent) MakeSafeMove() (game.Cell, bool) {
	for c := range a.safes {
		if !a.movesMade[c] {
			return c, true
		}
	}
	return game.Cell{}, false
}

// MakeRandomMove は地雷でも着手済みでもないマスをランダムに返す
func (a *Agent) MakeRandomMove() (game.Cell, bool) {
	for i := 0; i < randomMoveTries; i++ {
		c := game.Cell{Row: a.rng.Intn(a.height), Col: a.rng.Intn(a.width)}
		if !a.mines[c] && !a.movesMade[c] {
			return c, true
		}
	}
	for row := 0; row < a.height; row++ {
		for col := 0; col < a.width; col++ {
			c := game.Cell{Row: row, Col: col}
			if !a.mines[c] && !a.movesMade[c] {
				return c, true
			}
		}
	}
	return game.Cell{}, false
}
