package knowledge

import (
	"math/rand"
	"sort"

	"github.com/gammazero/deque"

	"github.com/montplusa/minesweeper-agent-game/pkg/game"
	"github.com/montplusa/minesweeper-agent-game/pkg/game/debug"
)

// 乱択の試行回数（超えたら行優先の全走査へ切り替える）
const randomMoveTries = 10

// Agent は命題知識ベースの推論でマインスイーパーを解くエージェント
// 確定集合（safes / mines / movesMade）は単調に増えるだけで縮まない
type Agent struct {
	height int
	width  int
	rng    *rand.Rand

	movesMade map[game.Cell]bool
	safes     map[game.Cell]bool
	mines     map[game.Cell]bool
	knowledge []*Sentence
}

// New は指定サイズの盤面用エージェントを生成する
func New(height, width int, rng *rand.Rand) *Agent {
	return &Agent{
		height:    height,
		width:     width,
		rng:       rng,
		movesMade: make(map[game.Cell]bool),
		safes:     make(map[game.Cell]bool),
		mines:     make(map[game.Cell]bool),
	}
}

// Name はエージェント名を返す
func (a *Agent) Name() string {
	return "knowledge"
}

// MarkMine は cell を地雷と確定し、知識ベース全体へ伝播する
func (a *Agent) MarkMine(cell game.Cell) {
	a.mines[cell] = true
	for _, s := range a.knowledge {
		s.MarkMine(cell)
	}
}

// MarkSafe は cell を安全と確定し、知識ベース全体へ伝播する
func (a *Agent) MarkSafe(cell game.Cell) {
	a.safes[cell] = true
	for _, s := range a.knowledge {
		s.MarkSafe(cell)
	}
}

// AddKnowledge は「cell の近傍に地雷が count 個」という観測を取り込む
// 観測文を知識ベースへ追加した後、結論が増えなくなるまで伝播する
func (a *Agent) AddKnowledge(cell game.Cell, count int) {
	a.movesMade[cell] = true
	if !a.safes[cell] {
		a.MarkSafe(cell)
	}

	// 観測文の構築: 既知の安全マスは除外し、既知の地雷は数から差し引く
	cells := make([]game.Cell, 0, 8)
	for _, n := range cell.Neighbors(a.height, a.width) {
		if a.safes[n] {
			continue
		}
		if a.mines[n] {
			count--
			continue
		}
		cells = append(cells, n)
	}
	if s := NewSentence(cells, count); a.appendSentence(s) {
		debug.Log("観測文を追加: %s", s)
	}

	a.propagate()
}

// FlagCandidates は地雷と確定しているマスを行優先順で返す
func (a *Agent) FlagCandidates() []game.Cell {
	return sortedCells(a.mines)
}

// MakeSafeMove は安全と確定している未着手マスを返す
// 候補が複数ある場合の選び方は不定。状態は変更しない
func (a *Agent) MakeSafeMove() (game.Cell, bool) {
	for c := range a.safes {
		if !a.movesMade[c] {
			return c, true
		}
	}
	return game.Cell{}, false
}

// MakeRandomMove は地雷でも着手済みでもないマスをランダムに返す
// 乱択で見つからない場合は行優先の全走査で必ず停止する
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

// appendSentence は空でなく未登録の文だけを知識ベースへ追加する
func (a *Agent) appendSentence(s *Sentence) bool {
	if s.Len() == 0 {
		return false
	}
	for _, t := range a.knowledge {
		if t.Equal(s) {
			return false
		}
	}
	a.knowledge = append(a.knowledge, s)
	return true
}

type mark struct {
	cell game.Cell
	mine bool
}

// propagate は確定マスの導出と部分集合解消を変化がなくなるまで繰り返す
// 1パスでは不十分: マーキングは連鎖し、解消が新たな全地雷/全安全文を生む
func (a *Agent) propagate() {
	var pending deque.Deque[mark]

	for {
		changed := false

		// (a) 全地雷/全安全と確定した文からマーキング
		// マーキングが連鎖するためキューが空になるまで再走査する
		a.enqueueDerived(&pending)
		for pending.Len() > 0 {
			m := pending.PopFront()
			if m.mine {
				if a.mines[m.cell] {
					continue
				}
				a.MarkMine(m.cell)
				debug.Log("地雷と確定: (%d,%d)", m.cell.Row, m.cell.Col)
			} else {
				if a.safes[m.cell] {
					continue
				}
				a.MarkSafe(m.cell)
				debug.Log("安全と確定: (%d,%d)", m.cell.Row, m.cell.Col)
			}
			changed = true
			a.enqueueDerived(&pending)
		}

		// (b) 空になった文の除去
		kept := make([]*Sentence, 0, len(a.knowledge))
		for _, s := range a.knowledge {
			if s.Len() > 0 {
				kept = append(kept, s)
			}
		}
		a.knowledge = kept

		// (c) 部分集合解消: B ⊆ A から A−B = A.count−B.count を導出
		// 追加による順序依存の取りこぼしを避けるためスナップショット上で回す
		snapshot := append([]*Sentence(nil), a.knowledge...)
		for _, s := range snapshot {
			for _, t := range snapshot {
				if s == t || !t.IsSubsetOf(s) {
					continue
				}
				if d := s.Resolve(t); a.appendSentence(d) {
					debug.Log("部分集合解消: %s", d)
					changed = true
				}
			}
		}

		if !changed {
			return
		}
	}
}

// enqueueDerived は現在の知識ベースから確定したマスをキューへ積む
func (a *Agent) enqueueDerived(pending *deque.Deque[mark]) {
	for _, s := range a.knowledge {
		for _, c := range s.KnownSafes() {
			if !a.safes[c] {
				pending.PushBack(mark{cell: c})
			}
		}
		for _, c := range s.KnownMines() {
			if !a.mines[c] {
				pending.PushBack(mark{cell: c, mine: true})
			}
		}
	}
}

// sortedCells は集合を行優先順のスライスにして返す
func sortedCells(set map[game.Cell]bool) []game.Cell {
	cells := make([]game.Cell, 0, len(set))
	for c := range set {
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
