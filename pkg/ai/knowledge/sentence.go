package knowledge

import (
	"fmt"
	"sort"
	"strings"

	"github.com/montplusa/minesweeper-agent-game/pkg/game"
)

// Sentence は「このマス集合のうちちょうど count 個が地雷」という論理文
// マス集合と地雷数の組で構造的に比較できる
type Sentence struct {
	cells map[game.Cell]bool
	count int
}

// NewSentence は論理文を生成する
func NewSentence(cells []game.Cell, count int) *Sentence {
	s := &Sentence{
		cells: make(map[game.Cell]bool, len(cells)),
		count: count,
	}
	for _, c := range cells {
		s.cells[c] = true
	}
	return s
}

// Len は文に残っているマス数を返す
func (s *Sentence) Len() int {
	return len(s.cells)
}

// Count は文が主張する地雷数を返す
func (s *Sentence) Count() int {
	return s.count
}

// Contains は cell が文に含まれるかどうかを返す
func (s *Sentence) Contains(cell game.Cell) bool {
	return s.cells[cell]
}

// Equal はマス集合と地雷数の両方が一致するかどうかを返す
// 順序には依存しない
func (s *Sentence) Equal(other *Sentence) bool {
	if s.count != other.count || len(s.cells) != len(other.cells) {
		return false
	}
	for c := range s.cells {
		if !other.cells[c] {
			return false
		}
	}
	return true
}

// KnownMines は全マスが地雷と確定する場合にそのマス集合を返す
// 確定しない場合は空
func (s *Sentence) KnownMines() []game.Cell {
	if len(s.cells) == 0 || s.count != len(s.cells) {
		return nil
	}
	return s.cellList()
}

// KnownSafes は全マスが安全と確定する場合にそのマス集合を返す
// 確定しない場合は空
func (s *Sentence) KnownSafes() []game.Cell {
	if len(s.cells) == 0 || s.count != 0 {
		return nil
	}
	return s.cellList()
}

// MarkMine は cell が地雷と確定した事実を反映する
// 文に含まれない場合は何もしない
func (s *Sentence) MarkMine(cell game.Cell) {
	if !s.cells[cell] {
		return
	}
	delete(s.cells, cell)
	s.count--
}

// MarkSafe は cell が安全と確定した事実を反映する
// 文に含まれない場合は何もしない
func (s *Sentence) MarkSafe(cell game.Cell) {
	delete(s.cells, cell)
}

// IsSubsetOf は s の全マスが other に含まれるかどうかを返す
func (s *Sentence) IsSubsetOf(other *Sentence) bool {
	if len(s.cells) > len(other.cells) {
		return false
	}
	for c := range s.cells {
		if !other.cells[c] {
			return false
		}
	}
	return true
}

// Resolve は other ⊆ s を前提に差分の文を導出する
// 残りのマスが残りの地雷数を担う
func (s *Sentence) Resolve(other *Sentence) *Sentence {
	diff := &Sentence{
		cells: make(map[game.Cell]bool),
		count: s.count - other.count,
	}
	for c := range s.cells {
		if !other.cells[c] {
			diff.cells[c] = true
		}
	}
	return diff
}

// String は {(r,c), ...} = n 形式の表現を返す（デバッグ用）
func (s *Sentence) String() string {
	cells := s.cellList()
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = fmt.Sprintf("(%d,%d)", c.Row, c.Col)
	}
	return fmt.Sprintf("{%s} = %d", strings.Join(parts, ", "), s.count)
}

// cellList はマス集合を行優先順で返す
func (s *Sentence) cellList() []game.Cell {
	cells := make([]game.Cell, 0, len(s.cells))
	for c := range s.cells {
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
