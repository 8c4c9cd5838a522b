package game

import (
	"github.com/montplusa/minesweeper-agent-game/pkg/game/debug"
)

// 着手の提案元
const (
	StrategySafe   = "safe"   // 知識ベースから安全と確定した手
	StrategyRandom = "random" // 乱択によるフォールバック
)

// MoveRecord は1手の記録
type MoveRecord struct {
	Cell     Cell   `json:"cell"`
	Strategy string `json:"strategy"`
	Count    int    `json:"count"` // 観測した近傍地雷数（地雷を踏んだ場合は -1）
	Mine     bool   `json:"mine"`
}

// GameResult は1ゲームの記録
type GameResult struct {
	Height int          `json:"height"`
	Width  int          `json:"width"`
	Mines  int          `json:"mines"`
	Moves  []MoveRecord `json:"moves"`
	Won    bool         `json:"won"`
}

// GameRunner はエージェント1体と盤面の対局を管理
type GameRunner struct {
	board *Board
	agent AI
}

// NewGameRunner は盤面とエージェントをセットして返す
func NewGameRunner(b *Board, a AI) *GameRunner {
	return &GameRunner{board: b, agent: a}
}

// Run はゲームを終局まで実行して GameResult を返す
func (gr *GameRunner) Run() GameResult {
	result := GameResult{
		Height: gr.board.Height,
		Width:  gr.board.Width,
		Mines:  gr.board.MineCount(),
		Moves:  make([]MoveRecord, 0),
	}

	for {
		cell, strategy, ok := gr.nextMove()
		if !ok {
			debug.Log("%s: 打てる手がないため終了", gr.agent.Name())
			break
		}
		debug.Log("%s の手: (%d,%d) [%s]", gr.agent.Name(), cell.Row, cell.Col, strategy)

		// 地雷を踏んだら負け
		if gr.board.IsMine(cell) {
			debug.Log("(%d,%d) は地雷でした", cell.Row, cell.Col)
			result.Moves = append(result.Moves, MoveRecord{
				Cell: cell, Strategy: strategy, Count: -1, Mine: true,
			})
			return result
		}

		count := gr.board.NearbyMines(cell)
		result.Moves = append(result.Moves, MoveRecord{
			Cell: cell, Strategy: strategy, Count: count,
		})
		gr.agent.AddKnowledge(cell, count)

		// 地雷と確定したマスに旗を立て、勝敗を判定
		for _, c := range gr.agent.FlagCandidates() {
			gr.board.Flag(c)
		}
		if gr.board.Won() {
			debug.Log("全ての地雷に旗が立ちました")
			result.Won = true
			return result
		}
	}

	return result
}

// nextMove は安全手を優先し、なければ乱択手を返す
func (gr *GameRunner) nextMove() (Cell, string, bool) {
	if cell, ok := gr.agent.MakeSafeMove(); ok {
		return cell, StrategySafe, true
	}
	if cell, ok := gr.agent.MakeRandomMove(); ok {
		return cell, StrategyRandom, true
	}
	return Cell{}, "", false
}
