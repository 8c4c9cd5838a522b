package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/fatih/color"

	"github.com/montplusa/minesweeper-agent-game/pkg/ai/knowledge"
	"github.com/montplusa/minesweeper-agent-game/pkg/ai/naive"
	"github.com/montplusa/minesweeper-agent-game/pkg/ai/random"
	"github.com/montplusa/minesweeper-agent-game/pkg/game"
	"github.com/montplusa/minesweeper-agent-game/pkg/game/debug"
)

// newAgent は名前からエージェントを生成する
func newAgent(name string, height, width int, rng *rand.Rand) (game.AI, error) {
	switch name {
	case "knowledge":
		return knowledge.New(height, width, rng), nil
	case "naive":
		return naive.New(height, width, rng), nil
	case "random":
		return random.New(height, width, rng), nil
	default:
		return nil, fmt.Errorf("未知のエージェント名: %q", name)
	}
}

func main() {
	// コマンドライン引数の解析
	height := flag.Int("height", 8, "盤面の高さ")
	width := flag.Int("width", 8, "盤面の幅")
	mines := flag.Int("mines", 8, "地雷の数")
	agentName := flag.String("agent", "knowledge", "使用するエージェント (knowledge/naive/random)")
	seed := flag.Int64("seed", 0, "乱数シード (0 で現在時刻)")
	verbose := flag.Bool("v", false, "デバッグログを出力する")
	flag.Parse()

	debug.SetVerbose(*verbose)

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	board := game.NewBoard(*height, *width, *mines, rng)
	agent, err := newAgent(*agentName, *height, *width, rng)
	if err != nil {
		fmt.Println("エラー:", err)
		os.Exit(1)
	}

	gr := game.NewGameRunner(board, agent)
	result := gr.Run()

	// 手の履歴を表示
	for i, m := range result.Moves {
		if m.Mine {
			fmt.Printf("%3d: (%d,%d) [%s] 地雷!\n", i+1, m.Cell.Row, m.Cell.Col, m.Strategy)
			continue
		}
		fmt.Printf("%3d: (%d,%d) [%s] 近傍地雷数=%d\n", i+1, m.Cell.Row, m.Cell.Col, m.Strategy, m.Count)
	}

	board.Render(os.Stdout, true)

	switch {
	case result.Won:
		color.Green("勝利: %d 手で全ての地雷に旗を立てました", len(result.Moves))
	case len(result.Moves) > 0 && result.Moves[len(result.Moves)-1].Mine:
		color.Red("敗北: %d 手目で地雷を踏みました", len(result.Moves))
	default:
		color.Yellow("終了: 打てる手がなくなりました（勝利条件未達）")
	}
}
