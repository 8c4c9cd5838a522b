package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strconv"
	"sync"

	"github.com/montplusa/minesweeper-agent-game/pkg/ai/knowledge"
	"github.com/montplusa/minesweeper-agent-game/pkg/ai/naive"
	"github.com/montplusa/minesweeper-agent-game/pkg/ai/random"
	"github.com/montplusa/minesweeper-agent-game/pkg/game"
	"github.com/montplusa/minesweeper-agent-game/pkg/game/debug"
)

// 指定されたディレクトリ内の同じプレフィックスを持つファイルの最大連番を取得する
func findMaxSequenceNumber(dir, prefix string) (int, error) {
	// ディレクトリが存在しない場合は0を返す
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return 0, nil
	}

	files, err := os.ReadDir(dir)
	if err != nil {
		return 0, err
	}

	// プレフィックス_NNNNN.json の形式にマッチする正規表現
	pattern := regexp.MustCompile(fmt.Sprintf(`^%s_(\d{5})\.json$`, regexp.QuoteMeta(prefix)))
	maxSeq := 0

	for _, file := range files {
		if file.IsDir() {
			continue
		}

		matches := pattern.FindStringSubmatch(file.Name())
		if len(matches) == 2 {
			seq, err := strconv.Atoi(matches[1])
			if err != nil {
				continue
			}
			if seq > maxSeq {
				maxSeq = seq
			}
		}
	}

	return maxSeq, nil
}

// ゲームタスクの構造体
type gameTask struct {
	gameIndex int
	seqNum    int
	seed      int64
}

// ゲーム結果の構造体
type gameOutcome struct {
	gameIndex int
	result    game.GameResult
}

// ゲーム設定
type gameConfig struct {
	height    int
	width     int
	mines     int
	agentName string
}

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

// ワーカー関数
func worker(id int, cfg gameConfig, tasks <-chan gameTask, results chan<- gameOutcome, outputDir, outputPrefix string, noOutput bool, wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range tasks {
		// ゲームごとに独立したシードで再現可能にする
		rng := rand.New(rand.NewSource(task.seed))

		board := game.NewBoard(cfg.height, cfg.width, cfg.mines, rng)
		agent, err := newAgent(cfg.agentName, cfg.height, cfg.width, rng)
		if err != nil {
			// 結果の収集側が固定数を待つため、失敗しても必ず報告する
			fmt.Printf("エラー: エージェントの生成に失敗しました: %v\n", err)
			results <- gameOutcome{gameIndex: task.gameIndex}
			continue
		}

		gr := game.NewGameRunner(board, agent)
		result := gr.Run()

		if !noOutput {
			// 結果をJSONに変換（インデントなし）
			jsonData, err := json.Marshal(result)
			if err != nil {
				fmt.Printf("エラー: JSONの変換に失敗しました: %v\n", err)
				continue
			}

			// ファイル名の生成（5桁のゼロ詰め連番）
			filename := filepath.Join(outputDir, fmt.Sprintf("%s_%05d.json", outputPrefix, task.seqNum))

			// ファイルへの書き込み
			err = os.WriteFile(filename, jsonData, 0644)
			if err != nil {
				fmt.Printf("エラー: ファイルの書き込みに失敗しました: %v\n", err)
			}
		}

		results <- gameOutcome{
			gameIndex: task.gameIndex,
			result:    result,
		}

		fmt.Printf("ゲーム %d が完了しました（ワーカー %d）\n", task.gameIndex, id)
	}
}

func main() {
	// コマンドライン引数の解析
	outputDir := flag.String("output", "output", "出力ディレクトリ名")
	outputPrefix := flag.String("output-prefix", "", "出力ファイル名のプレフィックス")
	noOutput := flag.Bool("no-output", false, "出力しない")
	games := flag.Int("games", 1, "実行するゲーム数")
	numWorkers := flag.Int("workers", runtime.NumCPU(), "ワーカー数")
	height := flag.Int("height", 8, "盤面の高さ")
	width := flag.Int("width", 8, "盤面の幅")
	mines := flag.Int("mines", 8, "地雷の数")
	agentName := flag.String("agent", "knowledge", "使用するエージェント (knowledge/naive/random)")
	seed := flag.Int64("seed", 1, "乱数シードの基点")
	verbose := flag.Bool("v", false, "デバッグログを出力する")
	flag.Parse()

	debug.SetVerbose(*verbose)

	// エージェント名を先に検証する（ワーカー内で失敗させない）
	switch *agentName {
	case "knowledge", "naive", "random":
	default:
		fmt.Printf("エラー: 未知のエージェント名: %q\n", *agentName)
		os.Exit(1)
	}

	// 出力プレフィックスが指定されていない場合はエラー
	if !*noOutput && *outputPrefix == "" {
		fmt.Println("エラー: --output-prefix は必須です")
		flag.Usage()
		os.Exit(1)
	}

	if !*noOutput {
		// 出力ディレクトリの作成
		err := os.MkdirAll(*outputDir, 0755)
		if err != nil {
			fmt.Printf("エラー: 出力ディレクトリの作成に失敗しました: %v\n", err)
			os.Exit(1)
		}
	}

	// 既存ファイルの最大連番を取得
	maxSeq, err := findMaxSequenceNumber(*outputDir, *outputPrefix)
	if err != nil {
		fmt.Printf("警告: 既存ファイルの確認中にエラーが発生しました: %v\n", err)
	}
	startSeq := maxSeq + 1
	fmt.Printf("連番 %05d から開始します\n", startSeq)

	fmt.Printf("%s エージェントで %d ゲームを実行します（ワーカー数: %d）\n", *agentName, *games, *numWorkers)

	cfg := gameConfig{
		height:    *height,
		width:     *width,
		mines:     *mines,
		agentName: *agentName,
	}

	// チャネルの作成
	tasks := make(chan gameTask, *games)
	results := make(chan gameOutcome, *games)

	// ワーカープールの作成
	var wg sync.WaitGroup
	for i := 0; i < *numWorkers; i++ {
		wg.Add(1)
		go worker(i, cfg, tasks, results, *outputDir, *outputPrefix, *noOutput, &wg)
	}

	// タスクの送信
	go func() {
		for i := 0; i < *games; i++ {
			tasks <- gameTask{
				gameIndex: i,
				seqNum:    startSeq + i,
				seed:      *seed + int64(i),
			}
		}
		close(tasks)
	}()

	// 結果の収集
	wins := 0
	totalMoves := 0
	for i := 0; i < *games; i++ {
		outcome := <-results
		if outcome.result.Won {
			wins++
		}
		totalMoves += len(outcome.result.Moves)
	}

	// すべてのワーカーの終了を待つ
	wg.Wait()

	fmt.Println("すべてのゲームが完了しました")
	fmt.Printf("勝利数: %d / %d (平均手数: %.1f)\n", wins, *games, float64(totalMoves)/float64(*games))
}
