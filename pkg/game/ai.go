package game

// AI はマインスイーパー用エージェントのインターフェース
type AI interface {
	// エージェント名を返す
	Name() string
	// 開いたマスとその近傍の地雷数の観測を取り込む
	AddKnowledge(cell Cell, count int)
	// 地雷と確定しているマスの集合を返す
	FlagCandidates() []Cell
	// 安全と確定している未着手マスを1つ提案する（なければ ok=false）
	MakeSafeMove() (cell Cell, ok bool)
	// 地雷でも着手済みでもないマスをランダムに提案する（なければ ok=false）
	MakeRandomMove() (cell Cell, ok bool)
}
