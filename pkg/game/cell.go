package game

// Cell は盤面上の1マスを表す座標（値として比較可能）
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// InBounds は盤面サイズ内の座標かどうかを返す
func (c Cell) InBounds(height, width int) bool {
	return 0 <= c.Row && c.Row < height && 0 <= c.Col && c.Col < width
}

// Neighbors は盤面内に収まる近傍マス（最大8個）を返す
// 自分自身は含まない
func (c Cell) Neighbors(height, width int) []Cell {
	neighbors := make([]Cell, 0, 8)
	for row := c.Row - 1; row <= c.Row+1; row++ {
		for col := c.Col - 1; col <= c.Col+1; col++ {
			n := Cell{Row: row, Col: col}
			if n == c || !n.InBounds(height, width) {
				continue
			}
			neighbors = append(neighbors, n)
		}
	}
	return neighbors
}
