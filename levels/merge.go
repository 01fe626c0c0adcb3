package levels

// Rect is a block of tiles in grid coordinates, rows counted from the top.
type Rect struct {
	X, Y int
	W, H int
}

// MergeSolidRects covers the filled tiles of layer with as few rectangles as
// a greedy scan finds: each unvisited tile grows right as far as it can, then
// down while whole rows of that width stay filled.
func MergeSolidRects(layer []int, width, height int) []Rect {
	if width <= 0 || height <= 0 {
		return nil
	}
	visited := make([]bool, width*height)
	index := func(x, y int) int { return y*width + x }
	filled := func(idx int) bool {
		return idx < len(layer) && !visited[idx] && layer[idx] > 0
	}

	var rects []Rect
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !filled(index(x, y)) {
				continue
			}

			w := 0
			for x2 := x; x2 < width && filled(index(x2, y)); x2++ {
				w++
			}

			h := 1
			for y2 := y + 1; y2 < height; y2++ {
				rowOK := true
				for x2 := x; x2 < x+w; x2++ {
					if !filled(index(x2, y2)) {
						rowOK = false
						break
					}
				}
				if !rowOK {
					break
				}
				h++
			}

			for yy := y; yy < y+h; yy++ {
				for xx := x; xx < x+w; xx++ {
					visited[index(xx, yy)] = true
				}
			}
			rects = append(rects, Rect{X: x, Y: y, W: w, H: h})
		}
	}
	return rects
}
