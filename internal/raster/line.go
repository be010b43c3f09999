package raster

// Point is an integer pixel position in whatever space the caller is
// working in; Line does not interpret it.
type Point struct {
	X, Y int
}

// Line emits every pixel of the Bresenham line from start to end,
// inclusive of both endpoints. Offsets passed to emit are absolute in
// the caller's space, matching the endpoints it supplied.
func Line(start, end Point, emit Emit) {
	dx := abs(end.X - start.X)
	dy := -abs(end.Y - start.Y)
	sx, sy := 1, 1
	if start.X >= end.X {
		sx = -1
	}
	if start.Y >= end.Y {
		sy = -1
	}
	err := dx + dy

	x, y := start.X, start.Y
	for {
		emit(x, y)
		if x == end.X && y == end.Y {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
