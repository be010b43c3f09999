// Package raster provides shape rasterizers that emit integer pixel
// offsets relative to an implicit origin.
//
// Primitives never write pixels themselves. Each takes an emit callback
// receiving (dx, dy) offsets; the caller translates offsets into world
// or buffer coordinates and performs the final bounds check. The same
// primitive therefore serves both entity drawing (world space) and
// cursor overlays (buffer space).
package raster

// Emit receives one pixel offset relative to the shape's origin.
type Emit func(dx, dy int)

// Shape selects a cursor/spawn outline primitive.
type Shape uint8

const (
	CircleOutlineShape Shape = iota
	CircleFillShape
	SquareShape
	shapeCount
)

func (s Shape) String() string {
	switch s {
	case CircleOutlineShape:
		return "circle"
	case CircleFillShape:
		return "disc"
	case SquareShape:
		return "square"
	}
	return "unknown"
}

// Next cycles to the following shape, wrapping around.
func (s Shape) Next() Shape { return (s + 1) % shapeCount }

// Draw rasterizes the shape at the given size through emit.
func (s Shape) Draw(size int, emit Emit) {
	switch s {
	case CircleOutlineShape:
		CircleOutline(size, emit)
	case CircleFillShape:
		CircleFill(size, emit)
	default:
		SquareCentered(size, emit)
	}
}

// CircleOutline emits the offsets of a midpoint circle of the given
// radius. Starting at (x=0, y=r) with decision variable d = 3 - 2r, it
// emits the 8-way symmetric points each step, advancing x every
// iteration and stepping y down when d >= 0.
func CircleOutline(radius int, emit Emit) {
	x, y := 0, radius
	d := 3 - 2*radius

	octants := func(x, y int) {
		emit(x, y)
		emit(-x, y)
		emit(x, -y)
		emit(-x, -y)
		emit(y, x)
		emit(-y, x)
		emit(y, -x)
		emit(-y, -x)
	}

	octants(x, y)
	for x < y {
		if d < 0 {
			d += 4*x + 6
		} else {
			y--
			d += 4*(x-y) + 10
		}
		x++
		octants(x, y)
	}
}

// CircleFill emits a gap-free disk using the same stepping as
// [CircleOutline] but replacing the symmetric points with horizontal
// spans -x..x per y level (plus the transposed spans).
func CircleFill(radius int, emit Emit) {
	x, y := 0, radius
	d := 3 - 2*radius

	span := func(x1, x2, y int) {
		for x := x1; x < x2; x++ {
			emit(x, y)
		}
	}
	slices := func(x, y int) {
		span(-x, x, y)
		span(-x, x, -y)
		span(-y, y, x)
		span(-y, y, -x)
	}

	slices(x, y)
	for x < y {
		if d < 0 {
			d += 4*x + 6
		} else {
			y--
			d += 4*(x-y) + 10
		}
		x++
		slices(x, y)
	}
}

// SquareCentered emits every offset in [-size/2, size/2) on both axes.
func SquareCentered(size int, emit Emit) {
	half := size / 2
	for dy := -half; dy < half; dy++ {
		for dx := -half; dx < half; dx++ {
			emit(dx, dy)
		}
	}
}
