package forest

import "fmt"

// GridSize is the width and height of the forest.
const GridSize = 5

// Source is the random source used to pick squares. *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Coord is a square in the forest.
type Coord struct {
	X, Y uint8
}

// NewCoord creates a coordinate.
func NewCoord(x, y uint8) Coord {
	return Coord{X: x, Y: y}
}

// RandomCoord returns a uniformly random square of the forest.
func RandomCoord(rng Source) Coord {
	return Coord{
		X: uint8(rng.Intn(GridSize)),
		Y: uint8(rng.Intn(GridSize)),
	}
}

// InBounds returns true if the coordinate lies inside the forest.
func (c Coord) InBounds() bool {
	return c.X < GridSize && c.Y < GridSize
}

// String formats the coordinate as "(x,y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Each calls fn for every square in row-major order.
func Each(fn func(c Coord)) {
	for y := uint8(0); y < GridSize; y++ {
		for x := uint8(0); x < GridSize; x++ {
			fn(Coord{X: x, Y: y})
		}
	}
}
