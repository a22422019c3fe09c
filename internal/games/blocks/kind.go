package blocks

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Kind identifies one of the seven tetromino shapes.
type Kind int

// Shape kinds, in the order of the classic Tk layout.
const (
	Square Kind = iota
	Line
	RightL
	LeftL
	RightWedge
	LeftWedge
	TWedge
)

const kindCount = 7

// shape is the static definition of a kind in its spawn orientation.
type shape struct {
	name    string
	color   core.Color
	offsets [4]Cell
}

var shapes = [kindCount]shape{
	Square:     {"square", core.ColorYellow, [4]Cell{{0, 0}, {1, 0}, {0, 1}, {1, 1}}},
	Line:       {"line", core.ColorBrightCyan, [4]Cell{{0, 0}, {1, 0}, {2, 0}, {3, 0}}},
	RightL:     {"right-l", core.ColorOrange, [4]Cell{{2, 0}, {0, 1}, {1, 1}, {2, 1}}},
	LeftL:      {"left-l", core.ColorBlue, [4]Cell{{0, 0}, {0, 1}, {1, 1}, {2, 1}}},
	RightWedge: {"right-wedge", core.ColorGreen, [4]Cell{{0, 1}, {1, 1}, {1, 0}, {2, 0}}},
	LeftWedge:  {"left-wedge", core.ColorRed, [4]Cell{{0, 0}, {1, 0}, {1, 1}, {2, 1}}},
	TWedge:     {"t-wedge", core.ColorPurple, [4]Cell{{1, 0}, {0, 1}, {1, 1}, {2, 1}}},
}

// Kinds returns all kinds in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, kindCount)
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}

// RandomKind picks a kind uniformly at random.
func RandomKind(rng *rand.Rand) Kind {
	return Kind(rng.Intn(kindCount))
}

// ParseKind resolves a kind from its name (e.g. "t-wedge").
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, s := range shapes {
		if s.name == name {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("blocks: unknown piece kind %q", name)
}

func (k Kind) valid() bool {
	return k >= 0 && k < kindCount
}

// String returns the kind name.
func (k Kind) String() string {
	if !k.valid() {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return shapes[k].name
}

// Color returns the color locked cells of this kind are drawn with.
func (k Kind) Color() core.Color {
	if !k.valid() {
		return core.ColorDefault
	}
	return shapes[k].color
}

// Offsets returns the spawn offsets of the kind relative to its origin.
func (k Kind) Offsets() [4]Cell {
	return shapes[k].offsets
}
