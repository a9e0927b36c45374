package snake

import (
	"fmt"
	"strings"
)

// Bitmap is the occupancy pattern of one lattice point: the point itself
// plus the four arms leaving it. Each set arm is drawn as a line segment.
type Bitmap uint8

// Bitmap flags, in top/left/center/right/bottom order.
const (
	FlagTop Bitmap = 1 << iota
	FlagLeft
	FlagCenter
	FlagRight
	FlagBottom
)

// Partial patterns combined into lattice points by Grid.Render.
const (
	patternHorizontal  = FlagLeft | FlagCenter | FlagRight
	patternVertical    = FlagTop | FlagCenter | FlagBottom
	patternTopLeft     = FlagCenter | FlagRight | FlagBottom // ┌
	patternTopRight    = FlagLeft | FlagCenter | FlagBottom  // ┐
	patternBottomLeft  = FlagTop | FlagCenter | FlagRight    // └
	patternBottomRight = FlagTop | FlagLeft | FlagCenter     // ┘
)

// NewBitmap returns a bitmap with the given flags set.
func NewBitmap(flags ...Bitmap) Bitmap {
	var b Bitmap
	for _, f := range flags {
		b.Combine(f)
	}
	return b
}

// Combine merges other into b. Flags only ever get set.
func (b *Bitmap) Combine(other Bitmap) {
	*b |= other
}

// Has reports whether every flag in flag is set.
func (b Bitmap) Has(flag Bitmap) bool {
	return b&flag == flag
}

// Glyph returns the two-column box-drawing glyph for b. The second column
// continues the horizontal line towards the next lattice point.
//
// Only the patterns produced by Grid.Render are mapped; anything else is a
// programming error and panics.
func (b Bitmap) Glyph() string {
	switch b {
	case 0:
		return "  "
	case FlagLeft | FlagCenter | FlagRight:
		return "──"
	case FlagTop | FlagCenter | FlagBottom:
		return "│ "
	case FlagTop | FlagCenter | FlagRight:
		return "└─"
	case FlagCenter | FlagRight | FlagBottom:
		return "┌─"
	case FlagLeft | FlagCenter | FlagBottom:
		return "┐ "
	case FlagTop | FlagLeft | FlagCenter:
		return "┘ "
	case FlagTop | FlagLeft | FlagCenter | FlagRight:
		return "┴─"
	case FlagTop | FlagCenter | FlagRight | FlagBottom:
		return "├─"
	case FlagLeft | FlagCenter | FlagRight | FlagBottom:
		return "┬─"
	case FlagTop | FlagLeft | FlagCenter | FlagBottom:
		return "┤ "
	case FlagTop | FlagLeft | FlagCenter | FlagRight | FlagBottom:
		return "┼─"
	}
	panic(fmt.Sprintf("snake: no glyph for bitmap %s", b))
}

// String renders the flags as a compact five-character pattern, e.g. "T.CR.".
func (b Bitmap) String() string {
	var sb strings.Builder
	for i, name := range []byte("TLCRB") {
		if b&(1<<i) != 0 {
			sb.WriteByte(name)
		} else {
			sb.WriteByte('.')
		}
	}
	return sb.String()
}
