package snake

import "testing"

func TestBitmapGlyph(t *testing.T) {
	tests := []struct {
		name     string
		bitmap   Bitmap
		expected string
	}{
		{"empty", 0, "  "},
		{"horizontal", patternHorizontal, "──"},
		{"vertical", patternVertical, "│ "},
		{"bottom left", patternBottomLeft, "└─"},
		{"top left", patternTopLeft, "┌─"},
		{"top right", patternTopRight, "┐ "},
		{"bottom right", patternBottomRight, "┘ "},
		{"tee up", NewBitmap(FlagTop, FlagLeft, FlagCenter, FlagRight), "┴─"},
		{"tee right", NewBitmap(FlagTop, FlagCenter, FlagRight, FlagBottom), "├─"},
		{"tee down", NewBitmap(FlagLeft, FlagCenter, FlagRight, FlagBottom), "┬─"},
		{"tee left", NewBitmap(FlagTop, FlagLeft, FlagCenter, FlagBottom), "┤ "},
		{"cross", NewBitmap(FlagTop, FlagLeft, FlagCenter, FlagRight, FlagBottom), "┼─"},
		{"corners merge into cross", patternTopLeft | patternBottomRight, "┼─"},
		{"corners merge into tee", patternTopLeft | patternTopRight, "┬─"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.bitmap.Glyph(); got != tc.expected {
				t.Errorf("Glyph() of %s = %q, expected %q", tc.bitmap, got, tc.expected)
			}
		})
	}
}

func TestBitmapGlyphPanicsOnUnknownPattern(t *testing.T) {
	patterns := []Bitmap{
		FlagCenter,
		FlagTop,
		FlagLeft | FlagRight,
		FlagTop | FlagBottom,
		FlagTop | FlagLeft | FlagRight | FlagBottom,
	}

	for _, b := range patterns {
		t.Run(b.String(), func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("Glyph() of %s should panic", b)
				}
			}()
			_ = b.Glyph()
		})
	}
}

func TestBitmapCombine(t *testing.T) {
	var b Bitmap
	b.Combine(FlagTop)
	b.Combine(FlagTop | FlagCenter)

	if !b.Has(FlagTop | FlagCenter) {
		t.Errorf("Has(top|center) = false for %s", b)
	}
	if b.Has(FlagLeft) {
		t.Errorf("Has(left) = true for %s", b)
	}
	if got := b.String(); got != "T.C.." {
		t.Errorf("String() = %q, expected %q", got, "T.C..")
	}
}
