package chess

import "testing"

func TestColourOpposite(t *testing.T) {
	if White.Opposite() != Black || Black.Opposite() != White {
		t.Error("Opposite() is not an involution")
	}
	for _, c := range []Colour{White, Black} {
		if c.Opposite().Opposite() != c {
			t.Errorf("%v.Opposite().Opposite() = %v", c, c.Opposite().Opposite())
		}
	}
}

func TestParseColour(t *testing.T) {
	tests := []struct {
		in     string
		want   Colour
		wantOK bool
	}{
		{"White", White, true},
		{"Black", Black, true},
		{"white", Black, false},
		{"", Black, false},
	}
	for _, tt := range tests {
		got, ok := ParseColour(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseColour(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestInBounds(t *testing.T) {
	for row := -3; row < 11; row++ {
		for col := -3; col < 11; col++ {
			want := row >= 0 && row < 8 && col >= 0 && col < 8
			if got := Sq(row, col).InBounds(); got != want {
				t.Errorf("Sq(%d, %d).InBounds() = %v; want %v", row, col, got, want)
			}
		}
	}
}

func TestGlyphs(t *testing.T) {
	types := []PieceType{Pawn, Rook, Knight, Bishop, Queen, King}
	seen := make(map[string]bool)
	for _, pt := range types {
		for _, c := range []Colour{White, Black} {
			p := Piece{Type: pt, Colour: c}
			g := p.String()
			if g == EmptyGlyph {
				t.Errorf("%v %v has no glyph", c, pt)
			}
			if seen[g] {
				t.Errorf("glyph %q used twice", g)
			}
			seen[g] = true

			back, ok := ParseGlyph(g)
			if !ok || back != p {
				t.Errorf("ParseGlyph(%q) = %v, %v; want %v, true", g, back, ok, p)
			}
		}
	}

	if got := (Piece{}).String(); got != EmptyGlyph {
		t.Errorf("empty square String() = %q; want %q", got, EmptyGlyph)
	}
	if _, ok := ParseGlyph("X"); ok {
		t.Error(`ParseGlyph("X") = true; want false`)
	}
}

func TestPieceLetter(t *testing.T) {
	tests := []struct {
		piece Piece
		want  byte
	}{
		{W(King), 'K'},
		{B(King), 'k'},
		{W(Knight), 'N'},
		{B(Pawn), 'p'},
		{Piece{}, '.'},
	}
	for _, tt := range tests {
		if got := tt.piece.Letter(); got != tt.want {
			t.Errorf("%v.Letter() = %c; want %c", tt.piece, got, tt.want)
		}
	}
}

func TestPieceIs(t *testing.T) {
	if !B(Queen).Is(Queen, Black) {
		t.Error("B(Queen).Is(Queen, Black) = false")
	}
	if B(Queen).Is(Queen, White) {
		t.Error("B(Queen).Is(Queen, White) = true")
	}
	if (Piece{}).Is(Empty, Black) {
		t.Error("empty square reports itself as a piece")
	}
}
