package dice

import (
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		expr    string
		want    Expr
		wantErr bool
	}{
		{expr: "1d3", want: Expr{Count: 1, Sides: 3}},
		{expr: "2d6+1", want: Expr{Count: 2, Sides: 6, Modifier: 1}},
		{expr: " 3D4 - 2 ", want: Expr{Count: 3, Sides: 4, Modifier: -2}},
		{expr: "5", want: Expr{Modifier: 5}},
		{expr: "", wantErr: true},
		{expr: "0d6", wantErr: true},
		{expr: "1d0", wantErr: true},
		{expr: "d6", wantErr: true},
		{expr: "1d6kh1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := Parse(tt.expr)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) expected error, got %+v", tt.expr, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.expr, err)
			}
			if got.Count != tt.want.Count || got.Sides != tt.want.Sides || got.Modifier != tt.want.Modifier {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.expr, got, tt.want)
			}
			if got.String() != tt.expr {
				t.Errorf("String() = %q, want %q", got.String(), tt.expr)
			}
		})
	}
}

func TestRollCoversWholeRange(t *testing.T) {
	r := NewSeeded(7)
	e := MustParse("1d3")

	seen := map[int]int{}
	for i := 0; i < 3000; i++ {
		v := r.Roll(e)
		if v < e.Min() || v > e.Max() {
			t.Fatalf("Roll(1d3) = %d, outside [%d, %d]", v, e.Min(), e.Max())
		}
		seen[v]++
	}

	for _, face := range []int{1, 2, 3} {
		if seen[face] == 0 {
			t.Errorf("face %d never rolled in 3000 tries", face)
		}
	}
}

func TestRangeBounds(t *testing.T) {
	r := NewSeeded(42)

	for i := 0; i < 10000; i++ {
		if v := r.Range(0.2, 0.8); v < 0.2 || v >= 0.8 {
			t.Fatalf("Range(0.2, 0.8) = %v", v)
		}
		if v := r.Spread(5); v < -5 || v >= 5 {
			t.Fatalf("Spread(5) = %v", v)
		}
		if v := r.Intn(6); v < 0 || v >= 6 {
			t.Fatalf("Intn(6) = %v", v)
		}
	}
}

func TestSeededRollerIsReproducible(t *testing.T) {
	a := NewSeeded(99)
	b := NewSeeded(99)

	for i := 0; i < 100; i++ {
		if a.Float() != b.Float() {
			t.Fatalf("sequences diverged at sample %d", i)
		}
	}
}

func TestRollMatchesIntn(t *testing.T) {
	a := NewSeeded(7)
	b := NewSeeded(7)
	expr := MustParse("2d6+1")

	for i := 0; i < 100; i++ {
		want := b.Intn(6) + b.Intn(6) + 3
		if got := a.Roll(expr); got != want {
			t.Fatalf("roll %d: got %d, want %d", i, got, want)
		}
	}
}
