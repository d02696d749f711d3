package court

import (
	"reflect"
	"testing"
)

func TestPrimitivesCount(t *testing.T) {
	if got := len(Primitives(false)); got != 11 {
		t.Errorf("Primitives(false) returned %d primitives, expected 11", got)
	}
	if got := len(Primitives(true)); got != 12 {
		t.Errorf("Primitives(true) returned %d primitives, expected 12", got)
	}
}

func TestPrimitivesCatalogue(t *testing.T) {
	byName := make(map[string]Primitive)
	for _, p := range Primitives(true) {
		byName[p.Name] = p
	}

	tests := []struct {
		name     string
		expected Primitive
	}{
		{
			name:     "hoop",
			expected: Primitive{Name: "hoop", Kind: KindCircle, Radius: 7.5},
		},
		{
			name:     "backboard",
			expected: Primitive{Name: "backboard", Kind: KindSegment, From: Point{-30, -12.5}, To: Point{30, -12.5}},
		},
		{
			name:     "paint outer",
			expected: Primitive{Name: "paint outer", Kind: KindRect, Corner: Point{-80, -47.5}, W: 160, H: 190},
		},
		{
			name:     "paint inner",
			expected: Primitive{Name: "paint inner", Kind: KindRect, Corner: Point{-60, -47.5}, W: 120, H: 190},
		},
		{
			name:     "free-throw circle",
			expected: Primitive{Name: "free-throw circle", Kind: KindCircle, Center: Point{0, 142.5}, Radius: 60},
		},
		{
			name:     "restricted area",
			expected: Primitive{Name: "restricted area", Kind: KindArc, Radius: 40, Start: 0, Sweep: 180},
		},
		{
			name:     "corner three left",
			expected: Primitive{Name: "corner three left", Kind: KindSegment, From: Point{-220, -47.5}, To: Point{-220, 92.5}},
		},
		{
			name:     "corner three right",
			expected: Primitive{Name: "corner three right", Kind: KindSegment, From: Point{220, -47.5}, To: Point{220, 92.5}},
		},
		{
			name:     "three-point arc",
			expected: Primitive{Name: "three-point arc", Kind: KindArc, Radius: 237.5, Start: 22, Sweep: 136},
		},
		{
			name:     "center circle outer",
			expected: Primitive{Name: "center circle outer", Kind: KindArc, Center: Point{0, 422.5}, Radius: 60, Start: 180, Sweep: 180},
		},
		{
			name:     "center circle inner",
			expected: Primitive{Name: "center circle inner", Kind: KindArc, Center: Point{0, 422.5}, Radius: 20, Start: 180, Sweep: 180},
		},
		{
			name:     "boundary",
			expected: Primitive{Name: "boundary", Kind: KindRect, Corner: Point{-250, -47.5}, W: 500, H: 470},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := byName[tt.name]
			if !ok {
				t.Fatalf("catalogue has no primitive named %q", tt.name)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("primitive %q = %+v, expected %+v", tt.name, got, tt.expected)
			}
		})
	}
}

func TestPrimitivesIdempotent(t *testing.T) {
	first := Primitives(false)
	second := Primitives(false)
	if !reflect.DeepEqual(first, second) {
		t.Error("successive Primitives(false) calls returned different catalogues")
	}

	// Mutating a returned slice must not leak into later calls.
	first[0].Radius = 999
	first = first[:3]
	third := Primitives(false)
	if !reflect.DeepEqual(second, third) {
		t.Error("catalogue changed after a caller mutated a returned slice")
	}
}
