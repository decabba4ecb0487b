package blockfall

import (
	"reflect"
	"testing"
)

// occupyRow marks the listed columns of a row as locked cells.
func occupyRow(f *Field, y int, cols ...int) {
	for _, x := range cols {
		f.rows[y][x] = cellFor(KindO)
	}
}

// fillRow marks every column of a row as locked.
func fillRow(f *Field, y int) {
	for x := 0; x < f.width; x++ {
		f.rows[y][x] = cellFor(KindI)
	}
}

func TestCollidesWalls(t *testing.T) {
	f := NewField(10, 20)
	o := SpawnShape(KindO)

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"inside", 4, 5, false},
		{"left wall", -1, 5, true},
		{"flush left", 0, 5, false},
		{"flush right", 8, 5, false},
		{"right wall", 9, 5, true},
		{"floor", 4, 19, true},
		{"flush floor", 4, 18, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.Collides(o, tt.x, tt.y); got != tt.want {
				t.Errorf("Collides(O, %d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestCollidesAboveTop(t *testing.T) {
	f := NewField(10, 20)

	// A vertical I hanging over the top edge only collides through its
	// visible cells.
	vertical := rotateCW(SpawnShape(KindI))
	if f.Collides(vertical, 4, -3) {
		t.Error("piece overhanging an empty top edge should not collide")
	}

	// Occupied cells at the top do collide with the visible part.
	occupyRow(f, 0, 4)
	if !f.Collides(vertical, 4, -3) {
		t.Error("overhanging piece should collide with an occupied top cell")
	}

	// Side walls still apply above the top edge.
	if !f.Collides(vertical, -1, -3) {
		t.Error("left wall should block cells above the top edge")
	}
}

func TestCollidesStack(t *testing.T) {
	f := NewField(10, 20)
	occupyRow(f, 19, 4, 5)

	o := SpawnShape(KindO)
	if !f.Collides(o, 4, 18) {
		t.Error("piece should collide with locked cells")
	}
	if f.Collides(o, 6, 18) {
		t.Error("piece beside the stack should not collide")
	}
}

func TestStampRecordsKind(t *testing.T) {
	f := NewField(10, 20)
	s := SpawnShape(KindS)
	f.Stamp(s, 3, 10, KindS)

	// S spawn shape: row 0 has cells at cols 1,2; row 1 at cols 0,1
	wantOccupied := [][2]int{{4, 10}, {5, 10}, {3, 11}, {4, 11}}
	for _, pos := range wantOccupied {
		cell := f.At(pos[0], pos[1])
		if cell == CellEmpty {
			t.Errorf("cell (%d,%d) should be occupied", pos[0], pos[1])
			continue
		}
		if cell.Kind() != KindS {
			t.Errorf("cell (%d,%d) records kind %s, want S", pos[0], pos[1], cell.Kind())
		}
	}
	if f.At(3, 10) != CellEmpty {
		t.Error("empty shape cell should not be stamped")
	}
}

func TestStampClipsOutOfRange(t *testing.T) {
	f := NewField(10, 20)
	vertical := rotateCW(SpawnShape(KindI))

	// Two cells above the top, two inside
	f.Stamp(vertical, 4, -2, KindI)

	if f.At(4, 0) == CellEmpty || f.At(4, 1) == CellEmpty {
		t.Error("visible cells should be stamped")
	}
	for y := 2; y < 20; y++ {
		if f.At(4, y) != CellEmpty {
			t.Errorf("unexpected stamp at (4,%d)", y)
		}
	}
}

func TestClearFullRowsNone(t *testing.T) {
	f := NewField(10, 20)
	occupyRow(f, 19, 0, 1, 2, 3)

	if got := f.ClearFullRows(); got != 0 {
		t.Errorf("ClearFullRows() = %d, want 0", got)
	}
	if f.At(0, 19) == CellEmpty {
		t.Error("partial row should be untouched")
	}
}

func TestClearFullRowsSingle(t *testing.T) {
	f := NewField(10, 4)
	occupyRow(f, 2, 0, 9)
	fillRow(f, 3)

	if got := f.ClearFullRows(); got != 1 {
		t.Fatalf("ClearFullRows() = %d, want 1", got)
	}
	if f.Height() != 4 {
		t.Fatalf("field height changed to %d", f.Height())
	}

	// The partial row above slides into the bottom row
	if f.At(0, 3) == CellEmpty || f.At(9, 3) == CellEmpty {
		t.Error("row above the cleared row should shift down")
	}
	for x := 1; x < 9; x++ {
		if f.At(x, 3) != CellEmpty {
			t.Errorf("cell (%d,3) should be empty after shift", x)
		}
	}
	// A fresh empty row appears on top
	for x := 0; x < 10; x++ {
		if f.At(x, 0) != CellEmpty {
			t.Errorf("top row should be empty, cell (%d,0) occupied", x)
		}
	}
}

func TestClearFullRowsNonContiguous(t *testing.T) {
	f := NewField(10, 6)
	fillRow(f, 2)
	occupyRow(f, 3, 5)
	fillRow(f, 4)
	occupyRow(f, 5, 7)

	if got := f.ClearFullRows(); got != 2 {
		t.Fatalf("ClearFullRows() = %d, want 2", got)
	}

	// Survivors keep their order: the col-5 cell lands above the col-7 cell
	want := NewField(10, 6)
	occupyRow(want, 4, 5)
	occupyRow(want, 5, 7)
	if !reflect.DeepEqual(f.Rows(), want.Rows()) {
		t.Errorf("field after clear = %v, want %v", f.Rows(), want.Rows())
	}
}

func TestClearFullRowsAll(t *testing.T) {
	f := NewField(10, 4)
	for y := 0; y < 4; y++ {
		fillRow(f, y)
	}

	if got := f.ClearFullRows(); got != 4 {
		t.Fatalf("ClearFullRows() = %d, want 4", got)
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 10; x++ {
			if f.At(x, y) != CellEmpty {
				t.Errorf("cell (%d,%d) should be empty", x, y)
			}
		}
	}
}

func TestRowsReturnsCopy(t *testing.T) {
	f := NewField(10, 4)
	rows := f.Rows()
	rows[0][0] = cellFor(KindZ)

	if f.At(0, 0) != CellEmpty {
		t.Error("mutating Rows() result leaked into the field")
	}
}
