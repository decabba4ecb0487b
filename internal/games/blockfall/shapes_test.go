package blockfall

import (
	"reflect"
	"testing"
)

func TestCatalogShapes(t *testing.T) {
	tests := []struct {
		kind Kind
		rows int
		cols int
	}{
		{KindI, 1, 4},
		{KindJ, 2, 3},
		{KindL, 2, 3},
		{KindO, 2, 2},
		{KindS, 2, 3},
		{KindT, 2, 3},
		{KindZ, 2, 3},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			shape := SpawnShape(tt.kind)
			if shape.Rows() != tt.rows || shape.Cols() != tt.cols {
				t.Errorf("shape %s is %dx%d, want %dx%d",
					tt.kind, shape.Rows(), shape.Cols(), tt.rows, tt.cols)
			}

			// Every tetromino covers exactly four cells
			occupied := 0
			for _, row := range shape {
				for _, c := range row {
					if c != 0 {
						occupied++
					}
				}
			}
			if occupied != 4 {
				t.Errorf("shape %s covers %d cells, want 4", tt.kind, occupied)
			}
		})
	}
}

func TestSpawnShapeReturnsCopy(t *testing.T) {
	a := SpawnShape(KindT)
	a[0][0] = 0

	b := SpawnShape(KindT)
	if b[0][0] != 1 {
		t.Error("mutating a SpawnShape result leaked into the catalog")
	}
}

func TestRotateCWKnown(t *testing.T) {
	j := SpawnShape(KindJ)
	got := rotateCW(j)
	want := Matrix{
		{1, 1},
		{1, 0},
		{1, 0},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("rotateCW(J) = %v, want %v", got, want)
	}

	i := SpawnShape(KindI)
	got = rotateCW(i)
	want = Matrix{{1}, {1}, {1}, {1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("rotateCW(I) = %v, want %v", got, want)
	}
}

func TestRotateCCWKnown(t *testing.T) {
	j := SpawnShape(KindJ)
	got := rotateCCW(j)
	want := Matrix{
		{0, 1},
		{0, 1},
		{1, 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("rotateCCW(J) = %v, want %v", got, want)
	}
}

func TestRotateFullCycle(t *testing.T) {
	for k := Kind(0); k < KindCount; k++ {
		shape := SpawnShape(k)

		cw := shape
		for i := 0; i < 4; i++ {
			cw = rotateCW(cw)
		}
		if !reflect.DeepEqual(cw, shape) {
			t.Errorf("four CW rotations of %s changed the shape: %v", k, cw)
		}

		ccw := shape
		for i := 0; i < 4; i++ {
			ccw = rotateCCW(ccw)
		}
		if !reflect.DeepEqual(ccw, shape) {
			t.Errorf("four CCW rotations of %s changed the shape: %v", k, ccw)
		}
	}
}

func TestRotateCCWUndoesCW(t *testing.T) {
	for k := Kind(0); k < KindCount; k++ {
		shape := SpawnShape(k)
		if got := rotateCCW(rotateCW(shape)); !reflect.DeepEqual(got, shape) {
			t.Errorf("CCW(CW(%s)) = %v, want original %v", k, got, shape)
		}
	}
}
