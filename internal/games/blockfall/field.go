package blockfall

// Cell is one square of the playing field. Zero means empty; otherwise it
// records the kind of the piece that locked there, offset by one.
type Cell int8

// CellEmpty marks an unoccupied field square.
const CellEmpty Cell = 0

// cellFor returns the field value written when a piece of kind k locks.
func cellFor(k Kind) Cell {
	return Cell(k) + 1
}

// Kind returns the shape kind recorded in an occupied cell.
func (c Cell) Kind() Kind {
	return Kind(c - 1)
}

// Field is the playing well: a grid of cells addressed as rows[y][x] with
// row 0 at the top. Rows above the field (y < 0) are treated as empty so
// pieces may overhang the top edge while falling.
type Field struct {
	width  int
	height int
	rows   [][]Cell
}

// NewField creates an empty field with the given dimensions.
func NewField(width, height int) *Field {
	f := &Field{width: width, height: height}
	f.rows = make([][]Cell, height)
	for y := range f.rows {
		f.rows[y] = make([]Cell, width)
	}
	return f
}

// Width returns the field width in columns.
func (f *Field) Width() int {
	return f.width
}

// Height returns the field height in rows.
func (f *Field) Height() int {
	return f.height
}

// At returns the cell at the given position.
// Coordinates outside the field read as empty.
func (f *Field) At(x, y int) Cell {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return CellEmpty
	}
	return f.rows[y][x]
}

// Collides reports whether the shape, anchored at (x, y), overlaps a wall,
// the floor, or an occupied cell. Cells above the top edge never collide;
// the side walls and the floor always do.
func (f *Field) Collides(shape Matrix, x, y int) bool {
	for r := range shape {
		for c := range shape[r] {
			if shape[r][c] == 0 {
				continue
			}
			fx := x + c
			fy := y + r
			if fx < 0 || fx >= f.width {
				return true
			}
			if fy >= f.height {
				return true
			}
			if fy >= 0 && f.rows[fy][fx] != CellEmpty {
				return true
			}
		}
	}
	return false
}

// Stamp writes the shape into the field as locked cells of kind k.
// Cells outside the field are skipped.
func (f *Field) Stamp(shape Matrix, x, y int, k Kind) {
	for r := range shape {
		for c := range shape[r] {
			if shape[r][c] == 0 {
				continue
			}
			fx := x + c
			fy := y + r
			if fx < 0 || fx >= f.width || fy < 0 || fy >= f.height {
				continue
			}
			f.rows[fy][fx] = cellFor(k)
		}
	}
}

// ClearFullRows removes every fully occupied row, shifts the rows above
// it down, and tops the field up with empty rows. Returns the number of
// rows removed.
func (f *Field) ClearFullRows() int {
	kept := make([][]Cell, 0, f.height)
	cleared := 0
	for y := 0; y < f.height; y++ {
		if f.rowFull(y) {
			cleared++
			continue
		}
		kept = append(kept, f.rows[y])
	}
	if cleared == 0 {
		return 0
	}

	rows := make([][]Cell, 0, f.height)
	for i := 0; i < cleared; i++ {
		rows = append(rows, make([]Cell, f.width))
	}
	f.rows = append(rows, kept...)
	return cleared
}

// rowFull reports whether every cell in the row is occupied.
func (f *Field) rowFull(y int) bool {
	for x := 0; x < f.width; x++ {
		if f.rows[y][x] == CellEmpty {
			return false
		}
	}
	return true
}

// Rows returns a deep copy of the field contents.
func (f *Field) Rows() [][]Cell {
	out := make([][]Cell, f.height)
	for y := range f.rows {
		out[y] = make([]Cell, f.width)
		copy(out[y], f.rows[y])
	}
	return out
}
