package blockfall

// Kind identifies one of the seven tetromino shapes.
type Kind int

const (
	KindI Kind = iota
	KindJ
	KindL
	KindO
	KindS
	KindT
	KindZ
)

// KindCount is the number of distinct shapes in the catalog.
const KindCount = 7

// String returns the single-letter name of the shape.
func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	case KindO:
		return "O"
	case KindS:
		return "S"
	case KindT:
		return "T"
	case KindZ:
		return "Z"
	default:
		return "?"
	}
}

// Matrix is a binary occupancy grid holding one orientation of a shape,
// trimmed to the shape's bounding box. Non-zero entries are occupied.
// Rotating a non-square matrix swaps its row and column counts.
type Matrix [][]int

// Clone returns a deep copy of the matrix.
func (m Matrix) Clone() Matrix {
	out := make(Matrix, len(m))
	for y, row := range m {
		out[y] = make([]int, len(row))
		copy(out[y], row)
	}
	return out
}

// Rows returns the number of matrix rows.
func (m Matrix) Rows() int {
	return len(m)
}

// Cols returns the number of matrix columns.
func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// spawnShapes holds the spawn orientation of each shape. Indexed by Kind.
var spawnShapes = [KindCount]Matrix{
	KindI: {
		{1, 1, 1, 1},
	},
	KindJ: {
		{1, 0, 0},
		{1, 1, 1},
	},
	KindL: {
		{0, 0, 1},
		{1, 1, 1},
	},
	KindO: {
		{1, 1},
		{1, 1},
	},
	KindS: {
		{0, 1, 1},
		{1, 1, 0},
	},
	KindT: {
		{1, 1, 1},
		{0, 1, 0},
	},
	KindZ: {
		{1, 1, 0},
		{0, 1, 1},
	},
}

// SpawnShape returns a copy of the spawn orientation for the given kind.
// The catalog itself is never handed out, so callers may mutate freely.
func SpawnShape(k Kind) Matrix {
	return spawnShapes[k].Clone()
}

// rotateCW returns the matrix rotated 90 degrees clockwise.
func rotateCW(m Matrix) Matrix {
	rows, cols := m.Rows(), m.Cols()
	out := make(Matrix, cols)
	for y := range out {
		out[y] = make([]int, rows)
	}
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			out[x][rows-1-y] = m[y][x]
		}
	}
	return out
}

// rotateCCW returns the matrix rotated 90 degrees counter-clockwise.
func rotateCCW(m Matrix) Matrix {
	rows, cols := m.Rows(), m.Cols()
	out := make(Matrix, cols)
	for y := range out {
		out[y] = make([]int, rows)
	}
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			out[cols-1-x][y] = m[y][x]
		}
	}
	return out
}

// Piece is a shape in play: its kind, current orientation, and the field
// position of the matrix's top-left corner. Rotation keeps the anchor.
type Piece struct {
	Kind  Kind
	Cells Matrix
	X     int
	Y     int
}
