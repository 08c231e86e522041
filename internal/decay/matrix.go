package decay

// Matrix is a square coefficient buffer stored row-major in one slice.
// Row i holds the exponential-term coefficients of chain member i; only
// columns k <= i are populated.
type Matrix struct {
	n    int
	data []float64
}

func NewMatrix(n int) *Matrix {
	return &Matrix{n: n, data: make([]float64, n*n)}
}

func (m *Matrix) Size() int                   { return m.n }
func (m *Matrix) At(row, col int) float64     { return m.data[row*m.n+col] }
func (m *Matrix) Set(row, col int, v float64) { m.data[row*m.n+col] = v }

func (m *Matrix) Clone() *Matrix {
	c := &Matrix{n: m.n, data: make([]float64, len(m.data))}
	copy(c.data, m.data)
	return c
}
