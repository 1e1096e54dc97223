package matrix

import "fmt"

// New2D allocates a rows x cols matrix filled with fill.
func New2D[T any](rows, cols int, fill T) [][]T {
	rows, cols = max(rows, 0), max(cols, 0)

	out := make([][]T, rows)
	for r := range out {
		out[r] = make([]T, cols)
		for c := range out[r] {
			out[r][c] = fill
		}
	}

	return out
}

// New3D allocates a d1 x d2 x d3 array filled with fill.
func New3D[T any](d1, d2, d3 int, fill T) [][][]T {
	d1 = max(d1, 0)

	out := make([][][]T, d1)
	for i := range out {
		out[i] = New2D(d2, d3, fill)
	}

	return out
}

// Resize returns a slice of length n keeping the overlapping prefix of prev
// and filling new slots with fill.
func Resize[T any](prev []T, n int, fill T) []T {
	n = max(n, 0)

	out := make([]T, n)
	for i := range out {
		if i < len(prev) {
			out[i] = prev[i]
			continue
		}
		out[i] = fill
	}

	return out
}

// Resize2D copies the overlapping region of prev into a fresh rows x cols
// matrix. Ragged rows copy as far as they reach.
func Resize2D[T any](prev [][]T, rows, cols int, fill T) [][]T {
	out := New2D(rows, cols, fill)

	for r := 0; r < min(len(out), len(prev)); r++ {
		copy(out[r], prev[r][:min(cols, len(prev[r]))])
	}

	return out
}

// Resize3D is Resize2D one dimension up.
func Resize3D[T any](prev [][][]T, d1, d2, d3 int, fill T) [][][]T {
	out := New3D(d1, d2, d3, fill)

	for i := 0; i < min(len(out), len(prev)); i++ {
		for j := 0; j < min(len(out[i]), len(prev[i])); j++ {
			copy(out[i][j], prev[i][j][:min(d3, len(prev[i][j]))])
		}
	}

	return out
}

// ResizeLabels keeps existing labels and names new slots "<prefix> <n>".
func ResizeLabels(prev []string, n int, prefix string) []string {
	n = max(n, 0)

	out := make([]string, n)
	for i := range out {
		if i < len(prev) {
			out[i] = prev[i]
			continue
		}
		out[i] = fmt.Sprintf("%s %d", prefix, i+1)
	}

	return out
}

// Transpose swaps rows and columns. It assumes a rectangular matrix sized
// by its first row; an empty matrix transposes to an empty one.
func Transpose[T any](m [][]T) [][]T {
	if len(m) == 0 || len(m[0]) == 0 {
		return [][]T{}
	}

	out := make([][]T, len(m[0]))
	for c := range out {
		out[c] = make([]T, len(m))
		for r := range m {
			out[c][r] = m[r][c]
		}
	}

	return out
}

// Clone2D deep copies a matrix.
func Clone2D[T any](m [][]T) [][]T {
	if m == nil {
		return nil
	}

	out := make([][]T, len(m))
	for i := range m {
		out[i] = make([]T, len(m[i]))
		copy(out[i], m[i])
	}

	return out
}

// Clone3D deep copies a three dimensional array.
func Clone3D[T any](m [][][]T) [][][]T {
	if m == nil {
		return nil
	}

	out := make([][][]T, len(m))
	for i := range m {
		out[i] = Clone2D(m[i])
	}

	return out
}
