package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/squaremat/matrix"
)

// ExampleMul multiplies two 2×2 matrices.
func ExampleMul() {
	a, _ := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})
	b, _ := matrix.NewFromRows([][]float64{{2, 0}, {1, 2}})
	c, _ := matrix.Mul(a, b)
	fmt.Print(c)
	// Output:
	// 4 4
	// 10 8
}

// ExampleSquare_Row shows bracket-style access through a row view.
func ExampleSquare_Row() {
	m, _ := matrix.New(2)
	r, _ := m.Row(1)
	_ = r.Set(0, 3)
	fmt.Print(m)
	// Output:
	// 0 0
	// 3 0
}

// ExampleSquare_PostInc contrasts the returned snapshot with the receiver.
func ExampleSquare_PostInc() {
	m, _ := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})
	before := m.PostInc()
	fmt.Print(before)
	fmt.Print(m)
	// Output:
	// 1 2
	// 3 4
	// 2 3
	// 4 5
}

// ExampleEqual shows that equality compares element sums.
func ExampleEqual() {
	a, _ := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})
	b, _ := matrix.NewFromRows([][]float64{{10, 0}, {0, 0}})
	fmt.Println(matrix.Equal(a, b), matrix.Identical(a, b))
	// Output:
	// true false
}

// ExampleDet expands a 3×3 determinant.
func ExampleDet() {
	m, _ := matrix.NewFromRows([][]float64{{2, 0, 1}, {0, 1, 0}, {1, 0, 2}})
	d, _ := matrix.Det(m)
	fmt.Println(d)
	// Output:
	// 3
}

// ExamplePow raises the Fibonacci matrix to the 10th power.
func ExamplePow() {
	f, _ := matrix.NewFromRows([][]float64{{1, 1}, {1, 0}})
	p, _ := matrix.Pow(f, 10)
	fmt.Print(matrix.Render(p, matrix.WithRowBrackets(), matrix.WithDelimiter(", ")))
	// Output:
	// [89, 55]
	// [55, 34]
}
