// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/pwe/matrix"
)

// ExampleEigenvaluesSym diagonalizes a 2×2 symmetric matrix.
func ExampleEigenvaluesSym() {
	a, _ := matrix.NewDenseFrom(2, 2, []float64{
		2, 1,
		1, 2,
	})
	vals, err := matrix.EigenvaluesSym(a)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%.4f %.4f\n", vals[0], vals[1])
	// Output:
	// 1.0000 3.0000
}

// ExampleInverse inverts a matrix that needs a row swap.
func ExampleInverse() {
	a, _ := matrix.NewDenseFrom(2, 2, []float64{
		0, 2,
		4, 0,
	})
	inv, err := matrix.Inverse(a)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(inv.RawRowMajor())
	// Output:
	// [0 0.25 0.5 0]
}
