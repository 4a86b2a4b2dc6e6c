// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/repsim/matrix"
)

// ExampleGram centers a tiny representation matrix and builds its Gram matrix.
func ExampleGram() {
	X, _ := matrix.NewDenseFrom(3, 2, []float64{
		1, 2,
		3, 4,
		5, 9,
	})
	Xc, means, _ := matrix.CenterColumns(X)
	G, _ := matrix.Gram(Xc)
	total, _ := matrix.Sum(G)

	fmt.Println("means:", means)
	fmt.Print(G)
	fmt.Printf("sum=%.0f\n", total)
	// Output:
	// means: [3 5]
	// [13, 3, -16]
	// [3, 1, -4]
	// [-16, -4, 20]
	// sum=0
}
