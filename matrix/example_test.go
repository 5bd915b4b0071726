package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/ttp/matrix"
)

// ExampleNewEuclidean builds the CEIL_2D distance matrix of three cities.
func ExampleNewEuclidean() {
	m, err := matrix.NewEuclidean([]matrix.Point{{0, 0}, {3, 4}, {1, 1}}, matrix.WithCeil())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(m)

	// Output:
	// [0, 5, 2]
	// [5, 0, 4]
	// [2, 4, 0]
}
