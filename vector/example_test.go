package vector_test

import (
	"fmt"

	"github.com/katalvlaran/linalg/vector"
)

// ExampleAdd shows component-wise addition of two 3-vectors.
func ExampleAdd() {
	sum, err := vector.Add(vector.Vector{1, 2, 3}, vector.Vector{4, 5, 6})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(sum)
	// Output:
	// [5 7 9]
}

// ExampleMean averages a set of 2-vectors.
func ExampleMean() {
	m, _ := vector.Mean([]vector.Vector{{1, 2}, {3, 4}})
	fmt.Println(m)

	_, err := vector.Mean(nil)
	fmt.Println(err)
	// Output:
	// [2 3]
	// Mean: ValidateSet: vector: invalid argument: empty vector set
}

// ExampleDistance computes the Euclidean distance of a 3-4-5 triangle.
func ExampleDistance() {
	d, _ := vector.Distance(vector.Vector{0, 0}, vector.Vector{3, 4})
	fmt.Println(d)
	fmt.Println(vector.Magnitude(vector.Vector{3, 4}))
	// Output:
	// 5
	// 5
}
