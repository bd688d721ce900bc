package solver_test

import (
	"fmt"

	"github.com/katalvlaran/sparsechol/csr"
	"github.com/katalvlaran/sparsechol/solver"
)

// ExampleSolve solves (A·Aᵀ)·x = b for a diagonal A and a constant b.
func ExampleSolve() {
	a, err := csr.ParseString[float64]("3 3 3\n1 1 1.0\n2 2 2.0\n3 3 3.0\n")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	res, err := solver.Solve(a, 1.0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("x = %.4f\n", res.X.Data())
	fmt.Printf("err_max = %.4f, err_2 = %.4f\n", res.MaxNorm, res.EuclideanNorm)
	fmt.Printf("system err_max = %.4f\n", res.SystemMaxNorm)

	// Output:
	// x = [1.0000 0.2500 0.1111]
	// err_max = 0.6667, err_2 = 0.8333
	// system err_max = 0.0000
}

// ExampleSolve_notPositiveDefinite shows the stage-tagged failure.
func ExampleSolve_notPositiveDefinite() {
	a, _ := csr.ParseString[float64]("2 2 1\n1 1 1\n")
	_, err := solver.Solve(a, 1.0)
	fmt.Println(err)

	// Output:
	// solve: factor: Cholesky: pivot (1, 1) = 0: matrix: matrix is not positive definite
}
