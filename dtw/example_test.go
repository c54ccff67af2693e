package dtw_test

import (
	"fmt"

	"github.com/katalvlaran/lvchirp/dtw"
	"github.com/katalvlaran/lvchirp/matrix"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleForward
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Two frames against two frames, only vertical (1,0) and horizontal (0,1)
//	moves allowed.
//	  M = [[1, 2],
//	       [3, 1]]
//
// Effect:
//
//	D[1,1] = min(1 + D[0,1], 1 + D[1,0]) = min(4, 5) = 4 via the vertical step.
//
// Complexity: O(N·M·steps) time.
func ExampleForward() {
	M, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 1}})
	steps := dtw.Steps{
		{Row: 1, Col: 0, Weight: 1},
		{Row: 0, Col: 1, Weight: 1},
	}

	D, S, err := dtw.Forward(M, steps, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Print(D)
	fmt.Print(S)
	// Output:
	// [1, 3]
	// [4, 4]
	// [1, 1]
	// [0, 0]
}

// ExampleForward_traceback shows how a caller recovers an alignment from S,
// which this package deliberately leaves outside the forward pass.
func ExampleForward_traceback() {
	// Squared differences between pitch traces a=[1,2,3] and b=[1,2,2,3].
	a := []float64{1, 2, 3}
	b := []float64{1, 2, 2, 3}
	M, _ := matrix.NewDense(len(a), len(b))
	for i := range a {
		for j := range b {
			_ = M.Set(i, j, (a[i]-b[j])*(a[i]-b[j]))
		}
	}
	steps := dtw.DefaultSteps()
	D, S, _ := dtw.Forward(M, steps, nil)

	i, j := len(a)-1, len(b)-1
	path := [][2]int{{i, j}}
	for i > 0 || j > 0 {
		k, _ := S.At(i, j)
		i, j = i-steps[k].Row, j-steps[k].Col
		path = append([][2]int{{i, j}}, path...)
	}
	cost, _ := D.At(len(a)-1, len(b)-1)
	fmt.Printf("cost=%g\npath=%v\n", cost, path)
	// Output:
	// cost=0
	// path=[[0 0] [1 1] [1 2] [2 3]]
}
