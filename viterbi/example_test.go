package viterbi_test

import (
	"fmt"

	"github.com/katalvlaran/lvchirp/matrix"
	"github.com/katalvlaran/lvchirp/viterbi"
)

// ExampleDecode tracks a pitch that drifts up one bin per frame. Three
// particles were proposed; the middle one follows the drift but the decoder
// is free to hop between particles at every frame.
func ExampleDecode() {
	particles, _ := matrix.NewIntDenseFromRows([][]int{
		{1, 1, 1, 1},
		{1, 2, 3, 4},
		{0, 2, 2, 3},
	})
	// Likelihood peaks on bin k+1 at frame k.
	ll, _ := matrix.NewDense(6, 4)
	for x := 0; x < 6; x++ {
		for k := 0; k < 4; k++ {
			if x == k+1 {
				_ = ll.Set(x, k, -0.1)
			} else {
				_ = ll.Set(x, k, -4)
			}
		}
	}
	// No learned proposal: every cell undefined, random walk everywhere.
	opts := viterbi.DefaultOptions()
	proposal, _ := matrix.NewDense(5, 3)
	proposal.Fill(opts.MinLog)
	lognormal, _ := viterbi.RandomWalkLogNormal(5, 1.0)

	path, err := viterbi.Decode(viterbi.Problem{
		Particles:     particles,
		LogLikelihood: ll,
		LogProposal:   proposal,
		LogNormal:     lognormal,
	}, &opts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(path)
	// Output:
	// [1 2 3 4]
}
