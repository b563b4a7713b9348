package tensor_test

import (
	"fmt"

	"github.com/katalvlaran/lvpgm/tensor"
)

// ExampleCombine multiplies a prior by a conditional table and marginalises
// the parent out.
func ExampleCombine() {
	rain, _ := tensor.NewVariable("rain", "no", "yes")
	wet, _ := tensor.NewVariable("wet", "no", "yes")

	prior, _ := tensor.NewFrom([]float64{0.8, 0.2}, rain)
	cpt, _ := tensor.NewFrom([]float64{0.9, 0.1, 0.2, 0.8}, rain, wet)

	joint, _ := prior.Combine(cpt, tensor.Mul)
	marginal, _ := joint.MargSumOut(rain)
	fmt.Printf("P(wet) = %.2f\n", marginal.Values())
	// Output:
	// P(wet) = [0.76 0.24]
}
