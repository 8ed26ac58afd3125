package vecops_test

import (
	"fmt"

	"github.com/cwbudde/algo-sdr/dsp/vecops"
)

func ExampleMul() {
	dst := []complex64{1, 2, 3, 4}
	vecops.Mul(vecops.Scale(dst, 2), []complex64{1i, 1i})
	fmt.Println(dst)
	// Output:
	// [(0+2i) (0+4i) (6+0i) (8+0i)]
}
