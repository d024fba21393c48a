// SPDX-License-Identifier: MIT

package cplx_test

import (
	"fmt"

	"github.com/katalvlaran/simkit/cplx"
)

// ExampleRotateByI walks 3 + 2i through four quarter turns.
func ExampleRotateByI() {
	z := cplx.Value{Re: 3, Im: 2}
	for i := 0; i < 4; i++ {
		fmt.Println(z)
		z = cplx.RotateByI(z)
	}
	fmt.Println(z)
	// Output:
	// 3 + 2i
	// -2 + 3i
	// -3 - 2i
	// 2 - 3i
	// 3 + 2i
}
