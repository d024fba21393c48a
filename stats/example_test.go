// SPDX-License-Identifier: MIT

package stats_test

import (
	"fmt"

	"github.com/katalvlaran/simkit/stats"
)

func ExampleSample_Summarize() {
	s, _ := stats.NewSample(4, 7, 2, 9, 4, 5, 8)
	sum, _ := s.Summarize()
	fmt.Printf("n=%d mean=%.4f median=%g modes=%v range=%g\n", sum.N, sum.Mean, sum.Median, sum.Modes, sum.Range)

	_ = s.Remove(4)
	modes, _ := s.Modes()
	fmt.Println(modes)
	// Output:
	// n=7 mean=5.5714 median=5 modes=[4] range=7
	// [2 4 5 7 8 9]
}
