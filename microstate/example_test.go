package microstate_test

import (
	"fmt"

	"github.com/katalvlaran/rqa/metric"
	"github.com/katalvlaran/rqa/microstate"
	"github.com/katalvlaran/rqa/recurrence"
	"github.com/katalvlaran/rqa/series"
)

// ExampleDistribution counts 3×1 microstates of an alternating series.
func ExampleDistribution() {
	x, _ := series.New([]float64{0, 1, 0, 1, 0})
	r, _ := recurrence.New(recurrence.Standard, metric.Euclidean{}, recurrence.Scalar(0.5))

	dist, err := microstate.Distribution(x, x, r, microstate.LaminarityShape)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("p(010)=%.4f p(101)=%.4f rr=%.4f\n", dist[2], dist[5], microstate.Rate(dist))
	// Output:
	// p(010)=0.4667 p(101)=0.5333 rr=0.5111
}
