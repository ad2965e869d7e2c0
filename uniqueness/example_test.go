package uniqueness_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/relgraph/builder"
	"github.com/katalvlaran/relgraph/uniqueness"
)

func ExampleAnalyze() {
	g, _ := builder.BuildGraph(nil, nil, builder.Triangle())
	rep, err := uniqueness.Analyze(context.Background(), g)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, o := range rep.Objects {
		fmt.Printf("%d %s in=%v out=%v local=%d global=%d\n",
			o.Index, o.Class, o.UniqueIncoming, o.UniqueOutgoing,
			len(o.LocalTwoHop), len(o.GlobalTwoHop))
	}
	fmt.Printf("coverage %.2f\n", rep.Coverage)
	// Output:
	// 0 both in=[behind] out=[front] local=3 global=2
	// 1 both in=[left behind] out=[right front] local=4 global=2
	// 2 both in=[left] out=[right] local=3 global=2
	// coverage 1.00
}
