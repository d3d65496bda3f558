// Package cheapest_test provides runnable examples of the fare search.
package cheapest_test

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/fareroute/cheapest"
	"github.com/katalvlaran/fareroute/pricing"
	"github.com/katalvlaran/fareroute/route"
)

// ExampleFindCheapestPath compares the direct connection against the layover.
// 47.5 + 48.888 = 96.388 is more than the direct 73.6.
func ExampleFindCheapestPath() {
	path, err := cheapest.FindCheapestPath(sampleGraph(), "A", "C")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(path)
	// Output: A -> C
}

// ExampleFindCheapestPath_unreachable shows the NoPath result: no error, nothing found.
func ExampleFindCheapestPath_unreachable() {
	path, err := cheapest.FindCheapestPath(sampleGraph(), "C", "A")
	fmt.Println(path.Found(), err)
	// Output: false <nil>
}

// ExampleSearch_withModel prices every connection at its distance, which
// makes the layover (800) tie with the direct connection (800). Equal fares
// keep the first predecessor found, so the direct route wins.
func ExampleSearch_withModel() {
	byDistance := pricing.ModelFunc(func(c route.Connection) decimal.Decimal {
		return decimal.NewFromFloat(c.Distance)
	})

	res, err := cheapest.Search(sampleGraph(), "A", "C", cheapest.WithModel(byDistance))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%s fare=%s settled=%d\n", res.Path, res.Fare, res.Settled)
	// Output: A -> C fare=800 settled=3
}
