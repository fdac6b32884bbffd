package layout_test

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/panels/pkg/core/layout"
)

func ExampleResolve() {
	// A sidebar with a declared size; the other two split the rest
	specs := []layout.Spec{
		layout.Collapsible("sidebar", 10, layout.WithSize(25)),
		layout.Fixed("editor", layout.WithMinSize(30)),
		layout.Fixed("preview"),
	}

	l := layout.Resolve(specs, log.New(io.Discard))
	for _, p := range l {
		fmt.Printf("%s: %v [%v..%v]\n", p.ID, p.Size, p.MinSize, p.MaxSize)
	}
	// Output:
	// sidebar: 25 [10..100]
	// editor: 37.5 [30..100]
	// preview: 37.5 [0..100]
}

func ExampleResolve_evenSplit() {
	// Nothing declared: the budget is split evenly and rounded
	l := layout.Resolve([]layout.Spec{
		layout.Fixed("a"), layout.Fixed("b"), layout.Fixed("c"),
	}, log.New(io.Discard))

	fmt.Println(l.Sizes())
	// Output:
	// [33.3333 33.3333 33.3333]
}

func ExampleApportion() {
	// Map a layout onto an 80-column terminal
	fmt.Println(layout.Apportion([]float64{25, 37.5, 37.5}, 80))
	// Output:
	// [20 30 30]
}
