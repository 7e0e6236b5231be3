// File: simplex/example_test.go
package simplex_test

import (
	"fmt"

	"github.com/dorvarsul/terranoise/simplex"
)

// ExampleSample demonstrates the one-shot entry point and the determinism
// contract shared by all terranoise generators.
func ExampleSample() {
	a := simplex.Sample(2.5, -1.5, 7)
	b := simplex.Sample(2.5, -1.5, 7)

	fmt.Println("reproducible:", a == b)
	fmt.Println("in range:", a >= 0 && a <= 1)
	// Output:
	// reproducible: true
	// in range: true
}
