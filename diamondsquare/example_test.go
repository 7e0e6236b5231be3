// File: diamondsquare/example_test.go
package diamondsquare_test

import (
	"errors"
	"fmt"

	"github.com/dorvarsul/terranoise/diamondsquare"
)

// ExampleGenerate demonstrates the one-shot heightmap form and its
// validation: the grid is normalized to [0,1] and invalid sizes fail before
// any work happens.
func ExampleGenerate() {
	hm, err := diamondsquare.Generate(129, 0.5, 42, false)
	if err != nil {
		fmt.Println("unexpected error:", err)
		return
	}

	inRange := true
	for _, v := range hm.Cells() {
		if v < 0 || v > 1 {
			inRange = false
		}
	}
	fmt.Println("size:", hm.Size())
	fmt.Println("all heights in [0,1]:", inRange)

	_, err = diamondsquare.Generate(128, 0.5, 42, false)
	fmt.Println("rejects non 2^n+1 size:", errors.Is(err, diamondsquare.ErrBadSize))
	// Output:
	// size: 129
	// all heights in [0,1]: true
	// rejects non 2^n+1 size: true
}

// ExampleHeightmap_At demonstrates the wrapped read surface used for
// seamlessly tiling terrain.
func ExampleHeightmap_At() {
	hm, _ := diamondsquare.Generate(9, 0.5, 7, true)

	fmt.Println("x=-1 reads the far column:", hm.At(-1, 3) == hm.At(8, 3))
	fmt.Println("y=size reads the first row:", hm.At(2, 9) == hm.At(2, 0))
	// Output:
	// x=-1 reads the far column: true
	// y=size reads the first row: true
}
