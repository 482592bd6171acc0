// SPDX-License-Identifier: MIT
package xmlstore_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/spdgeom/classifier"
	"github.com/katalvlaran/spdgeom/xmlstore"
	"gonum.org/v1/gonum/mat"
)

// ExampleSaveBias prints the document of a 2×2 bias updated three times.
func ExampleSaveBias() {
	b := classifier.NewBias()
	if err := b.Restore(mat.NewDense(2, 2, []float64{1, 0, 0, 2}), 3); err != nil {
		fmt.Println(err)
		return
	}
	if err := xmlstore.SaveBias(os.Stdout, b); err != nil {
		fmt.Println(err)
	}
	// Output:
	// <?xml version="1.0" encoding="UTF-8"?>
	// <Bias>
	// 	<Bias-data>
	// 		<Bias n="3" size="2">
	// 1 0
	// 0 2
	// </Bias>
	// 	</Bias-data>
	// </Bias>
}
