// SPDX-License-Identifier: MIT

package linear

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"

	"github.com/katalvlaran/lvmath/number"
	"github.com/katalvlaran/lvmath/scalar"
)

// hashNumbers folds component hashes in order. Equal components produce
// equal component hashes, so equal composites hash equally.
func hashNumbers[T any, M scalar.Math[T]](ns ...number.Number[T, M]) uint64 {
	d := xxhash.New()
	var buf [8]byte
	for _, n := range ns {
		binary.LittleEndian.PutUint64(buf[:], n.Hash())
		_, _ = d.Write(buf[:])
	}

	return d.Sum64()
}
