package parallelhash

import (
	"sync"

	"github.com/codahale/parallelhash/internal/cshake"
	"golang.org/x/sync/errgroup"
)

// LeafSize is the size, in bytes, of the digest computed for each block. It is fixed at 256 bits by the construction
// and does not depend on the output length requested from Finalize.
const LeafSize = 32

// maxBatch is the number of leaf digests computed before they are absorbed into the outer accumulator.
const maxBatch = 64

var leafPool = sync.Pool{
	New: func() any {
		return cshake.New(nil, nil)
	},
}

func newLeaf() *cshake.XOF {
	return leafPool.Get().(*cshake.XOF) //nolint:forcetypeassert // pool only holds *cshake.XOF
}

// finishLeaf squeezes the leaf's digest into cv and returns the context to the pool.
func finishLeaf(x *cshake.XOF, cv *[LeafSize]byte) {
	x.Squeeze(cv[:0], LeafSize)
	x.Reset()
	leafPool.Put(x)
}

// leafDigest computes cSHAKE128(block, 256, "", "").
func leafDigest(cv *[LeafSize]byte, block []byte) {
	x := newLeaf()
	x.Absorb(block)
	finishLeaf(x, cv)
}

// leafDigests computes the digests of len(cvs) consecutive blocks of data, spreading them across at most workers
// goroutines. Each goroutine writes only its own slots of cvs, so the caller can absorb them in order afterwards.
func leafDigests(cvs [][LeafSize]byte, data []byte, blockSize, workers int) {
	if workers <= 1 || len(cvs) < 2 {
		for i := range cvs {
			leafDigest(&cvs[i], data[i*blockSize:(i+1)*blockSize])
		}
		return
	}

	var eg errgroup.Group
	eg.SetLimit(workers)

	per := (len(cvs) + workers - 1) / workers
	for start := 0; start < len(cvs); start += per {
		end := min(start+per, len(cvs))
		eg.Go(func() error {
			for i := start; i < end; i++ {
				leafDigest(&cvs[i], data[i*blockSize:(i+1)*blockSize])
			}
			return nil
		})
	}
	_ = eg.Wait()
}
