// Package parallelhash implements ParallelHash128 as specified in [NIST SP 800-185].
//
// ParallelHash splits a message into fixed-size blocks, hashes each block independently with cSHAKE128 into a 256-bit
// leaf digest, and absorbs the leaf digests in order into a single cSHAKE128 instance domain-separated with the
// function name "ParallelHash" and a caller-supplied customization string. Because the leaf digests are independent,
// very long messages can be hashed using several cores (see WithConcurrency); the digest is the same either way.
//
// A Hasher is incremental: a message may be written in pieces split at any byte boundary and produces the same digest
// as writing it all at once. Finalize produces output of any length and consumes the Hasher.
//
// [NIST SP 800-185]: https://www.nist.gov/publications/sha-3-derived-functions-cshake-kmac-tuplehash-and-parallelhash
package parallelhash

import (
	"errors"
	"fmt"
	"hash"
	"math"
	"slices"

	"github.com/codahale/parallelhash/internal/cshake"
	"github.com/codahale/parallelhash/internal/sp800185"
)

// Size is the size, in bytes, of the digest returned by Sum.
const Size = 32

const functionName = "ParallelHash"

var (
	// ErrInvalidBlockSize is returned when a Hasher is created with a block size that is not positive.
	ErrInvalidBlockSize = errors.New("parallelhash: block size must be positive")

	// ErrFinalized is the panic value when a Hasher is used after Finalize.
	ErrFinalized = errors.New("parallelhash: hasher already finalized")
)

// A Hasher is an incremental ParallelHash128 instance. It implements hash.Hash, with Sum returning a Size-byte digest;
// Finalize produces digests of other lengths.
//
// Hasher instances are not concurrent-safe.
type Hasher struct {
	customization []byte
	blockSize     int
	workers       int

	outer     *cshake.XOF   // cSHAKE128 with N = "ParallelHash", S = customization
	partial   *partialBlock // trailing block shorter than blockSize, if any
	blocks    uint64        // leaf digests absorbed into outer
	finalized bool

	cvs [maxBatch][LeafSize]byte
}

// partialBlock is an open leaf context holding 0 < absorbed < blockSize bytes of the next block.
type partialBlock struct {
	xof      *cshake.XOF
	absorbed int
}

// New returns a Hasher with the given customization string and block size, in bytes.
func New(customization []byte, blockSize int, opts ...Option) (*Hasher, error) {
	if blockSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBlockSize, blockSize)
	}

	h := &Hasher{ //nolint:exhaustruct // initialized via init
		customization: slices.Clone(customization),
		blockSize:     blockSize,
		workers:       1,
	}
	for _, opt := range opts {
		opt(h)
	}
	h.init()
	return h, nil
}

// Sum128 returns n bytes of ParallelHash128(msg, blockSize, n*8, customization).
func Sum128(customization, msg []byte, blockSize, n int, opts ...Option) ([]byte, error) {
	h, err := New(customization, blockSize, opts...)
	if err != nil {
		return nil, err
	}
	_, _ = h.Write(msg)
	return h.Finalize(nil, n), nil
}

func (h *Hasher) init() {
	var buf [sp800185.MaxSize]byte
	h.outer = cshake.New([]byte(functionName), h.customization)
	h.outer.Absorb(sp800185.AppendLeftEncode(buf[:0], uint64(h.blockSize))) //nolint:gosec // blockSize > 0
	h.partial = nil
	h.blocks = 0
}

// Write appends p to the message. It never returns an error.
func (h *Hasher) Write(p []byte) (int, error) {
	h.checkFinalized()
	n := len(p)

	// Complete a block left over from a previous write, if possible.
	if h.partial != nil {
		needed := h.blockSize - h.partial.absorbed
		if len(p) < needed {
			h.partial.xof.Absorb(p)
			h.partial.absorbed += len(p)
			return n, nil
		}

		h.partial.xof.Absorb(p[:needed])
		p = p[needed:]
		h.flushPartial()
	}

	// Hash all complete blocks.
	full := len(p) / h.blockSize
	h.absorbBlocks(p[:full*h.blockSize], full)
	p = p[full*h.blockSize:]

	// Buffer the remainder.
	if len(p) > 0 {
		if h.partial != nil {
			panic("parallelhash: partial block already buffered")
		}

		x := newLeaf()
		x.Absorb(p)
		h.partial = &partialBlock{xof: x, absorbed: len(p)}
	}

	return n, nil
}

// absorbBlocks computes the leaf digests of the n complete blocks in data and absorbs them into the outer accumulator
// in block order.
func (h *Hasher) absorbBlocks(data []byte, n int) {
	for n > 0 {
		k := min(n, maxBatch)
		cvs := h.cvs[:k]
		leafDigests(cvs, data, h.blockSize, h.workers)
		for i := range cvs {
			h.outer.Absorb(cvs[i][:])
		}
		h.blocks += uint64(k) //nolint:gosec // k > 0

		data = data[k*h.blockSize:]
		n -= k
	}
}

// flushPartial absorbs the digest of the buffered partial block into the outer accumulator.
func (h *Hasher) flushPartial() {
	var cv [LeafSize]byte
	finishLeaf(h.partial.xof, &cv)
	h.partial = nil

	h.outer.Absorb(cv[:])
	h.blocks++
}

// Finalize appends n bytes of digest to dst and returns the resulting slice. The Hasher cannot be used afterwards.
//
// The digest depends on n: a shorter output is not a prefix of a longer one.
func (h *Hasher) Finalize(dst []byte, n int) []byte {
	h.checkFinalized()
	if n < 0 {
		panic("parallelhash: n cannot be negative")
	}
	if uint64(n) > math.MaxUint64/8 {
		panic("parallelhash: n is too large")
	}
	h.finalized = true

	if h.partial != nil {
		h.flushPartial()
	}

	var buf [2 * sp800185.MaxSize]byte
	b := sp800185.AppendRightEncode(buf[:0], h.blocks)
	b = sp800185.AppendRightEncode(b, uint64(n)*8)
	h.outer.Absorb(b)

	return h.outer.Squeeze(dst, n)
}

// Sum appends a Size-byte digest of the message written so far to b. It does not change the Hasher's state.
func (h *Hasher) Sum(b []byte) []byte {
	h.checkFinalized()
	return h.clone().Finalize(b, Size)
}

// Reset discards the message written so far, retaining the customization string, block size, and options. It cannot
// revive a finalized Hasher.
func (h *Hasher) Reset() {
	h.checkFinalized()
	if h.partial != nil {
		h.partial.xof.Reset()
		leafPool.Put(h.partial.xof)
	}
	h.init()
}

// Size returns Size.
func (h *Hasher) Size() int {
	return Size
}

// BlockSize returns the ParallelHash block size the Hasher was created with.
func (h *Hasher) BlockSize() int {
	return h.blockSize
}

// Blocks returns the number of complete blocks whose leaf digests have been absorbed. A buffered trailing block is not
// counted until Finalize.
func (h *Hasher) Blocks() uint64 {
	return h.blocks
}

func (h *Hasher) clone() *Hasher {
	c := &Hasher{ //nolint:exhaustruct // cvs is scratch space
		customization: h.customization,
		blockSize:     h.blockSize,
		workers:       h.workers,
		outer:         h.outer.Clone(),
		blocks:        h.blocks,
	}
	if h.partial != nil {
		c.partial = &partialBlock{xof: h.partial.xof.Clone(), absorbed: h.partial.absorbed}
	}
	return c
}

func (h *Hasher) checkFinalized() {
	if h.finalized {
		panic(ErrFinalized)
	}
}

var _ hash.Hash = (*Hasher)(nil)
