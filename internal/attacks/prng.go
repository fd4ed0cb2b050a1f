//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package attacks

// prng is a 32-bit xorshift pseudo-random number generator seeded with a
// fixed constant. FindMagicNumber starts a fresh generator on every
// call, so the magic number it finds for a given square is the same on
// every run; it is a valid magic for that square but is in general not
// the number baked into this package's tables.
type prng struct {
	state uint32
}

func newPrng() *prng {
	return &prng{state: 1804289383}
}

// next32 advances the generator and returns the next 32-bit number.
func (r *prng) next32() uint32 {
	n := r.state
	n ^= n << 13
	n ^= n >> 17
	n ^= n << 5
	r.state = n
	return n
}

// next64 concatenates the low 16 bits of four successive 32-bit draws
// into a 64-bit number. The result carries no sparsity bias of its own;
// magicCandidate adds that.
func (r *prng) next64() uint64 {
	n1 := uint64(r.next32()) & 0xFFFF
	n2 := uint64(r.next32()) & 0xFFFF
	n3 := uint64(r.next32()) & 0xFFFF
	n4 := uint64(r.next32()) & 0xFFFF
	return n1 | (n2 << 16) | (n3 << 32) | (n4 << 48)
}

// magicCandidate generates a magic-number candidate biased toward low
// population count by ANDing three independent draws together.
func (r *prng) magicCandidate() uint64 {
	return r.next64() & r.next64() & r.next64()
}
