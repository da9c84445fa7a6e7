package poly1305

import "math/bits"

// engine64 carries the accumulator in three 44-bit limbs (h0, h1, h2),
// the 64-bit profile. Go has no native 128-bit integer, so the 88-bit
// partial products that arise from multiplying two 44-bit limbs are
// carried as explicit (hi, lo) pairs via math/bits.Mul64/Add64.
type engine64 struct {
	r0, r1, r2 uint64
	s1, s2     uint64 // s_i = r_i * 20, precomputed for the "h*r mod p" reduction
	h0, h1, h2 uint64
}

const (
	limb44Mask = (uint64(1) << 44) - 1
	limb42Mask = (uint64(1) << 42) - 1
	hibit128   = uint64(1) << 40 // bit 128 of the conceptual accumulator, expressed within limb 2
)

// newEngine64 clamps r (RFC 8439 section 2.5) and splits it into three
// 44-bit limbs in one step: the mask constants below already fold the
// clamp mask 0x0ffffffc0ffffffc0ffffffc0fffffff into the 44-bit
// extraction, following the standard Poly1305 reference layout.
func newEngine64(r [2]uint64) *engine64 {
	t0, t1 := r[0], r[1]

	e := &engine64{
		r0: t0 & 0xffc0fffffff,
		r1: ((t0 >> 44) | (t1 << 20)) & 0xfffffc0ffff,
		r2: (t1 >> 24) & 0x00ffffffc0f,
	}
	e.s1 = e.r1 * 20
	e.s2 = e.r2 * 20
	return e
}

// u128 is a minimal unsigned 128-bit integer, just enough to carry the
// partial products h*r and the carries produced while reducing them
// modulo 2^130-5.
type u128 struct {
	hi, lo uint64
}

func mul64(a, b uint64) u128 {
	hi, lo := bits.Mul64(a, b)
	return u128{hi, lo}
}

func (x u128) add(y u128) u128 {
	lo, c := bits.Add64(x.lo, y.lo, 0)
	hi, _ := bits.Add64(x.hi, y.hi, c)
	return u128{hi, lo}
}

func (x u128) addWord(c uint64) u128 {
	lo, carry := bits.Add64(x.lo, c, 0)
	hi, _ := bits.Add64(x.hi, 0, carry)
	return u128{hi, lo}
}

// shr returns the value shifted right by n bits (n < 64), as a uint64 —
// safe here because every shift amount used below (42 or 44) discards
// enough high bits that what remains always fits in 64 bits.
func (x u128) shr(n uint) uint64 {
	return (x.hi << (64 - n)) | (x.lo >> n)
}

// blocks consumes m (a multiple of BlockSize) and folds it into the
// accumulator. final suppresses the conceptual "1 << 128" high bit for
// the padded closing block built by MAC.Sum, per RFC 8439 section 2.5.1.
func (e *engine64) blocks(m []byte, final bool) {
	hibit := hibit128
	if final {
		hibit = 0
	}

	r0, r1, r2 := e.r0, e.r1, e.r2
	s1, s2 := e.s1, e.s2
	h0, h1, h2 := e.h0, e.h1, e.h2

	for len(m) >= BlockSize {
		t0 := leUint64(m[0:8])
		t1 := leUint64(m[8:16])

		h0 += t0 & limb44Mask
		h1 += ((t0 >> 44) | (t1 << 20)) & limb44Mask
		h2 += ((t1 >> 24) & limb42Mask) | hibit

		d0 := mul64(h0, r0).add(mul64(h1, s2)).add(mul64(h2, s1))
		d1 := mul64(h0, r1).add(mul64(h1, r0)).add(mul64(h2, s2))
		d2 := mul64(h0, r2).add(mul64(h1, r1)).add(mul64(h2, r0))

		c := d0.shr(44)
		h0 = d0.lo & limb44Mask

		d1 = d1.addWord(c)
		c = d1.shr(44)
		h1 = d1.lo & limb44Mask

		d2 = d2.addWord(c)
		c = d2.shr(42)
		h2 = d2.lo & limb42Mask

		h0 += c * 5
		c = h0 >> 44
		h0 &= limb44Mask
		h1 += c

		m = m[BlockSize:]
	}

	e.h0, e.h1, e.h2 = h0, h1, h2
}

// finish fully reduces the accumulator modulo p, conditionally subtracts
// p once more if the reduced value still exceeds it, adds the pad s
// modulo 2^128, and serializes the low 128 bits little-endian.
func (e *engine64) finish(pad [2]uint64, out *[TagSize]byte) {
	h0, h1, h2 := e.h0, e.h1, e.h2

	c := h1 >> 44
	h1 &= limb44Mask
	h2 += c
	c = h2 >> 42
	h2 &= limb42Mask
	h0 += c * 5
	c = h0 >> 44
	h0 &= limb44Mask
	h1 += c
	c = h1 >> 44
	h1 &= limb44Mask
	h2 += c

	g0 := h0 + 5
	c = g0 >> 44
	g0 &= limb44Mask
	g1 := h1 + c
	c = g1 >> 44
	g1 &= limb44Mask
	g2 := h2 + c - (uint64(1) << 42)

	// mask is all-ones if h >= p (so g = h-p is the right reduced value)
	// and all-zeros otherwise, selected without a branch on secret data.
	mask := (g2 >> 63) - 1
	g0 &= mask
	g1 &= mask
	g2 &= mask
	inv := ^mask
	h0 = (h0 & inv) | g0
	h1 = (h1 & inv) | g1
	h2 = (h2 & inv) | g2

	lo128 := h0 | (h1 << 44)
	hi128 := (h1 >> 20) | (h2 << 24)

	lo, carry := bits.Add64(lo128, pad[0], 0)
	hi, _ := bits.Add64(hi128, pad[1], carry)

	putLeUint64(out[0:8], lo)
	putLeUint64(out[8:16], hi)

	e.h0, e.h1, e.h2 = 0, 0, 0
}
