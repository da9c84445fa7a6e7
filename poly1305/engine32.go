package poly1305

// engine32 carries the accumulator in five 26-bit limbs, the 32-bit
// profile. Every partial product of two ~26-bit limbs fits in a uint64
// with room to spare, so no emulated wide integer is needed here the
// way engine64 needs one.
type engine32 struct {
	r0, r1, r2, r3, r4 uint32
	s1, s2, s3, s4     uint32 // s_i = r_i * 5
	h0, h1, h2, h3, h4 uint32
}

const mask26 = uint32(1)<<26 - 1

// newEngine32 clamps r and splits it into five 26-bit limbs. As in
// engine64, the mask constants fold the RFC 8439 clamp mask into the
// limb extraction in one step.
func newEngine32(r [2]uint64) *engine32 {
	t0 := uint32(r[0])
	t1 := uint32(r[0] >> 32)
	t2 := uint32(r[1])
	t3 := uint32(r[1] >> 32)

	e := &engine32{
		r0: t0 & 0x3ffffff,
		r1: ((t0 >> 26) | (t1 << 6)) & 0x3ffff03,
		r2: ((t1 >> 20) | (t2 << 12)) & 0x3ffc0ff,
		r3: ((t2 >> 14) | (t3 << 18)) & 0x3f03fff,
		r4: (t3 >> 8) & 0x00fffff,
	}
	e.s1 = e.r1 * 5
	e.s2 = e.r2 * 5
	e.s3 = e.r3 * 5
	e.s4 = e.r4 * 5
	return e
}

func leUint32(b []byte) uint32 {
	_ = b[3]
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

func putLeUint32(b []byte, v uint32) {
	_ = b[3]
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}

func (e *engine32) blocks(m []byte, final bool) {
	hibit := uint32(1) << 24
	if final {
		hibit = 0
	}

	r0, r1, r2, r3, r4 := e.r0, e.r1, e.r2, e.r3, e.r4
	s1, s2, s3, s4 := e.s1, e.s2, e.s3, e.s4
	h0, h1, h2, h3, h4 := e.h0, e.h1, e.h2, e.h3, e.h4

	for len(m) >= BlockSize {
		t0 := leUint32(m[0:4])
		t1 := leUint32(m[4:8])
		t2 := leUint32(m[8:12])
		t3 := leUint32(m[12:16])

		h0 += t0 & 0x3ffffff
		h1 += ((t1 << 6) | (t0 >> 26)) & 0x3ffffff
		h2 += ((t2 << 12) | (t1 >> 20)) & 0x3ffffff
		h3 += ((t3 << 18) | (t2 >> 14)) & 0x3ffffff
		h4 += (t3 >> 8) | hibit

		d0 := uint64(h0)*uint64(r0) + uint64(h1)*uint64(s4) + uint64(h2)*uint64(s3) + uint64(h3)*uint64(s2) + uint64(h4)*uint64(s1)
		d1 := uint64(h0)*uint64(r1) + uint64(h1)*uint64(r0) + uint64(h2)*uint64(s4) + uint64(h3)*uint64(s3) + uint64(h4)*uint64(s2)
		d2 := uint64(h0)*uint64(r2) + uint64(h1)*uint64(r1) + uint64(h2)*uint64(r0) + uint64(h3)*uint64(s4) + uint64(h4)*uint64(s3)
		d3 := uint64(h0)*uint64(r3) + uint64(h1)*uint64(r2) + uint64(h2)*uint64(r1) + uint64(h3)*uint64(r0) + uint64(h4)*uint64(s4)
		d4 := uint64(h0)*uint64(r4) + uint64(h1)*uint64(r3) + uint64(h2)*uint64(r2) + uint64(h3)*uint64(r1) + uint64(h4)*uint64(r0)

		c := uint32(d0 >> 26)
		h0 = uint32(d0) & 0x3ffffff

		d1 += uint64(c)
		c = uint32(d1 >> 26)
		h1 = uint32(d1) & 0x3ffffff

		d2 += uint64(c)
		c = uint32(d2 >> 26)
		h2 = uint32(d2) & 0x3ffffff

		d3 += uint64(c)
		c = uint32(d3 >> 26)
		h3 = uint32(d3) & 0x3ffffff

		d4 += uint64(c)
		c = uint32(d4 >> 26)
		h4 = uint32(d4) & 0x3ffffff

		h0 += c * 5
		c = h0 >> 26
		h0 &= 0x3ffffff
		h1 += c

		m = m[BlockSize:]
	}

	e.h0, e.h1, e.h2, e.h3, e.h4 = h0, h1, h2, h3, h4
}

func (e *engine32) finish(pad [2]uint64, out *[TagSize]byte) {
	h0, h1, h2, h3, h4 := e.h0, e.h1, e.h2, e.h3, e.h4

	c := h1 >> 26
	h1 &= 0x3ffffff
	h2 += c
	c = h2 >> 26
	h2 &= 0x3ffffff
	h3 += c
	c = h3 >> 26
	h3 &= 0x3ffffff
	h4 += c
	c = h4 >> 26
	h4 &= 0x3ffffff
	h0 += c * 5
	c = h0 >> 26
	h0 &= 0x3ffffff
	h1 += c

	g0 := h0 + 5
	c = g0 >> 26
	g0 &= 0x3ffffff
	g1 := h1 + c
	c = g1 >> 26
	g1 &= 0x3ffffff
	g2 := h2 + c
	c = g2 >> 26
	g2 &= 0x3ffffff
	g3 := h3 + c
	c = g3 >> 26
	g3 &= 0x3ffffff
	g4 := h4 + c - (uint32(1) << 26)

	mask := (g4 >> 31) - 1
	g0 &= mask
	g1 &= mask
	g2 &= mask
	g3 &= mask
	g4 &= mask
	inv := ^mask
	h0 = (h0 & inv) | g0
	h1 = (h1 & inv) | g1
	h2 = (h2 & inv) | g2
	h3 = (h3 & inv) | g3
	h4 = (h4 & inv) | g4

	// Relies on uint32 shifts wrapping mod 2^32, exactly as the reference
	// implementation relies on "unsigned long" overflow on a 32-bit
	// target, to fold five 26-bit limbs into four 32-bit words.
	h0 = h0 | (h1 << 26)
	h1 = (h1 >> 6) | (h2 << 20)
	h2 = (h2 >> 12) | (h3 << 14)
	h3 = (h3 >> 18) | (h4 << 8)

	pad0 := uint32(pad[0])
	pad1 := uint32(pad[0] >> 32)
	pad2 := uint32(pad[1])
	pad3 := uint32(pad[1] >> 32)

	f := uint64(h0) + uint64(pad0)
	h0 = uint32(f)
	f = uint64(h1) + uint64(pad1) + f>>32
	h1 = uint32(f)
	f = uint64(h2) + uint64(pad2) + f>>32
	h2 = uint32(f)
	f = uint64(h3) + uint64(pad3) + f>>32
	h3 = uint32(f)

	putLeUint32(out[0:4], h0)
	putLeUint32(out[4:8], h1)
	putLeUint32(out[8:12], h2)
	putLeUint32(out[12:16], h3)

	e.h0, e.h1, e.h2, e.h3, e.h4 = 0, 0, 0, 0, 0
}
