// Copyright 2019-2021 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package per

import (
	"github.com/pkg/errors"
	"github.com/thebagchi/asn1c-go/lib/bitbuffer"
)

// BitReader reads an encoding bit by bit, most significant bit first.
// base is the bit offset of the first bit in the outermost buffer, so
// offsets reported from a reader over an open type payload stay absolute.
type BitReader struct {
	codec *bitbuffer.Codec
	size  int
	pos   int
	base  int
}

// NewBitReader returns a reader positioned at the first bit of b.
func NewBitReader(b []byte) *BitReader {
	return newSubReader(b, 0)
}

func newSubReader(b []byte, base int) *BitReader {
	return &BitReader{
		codec: bitbuffer.CreateReader(b),
		size:  len(b) * 8,
		base:  base,
	}
}

// Offset returns the absolute bit offset of the next bit to be read.
func (r *BitReader) Offset() int {
	return r.base + r.pos
}

// Consumed returns the number of bits read so far from this reader.
func (r *BitReader) Consumed() int {
	return r.pos
}

// Remaining returns the number of unread bits.
func (r *BitReader) Remaining() int {
	return r.size - r.pos
}

// Align skips to the next octet boundary.
func (r *BitReader) Align() {
	if rem := r.pos % 8; rem != 0 {
		r.ReadBits(8 - rem)
	}
}

// ReadBits returns the next n (<= 64) bits as an unsigned value.
func (r *BitReader) ReadBits(n int) (v uint64, err error) {
	if n < 0 || n > 64 {
		err = ErrUnsupported
		return
	}
	if n > r.Remaining() {
		err = ErrShortBuffer
		return
	}
	if n == 0 {
		return
	}
	if v, err = r.codec.Read(uint8(n)); err != nil {
		err = errors.Wrap(ErrShortBuffer, err.Error())
		return
	}
	r.pos += n
	return
}

// ReadBool reads a single bit.
func (r *BitReader) ReadBool() (bool, error) {
	v, err := r.ReadBits(1)
	return v == 1, err
}

// ReadBitString reads n bits and returns them left aligned in
// (n+7)/8 octets, trailing bits zero.
func (r *BitReader) ReadBitString(n int) (out []byte, err error) {
	if n > r.Remaining() {
		err = ErrShortBuffer
		return
	}
	out = make([]byte, (n+7)/8)
	for i := 0; n > 0; i++ {
		take := 8
		if take > n {
			take = n
		}
		var v uint64
		if v, err = r.ReadBits(take); err != nil {
			return
		}
		out[i] = byte(v << uint(8-take))
		n -= take
	}
	return
}

// ReadOctets reads n whole octets starting at the current bit position.
func (r *BitReader) ReadOctets(n int) ([]byte, error) {
	return r.ReadBitString(n * 8)
}

// BitWriter accumulates an encoding bit by bit. The first write error is
// kept and returned by Err; later writes are dropped.
type BitWriter struct {
	codec *bitbuffer.Codec
	pos   int
	err   error
}

// NewBitWriter returns an empty writer.
func NewBitWriter() *BitWriter {
	return &BitWriter{codec: bitbuffer.CreateWriter()}
}

// Len returns the number of bits written.
func (w *BitWriter) Len() int {
	return w.pos
}

// Err returns the first write error.
func (w *BitWriter) Err() error {
	return w.err
}

// Bytes returns the written octets; the last octet is zero padded.
func (w *BitWriter) Bytes() []byte {
	return w.codec.Bytes()
}

func (w *BitWriter) fail(err error) {
	if err != nil && w.err == nil {
		w.err = errors.Wrap(ErrUnsupported, err.Error())
	}
}

// Align pads with zero bits up to the next octet boundary.
func (w *BitWriter) Align() {
	if w.err != nil {
		return
	}
	if rem := w.pos % 8; rem != 0 {
		w.fail(w.codec.Align())
		w.pos += 8 - rem
	}
}

// WriteBits appends the n (<= 64) least significant bits of v.
func (w *BitWriter) WriteBits(v uint64, n int) {
	if w.err != nil || n <= 0 {
		return
	}
	if n < 64 {
		v &= 1<<uint(n) - 1
	}
	w.fail(w.codec.Write(uint8(n), v))
	w.pos += n
}

// WriteBool appends a single bit.
func (w *BitWriter) WriteBool(b bool) {
	if b {
		w.WriteBits(1, 1)
		return
	}
	w.WriteBits(0, 1)
}

// WriteBitString appends the first n bits of the left aligned in.
func (w *BitWriter) WriteBitString(in []byte, n int) {
	if w.err != nil {
		return
	}
	full := n / 8
	if full > 0 {
		w.fail(w.codec.WriteBytes(in[:full]))
		w.pos += full * 8
	}
	if rem := n % 8; rem != 0 {
		w.WriteBits(uint64(in[full]>>uint(8-rem)), rem)
	}
}

// WriteOctets appends whole octets.
func (w *BitWriter) WriteOctets(in []byte) {
	w.WriteBitString(in, len(in)*8)
}
