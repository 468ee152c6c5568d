// Copyright 2019-2021 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

// Package per is implementation for Packed Encoding Rule (PER) in
// ALIGNED variant, ITU-T X.691.
//
// The package has two layers. The primitive functions in this file encode
// and decode single PER fields on a BitWriter or BitReader. The type
// descriptors (Integer, Sequence, Choice, OpenType, ...) describe an ASN.1
// schema as static tables and a Codec walks them to turn an encoding into
// an Item tree and back.
package per

import (
	"math/bits"

	"github.com/pkg/errors"
)

// NoBound marks an upper bound that is absent from a SIZE constraint.
const NoBound = -1

// 64K, the limit for constrained length determinants and bitmaps.
const sizeLimit = 65536

// octetsFor returns the number of octets needed to hold v, at least 1.
func octetsFor(v uint64) int {
	n := (bits.Len64(v) + 7) / 8
	if n == 0 {
		n = 1
	}
	return n
}

// EncConstrainedWholeNumber is the implementation for
// 10.5 Encoding of constrained whole number.
func EncConstrainedWholeNumber(w *BitWriter, input, min, max int64) (err error) {

	if input < min || input > max {
		err = errors.Wrapf(ErrOutOfRange,
			"constrained whole number %d (should be %d <= %d)",
			input, min, max)
		return
	}

	inputRange := uint64(max-min) + 1
	inputEnc := uint64(input - min)

	switch {
	case inputRange == 1: // empty bit-field
	case inputRange < 256: // the bit-field case
		w.WriteBits(inputEnc, bits.Len64(inputRange-1))
	case inputRange == 256: // the one-octet case
		w.Align()
		w.WriteBits(inputEnc, 8)
	case inputRange <= sizeLimit: // the two-octet case
		w.Align()
		w.WriteBits(inputEnc, 16)
	default: // the indefinite length case
		n := octetsFor(inputEnc)
		err = EncConstrainedWholeNumber(w, int64(n), 1,
			int64(octetsFor(inputRange-1)))
		if err != nil {
			return
		}
		w.Align()
		w.WriteBits(inputEnc, n*8)
	}
	return
}

// DecConstrainedWholeNumber is the decoder for
// 10.5 Encoding of constrained whole number.
func DecConstrainedWholeNumber(r *BitReader, min, max int64) (
	v int64, err error) {

	if max < min {
		err = errors.Wrapf(ErrOutOfRange, "invalid range min=%d, max=%d",
			min, max)
		return
	}

	inputRange := uint64(max-min) + 1

	var enc uint64
	switch {
	case inputRange == 1:
	case inputRange < 256:
		enc, err = r.ReadBits(bits.Len64(inputRange - 1))
	case inputRange == 256:
		r.Align()
		enc, err = r.ReadBits(8)
	case inputRange <= sizeLimit:
		r.Align()
		enc, err = r.ReadBits(16)
	default:
		var n int64
		n, err = DecConstrainedWholeNumber(r, 1,
			int64(octetsFor(inputRange-1)))
		if err != nil {
			return
		}
		r.Align()
		enc, err = r.ReadBits(int(n) * 8)
	}
	if err != nil {
		return
	}
	if enc >= inputRange {
		err = errors.Wrapf(ErrOutOfRange,
			"constrained whole number offset %d in range %d",
			enc, inputRange)
		return
	}
	v = min + int64(enc)
	return
}

// EncNormallySmallNonNegativeWholeNumber is the implementation for
// 10.6 Encoding of a normally small non-negative whole number.
func EncNormallySmallNonNegativeWholeNumber(w *BitWriter, input uint64) (
	err error) {

	if input <= 63 {
		w.WriteBits(0, 1)
		w.WriteBits(input, 6)
		return
	}
	w.WriteBits(1, 1)
	err = EncSemiConstrainedWholeNumber(w, int64(input), 0)
	return
}

// DecNormallySmallNonNegativeWholeNumber is the decoder for
// 10.6 Encoding of a normally small non-negative whole number.
func DecNormallySmallNonNegativeWholeNumber(r *BitReader) (
	v uint64, err error) {

	large, err := r.ReadBool()
	if err != nil {
		return
	}
	if !large {
		v, err = r.ReadBits(6)
		return
	}
	n, err := DecSemiConstrainedWholeNumber(r, 0)
	v = uint64(n)
	return
}

// EncSemiConstrainedWholeNumber is the implementation for
// 10.7 Encoding of a semi-constrained whole number.
func EncSemiConstrainedWholeNumber(w *BitWriter, input, min int64) (
	err error) {

	if input < min {
		err = errors.Wrapf(ErrOutOfRange,
			"semi-constrained whole number %d (should be >= %d)",
			input, min)
		return
	}
	enc := uint64(input - min)
	n := octetsFor(enc)
	if err = EncLengthDeterminant(w, n, 0, NoBound); err != nil {
		return
	}
	w.WriteBits(enc, n*8)
	return
}

// DecSemiConstrainedWholeNumber is the decoder for
// 10.7 Encoding of a semi-constrained whole number.
func DecSemiConstrainedWholeNumber(r *BitReader, min int64) (
	v int64, err error) {

	n, err := DecLengthDeterminant(r, 0, NoBound)
	if err != nil {
		return
	}
	if n < 1 || n > 8 {
		err = errors.Wrapf(ErrUnsupported,
			"semi-constrained whole number of %d octets", n)
		return
	}
	enc, err := r.ReadBits(n * 8)
	v = min + int64(enc)
	return
}

// EncUnconstrainedWholeNumber is the implementation for
// 10.8 Encoding of an unconstrained whole number.
func EncUnconstrainedWholeNumber(w *BitWriter, input int64) (err error) {

	n := 1
	for n < 8 {
		lim := int64(1) << uint(n*8-1)
		if input >= -lim && input < lim {
			break
		}
		n++
	}
	if err = EncLengthDeterminant(w, n, 0, NoBound); err != nil {
		return
	}
	w.WriteBits(uint64(input), n*8)
	return
}

// DecUnconstrainedWholeNumber is the decoder for
// 10.8 Encoding of an unconstrained whole number.
func DecUnconstrainedWholeNumber(r *BitReader) (v int64, err error) {

	n, err := DecLengthDeterminant(r, 0, NoBound)
	if err != nil {
		return
	}
	if n < 1 || n > 8 {
		err = errors.Wrapf(ErrUnsupported,
			"unconstrained whole number of %d octets", n)
		return
	}
	enc, err := r.ReadBits(n * 8)
	if err != nil {
		return
	}
	shift := uint(64 - n*8)
	v = int64(enc<<shift) >> shift
	return
}

// EncLengthDeterminant is the implementation for
// 10.9 General rules for encoding a length determinant.
// max is NoBound when the SIZE constraint has no upper bound.
func EncLengthDeterminant(w *BitWriter, input, min, max int) (err error) {

	if max != NoBound && max < sizeLimit {
		err = EncConstrainedWholeNumber(w, int64(input), int64(min),
			int64(max))
		return
	}

	w.Align()
	switch {
	case input < 0:
		err = errors.Wrapf(ErrOutOfRange, "negative length %d", input)
	case input < 128:
		w.WriteBits(uint64(input), 8)
	case input < 16384:
		w.WriteBits(uint64(input)|0x8000, 16)
	default:
		// fragmentation is not implemented yet.
		err = errors.Wrapf(ErrUnsupported, "length %d needs fragmentation",
			input)
	}
	return
}

// DecLengthDeterminant is the decoder for
// 10.9 General rules for encoding a length determinant.
func DecLengthDeterminant(r *BitReader, min, max int) (length int, err error) {

	if max != NoBound && max < sizeLimit {
		var v int64
		v, err = DecConstrainedWholeNumber(r, int64(min), int64(max))
		length = int(v)
		return
	}

	r.Align()
	first, err := r.ReadBits(8)
	if err != nil {
		return
	}
	switch {
	case first&0x80 == 0:
		length = int(first)
	case first&0xc0 == 0x80:
		var second uint64
		if second, err = r.ReadBits(8); err != nil {
			return
		}
		length = int(first&0x3f)<<8 | int(second)
	default:
		err = errors.Wrap(ErrUnsupported, "fragmented length determinant")
		return
	}
	if length < min {
		err = errors.Wrapf(ErrOutOfRange, "length %d (should be >= %d)",
			length, min)
	}
	return
}

// EncInteger is the implementation for
// 12. Encoding the integer type
// for the single value and constrained whole number cases. A value out of
// the root range of an extensible type is encoded as unconstrained.
func EncInteger(w *BitWriter, input, min, max int64, extmark bool) (
	err error) {

	inRoot := input >= min && input <= max
	if extmark {
		w.WriteBool(!inRoot)
		if !inRoot {
			err = EncUnconstrainedWholeNumber(w, input)
			return
		}
	}

	// 12.2.1 single value
	if min == max {
		if !inRoot {
			err = errors.Wrapf(ErrOutOfRange,
				"integer %d (should be %d)", input, min)
		}
		return
	}

	// 12.2.2 constrained whole number
	err = EncConstrainedWholeNumber(w, input, min, max)
	return
}

// DecInteger is the decoder for
// 12. Encoding the integer type.
func DecInteger(r *BitReader, min, max int64, extmark bool) (
	v int64, extended bool, err error) {

	if extmark {
		if extended, err = r.ReadBool(); err != nil {
			return
		}
		if extended {
			v, err = DecUnconstrainedWholeNumber(r)
			return
		}
	}
	if min == max {
		v = min
		return
	}
	v, err = DecConstrainedWholeNumber(r, min, max)
	return
}

// EncEnumerated is the implementation for
// 13. Encoding the enumerated type.
// count is the number of root enumerations; an index >= count is an
// extension addition.
func EncEnumerated(w *BitWriter, index, count int, extmark bool) (
	err error) {

	if index < 0 || (!extmark && index >= count) {
		err = errors.Wrapf(ErrOutOfRange,
			"enumerated index %d (should be < %d)", index, count)
		return
	}
	if extmark {
		w.WriteBool(index >= count)
		if index >= count {
			err = EncNormallySmallNonNegativeWholeNumber(w,
				uint64(index-count))
			return
		}
	}
	err = EncConstrainedWholeNumber(w, int64(index), 0, int64(count-1))
	return
}

// DecEnumerated is the decoder for
// 13. Encoding the enumerated type.
func DecEnumerated(r *BitReader, count int, extmark bool) (
	index int, extended bool, err error) {

	if extmark {
		if extended, err = r.ReadBool(); err != nil {
			return
		}
		if extended {
			var n uint64
			n, err = DecNormallySmallNonNegativeWholeNumber(r)
			index = count + int(n)
			return
		}
	}
	v, err := DecConstrainedWholeNumber(r, 0, int64(count-1))
	index = int(v)
	return
}

// encSize writes the optional extension bit and the length determinant
// shared by bit strings, octet strings and sequence-of (16, 17, 19).
// It reports whether a length field was written.
func encSize(w *BitWriter, n, min, max int, extmark bool) (
	written bool, err error) {

	inRoot := n >= min && (max == NoBound || n <= max)
	if extmark {
		w.WriteBool(!inRoot)
		if !inRoot {
			err = EncLengthDeterminant(w, n, 0, NoBound)
			written = true
			return
		}
	} else if !inRoot {
		err = errors.Wrapf(ErrOutOfRange, "size %d (should be %d..%d)",
			n, min, max)
		return
	}
	if min == max && max < sizeLimit {
		return
	}
	err = EncLengthDeterminant(w, n, min, max)
	written = true
	return
}

func decSize(r *BitReader, min, max int, extmark bool) (
	n int, fixed bool, err error) {

	if extmark {
		var extended bool
		if extended, err = r.ReadBool(); err != nil {
			return
		}
		if extended {
			n, err = DecLengthDeterminant(r, 0, NoBound)
			return
		}
	}
	if min == max && max < sizeLimit {
		n = min
		fixed = true
		return
	}
	n, err = DecLengthDeterminant(r, min, max)
	return
}

// EncBitString is the implementation for
// 16. Encoding the bitstring type.
// input holds inputlen bits, left aligned.
func EncBitString(w *BitWriter, input []byte, inputlen, min, max int,
	extmark bool) (err error) {

	if len(input)*8 < inputlen {
		err = errors.Wrapf(ErrMismatch,
			"bit string of %d octets is too short for %d bits",
			len(input), inputlen)
		return
	}

	lengthWritten, err := encSize(w, inputlen, min, max, extmark)
	if err != nil {
		return
	}
	switch {
	case inputlen == 0:
	case !lengthWritten && inputlen <= 16: // 16.9 not octet-aligned
	default:
		w.Align()
	}
	w.WriteBitString(input, inputlen)
	return
}

// DecBitString is the decoder for
// 16. Encoding the bitstring type.
func DecBitString(r *BitReader, min, max int, extmark bool) (
	v []byte, bitlen int, err error) {

	bitlen, fixed, err := decSize(r, min, max, extmark)
	if err != nil {
		return
	}
	switch {
	case bitlen == 0:
	case fixed && bitlen <= 16:
	default:
		r.Align()
	}
	v, err = r.ReadBitString(bitlen)
	return
}

// EncOctetString is the implementation for
// 17. Encoding the octetstring type.
func EncOctetString(w *BitWriter, input []byte, min, max int,
	extmark bool) (err error) {

	inputlen := len(input)
	lengthWritten, err := encSize(w, inputlen, min, max, extmark)
	if err != nil {
		return
	}
	switch {
	case inputlen == 0:
	case !lengthWritten && inputlen <= 2: // 17.6 not octet-aligned
	default:
		w.Align()
	}
	w.WriteOctets(input)
	return
}

// DecOctetString is the decoder for
// 17. Encoding the octetstring type.
func DecOctetString(r *BitReader, min, max int, extmark bool) (
	v []byte, err error) {

	n, fixed, err := decSize(r, min, max, extmark)
	if err != nil {
		return
	}
	switch {
	case n == 0:
	case fixed && n <= 2:
	default:
		r.Align()
	}
	v, err = r.ReadOctets(n)
	return
}

// EncSequence writes the Sequence Preamble:
// 18. Encoding the sequence type
// the extension bit followed by one presence bit per optional field.
func EncSequence(w *BitWriter, extmark, extended bool, optflag []bool) (
	err error) {

	if len(optflag) >= sizeLimit {
		err = errors.Wrapf(ErrUnsupported, "%d optional fields",
			len(optflag))
		return
	}
	if extmark {
		w.WriteBool(extended)
	}
	for _, present := range optflag {
		w.WriteBool(present)
	}
	return
}

// DecSequence reads the Sequence Preamble.
func DecSequence(r *BitReader, extmark bool, optnum int) (
	extended bool, optflag []bool, err error) {

	if extmark {
		if extended, err = r.ReadBool(); err != nil {
			return
		}
	}
	optflag = make([]bool, optnum)
	for i := range optflag {
		if optflag[i], err = r.ReadBool(); err != nil {
			return
		}
	}
	return
}

// EncSequenceExtension writes the bitmap of present extension additions,
// 18.7 and 18.8.
func EncSequenceExtension(w *BitWriter, present []bool) (err error) {

	if len(present) == 0 {
		err = errors.Wrap(ErrMismatch, "empty extension bitmap")
		return
	}
	if err = EncNormallySmallNonNegativeWholeNumber(w,
		uint64(len(present)-1)); err != nil {
		return
	}
	for _, p := range present {
		w.WriteBool(p)
	}
	return
}

// DecSequenceExtension reads the bitmap of present extension additions.
func DecSequenceExtension(r *BitReader) (present []bool, err error) {

	n, err := DecNormallySmallNonNegativeWholeNumber(r)
	if err != nil {
		return
	}
	if n+1 > uint64(r.Remaining()) {
		err = ErrShortBuffer
		return
	}
	present = make([]bool, n+1)
	for i := range present {
		if present[i], err = r.ReadBool(); err != nil {
			return
		}
	}
	return
}

// EncSequenceOf writes the number of components,
// 19. Encoding the sequence-of type.
func EncSequenceOf(w *BitWriter, num, min, max int, extmark bool) (
	err error) {
	_, err = encSize(w, num, min, max, extmark)
	return
}

// DecSequenceOf reads the number of components.
func DecSequenceOf(r *BitReader, min, max int, extmark bool) (
	num int, err error) {
	num, _, err = decSize(r, min, max, extmark)
	return
}

// EncChoice is the implementation for
// 22. Encoding the choice type.
// count is the number of root alternatives; an index >= count selects an
// extension addition, whose value the caller writes as an open type.
func EncChoice(w *BitWriter, index, count int, extmark bool) (err error) {

	if index < 0 || (!extmark && index >= count) {
		err = errors.Wrapf(ErrOutOfRange,
			"choice index %d (should be < %d)", index, count)
		return
	}
	if extmark {
		w.WriteBool(index >= count)
		if index >= count {
			err = EncNormallySmallNonNegativeWholeNumber(w,
				uint64(index-count))
			return
		}
	}
	err = EncConstrainedWholeNumber(w, int64(index), 0, int64(count-1))
	return
}

// DecChoice is the decoder for
// 22. Encoding the choice type.
func DecChoice(r *BitReader, count int, extmark bool) (
	index int, extended bool, err error) {
	return DecEnumerated(r, count, extmark)
}

// EncOpenType is the implementation for
// 10.2 The open type field: an unconstrained length determinant followed
// by the complete encoding of the value. An empty encoding is replaced by
// a single zero octet (10.1.3).
func EncOpenType(w *BitWriter, value []byte) (err error) {

	if len(value) == 0 {
		value = []byte{0x00}
	}
	if err = EncLengthDeterminant(w, len(value), 0, NoBound); err != nil {
		return
	}
	w.WriteOctets(value)
	return
}

// DecOpenType is the decoder for 10.2 The open type field.
// It returns the payload and its absolute bit offset.
func DecOpenType(r *BitReader) (v []byte, offset int, err error) {

	n, err := DecLengthDeterminant(r, 0, NoBound)
	if err != nil {
		return
	}
	offset = r.Offset()
	v, err = r.ReadOctets(n)
	return
}
