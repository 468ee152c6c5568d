package per

import (
	"testing"

	"github.com/pkg/errors"
)

func compareSlice(actual, expect []byte) bool {
	if len(actual) != len(expect) {
		return false
	}
	for i := 0; i < len(actual); i++ {
		if actual[i] != expect[i] {
			return false
		}
	}
	return true
}

// run encodes with f on an empty writer.
func run(f func(w *BitWriter) error) (v []byte, bitlen int, err error) {
	w := NewBitWriter()
	if err = f(w); err == nil {
		err = w.Err()
	}
	v = w.Bytes()
	bitlen = w.Len()
	return
}

func TestEncConstrainedWholeNumber(t *testing.T) {

	pattern := []struct {
		in    int64
		min   int64
		max   int64
		ev    []byte
		evlen int
		eerr  bool
	}{
		{256, 0, 255, []byte{}, 0, true},
		{1, 0, 0, []byte{}, 0, true},
		{1, 1, 1, []byte{}, 0, false},
		{1, 0, 7, []byte{0x20}, 3, false},
		{2, 0, 2, []byte{0x80}, 2, false},
		{128, 0, 255, []byte{128}, 8, false},
		{256, 0, 65535, []byte{1, 0}, 16, false},
		{256, 0, 65536, []byte{0x40, 1, 0}, 24, false},
		{255, 0, 4294967295, []byte{0, 255}, 16, false},
		{0x0fffffff, 0, 4294967295, []byte{0xc0, 0x0f, 0xff, 0xff, 0xff}, 40, false},
	}

	for _, p := range pattern {

		out, outlen, err := run(func(w *BitWriter) error {
			return EncConstrainedWholeNumber(w, p.in, p.min, p.max)
		})

		if (p.eerr == true && err == nil) || (p.eerr == false && err != nil) {
			t.Errorf("pattern = %v\n", p)
			t.Errorf("expect error: %v, got %v", p.eerr, err)
			continue
		}
		if p.eerr {
			continue
		}
		if compareSlice(out, p.ev) == false || outlen != p.evlen {
			t.Errorf("pattern = %v\n", p)
			t.Errorf("expect value 0x%02x, got 0x%02x", p.ev, out)
			t.Errorf("expect length %d, got %d", p.evlen, outlen)
		}

		v, err := DecConstrainedWholeNumber(NewBitReader(out), p.min, p.max)
		if err != nil || v != p.in {
			t.Errorf("pattern = %v\n", p)
			t.Errorf("expect decoded %d, got %d (%v)", p.in, v, err)
		}
	}
}

func TestDecConstrainedWholeNumberOutOfRange(t *testing.T) {

	// 2 bits can carry 3 although the range is 0..2
	_, err := DecConstrainedWholeNumber(NewBitReader([]byte{0xc0}), 0, 2)
	if errors.Cause(err) != ErrOutOfRange {
		t.Errorf("expect %v, got %v", ErrOutOfRange, err)
	}

	_, err = DecConstrainedWholeNumber(NewBitReader([]byte{}), 0, 255)
	if errors.Cause(err) != ErrShortBuffer {
		t.Errorf("expect %v, got %v", ErrShortBuffer, err)
	}
}

func TestWholeNumbers(t *testing.T) {

	pattern := []struct {
		name  string
		enc   func(w *BitWriter) error
		ev    []byte
		evlen int
	}{
		{"normally small 5", func(w *BitWriter) error {
			return EncNormallySmallNonNegativeWholeNumber(w, 5)
		}, []byte{0x0a}, 7},
		{"normally small 64", func(w *BitWriter) error {
			return EncNormallySmallNonNegativeWholeNumber(w, 64)
		}, []byte{0x80, 0x01, 0x40}, 24},
		{"semi-constrained 256", func(w *BitWriter) error {
			return EncSemiConstrainedWholeNumber(w, 256, 0)
		}, []byte{0x02, 0x01, 0x00}, 24},
		{"unconstrained -1", func(w *BitWriter) error {
			return EncUnconstrainedWholeNumber(w, -1)
		}, []byte{0x01, 0xff}, 16},
		{"unconstrained 128", func(w *BitWriter) error {
			return EncUnconstrainedWholeNumber(w, 128)
		}, []byte{0x02, 0x00, 0x80}, 24},
		{"unconstrained -129", func(w *BitWriter) error {
			return EncUnconstrainedWholeNumber(w, -129)
		}, []byte{0x02, 0xff, 0x7f}, 24},
	}

	for _, p := range pattern {

		v, bitlen, err := run(p.enc)

		if err != nil || compareSlice(v, p.ev) == false || bitlen != p.evlen {
			t.Errorf("pattern = %s\n", p.name)
			t.Errorf("expect value 0x%02x, got 0x%02x", p.ev, v)
			t.Errorf("expect length %d, got %d", p.evlen, bitlen)
			t.Errorf("error: %v", err)
		}
	}

	n, err := DecNormallySmallNonNegativeWholeNumber(
		NewBitReader([]byte{0x80, 0x01, 0x40}))
	if err != nil || n != 64 {
		t.Errorf("expect 64, got %d (%v)", n, err)
	}
	u, err := DecUnconstrainedWholeNumber(NewBitReader([]byte{0x02, 0xff, 0x7f}))
	if err != nil || u != -129 {
		t.Errorf("expect -129, got %d (%v)", u, err)
	}
}

func TestEncLengthDeterminant(t *testing.T) {

	pattern := []struct {
		in     int
		min    int
		max    int
		v      []byte
		bitlen int
		err    bool
	}{
		{1, 0, 255, []byte{1}, 8, false},
		{3, 0, 7, []byte{0x60}, 3, false},
		{1, 0, NoBound, []byte{1}, 8, false},
		{16383, 0, NoBound, []byte{0xbf, 0xff}, 16, false},
		{16384, 0, NoBound, []byte{}, 0, true},
		{70000, 0, 65536, []byte{}, 0, true},
	}

	for _, p := range pattern {

		v, bitlen, err := run(func(w *BitWriter) error {
			return EncLengthDeterminant(w, p.in, p.min, p.max)
		})

		if (p.err == true && err == nil) || (p.err == false && err != nil) {
			t.Errorf("pattern = %v\n", p)
			t.Errorf("expect error: %v, got %v", p.err, err)
			continue
		}
		if p.err {
			continue
		}
		if compareSlice(v, p.v) == false || bitlen != p.bitlen {
			t.Errorf("pattern = %v\n", p)
			t.Errorf("expect value 0x%02x, got 0x%02x", p.v, v)
			t.Errorf("expect length %d, got %d", p.bitlen, bitlen)
		}
	}
}

func TestDecLengthDeterminant(t *testing.T) {

	pattern := []struct {
		in     []byte
		max    int
		length int
		err    bool
	}{
		{[]byte{}, NoBound, 0, true},
		{[]byte{0x7f}, NoBound, 0x7f, false},
		{[]byte{0x80, 0xff}, NoBound, 0xff, false},
		{[]byte{0xc1}, NoBound, 0, true},
		{[]byte{0x60}, 7, 3, false},
	}

	for _, p := range pattern {

		length, err := DecLengthDeterminant(NewBitReader(p.in), 0, p.max)

		if length != p.length ||
			(p.err == true && err == nil) || (p.err == false && err != nil) {

			t.Errorf("pattern = %v\n", p)
			t.Errorf("expect length %d, got %d", p.length, length)
			t.Errorf("expect error: %v, got %v", p.err, err)
		}
	}
}

func TestEncInteger(t *testing.T) {

	pattern := []struct {
		in     int64
		min    int64
		max    int64
		ext    bool
		v      []byte
		bitlen int
		err    bool
	}{
		{3, 0, 2, false, []byte{}, 0, true},
		{3, 0, 2, true, []byte{0x80, 0x01, 0x03}, 24, false},
		{2, 2, 2, false, []byte{}, 0, false},
		{2, 2, 2, true, []byte{0x00}, 1, false},
		{128, 0, 255, false, []byte{128}, 8, false},
		{1, 0, 7, true, []byte{0x10}, 4, false},
		{128, 0, 255, true, []byte{0x00, 128}, 16, false},
		{256, 0, 65535, false, []byte{1, 0}, 16, false},
		{1, 0, 4294967295, false, []byte{0, 1}, 16, false},
	}

	for _, p := range pattern {

		v, bitlen, err := run(func(w *BitWriter) error {
			return EncInteger(w, p.in, p.min, p.max, p.ext)
		})

		if (p.err == true && err == nil) || (p.err == false && err != nil) {
			t.Errorf("pattern = %v\n", p)
			t.Errorf("expect error: %v, got %v", p.err, err)
			continue
		}
		if p.err {
			continue
		}
		if compareSlice(v, p.v) == false || bitlen != p.bitlen {
			t.Errorf("pattern = %v\n", p)
			t.Errorf("expect value 0x%02x, got 0x%02x", p.v, v)
			t.Errorf("expect length %d, got %d", p.bitlen, bitlen)
		}

		out, extended, err := DecInteger(NewBitReader(v), p.min, p.max, p.ext)
		inRoot := p.in >= p.min && p.in <= p.max
		if err != nil || out != p.in || extended == inRoot {
			t.Errorf("pattern = %v\n", p)
			t.Errorf("expect decoded %d, got %d ext=%v (%v)",
				p.in, out, extended, err)
		}
	}
}

func TestEncEnumerated(t *testing.T) {

	pattern := []struct {
		in     int
		count  int
		ext    bool
		v      []byte
		bitlen int
		err    bool
	}{
		{3, 3, false, []byte{}, 0, true},
		{2, 3, false, []byte{0x80}, 2, false},
		{1, 3, true, []byte{0x20}, 3, false},
		{3, 3, true, []byte{0x80}, 8, false},
		{0, 1, false, []byte{}, 0, false},
	}

	for _, p := range pattern {

		v, bitlen, err := run(func(w *BitWriter) error {
			return EncEnumerated(w, p.in, p.count, p.ext)
		})

		if (p.err == true && err == nil) || (p.err == false && err != nil) {
			t.Errorf("pattern = %v\n", p)
			t.Errorf("expect error: %v, got %v", p.err, err)
			continue
		}
		if p.err {
			continue
		}
		if compareSlice(v, p.v) == false || bitlen != p.bitlen {
			t.Errorf("pattern = %v\n", p)
			t.Errorf("expect value 0x%02x, got 0x%02x", p.v, v)
			t.Errorf("expect length %d, got %d", p.bitlen, bitlen)
		}

		index, extended, err := DecEnumerated(NewBitReader(v), p.count, p.ext)
		if err != nil || index != p.in || extended != (p.in >= p.count) {
			t.Errorf("pattern = %v\n", p)
			t.Errorf("expect decoded %d, got %d ext=%v (%v)",
				p.in, index, extended, err)
		}
	}
}

func TestEncSequence(t *testing.T) {

	pattern := []struct {
		ext      bool
		extended bool
		flag     []bool
		v        []byte
		bitlen   int
	}{
		{true, false, []bool{false}, []byte{0x00}, 2},
		{false, false, []bool{true, false, true}, []byte{0xa0}, 3},
		{true, true, nil, []byte{0x80}, 1},
		{false, false, nil, []byte{}, 0},
	}

	for _, p := range pattern {

		v, bitlen, err := run(func(w *BitWriter) error {
			return EncSequence(w, p.ext, p.extended, p.flag)
		})

		if err != nil || compareSlice(v, p.v) == false || bitlen != p.bitlen {
			t.Errorf("pattern = %v\n", p)
			t.Errorf("expect value 0x%02x, got 0x%02x", p.v, v)
			t.Errorf("expect length %d, got %d", p.bitlen, bitlen)
			t.Errorf("error: %v", err)
		}

		extended, flag, err := DecSequence(NewBitReader(v), p.ext, len(p.flag))
		if err != nil || extended != p.extended || len(flag) != len(p.flag) {
			t.Errorf("pattern = %v\n", p)
			t.Errorf("decoded ext=%v flag=%v (%v)", extended, flag, err)
			continue
		}
		for i := range flag {
			if flag[i] != p.flag[i] {
				t.Errorf("pattern = %v, flag %d mismatch", p, i)
			}
		}
	}
}

func TestSequenceExtension(t *testing.T) {

	v, bitlen, err := run(func(w *BitWriter) error {
		return EncSequenceExtension(w, []bool{false, true})
	})
	// n-1 = 1 as normally small, then the bitmap 01
	if err != nil || compareSlice(v, []byte{0x02, 0x80}) == false || bitlen != 9 {
		t.Errorf("expect 0x0280/9, got 0x%02x/%d (%v)", v, bitlen, err)
	}

	present, err := DecSequenceExtension(NewBitReader(v))
	if err != nil || len(present) != 2 || present[0] || !present[1] {
		t.Errorf("decoded %v (%v)", present, err)
	}

	if _, _, err = run(func(w *BitWriter) error {
		return EncSequenceExtension(w, nil)
	}); err == nil {
		t.Errorf("expect error for an empty bitmap")
	}
}

func TestBitString(t *testing.T) {

	pattern := []struct {
		in    []byte
		inlen int
		min   int
		max   int
		ext   bool
		v     []byte
		vlen  int
		err   bool
	}{
		{[]byte{}, 0, 16, 63, false, []byte{}, 0, true},
		{[]byte{}, 100, 0, 63, false, []byte{}, 0, true},
		{[]byte{0, 0, 0}, 25, 22, 32, false, []byte{}, 0, true},
		{[]byte{0, 0}, 16, 16, 16, false, []byte{0, 0}, 16, false},
		{[]byte{0, 0x10}, 16, 0, 255, false, []byte{0x10, 0, 0x10}, 24, false},
		{[]byte{0, 0, 0x02}, 23, 22, 32, false, []byte{0x10, 0, 0, 0x02}, 31, false},
		{[]byte{0, 0, 0, 0x80}, 25, 22, 32, false, []byte{0x30, 0, 0, 0, 0x80}, 33, false},
		{[]byte{0xf0}, 4, 4, 4, true, []byte{0x78}, 5, false},
	}

	for _, p := range pattern {

		v, vlen, err := run(func(w *BitWriter) error {
			return EncBitString(w, p.in, p.inlen, p.min, p.max, p.ext)
		})

		if (p.err == true && err == nil) || (p.err == false && err != nil) {
			t.Errorf("pattern = %v\n", p)
			t.Errorf("expect error: %v, got %v", p.err, err)
			continue
		}
		if p.err {
			continue
		}
		if compareSlice(v, p.v) == false || vlen != p.vlen {
			t.Errorf("pattern = %v\n", p)
			t.Errorf("expect value 0x%02x, got 0x%02x", p.v, v)
			t.Errorf("expect length %d, got %d", p.vlen, vlen)
		}

		out, bitlen, err := DecBitString(NewBitReader(v), p.min, p.max, p.ext)
		if err != nil || bitlen != p.inlen || compareSlice(out, p.in) == false {
			t.Errorf("pattern = %v\n", p)
			t.Errorf("expect decoded 0x%02x/%d, got 0x%02x/%d (%v)",
				p.in, p.inlen, out, bitlen, err)
		}
	}
}

func TestOctetString(t *testing.T) {

	pattern := []struct {
		in   []byte
		min  int
		max  int
		ext  bool
		v    []byte
		vlen int
		err  bool
	}{
		{[]byte{0}, 16, 64, false, []byte{}, 0, true},
		{make([]byte, 8), 8, 8, false, make([]byte, 8), 64, false},
		{[]byte{0x01, 0x80}, 2, 2, true, []byte{0x00, 0xc0, 0x00}, 17, false},
		{make([]byte, 8), 8, 8, true, make([]byte, 9), 72, false},
		{make([]byte, 3), 0, NoBound, false, []byte{3, 0, 0, 0}, 32, false},
		{make([]byte, 3), 0, 7, true, []byte{0x30, 0, 0, 0}, 32, false},
		{[]byte{}, 0, NoBound, false, []byte{0}, 8, false},
	}

	for _, p := range pattern {

		v, vlen, err := run(func(w *BitWriter) error {
			return EncOctetString(w, p.in, p.min, p.max, p.ext)
		})

		if (p.err == true && err == nil) || (p.err == false && err != nil) {
			t.Errorf("pattern = %v\n", p)
			t.Errorf("expect error: %v, got %v", p.err, err)
			continue
		}
		if p.err {
			continue
		}
		if compareSlice(v, p.v) == false || vlen != p.vlen {
			t.Errorf("pattern = %v\n", p)
			t.Errorf("expect value 0x%02x, got 0x%02x", p.v, v)
			t.Errorf("expect length %d, got %d", p.vlen, vlen)
		}

		out, err := DecOctetString(NewBitReader(v), p.min, p.max, p.ext)
		if err != nil || compareSlice(out, p.in) == false {
			t.Errorf("pattern = %v\n", p)
			t.Errorf("expect decoded 0x%02x, got 0x%02x (%v)", p.in, out, err)
		}
	}
}

func TestChoice(t *testing.T) {

	pattern := []struct {
		input int
		count int
		mark  bool
		epv   []byte
		eplen int
		eerr  bool
	}{
		{0, 1, false, []byte{}, 0, false},
		{1, 3, false, []byte{0x40}, 2, false},
		{2, 2, true, []byte{0x80}, 8, false},
		{3, 3, false, []byte{}, 0, true},
	}

	for _, p := range pattern {

		pv, plen, err := run(func(w *BitWriter) error {
			return EncChoice(w, p.input, p.count, p.mark)
		})

		if (p.eerr == true && err == nil) || (p.eerr == false && err != nil) {
			t.Errorf("pattern = %v\n", p)
			t.Errorf("expect error: %v, got %v", p.eerr, err)
			continue
		}
		if p.eerr {
			continue
		}
		if compareSlice(pv, p.epv) == false || plen != p.eplen {
			t.Errorf("pattern = %v\n", p)
			t.Errorf("expect value 0x%02x, got 0x%02x", p.epv, pv)
			t.Errorf("expect length %d, got %d", p.eplen, plen)
		}

		index, _, err := DecChoice(NewBitReader(pv), p.count, p.mark)
		if err != nil || index != p.input {
			t.Errorf("pattern = %v, decoded %d (%v)", p, index, err)
		}
	}
}

func TestOpenType(t *testing.T) {

	pattern := []struct {
		in []byte
		v  []byte
	}{
		{nil, []byte{0x01, 0x00}},
		{[]byte{0xaa, 0xbb}, []byte{0x02, 0xaa, 0xbb}},
	}

	for _, p := range pattern {

		v, _, err := run(func(w *BitWriter) error {
			return EncOpenType(w, p.in)
		})

		if err != nil || compareSlice(v, p.v) == false {
			t.Errorf("pattern = %v\n", p)
			t.Errorf("expect value 0x%02x, got 0x%02x (%v)", p.v, v, err)
		}
	}

	// the payload offset is absolute, after the length octet
	r := NewBitReader([]byte{0x80, 0x02, 0xaa, 0xbb})
	r.ReadBool()
	payload, offset, err := DecOpenType(r)
	if err != nil || offset != 16 || compareSlice(payload, []byte{0xaa, 0xbb}) == false {
		t.Errorf("got 0x%02x at %d (%v)", payload, offset, err)
	}

	_, _, err = DecOpenType(NewBitReader([]byte{0x05, 0x00}))
	if errors.Cause(err) != ErrShortBuffer {
		t.Errorf("expect %v, got %v", ErrShortBuffer, err)
	}
}

func TestBitBuffer(t *testing.T) {

	w := NewBitWriter()
	w.WriteBits(0x5, 3)
	w.WriteBitString([]byte{0xab, 0xc0}, 12)
	w.Align()
	w.WriteOctets([]byte{0x01, 0x02})
	w.WriteBits(0x1ff, 4) // only the low bits are kept
	if w.Err() != nil {
		t.Fatalf("unexpected error %v", w.Err())
	}

	ev := []byte{0xb5, 0x78, 0x01, 0x02, 0xf0}
	if compareSlice(w.Bytes(), ev) == false || w.Len() != 36 {
		t.Errorf("expect 0x%02x (36 bits), got 0x%02x (%d bits)", ev,
			w.Bytes(), w.Len())
	}

	r := newSubReader(w.Bytes(), 80)
	if v, err := r.ReadBits(3); err != nil || v != 0x5 {
		t.Errorf("expect 5, got %d (%v)", v, err)
	}
	bs, err := r.ReadBitString(12)
	if err != nil || compareSlice(bs, []byte{0xab, 0xc0}) == false {
		t.Errorf("expect 0xabc0, got 0x%02x (%v)", bs, err)
	}
	r.Align()
	if r.Offset() != 96 || r.Consumed() != 16 || r.Remaining() != 24 {
		t.Errorf("offset %d consumed %d remaining %d", r.Offset(),
			r.Consumed(), r.Remaining())
	}
	o, err := r.ReadOctets(2)
	if err != nil || compareSlice(o, []byte{0x01, 0x02}) == false {
		t.Errorf("expect 0x0102, got 0x%02x (%v)", o, err)
	}
	if _, err = r.ReadBits(9); errors.Cause(err) != ErrShortBuffer {
		t.Errorf("expect ErrShortBuffer, got %v", err)
	}
}
