// Copyright 2019-2021 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package per

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Type is an ASN.1 type descriptor. Descriptors are static values built
// once, shared by any number of concurrent decoders and encoders.
type Type interface {
	TypeName() string
	Kind() Kind
	decode(d *decoder, name string) (*Item, error)
	encode(e *encoder, it *Item) error
}

// Key names a value that a later open type in the same SEQUENCE is
// selected by.
type Key int

const (
	NoKey Key = iota
	KeyProcedureCode
	KeyProtocolIEID
	numKeys
)

// Labels maps integer values to display strings.
type Labels map[int64]string

// Integer is the INTEGER type. A SemiConstrained integer has only a lower
// bound (LB..MAX) and UB is ignored. ExtLB..ExtUB is the extension
// addition range of an extensible type, when it names one.
type Integer struct {
	Name            string
	LB, UB          int64
	Ext             bool
	ExtLB, ExtUB    int64
	SemiConstrained bool
	Labels          Labels
	Key             Key // records the decoded value in the sequence scope
}

func (t *Integer) hasExtRange() bool {
	return t.Ext && t.ExtUB > t.ExtLB
}

// check reports a value no encoding of t can carry.
func (t *Integer) check(v int64) error {
	if t.SemiConstrained || !t.Ext {
		return nil
	}
	if v >= t.LB && v <= t.UB {
		return nil
	}
	if t.hasExtRange() && (v < t.ExtLB || v > t.ExtUB) {
		return errors.Wrapf(ErrOutOfRange,
			"integer %d (should be %d..%d or %d..%d)", v, t.LB, t.UB,
			t.ExtLB, t.ExtUB)
	}
	return nil
}

func (t *Integer) TypeName() string { return t.Name }
func (t *Integer) Kind() Kind       { return KindInteger }

func (t *Integer) decode(d *decoder, name string) (it *Item, err error) {
	it = d.begin(name, t)
	var v int64
	var extended bool
	switch {
	case t.SemiConstrained && t.Ext:
		if extended, err = d.r.ReadBool(); err != nil {
			return
		}
		if extended {
			v, err = DecUnconstrainedWholeNumber(d.r)
		} else {
			v, err = DecSemiConstrainedWholeNumber(d.r, t.LB)
		}
	case t.SemiConstrained:
		v, err = DecSemiConstrainedWholeNumber(d.r, t.LB)
	default:
		v, extended, err = DecInteger(d.r, t.LB, t.UB, t.Ext)
	}
	if err != nil {
		return
	}
	it.Int = v
	it.Extended = extended
	it.Label = t.Labels[v]
	d.record(t.Key, v)
	d.end(it)
	return
}

func (t *Integer) encode(e *encoder, it *Item) (err error) {
	v := it.Int
	if err = t.check(v); err != nil {
		return
	}
	switch {
	case t.SemiConstrained && t.Ext:
		e.w.WriteBool(v < t.LB)
		if v < t.LB {
			err = EncUnconstrainedWholeNumber(e.w, v)
		} else {
			err = EncSemiConstrainedWholeNumber(e.w, v, t.LB)
		}
	case t.SemiConstrained:
		err = EncSemiConstrainedWholeNumber(e.w, v, t.LB)
	default:
		err = EncInteger(e.w, v, t.LB, t.UB, t.Ext)
	}
	if err == nil {
		e.record(t.Key, v)
	}
	return
}

// Enumerated is the ENUMERATED type. Items are the root enumerations in
// index order, Additions the ones after the extension marker.
type Enumerated struct {
	Name      string
	Items     []string
	Ext       bool
	Additions []string
}

func (t *Enumerated) TypeName() string { return t.Name }
func (t *Enumerated) Kind() Kind       { return KindEnumerated }

func (t *Enumerated) label(index int) string {
	if index < len(t.Items) {
		return t.Items[index]
	}
	if a := index - len(t.Items); a < len(t.Additions) {
		return t.Additions[a]
	}
	return ""
}

func (t *Enumerated) index(label string) (int, bool) {
	for i, s := range t.Items {
		if s == label {
			return i, true
		}
	}
	for i, s := range t.Additions {
		if s == label {
			return len(t.Items) + i, true
		}
	}
	return 0, false
}

func (t *Enumerated) decode(d *decoder, name string) (it *Item, err error) {
	it = d.begin(name, t)
	idx, extended, err := DecEnumerated(d.r, len(t.Items), t.Ext)
	if err != nil {
		return
	}
	it.Int = int64(idx)
	it.Extended = extended
	it.Label = t.label(idx)
	d.end(it)
	return
}

func (t *Enumerated) encode(e *encoder, it *Item) (err error) {
	idx := int(it.Int)
	if it.Label != "" {
		var ok bool
		if idx, ok = t.index(it.Label); !ok {
			err = errors.Wrapf(ErrMismatch, "no enumeration %q in %s",
				it.Label, t.Name)
			return
		}
	}
	err = EncEnumerated(e.w, idx, len(t.Items), t.Ext)
	return
}

// Boolean is the BOOLEAN type.
type Boolean struct {
	Name string
}

func (t *Boolean) TypeName() string { return t.Name }
func (t *Boolean) Kind() Kind       { return KindBoolean }

func (t *Boolean) decode(d *decoder, name string) (it *Item, err error) {
	it = d.begin(name, t)
	b, err := d.r.ReadBool()
	if err != nil {
		return
	}
	if b {
		it.Int = 1
	}
	d.end(it)
	return
}

func (t *Boolean) encode(e *encoder, it *Item) error {
	e.w.WriteBool(it.Int != 0)
	return nil
}

// Null is the NULL type, encoded in zero bits.
type Null struct {
	Name string
}

func (t *Null) TypeName() string { return t.Name }
func (t *Null) Kind() Kind       { return KindNull }

func (t *Null) decode(d *decoder, name string) (*Item, error) {
	it := d.begin(name, t)
	d.end(it)
	return it, nil
}

func (t *Null) encode(e *encoder, it *Item) error { return nil }

// BitString is the BIT STRING type with SIZE(LB..UB).
type BitString struct {
	Name   string
	LB, UB int
	Ext    bool
}

func (t *BitString) TypeName() string { return t.Name }
func (t *BitString) Kind() Kind       { return KindBitString }

func (t *BitString) decode(d *decoder, name string) (it *Item, err error) {
	it = d.begin(name, t)
	if it.Bytes, it.Bits, err = DecBitString(d.r, t.LB, t.UB, t.Ext); err != nil {
		return
	}
	d.end(it)
	return
}

func (t *BitString) encode(e *encoder, it *Item) error {
	return EncBitString(e.w, it.Bytes, it.Bits, t.LB, t.UB, t.Ext)
}

// OctetString is the OCTET STRING type with SIZE(LB..UB); UB is NoBound
// for an unconstrained string.
type OctetString struct {
	Name   string
	LB, UB int
	Ext    bool
}

func (t *OctetString) TypeName() string { return t.Name }
func (t *OctetString) Kind() Kind       { return KindOctetString }

func (t *OctetString) decode(d *decoder, name string) (it *Item, err error) {
	it = d.begin(name, t)
	if it.Bytes, err = DecOctetString(d.r, t.LB, t.UB, t.Ext); err != nil {
		return
	}
	d.end(it)
	return
}

func (t *OctetString) encode(e *encoder, it *Item) error {
	return EncOctetString(e.w, it.Bytes, t.LB, t.UB, t.Ext)
}

// ObjectIdentifier is the OBJECT IDENTIFIER type,
// 24. a length octet followed by the BER contents octets.
type ObjectIdentifier struct {
	Name string
}

func (t *ObjectIdentifier) TypeName() string { return t.Name }
func (t *ObjectIdentifier) Kind() Kind       { return KindObjectIdentifier }

func (t *ObjectIdentifier) decode(d *decoder, name string) (
	it *Item, err error) {

	it = d.begin(name, t)
	n, err := DecLengthDeterminant(d.r, 0, NoBound)
	if err != nil {
		return
	}
	if it.Bytes, err = d.r.ReadOctets(n); err != nil {
		return
	}
	arcs, err := decOIDContents(it.Bytes)
	if err != nil {
		return
	}
	it.Label = formatOID(arcs)
	d.end(it)
	return
}

func (t *ObjectIdentifier) encode(e *encoder, it *Item) (err error) {
	if err = EncLengthDeterminant(e.w, len(it.Bytes), 0, NoBound); err != nil {
		return
	}
	e.w.WriteOctets(it.Bytes)
	return
}

func encOIDContents(arcs []uint64) (b []byte) {
	if len(arcs) < 2 {
		return
	}
	subids := append([]uint64{arcs[0]*40 + arcs[1]}, arcs[2:]...)
	for _, s := range subids {
		var tmp []byte
		tmp = append(tmp, byte(s&0x7f))
		for s >>= 7; s > 0; s >>= 7 {
			tmp = append([]byte{byte(s&0x7f) | 0x80}, tmp...)
		}
		b = append(b, tmp...)
	}
	return
}

func decOIDContents(b []byte) (arcs []uint64, err error) {
	var v uint64
	for i, c := range b {
		v = v<<7 | uint64(c&0x7f)
		if c&0x80 != 0 {
			if i == len(b)-1 {
				err = errors.Wrap(ErrShortBuffer, "truncated object identifier")
				return
			}
			continue
		}
		if arcs == nil {
			first := v / 40
			if first > 2 {
				first = 2
			}
			arcs = append(arcs, first, v-first*40)
		} else {
			arcs = append(arcs, v)
		}
		v = 0
	}
	return
}

func formatOID(arcs []uint64) string {
	s := make([]string, len(arcs))
	for i, a := range arcs {
		s[i] = fmt.Sprint(a)
	}
	return strings.Join(s, ".")
}

// Field is a component of a SEQUENCE. Extension marks an extension
// addition, which is encoded as an open type after the root components.
type Field struct {
	Name      string
	Type      Type
	Optional  bool
	Extension bool
}

// Sequence is the SEQUENCE type.
type Sequence struct {
	Name   string
	Fields []Field
	Ext    bool
}

func (t *Sequence) TypeName() string { return t.Name }
func (t *Sequence) Kind() Kind       { return KindSequence }

func (t *Sequence) split() (root, additions []Field) {
	for _, f := range t.Fields {
		if f.Extension {
			additions = append(additions, f)
		} else {
			root = append(root, f)
		}
	}
	return
}

func (t *Sequence) decode(d *decoder, name string) (it *Item, err error) {
	it = d.begin(name, t)
	saved := d.enter()
	defer d.leave(saved)

	root, additions := t.split()
	optnum := 0
	for _, f := range root {
		if f.Optional {
			optnum++
		}
	}
	extended, optflag, err := DecSequence(d.r, t.Ext, optnum)
	if err != nil {
		return
	}
	it.Extended = extended

	k := 0
	for _, f := range root {
		if f.Optional {
			present := optflag[k]
			k++
			if !present {
				continue
			}
		}
		var child *Item
		if child, err = d.decode(f.Type, f.Name); err != nil {
			return
		}
		it.Children = append(it.Children, child)
	}

	if !extended {
		d.end(it)
		return
	}
	present, err := DecSequenceExtension(d.r)
	if err != nil {
		return
	}
	for i, p := range present {
		if !p {
			continue
		}
		var payload []byte
		var offset int
		if payload, offset, err = DecOpenType(d.r); err != nil {
			return
		}
		if i >= len(additions) {
			d.log.Debug("skipping unknown extension addition",
				"type", t.Name, "index", i, "octets", len(payload))
			continue
		}
		f := additions[i]
		var child *Item
		if child, err = d.decodePayload(f.Type, f.Name, payload,
			offset); err != nil {
			return
		}
		it.Children = append(it.Children, child)
	}
	d.end(it)
	return
}

func (t *Sequence) encode(e *encoder, it *Item) (err error) {
	saved := e.enter()
	defer e.leave(saved)

	for _, c := range it.Children {
		if !t.hasField(c.Name) {
			err = errors.Wrapf(ErrMismatch, "no field %q in %s", c.Name, t.Name)
			return
		}
	}

	root, additions := t.split()
	var optflag []bool
	for _, f := range root {
		if f.Optional {
			optflag = append(optflag, it.Child(f.Name) != nil)
		}
	}
	last := -1
	for i, f := range additions {
		if it.Child(f.Name) != nil {
			last = i
		}
	}
	extended := last >= 0
	if extended && !t.Ext {
		err = errors.Wrapf(ErrMismatch, "%s is not extensible", t.Name)
		return
	}
	if err = EncSequence(e.w, t.Ext, extended, optflag); err != nil {
		return
	}

	for _, f := range root {
		c := it.Child(f.Name)
		if c == nil {
			if f.Optional {
				continue
			}
			err = errors.Wrapf(ErrMismatch, "missing mandatory field %q",
				f.Name)
			return
		}
		if err = e.encode(f.Type, c); err != nil {
			return
		}
	}

	if !extended {
		return
	}
	present := make([]bool, last+1)
	for i := range present {
		present[i] = it.Child(additions[i].Name) != nil
	}
	if err = EncSequenceExtension(e.w, present); err != nil {
		return
	}
	for i, p := range present {
		if !p {
			continue
		}
		f := additions[i]
		var payload []byte
		if payload, err = e.encodePayload(f.Type, it.Child(f.Name)); err != nil {
			return
		}
		if err = EncOpenType(e.w, payload); err != nil {
			return
		}
	}
	return
}

func (t *Sequence) hasField(name string) bool {
	for _, f := range t.Fields {
		if f.Name == name {
			return true
		}
	}
	return false
}

// SequenceOf is the SEQUENCE (SIZE(LB..UB)) OF Elem type.
type SequenceOf struct {
	Name   string
	Elem   Type
	LB, UB int
	Ext    bool
}

func (t *SequenceOf) TypeName() string { return t.Name }
func (t *SequenceOf) Kind() Kind       { return KindSequenceOf }

func (t *SequenceOf) decode(d *decoder, name string) (it *Item, err error) {
	it = d.begin(name, t)
	num, err := DecSequenceOf(d.r, t.LB, t.UB, t.Ext)
	if err != nil {
		return
	}
	if num > d.r.Remaining() && t.Elem.Kind() != KindNull {
		err = errors.Wrapf(ErrShortBuffer, "%d components in %d bits",
			num, d.r.Remaining())
		return
	}
	elemName := t.Elem.TypeName()
	for i := 0; i < num; i++ {
		var child *Item
		if child, err = d.decode(t.Elem, elemName); err != nil {
			err = errors.WithMessagef(err, "item %d", i)
			return
		}
		it.Children = append(it.Children, child)
	}
	d.end(it)
	return
}

func (t *SequenceOf) encode(e *encoder, it *Item) (err error) {
	if err = EncSequenceOf(e.w, len(it.Children), t.LB, t.UB,
		t.Ext); err != nil {
		return
	}
	for i, c := range it.Children {
		if err = e.encode(t.Elem, c); err != nil {
			err = errors.WithMessagef(err, "item %d", i)
			return
		}
	}
	return
}

// Alternative is a CHOICE alternative. Extension marks an alternative
// after the extension marker, which is encoded as an open type.
type Alternative struct {
	Name      string
	Type      Type
	Extension bool
}

// Choice is the CHOICE type.
type Choice struct {
	Name string
	Alts []Alternative
	Ext  bool
}

func (t *Choice) TypeName() string { return t.Name }
func (t *Choice) Kind() Kind       { return KindChoice }

func (t *Choice) split() (root, additions []Alternative) {
	for _, a := range t.Alts {
		if a.Extension {
			additions = append(additions, a)
		} else {
			root = append(root, a)
		}
	}
	return
}

func (t *Choice) decode(d *decoder, name string) (it *Item, err error) {
	it = d.begin(name, t)
	root, additions := t.split()
	idx, extended, err := DecChoice(d.r, len(root), t.Ext)
	if err != nil {
		return
	}
	it.Int = int64(idx)
	it.Extended = extended

	var child *Item
	switch {
	case !extended:
		alt := root[idx]
		it.Label = alt.Name
		child, err = d.decode(alt.Type, alt.Name)
	default:
		var payload []byte
		var offset int
		if payload, offset, err = DecOpenType(d.r); err != nil {
			return
		}
		a := idx - len(root)
		if a < len(additions) {
			alt := additions[a]
			it.Label = alt.Name
			child, err = d.decodePayload(alt.Type, alt.Name, payload, offset)
		} else {
			d.log.Debug("unknown choice extension", "type", t.Name,
				"index", idx, "octets", len(payload))
			it.Label = "unknown-extension"
			child = &Item{Name: it.Label, Kind: KindOpenType,
				Bytes: payload, Offset: offset, Length: len(payload) * 8}
		}
	}
	if err != nil {
		return
	}
	it.Children = []*Item{child}
	d.end(it)
	return
}

func (t *Choice) encode(e *encoder, it *Item) (err error) {
	if len(it.Children) != 1 {
		err = errors.Wrapf(ErrMismatch, "%s needs exactly one alternative",
			t.Name)
		return
	}
	c := it.Children[0]
	root, additions := t.split()

	for i, alt := range root {
		if alt.Name == c.Name {
			if err = EncChoice(e.w, i, len(root), t.Ext); err != nil {
				return
			}
			return e.encode(alt.Type, c)
		}
	}
	for i, alt := range additions {
		if alt.Name == c.Name {
			if err = EncChoice(e.w, len(root)+i, len(root), t.Ext); err != nil {
				return
			}
			var payload []byte
			if payload, err = e.encodePayload(alt.Type, c); err != nil {
				return
			}
			return EncOpenType(e.w, payload)
		}
	}
	// an extension alternative this schema does not know, kept raw
	if it.Extended && c.Kind == KindOpenType && len(c.Children) == 0 &&
		int(it.Int) >= len(root) {
		if err = EncChoice(e.w, int(it.Int), len(root), t.Ext); err != nil {
			return
		}
		return EncOpenType(e.w, c.Bytes)
	}
	err = errors.Wrapf(ErrMismatch, "no alternative %q in %s", c.Name, t.Name)
	return
}

// OpenType is an open type field whose value type is looked up in a
// registry table by the value recorded under Key in the enclosing
// SEQUENCE. An empty Table keeps the value as raw octets.
type OpenType struct {
	Name  string
	Table string
	Key   Key
}

func (t *OpenType) TypeName() string { return t.Name }
func (t *OpenType) Kind() Kind       { return KindOpenType }

func (t *OpenType) resolve(reg *Registry, s *scope) (Type, int64, bool) {
	if t.Table == "" || reg == nil {
		return nil, 0, false
	}
	v, ok := s.get(t.Key)
	if !ok {
		return nil, 0, false
	}
	typ, ok := reg.Lookup(t.Table, v)
	return typ, v, ok
}

func (t *OpenType) decode(d *decoder, name string) (it *Item, err error) {
	it = d.begin(name, t)
	payload, offset, err := DecOpenType(d.r)
	if err != nil {
		return
	}
	typ, key, ok := t.resolve(d.reg, &d.scope)
	if !ok {
		if t.Table != "" {
			d.log.Debug("no dissector for open type", "table", t.Table,
				"key", key, "octets", len(payload))
		}
		it.Bytes = payload
		d.end(it)
		return
	}
	it.Label = typ.TypeName()
	child, err := d.decodePayload(typ, typ.TypeName(), payload, offset)
	if err != nil {
		return
	}
	it.Children = []*Item{child}
	d.end(it)
	return
}

func (t *OpenType) encode(e *encoder, it *Item) (err error) {
	if len(it.Children) == 0 {
		return EncOpenType(e.w, it.Bytes)
	}
	typ, key, ok := t.resolve(e.reg, &e.scope)
	if !ok {
		err = errors.Wrapf(ErrMismatch, "no type for key %d in table %q",
			key, t.Table)
		return
	}
	payload, err := e.encodePayload(typ, it.Children[0])
	if err != nil {
		return
	}
	return EncOpenType(e.w, payload)
}
