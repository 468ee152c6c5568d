// Copyright 2019-2021 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package per

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"
)

// Registry maps (table, key) to the type of an open type value. It is
// filled at start-up and read concurrently afterwards.
type Registry struct {
	mu     sync.RWMutex
	tables map[string]map[int64]Type
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{tables: map[string]map[int64]Type{}}
}

// Register binds key in table to t, replacing an earlier binding.
func (r *Registry) Register(table string, key int64, t Type) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.tables[table]
	if !ok {
		m = map[int64]Type{}
		r.tables[table] = m
	}
	m[key] = t
}

// Lookup returns the type bound to key in table.
func (r *Registry) Lookup(table string, key int64) (t Type, ok bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok = r.tables[table][key]
	return
}

// Tables returns the table names in sorted order.
func (r *Registry) Tables() (names []string) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for name := range r.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// Keys returns the keys bound in table in ascending order.
func (r *Registry) Keys(table string) (keys []int64) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for k := range r.tables[table] {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return
}

// scope holds the key values seen so far in the innermost SEQUENCE.
type scope struct {
	set [numKeys]bool
	val [numKeys]int64
}

func (s *scope) put(k Key, v int64) {
	if k > NoKey && k < numKeys {
		s.set[k] = true
		s.val[k] = v
	}
}

func (s *scope) get(k Key) (int64, bool) {
	if k <= NoKey || k >= numKeys || !s.set[k] {
		return 0, false
	}
	return s.val[k], true
}

// Codec decodes and encodes values of the types in a schema, resolving
// open types through reg. A Codec keeps no state between calls.
type Codec struct {
	reg *Registry
	log hclog.Logger
}

// NewCodec returns a codec. reg may be nil, in which case every open type
// stays raw; a nil logger discards everything.
func NewCodec(reg *Registry, logger hclog.Logger) *Codec {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Codec{reg: reg, log: logger}
}

// Decode decodes a value of type t from b and returns the item tree and
// the number of octets consumed.
func (c *Codec) Decode(t Type, name string, b []byte) (
	it *Item, octets int, err error) {

	d := &decoder{
		r:   NewBitReader(b),
		reg: c.reg,
		log: c.log,
	}
	if it, err = d.decode(t, name); err != nil {
		return
	}
	octets = d.r.Consumed()
	octets += 7
	octets >>= 3
	return
}

// Encode encodes the item tree it as a value of type t. The result is at
// least one octet long.
func (c *Codec) Encode(t Type, it *Item) (b []byte, err error) {
	e := &encoder{
		w:   NewBitWriter(),
		reg: c.reg,
		log: c.log,
	}
	if err = e.encode(t, it); err != nil {
		return
	}
	if err = e.w.Err(); err != nil {
		return
	}
	b = e.w.Bytes()
	if len(b) == 0 {
		b = []byte{0x00}
	}
	return
}

type decoder struct {
	r      *BitReader
	reg    *Registry
	log    hclog.Logger
	scope  scope
	indent int
}

func (d *decoder) decode(t Type, name string) (it *Item, err error) {
	d.dprinti("%s (%s)", name, t.Kind())
	it, err = t.decode(d, name)
	d.indent--
	if err != nil {
		err = errors.WithMessage(err, name)
		return
	}
	if it.Kind != KindSequence && it.Kind != KindSequenceOf {
		d.dprint("%s", it.Text())
	}
	return
}

// decodePayload decodes an open type payload found at the absolute bit
// offset, with a reader of its own.
func (d *decoder) decodePayload(t Type, name string, payload []byte,
	offset int) (it *Item, err error) {

	outer := d.r
	d.r = newSubReader(payload, offset)
	defer func() { d.r = outer }()
	return d.decode(t, name)
}

func (d *decoder) begin(name string, t Type) *Item {
	return &Item{
		Name:   name,
		Type:   t.TypeName(),
		Kind:   t.Kind(),
		Offset: d.r.Offset(),
	}
}

func (d *decoder) end(it *Item) {
	it.Length = d.r.Offset() - it.Offset
}

func (d *decoder) record(k Key, v int64) {
	d.scope.put(k, v)
}

func (d *decoder) enter() (saved scope) {
	saved = d.scope
	d.scope = scope{}
	return
}

func (d *decoder) leave(saved scope) {
	d.scope = saved
}

func (d *decoder) dprint(format string, v ...interface{}) {
	if !d.log.IsTrace() {
		return
	}
	d.log.Trace(strings.Repeat("  ", d.indent) + fmt.Sprintf(format, v...))
}

func (d *decoder) dprinti(format string, v ...interface{}) {
	d.dprint(format, v...)
	d.indent++
}

type encoder struct {
	w      *BitWriter
	reg    *Registry
	log    hclog.Logger
	scope  scope
	indent int
}

func (e *encoder) encode(t Type, it *Item) (err error) {
	if it == nil {
		return errors.Wrap(ErrMismatch, "nil item")
	}
	if it.Kind != t.Kind() {
		return errors.Wrapf(ErrMismatch, "%s: %s item for %s %s", it.Name,
			it.Kind, t.Kind(), t.TypeName())
	}
	if e.log.IsTrace() {
		e.log.Trace(strings.Repeat("  ", e.indent) + it.Text())
	}
	e.indent++
	err = t.encode(e, it)
	e.indent--
	if err != nil {
		err = errors.WithMessage(err, it.Name)
	}
	return
}

// encodePayload encodes it on a writer of its own, for an open type.
func (e *encoder) encodePayload(t Type, it *Item) (b []byte, err error) {
	outer := e.w
	e.w = NewBitWriter()
	defer func() { e.w = outer }()
	if err = e.encode(t, it); err != nil {
		return
	}
	if err = e.w.Err(); err != nil {
		return
	}
	b = e.w.Bytes()
	return
}

func (e *encoder) record(k Key, v int64) {
	e.scope.put(k, v)
}

func (e *encoder) enter() (saved scope) {
	saved = e.scope
	e.scope = scope{}
	return
}

func (e *encoder) leave(saved scope) {
	e.scope = saved
}
