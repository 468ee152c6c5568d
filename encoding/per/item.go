// Copyright 2019-2021 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package per

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Kind is the ASN.1 basic type of an Item.
type Kind int

const (
	KindProtocol Kind = iota // root of a protocol tree, no encoding
	KindInteger
	KindEnumerated
	KindBoolean
	KindNull
	KindBitString
	KindOctetString
	KindObjectIdentifier
	KindSequence
	KindSequenceOf
	KindChoice
	KindOpenType
)

var kindStr = map[Kind]string{
	KindProtocol:         "protocol",
	KindInteger:          "INTEGER",
	KindEnumerated:       "ENUMERATED",
	KindBoolean:          "BOOLEAN",
	KindNull:             "NULL",
	KindBitString:        "BIT STRING",
	KindOctetString:      "OCTET STRING",
	KindObjectIdentifier: "OBJECT IDENTIFIER",
	KindSequence:         "SEQUENCE",
	KindSequenceOf:       "SEQUENCE OF",
	KindChoice:           "CHOICE",
	KindOpenType:         "OPEN TYPE",
}

func (k Kind) String() string {
	if s, ok := kindStr[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Item is one node of a decoded value tree, the equivalent of a protocol
// tree item: what was decoded, how it is labelled and where it sits in the
// buffer. The same tree, built with the constructors below, is the input
// of the encoder.
type Item struct {
	Name     string // field name
	Type     string // ASN.1 type name
	Kind     Kind
	Int      int64  // INTEGER value, ENUMERATED/CHOICE index, BOOLEAN 0/1
	Bytes    []byte // string contents, or raw open type payload
	Bits     int    // BIT STRING length in bits
	Label    string
	Extended bool // value or alternative from the extension range
	Offset   int  // bit offset in the PDU
	Length   int  // bit length in the PDU
	Children []*Item
}

// Int returns an INTEGER item.
func Int(name string, v int64) *Item {
	return &Item{Name: name, Kind: KindInteger, Int: v}
}

// Enum returns an ENUMERATED item selected by its identifier.
func Enum(name, label string) *Item {
	return &Item{Name: name, Kind: KindEnumerated, Label: label}
}

// Bool returns a BOOLEAN item.
func Bool(name string, v bool) *Item {
	it := &Item{Name: name, Kind: KindBoolean}
	if v {
		it.Int = 1
	}
	return it
}

// NullValue returns a NULL item.
func NullValue(name string) *Item {
	return &Item{Name: name, Kind: KindNull}
}

// Bits returns a BIT STRING item of n bits, left aligned in b.
func Bits(name string, b []byte, n int) *Item {
	return &Item{Name: name, Kind: KindBitString, Bytes: b, Bits: n}
}

// Octets returns an OCTET STRING item.
func Octets(name string, b []byte) *Item {
	return &Item{Name: name, Kind: KindOctetString, Bytes: b}
}

// OID returns an OBJECT IDENTIFIER item from its arcs.
func OID(name string, arcs ...uint64) *Item {
	return &Item{Name: name, Kind: KindObjectIdentifier,
		Bytes: encOIDContents(arcs)}
}

// Seq returns a SEQUENCE item; absent optional fields are left out.
func Seq(name string, children ...*Item) *Item {
	return &Item{Name: name, Kind: KindSequence, Children: children}
}

// List returns a SEQUENCE OF item.
func List(name string, elems ...*Item) *Item {
	return &Item{Name: name, Kind: KindSequenceOf, Children: elems}
}

// Alt returns a CHOICE item; the alternative is selected by alt.Name.
func Alt(name string, alt *Item) *Item {
	return &Item{Name: name, Kind: KindChoice, Children: []*Item{alt}}
}

// Open returns an open type item whose value type is resolved through
// the registry when encoding.
func Open(name string, value *Item) *Item {
	return &Item{Name: name, Kind: KindOpenType, Children: []*Item{value}}
}

// Raw returns an open type item carrying an already encoded payload.
func Raw(name string, payload []byte) *Item {
	return &Item{Name: name, Kind: KindOpenType, Bytes: payload}
}

// Child returns the direct child called name, or nil.
func (it *Item) Child(name string) *Item {
	if it == nil {
		return nil
	}
	for _, c := range it.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Find returns the first item called name in depth-first order,
// including it itself, or nil.
func (it *Item) Find(name string) (found *Item) {
	it.Walk(func(c *Item) bool {
		if c.Name == name {
			found = c
			return false
		}
		return true
	})
	return
}

// FindAll returns every item called name in depth-first order.
func (it *Item) FindAll(name string) (found []*Item) {
	it.Walk(func(c *Item) bool {
		if c.Name == name {
			found = append(found, c)
		}
		return true
	})
	return
}

// Walk calls fn for it and its descendants in depth-first order until fn
// returns false.
func (it *Item) Walk(fn func(*Item) bool) bool {
	if it == nil {
		return true
	}
	if !fn(it) {
		return false
	}
	for _, c := range it.Children {
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}

// Text returns the one-line rendering of the item, without children.
func (it *Item) Text() string {
	switch it.Kind {
	case KindInteger:
		if it.Label != "" {
			return fmt.Sprintf("%s: %s (%d)", it.Name, it.Label, it.Int)
		}
		return fmt.Sprintf("%s: %d", it.Name, it.Int)
	case KindEnumerated:
		label := it.Label
		if label == "" {
			label = "unknown"
		}
		return fmt.Sprintf("%s: %s (%d)", it.Name, label, it.Int)
	case KindBoolean:
		return fmt.Sprintf("%s: %t", it.Name, it.Int != 0)
	case KindNull:
		return fmt.Sprintf("%s: NULL", it.Name)
	case KindBitString:
		return fmt.Sprintf("%s: %s [bit length %d]", it.Name,
			hex.EncodeToString(it.Bytes), it.Bits)
	case KindOctetString:
		return fmt.Sprintf("%s: %s", it.Name, hex.EncodeToString(it.Bytes))
	case KindObjectIdentifier:
		return fmt.Sprintf("%s: %s", it.Name, it.Label)
	case KindSequenceOf:
		unit := "items"
		if len(it.Children) == 1 {
			unit = "item"
		}
		return fmt.Sprintf("%s: %d %s", it.Name, len(it.Children), unit)
	case KindChoice:
		return fmt.Sprintf("%s: %s (%d)", it.Name, it.Label, it.Int)
	case KindOpenType:
		if len(it.Children) == 0 {
			return fmt.Sprintf("%s: [undecoded %d octets] %s", it.Name,
				len(it.Bytes), hex.EncodeToString(it.Bytes))
		}
	}
	return it.Name
}

// Format writes the item and its descendants as an indented tree.
func (it *Item) Format(w io.Writer) (err error) {
	return it.format(w, 0, "")
}

func (it *Item) format(w io.Writer, indent int, prefix string) (err error) {
	_, err = fmt.Fprintf(w, "%s%s%s\n", strings.Repeat("  ", indent),
		prefix, it.Text())
	if err != nil {
		return
	}
	for i, c := range it.Children {
		p := ""
		if it.Kind == KindSequenceOf {
			p = fmt.Sprintf("Item %d: ", i)
		}
		if err = c.format(w, indent+1, p); err != nil {
			return
		}
	}
	return
}

func (it *Item) String() string {
	var sb strings.Builder
	it.Format(&sb)
	return sb.String()
}

// MarshalJSON renders the tree with kind names and hex encoded strings.
func (it *Item) MarshalJSON() ([]byte, error) {
	type node struct {
		Name     string      `json:"name"`
		Type     string      `json:"type,omitempty"`
		Kind     string      `json:"kind"`
		Value    interface{} `json:"value,omitempty"`
		Bits     int         `json:"bits,omitempty"`
		Label    string      `json:"label,omitempty"`
		Extended bool        `json:"extended,omitempty"`
		Offset   int         `json:"offset"`
		Length   int         `json:"length"`
		Children []*Item     `json:"children,omitempty"`
	}
	n := node{
		Name:     it.Name,
		Type:     it.Type,
		Kind:     it.Kind.String(),
		Bits:     it.Bits,
		Label:    it.Label,
		Extended: it.Extended,
		Offset:   it.Offset,
		Length:   it.Length,
		Children: it.Children,
	}
	switch it.Kind {
	case KindInteger, KindEnumerated, KindChoice:
		n.Value = it.Int
	case KindBoolean:
		n.Value = it.Int != 0
	case KindBitString, KindOctetString, KindObjectIdentifier, KindOpenType:
		if it.Bytes != nil {
			n.Value = hex.EncodeToString(it.Bytes)
		}
	}
	return json.Marshal(n)
}
