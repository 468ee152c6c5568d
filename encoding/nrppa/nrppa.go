// Copyright 2019-2021 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

// Package nrppa is implementation for NR Positioning Protocol A (NRPPa)
// between the LMF and the NG-RAN node.
// document version: 3GPP TS 38.455 v16.4.0 (2021-07)
//
// The ASN.1 definitions of the protocol are held as static per.Type
// tables; decoding and encoding are done by the per.Codec walking them.
package nrppa

import (
	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"

	"github.com/hhorai/nrppa/encoding/per"
)

// ProtocolName is the label of the root item of a dissected PDU.
const ProtocolName = "NRPPa"

// Dissector decodes and encodes NRPPA-PDUs. It is safe for concurrent
// use.
type Dissector struct {
	codec *per.Codec
	log   hclog.Logger
}

// NewDissector returns a dissector using the NRPPa dissector tables.
// A nil logger discards everything.
func NewDissector(logger hclog.Logger) *Dissector {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Dissector{
		codec: per.NewCodec(Registry(), logger),
		log:   logger,
	}
}

// Dissect decodes one NRPPA-PDU from b. The returned root item is labelled
// NRPPa and holds the NRPPA-PDU choice; n is the number of octets consumed.
func (d *Dissector) Dissect(b []byte) (root *per.Item, n int, err error) {

	pdu, n, err := d.codec.Decode(PDU, PDU.Name, b)
	if err != nil {
		err = errors.WithMessage(err, "malformed NRPPa PDU")
		return
	}
	if n < len(b) {
		d.log.Debug("trailing octets after NRPPa PDU", "octets", len(b)-n)
	}

	root = &per.Item{
		Name:     ProtocolName,
		Type:     ProtocolName,
		Kind:     per.KindProtocol,
		Length:   n * 8,
		Children: []*per.Item{pdu},
	}
	return
}

// Encode encodes an NRPPA-PDU item, or a root item returned by Dissect.
func (d *Dissector) Encode(pdu *per.Item) (b []byte, err error) {

	if pdu != nil && pdu.Kind == per.KindProtocol {
		if len(pdu.Children) != 1 {
			err = errors.Wrap(per.ErrMismatch, "NRPPa root needs one PDU")
			return
		}
		pdu = pdu.Children[0]
	}
	if b, err = d.codec.Encode(PDU, pdu); err != nil {
		err = errors.WithMessage(err, "NRPPa PDU")
	}
	return
}
