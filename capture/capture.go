// Copyright 2019-2021 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

// Package capture finds NRPPa PDUs in captured NGAP traffic.
package capture

import (
	"bufio"
	"encoding/binary"
	"io"
	"os"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"
	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"

	"github.com/hhorai/nrppa/encoding/ngap"
	"github.com/hhorai/nrppa/encoding/nrppa"
	"github.com/hhorai/nrppa/encoding/per"
)

const (
	chunkTypeData = 0
	pcapngMagic   = 0x0a0d0d0a
)

// Frame is one NRPPa PDU found in the capture.
type Frame struct {
	Packet    int
	Timestamp time.Time
	Stream    uint16
	Transport *ngap.Message
	PDU       *per.Item
	Summary   nrppa.Summary
}

// Reader extracts NGAP payloads from SCTP DATA chunks and dissects the
// NRPPa PDUs they carry. A Reader is not safe for concurrent use.
type Reader struct {
	PPID uint32

	dissector *nrppa.Dissector
	log       hclog.Logger
	fragments map[streamKey][]byte
}

// streamKey identifies an SCTP stream by the endpoints of its
// association in the direction of the packet.
type streamKey struct {
	network   gopacket.Flow
	transport gopacket.Flow
	stream    uint16
}

// NewReader returns a reader matching DATA chunks with the NGAP PPID.
func NewReader(d *nrppa.Dissector, logger hclog.Logger) *Reader {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Reader{
		PPID:      ngap.PPID,
		dissector: d,
		log:       logger,
		fragments: map[streamKey][]byte{},
	}
}

// ReadFile reads a pcap or pcapng file and calls fn for each NRPPa PDU.
func (r *Reader) ReadFile(name string, fn func(*Frame) error) (err error) {
	f, err := os.Open(name)
	if err != nil {
		return
	}
	defer f.Close()
	return r.Read(f, fn)
}

type packetSource interface {
	ReadPacketData() ([]byte, gopacket.CaptureInfo, error)
}

// Read reads a capture stream and calls fn for each NRPPa PDU. Packets
// that fail to dissect are logged and skipped; an error from fn stops
// the reading.
func (r *Reader) Read(in io.Reader, fn func(*Frame) error) (err error) {

	br := bufio.NewReader(in)
	magic, err := br.Peek(4)
	if err != nil {
		err = errors.Wrap(err, "capture: read file header")
		return
	}

	var src packetSource
	var linkType layers.LinkType
	if binary.BigEndian.Uint32(magic) == pcapngMagic {
		var ng *pcapgo.NgReader
		if ng, err = pcapgo.NewNgReader(br, pcapgo.DefaultNgReaderOptions); err != nil {
			err = errors.Wrap(err, "capture: pcapng")
			return
		}
		src, linkType = ng, ng.LinkType()
	} else {
		var pr *pcapgo.Reader
		if pr, err = pcapgo.NewReader(br); err != nil {
			err = errors.Wrap(err, "capture: pcap")
			return
		}
		src, linkType = pr, pr.LinkType()
	}
	r.log.Debug("reading capture", "linktype", linkType)

	for n := 1; ; n++ {
		data, ci, rerr := src.ReadPacketData()
		if rerr == io.EOF {
			return
		}
		if rerr != nil {
			err = errors.Wrapf(rerr, "capture: packet %d", n)
			return
		}
		for _, f := range r.Packet(n, data, linkType, ci.Timestamp) {
			if err = fn(f); err != nil {
				return
			}
		}
	}
}

// Packet decodes one captured packet and returns the NRPPa PDUs found in
// its SCTP DATA chunks.
func (r *Reader) Packet(n int, data []byte, linkType layers.LinkType,
	ts time.Time) (frames []*Frame) {

	pkt := gopacket.NewPacket(data, linkType, gopacket.DecodeOptions{
		Lazy:   true,
		NoCopy: true,
	})
	l := pkt.Layer(layers.LayerTypeSCTP)
	if l == nil {
		return
	}
	var key streamKey
	if nl := pkt.NetworkLayer(); nl != nil {
		key.network = nl.NetworkFlow()
	}
	if tl, ok := l.(gopacket.TransportLayer); ok {
		key.transport = tl.TransportFlow()
	}

	for _, chunk := range r.dataChunks(l.LayerPayload()) {
		if chunk.PayloadProtocol != layers.SCTPPayloadProtocol(r.PPID) {
			continue
		}
		key.stream = chunk.StreamId
		payload, ok := r.reassemble(key, chunk)
		if !ok {
			continue
		}
		f, err := r.Dissect(payload)
		if err != nil {
			if errors.Is(err, ngap.ErrNotNRPPa) {
				r.log.Trace("skipping NGAP message", "packet", n)
			} else {
				r.log.Warn("failed to dissect", "packet", n, "error", err)
			}
			continue
		}
		f.Packet = n
		f.Timestamp = ts
		f.Stream = chunk.StreamId
		frames = append(frames, f)
	}
	return
}

// dataChunks walks the chunks bundled in an SCTP packet.
func (r *Reader) dataChunks(b []byte) (chunks []*layers.SCTPData) {

	for len(b) >= 4 {
		length := int(binary.BigEndian.Uint16(b[2:4]))
		if length < 4 || length > len(b) {
			r.log.Debug("truncated SCTP chunk", "length", length,
				"remaining", len(b))
			return
		}
		padded := (length + 3) &^ 3
		if padded > len(b) {
			padded = len(b)
		}
		if b[0] == chunkTypeData {
			pkt := gopacket.NewPacket(b[:padded], layers.LayerTypeSCTPData,
				gopacket.NoCopy)
			if d, ok := pkt.Layer(layers.LayerTypeSCTPData).(*layers.SCTPData); ok {
				chunks = append(chunks, d)
			}
		}
		b = b[padded:]
	}
	return
}

// reassemble returns the complete user message once its last fragment
// has been seen.
func (r *Reader) reassemble(key streamKey, d *layers.SCTPData) ([]byte, bool) {

	switch {
	case d.BeginFragment && d.EndFragment:
		return d.Payload, true
	case d.BeginFragment:
		r.fragments[key] = append([]byte(nil), d.Payload...)
		return nil, false
	}

	buf, ok := r.fragments[key]
	if !ok {
		r.log.Debug("fragment without beginning", "endpoints", key.network,
			"ports", key.transport, "stream", d.StreamId, "tsn", d.TSN)
		return nil, false
	}
	buf = append(buf, d.Payload...)
	if !d.EndFragment {
		r.fragments[key] = buf
		return nil, false
	}
	delete(r.fragments, key)
	return buf, true
}

// Dissect unwraps an NGAP message and dissects the NRPPa PDU it carries.
func (r *Reader) Dissect(b []byte) (f *Frame, err error) {

	m, err := ngap.Unwrap(b)
	if err != nil {
		return
	}
	root, _, err := r.dissector.Dissect(m.NRPPaPDU)
	if err != nil {
		err = errors.WithMessage(err, m.Name())
		return
	}
	f = &Frame{Transport: m, PDU: root}
	if f.Summary, err = nrppa.Summarize(root); err != nil {
		return nil, err
	}
	return
}
