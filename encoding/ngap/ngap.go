// Copyright 2019-2021 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

// Package ngap carries NRPPa PDUs in the NGAP NRPPa transport messages
// between the AMF and the NG-RAN node.
// document version: 3GPP TS 38.413 v16.4.0 (2021-01), 8.12 NRPPa Transport
package ngap

import (
	"fmt"

	"github.com/free5gc/aper"
	"github.com/free5gc/ngap"
	"github.com/free5gc/ngap/ngapType"
	"github.com/pkg/errors"
)

// PPID is the SCTP payload protocol identifier of NGAP.
const PPID = 60

// Procedure codes of the NRPPa transport messages.
const (
	ProcDownlinkUEAssociatedNRPPaTransport    int64 = ngapType.ProcedureCodeDownlinkUEAssociatedNRPPaTransport
	ProcDownlinkNonUEAssociatedNRPPaTransport int64 = ngapType.ProcedureCodeDownlinkNonUEAssociatedNRPPaTransport
	ProcUplinkUEAssociatedNRPPaTransport      int64 = ngapType.ProcedureCodeUplinkUEAssociatedNRPPaTransport
	ProcUplinkNonUEAssociatedNRPPaTransport   int64 = ngapType.ProcedureCodeUplinkNonUEAssociatedNRPPaTransport
)

var procName = map[int64]string{
	ProcDownlinkUEAssociatedNRPPaTransport:    "DownlinkUEAssociatedNRPPaTransport",
	ProcDownlinkNonUEAssociatedNRPPaTransport: "DownlinkNonUEAssociatedNRPPaTransport",
	ProcUplinkUEAssociatedNRPPaTransport:      "UplinkUEAssociatedNRPPaTransport",
	ProcUplinkNonUEAssociatedNRPPaTransport:   "UplinkNonUEAssociatedNRPPaTransport",
}

var (
	// ErrNotNRPPa is returned by Unwrap for NGAP PDUs that are not an
	// NRPPa transport message.
	ErrNotNRPPa = errors.New("ngap: not an NRPPa transport message")

	// ErrMissingIE is returned when a mandatory IE is absent.
	ErrMissingIE = errors.New("ngap: missing mandatory IE")
)

// Message is an NRPPa transport message. The UE NGAP IDs are set only for
// the UE associated messages.
type Message struct {
	ProcedureCode int64
	AMFUENGAPID   *int64
	RANUENGAPID   *int64
	RoutingID     []byte
	NRPPaPDU      []byte
}

// Name returns the NGAP message name.
func (m *Message) Name() string {
	if s, ok := procName[m.ProcedureCode]; ok {
		return s
	}
	return fmt.Sprintf("unknown-procedure-%d", m.ProcedureCode)
}

// UEAssociated reports whether the message is tied to a UE context.
func (m *Message) UEAssociated() bool {
	return m.ProcedureCode == ProcDownlinkUEAssociatedNRPPaTransport ||
		m.ProcedureCode == ProcUplinkUEAssociatedNRPPaTransport
}

// Downlink reports whether the message is sent by the AMF.
func (m *Message) Downlink() bool {
	return m.ProcedureCode == ProcDownlinkUEAssociatedNRPPaTransport ||
		m.ProcedureCode == ProcDownlinkNonUEAssociatedNRPPaTransport
}

// DownlinkUEAssociated returns the AMF to NG-RAN message for the UE.
func DownlinkUEAssociated(amfUENGAPID, ranUENGAPID int64, routingID,
	pdu []byte) *Message {
	return &Message{
		ProcedureCode: ProcDownlinkUEAssociatedNRPPaTransport,
		AMFUENGAPID:   &amfUENGAPID,
		RANUENGAPID:   &ranUENGAPID,
		RoutingID:     routingID,
		NRPPaPDU:      pdu,
	}
}

// DownlinkNonUEAssociated returns the AMF to NG-RAN message towards the
// node itself.
func DownlinkNonUEAssociated(routingID, pdu []byte) *Message {
	return &Message{
		ProcedureCode: ProcDownlinkNonUEAssociatedNRPPaTransport,
		RoutingID:     routingID,
		NRPPaPDU:      pdu,
	}
}

// Wrap encodes m as an NGAP PDU.
func Wrap(m *Message) (b []byte, err error) {

	if m.UEAssociated() && (m.AMFUENGAPID == nil || m.RANUENGAPID == nil) {
		err = errors.Wrapf(ErrMissingIE, "%s needs the UE NGAP IDs", m.Name())
		return
	}
	if m.RoutingID == nil || m.NRPPaPDU == nil {
		err = errors.Wrapf(ErrMissingIE, "%s needs RoutingID and NRPPa-PDU",
			m.Name())
		return
	}

	msg := &ngapType.InitiatingMessage{
		ProcedureCode: ngapType.ProcedureCode{Value: m.ProcedureCode},
		Criticality: ngapType.Criticality{
			Value: ngapType.CriticalityPresentIgnore},
	}

	switch m.ProcedureCode {
	case ProcDownlinkUEAssociatedNRPPaTransport:
		msg.Value.Present =
			ngapType.InitiatingMessagePresentDownlinkUEAssociatedNRPPaTransport
		msg.Value.DownlinkUEAssociatedNRPPaTransport = downlinkUEAssociated(m)
	case ProcDownlinkNonUEAssociatedNRPPaTransport:
		msg.Value.Present =
			ngapType.InitiatingMessagePresentDownlinkNonUEAssociatedNRPPaTransport
		msg.Value.DownlinkNonUEAssociatedNRPPaTransport = downlinkNonUEAssociated(m)
	case ProcUplinkUEAssociatedNRPPaTransport:
		msg.Value.Present =
			ngapType.InitiatingMessagePresentUplinkUEAssociatedNRPPaTransport
		msg.Value.UplinkUEAssociatedNRPPaTransport = uplinkUEAssociated(m)
	case ProcUplinkNonUEAssociatedNRPPaTransport:
		msg.Value.Present =
			ngapType.InitiatingMessagePresentUplinkNonUEAssociatedNRPPaTransport
		msg.Value.UplinkNonUEAssociatedNRPPaTransport = uplinkNonUEAssociated(m)
	default:
		err = errors.Wrapf(ErrNotNRPPa, "procedure code %d", m.ProcedureCode)
		return
	}

	pdu := ngapType.NGAPPDU{
		Present:           ngapType.NGAPPDUPresentInitiatingMessage,
		InitiatingMessage: msg,
	}
	if b, err = ngap.Encoder(pdu); err != nil {
		err = errors.Wrapf(err, "ngap: encode %s", m.Name())
	}
	return
}

// Unwrap decodes an NGAP PDU and returns the NRPPa transport message it
// holds, or ErrNotNRPPa for any other NGAP message.
func Unwrap(b []byte) (m *Message, err error) {

	pdu, err := ngap.Decoder(b)
	if err != nil {
		err = errors.Wrap(err, "ngap: decode")
		return
	}
	if pdu.Present != ngapType.NGAPPDUPresentInitiatingMessage ||
		pdu.InitiatingMessage == nil {
		err = errors.Wrap(ErrNotNRPPa, "not an initiating message")
		return
	}

	msg := pdu.InitiatingMessage
	m = &Message{ProcedureCode: msg.ProcedureCode.Value}
	switch {
	case msg.Value.DownlinkUEAssociatedNRPPaTransport != nil:
		for _, ie := range msg.Value.DownlinkUEAssociatedNRPPaTransport.ProtocolIEs.List {
			m.set(ie.Value.AMFUENGAPID, ie.Value.RANUENGAPID,
				ie.Value.RoutingID, ie.Value.NRPPaPDU)
		}
	case msg.Value.DownlinkNonUEAssociatedNRPPaTransport != nil:
		for _, ie := range msg.Value.DownlinkNonUEAssociatedNRPPaTransport.ProtocolIEs.List {
			m.set(nil, nil, ie.Value.RoutingID, ie.Value.NRPPaPDU)
		}
	case msg.Value.UplinkUEAssociatedNRPPaTransport != nil:
		for _, ie := range msg.Value.UplinkUEAssociatedNRPPaTransport.ProtocolIEs.List {
			m.set(ie.Value.AMFUENGAPID, ie.Value.RANUENGAPID,
				ie.Value.RoutingID, ie.Value.NRPPaPDU)
		}
	case msg.Value.UplinkNonUEAssociatedNRPPaTransport != nil:
		for _, ie := range msg.Value.UplinkNonUEAssociatedNRPPaTransport.ProtocolIEs.List {
			m.set(nil, nil, ie.Value.RoutingID, ie.Value.NRPPaPDU)
		}
	default:
		err = errors.Wrapf(ErrNotNRPPa, "procedure code %d", m.ProcedureCode)
		m = nil
		return
	}

	if m.NRPPaPDU == nil {
		err = errors.Wrapf(ErrMissingIE, "%s without NRPPa-PDU", m.Name())
		m = nil
	}
	return
}

func (m *Message) set(amf *ngapType.AMFUENGAPID, ran *ngapType.RANUENGAPID,
	routing *ngapType.RoutingID, pdu *ngapType.NRPPaPDU) {

	if amf != nil {
		v := amf.Value
		m.AMFUENGAPID = &v
	}
	if ran != nil {
		v := ran.Value
		m.RANUENGAPID = &v
	}
	if routing != nil {
		m.RoutingID = []byte(routing.Value)
	}
	if pdu != nil {
		m.NRPPaPDU = []byte(pdu.Value)
	}
}

func ieHeader(id int64) (ngapType.ProtocolIEID, ngapType.Criticality) {
	return ngapType.ProtocolIEID{Value: id},
		ngapType.Criticality{Value: ngapType.CriticalityPresentReject}
}

func downlinkUEAssociated(m *Message) *ngapType.DownlinkUEAssociatedNRPPaTransport {

	v := &ngapType.DownlinkUEAssociatedNRPPaTransport{}
	list := &v.ProtocolIEs.List

	ie := ngapType.DownlinkUEAssociatedNRPPaTransportIEs{}
	ie.Id, ie.Criticality = ieHeader(ngapType.ProtocolIEIDAMFUENGAPID)
	ie.Value.Present = ngapType.DownlinkUEAssociatedNRPPaTransportIEsPresentAMFUENGAPID
	ie.Value.AMFUENGAPID = &ngapType.AMFUENGAPID{Value: *m.AMFUENGAPID}
	*list = append(*list, ie)

	ie = ngapType.DownlinkUEAssociatedNRPPaTransportIEs{}
	ie.Id, ie.Criticality = ieHeader(ngapType.ProtocolIEIDRANUENGAPID)
	ie.Value.Present = ngapType.DownlinkUEAssociatedNRPPaTransportIEsPresentRANUENGAPID
	ie.Value.RANUENGAPID = &ngapType.RANUENGAPID{Value: *m.RANUENGAPID}
	*list = append(*list, ie)

	ie = ngapType.DownlinkUEAssociatedNRPPaTransportIEs{}
	ie.Id, ie.Criticality = ieHeader(ngapType.ProtocolIEIDRoutingID)
	ie.Value.Present = ngapType.DownlinkUEAssociatedNRPPaTransportIEsPresentRoutingID
	ie.Value.RoutingID = &ngapType.RoutingID{Value: aper.OctetString(m.RoutingID)}
	*list = append(*list, ie)

	ie = ngapType.DownlinkUEAssociatedNRPPaTransportIEs{}
	ie.Id, ie.Criticality = ieHeader(ngapType.ProtocolIEIDNRPPaPDU)
	ie.Value.Present = ngapType.DownlinkUEAssociatedNRPPaTransportIEsPresentNRPPaPDU
	ie.Value.NRPPaPDU = &ngapType.NRPPaPDU{Value: aper.OctetString(m.NRPPaPDU)}
	*list = append(*list, ie)

	return v
}

func uplinkUEAssociated(m *Message) *ngapType.UplinkUEAssociatedNRPPaTransport {

	v := &ngapType.UplinkUEAssociatedNRPPaTransport{}
	list := &v.ProtocolIEs.List

	ie := ngapType.UplinkUEAssociatedNRPPaTransportIEs{}
	ie.Id, ie.Criticality = ieHeader(ngapType.ProtocolIEIDAMFUENGAPID)
	ie.Value.Present = ngapType.UplinkUEAssociatedNRPPaTransportIEsPresentAMFUENGAPID
	ie.Value.AMFUENGAPID = &ngapType.AMFUENGAPID{Value: *m.AMFUENGAPID}
	*list = append(*list, ie)

	ie = ngapType.UplinkUEAssociatedNRPPaTransportIEs{}
	ie.Id, ie.Criticality = ieHeader(ngapType.ProtocolIEIDRANUENGAPID)
	ie.Value.Present = ngapType.UplinkUEAssociatedNRPPaTransportIEsPresentRANUENGAPID
	ie.Value.RANUENGAPID = &ngapType.RANUENGAPID{Value: *m.RANUENGAPID}
	*list = append(*list, ie)

	ie = ngapType.UplinkUEAssociatedNRPPaTransportIEs{}
	ie.Id, ie.Criticality = ieHeader(ngapType.ProtocolIEIDRoutingID)
	ie.Value.Present = ngapType.UplinkUEAssociatedNRPPaTransportIEsPresentRoutingID
	ie.Value.RoutingID = &ngapType.RoutingID{Value: aper.OctetString(m.RoutingID)}
	*list = append(*list, ie)

	ie = ngapType.UplinkUEAssociatedNRPPaTransportIEs{}
	ie.Id, ie.Criticality = ieHeader(ngapType.ProtocolIEIDNRPPaPDU)
	ie.Value.Present = ngapType.UplinkUEAssociatedNRPPaTransportIEsPresentNRPPaPDU
	ie.Value.NRPPaPDU = &ngapType.NRPPaPDU{Value: aper.OctetString(m.NRPPaPDU)}
	*list = append(*list, ie)

	return v
}

func downlinkNonUEAssociated(m *Message) *ngapType.DownlinkNonUEAssociatedNRPPaTransport {

	v := &ngapType.DownlinkNonUEAssociatedNRPPaTransport{}
	list := &v.ProtocolIEs.List

	ie := ngapType.DownlinkNonUEAssociatedNRPPaTransportIEs{}
	ie.Id, ie.Criticality = ieHeader(ngapType.ProtocolIEIDRoutingID)
	ie.Value.Present = ngapType.DownlinkNonUEAssociatedNRPPaTransportIEsPresentRoutingID
	ie.Value.RoutingID = &ngapType.RoutingID{Value: aper.OctetString(m.RoutingID)}
	*list = append(*list, ie)

	ie = ngapType.DownlinkNonUEAssociatedNRPPaTransportIEs{}
	ie.Id, ie.Criticality = ieHeader(ngapType.ProtocolIEIDNRPPaPDU)
	ie.Value.Present = ngapType.DownlinkNonUEAssociatedNRPPaTransportIEsPresentNRPPaPDU
	ie.Value.NRPPaPDU = &ngapType.NRPPaPDU{Value: aper.OctetString(m.NRPPaPDU)}
	*list = append(*list, ie)

	return v
}

func uplinkNonUEAssociated(m *Message) *ngapType.UplinkNonUEAssociatedNRPPaTransport {

	v := &ngapType.UplinkNonUEAssociatedNRPPaTransport{}
	list := &v.ProtocolIEs.List

	ie := ngapType.UplinkNonUEAssociatedNRPPaTransportIEs{}
	ie.Id, ie.Criticality = ieHeader(ngapType.ProtocolIEIDRoutingID)
	ie.Value.Present = ngapType.UplinkNonUEAssociatedNRPPaTransportIEsPresentRoutingID
	ie.Value.RoutingID = &ngapType.RoutingID{Value: aper.OctetString(m.RoutingID)}
	*list = append(*list, ie)

	ie = ngapType.UplinkNonUEAssociatedNRPPaTransportIEs{}
	ie.Id, ie.Criticality = ieHeader(ngapType.ProtocolIEIDNRPPaPDU)
	ie.Value.Present = ngapType.UplinkNonUEAssociatedNRPPaTransportIEsPresentNRPPaPDU
	ie.Value.NRPPaPDU = &ngapType.NRPPaPDU{Value: aper.OctetString(m.NRPPaPDU)}
	*list = append(*list, ie)

	return v
}
