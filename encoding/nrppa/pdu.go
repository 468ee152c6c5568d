// Copyright 2019-2021 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package nrppa

import (
	"github.com/hhorai/nrppa/encoding/per"
)

// Dissector table names. Open types are resolved by looking up the
// procedure code or the protocol IE ID in one of them.
const (
	TableIEs       = "nrppa.ies"
	TableExtension = "nrppa.extension"
	TableProcIMsg  = "nrppa.proc.imsg"
	TableProcSOut  = "nrppa.proc.sout"
	TableProcUOut  = "nrppa.proc.uout"
)

// schema helpers. NRPPa sequences are extensible unless stated otherwise.

func integer(name string, lb, ub int64) *per.Integer {
	return &per.Integer{Name: name, LB: lb, UB: ub}
}

func integerExt(name string, lb, ub int64) *per.Integer {
	return &per.Integer{Name: name, LB: lb, UB: ub, Ext: true}
}

func enumerated(name string, items ...string) *per.Enumerated {
	return &per.Enumerated{Name: name, Items: items}
}

func enumeratedExt(name string, items []string, additions ...string) *per.Enumerated {
	return &per.Enumerated{Name: name, Items: items, Ext: true,
		Additions: additions}
}

func sequence(name string, fields ...per.Field) *per.Sequence {
	return &per.Sequence{Name: name, Fields: fields, Ext: true}
}

func sequenceOf(name string, elem per.Type, lb, ub int) *per.SequenceOf {
	return &per.SequenceOf{Name: name, Elem: elem, LB: lb, UB: ub}
}

func choice(name string, alts ...per.Alternative) *per.Choice {
	return &per.Choice{Name: name, Alts: alts}
}

func mandatory(name string, t per.Type) per.Field {
	return per.Field{Name: name, Type: t}
}

func optional(name string, t per.Type) per.Field {
	return per.Field{Name: name, Type: t, Optional: true}
}

func alt(name string, t per.Type) per.Alternative {
	return per.Alternative{Name: name, Type: t}
}

// ieExtensions is the trailing iE-Extensions field of most sequences.
func ieExtensions() per.Field {
	return optional("iE-Extensions", ProtocolExtensionContainer)
}

// choiceExtension is the last alternative of the non-extensible choices.
func choiceExtension(name string) per.Alternative {
	return alt(name, ProtocolIESingleContainer)
}

// 9.3.5 Common definitions, NRPPA-CommonDataTypes.

// Criticality ::= ENUMERATED { reject, ignore, notify }
var Criticality = enumerated("Criticality", Reject, Ignore, Notify)

// NRPPATransactionID ::= INTEGER (0..32767)
var NRPPATransactionID = integer("NRPPATransactionID", 0, 32767)

// ProcedureCode ::= INTEGER (0..255)
var ProcedureCode = &per.Integer{
	Name:   "ProcedureCode",
	LB:     0,
	UB:     255,
	Labels: ProcedureCodeLabels,
	Key:    per.KeyProcedureCode,
}

// ProtocolIE-ID ::= INTEGER (0..maxProtocolIEs)
var ProtocolIEID = &per.Integer{
	Name:   "ProtocolIE-ID",
	LB:     0,
	UB:     MaxProtocolIEs,
	Labels: ProtocolIEIDLabels,
	Key:    per.KeyProtocolIEID,
}

// TriggeringMessage ::= ENUMERATED { initiating-message,
//     successful-outcome, unsuccessful-outcome }
var TriggeringMessage = enumerated("TriggeringMessage",
	"initiating-message", "successful-outcome", "unsuccessful-outcome")

/*
PrivateIE-ID ::= CHOICE {
    local   INTEGER (0..maxPrivateIEs),
    global  OBJECT IDENTIFIER
}
*/
var PrivateIEID = choice("PrivateIE-ID",
	alt("local", integer("INTEGER", 0, MaxPrivateIEs)),
	alt("global", &per.ObjectIdentifier{Name: "OBJECT IDENTIFIER"}),
)

// 9.3.8 Container definitions, NRPPA-Containers.

/*
ProtocolIE-Field {NRPPA-PROTOCOL-IES : IEsSetParam} ::= SEQUENCE {
    id              NRPPA-PROTOCOL-IES.&id          ({IEsSetParam}),
    criticality     NRPPA-PROTOCOL-IES.&criticality ({IEsSetParam}{@id}),
    value           NRPPA-PROTOCOL-IES.&Value       ({IEsSetParam}{@id})
}
*/
var ProtocolIEField = &per.Sequence{Name: "ProtocolIE-Field", Fields: []per.Field{
	mandatory("id", ProtocolIEID),
	mandatory("criticality", Criticality),
	mandatory("value", &per.OpenType{Name: "ProtocolIE-Field-Value",
		Table: TableIEs, Key: per.KeyProtocolIEID}),
}}

// ProtocolIE-Single-Container ::= ProtocolIE-Field
var ProtocolIESingleContainer = ProtocolIEField

// ProtocolIE-Container ::= SEQUENCE (SIZE (0..maxProtocolIEs)) OF
//     ProtocolIE-Field
var ProtocolIEContainer = sequenceOf("ProtocolIE-Container", ProtocolIEField,
	0, MaxProtocolIEs)

/*
ProtocolExtensionField {NRPPA-PROTOCOL-EXTENSION : ExtensionSetParam} ::= SEQUENCE {
    id              NRPPA-PROTOCOL-EXTENSION.&id         ({ExtensionSetParam}),
    criticality     NRPPA-PROTOCOL-EXTENSION.&criticality ({ExtensionSetParam}{@id}),
    extensionValue  NRPPA-PROTOCOL-EXTENSION.&Extension  ({ExtensionSetParam}{@id})
}
*/
var ProtocolExtensionField = &per.Sequence{Name: "ProtocolExtensionField", Fields: []per.Field{
	mandatory("id", ProtocolIEID),
	mandatory("criticality", Criticality),
	mandatory("extensionValue", &per.OpenType{Name: "ProtocolExtensionField-Value",
		Table: TableExtension, Key: per.KeyProtocolIEID}),
}}

// ProtocolExtensionContainer ::= SEQUENCE (SIZE (1..maxProtocolExtensions))
//     OF ProtocolExtensionField
var ProtocolExtensionContainer = sequenceOf("ProtocolExtensionContainer",
	ProtocolExtensionField, 1, MaxProtocolExtensions)

// PrivateIE-Field: the value has no dissector table and stays raw.
var PrivateIEField = &per.Sequence{Name: "PrivateIE-Field", Fields: []per.Field{
	mandatory("id", PrivateIEID),
	mandatory("criticality", Criticality),
	mandatory("value", &per.OpenType{Name: "PrivateIE-Field-Value"}),
}}

// PrivateIE-Container ::= SEQUENCE (SIZE (1..maxPrivateIEs)) OF
//     PrivateIE-Field
var PrivateIEContainer = sequenceOf("PrivateIE-Container", PrivateIEField,
	1, MaxPrivateIEs)

// 9.3.3 Elementary procedure definitions, NRPPA-PDU-Descriptions.

func outcome(name, table string) *per.Sequence {
	return &per.Sequence{Name: name, Fields: []per.Field{
		mandatory("procedureCode", ProcedureCode),
		mandatory("criticality", Criticality),
		mandatory("nrppatransactionID", NRPPATransactionID),
		mandatory("value", &per.OpenType{Name: name + "-Value",
			Table: table, Key: per.KeyProcedureCode}),
	}}
}

/*
InitiatingMessage ::= SEQUENCE {
    procedureCode       NRPPA-ELEMENTARY-PROCEDURE.&procedureCode   ({NRPPA-ELEMENTARY-PROCEDURES}),
    criticality         NRPPA-ELEMENTARY-PROCEDURE.&criticality     ({NRPPA-ELEMENTARY-PROCEDURES}{@procedureCode}),
    nrppatransactionID  NRPPATransactionID,
    value               NRPPA-ELEMENTARY-PROCEDURE.&InitiatingMessage ({NRPPA-ELEMENTARY-PROCEDURES}{@procedureCode})
}
*/
var InitiatingMessageType = outcome("InitiatingMessage", TableProcIMsg)

// SuccessfulOutcome, same shape resolved through nrppa.proc.sout.
var SuccessfulOutcomeType = outcome("SuccessfulOutcome", TableProcSOut)

// UnsuccessfulOutcome, same shape resolved through nrppa.proc.uout.
var UnsuccessfulOutcomeType = outcome("UnsuccessfulOutcome", TableProcUOut)

/*
NRPPA-PDU ::= CHOICE {
    initiatingMessage       InitiatingMessage,
    successfulOutcome       SuccessfulOutcome,
    unsuccessfulOutcome     UnsuccessfulOutcome,
    ...
}
*/
var PDU = &per.Choice{Name: "NRPPA-PDU", Ext: true, Alts: []per.Alternative{
	alt("initiatingMessage", InitiatingMessageType),
	alt("successfulOutcome", SuccessfulOutcomeType),
	alt("unsuccessfulOutcome", UnsuccessfulOutcomeType),
}}
