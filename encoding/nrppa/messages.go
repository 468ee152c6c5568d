// Copyright 2019-2021 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package nrppa

import (
	"github.com/hhorai/nrppa/encoding/per"
)

// 9.3.4 PDU definitions, NRPPA-PDU-Contents.

// message returns the usual
//     Name ::= SEQUENCE { protocolIEs ProtocolIE-Container {{NameIEs}}, ... }
func message(name string) *per.Sequence {
	return sequence(name, mandatory("protocolIEs", ProtocolIEContainer))
}

var (
	// E-CID measurement procedures
	ECIDMeasurementInitiationRequest  = message("E-CIDMeasurementInitiationRequest")
	ECIDMeasurementInitiationResponse = message("E-CIDMeasurementInitiationResponse")
	ECIDMeasurementInitiationFailure  = message("E-CIDMeasurementInitiationFailure")
	ECIDMeasurementFailureIndication  = message("E-CIDMeasurementFailureIndication")
	ECIDMeasurementReport             = message("E-CIDMeasurementReport")
	ECIDMeasurementTerminationCommand = message("E-CIDMeasurementTerminationCommand")

	// OTDOA information exchange
	OTDOAInformationRequest  = message("OTDOAInformationRequest")
	OTDOAInformationResponse = message("OTDOAInformationResponse")
	OTDOAInformationFailure  = message("OTDOAInformationFailure")

	// assistance information
	AssistanceInformationControl  = message("AssistanceInformationControl")
	AssistanceInformationFeedback = message("AssistanceInformationFeedback")

	// error indication
	ErrorIndication = message("ErrorIndication")

	// positioning information
	PositioningInformationRequest  = message("PositioningInformationRequest")
	PositioningInformationResponse = message("PositioningInformationResponse")
	PositioningInformationFailure  = message("PositioningInformationFailure")
	PositioningInformationUpdate   = message("PositioningInformationUpdate")

	// measurement procedures
	MeasurementRequest           = message("MeasurementRequest")
	MeasurementResponse          = message("MeasurementResponse")
	MeasurementFailure           = message("MeasurementFailure")
	MeasurementReport            = message("MeasurementReport")
	MeasurementUpdate            = message("MeasurementUpdate")
	MeasurementAbort             = message("MeasurementAbort")
	MeasurementFailureIndication = message("MeasurementFailureIndication")

	// TRP information exchange
	TRPInformationRequest  = message("TRPInformationRequest")
	TRPInformationResponse = message("TRPInformationResponse")
	TRPInformationFailure  = message("TRPInformationFailure")

	// positioning activation
	PositioningActivationRequest  = message("PositioningActivationRequest")
	PositioningActivationResponse = message("PositioningActivationResponse")
	PositioningActivationFailure  = message("PositioningActivationFailure")
	PositioningDeactivation       = message("PositioningDeactivation")

	// PRS configuration exchange
	PRSConfigurationRequest  = message("PRSConfigurationRequest")
	PRSConfigurationResponse = message("PRSConfigurationResponse")
	PRSConfigurationFailure  = message("PRSConfigurationFailure")

	// measurement preconfiguration
	MeasurementPreconfigurationRequired = message("MeasurementPreconfigurationRequired")
	MeasurementPreconfigurationConfirm  = message("MeasurementPreconfigurationConfirm")
	MeasurementPreconfigurationRefuse   = message("MeasurementPreconfigurationRefuse")

	MeasurementActivation                 = message("MeasurementActivation")
	SRSInformationReservationNotification = message("SRSInformationReservationNotification")

	/*
	   PrivateMessage ::= SEQUENCE {
	       privateIEs      PrivateIE-Container {{PrivateMessage-IEs}},
	       ...
	   }
	*/
	PrivateMessage = sequence("PrivateMessage",
		mandatory("privateIEs", PrivateIEContainer))
)

// Procedure is one elementary procedure: its code and the message types of
// its initiating, successful and unsuccessful messages. Class 2 procedures
// have no outcome messages.
type Procedure struct {
	Code         int64
	Initiating   *per.Sequence
	Successful   *per.Sequence
	Unsuccessful *per.Sequence
}

// Name returns the procedure code label.
func (p Procedure) Name() string {
	return ProcedureName(p.Code)
}

// Procedures lists the elementary procedures, 9.3.3.
var Procedures = []Procedure{
	{ProcErrorIndication, ErrorIndication, nil, nil},
	{ProcPrivateMessage, PrivateMessage, nil, nil},
	{ProcECIDMeasurementInitiation, ECIDMeasurementInitiationRequest,
		ECIDMeasurementInitiationResponse, ECIDMeasurementInitiationFailure},
	{ProcECIDMeasurementFailureIndication, ECIDMeasurementFailureIndication, nil, nil},
	{ProcECIDMeasurementReport, ECIDMeasurementReport, nil, nil},
	{ProcECIDMeasurementTermination, ECIDMeasurementTerminationCommand, nil, nil},
	{ProcOTDOAInformationExchange, OTDOAInformationRequest,
		OTDOAInformationResponse, OTDOAInformationFailure},
	{ProcAssistanceInformationControl, AssistanceInformationControl, nil, nil},
	{ProcAssistanceInformationFeedback, AssistanceInformationFeedback, nil, nil},
	{ProcPositioningInformationExchange, PositioningInformationRequest,
		PositioningInformationResponse, PositioningInformationFailure},
	{ProcPositioningInformationUpdate, PositioningInformationUpdate, nil, nil},
	{ProcMeasurement, MeasurementRequest, MeasurementResponse, MeasurementFailure},
	{ProcMeasurementReport, MeasurementReport, nil, nil},
	{ProcMeasurementUpdate, MeasurementUpdate, nil, nil},
	{ProcMeasurementAbort, MeasurementAbort, nil, nil},
	{ProcMeasurementFailureIndication, MeasurementFailureIndication, nil, nil},
	{ProcTRPInformationExchange, TRPInformationRequest,
		TRPInformationResponse, TRPInformationFailure},
	{ProcPositioningActivation, PositioningActivationRequest,
		PositioningActivationResponse, PositioningActivationFailure},
	{ProcPositioningDeactivation, PositioningDeactivation, nil, nil},
	{ProcPRSConfigurationExchange, PRSConfigurationRequest,
		PRSConfigurationResponse, PRSConfigurationFailure},
	{ProcMeasurementPreconfiguration, MeasurementPreconfigurationRequired,
		MeasurementPreconfigurationConfirm, MeasurementPreconfigurationRefuse},
	{ProcMeasurementActivation, MeasurementActivation, nil, nil},
	{ProcSRSInformationReservationNotification, SRSInformationReservationNotification, nil, nil},
}

// MessageIEs lists the protocol IE IDs each message may carry.
var MessageIEs = map[string][]int64{
	"E-CIDMeasurementInitiationRequest": {IDLMFUEMeasurementID,
		IDReportCharacteristics, IDMeasurementPeriodicity,
		IDMeasurementQuantities, IDOtherRATMeasurementQuantities,
		IDWLANMeasurementQuantities, IDMeasurementPeriodicityExtended},
	"E-CIDMeasurementInitiationResponse": {IDLMFUEMeasurementID,
		IDRANUEMeasurementID, IDECIDMeasurementResult,
		IDCriticalityDiagnostics, IDCellPortionID,
		IDOtherRATMeasurementResult, IDWLANMeasurementResult},
	"E-CIDMeasurementInitiationFailure": {IDLMFUEMeasurementID, IDCause,
		IDCriticalityDiagnostics},
	"E-CIDMeasurementFailureIndication": {IDLMFUEMeasurementID,
		IDRANUEMeasurementID, IDCause},
	"E-CIDMeasurementReport": {IDLMFUEMeasurementID, IDRANUEMeasurementID,
		IDECIDMeasurementResult, IDCellPortionID},
	"E-CIDMeasurementTerminationCommand": {IDLMFUEMeasurementID,
		IDRANUEMeasurementID},
	"OTDOAInformationRequest":  {IDOTDOAInformationTypeGroup},
	"OTDOAInformationResponse": {IDOTDOACells, IDCriticalityDiagnostics},
	"OTDOAInformationFailure":  {IDCause, IDCriticalityDiagnostics},
	"AssistanceInformationControl": {IDAssistanceInformation, IDBroadcast,
		IDPositioningBroadcastCells},
	"AssistanceInformationFeedback": {IDAssistanceInformationFailureList,
		IDPositioningBroadcastCells, IDCriticalityDiagnostics},
	"ErrorIndication":               {IDCause, IDCriticalityDiagnostics},
	"PositioningInformationRequest": {IDRequestedSRSTransmissionCharacteristics},
	"PositioningInformationResponse": {IDSRSConfiguration,
		IDSFNInitialisationTime, IDCriticalityDiagnostics},
	"PositioningInformationFailure": {IDCause, IDCriticalityDiagnostics},
	"PositioningInformationUpdate":  {IDSRSConfiguration, IDSFNInitialisationTime},
	"MeasurementRequest": {IDLMFMeasurementID, IDTRPMeasurementRequestList,
		IDReportCharacteristics, IDMeasurementPeriodicity,
		IDTRPMeasurementQuantities, IDSFNInitialisationTime,
		IDSRSConfiguration, IDMeasurementBeamInfoRequest,
		IDSystemFrameNumber, IDSlotNumber, IDMeasurementPeriodicityExtended},
	"MeasurementResponse": {IDLMFMeasurementID, IDRANMeasurementID,
		IDTRPMeasurementResponseList, IDCriticalityDiagnostics},
	"MeasurementFailure": {IDLMFMeasurementID, IDCause,
		IDCriticalityDiagnostics},
	"MeasurementReport": {IDLMFMeasurementID, IDRANMeasurementID,
		IDTRPMeasurementReportList},
	"MeasurementUpdate": {IDLMFMeasurementID, IDRANMeasurementID,
		IDSRSConfiguration},
	"MeasurementAbort": {IDLMFMeasurementID, IDRANMeasurementID},
	"MeasurementFailureIndication": {IDLMFMeasurementID, IDRANMeasurementID,
		IDCause},
	"TRPInformationRequest":  {IDTRPList, IDTRPInformationTypeListTRPReq},
	"TRPInformationResponse": {IDTRPInformationListTRPResp, IDCriticalityDiagnostics},
	"TRPInformationFailure":  {IDCause, IDCriticalityDiagnostics},
	"PositioningActivationRequest": {IDSRSType, IDActivationTime},
	"PositioningActivationResponse": {IDCriticalityDiagnostics,
		IDSystemFrameNumber, IDSlotNumber},
	"PositioningActivationFailure": {IDCause, IDCriticalityDiagnostics},
	"PositioningDeactivation":      {IDAbortTransmission},
	// The remaining IEs of the procedures below use IDs past
	// IDMeasurementPeriodicityExtended and are carried as opaque values.
	"PRSConfigurationRequest":             {},
	"PRSConfigurationResponse":            {IDCriticalityDiagnostics},
	"PRSConfigurationFailure":             {IDCause, IDCriticalityDiagnostics},
	"MeasurementPreconfigurationRequired": {},
	"MeasurementPreconfigurationConfirm":  {IDCriticalityDiagnostics},
	"MeasurementPreconfigurationRefuse":   {IDCause, IDCriticalityDiagnostics},
	"MeasurementActivation":               {},

	"SRSInformationReservationNotification": {IDSRSConfiguration},
}
