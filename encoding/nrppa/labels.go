// Copyright 2019-2021 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package nrppa

import (
	"fmt"

	"github.com/hhorai/nrppa/encoding/per"
)

// ProcedureCodeLabels is the display table of ProcedureCode.
var ProcedureCodeLabels = per.Labels{
	ProcErrorIndication:                       "id-errorIndication",
	ProcPrivateMessage:                        "id-privateMessage",
	ProcECIDMeasurementInitiation:             "id-e-CIDMeasurementInitiation",
	ProcECIDMeasurementFailureIndication:      "id-e-CIDMeasurementFailureIndication",
	ProcECIDMeasurementReport:                 "id-e-CIDMeasurementReport",
	ProcECIDMeasurementTermination:            "id-e-CIDMeasurementTermination",
	ProcOTDOAInformationExchange:              "id-oTDOAInformationExchange",
	ProcAssistanceInformationControl:          "id-assistanceInformationControl",
	ProcAssistanceInformationFeedback:         "id-assistanceInformationFeedback",
	ProcPositioningInformationExchange:        "id-positioningInformationExchange",
	ProcPositioningInformationUpdate:          "id-positioningInformationUpdate",
	ProcMeasurement:                           "id-Measurement",
	ProcMeasurementReport:                     "id-MeasurementReport",
	ProcMeasurementUpdate:                     "id-MeasurementUpdate",
	ProcMeasurementAbort:                      "id-MeasurementAbort",
	ProcMeasurementFailureIndication:          "id-MeasurementFailureIndication",
	ProcTRPInformationExchange:                "id-tRPInformationExchange",
	ProcPositioningActivation:                 "id-positioningActivation",
	ProcPositioningDeactivation:               "id-positioningDeactivation",
	ProcPRSConfigurationExchange:              "id-pRSConfigurationExchange",
	ProcMeasurementPreconfiguration:           "id-measurementPreconfiguration",
	ProcMeasurementActivation:                 "id-measurementActivation",
	ProcSRSInformationReservationNotification: "id-sRSInformationReservationNotification",
}

// ProtocolIEIDLabels is the display table of ProtocolIE-ID.
var ProtocolIEIDLabels = per.Labels{
	IDCause:                                   "id-Cause",
	IDCriticalityDiagnostics:                  "id-CriticalityDiagnostics",
	IDLMFUEMeasurementID:                      "id-LMF-UE-Measurement-ID",
	IDReportCharacteristics:                   "id-ReportCharacteristics",
	IDMeasurementPeriodicity:                  "id-MeasurementPeriodicity",
	IDMeasurementQuantities:                   "id-MeasurementQuantities",
	IDRANUEMeasurementID:                      "id-RAN-UE-Measurement-ID",
	IDECIDMeasurementResult:                   "id-E-CID-MeasurementResult",
	IDOTDOACells:                              "id-OTDOACells",
	IDOTDOAInformationTypeGroup:               "id-OTDOA-Information-Type-Group",
	IDOTDOAInformationTypeItem:                "id-OTDOA-Information-Type-Item",
	IDMeasurementQuantitiesItem:               "id-MeasurementQuantities-Item",
	IDRequestedSRSTransmissionCharacteristics: "id-RequestedSRSTransmissionCharacteristics",
	IDCellPortionID:                           "id-Cell-Portion-ID",
	IDOtherRATMeasurementQuantities:           "id-OtherRATMeasurementQuantities",
	IDOtherRATMeasurementQuantitiesItem:       "id-OtherRATMeasurementQuantities-Item",
	IDOtherRATMeasurementResult:               "id-OtherRATMeasurementResult",
	IDWLANMeasurementQuantities:               "id-WLANMeasurementQuantities",
	IDWLANMeasurementQuantitiesItem:           "id-WLANMeasurementQuantities-Item",
	IDWLANMeasurementResult:                   "id-WLANMeasurementResult",
	IDTDDConfigEUTRAItem:                      "id-TDD-Config-EUTRA-Item",
	IDAssistanceInformation:                   "id-Assistance-Information",
	IDBroadcast:                               "id-Broadcast",
	IDAssistanceInformationFailureList:        "id-AssistanceInformationFailureList",
	IDSRSConfiguration:                        "id-SRSConfiguration",
	IDMeasurementResult:                       "id-MeasurementResult",
	IDTRPID:                                   "id-TRP-ID",
	IDTRPInformationTypeListTRPReq:            "id-TRPInformationTypeListTRPReq",
	IDTRPInformationListTRPResp:               "id-TRPInformationListTRPResp",
	IDMeasurementBeamInfoRequest:              "id-MeasurementBeamInfoRequest",
	IDResultSSRSRP:                            "id-ResultSS-RSRP",
	IDResultSSRSRQ:                            "id-ResultSS-RSRQ",
	IDResultCSIRSRP:                           "id-ResultCSI-RSRP",
	IDResultCSIRSRQ:                           "id-ResultCSI-RSRQ",
	IDAngleOfArrivalNR:                        "id-AngleOfArrivalNR",
	IDGeographicalCoordinates:                 "id-GeographicalCoordinates",
	IDPositioningBroadcastCells:               "id-PositioningBroadcastCells",
	IDLMFMeasurementID:                        "id-LMF-Measurement-ID",
	IDRANMeasurementID:                        "id-RAN-Measurement-ID",
	IDTRPMeasurementRequestList:               "id-TRP-MeasurementRequestList",
	IDTRPMeasurementResponseList:              "id-TRP-MeasurementResponseList",
	IDTRPMeasurementReportList:                "id-TRP-MeasurementReportList",
	IDSRSType:                                 "id-SRSType",
	IDActivationTime:                          "id-ActivationTime",
	IDSRSResourceSetID:                        "id-SRSResourceSetID",
	IDTRPList:                                 "id-TRPList",
	IDSRSSpatialRelation:                      "id-SRSSpatialRelation",
	IDSystemFrameNumber:                       "id-SystemFrameNumber",
	IDSlotNumber:                              "id-SlotNumber",
	IDSRSResourceTrigger:                      "id-SRSResourceTrigger",
	IDTRPMeasurementQuantities:                "id-TRPMeasurementQuantities",
	IDAbortTransmission:                       "id-AbortTransmission",
	IDSFNInitialisationTime:                   "id-SFNInitialisationTime",
	IDResultNR:                                "id-ResultNR",
	IDResultEUTRA:                             "id-ResultEUTRA",
	IDTRPInformationTypeItem:                  "id-TRPInformationTypeItem",
	IDCGINR:                                   "id-CGI-NR",
	IDSFNInitialisationTimeNR:                 "id-SFNInitialisationTime-NR",
	IDCellID:                                  "id-Cell-ID",
	IDSrsFrequency:                            "id-SrsFrequency",
	IDTRPType:                                 "id-TRPType",
	IDSRSSpatialRelationPerSRSResource:        "id-SRSSpatialRelationPerSRSResource",
	IDMeasurementPeriodicityExtended:          "id-MeasurementPeriodicityExtended",
}

// ProcedureName returns the label of a procedure code, or a numeric
// placeholder for codes outside the table.
func ProcedureName(code int64) string {
	if s, ok := ProcedureCodeLabels[code]; ok {
		return s
	}
	return fmt.Sprintf("unknown-procedure-%d", code)
}

// IEName returns the label of a protocol IE ID.
func IEName(id int64) string {
	if s, ok := ProtocolIEIDLabels[id]; ok {
		return s
	}
	return fmt.Sprintf("unknown-ie-%d", id)
}
