// Copyright 2019-2021 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package nrppa

import (
	"github.com/hhorai/nrppa/encoding/per"
)

// ieValueTypes binds protocol IE IDs to their value types in nrppa.ies.
var ieValueTypes = map[int64]per.Type{
	IDCause:                             Cause,
	IDCriticalityDiagnostics:            CriticalityDiagnostics,
	IDLMFUEMeasurementID:                UEMeasurementID,
	IDReportCharacteristics:             ReportCharacteristics,
	IDMeasurementPeriodicity:            MeasurementPeriodicity,
	IDMeasurementQuantities:             MeasurementQuantities,
	IDRANUEMeasurementID:                UEMeasurementID,
	IDECIDMeasurementResult:             ECIDMeasurementResult,
	IDOTDOACells:                        OTDOACells,
	IDOTDOAInformationTypeGroup:         OTDOAInformationType,
	IDOTDOAInformationTypeItem:          OTDOAInformationTypeItem,
	IDMeasurementQuantitiesItem:         MeasurementQuantitiesItem,
	IDCellPortionID:                     CellPortionID,
	IDOtherRATMeasurementQuantities:     OtherRATMeasurementQuantities,
	IDOtherRATMeasurementQuantitiesItem: OtherRATMeasurementQuantitiesItem,
	IDWLANMeasurementQuantities:         WLANMeasurementQuantities,
	IDWLANMeasurementQuantitiesItem:     WLANMeasurementQuantitiesItem,
	IDTDDConfigEUTRAItem:                TDDConfigEUTRAItem,
	IDBroadcast:                         Broadcast,
	IDTRPID:                             TRPID,
	IDTRPInformationTypeListTRPReq:      TRPInformationTypeListTRPReq,
	IDMeasurementBeamInfoRequest:        MeasurementBeamInfoRequest,
	IDAngleOfArrivalNR:                  ULAoA,
	IDPositioningBroadcastCells:         PositioningBroadcastCells,
	IDLMFMeasurementID:                  MeasurementID,
	IDRANMeasurementID:                  MeasurementID,
	IDTRPMeasurementRequestList:         TRPMeasurementRequestList,
	IDTRPMeasurementResponseList:        TRPMeasurementResponseList,
	IDTRPMeasurementReportList:          TRPMeasurementResponseList,
	IDSRSType:                           SRSType,
	IDActivationTime:                    RelativeTime1900,
	IDSRSResourceSetID:                  SRSResourceSetID,
	IDTRPList:                           TRPList,
	IDSystemFrameNumber:                 SystemFrameNumber,
	IDSlotNumber:                        SlotNumber,
	IDSRSResourceTrigger:                SRSResourceTrigger,
	IDTRPMeasurementQuantities:          TRPMeasurementQuantities,
	IDAbortTransmission:                 AbortTransmission,
	IDSFNInitialisationTime:             RelativeTime1900,
	IDTRPInformationTypeItem:            TRPInformationTypeItem,
	IDCGINR:                             CGINR,
	IDSFNInitialisationTimeNR:           RelativeTime1900,
	IDCellID:                            NGRANCGI,
	IDSrsFrequency:                      SrsFrequency,
	IDTRPType:                           TRPType,
	IDMeasurementPeriodicityExtended:    MeasurementPeriodicityExtended,
}

// extensionValueTypes binds the IEs that appear in iE-Extensions.
var extensionValueTypes = map[int64]per.Type{
	IDSFNInitialisationTimeNR: RelativeTime1900,
	IDCellID:                  NGRANCGI,
	IDSrsFrequency:            SrsFrequency,
}

var registry = newRegistry()

func newRegistry() *per.Registry {
	reg := per.NewRegistry()
	for id, t := range ieValueTypes {
		reg.Register(TableIEs, id, t)
	}
	for id, t := range extensionValueTypes {
		reg.Register(TableExtension, id, t)
	}
	for _, p := range Procedures {
		if p.Initiating != nil {
			reg.Register(TableProcIMsg, p.Code, p.Initiating)
		}
		if p.Successful != nil {
			reg.Register(TableProcSOut, p.Code, p.Successful)
		}
		if p.Unsuccessful != nil {
			reg.Register(TableProcUOut, p.Code, p.Unsuccessful)
		}
	}
	return reg
}

// Registry returns the five NRPPa dissector tables. It must not be
// modified.
func Registry() *per.Registry {
	return registry
}
