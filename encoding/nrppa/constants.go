// Copyright 2019-2021 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package nrppa

// NRPPA-Constants, 9.3.7 Constant definitions.
const (
	MaxPrivateIEs         = 65535
	MaxProtocolExtensions = 65535
	MaxProtocolIEs        = 65535

	MaxNrOfErrors                   = 256
	MaxCellinRANnode                = 3840
	MaxIndexesReport                = 64
	MaxNoMeas                       = 63
	MaxCellReport                   = 9
	MaxCellReportNR                 = 9
	MaxnoOTDOAtypes                 = 63
	MaxServCell                     = 5
	MaxEUTRAMeas                    = 8
	MaxGERANMeas                    = 8
	MaxNRMeas                       = 8
	MaxUTRANMeas                    = 8
	MaxWLANchannels                 = 16
	MaxnoFreqHoppingBandsMinusOne   = 7
	MaxNoPath                       = 2
	MaxNrOfPosSImessage             = 32
	MaxnoAssistInfoFailureListItems = 32
	MaxNrOfSegments                 = 64
	MaxNrOfPosSIBs                  = 32
	MaxNoOfMeasTRPs                 = 64
	MaxnoTRPs                       = 65535
	MaxnoTRPInfoTypes               = 64
	MaxnoofAngleInfo                = 65535
	MaxnolcsGcsTranslation          = 3
	MaxnoBcastCell                  = 16384
	MaxnoSRSTriggerStates           = 3
	MaxnoSpatialRelations           = 64
	MaxnoPosMeas                    = 16384
	MaxnoSRSCarriers                = 32
	MaxnoSCSs                       = 5
	MaxnoSRSResources               = 64
	MaxnoSRSPosResources            = 256
	MaxnoSRSResourceSets            = 16
	MaxnoSRSResourcePerSet          = 16
	MaxnoSRSPosResourceSets         = 16
	MaxnoSRSPosResourcePerSet       = 16
	MaxPRSResourceSets              = 2
	MaxPRSResourcesPerSet           = 64
	MaxNoSSBs                       = 255
	MaxnoofPRSresourceSet           = 8
	MaxnoofPRSresource              = 64
	MaxnoofULAoAs                   = 8
	MaxNoPathExtended               = 8
	MaxnoARPs                       = 16
	MaxnoUETEGs                     = 256
	MaxnoTRPTEGs                    = 8
	MaxFreqLayers                   = 4
	MaxNumResourcesPerAngle         = 24
	MaxnoAzimuthAngles              = 3600
	MaxnoElevationAngles            = 1801
	MaxnoPRSTRPs                    = 256
)

// Elementary procedure codes.
const (
	ProcErrorIndication                       = 0
	ProcPrivateMessage                        = 1
	ProcECIDMeasurementInitiation             = 2
	ProcECIDMeasurementFailureIndication      = 3
	ProcECIDMeasurementReport                 = 4
	ProcECIDMeasurementTermination            = 5
	ProcOTDOAInformationExchange              = 6
	ProcAssistanceInformationControl          = 7
	ProcAssistanceInformationFeedback         = 8
	ProcPositioningInformationExchange        = 9
	ProcPositioningInformationUpdate          = 10
	ProcMeasurement                           = 11
	ProcMeasurementReport                     = 12
	ProcMeasurementUpdate                     = 13
	ProcMeasurementAbort                      = 14
	ProcMeasurementFailureIndication          = 15
	ProcTRPInformationExchange                = 16
	ProcPositioningActivation                 = 17
	ProcPositioningDeactivation               = 18
	ProcPRSConfigurationExchange              = 19
	ProcMeasurementPreconfiguration           = 20
	ProcMeasurementActivation                 = 21
	ProcSRSInformationReservationNotification = 22
)

// Protocol IE IDs.
const (
	IDCause                                   = 0
	IDCriticalityDiagnostics                  = 1
	IDLMFUEMeasurementID                      = 2
	IDReportCharacteristics                   = 3
	IDMeasurementPeriodicity                  = 4
	IDMeasurementQuantities                   = 5
	IDRANUEMeasurementID                      = 6
	IDECIDMeasurementResult                   = 7
	IDOTDOACells                              = 8
	IDOTDOAInformationTypeGroup               = 9
	IDOTDOAInformationTypeItem                = 10
	IDMeasurementQuantitiesItem               = 11
	IDRequestedSRSTransmissionCharacteristics = 12
	IDCellPortionID                           = 14
	IDOtherRATMeasurementQuantities           = 15
	IDOtherRATMeasurementQuantitiesItem       = 16
	IDOtherRATMeasurementResult               = 17
	IDWLANMeasurementQuantities               = 19
	IDWLANMeasurementQuantitiesItem           = 20
	IDWLANMeasurementResult                   = 21
	IDTDDConfigEUTRAItem                      = 22
	IDAssistanceInformation                   = 23
	IDBroadcast                               = 24
	IDAssistanceInformationFailureList        = 25
	IDSRSConfiguration                        = 26
	IDMeasurementResult                       = 27
	IDTRPID                                   = 28
	IDTRPInformationTypeListTRPReq            = 29
	IDTRPInformationListTRPResp               = 30
	IDMeasurementBeamInfoRequest              = 31
	IDResultSSRSRP                            = 32
	IDResultSSRSRQ                            = 33
	IDResultCSIRSRP                           = 34
	IDResultCSIRSRQ                           = 35
	IDAngleOfArrivalNR                        = 36
	IDGeographicalCoordinates                 = 37
	IDPositioningBroadcastCells               = 38
	IDLMFMeasurementID                        = 39
	IDRANMeasurementID                        = 40
	IDTRPMeasurementRequestList               = 41
	IDTRPMeasurementResponseList              = 42
	IDTRPMeasurementReportList                = 43
	IDSRSType                                 = 44
	IDActivationTime                          = 45
	IDSRSResourceSetID                        = 46
	IDTRPList                                 = 47
	IDSRSSpatialRelation                      = 48
	IDSystemFrameNumber                       = 49
	IDSlotNumber                              = 50
	IDSRSResourceTrigger                      = 51
	IDTRPMeasurementQuantities                = 52
	IDAbortTransmission                       = 53
	IDSFNInitialisationTime                   = 54
	IDResultNR                                = 55
	IDResultEUTRA                             = 56
	IDTRPInformationTypeItem                  = 57
	IDCGINR                                   = 58
	IDSFNInitialisationTimeNR                 = 59
	IDCellID                                  = 60
	IDSrsFrequency                            = 61
	IDTRPType                                 = 62
	IDSRSSpatialRelationPerSRSResource        = 63
	IDMeasurementPeriodicityExtended          = 64
)

// Criticality values, as enumeration identifiers.
const (
	Reject = "reject"
	Ignore = "ignore"
	Notify = "notify"
)
