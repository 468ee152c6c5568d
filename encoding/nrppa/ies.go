// Copyright 2019-2021 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package nrppa

import (
	"github.com/hhorai/nrppa/encoding/per"
)

// 9.3.5 Information element definitions, NRPPA-IEs.
// IE value types without a descriptor here are carried as raw open types.

// Cause and criticality diagnostics.

var (
	CauseRadioNetwork = enumeratedExt("CauseRadioNetwork",
		[]string{
			"unspecified",
			"requested-item-not-supported",
			"requested-item-temporarily-not-available",
		},
		"serving-NG-RAN-node-changed",
		"requested-item-not-supported-on-time",
	)

	CauseProtocol = enumeratedExt("CauseProtocol", []string{
		"transfer-syntax-error",
		"abstract-syntax-error-reject",
		"abstract-syntax-error-ignore-and-notify",
		"message-not-compatible-with-receiver-state",
		"semantic-error",
		"unspecified",
		"abstract-syntax-error-falsely-constructed-message",
	})

	CauseMisc = enumeratedExt("CauseMisc", []string{"unspecified"})

	/*
	   Cause ::= CHOICE {
	       radioNetwork        CauseRadioNetwork,
	       protocol            CauseProtocol,
	       misc                CauseMisc,
	       choice-Extension    ProtocolIE-Single-Container {{ Cause-ExtensionIE }}
	   }
	*/
	Cause = choice("Cause",
		alt("radioNetwork", CauseRadioNetwork),
		alt("protocol", CauseProtocol),
		alt("misc", CauseMisc),
		choiceExtension("choice-Extension"),
	)

	TypeOfError = enumeratedExt("TypeOfError",
		[]string{"not-understood", "missing"})

	CriticalityDiagnosticsIEItem = sequence("CriticalityDiagnostics-IE-List-Item",
		mandatory("iECriticality", Criticality),
		mandatory("iE-ID", ProtocolIEID),
		mandatory("typeOfError", TypeOfError),
		ieExtensions(),
	)

	CriticalityDiagnosticsIEList = sequenceOf("CriticalityDiagnostics-IE-List",
		CriticalityDiagnosticsIEItem, 1, MaxNrOfErrors)

	CriticalityDiagnostics = sequence("CriticalityDiagnostics",
		optional("procedureCode", ProcedureCode),
		optional("triggeringMessage", TriggeringMessage),
		optional("procedureCriticality", Criticality),
		optional("nrppatransactionID", NRPPATransactionID),
		optional("iEsCriticalityDiagnostics", CriticalityDiagnosticsIEList),
		ieExtensions(),
	)
)

// Identities and cells.

var (
	// UE-Measurement-ID ::= INTEGER (1..15, ..., 16..256)
	UEMeasurementID = &per.Integer{Name: "UE-Measurement-ID", LB: 1, UB: 15,
		Ext: true, ExtLB: 16, ExtUB: 256}

	// Measurement-ID ::= INTEGER (1.. 65536, ...)
	MeasurementID = integerExt("Measurement-ID", 1, 65536)

	PLMNIdentity = &per.OctetString{Name: "PLMN-Identity", LB: 3, UB: 3}
	TAC          = &per.OctetString{Name: "TAC", LB: 3, UB: 3}

	EUTRACellIdentifier = &per.BitString{Name: "EUTRACellIdentifier", LB: 28, UB: 28}
	NRCellIdentifier    = &per.BitString{Name: "NRCellIdentifier", LB: 36, UB: 36}

	NGRANCell = choice("NG-RANCell",
		alt("eUTRA-CellID", EUTRACellIdentifier),
		alt("nR-CellID", NRCellIdentifier),
		choiceExtension("choice-Extension"),
	)

	NGRANCGI = sequence("NG-RAN-CGI",
		mandatory("pLMN-Identity", PLMNIdentity),
		mandatory("nG-RANcell", NGRANCell),
		ieExtensions(),
	)

	CGIEUTRA = sequence("CGI-EUTRA",
		mandatory("pLMN-Identity", PLMNIdentity),
		mandatory("eUTRAcellIdentifier", EUTRACellIdentifier),
		ieExtensions(),
	)

	CGINR = sequence("CGI-NR",
		mandatory("pLMN-Identity", PLMNIdentity),
		mandatory("nRcellIdentifier", NRCellIdentifier),
		ieExtensions(),
	)

	CellPortionID = integerExt("Cell-Portion-ID", 0, 4095)

	PCIEUTRA = integerExt("PCI-EUTRA", 0, 503)
	EARFCN   = integerExt("EARFCN", 0, 262143)

	// RelativeTime1900 ::= BIT STRING (SIZE (64))
	RelativeTime1900 = &per.BitString{Name: "RelativeTime1900", LB: 64, UB: 64}

	SystemFrameNumber = integer("SystemFrameNumber", 0, 1023)
	SlotNumber        = integer("SlotNumber", 0, 79)
	SrsFrequency      = integer("SrsFrequency", 0, 3279165)

	TRPID = integerExt("TRP-ID", 1, MaxnoTRPs)

	TRPType = enumeratedExt("TRPType",
		[]string{"prsOnlyTP", "srsOnlyRP", "tp", "rp", "trp"})

	/*
	   NG-RANAccessPointPosition ::= SEQUENCE {
	       latitudeSign            ENUMERATED {north, south},
	       latitude                INTEGER (0..8388607),
	       longitude               INTEGER (-8388608..8388607),
	       directionOfAltitude     ENUMERATED {height, depth},
	       altitude                INTEGER (0..32767),
	       uncertaintySemi-major   INTEGER (0..127),
	       uncertaintySemi-minor   INTEGER (0..127),
	       orientationOfMajorAxis  INTEGER (0..179),
	       uncertaintyAltitude     INTEGER (0..127),
	       confidence              INTEGER (0..100),
	       iE-Extensions           ProtocolExtensionContainer { { NG-RANAccessPointPosition-ExtIEs} } OPTIONAL,
	       ...
	   }
	*/
	NGRANAccessPointPosition = sequence("NG-RANAccessPointPosition",
		mandatory("latitudeSign", enumerated("ENUMERATED", "north", "south")),
		mandatory("latitude", integer("INTEGER", 0, 8388607)),
		mandatory("longitude", integer("INTEGER", -8388608, 8388607)),
		mandatory("directionOfAltitude", enumerated("ENUMERATED", "height", "depth")),
		mandatory("altitude", integer("INTEGER", 0, 32767)),
		mandatory("uncertaintySemi-major", integer("INTEGER", 0, 127)),
		mandatory("uncertaintySemi-minor", integer("INTEGER", 0, 127)),
		mandatory("orientationOfMajorAxis", integer("INTEGER", 0, 179)),
		mandatory("uncertaintyAltitude", integer("INTEGER", 0, 127)),
		mandatory("confidence", integer("INTEGER", 0, 100)),
		ieExtensions(),
	)
)

// E-CID measurements.

var (
	ReportCharacteristics = enumeratedExt("ReportCharacteristics",
		[]string{"onDemand", "periodic"})

	MeasurementPeriodicity = enumeratedExt("MeasurementPeriodicity",
		[]string{
			"ms120", "ms240", "ms480", "ms640", "ms1024", "ms2048",
			"ms5120", "ms10240", "min1", "min6", "min12", "min30",
			"min60",
		},
		"ms20480", "ms40960", "extended",
	)

	MeasurementPeriodicityExtended = enumeratedExt("MeasurementPeriodicityExtended",
		[]string{
			"ms160", "ms320", "ms1280", "ms2560", "ms61440", "ms81920",
			"ms368640", "ms737280", "ms1843200",
		})

	MeasurementQuantitiesValue = enumeratedExt("MeasurementQuantitiesValue",
		[]string{
			"cell-ID", "angleOfArrival", "timingAdvanceType1",
			"timingAdvanceType2", "rSRP", "rSRQ",
		},
		"sS-RSRP", "sS-RSRQ", "cSI-RSRP", "cSI-RSRQ", "angleOfArrivalNR",
		"timingAdvanceNR",
	)

	MeasurementQuantitiesItem = sequence("MeasurementQuantities-Item",
		mandatory("measurementQuantitiesValue", MeasurementQuantitiesValue),
		ieExtensions(),
	)

	// MeasurementQuantities ::= SEQUENCE (SIZE (1.. maxNoMeas)) OF
	//     ProtocolIE-Single-Container { {MeasurementQuantities-ItemIEs} }
	MeasurementQuantities = sequenceOf("MeasurementQuantities",
		ProtocolIESingleContainer, 1, MaxNoMeas)

	OtherRATMeasurementQuantitiesValue = enumeratedExt("OtherRATMeasurementQuantitiesValue",
		[]string{"geran", "utran"}, "nR", "eUTRA")

	OtherRATMeasurementQuantitiesItem = sequence("OtherRATMeasurementQuantities-Item",
		mandatory("otherRATMeasurementQuantitiesValue", OtherRATMeasurementQuantitiesValue),
		ieExtensions(),
	)

	OtherRATMeasurementQuantities = sequenceOf("OtherRATMeasurementQuantities",
		ProtocolIESingleContainer, 0, MaxNoMeas)

	WLANMeasurementQuantitiesValue = enumeratedExt("WLANMeasurementQuantitiesValue",
		[]string{"wlan"})

	WLANMeasurementQuantitiesItem = sequence("WLANMeasurementQuantities-Item",
		mandatory("wLANMeasurementQuantitiesValue", WLANMeasurementQuantitiesValue),
		ieExtensions(),
	)

	WLANMeasurementQuantities = sequenceOf("WLANMeasurementQuantities",
		ProtocolIESingleContainer, 0, MaxNoMeas)

	ValueRSRPEUTRA = integerExt("ValueRSRP-EUTRA", 0, 97)
	ValueRSRQEUTRA = integerExt("ValueRSRQ-EUTRA", 0, 34)

	ResultRSRPEUTRAItem = sequence("ResultRSRP-EUTRA-Item",
		mandatory("pCI-EUTRA", PCIEUTRA),
		mandatory("eARFCN", EARFCN),
		optional("cGI-EUTRA", CGIEUTRA),
		mandatory("valueRSRP-EUTRA", ValueRSRPEUTRA),
		ieExtensions(),
	)

	ResultRSRPEUTRA = sequenceOf("ResultRSRP-EUTRA", ResultRSRPEUTRAItem,
		1, MaxCellReport)

	ResultRSRQEUTRAItem = sequence("ResultRSRQ-EUTRA-Item",
		mandatory("pCI-EUTRA", PCIEUTRA),
		mandatory("eARFCN", EARFCN),
		optional("cGI-UTRA", CGIEUTRA),
		mandatory("valueRSRQ-EUTRA", ValueRSRQEUTRA),
		ieExtensions(),
	)

	ResultRSRQEUTRA = sequenceOf("ResultRSRQ-EUTRA", ResultRSRQEUTRAItem,
		1, MaxCellReport)

	MeasuredResultsValue = choice("MeasuredResultsValue",
		alt("valueAngleOfArrival-EUTRA", integer("INTEGER", 0, 719)),
		alt("valueTimingAdvanceType1-EUTRA", integer("INTEGER", 0, 7690)),
		alt("valueTimingAdvanceType2-EUTRA", integer("INTEGER", 0, 7690)),
		alt("resultRSRP-EUTRA", ResultRSRPEUTRA),
		alt("resultRSRQ-EUTRA", ResultRSRQEUTRA),
		choiceExtension("choice-Extension"),
	)

	MeasuredResults = sequenceOf("MeasuredResults", MeasuredResultsValue,
		1, MaxNoMeas)

	/*
	   E-CID-MeasurementResult ::= SEQUENCE {
	       servingCell-ID              NG-RAN-CGI,
	       servingCellTAC              TAC,
	       nG-RANAccessPointPosition   NG-RANAccessPointPosition   OPTIONAL,
	       measuredResults             MeasuredResults             OPTIONAL,
	       iE-Extensions               ProtocolExtensionContainer { { E-CID-MeasurementResult-ExtIEs } } OPTIONAL,
	       ...
	   }
	*/
	ECIDMeasurementResult = sequence("E-CID-MeasurementResult",
		mandatory("servingCell-ID", NGRANCGI),
		mandatory("servingCellTAC", TAC),
		optional("nG-RANAccessPointPosition", NGRANAccessPointPosition),
		optional("measuredResults", MeasuredResults),
		ieExtensions(),
	)
)

// OTDOA information.

var (
	OTDOAInformationItem = enumeratedExt("OTDOA-Information-Item",
		[]string{
			"pci", "cGI", "tac", "earfcn", "prsBandwidth", "prsConfigIndex",
			"cpLength", "noDlFrames", "noAntennaPorts", "sFNInitTime",
			"nG-RANAccessPointPosition", "prsmutingconfiguration", "prsid",
			"tpid", "tpType", "crsCPlength", "dlBandwidth",
			"multipleprsConfigurationsperCell", "prsOccasionGroup",
			"prsFrequencyHoppingConfiguration",
		},
		"tddConfig",
	)

	OTDOAInformationTypeItem = sequence("OTDOA-Information-Type-Item",
		mandatory("oTDOA-Information-Item", OTDOAInformationItem),
		ieExtensions(),
	)

	OTDOAInformationType = sequenceOf("OTDOA-Information-Type",
		ProtocolIESingleContainer, 1, MaxnoOTDOAtypes)

	PRSBandwidthEUTRA = enumeratedExt("PRS-Bandwidth-EUTRA",
		[]string{"bw6", "bw15", "bw25", "bw50", "bw75", "bw100"})

	CPLengthEUTRA = enumeratedExt("CPLength-EUTRA",
		[]string{"normal", "extended"})

	PRSMutingConfigurationEUTRA = choice("PRSMutingConfiguration-EUTRA",
		alt("two", &per.BitString{Name: "BIT STRING", LB: 2, UB: 2}),
		alt("four", &per.BitString{Name: "BIT STRING", LB: 4, UB: 4}),
		alt("eight", &per.BitString{Name: "BIT STRING", LB: 8, UB: 8}),
		alt("sixteen", &per.BitString{Name: "BIT STRING", LB: 16, UB: 16}),
		alt("thirty-two", &per.BitString{Name: "BIT STRING", LB: 32, UB: 32}),
		alt("sixty-four", &per.BitString{Name: "BIT STRING", LB: 64, UB: 64}),
		alt("one-hundred-and-twenty-eight", &per.BitString{Name: "BIT STRING", LB: 128, UB: 128}),
		alt("two-hundred-and-fifty-six", &per.BitString{Name: "BIT STRING", LB: 256, UB: 256}),
		alt("five-hundred-and-twelve", &per.BitString{Name: "BIT STRING", LB: 512, UB: 512}),
		alt("one-thousand-and-twenty-four", &per.BitString{Name: "BIT STRING", LB: 1024, UB: 1024}),
		choiceExtension("pRSMutingConfiguration-EUTRA-Extension"),
	)

	PRSFrequencyHoppingConfigurationEUTRA = sequence("PRSFrequencyHoppingConfiguration-EUTRA",
		mandatory("noOfFreqHoppingBands", enumeratedExt("NumberOfFrequencyHoppingBands",
			[]string{"twobands", "fourbands"})),
		mandatory("bandPositions", sequenceOf("SEQUENCE OF",
			integerExt("NarrowBandIndex", 0, 15), 1, MaxnoFreqHoppingBandsMinusOne)),
		ieExtensions(),
	)

	OTDOACellInformationItem = choice("OTDOACell-Information-Item",
		alt("pCI-EUTRA", PCIEUTRA),
		alt("cGI-EUTRA", CGIEUTRA),
		alt("tAC", TAC),
		alt("eARFCN", EARFCN),
		alt("pRS-Bandwidth-EUTRA", PRSBandwidthEUTRA),
		alt("pRS-ConfigurationIndex-EUTRA", integerExt("PRS-ConfigurationIndex-EUTRA", 0, 4095)),
		alt("cPLength-EUTRA", CPLengthEUTRA),
		alt("numberOfDlFrames-EUTRA", enumeratedExt("NumberOfDlFrames-EUTRA",
			[]string{"sf1", "sf2", "sf4", "sf6"})),
		alt("numberOfAntennaPorts-EUTRA", enumeratedExt("NumberOfAntennaPorts-EUTRA",
			[]string{"n1-or-n2", "n4"})),
		alt("sFNInitialisationTime-EUTRA", &per.BitString{Name: "SFNInitialisationTime-EUTRA", LB: 64, UB: 64}),
		alt("nG-RANAccessPointPosition", NGRANAccessPointPosition),
		alt("pRSMutingConfiguration-EUTRA", PRSMutingConfigurationEUTRA),
		alt("prsid-EUTRA", integerExt("PRS-ID-EUTRA", 0, 4095)),
		alt("tpid-EUTRA", integerExt("TP-ID-EUTRA", 0, 4095)),
		alt("tpType-EUTRA", enumeratedExt("TP-Type-EUTRA", []string{"prs-only-tp"})),
		alt("numberOfDlFrames-Extended-EUTRA", integerExt("NumberOfDlFrames-Extended-EUTRA", 1, 160)),
		alt("crsCPlength-EUTRA", CPLengthEUTRA),
		alt("dL-Bandwidth-EUTRA", enumeratedExt("DL-Bandwidth-EUTRA",
			[]string{"bw6", "bw15", "bw25", "bw50", "bw75", "bw100"})),
		alt("pRSOccasionGroup-EUTRA", enumeratedExt("PRSOccasionGroup-EUTRA",
			[]string{"og2", "og4", "og8", "og16", "og32", "og64", "og128"})),
		alt("pRSFreqHoppingConfig-EUTRA", PRSFrequencyHoppingConfigurationEUTRA),
		choiceExtension("oTDOACell-Information-Item-Extension"),
	)

	OTDOACellInformation = sequenceOf("OTDOACell-Information",
		OTDOACellInformationItem, 1, MaxnoOTDOAtypes)

	OTDOACellsItem = sequence("OTDOACells-item",
		mandatory("oTDOACellInfo", OTDOACellInformation),
		ieExtensions(),
	)

	OTDOACells = sequenceOf("OTDOACells", OTDOACellsItem, 1, MaxCellinRANnode)

	TDDConfigEUTRAItem = sequence("TDD-Config-EUTRA-Item",
		mandatory("subframeAssignment", enumeratedExt("ENUMERATED",
			[]string{"sa0", "sa1", "sa2", "sa3", "sa4", "sa5", "sa6"})),
		ieExtensions(),
	)
)

// Assistance information.

var (
	Broadcast = enumeratedExt("Broadcast", []string{"start", "stop"})

	PositioningBroadcastCells = sequenceOf("PositioningBroadcastCells",
		NGRANCGI, 1, MaxnoBcastCell)
)

// TRP information.

var (
	TRPItem = sequence("TRPItem",
		mandatory("tRP-ID", TRPID),
		ieExtensions(),
	)

	TRPList = sequenceOf("TRPList", TRPItem, 1, MaxnoTRPs)

	TRPInformationTypeItem = enumeratedExt("TRPInformationTypeItem",
		[]string{
			"nrPCI", "nG-RAN-CGI", "arfcn", "pRSConfig", "sSBInfo",
			"sFNInitTime", "spatialDirectInfo", "geoCoord",
		},
		"trp-type", "ondemandPRSInfo", "trpTxTeg", "beam-antenna-info",
	)

	// TRPInformationTypeListTRPReq ::= SEQUENCE (SIZE(1.. maxnoTRPInfoTypes))
	//     OF ProtocolIE-Single-Container { { TRPInformationTypeItemTRPReq } }
	TRPInformationTypeListTRPReq = sequenceOf("TRPInformationTypeListTRPReq",
		ProtocolIESingleContainer, 1, MaxnoTRPInfoTypes)
)

// Positioning activation and SRS.

var (
	SRSResourceSetID = integerExt("SRSResourceSetID", 0, 15)

	SemipersistentSRS = sequence("SemipersistentSRS",
		mandatory("sRSResourceSetID", SRSResourceSetID),
		ieExtensions(),
	)

	SRSResourceTrigger = sequence("SRSResourceTrigger",
		mandatory("aperiodicSRSResourceTriggerList", sequenceOf(
			"AperiodicSRSResourceTriggerList",
			integer("AperiodicSRSResourceTrigger", 1, 3),
			1, MaxnoSRSTriggerStates)),
		ieExtensions(),
	)

	AperiodicSRS = sequence("AperiodicSRS",
		mandatory("aperiodic", enumeratedExt("ENUMERATED", []string{"true"})),
		optional("sRSResourceTrigger", SRSResourceTrigger),
		ieExtensions(),
	)

	SRSType = choice("SRSType",
		alt("semipersistentSRS", SemipersistentSRS),
		alt("aperiodicSRS", AperiodicSRS),
		choiceExtension("sRSType-extension"),
	)

	AbortTransmission = choice("AbortTransmission",
		alt("deactivateSRSResourceSetID", SRSResourceSetID),
		alt("releaseALL", &per.Null{Name: "NULL"}),
		choiceExtension("choice-extension"),
	)
)

// TRP measurements.

var (
	TRPMeasurementType = enumeratedExt("TRPMeasurementType",
		[]string{"gNB-RxTxTimeDiff", "uL-SRS-RSRP", "uL-AoA", "uL-RTOA"},
		"multiple-UL-AoA", "uL-SRS-RSRPP",
	)

	TRPMeasurementQuantitiesListItem = sequence("TRPMeasurementQuantitiesList-Item",
		mandatory("tRPMeasurementQuantities-Item", TRPMeasurementType),
		optional("timingReportingGranularityFactor", integer("INTEGER", 0, 5)),
		ieExtensions(),
	)

	TRPMeasurementQuantities = sequenceOf("TRPMeasurementQuantities",
		TRPMeasurementQuantitiesListItem, 1, MaxnoPosMeas)

	SearchWindowInformation = sequence("Search-window-information",
		mandatory("expectedPropagationDelay", integerExt("INTEGER", -3841, 3841)),
		mandatory("delayUncertainty", integerExt("INTEGER", 1, 246)),
		ieExtensions(),
	)

	TRPMeasurementRequestItem = sequence("TRP-MeasurementRequestItem",
		mandatory("tRP-ID", TRPID),
		optional("search-window-information", SearchWindowInformation),
		ieExtensions(),
	)

	TRPMeasurementRequestList = sequenceOf("TRP-MeasurementRequestList",
		TRPMeasurementRequestItem, 1, MaxNoOfMeasTRPs)

	MeasurementBeamInfoRequest = enumeratedExt("MeasurementBeamInfoRequest",
		[]string{"true"})

	LCSToGCSTranslationAoA = sequence("LCS-to-GCS-TranslationAoA",
		mandatory("alpha", integer("INTEGER", 0, 3599)),
		mandatory("beta", integer("INTEGER", 0, 3599)),
		mandatory("gamma", integer("INTEGER", 0, 3599)),
		ieExtensions(),
	)

	/*
	   UL-AoA ::= SEQUENCE {
	       azimuthAoA                  INTEGER (0..3599),
	       zenithAoA                   INTEGER (0..1799)   OPTIONAL,
	       lCS-to-GCS-TranslationAoA   LCS-to-GCS-TranslationAoA   OPTIONAL,
	       iE-Extensions               ProtocolExtensionContainer { { UL-AoA-ExtIEs } } OPTIONAL,
	       ...
	   }
	*/
	ULAoA = sequence("UL-AoA",
		mandatory("azimuthAoA", integer("INTEGER", 0, 3599)),
		optional("zenithAoA", integer("INTEGER", 0, 1799)),
		optional("lCS-to-GCS-TranslationAoA", LCSToGCSTranslationAoA),
		ieExtensions(),
	)

	ULSRSRSRP = integer("UL-SRS-RSRP", 0, 126)

	TrpMeasurementTimingQuality = sequence("TrpMeasurementTimingQuality",
		mandatory("measurementQuality", integer("INTEGER", 0, 31)),
		mandatory("resolution", enumeratedExt("ENUMERATED",
			[]string{"m0dot1", "m1", "m10", "m30"})),
		ieExtensions(),
	)

	TrpMeasurementAngleQuality = sequence("TrpMeasurementAngleQuality",
		mandatory("azimuthQuality", integer("INTEGER", 0, 255)),
		optional("zenithQuality", integer("INTEGER", 0, 255)),
		mandatory("resolution", enumeratedExt("ENUMERATED",
			[]string{"deg0dot1"})),
		ieExtensions(),
	)

	TrpMeasurementQuality = choice("TrpMeasurementQuality",
		alt("timingMeasQuality", TrpMeasurementTimingQuality),
		alt("angleMeasQuality", TrpMeasurementAngleQuality),
		choiceExtension("choice-Extension"),
	)

	RelativePathDelay = choice("RelativePathDelay",
		alt("k0", integer("INTEGER", 0, 16351)),
		alt("k1", integer("INTEGER", 0, 8176)),
		alt("k2", integer("INTEGER", 0, 4088)),
		alt("k3", integer("INTEGER", 0, 2044)),
		alt("k4", integer("INTEGER", 0, 1022)),
		alt("k5", integer("INTEGER", 0, 511)),
		choiceExtension("choice-Extension"),
	)

	AdditionalPathItem = sequence("AdditionalPath-Item",
		mandatory("relativePathDelay", RelativePathDelay),
		optional("pathQuality", TrpMeasurementQuality),
		ieExtensions(),
	)

	AdditionalPathList = sequenceOf("AdditionalPath-List", AdditionalPathItem,
		1, MaxNoPath)

	// ULRTOAMeas and GNBRxTxTimeDiffMeas share the k0..k5 ranges.
	ULRTOAMeas          = timingMeas("ULRTOAMeas")
	GNBRxTxTimeDiffMeas = timingMeas("GNBRxTxTimeDiffMeas")

	ULRTOAMeasurement = sequence("UL-RTOAMeasurement",
		mandatory("uLRTOAmeas", ULRTOAMeas),
		optional("additionalPath-List", AdditionalPathList),
		ieExtensions(),
	)

	GNBRxTxTimeDiff = sequence("GNB-RxTxTimeDiff",
		mandatory("rxTxTimeDiff", GNBRxTxTimeDiffMeas),
		optional("additionalPath-List", AdditionalPathList),
		ieExtensions(),
	)

	TrpMeasuredResultsValue = choice("TrpMeasuredResultsValue",
		alt("uL-AngleOfArrival", ULAoA),
		alt("uL-SRS-RSRP", ULSRSRSRP),
		alt("uL-RTOA", ULRTOAMeasurement),
		alt("gNB-RxTxTimeDiff", GNBRxTxTimeDiff),
		choiceExtension("choice-Extension"),
	)

	TimeStampSlotIndex = choice("TimeStampSlotIndex",
		alt("sCS-15", integer("INTEGER", 0, 9)),
		alt("sCS-30", integer("INTEGER", 0, 19)),
		alt("sCS-60", integer("INTEGER", 0, 39)),
		alt("sCS-120", integer("INTEGER", 0, 79)),
		choiceExtension("choice-Extension"),
	)

	TimeStamp = sequence("TimeStamp",
		mandatory("systemFrameNumber", SystemFrameNumber),
		mandatory("slotIndex", TimeStampSlotIndex),
		optional("measurementTime", RelativeTime1900),
		optional("iE-Extension", ProtocolExtensionContainer),
	)

	MeasurementBeamInfo = sequence("MeasurementBeamInfo",
		optional("pRS-Resource-ID", integer("PRS-Resource-ID", 0, 63)),
		optional("pRS-Resource-Set-ID", integer("PRS-Resource-Set-ID", 0, 7)),
		optional("sSB-Index", integer("SSB-Index", 0, 63)),
		ieExtensions(),
	)

	/*
	   TrpMeasurementResultItem ::= SEQUENCE {
	       measuredResultsValue    TrpMeasuredResultsValue,
	       timeStamp               TimeStamp,
	       measurementQuality      TrpMeasurementQuality   OPTIONAL,
	       measurementBeamInfo     MeasurementBeamInfo     OPTIONAL,
	       iE-Extensions           ProtocolExtensionContainer { { TrpMeasurementResultItem-ExtIEs } } OPTIONAL,
	       ...
	   }
	*/
	TrpMeasurementResultItem = sequence("TrpMeasurementResultItem",
		mandatory("measuredResultsValue", TrpMeasuredResultsValue),
		mandatory("timeStamp", TimeStamp),
		optional("measurementQuality", TrpMeasurementQuality),
		optional("measurementBeamInfo", MeasurementBeamInfo),
		ieExtensions(),
	)

	TrpMeasurementResult = sequenceOf("TrpMeasurementResult",
		TrpMeasurementResultItem, 1, MaxnoPosMeas)

	TRPMeasurementResponseItem = sequence("TRP-MeasurementResponseItem",
		mandatory("tRP-ID", TRPID),
		mandatory("measurementResult", TrpMeasurementResult),
		ieExtensions(),
	)

	TRPMeasurementResponseList = sequenceOf("TRP-MeasurementResponseList",
		TRPMeasurementResponseItem, 1, MaxNoOfMeasTRPs)
)

func timingMeas(name string) *per.Choice {
	return choice(name,
		alt("k0", integer("INTEGER", 0, 1970049)),
		alt("k1", integer("INTEGER", 0, 985025)),
		alt("k2", integer("INTEGER", 0, 492513)),
		alt("k3", integer("INTEGER", 0, 246257)),
		alt("k4", integer("INTEGER", 0, 123129)),
		alt("k5", integer("INTEGER", 0, 61565)),
		choiceExtension("choice-Extension"),
	)
}
