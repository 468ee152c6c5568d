package nrppa

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hhorai/nrppa/encoding/per"
)

func TestProtocolIEIDs(t *testing.T) {

	// NRPPA-Constants; 13 and 18 are not used by NRPPa.
	pattern := []struct {
		id   int64
		ev   int64
		name string
	}{
		{IDRequestedSRSTransmissionCharacteristics, 12,
			"id-RequestedSRSTransmissionCharacteristics"},
		{IDCellPortionID, 14, "id-Cell-Portion-ID"},
		{IDOtherRATMeasurementQuantities, 15, "id-OtherRATMeasurementQuantities"},
		{IDOtherRATMeasurementResult, 17, "id-OtherRATMeasurementResult"},
		{IDWLANMeasurementQuantities, 19, "id-WLANMeasurementQuantities"},
		{IDWLANMeasurementResult, 21, "id-WLANMeasurementResult"},
		{IDTDDConfigEUTRAItem, 22, "id-TDD-Config-EUTRA-Item"},
		{IDMeasurementResult, 27, "id-MeasurementResult"},
		{IDTRPID, 28, "id-TRP-ID"},
		{IDPositioningBroadcastCells, 38, "id-PositioningBroadcastCells"},
		{IDTRPMeasurementRequestList, 41, "id-TRP-MeasurementRequestList"},
		{IDSRSType, 44, "id-SRSType"},
		{IDTRPList, 47, "id-TRPList"},
		{IDAbortTransmission, 53, "id-AbortTransmission"},
		{IDCellID, 60, "id-Cell-ID"},
		{IDSRSSpatialRelationPerSRSResource, 63,
			"id-SRSSpatialRelationPerSRSResource"},
		{IDMeasurementPeriodicityExtended, 64, "id-MeasurementPeriodicityExtended"},
	}

	for _, p := range pattern {
		assert.Equal(t, p.ev, p.id, p.name)
		assert.Equal(t, p.name, IEName(p.ev))
	}
	assert.Equal(t, "unknown-ie-13", IEName(13))
	assert.Equal(t, "unknown-ie-18", IEName(18))
}

// E-CID Measurement Initiation Response, transaction 1, carrying
// id-Cell-Portion-ID (14) = 12.
var ecidCellPortion = []byte{
	0x20, 0x02, 0x00, 0x00, 0x01, 0x0a,
	0x00, 0x00, 0x01, 0x00, 0x0e, 0x40, 0x03, 0x00, 0x00, 0x0c,
}

func TestDissectCellPortionID(t *testing.T) {
	d := NewDissector(nil)
	root, n, err := d.Dissect(ecidCellPortion)
	require.NoError(t, err)
	assert.Equal(t, len(ecidCellPortion), n)

	assert.Equal(t, "successfulOutcome", root.Children[0].Label)
	id := root.Find("id")
	require.NotNil(t, id)
	assert.Equal(t, "id-Cell-Portion-ID", id.Label)

	v := root.Find(CellPortionID.Name)
	require.NotNil(t, v)
	assert.Equal(t, int64(12), v.Int)

	s, err := Summarize(root)
	require.NoError(t, err)
	assert.Equal(t, ECIDMeasurementInitiationResponse.Name, s.Message)
	require.Len(t, s.IEs, 1)
	assert.False(t, s.IEs[0].Unexpected)

	again, err := d.Encode(root)
	require.NoError(t, err)
	assert.Equal(t, ecidCellPortion, again)
}

// IE values encoded by hand from X.691 aligned PER; each comment gives
// the bit layout.
func TestDecodeIEValues(t *testing.T) {

	pattern := []struct {
		name  string
		typ   per.Type
		in    []byte
		check func(t *testing.T, it *per.Item)
	}{
		{
			// ext 0, opt 010, ext 0 opt 0 | plmn | nR (01) | 36 bits |
			// tac | count 000000, choice 000 | 0..719
			name: "E-CID-MeasurementResult",
			typ:  ECIDMeasurementResult,
			in: []byte{0x20, 0x02, 0xf8, 0x39, 0x40, 0x12, 0x34, 0x56,
				0x78, 0x90, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x64},
			check: func(t *testing.T, it *per.Item) {
				assert.Equal(t, []byte{0x02, 0xf8, 0x39},
					it.Find("pLMN-Identity").Bytes)
				cell := it.Find("nR-CellID")
				require.NotNil(t, cell)
				assert.Equal(t, 36, cell.Bits)
				assert.Equal(t, []byte{0x12, 0x34, 0x56, 0x78, 0x90}, cell.Bytes)
				assert.Equal(t, []byte{0x00, 0x00, 0x01},
					it.Find("servingCellTAC").Bytes)
				assert.Nil(t, it.Find("nG-RANAccessPointPosition"))
				aoa := it.Find("valueAngleOfArrival-EUTRA")
				require.NotNil(t, aoa)
				assert.Equal(t, int64(100), aoa.Int)
			},
		},
		{
			// ext 0, opt 111010, 0..255 | trigger 01, reject 00 |
			// count 0..255 | ext 0 opt 0, ignore 01 | id | missing
			name: "CriticalityDiagnostics",
			typ:  CriticalityDiagnostics,
			in:   []byte{0x74, 0x02, 0x40, 0x00, 0x10, 0x00, 0x0e, 0x40},
			check: func(t *testing.T, it *per.Item) {
				assert.Equal(t, "id-e-CIDMeasurementInitiation",
					it.Child("procedureCode").Label)
				assert.Equal(t, "successful-outcome",
					it.Child("triggeringMessage").Label)
				assert.Equal(t, Reject, it.Child("procedureCriticality").Label)
				assert.Nil(t, it.Child("nrppatransactionID"))
				list := it.Child("iEsCriticalityDiagnostics")
				require.Len(t, list.Children, 1)
				assert.Equal(t, Ignore, list.Children[0].Child("iECriticality").Label)
				assert.Equal(t, "id-Cell-Portion-ID", list.Children[0].Child("iE-ID").Label)
				assert.Equal(t, "missing", list.Children[0].Child("typeOfError").Label)
			},
		},
		{
			// count 1..3840 | ext 0 opt 0, count 000001, pCI 00000, ext 0 |
			// 0..503 | tAC 00010 | tac
			name: "OTDOACells",
			typ:  OTDOACells,
			in:   []byte{0x00, 0x00, 0x01, 0x00, 0x01, 0x2c, 0x10, 0x00, 0x00, 0x01},
			check: func(t *testing.T, it *per.Item) {
				require.Len(t, it.Children, 1)
				info := it.Children[0].Child("oTDOACellInfo")
				require.Len(t, info.Children, 2)
				assert.Equal(t, "pCI-EUTRA", info.Children[0].Label)
				assert.Equal(t, int64(300), info.Children[0].Children[0].Int)
				assert.Equal(t, "tAC", info.Children[1].Label)
				assert.Equal(t, []byte{0x00, 0x00, 0x01},
					info.Children[1].Children[0].Bytes)
			},
		},
		{
			name: "NG-RAN-CGI",
			typ:  NGRANCGI,
			in:   []byte{0x00, 0x00, 0xf1, 0x10, 0x00, 0x12, 0x34, 0x56, 0x70},
			check: func(t *testing.T, it *per.Item) {
				assert.Equal(t, []byte{0x00, 0xf1, 0x10},
					it.Child("pLMN-Identity").Bytes)
				cell := it.Find("eUTRA-CellID")
				require.NotNil(t, cell)
				assert.Equal(t, 28, cell.Bits)
				assert.Equal(t, []byte{0x12, 0x34, 0x56, 0x70}, cell.Bytes)
				assert.Equal(t, 68, it.Length)
			},
		},
		{
			name: "PositioningBroadcastCells",
			typ:  PositioningBroadcastCells,
			in: []byte{0x00, 0x00, 0x00, 0x02, 0xf8, 0x39, 0x40, 0x12,
				0x34, 0x56, 0x78, 0x90},
			check: func(t *testing.T, it *per.Item) {
				require.Len(t, it.Children, 1)
				assert.Equal(t, "nR-CellID", it.Children[0].Child("nG-RANcell").Label)
				assert.Equal(t, 16, it.Children[0].Offset)
			},
		},
		{
			// count 1..65535 | ext 0 opt 0 ext 0 | 1..65535, twice
			name: "TRPList",
			typ:  TRPList,
			in:   []byte{0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x01, 0x2b},
			check: func(t *testing.T, it *per.Item) {
				require.Len(t, it.Children, 2)
				assert.Equal(t, int64(1), it.Children[0].Child("tRP-ID").Int)
				assert.Equal(t, int64(300), it.Children[1].Child("tRP-ID").Int)
			},
		},
		{
			// ext 0, opt 010 | 0..3599 | 0..1799
			name: "UL-AoA",
			typ:  ULAoA,
			in:   []byte{0x40, 0x07, 0x08, 0x03, 0x84},
			check: func(t *testing.T, it *per.Item) {
				assert.Equal(t, int64(1800), it.Child("azimuthAoA").Int)
				assert.Equal(t, int64(900), it.Child("zenithAoA").Int)
				assert.Nil(t, it.Child("lCS-to-GCS-TranslationAoA"))
			},
		},
		{
			// ext 0, opt 00 | 0..1023 | sCS-30 001, 0..19 00111
			name: "TimeStamp",
			typ:  TimeStamp,
			in:   []byte{0x00, 0x02, 0x00, 0x27},
			check: func(t *testing.T, it *per.Item) {
				assert.Equal(t, int64(512), it.Child("systemFrameNumber").Int)
				slot := it.Child("slotIndex")
				assert.Equal(t, "sCS-30", slot.Label)
				assert.Equal(t, int64(7), slot.Children[0].Int)
			},
		},
		{
			// aperiodicSRS 01, ext 0 opt 10, ext 0, ext 0 opt 0,
			// count 01, 00, 10
			name: "SRSType",
			typ:  SRSType,
			in:   []byte{0x50, 0x48},
			check: func(t *testing.T, it *per.Item) {
				assert.Equal(t, "aperiodicSRS", it.Label)
				assert.Equal(t, "true", it.Find("aperiodic").Label)
				list := it.Find("aperiodicSRSResourceTriggerList")
				require.NotNil(t, list)
				require.Len(t, list.Children, 2)
				assert.Equal(t, int64(1), list.Children[0].Int)
				assert.Equal(t, int64(3), list.Children[1].Int)
			},
		},
		{
			// count 000000, ext 0 opt 10, ext 0 | 1..65535 |
			// ext 0 opt 0 ext 0 | -3841..3841 | ext 0, 1..246 in 8 bits
			name: "TRP-MeasurementRequestList",
			typ:  TRPMeasurementRequestList,
			in:   []byte{0x01, 0x00, 0x00, 0x04, 0x00, 0x0f, 0x01, 0x00, 0x00},
			check: func(t *testing.T, it *per.Item) {
				require.Len(t, it.Children, 1)
				item := it.Children[0]
				assert.Equal(t, int64(5), item.Child("tRP-ID").Int)
				assert.Equal(t, int64(0), item.Find("expectedPropagationDelay").Int)
				assert.Equal(t, int64(1), item.Find("delayUncertainty").Int)
			},
		},
		{
			// count 000000, ext 0 opt 0, ext 0 | 1..65535 | count 1..16384 |
			// ext 0 opt 000, uL-SRS-RSRP 001, 0..126, ext 0 opt 00 |
			// 0..1023 | sCS-15 000, 0..9
			name: "TRP-MeasurementResponseList",
			typ:  TRPMeasurementResponseList,
			in: []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x03, 0x90,
				0x00, 0x00, 0x01, 0x12},
			check: func(t *testing.T, it *per.Item) {
				require.Len(t, it.Children, 1)
				assert.Equal(t, int64(1), it.Children[0].Child("tRP-ID").Int)
				result := it.Find("measurementResult")
				require.Len(t, result.Children, 1)
				value := result.Children[0].Child("measuredResultsValue")
				assert.Equal(t, "uL-SRS-RSRP", value.Label)
				assert.Equal(t, int64(100), value.Children[0].Int)
				assert.Equal(t, int64(1), it.Find("systemFrameNumber").Int)
				assert.Equal(t, int64(9), it.Find("sCS-15").Int)
			},
		},
		{
			// ext 0 | count 1..65535 | local 0, 0..65535 | ignore 01 | value
			name: "PrivateMessage local",
			typ:  PrivateMessage,
			in:   []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x05, 0x40, 0x01, 0xab},
			check: func(t *testing.T, it *per.Item) {
				field := it.Find(PrivateIEField.Name)
				require.NotNil(t, field)
				id := field.Child("id")
				assert.Equal(t, "local", id.Label)
				assert.Equal(t, int64(5), id.Children[0].Int)
				assert.Equal(t, Ignore, field.Child("criticality").Label)
				assert.Equal(t, []byte{0xab}, field.Child("value").Bytes)
			},
		},
		{
			name: "PrivateMessage global",
			typ:  PrivateMessage,
			in: []byte{0x00, 0x00, 0x00, 0x80, 0x03, 0x04, 0x00, 0x01,
				0x40, 0x01, 0xab},
			check: func(t *testing.T, it *per.Item) {
				id := it.Find("id")
				require.NotNil(t, id)
				assert.Equal(t, "global", id.Label)
				assert.Equal(t, "0.4.0.1", id.Children[0].Label)
			},
		},
	}

	c := per.NewCodec(Registry(), nil)
	for _, p := range pattern {
		t.Run(p.name, func(t *testing.T) {
			it, n, err := c.Decode(p.typ, p.typ.TypeName(), p.in)
			require.NoError(t, err)
			assert.Equal(t, len(p.in), n)
			p.check(t, it)

			out, err := c.Encode(p.typ, it)
			require.NoError(t, err)
			assert.Equal(t, p.in, out)
		})
	}
}

func TestEncodeShapeErrors(t *testing.T) {

	pattern := []struct {
		name string
		in   *per.Item
		ev   error
	}{
		{"enumerated for an integer",
			IE(IDLMFUEMeasurementID, Reject,
				per.Enum(UEMeasurementID.Name, "bogus")),
			per.ErrMismatch},
		{"octets for an integer",
			IE(IDLMFUEMeasurementID, Reject,
				per.Octets(UEMeasurementID.Name, []byte{1, 2})),
			per.ErrMismatch},
		{"below both ranges",
			IE(IDLMFUEMeasurementID, Reject, per.Int(UEMeasurementID.Name, 0)),
			per.ErrOutOfRange},
		{"above both ranges",
			IE(IDLMFUEMeasurementID, Reject, per.Int(UEMeasurementID.Name, 257)),
			per.ErrOutOfRange},
	}

	d := NewDissector(nil)
	for _, p := range pattern {
		_, err := d.Encode(InitiatingMessage(ProcECIDMeasurementInitiation,
			Reject, 1, Message(ECIDMeasurementInitiationRequest.Name, p.in)))
		require.Error(t, err, p.name)
		assert.Equal(t, p.ev, errors.Cause(err), p.name)
	}

	// extension range values are fine
	_, err := d.Encode(ECIDMeasurementInitiation(1, 256, "cell-ID"))
	assert.NoError(t, err)
}
