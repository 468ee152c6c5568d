package nrppa

import (
	"bytes"
	"encoding/json"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hhorai/nrppa/encoding/per"
)

// E-CID Measurement Initiation Request, transaction 1, carrying only
// Cause = radioNetwork unspecified.
var ecidCauseOnly = []byte{
	0x00, 0x02, 0x00, 0x00, 0x01, 0x08,
	0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01, 0x00,
}

func ecidCauseOnlyItem() *per.Item {
	return InitiatingMessage(ProcECIDMeasurementInitiation, Reject, 1,
		Message(ECIDMeasurementInitiationRequest.Name,
			IE(IDCause, Reject, RadioNetworkCause("unspecified"))))
}

func TestEncodeECIDCauseOnly(t *testing.T) {
	d := NewDissector(nil)
	b, err := d.Encode(ecidCauseOnlyItem())
	require.NoError(t, err)
	assert.Equal(t, ecidCauseOnly, b)
}

func TestDissectECIDCauseOnly(t *testing.T) {
	d := NewDissector(nil)
	root, n, err := d.Dissect(ecidCauseOnly)
	require.NoError(t, err)
	assert.Equal(t, len(ecidCauseOnly), n)

	assert.Equal(t, ProtocolName, root.Name)
	assert.Equal(t, per.KindProtocol, root.Kind)
	assert.Equal(t, len(ecidCauseOnly)*8, root.Length)
	require.Len(t, root.Children, 1)

	pdu := root.Children[0]
	assert.Equal(t, "NRPPA-PDU", pdu.Name)
	assert.Equal(t, "initiatingMessage", pdu.Label)

	code := root.Find("procedureCode")
	require.NotNil(t, code)
	assert.Equal(t, int64(ProcECIDMeasurementInitiation), code.Int)
	assert.Equal(t, "id-e-CIDMeasurementInitiation", code.Label)

	tid := root.Find("nrppatransactionID")
	require.NotNil(t, tid)
	assert.Equal(t, int64(1), tid.Int)

	msg := root.Find(ECIDMeasurementInitiationRequest.Name)
	require.NotNil(t, msg)

	id := msg.Find("id")
	require.NotNil(t, id)
	assert.Equal(t, "id-Cause", id.Label)

	cause := root.Find("radioNetwork")
	require.NotNil(t, cause)
	assert.Equal(t, "unspecified", cause.Label)

	s := root.String()
	assert.Contains(t, s, "NRPPa")
	assert.Contains(t, s, "procedureCode: id-e-CIDMeasurementInitiation (2)")
	assert.Contains(t, s, "radioNetwork: unspecified (0)")
}

func TestRoundTrip(t *testing.T) {

	pattern := []struct {
		name string
		in   *per.Item
	}{
		{"e-cid initiation",
			ECIDMeasurementInitiation(7, 3, "cell-ID", "angleOfArrival", "sS-RSRP")},
		{"e-cid initiation response",
			SuccessfulOutcome(ProcECIDMeasurementInitiation, Reject, 7,
				Message(ECIDMeasurementInitiationResponse.Name,
					IE(IDLMFUEMeasurementID, Reject, per.Int(UEMeasurementID.Name, 3)),
					IE(IDRANUEMeasurementID, Reject, per.Int(UEMeasurementID.Name, 200)),
					IE(IDCellPortionID, Ignore, per.Int(CellPortionID.Name, 12)),
				))},
		{"e-cid initiation failure",
			UnsuccessfulOutcome(ProcECIDMeasurementInitiation, Reject, 7,
				Message(ECIDMeasurementInitiationFailure.Name,
					IE(IDLMFUEMeasurementID, Reject, per.Int(UEMeasurementID.Name, 3)),
					IE(IDCause, Ignore, ProtocolCause("semantic-error")),
				))},
		{"periodic with extended periodicity",
			InitiatingMessage(ProcECIDMeasurementInitiation, Reject, 32767,
				Message(ECIDMeasurementInitiationRequest.Name,
					IE(IDLMFUEMeasurementID, Reject, per.Int(UEMeasurementID.Name, 15)),
					IE(IDReportCharacteristics, Reject,
						per.Enum(ReportCharacteristics.Name, "periodic")),
					IE(IDMeasurementPeriodicity, Reject,
						per.Enum(MeasurementPeriodicity.Name, "extended")),
					IE(IDMeasurementQuantities, Reject,
						MeasurementQuantitiesList("rSRP")),
					IE(IDMeasurementPeriodicityExtended, Reject,
						per.Enum(MeasurementPeriodicityExtended.Name, "ms1843200")),
				))},
		{"error indication",
			InitiatingMessage(ProcErrorIndication, Ignore, 0,
				Message(ErrorIndication.Name,
					IE(IDCause, Ignore, per.Alt(Cause.Name, per.Enum("misc", "unspecified"))),
				))},
		{"measurement abort",
			InitiatingMessage(ProcMeasurementAbort, Ignore, 44,
				Message(MeasurementAbort.Name,
					IE(IDLMFMeasurementID, Reject, per.Int(MeasurementID.Name, 1)),
					IE(IDRANMeasurementID, Reject, per.Int(MeasurementID.Name, 65536)),
				))},
		{"positioning deactivation",
			InitiatingMessage(ProcPositioningDeactivation, Ignore, 9,
				Message(PositioningDeactivation.Name,
					IE(IDAbortTransmission, Ignore,
						per.Alt(AbortTransmission.Name, per.NullValue("releaseALL"))),
				))},
		{"activation time",
			InitiatingMessage(ProcPositioningActivation, Reject, 10,
				Message(PositioningActivationRequest.Name,
					IE(IDActivationTime, Ignore, per.Bits(RelativeTime1900.Name,
						[]byte{0xe5, 0x0b, 0x1a, 0x2c, 0x00, 0x00, 0x00, 0x00}, 64)),
				))},
		{"unknown procedure",
			per.Alt(PDU.Name, per.Seq("initiatingMessage",
				per.Int("procedureCode", 200),
				per.Enum("criticality", Ignore),
				per.Int("nrppatransactionID", 3),
				per.Raw("value", []byte{0x01, 0x02}),
			))},
	}

	d := NewDissector(nil)
	for _, p := range pattern {
		b, err := d.Encode(p.in)
		require.NoError(t, err, p.name)

		root, n, err := d.Dissect(b)
		require.NoError(t, err, p.name)
		assert.Equal(t, len(b), n, p.name)

		again, err := d.Encode(root)
		require.NoError(t, err, p.name)
		assert.Empty(t, cmp.Diff(b, again), p.name)
	}
}

func TestDissectUnknownIE(t *testing.T) {
	d := NewDissector(nil)
	in := InitiatingMessage(ProcErrorIndication, Ignore, 2,
		Message(ErrorIndication.Name,
			RawIE(9999, Ignore, []byte{0xde, 0xad}),
			IE(IDCause, Ignore, RadioNetworkCause("unspecified")),
		))
	b, err := d.Encode(in)
	require.NoError(t, err)

	root, _, err := d.Dissect(b)
	require.NoError(t, err)

	ies := root.Find("protocolIEs")
	require.NotNil(t, ies)
	require.Len(t, ies.Children, 2)

	unknown := ies.Children[0].Child("value")
	assert.Empty(t, unknown.Children)
	assert.Equal(t, []byte{0xde, 0xad}, unknown.Bytes)
	assert.Equal(t, "unspecified", root.Find("radioNetwork").Label)

	again, err := d.Encode(root)
	require.NoError(t, err)
	assert.Equal(t, b, again)

	s, err := Summarize(root)
	require.NoError(t, err)
	require.Len(t, s.IEs, 2)
	assert.Equal(t, IESummary{ID: 9999, Name: "unknown-ie-9999",
		Criticality: Ignore}, s.IEs[0])
	assert.Equal(t, IESummary{ID: IDCause, Name: "id-Cause",
		Criticality: Ignore, Decoded: true}, s.IEs[1])
}

func TestDissectPDUExtension(t *testing.T) {
	d := NewDissector(nil)
	b := []byte{0x80, 0x01, 0x00}

	root, n, err := d.Dissect(b)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	pdu := root.Children[0]
	assert.True(t, pdu.Extended)
	assert.Equal(t, "unknown-extension", pdu.Label)

	again, err := d.Encode(root)
	require.NoError(t, err)
	assert.Equal(t, b, again)
}

func TestDissectMalformed(t *testing.T) {

	pattern := []struct {
		name string
		in   []byte
	}{
		{"empty", []byte{}},
		{"header only", ecidCauseOnly[:5]},
		{"short open type", ecidCauseOnly[:9]},
	}

	d := NewDissector(nil)
	for _, p := range pattern {
		_, _, err := d.Dissect(p.in)
		require.Error(t, err, p.name)
		assert.Equal(t, per.ErrShortBuffer, errors.Cause(err), p.name)
		assert.True(t, strings.HasPrefix(err.Error(), "malformed NRPPa PDU"),
			p.name)
	}
}

func TestEncodeErrors(t *testing.T) {

	pattern := []struct {
		name string
		in   *per.Item
	}{
		{"unknown cause",
			InitiatingMessage(ProcErrorIndication, Ignore, 0,
				Message(ErrorIndication.Name,
					IE(IDCause, Ignore, RadioNetworkCause("no-such-cause"))))},
		{"unknown outcome",
			per.Alt(PDU.Name, per.Seq("lostMessage"))},
		{"root without pdu",
			&per.Item{Name: ProtocolName, Kind: per.KindProtocol}},
	}

	d := NewDissector(nil)
	for _, p := range pattern {
		_, err := d.Encode(p.in)
		require.Error(t, err, p.name)
		assert.Equal(t, per.ErrMismatch, errors.Cause(err), p.name)
	}
}

func TestSummarize(t *testing.T) {
	d := NewDissector(nil)
	root, _, err := d.Dissect(ecidCauseOnly)
	require.NoError(t, err)

	s, err := Summarize(root)
	require.NoError(t, err)
	assert.Equal(t, "initiatingMessage", s.PDU)
	assert.Equal(t, int64(ProcECIDMeasurementInitiation), s.ProcedureCode)
	assert.Equal(t, "id-e-CIDMeasurementInitiation", s.Procedure)
	assert.Equal(t, ECIDMeasurementInitiationRequest.Name, s.Message)
	assert.Equal(t, int64(1), s.TransactionID)

	// Cause is not one of the request IEs
	require.Len(t, s.IEs, 1)
	assert.True(t, s.IEs[0].Unexpected)
	assert.Equal(t,
		"initiatingMessage E-CIDMeasurementInitiationRequest "+
			"(id-e-CIDMeasurementInitiation, transaction 1) [id-Cause[unexpected]]",
		s.String())

	js, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Contains(t, string(js), `"procedure":"id-e-CIDMeasurementInitiation"`)

	_, err = Summarize(per.Int("x", 1))
	assert.Equal(t, per.ErrMismatch, errors.Cause(err))
}

func TestProcedures(t *testing.T) {
	require.Len(t, Procedures, 23)

	reg := Registry()
	for i, p := range Procedures {
		assert.Equal(t, int64(i), p.Code)
		assert.False(t, strings.HasPrefix(p.Name(), "unknown"), p.Name())

		typ, ok := reg.Lookup(TableProcIMsg, p.Code)
		require.True(t, ok, p.Name())
		assert.Equal(t, p.Initiating.Name, typ.TypeName())

		_, ok = reg.Lookup(TableProcSOut, p.Code)
		assert.Equal(t, p.Successful != nil, ok, p.Name())
		_, ok = reg.Lookup(TableProcUOut, p.Code)
		assert.Equal(t, p.Unsuccessful != nil, ok, p.Name())
	}

	assert.Equal(t, []string{TableExtension, TableIEs, TableProcIMsg,
		TableProcSOut, TableProcUOut}, reg.Tables())
}

func TestLabels(t *testing.T) {

	pattern := []struct {
		got string
		ev  string
	}{
		{ProcedureName(ProcErrorIndication), "id-errorIndication"},
		{ProcedureName(ProcSRSInformationReservationNotification),
			"id-sRSInformationReservationNotification"},
		{ProcedureName(23), "unknown-procedure-23"},
		{IEName(IDCause), "id-Cause"},
		{IEName(IDMeasurementPeriodicityExtended),
			"id-MeasurementPeriodicityExtended"},
		{IEName(65), "unknown-ie-65"},
	}

	for _, p := range pattern {
		assert.Equal(t, p.ev, p.got)
	}

	for id := int64(IDCause); id <= IDMeasurementPeriodicityExtended; id++ {
		if id == 13 || id == 18 {
			continue
		}
		assert.False(t, strings.HasPrefix(IEName(id), "unknown"), "ie %d", id)
	}
}

func TestMessageIEsRegistered(t *testing.T) {
	reg := Registry()
	for _, p := range Procedures {
		for _, m := range []*per.Sequence{p.Initiating, p.Successful,
			p.Unsuccessful} {
			if m == nil {
				continue
			}
			for _, id := range MessageIEs[m.Name] {
				if _, ok := ieValueTypes[id]; !ok {
					continue
				}
				_, ok := reg.Lookup(TableIEs, id)
				assert.True(t, ok, "%s %s", m.Name, IEName(id))
			}
		}
	}
}

func TestMessageIEsComplete(t *testing.T) {
	for _, p := range Procedures {
		for _, m := range []*per.Sequence{p.Initiating, p.Successful,
			p.Unsuccessful} {
			if m == nil {
				continue
			}
			_, ok := MessageIEs[m.Name]
			assert.True(t, ok, "%s has no IE set", m.Name)
		}
	}
}

func TestSummarizeUnexpected(t *testing.T) {
	cause := IE(IDCause, Ignore, RadioNetworkCause("unspecified"))
	pattern := []struct {
		name       string
		pdu        *per.Item
		message    string
		unexpected []bool
	}{
		{"prs configuration response",
			SuccessfulOutcome(ProcPRSConfigurationExchange, Reject, 3,
				Message(PRSConfigurationResponse.Name,
					RawIE(66, Ignore, []byte{0x00}), cause)),
			"PRSConfigurationResponse", []bool{false, true}},
		{"measurement activation",
			InitiatingMessage(ProcMeasurementActivation, Ignore, 4,
				Message(MeasurementActivation.Name,
					RawIE(97, Reject, []byte{0x00}), cause)),
			"MeasurementActivation", []bool{false, true}},
		{"srs information reservation notification",
			InitiatingMessage(ProcSRSInformationReservationNotification,
				Ignore, 5,
				Message(SRSInformationReservationNotification.Name,
					RawIE(IDSRSConfiguration, Ignore, []byte{0x00}))),
			"SRSInformationReservationNotification", []bool{false}},
		{"measurement preconfiguration refuse",
			UnsuccessfulOutcome(ProcMeasurementPreconfiguration, Reject, 6,
				Message(MeasurementPreconfigurationRefuse.Name, cause)),
			"MeasurementPreconfigurationRefuse", []bool{false}},
	}

	d := NewDissector(nil)
	for _, p := range pattern {
		t.Run(p.name, func(t *testing.T) {
			b, err := d.Encode(p.pdu)
			require.NoError(t, err)
			root, _, err := d.Dissect(b)
			require.NoError(t, err)
			s, err := Summarize(root)
			require.NoError(t, err)
			assert.Equal(t, p.message, s.Message)
			require.Len(t, s.IEs, len(p.unexpected))
			for i, u := range p.unexpected {
				assert.Equal(t, u, s.IEs[i].Unexpected, s.IEs[i].Name)
			}
		})
	}
}

func TestDissectTrace(t *testing.T) {
	var buf bytes.Buffer
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "nrppa",
		Level:  hclog.Trace,
		Output: &buf,
	})
	d := NewDissector(logger)
	_, _, err := d.Dissect(ecidCauseOnly)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "procedureCode")
	assert.Contains(t, buf.String(), "radioNetwork")
}

func TestDissectConcurrent(t *testing.T) {
	d := NewDissector(nil)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				root, _, err := d.Dissect(ecidCauseOnly)
				if !assert.NoError(t, err) {
					return
				}
				b, err := d.Encode(root)
				if !assert.NoError(t, err) {
					return
				}
				assert.Equal(t, ecidCauseOnly, b)
			}
		}()
	}
	wg.Wait()
}
