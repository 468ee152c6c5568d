// Copyright 2019-2021 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package nrppa

import (
	"github.com/hhorai/nrppa/encoding/per"
)

func header(name string, code int64, criticality string, transactionID int64,
	msg *per.Item) *per.Item {

	return per.Alt(PDU.Name, per.Seq(name,
		per.Int("procedureCode", code),
		per.Enum("criticality", criticality),
		per.Int("nrppatransactionID", transactionID),
		per.Open("value", msg),
	))
}

// InitiatingMessage returns an NRPPA-PDU carrying msg as the initiating
// message of the procedure.
func InitiatingMessage(code int64, criticality string, transactionID int64,
	msg *per.Item) *per.Item {
	return header("initiatingMessage", code, criticality, transactionID, msg)
}

// SuccessfulOutcome returns an NRPPA-PDU carrying msg as the successful
// outcome of the procedure.
func SuccessfulOutcome(code int64, criticality string, transactionID int64,
	msg *per.Item) *per.Item {
	return header("successfulOutcome", code, criticality, transactionID, msg)
}

// UnsuccessfulOutcome returns an NRPPA-PDU carrying msg as the
// unsuccessful outcome of the procedure.
func UnsuccessfulOutcome(code int64, criticality string, transactionID int64,
	msg *per.Item) *per.Item {
	return header("unsuccessfulOutcome", code, criticality, transactionID, msg)
}

// Message returns a message whose protocolIEs container holds ies.
func Message(name string, ies ...*per.Item) *per.Item {
	return per.Seq(name, per.List("protocolIEs", ies...))
}

// IE returns a ProtocolIE-Field; the value type is resolved by id.
func IE(id int64, criticality string, value *per.Item) *per.Item {
	return per.Seq(ProtocolIEField.Name,
		per.Int("id", id),
		per.Enum("criticality", criticality),
		per.Open("value", value),
	)
}

// RawIE returns a ProtocolIE-Field whose value is already encoded.
func RawIE(id int64, criticality string, value []byte) *per.Item {
	return per.Seq(ProtocolIEField.Name,
		per.Int("id", id),
		per.Enum("criticality", criticality),
		per.Raw("value", value),
	)
}

// RadioNetworkCause returns a Cause value of the radioNetwork group.
func RadioNetworkCause(cause string) *per.Item {
	return per.Alt(Cause.Name, per.Enum("radioNetwork", cause))
}

// ProtocolCause returns a Cause value of the protocol group.
func ProtocolCause(cause string) *per.Item {
	return per.Alt(Cause.Name, per.Enum("protocol", cause))
}

// MeasurementQuantitiesList returns a MeasurementQuantities value
// requesting each of quantities.
func MeasurementQuantitiesList(quantities ...string) *per.Item {
	var items []*per.Item
	for _, q := range quantities {
		items = append(items, IE(IDMeasurementQuantitiesItem, Reject,
			per.Seq(MeasurementQuantitiesItem.Name,
				per.Enum("measurementQuantitiesValue", q))))
	}
	return per.List(MeasurementQuantities.Name, items...)
}

// ECIDMeasurementInitiation returns an E-CID Measurement Initiation
// Request asking for an on demand report of quantities.
func ECIDMeasurementInitiation(transactionID, lmfUEMeasurementID int64,
	quantities ...string) *per.Item {

	return InitiatingMessage(ProcECIDMeasurementInitiation, Reject,
		transactionID,
		Message(ECIDMeasurementInitiationRequest.Name,
			IE(IDLMFUEMeasurementID, Reject,
				per.Int(UEMeasurementID.Name, lmfUEMeasurementID)),
			IE(IDReportCharacteristics, Reject,
				per.Enum(ReportCharacteristics.Name, "onDemand")),
			IE(IDMeasurementQuantities, Reject,
				MeasurementQuantitiesList(quantities...)),
		))
}
