// Copyright 2019-2021 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package nrppa

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/hhorai/nrppa/encoding/per"
)

// Summary is the info line of a dissected PDU.
type Summary struct {
	PDU           string      `json:"pdu"`
	ProcedureCode int64       `json:"procedureCode"`
	Procedure     string      `json:"procedure"`
	Message       string      `json:"message,omitempty"`
	TransactionID int64       `json:"transactionID"`
	IEs           []IESummary `json:"ies,omitempty"`
}

// IESummary describes one protocol IE of the message.
type IESummary struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Criticality string `json:"criticality"`
	Decoded     bool   `json:"decoded"`
	Unexpected  bool   `json:"unexpected,omitempty"`
}

// Summarize builds the info line of a PDU tree returned by Dissect.
func Summarize(root *per.Item) (s Summary, err error) {

	pdu := root
	if pdu != nil && pdu.Kind == per.KindProtocol && len(pdu.Children) == 1 {
		pdu = pdu.Children[0]
	}
	if pdu == nil || pdu.Kind != per.KindChoice || len(pdu.Children) != 1 {
		err = errors.Wrap(per.ErrMismatch, "not an NRPPA-PDU")
		return
	}

	outcome := pdu.Children[0]
	s.PDU = outcome.Name
	if code := outcome.Child("procedureCode"); code != nil {
		s.ProcedureCode = code.Int
		s.Procedure = ProcedureName(code.Int)
	}
	if tid := outcome.Child("nrppatransactionID"); tid != nil {
		s.TransactionID = tid.Int
	}

	value := outcome.Child("value")
	if value == nil || len(value.Children) == 0 {
		return
	}
	msg := value.Children[0]
	s.Message = msg.Name

	expected := map[int64]bool{}
	known, listed := MessageIEs[msg.Name]
	for _, id := range known {
		expected[id] = true
	}

	ies := msg.Child("protocolIEs")
	if ies == nil {
		return
	}
	for _, ie := range ies.Children {
		var e IESummary
		if id := ie.Child("id"); id != nil {
			e.ID = id.Int
			e.Name = IEName(id.Int)
		}
		if c := ie.Child("criticality"); c != nil {
			e.Criticality = c.Label
		}
		if v := ie.Child("value"); v != nil {
			e.Decoded = len(v.Children) > 0
		}
		_, modeled := ProtocolIEIDLabels[e.ID]
		e.Unexpected = listed && modeled && !expected[e.ID]
		s.IEs = append(s.IEs, e)
	}
	return
}

func (s Summary) String() string {

	var sb strings.Builder
	name := s.Message
	if name == "" {
		name = s.Procedure
	}
	fmt.Fprintf(&sb, "%s %s (%s, transaction %d)", s.PDU, name,
		s.Procedure, s.TransactionID)
	if len(s.IEs) == 0 {
		return sb.String()
	}

	names := make([]string, len(s.IEs))
	for i, e := range s.IEs {
		names[i] = e.Name
		if !e.Decoded {
			names[i] += "[raw]"
		}
		if e.Unexpected {
			names[i] += "[unexpected]"
		}
	}
	fmt.Fprintf(&sb, " [%s]", strings.Join(names, ", "))
	return sb.String()
}
