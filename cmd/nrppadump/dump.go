// Copyright 2019-2021 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package main

import (
	"bufio"
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/hhorai/nrppa/capture"
	"github.com/hhorai/nrppa/encoding/ngap"
	"github.com/hhorai/nrppa/encoding/nrppa"
	"github.com/hhorai/nrppa/encoding/per"
)

// record is one dissected PDU as written in json output.
type record struct {
	Packet    int           `json:"packet,omitempty"`
	Stream    *uint16       `json:"stream,omitempty"`
	Transport string        `json:"transport,omitempty"`
	Summary   nrppa.Summary `json:"summary"`
	Tree      *per.Item     `json:"tree"`
}

// print writes one dissected PDU in the configured output format.
func (s *session) print(f *capture.Frame) (err error) {

	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.cfg.Output {
	case "json":
		r := record{Packet: f.Packet, Summary: f.Summary, Tree: f.PDU}
		if f.Transport != nil {
			r.Transport = f.Transport.Name()
			stream := f.Stream
			r.Stream = &stream
		}
		err = json.NewEncoder(s.out).Encode(r)
	case "summary":
		_, err = fmt.Fprintf(s.out, "%s\n", s.info(f))
	default:
		if _, err = fmt.Fprintf(s.out, "%s\n", s.info(f)); err != nil {
			return
		}
		err = f.PDU.Format(s.out)
	}
	return
}

func (s *session) info(f *capture.Frame) string {
	var sb strings.Builder
	if f.Packet != 0 {
		fmt.Fprintf(&sb, "%d ", f.Packet)
	}
	if m := f.Transport; m != nil {
		fmt.Fprintf(&sb, "%s", m.Name())
		if m.AMFUENGAPID != nil && m.RANUENGAPID != nil {
			fmt.Fprintf(&sb, " (AMF-UE %d, RAN-UE %d)", *m.AMFUENGAPID,
				*m.RANUENGAPID)
		}
		sb.WriteString(": ")
	}
	sb.WriteString(f.Summary.String())
	return sb.String()
}

var stdin io.Reader = os.Stdin

type hexOptions struct {
	ngap bool
}

func hexFlags(s *session, fs *flag.FlagSet) {
	fs.BoolVar(&s.hex.ngap, "ngap", false, "input is an NGAP PDU carrying NRPPa")
}

func parseHex(in string) ([]byte, error) {
	r := strings.NewReplacer(" ", "", "\t", "", ":", "", "0x", "")
	return hex.DecodeString(r.Replace(in))
}

// dissectHex dissects one PDU given in hex.
func (s *session) dissectHex(in string) (err error) {

	b, err := parseHex(in)
	if err != nil {
		return fmt.Errorf("invalid hex input: %s", err)
	}

	var f *capture.Frame
	if s.hex.ngap {
		if f, err = s.reader.Dissect(b); err != nil {
			return
		}
	} else {
		root, n, derr := s.dissector.Dissect(b)
		if derr != nil {
			return derr
		}
		if n < len(b) {
			s.log.Warn("trailing octets", "octets", len(b)-n)
		}
		f = &capture.Frame{PDU: root}
		if f.Summary, err = nrppa.Summarize(root); err != nil {
			return
		}
	}
	return s.print(f)
}

func runHex(s *session, fs *flag.FlagSet, args []string) (err error) {

	for _, a := range args {
		if err = s.dissectHex(a); err != nil {
			return
		}
	}
	if len(args) > 0 {
		return
	}

	sc := bufio.NewScanner(stdin)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if err := s.dissectHex(text); err != nil {
			s.log.Error("failed to dissect", "line", line, "error", err)
		}
	}
	return sc.Err()
}

func runPcap(s *session, fs *flag.FlagSet, args []string) (err error) {

	if len(args) == 0 {
		return fmt.Errorf("no capture file given")
	}
	for _, name := range args {
		s.log.Info("reading", "file", name)
		if err = s.reader.ReadFile(name, s.print); err != nil {
			return
		}
	}
	return
}

// the PPID is checked by the caller.
func (s *session) dissectNGAP(b []byte, stream uint16) {
	f, err := s.reader.Dissect(b)
	if err != nil {
		if errors.Is(err, ngap.ErrNotNRPPa) {
			s.log.Debug("skipping NGAP message", "octets", len(b))
			return
		}
		s.log.Warn("failed to dissect", "error", err)
		return
	}
	f.Stream = stream
	if err = s.print(f); err != nil {
		s.log.Error("failed to print", "error", err)
	}
}
