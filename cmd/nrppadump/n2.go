// Copyright 2019-2021 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package main

import (
	"context"
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/hashicorp/go-hclog"
	"github.com/ishidawataru/sctp"

	"github.com/hhorai/nrppa/encoding/ngap"
	"github.com/hhorai/nrppa/encoding/nrppa"
)

const recvBufSize = 65536

func runListen(s *session, fs *flag.FlagSet, args []string) (err error) {

	ln, err := newN2Listener(s.cfg)
	if err != nil {
		return
	}
	log := s.log.Named("sctp")
	log.Info("listening", "addr", ln.Addr())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt,
		syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		ln.Close()
	}()

	for {
		conn, aerr := ln.AcceptSCTP()
		if aerr != nil {
			if ctx.Err() != nil {
				return
			}
			return fmt.Errorf("failed to accept: %s", aerr)
		}
		go s.serve(conn, log.With("peer", conn.RemoteAddr()))
	}
}

func (s *session) serve(conn *sctp.SCTPConn, log hclog.Logger) {

	defer conn.Close()
	log.Info("association up")
	if err := conn.SubscribeEvents(sctp.SCTP_EVENT_DATA_IO); err != nil {
		log.Error("failed to subscribe sctp events", "error", err)
		return
	}

	buf := make([]byte, recvBufSize)
	for {
		n, info, err := conn.SCTPRead(buf)
		if err != nil {
			log.Info("association down", "error", err)
			return
		}
		if info != nil && ppidFromWire(info.PPID) != s.cfg.SCTP.PPID {
			log.Debug("skipping payload", "ppid", ppidFromWire(info.PPID))
			continue
		}
		var stream uint16
		if info != nil {
			stream = info.Stream
		}
		log.Trace("read", "len", n, "stream", stream)
		s.dissectNGAP(append([]byte(nil), buf[:n]...), stream)
	}
}

type sendOptions struct {
	transactionID int64
	measurementID int64
	quantities    string
	dryRun        bool
	wait          bool
}

func sendFlags(s *session, fs *flag.FlagSet) {
	fs.Int64Var(&s.send.transactionID, "tid", 1, "NRPPa transaction ID")
	fs.Int64Var(&s.send.measurementID, "measurement-id", 1,
		"LMF UE measurement ID")
	fs.StringVar(&s.send.quantities, "quantities", "cell-ID",
		"comma separated measurement quantities")
	fs.BoolVar(&s.send.dryRun, "n", false, "print the NGAP message in hex, do not send")
	fs.BoolVar(&s.send.wait, "wait", false, "wait for and dissect one reply")
}

// request builds the DownlinkUEAssociatedNRPPaTransport to send.
func (s *session) request() (b []byte, err error) {

	quantities := strings.Split(s.send.quantities, ",")
	pdu, err := s.dissector.Encode(nrppa.ECIDMeasurementInitiation(
		s.send.transactionID, s.send.measurementID, quantities...))
	if err != nil {
		return
	}
	routingID, err := s.cfg.routingID()
	if err != nil {
		return
	}
	return ngap.Wrap(ngap.DownlinkUEAssociated(s.cfg.NGAP.AMFUENGAPID,
		s.cfg.NGAP.RANUENGAPID, routingID, pdu))
}

func runSend(s *session, fs *flag.FlagSet, args []string) (err error) {

	b, err := s.request()
	if err != nil {
		return
	}
	if s.send.dryRun {
		_, err = fmt.Fprintf(s.out, "%s\n", hex.EncodeToString(b))
		return
	}

	log := s.log.Named("sctp")
	conn, info, err := newN2Conn(s.cfg)
	if err != nil {
		return
	}
	defer conn.Close()
	log.Info("connected", "local", conn.LocalAddr(), "remote", conn.RemoteAddr())

	n, err := conn.SCTPWrite(b, info)
	if err != nil {
		return fmt.Errorf("failed to write: %s", err)
	}
	log.Info("sent", "len", n, "tid", s.send.transactionID)

	if !s.send.wait {
		return
	}
	buf := make([]byte, recvBufSize)
	n, rinfo, err := conn.SCTPRead(buf)
	if err != nil {
		return fmt.Errorf("failed to read: %s", err)
	}
	var stream uint16
	if rinfo != nil {
		stream = rinfo.Stream
	}
	log.Info("received", "len", n)
	s.dissectNGAP(buf[:n], stream)
	return
}
