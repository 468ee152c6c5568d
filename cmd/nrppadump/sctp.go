// Copyright 2019-2021 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package main

import (
	"encoding/binary"
	"fmt"
	"net"

	"github.com/ishidawataru/sctp"
)

// The socket API carries the PPID as a host order integer whose memory
// holds the value in network byte order.
func ppidToWire(ppid uint32) uint32 {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], ppid)
	return binary.NativeEndian.Uint32(b[:])
}

func ppidFromWire(ppid uint32) uint32 {
	var b [4]byte
	binary.NativeEndian.PutUint32(b[:], ppid)
	return binary.BigEndian.Uint32(b[:])
}

func sctpAddr(host string, port int) (addr *sctp.SCTPAddr, err error) {

	ip, err := net.ResolveIPAddr("ip", host)
	if err != nil {
		err = fmt.Errorf("failed to resolve %s: %s", host, err)
		return
	}
	addr = &sctp.SCTPAddr{
		IPAddrs: []net.IPAddr{*ip},
		Port:    port,
	}
	return
}

func newN2Conn(c *Config) (conn *sctp.SCTPConn, info *sctp.SndRcvInfo,
	err error) {

	addr, err := sctpAddr(c.SCTP.Addr, c.SCTP.Port)
	if err != nil {
		return
	}

	var laddr *sctp.SCTPAddr
	if c.SCTP.LocalPort != 0 {
		laddr = &sctp.SCTPAddr{Port: c.SCTP.LocalPort}
	}

	conn, err = sctp.DialSCTP("sctp", laddr, addr)
	if err != nil {
		err = fmt.Errorf("failed to sctp dial: %s", err)
		return
	}

	info = &sctp.SndRcvInfo{
		Stream: 0,
		PPID:   ppidToWire(c.SCTP.PPID),
	}

	if err = conn.SubscribeEvents(sctp.SCTP_EVENT_DATA_IO); err != nil {
		conn.Close()
		err = fmt.Errorf("failed to subscribe sctp events: %s", err)
	}
	return
}

func newN2Listener(c *Config) (ln *sctp.SCTPListener, err error) {

	addr, err := sctpAddr(c.SCTP.Addr, c.SCTP.Port)
	if err != nil {
		return
	}
	if ln, err = sctp.ListenSCTP("sctp", addr); err != nil {
		err = fmt.Errorf("failed to sctp listen: %s", err)
	}
	return
}
