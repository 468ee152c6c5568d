// Copyright 2019-2021 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

// nrppadump dissects NRPPa PDUs given in hex, found in capture files or
// received over an N2 SCTP association, and sends E-CID measurement
// requests towards an NG-RAN node.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"sync"

	"github.com/hashicorp/go-hclog"

	"github.com/hhorai/nrppa/capture"
	"github.com/hhorai/nrppa/encoding/nrppa"
)

type command struct {
	usage string
	run   func(s *session, fs *flag.FlagSet, args []string) error
	flags func(s *session, fs *flag.FlagSet)
}

var commands = map[string]command{
	"hex": {
		usage: "hex [flags] [HEX ...]  dissect PDUs given in hex, or read from stdin",
		flags: hexFlags,
		run:   runHex,
	},
	"pcap": {
		usage: "pcap [flags] FILE ...  dissect the NRPPa PDUs of pcap/pcapng files",
		run:   runPcap,
	},
	"listen": {
		usage: "listen [flags]  accept N2 associations and dissect what arrives",
		run:   runListen,
	},
	"send": {
		usage: "send [flags]  send an E-CID Measurement Initiation Request",
		flags: sendFlags,
		run:   runSend,
	},
}

// session carries what every subcommand needs.
type session struct {
	cfg       *Config
	log       hclog.Logger
	dissector *nrppa.Dissector
	reader    *capture.Reader

	mu  sync.Mutex
	out io.Writer

	hex  hexOptions
	send sendOptions
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "usage: nrppadump <command> [flags]\n\ncommands:\n")
	var names []string
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %s\n", commands[name].usage)
	}
}

// run parses the command line and runs the subcommand.
func run(args []string, stdout, stderr io.Writer) (err error) {

	if len(args) < 1 {
		usage(stderr)
		return fmt.Errorf("no command")
	}
	cmd, ok := commands[args[0]]
	if !ok {
		usage(stderr)
		return fmt.Errorf("unknown command: %s", args[0])
	}

	s := &session{out: stdout}
	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		config    = fs.String("config", "", "configuration file (YAML or JSON)")
		level     = fs.String("log-level", "", "log level: trace, debug, info, warn, error")
		logFormat = fs.String("log-format", "", "log format: text or json")
		output    = fs.String("output", "", "output format: tree, summary or json")
		addr      = fs.String("addr", "", "SCTP peer or listen address")
		port      = fs.Int("port", 0, "SCTP port")
		lport     = fs.Int("lport", 0, "local SCTP port")
		ppid      = fs.Uint("ppid", 0, "SCTP payload protocol identifier")
	)
	if cmd.flags != nil {
		cmd.flags(s, fs)
	}
	if err = fs.Parse(args[1:]); err != nil {
		return
	}

	if s.cfg, err = loadConfig(*config); err != nil {
		return
	}
	if *level != "" {
		s.cfg.Log.Level = *level
	}
	if *logFormat != "" {
		s.cfg.Log.Format = *logFormat
	}
	if *output != "" {
		s.cfg.Output = *output
	}
	if *addr != "" {
		s.cfg.SCTP.Addr = *addr
	}
	if *port != 0 {
		s.cfg.SCTP.Port = *port
	}
	if *lport != 0 {
		s.cfg.SCTP.LocalPort = *lport
	}
	if *ppid != 0 {
		s.cfg.SCTP.PPID = uint32(*ppid)
	}
	if err = s.cfg.validate(); err != nil {
		return
	}

	s.log = s.cfg.logger(stderr)
	s.dissector = nrppa.NewDissector(s.log.Named("nrppa"))
	s.reader = capture.NewReader(s.dissector, s.log.Named("capture"))
	s.reader.PPID = s.cfg.SCTP.PPID

	return cmd.run(s, fs, fs.Args())
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "nrppadump: %s\n", err)
		os.Exit(1)
	}
}
