// Copyright 2019-2021 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"gopkg.in/yaml.v3"

	"github.com/hhorai/nrppa/encoding/ngap"
)

// Config is the nrppadump configuration. Being YAML, the file may also be
// written as JSON.
type Config struct {
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"` // text or json
	} `yaml:"log"`

	// Output is the PDU output format: tree, summary or json.
	Output string `yaml:"output"`

	SCTP struct {
		Addr      string `yaml:"addr"`
		Port      int    `yaml:"port"`
		LocalPort int    `yaml:"localPort"`
		PPID      uint32 `yaml:"ppid"`
	} `yaml:"sctp"`

	NGAP struct {
		RoutingID   string `yaml:"routingID"` // hex
		AMFUENGAPID int64  `yaml:"amfUENGAPID"`
		RANUENGAPID int64  `yaml:"ranUENGAPID"`
	} `yaml:"ngap"`
}

func defaultConfig() *Config {
	c := &Config{}
	c.Log.Level = "info"
	c.Log.Format = "text"
	c.Output = "tree"
	c.SCTP.Addr = "localhost"
	c.SCTP.Port = 38412
	c.SCTP.PPID = ngap.PPID
	c.NGAP.RoutingID = "01"
	c.NGAP.AMFUENGAPID = 1
	c.NGAP.RANUENGAPID = 1
	return c
}

func loadConfig(name string) (c *Config, err error) {

	c = defaultConfig()
	if name == "" {
		return
	}

	b, err := os.ReadFile(name)
	if err != nil {
		err = fmt.Errorf("failed to read config: %s", err)
		return
	}
	if err = yaml.Unmarshal(b, c); err != nil {
		err = fmt.Errorf("failed to parse config %s: %s", name, err)
		return
	}
	err = c.validate()
	return
}

func (c *Config) validate() error {

	if hclog.LevelFromString(c.Log.Level) == hclog.NoLevel {
		return fmt.Errorf("unknown log level: %s", c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format: %s", c.Log.Format)
	}
	switch c.Output {
	case "tree", "summary", "json":
	default:
		return fmt.Errorf("unknown output format: %s", c.Output)
	}
	if c.SCTP.Port <= 0 || c.SCTP.Port > 65535 {
		return fmt.Errorf("invalid SCTP port: %d", c.SCTP.Port)
	}
	if _, err := c.routingID(); err != nil {
		return err
	}
	return nil
}

func (c *Config) routingID() (b []byte, err error) {
	b, err = hex.DecodeString(strings.TrimPrefix(c.NGAP.RoutingID, "0x"))
	if err != nil {
		err = fmt.Errorf("invalid routing ID %q: %s", c.NGAP.RoutingID, err)
	}
	return
}

func (c *Config) logger(w io.Writer) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:       "nrppadump",
		Level:      hclog.LevelFromString(c.Log.Level),
		JSONFormat: c.Log.Format == "json",
		Output:     w,
	})
}
