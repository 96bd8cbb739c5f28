// eirdump decodes hex-encoded Bluetooth EIR / advertising data buffers and
// prints the records as JSON. Handy for poking at scan captures.
package main

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/edgebt/eir"
)

func main() {
	app := cli.NewApp()
	app.Name = "eirdump"
	app.Usage = "decode Bluetooth EIR / advertising data buffers"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: "log skipped data types",
		},
	}
	app.Before = func(c *cli.Context) error {
		if c.Bool("verbose") {
			eir.SetLogLevelMax()
		}
		return nil
	}
	app.Commands = []cli.Command{
		{
			Name:      "decode",
			Usage:     "decode hex-encoded buffers, from args or stdin lines",
			ArgsUsage: "[hex...]",
			Action:    decodeAction,
		},
		{
			Name:      "addr",
			Usage:     "render a 6-byte device address in canonical form",
			ArgsUsage: "hex12",
			Action:    addrAction,
		},
	}

	if err := app.Run(os.Args); err != nil {
		eir.GetLogger().Error(err)
		os.Exit(1)
	}
}

func decodeAction(c *cli.Context) error {
	in := []string(c.Args())
	if len(in) == 0 {
		var err error
		if in, err = readLines(os.Stdin); err != nil {
			return errors.Wrap(err, "read stdin")
		}
	}

	for _, s := range in {
		out, err := dumpOne(s)
		if err != nil {
			return err
		}
		fmt.Println(out)
	}
	return nil
}

func addrAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.New("addr takes exactly one 12-digit hex argument")
	}
	raw, err := hex.DecodeString(strings.TrimSpace(c.Args().First()))
	if err != nil {
		return errors.Wrap(err, "hex decode")
	}
	if len(raw) != 6 {
		return errors.Errorf("device address must be 6 bytes, got %d", len(raw))
	}
	fmt.Println(eir.AddrFromBytes(raw))
	return nil
}

func dumpOne(s string) (string, error) {
	raw, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return "", errors.Wrap(err, "hex decode")
	}

	recs, err := eir.Decode(raw)
	if err != nil {
		return "", errors.Wrapf(err, "decode %q", s)
	}
	return marshalRecords(recs)
}

func marshalRecords(recs []eir.Record) (string, error) {
	out := make([]map[string]interface{}, 0, len(recs))
	for _, r := range recs {
		out = append(out, recordMap(r))
	}

	b, err := jsoniter.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "marshal records")
	}
	return string(b), nil
}

func recordMap(r eir.Record) map[string]interface{} {
	switch v := r.(type) {
	case eir.Flags:
		return map[string]interface{}{
			"type":  "flags",
			"raw":   uint8(v),
			"flags": v.String(),
		}
	case eir.UUID16List:
		ids := make([]string, 0, len(v))
		for _, id := range v {
			ids = append(ids, fmt.Sprintf("%04x", id))
		}
		return map[string]interface{}{
			"type":  "uuid16",
			"uuids": ids,
		}
	case eir.Name:
		return map[string]interface{}{
			"type":     "name",
			"name":     v.Text,
			"complete": v.Complete,
		}
	default:
		return map[string]interface{}{
			"type": fmt.Sprintf("%T", r),
		}
	}
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if s := strings.TrimSpace(sc.Text()); s != "" {
			lines = append(lines, s)
		}
	}
	return lines, sc.Err()
}
