// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// protolazydump prints the field structure of a protocol-buffers wire-format
// message without requiring its schema: field number, entry kind (raw,
// decoded, message, repeated), wire type, and element count.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/alashui/protolazy/protolazy"
)

func main() {
	log.SetFlags(0)
	log.SetOutput(os.Stderr)

	flag.Usage = func() {
		log.Printf("Usage: %s [OPTIONS]... [INPUTS]...\n\n%s\n", filepath.Base(os.Args[0]), strings.Join([]string{
			"Print the field structure of encoded protocol buffer messages.",
			"Since the accessor has no schema, fields are reported by number",
			"and wire-level kind only, not by name or declared type.",
			"",
			"If no inputs are specified, the wire data is read from stdin,",
			"otherwise the contents of each specified input file is",
			"concatenated and treated as one large message.",
		}, "\n"))
		flag.PrintDefaults()
	}
	pivot := flag.Int("pivot", 0, "storage-representation pivot hint (0 selects the default)")
	flag.Parse()

	buf, err := readInputs(flag.Args())
	if err != nil {
		log.Fatalf("read error: %v", err)
	}

	var acc *protolazy.Accessor
	if *pivot > 0 {
		acc = protolazy.NewFromBuffer(buf, protolazy.FieldNumber(*pivot))
	} else {
		acc = protolazy.NewFromBuffer(buf)
	}

	fields, err := acc.DebugFields()
	if err != nil {
		log.Fatalf("index error: %v", err)
	}
	for _, f := range fields {
		fmt.Fprintln(os.Stdout, f.String())
	}
}

func readInputs(files []string) ([]byte, error) {
	if len(files) == 0 {
		return io.ReadAll(os.Stdin)
	}
	var buf []byte
	for _, name := range files {
		b, err := os.ReadFile(name)
		if err != nil {
			return nil, err
		}
		buf = append(buf, b...)
	}
	return buf, nil
}
