// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Run with `go run ./cmd/ledger transactions.csv > accounts.csv`
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/txledger/txledger/egress"
	"github.com/txledger/txledger/ingress"
	"github.com/txledger/txledger/ledger"
)

func main() {
	app := &cli.App{
		Name:      "ledger",
		HelpName:  "ledger",
		Usage:     "replays a CSV transaction stream into final per-client account states",
		Copyright: "(c) 2024 Fantom Foundation",
		ArgsUsage: "<input.csv>",
		Action:    run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx *cli.Context) (err error) {
	path := ctx.Args().First()
	if path == "" {
		return cli.Exit("missing input file argument", 1)
	}

	log.Printf("Opening %v ...", path)
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			if err == nil {
				err = closeErr
			} else {
				log.Printf("Failure closing %v: %v", path, closeErr)
			}
		}
	}()

	src, err := ingress.NewReader(f)
	if err != nil {
		return fmt.Errorf("reading %v: %w", path, err)
	}

	p := ledger.NewProcessor()
	onError := func(e *ingress.RecordError) {
		fmt.Fprintln(os.Stderr, e)
	}
	if err := ingress.Run(src, p, onError); err != nil {
		return fmt.Errorf("processing %v: %w", path, err)
	}

	return egress.Write(os.Stdout, p.All())
}
