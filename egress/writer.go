// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package egress writes final account states out as CSV, the mirror image
// of package ingress.
package egress

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/txledger/txledger/common"
	"github.com/txledger/txledger/ledger"
)

var header = []string{"client", "available", "held", "total", "locked"}

// Write emits one "client,available,held,total,locked" row per account
// reachable through accounts, in whatever order accounts yields them. The
// amounts are formatted with their full four-decimal precision.
func Write(w io.Writer, accounts func(yield func(common.ClientID, ledger.AccountState) bool)) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	var err error
	for client, state := range accounts {
		row := []string{
			strconv.FormatUint(uint64(client), 10),
			state.Available().String(),
			state.Held.String(),
			state.Total.String(),
			strconv.FormatBool(state.Locked),
		}
		if werr := cw.Write(row); werr != nil {
			err = fmt.Errorf("writing row for client %v: %w", client, werr)
			break
		}
	}
	if err != nil {
		return err
	}

	cw.Flush()
	return cw.Error()
}
