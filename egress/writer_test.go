// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package egress

import (
	"bytes"
	"strings"
	"testing"

	"github.com/txledger/txledger/common"
	"github.com/txledger/txledger/common/amount"
	"github.com/txledger/txledger/ledger"
)

func mustParse(t *testing.T, s string) amount.Amount {
	t.Helper()
	a, err := amount.Parse(s)
	if err != nil {
		t.Fatalf("amount.Parse(%q): %v", s, err)
	}
	return a
}

func TestWrite_HeaderAndRow(t *testing.T) {
	accounts := func(yield func(common.ClientID, ledger.AccountState) bool) {
		yield(1, ledger.AccountState{Total: mustParse(t, "5"), Held: mustParse(t, "2")})
	}

	var buf bytes.Buffer
	if err := Write(&buf, accounts); err != nil {
		t.Fatalf("Write: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if lines[0] != "client,available,held,total,locked" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "1,3.0000,2.0000,5.0000,false" {
		t.Errorf("row = %q", lines[1])
	}
}

func TestWrite_LockedAccount(t *testing.T) {
	accounts := func(yield func(common.ClientID, ledger.AccountState) bool) {
		yield(7, ledger.AccountState{Total: mustParse(t, "1"), Locked: true})
	}

	var buf bytes.Buffer
	if err := Write(&buf, accounts); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !strings.Contains(buf.String(), "7,1.0000,0.0000,1.0000,true") {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestWrite_NoAccountsStillWritesHeader(t *testing.T) {
	accounts := func(yield func(common.ClientID, ledger.AccountState) bool) {}

	var buf bytes.Buffer
	if err := Write(&buf, accounts); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "client,available,held,total,locked" {
		t.Errorf("unexpected output: %q", buf.String())
	}
}
