// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package ledger

import (
	"errors"
	"testing"

	"github.com/txledger/txledger/common"
	"github.com/txledger/txledger/common/amount"
)

func TestProcessor_CreatesAccountLazily(t *testing.T) {
	p := NewProcessor()
	if err := p.Process(deposit(1, 1, "1")); err != nil {
		t.Fatalf("deposit failed: %v", err)
	}
	found := false
	for client := range p.All() {
		if client == 1 {
			found = true
		}
	}
	if !found {
		t.Errorf("client 1 should have been created")
	}
}

func TestProcessor_FailedEventDoesNotHaltProcessing(t *testing.T) {
	p := NewProcessor()
	if err := p.Process(dispute(1, 99)); !errors.Is(err, ErrTransactionNotFound) {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := p.Process(deposit(1, 1, "1")); err != nil {
		t.Fatalf("subsequent deposit should still succeed: %v", err)
	}
}

func stateOf(t *testing.T, p *Processor, client common.ClientID) AccountState {
	t.Helper()
	for c, s := range p.All() {
		if c == client {
			return s
		}
	}
	t.Fatalf("no account found for client %d", client)
	return AccountState{}
}

func mustApplyAll(t *testing.T, p *Processor, events ...Event) {
	t.Helper()
	for _, ev := range events {
		_ = p.Process(ev) // scenarios below only assert the final state
	}
}

// S1: deposit then withdraw equal amounts nets to zero.
func TestProcessor_S1_DepositThenWithdrawEqual(t *testing.T) {
	p := NewProcessor()
	mustApplyAll(t, p,
		deposit(1, 1, "1.0"),
		withdrawal(1, 2, "1.0"),
	)
	s := stateOf(t, p, 1)
	want := AccountState{Total: amount.Zero(), Held: amount.Zero(), Locked: false}
	if s != want {
		t.Errorf("got %+v, want %+v", s, want)
	}
}

// S2: multi-op arithmetic.
func TestProcessor_S2_MultiOpArithmetic(t *testing.T) {
	p := NewProcessor()
	mustApplyAll(t, p,
		deposit(3, 3, "1.0"),
		deposit(3, 4, "4.0"),
		withdrawal(3, 5, "2.0"),
		withdrawal(3, 6, "2.0"),
	)
	s := stateOf(t, p, 3)
	if got, want := s.Total.String(), "1.0000"; got != want {
		t.Errorf("Total = %s, want %s", got, want)
	}
	if !s.Held.IsZero() || s.Locked {
		t.Errorf("unexpected state: %+v", s)
	}
}

// S3: dispute/resolve cycle around an intervening withdrawal.
func TestProcessor_S3_DisputeResolveCycle(t *testing.T) {
	p := NewProcessor()
	mustApplyAll(t, p,
		deposit(3, 3, "7.0"),
		deposit(3, 4, "1.0"),
		dispute(3, 3),
		withdrawal(3, 12, "1.0"),
		resolve(3, 3),
	)
	s := stateOf(t, p, 3)
	if got, want := s.Total.String(), "7.0000"; got != want {
		t.Errorf("Total = %s, want %s", got, want)
	}
	if !s.Held.IsZero() || s.Locked {
		t.Errorf("unexpected state: %+v", s)
	}
}

// S4: chargeback locks the account and rejects further withdrawals.
func TestProcessor_S4_ChargebackLocks(t *testing.T) {
	p := NewProcessor()
	mustApplyAll(t, p,
		deposit(3, 0, "2.0"),
		deposit(3, 1, "1.0"),
		dispute(3, 0),
		chargeback(3, 0),
	)
	s := stateOf(t, p, 3)
	if got, want := s.Total.String(), "1.0000"; got != want {
		t.Errorf("Total = %s, want %s", got, want)
	}
	if !s.Locked {
		t.Errorf("account should be locked")
	}
	if err := p.Process(withdrawal(3, 2, "1.0")); !errors.Is(err, ErrAccountLocked) {
		t.Errorf("error = %v, want %v", err, ErrAccountLocked)
	}
}

// S5: disputing a deposit after its funds have been drained underflows and
// leaves the state unchanged.
func TestProcessor_S5_UnderflowOnDisputeAfterDraining(t *testing.T) {
	p := NewProcessor()
	mustApplyAll(t, p,
		deposit(3, 3, "7.0"),
		dispute(3, 3),
		resolve(3, 3),
		withdrawal(3, 13, "7.0"),
	)
	if err := p.Process(dispute(3, 3)); !errors.Is(err, amount.ErrUnderflow) {
		t.Fatalf("final dispute error = %v, want %v", err, amount.ErrUnderflow)
	}
	s := stateOf(t, p, 3)
	want := AccountState{Total: amount.Zero(), Held: amount.Zero(), Locked: false}
	if s != want {
		t.Errorf("got %+v, want %+v", s, want)
	}
}

// S6: disputing an unknown tx on a fresh account fails and leaves it default.
func TestProcessor_S6_UnknownTx(t *testing.T) {
	p := NewProcessor()
	if err := p.Process(dispute(3, 4)); !errors.Is(err, ErrTransactionNotFound) {
		t.Fatalf("error = %v, want %v", err, ErrTransactionNotFound)
	}
	s := stateOf(t, p, 3)
	if s != (AccountState{}) {
		t.Errorf("account should remain default, got %+v", s)
	}
}

func TestProcessor_AllStopsEarlyWhenYieldReturnsFalse(t *testing.T) {
	p := NewProcessor()
	mustApplyAll(t, p, deposit(1, 1, "1"), deposit(2, 1, "1"), deposit(3, 1, "1"))
	count := 0
	for range p.All() {
		count++
		break
	}
	if count != 1 {
		t.Errorf("iteration should have stopped after the first yield, count = %d", count)
	}
}
