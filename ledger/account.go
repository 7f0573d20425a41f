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

import "github.com/txledger/txledger/common"

// Account is the authority for a single client: it owns one AccountState
// snapshot plus that client's transaction history and the set of
// currently-disputed transaction ids. Account is the only component that
// mutates an AccountState; AccountState's own methods are pure.
type Account struct {
	state    AccountState
	history  map[common.TxID]PastTransaction
	disputed map[common.TxID]struct{}
}

// NewAccount returns a fresh, unlocked, zero-balance account with empty
// history and dispute set — the default an account is created with on the
// first event that mentions its client.
func NewAccount() *Account {
	return &Account{
		history:  make(map[common.TxID]PastTransaction),
		disputed: make(map[common.TxID]struct{}),
	}
}

// State returns the account's current snapshot.
func (a *Account) State() AccountState {
	return a.state
}

// Apply dispatches ev to the matching per-variant protocol. If any
// precondition or arithmetic step fails, the account is left exactly as it
// was before the call — a failed event never mutates anything.
func (a *Account) Apply(ev Event) error {
	switch ev.Type {
	case Deposit:
		return a.deposit(ev)
	case Withdrawal:
		return a.withdraw(ev)
	case Dispute:
		return a.dispute(ev)
	case Resolve:
		return a.resolve(ev)
	case Chargeback:
		return a.chargeback(ev)
	default:
		panic("ledger: unhandled event type")
	}
}

func (a *Account) deposit(ev Event) error {
	if a.state.Locked {
		return ErrAccountLocked
	}
	if _, exists := a.history[ev.Tx]; exists {
		return ErrTransactionAlreadyExists
	}
	next, err := a.state.Deposit(ev.Amount)
	if err != nil {
		return err
	}
	a.state = next
	a.history[ev.Tx] = PastTransaction{kind: pastDeposit, Amount: ev.Amount}
	return nil
}

func (a *Account) withdraw(ev Event) error {
	if a.state.Locked {
		return ErrAccountLocked
	}
	if _, exists := a.history[ev.Tx]; exists {
		return ErrTransactionAlreadyExists
	}
	next, err := a.state.Withdraw(ev.Amount)
	if err != nil {
		return err
	}
	a.state = next
	a.history[ev.Tx] = PastTransaction{kind: pastWithdrawal, Amount: ev.Amount}
	return nil
}

// dispute, resolve and chargeback are not gated by the lock flag: a locked
// account may still be reconciled.
func (a *Account) dispute(ev Event) error {
	past, exists := a.history[ev.Tx]
	if !exists {
		return ErrTransactionNotFound
	}
	if !past.IsDeposit() {
		return ErrWrongTransactionType
	}
	if _, disputed := a.disputed[ev.Tx]; disputed {
		return ErrTransactionAlreadyDisputed
	}
	next, err := a.state.Hold(past.Amount)
	if err != nil {
		return err
	}
	a.state = next
	a.disputed[ev.Tx] = struct{}{}
	return nil
}

func (a *Account) resolve(ev Event) error {
	past, exists := a.history[ev.Tx]
	if !exists {
		return ErrTransactionNotFound
	}
	if _, disputed := a.disputed[ev.Tx]; !disputed {
		return ErrTransactionNotDisputed
	}
	next, err := a.state.Unhold(past.Amount)
	if err != nil {
		return err
	}
	a.state = next
	delete(a.disputed, ev.Tx)
	return nil
}

func (a *Account) chargeback(ev Event) error {
	past, exists := a.history[ev.Tx]
	if !exists {
		return ErrTransactionNotFound
	}
	if _, disputed := a.disputed[ev.Tx]; !disputed {
		return ErrTransactionNotDisputed
	}
	next, err := a.state.Chargeback(past.Amount)
	if err != nil {
		return err
	}
	a.state = next
	delete(a.disputed, ev.Tx)
	return nil
}
