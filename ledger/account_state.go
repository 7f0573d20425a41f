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

import "github.com/txledger/txledger/common/amount"

// AccountState is a pure, value-style snapshot of one client's balances and
// lock flag. Every transition method returns a new snapshot rather than
// mutating the receiver, so a caller can compute a candidate state locally
// and only adopt it once every other precondition (history lookup,
// dispute-set membership) has also been checked, keeping a failed event
// from mutating anything.
type AccountState struct {
	Locked bool
	Total  amount.Amount
	Held   amount.Amount
}

// Available returns the funds the client could withdraw right now:
// total minus held.
func (s AccountState) Available() amount.Amount {
	// Total >= Held is an invariant maintained by every transition below;
	// Sub cannot underflow here.
	a, err := amount.Sub(s.Total, s.Held)
	if err != nil {
		panic("ledger: invariant violated: total < held")
	}
	return a
}

// Deposit returns the snapshot after crediting amt to the total balance.
// Fails with ErrOverflow if the new total would not fit an Amount.
func (s AccountState) Deposit(amt amount.Amount) (AccountState, error) {
	total, err := amount.Add(s.Total, amt)
	if err != nil {
		return AccountState{}, err
	}
	next := AccountState{Locked: s.Locked, Total: total, Held: s.Held}
	return next.checkInvariant()
}

// Withdraw returns the snapshot after debiting amt from the total balance.
// Fails with ErrUnderflow if amt exceeds either the available or the total
// balance.
func (s AccountState) Withdraw(amt amount.Amount) (AccountState, error) {
	if amount.Compare(s.Available(), amt) < 0 {
		return AccountState{}, amount.ErrUnderflow
	}
	total, err := amount.Sub(s.Total, amt)
	if err != nil {
		return AccountState{}, err
	}
	next := AccountState{Locked: s.Locked, Total: total, Held: s.Held}
	return next.checkInvariant()
}

// Hold returns the snapshot after moving amt from available into held,
// freezing it for an open dispute. Fails with ErrUnderflow if amt exceeds
// the available balance, or ErrOverflow if the new held balance would not
// fit an Amount.
func (s AccountState) Hold(amt amount.Amount) (AccountState, error) {
	if amount.Compare(s.Available(), amt) < 0 {
		return AccountState{}, amount.ErrUnderflow
	}
	held, err := amount.Add(s.Held, amt)
	if err != nil {
		return AccountState{}, err
	}
	next := AccountState{Locked: s.Locked, Total: s.Total, Held: held}
	return next.checkInvariant()
}

// Unhold returns the snapshot after releasing amt from held back into
// available, as a dispute is resolved in the client's favor. Fails with
// ErrUnderflow if amt exceeds the held balance.
func (s AccountState) Unhold(amt amount.Amount) (AccountState, error) {
	held, err := amount.Sub(s.Held, amt)
	if err != nil {
		return AccountState{}, err
	}
	next := AccountState{Locked: s.Locked, Total: s.Total, Held: held}
	return next.checkInvariant()
}

// Chargeback returns the snapshot after removing amt from both total and
// held, and locking the account. Fails with ErrUnderflow if amt exceeds
// either the total or held balance.
func (s AccountState) Chargeback(amt amount.Amount) (AccountState, error) {
	total, err := amount.Sub(s.Total, amt)
	if err != nil {
		return AccountState{}, err
	}
	held, err := amount.Sub(s.Held, amt)
	if err != nil {
		return AccountState{}, err
	}
	next := AccountState{Locked: true, Total: total, Held: held}
	return next.checkInvariant()
}

// checkInvariant re-asserts 0 <= held <= total. None of the transitions
// above should ever be able to violate it given their preconditions; it
// panics rather than returning an error because reaching it means this
// package has a bug, not that the caller supplied bad input.
func (s AccountState) checkInvariant() (AccountState, error) {
	if amount.Compare(s.Total, s.Held) < 0 {
		panic("ledger: invariant violated: total < held")
	}
	return s, nil
}
