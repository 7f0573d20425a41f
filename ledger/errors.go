// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package ledger is the transaction processor: the deterministic state
// machine that maintains per-client account state, transaction history, and
// the set of currently disputed transactions.
package ledger

import "github.com/txledger/txledger/common"

// Ingestion errors, raised while turning a RawRecord into an Event.
const (
	// ErrMissingAmount is returned when a deposit or withdrawal record has
	// no amount field.
	ErrMissingAmount = common.ConstError("ledger: missing amount")
	// ErrSuperfluousAmount is returned when a dispute, resolve or
	// chargeback record carries an amount field.
	ErrSuperfluousAmount = common.ConstError("ledger: superfluous amount")
	// ErrInvalidType is returned when a record's type string is not one of
	// the five recognized event kinds.
	ErrInvalidType = common.ConstError("ledger: invalid event type")
)

// Account/processor errors, raised while applying an Event to an Account.
const (
	// ErrTransactionAlreadyExists is returned by Deposit/Withdrawal when
	// the transaction id already appears in the account's history.
	ErrTransactionAlreadyExists = common.ConstError("ledger: transaction already exists")
	// ErrTransactionNotFound is returned by Dispute/Resolve/Chargeback when
	// the referenced transaction id has no history entry.
	ErrTransactionNotFound = common.ConstError("ledger: transaction not found")
	// ErrTransactionNotDisputed is returned by Resolve/Chargeback when the
	// referenced transaction is not currently disputed.
	ErrTransactionNotDisputed = common.ConstError("ledger: transaction not disputed")
	// ErrTransactionAlreadyDisputed is returned by Dispute when the
	// referenced transaction is already disputed.
	ErrTransactionAlreadyDisputed = common.ConstError("ledger: transaction already disputed")
	// ErrWrongTransactionType is returned by Dispute when the referenced
	// transaction is a withdrawal; only deposits can be disputed.
	ErrWrongTransactionType = common.ConstError("ledger: wrong transaction type")
	// ErrAccountLocked is returned by Deposit/Withdrawal on a locked
	// account.
	ErrAccountLocked = common.ConstError("ledger: account is locked")
)
