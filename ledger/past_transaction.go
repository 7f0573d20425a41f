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

// pastTransactionKind distinguishes the two transaction kinds that are
// retained in an account's history. Disputes, resolves and chargebacks are
// never themselves recorded as past transactions — they only reference one.
type pastTransactionKind byte

const (
	pastDeposit pastTransactionKind = iota
	pastWithdrawal
)

// PastTransaction is the entry an account keeps for every successfully
// applied deposit or withdrawal, looked up by transaction id when a later
// dispute, resolve or chargeback references it.
type PastTransaction struct {
	kind   pastTransactionKind
	Amount amount.Amount
}

// IsDeposit reports whether this history entry is a deposit. Only deposits
// are eligible to be disputed.
func (p PastTransaction) IsDeposit() bool {
	return p.kind == pastDeposit
}
