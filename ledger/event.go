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
	"fmt"

	"github.com/txledger/txledger/common"
	"github.com/txledger/txledger/common/amount"
)

// EventType is the closed set of transaction event kinds. It is a tagged
// union discriminator: every switch over EventType in this package is
// expected to be exhaustive.
type EventType byte

const (
	Deposit EventType = iota
	Withdrawal
	Dispute
	Resolve
	Chargeback
)

func (t EventType) String() string {
	switch t {
	case Deposit:
		return "deposit"
	case Withdrawal:
		return "withdrawal"
	case Dispute:
		return "dispute"
	case Resolve:
		return "resolve"
	case Chargeback:
		return "chargeback"
	default:
		return "invalid"
	}
}

// hasAmount reports whether events of this type carry an Amount.
func (t EventType) hasAmount() bool {
	return t == Deposit || t == Withdrawal
}

// RawRecord is the untyped shape of one input row, as read off the wire by
// the ingress adapter before it has been validated into an Event.
type RawRecord struct {
	Type   string
	Client common.ClientID
	Tx     common.TxID
	Amount *amount.Amount // nil if the field was absent
}

// Event is one transaction event: a tagged union over the five event kinds.
// Amount is only meaningful when Type is Deposit or Withdrawal.
type Event struct {
	Type   EventType
	Client common.ClientID
	Tx     common.TxID
	Amount amount.Amount
}

// NewEvent validates and converts a RawRecord into an Event, enforcing the
// ingestion contract: deposits and withdrawals must carry an amount,
// disputes/resolves/chargebacks must not, and the type string must be one
// of the five recognized kinds.
func NewEvent(raw RawRecord) (Event, error) {
	var eventType EventType
	switch raw.Type {
	case "deposit":
		eventType = Deposit
	case "withdrawal":
		eventType = Withdrawal
	case "dispute":
		eventType = Dispute
	case "resolve":
		eventType = Resolve
	case "chargeback":
		eventType = Chargeback
	default:
		return Event{}, fmt.Errorf("%w: %q", ErrInvalidType, raw.Type)
	}

	if eventType.hasAmount() {
		if raw.Amount == nil {
			return Event{}, ErrMissingAmount
		}
		return Event{Type: eventType, Client: raw.Client, Tx: raw.Tx, Amount: *raw.Amount}, nil
	}

	if raw.Amount != nil {
		return Event{}, ErrSuperfluousAmount
	}
	return Event{Type: eventType, Client: raw.Client, Tx: raw.Tx}, nil
}
