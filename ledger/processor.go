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
	"iter"

	"github.com/txledger/txledger/common"
)

// Processor is the top-level collaborator: it owns the mapping from client
// id to Account, routes incoming events to the right account (creating one
// on first sight), and exposes the final account states for egress once the
// event stream ends. The Processor is the sole mutator of the ledger; no
// other component may reach into an Account or AccountState.
type Processor struct {
	accounts map[common.ClientID]*Account
}

// NewProcessor returns an empty processor with no known clients.
func NewProcessor() *Processor {
	return &Processor{accounts: make(map[common.ClientID]*Account)}
}

// Process routes ev to its client's account, creating that account if this
// is the first event seen for the client. A returned error means the event
// was rejected and the ledger is unchanged for that client; it is not a
// fatal condition and processing of subsequent events continues normally.
func (p *Processor) Process(ev Event) error {
	account, ok := p.accounts[ev.Client]
	if !ok {
		account = NewAccount()
		p.accounts[ev.Client] = account
	}
	return account.Apply(ev)
}

// All returns an unordered, lazy iterator over every known client and its
// current account state. No ownership of the underlying Account is handed
// out — each yielded AccountState is an independent value copy.
func (p *Processor) All() iter.Seq2[common.ClientID, AccountState] {
	return func(yield func(common.ClientID, AccountState) bool) {
		for client, account := range p.accounts {
			if !yield(client, account.State()) {
				return
			}
		}
	}
}
