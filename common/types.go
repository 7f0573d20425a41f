// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package common

import "strconv"

// ClientID identifies a client account. It is an opaque 16-bit value; no
// ordering or structure is implied beyond equality.
type ClientID uint16

// String renders the client id the way it is read from and written to CSV
// records: plain decimal, no padding.
func (c ClientID) String() string {
	return strconv.FormatUint(uint64(c), 10)
}

// TxID identifies a transaction. Uniqueness is only required within a single
// client's history (see package ledger); a TxID may legitimately repeat
// across clients.
type TxID uint32

// String renders the transaction id in plain decimal form.
func (t TxID) String() string {
	return strconv.FormatUint(uint64(t), 10)
}
