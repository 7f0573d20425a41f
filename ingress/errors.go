// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package ingress

import "github.com/txledger/txledger/common"

// ErrMalformedHeader is reported when the input stream's first row is not
// the expected "type,client,tx,amount" column header.
const ErrMalformedHeader = common.ConstError("ingress: malformed header")

// ErrMalformedRow is reported when a data row has the wrong number of
// fields to be a transaction record.
const ErrMalformedRow = common.ConstError("ingress: malformed row")

// ErrMalformedRecord marks every error Next returns for a single bad data
// row -- wrong field count, unparsable client/tx/amount, or a CSV syntax
// error from the underlying reader. Run uses it to tell a record-level
// problem (reported per record, processing continues) apart from a genuine
// I/O failure on the source (fatal). It is never returned from NewReader:
// a bad header is a fatal condition, not a per-record one.
const ErrMalformedRecord = common.ConstError("ingress: malformed record")
