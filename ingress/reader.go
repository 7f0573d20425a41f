// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package ingress reads raw transaction records from a CSV stream and turns
// them into ledger.RawRecord values for validation by the ledger package.
package ingress

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/txledger/txledger/common"
	"github.com/txledger/txledger/common/amount"
	"github.com/txledger/txledger/ledger"
)

var wantHeader = []string{"type", "client", "tx", "amount"}

// RecordSource is anything that can hand back raw records one at a time,
// ending the stream by returning io.EOF. It is the seam ingress.Run depends
// on, letting callers swap in a CSV-backed Reader or a test double.
type RecordSource interface {
	Next() (ledger.RawRecord, error)
}

// Reader parses whitespace-tolerant CSV with a "type,client,tx,amount"
// header into ledger.RawRecord values. Amounts are parsed with amount.Parse
// so the exact decimal text from the input survives into the ledger.
type Reader struct {
	csv *csv.Reader
}

// NewReader validates the header row of r and returns a Reader positioned at
// the first data record. It returns an error if the stream is empty or the
// header does not match the expected column names, case-sensitively.
func NewReader(r io.Reader) (*Reader, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("reading header: %w", io.ErrUnexpectedEOF)
		}
		return nil, fmt.Errorf("reading header: %w", err)
	}
	if len(header) != len(wantHeader) {
		return nil, fmt.Errorf("%w: expected %d columns, got %d", ErrMalformedHeader, len(wantHeader), len(header))
	}
	for i, col := range header {
		if strings.TrimSpace(col) != wantHeader[i] {
			return nil, fmt.Errorf("%w: column %d is %q, want %q", ErrMalformedHeader, i, col, wantHeader[i])
		}
	}
	return &Reader{csv: cr}, nil
}

// Next returns the next raw record, or io.EOF once the stream is exhausted.
// A malformed row (wrong field count, unparsable client/tx/amount) is
// reported as an error without consuming any further input.
func (r *Reader) Next() (ledger.RawRecord, error) {
	fields, err := r.csv.Read()
	if err != nil {
		if err == io.EOF {
			return ledger.RawRecord{}, io.EOF
		}
		// A syntax error from the CSV layer itself (unclosed quote, stray
		// quote in an unquoted field, etc.) is still a per-record problem,
		// not a failure of the underlying stream. The field count is checked
		// below, since the CSV reader is set to accept any count.
		return ledger.RawRecord{}, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	if len(fields) != len(wantHeader) {
		return ledger.RawRecord{}, fmt.Errorf("%w: %w: got %d fields", ErrMalformedRecord, ErrMalformedRow, len(fields))
	}

	typ := strings.TrimSpace(fields[0])

	client, err := strconv.ParseUint(strings.TrimSpace(fields[1]), 10, 16)
	if err != nil {
		return ledger.RawRecord{}, fmt.Errorf("%w: parsing client id %q: %v", ErrMalformedRecord, fields[1], err)
	}

	tx, err := strconv.ParseUint(strings.TrimSpace(fields[2]), 10, 32)
	if err != nil {
		return ledger.RawRecord{}, fmt.Errorf("%w: parsing tx id %q: %v", ErrMalformedRecord, fields[2], err)
	}

	raw := ledger.RawRecord{
		Type:   typ,
		Client: common.ClientID(client),
		Tx:     common.TxID(tx),
	}

	if strings.TrimSpace(fields[3]) != "" {
		amt, err := amount.Parse(strings.TrimSpace(fields[3]))
		if err != nil {
			return ledger.RawRecord{}, fmt.Errorf("%w: parsing amount %q: %v", ErrMalformedRecord, fields[3], err)
		}
		raw.Amount = &amt
	}

	return raw, nil
}
