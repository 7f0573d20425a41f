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

import (
	"errors"
	"fmt"
	"io"

	"github.com/txledger/txledger/ledger"
)

// RecordError reports a single record that could not be turned into a
// ledger mutation, whether because it failed to parse or because the
// processor rejected the resulting event. It carries no line number since
// a RecordSource is not required to track one; implementations that do may
// embed it in the wrapped error.
type RecordError struct {
	Index int
	Err   error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("record %d: %v", e.Index, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

// Run reads every record from src, turns each into a ledger.Event, and
// applies it to p in order. Per-record failures -- malformed input,
// validation failures, rejected events -- are reported to onError and do
// not stop the run. Run only returns an error when src fails with something
// other than io.EOF or an ErrMalformedRecord, which is treated as a fatal
// I/O condition on the underlying source.
func Run(src RecordSource, p *ledger.Processor, onError func(*RecordError)) error {
	for index := 0; ; index++ {
		raw, err := src.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if errors.Is(err, ErrMalformedRecord) {
			if onError != nil {
				onError(&RecordError{Index: index, Err: err})
			}
			continue
		}
		if err != nil {
			return fmt.Errorf("reading record %d: %w", index, err)
		}

		ev, err := ledger.NewEvent(raw)
		if err != nil {
			if onError != nil {
				onError(&RecordError{Index: index, Err: err})
			}
			continue
		}

		if err := p.Process(ev); err != nil {
			if onError != nil {
				onError(&RecordError{Index: index, Err: err})
			}
			continue
		}
	}
}
