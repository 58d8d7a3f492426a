// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package taskrun

import (
	"encoding/gob"
	"errors"
	"io"
)

var (
	// ErrEncodeResults is returned when writing results in binary form fails.
	ErrEncodeResults = errors.New("failed to encode binary results")
	// ErrDecodeResults is returned when reading binary results fails.
	ErrDecodeResults = errors.New("failed to decode binary results")
)

// resultRecord is the gob-encodable form of a Result. Errors travel as
// text because their concrete types cannot cross the encoding boundary.
type resultRecord struct {
	Label    string
	ExitCode int
	Status   ResultStatus
	StdOut   []byte
	StdErr   []byte
	ErrText  string
	Children []resultRecord
}

func toRecords(results Results) []resultRecord {
	records := make([]resultRecord, 0, len(results))

	for _, r := range results {
		rec := resultRecord{
			Label:    r.Label,
			ExitCode: r.ExitCode,
			Status:   r.Status,
			StdOut:   r.StdOut,
			StdErr:   r.StdErr,
			Children: toRecords(r.Children),
		}
		if r.Error != nil {
			rec.ErrText = r.Error.Error()
		}

		records = append(records, rec)
	}

	return records
}

func fromRecords(records []resultRecord) Results {
	results := make(Results, 0, len(records))

	for _, rec := range records {
		r := &Result{
			Label:    rec.Label,
			ExitCode: rec.ExitCode,
			Status:   rec.Status,
			StdOut:   rec.StdOut,
			StdErr:   rec.StdErr,
			Children: fromRecords(rec.Children),
		}
		if rec.ErrText != "" {
			r.Error = errors.New(rec.ErrText)
		}

		results = append(results, r)
	}

	return results
}

// WriteBinary encodes the result tree to w in a self-contained binary
// form that ReadBinaryResults can restore.
func (r Results) WriteBinary(w io.Writer) error {
	enc := gob.NewEncoder(w)
	if err := enc.Encode(toRecords(r)); err != nil {
		return errors.Join(ErrEncodeResults, err)
	}

	return nil
}

// ReadBinaryResults decodes a result tree previously written with
// WriteBinary. Error identities are not preserved, only their messages.
func ReadBinaryResults(r io.Reader) (Results, error) {
	var records []resultRecord

	dec := gob.NewDecoder(r)
	if err := dec.Decode(&records); err != nil {
		return nil, errors.Join(ErrDecodeResults, err)
	}

	return fromRecords(records), nil
}
