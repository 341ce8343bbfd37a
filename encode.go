package wealthtracker

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	// Amounts and quantities are stored as plain JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// recordHeader peeks at the discriminator of a ledger line.
type recordHeader struct {
	Record RecordType `json:"record"`
}

// DecodeLedger reads a ledger in JSONL format: one JSON object per line,
// each self-identified by its "record" field. Declarations may appear
// anywhere in the file; transactions are re-sorted chronologically after
// the read, so line order never changes the computed results.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		data := bytes.TrimSpace(scanner.Bytes())
		if len(data) == 0 {
			continue
		}

		var header recordHeader
		if err := json.Unmarshal(data, &header); err != nil {
			return nil, fmt.Errorf("line %d: invalid ledger record: %w", line, err)
		}

		switch header.Record {
		case RecAsset:
			var a Asset
			if err := json.Unmarshal(data, &a); err != nil {
				return nil, fmt.Errorf("line %d: invalid asset record: %w", line, err)
			}
			if err := a.Validate(); err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			ledger.Declare(a)
		case RecCategory:
			var c Category
			if err := json.Unmarshal(data, &c); err != nil {
				return nil, fmt.Errorf("line %d: invalid category record: %w", line, err)
			}
			if err := c.Validate(); err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			ledger.DeclareCategory(c)
		case RecObjective:
			var o ObjectiveParams
			if err := json.Unmarshal(data, &o); err != nil {
				return nil, fmt.Errorf("line %d: invalid objective record: %w", line, err)
			}
			if err := o.Validate(); err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			ledger.SetObjective(o)
		case RecBuy, RecSell:
			var t Transaction
			if err := json.Unmarshal(data, &t); err != nil {
				return nil, fmt.Errorf("line %d: invalid transaction record: %w", line, err)
			}
			ledger.Append(t)
		default:
			return nil, fmt.Errorf("line %d: unknown record type %q", line, header.Record)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading ledger: %w", err)
	}

	// The whole file is validated once every declaration is in; it is
	// rejected whole, never half-loaded. Currency uniformity comes first:
	// the engine aggregates across assets and has no conversion layer.
	if _, err := ledger.Currency(); err != nil {
		return nil, err
	}
	for _, tx := range ledger.Transactions() {
		if err := ledger.Validate(tx); err != nil {
			return nil, err
		}
	}

	return ledger, nil
}

// EncodeLedger writes the ledger in canonical JSONL form: categories and
// assets first in ID order, then the objective if set, then the
// transactions in chronological order. Encoding then decoding yields an
// equivalent ledger; decoding then encoding yields the canonical file.
func EncodeLedger(w io.Writer, ledger *Ledger) error {
	for c := range ledger.AllCategories() {
		if err := EncodeRecord(w, c); err != nil {
			return err
		}
	}
	for a := range ledger.AllAssets() {
		if err := EncodeRecord(w, a); err != nil {
			return err
		}
	}
	if o := ledger.Objective(); !o.IsZero() {
		if err := EncodeRecord(w, o); err != nil {
			return err
		}
	}
	for _, tx := range ledger.Transactions() {
		if err := EncodeRecord(w, tx); err != nil {
			return err
		}
	}
	return nil
}

// EncodeRecord writes one record as a single JSONL line.
func EncodeRecord(w io.Writer, record any) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encoding ledger record: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing ledger record: %w", err)
	}
	return nil
}
