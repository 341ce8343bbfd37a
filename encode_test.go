package wealthtracker

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/PaesslerAG/jsonpath"
)

func TestDecodeLedger(t *testing.T) {
	// Declarations and transactions deliberately interleaved and unsorted.
	jsonlStream := `
{"record":"category","id":"crypto","name":"Crypto","color":"#f7931a"}
{"record":"asset","id":"btc","ticker":"BTC","name":"Bitcoin","category":"crypto","price":50000,"currency":"EUR"}
{"record":"buy","date":"2023-06-01","asset":"btc","quantity":0.3,"price":45000,"fee":30,"currency":"EUR"}
{"record":"buy","date":"2023-01-01","asset":"btc","quantity":0.5,"price":40000,"fee":50,"currency":"EUR"}
{"record":"objective","target":100000,"years":10,"rate":5}
{"record":"sell","date":"2024-01-01","asset":"btc","quantity":0.2,"price":48000,"currency":"EUR"}
`
	ledger, err := DecodeLedger(strings.NewReader(jsonlStream))
	if err != nil {
		t.Fatalf("DecodeLedger() returned an unexpected error: %v", err)
	}

	if got := len(ledger.Transactions()); got != 3 {
		t.Fatalf("decoded %d transactions, want 3", got)
	}
	// Re-sorted chronologically on decode.
	if d := ledger.OldestTransactionDate(); d != MustParseDate("2023-01-01") {
		t.Errorf("OldestTransactionDate() = %v, want 2023-01-01", d)
	}

	btc := ledger.Asset("btc")
	if btc == nil {
		t.Fatal("asset btc not declared after decode")
	}
	if !btc.CurrentPrice.Equal(EUR(50000)) {
		t.Errorf("btc.CurrentPrice = %v, want EUR(50000)", btc.CurrentPrice)
	}
	if c := ledger.Category("crypto"); c == nil || c.Name != "Crypto" {
		t.Errorf("Category(crypto) = %+v, want declared with name Crypto", c)
	}

	o := ledger.Objective()
	if o.TargetAmount != 100000 || o.TargetYears != 10 || o.InterestRate != 5 {
		t.Errorf("Objective() = %+v, want 100000 in 10 years at 5%%", o)
	}

	// The decoded rows carry exact decimals: the net position is 0.6.
	if got := NetQuantity("btc", ledger.Transactions()); !got.Equal(Q(0.6)) {
		t.Errorf("NetQuantity(btc) = %v, want 0.6", got)
	}
}

func TestDecodeLedger_Rejects(t *testing.T) {
	testCases := []struct {
		name    string
		stream  string
		wantErr string
	}{
		{
			name:    "unknown record type",
			stream:  `{"record":"transfer","date":"2024-01-01"}`,
			wantErr: "unknown record type",
		},
		{
			name:    "garbage line",
			stream:  `{"record":`,
			wantErr: "line 1",
		},
		{
			name: "transaction on an undeclared asset",
			stream: `
{"record":"buy","date":"2024-01-01","asset":"btc","quantity":1,"price":100,"currency":"EUR"}
`,
			wantErr: "not declared",
		},
		{
			name: "oversell",
			stream: `
{"record":"asset","id":"btc","ticker":"BTC","price":50000,"currency":"EUR"}
{"record":"buy","date":"2024-01-01","asset":"btc","quantity":1,"price":100,"currency":"EUR"}
{"record":"sell","date":"2024-02-01","asset":"btc","quantity":2,"price":100,"currency":"EUR"}
`,
			wantErr: "position is only",
		},
		{
			name:    "invalid objective",
			stream:  `{"record":"objective","target":-1,"years":10,"rate":5}`,
			wantErr: "target must be positive",
		},
		{
			name: "mixed currencies",
			stream: `
{"record":"asset","id":"btc","ticker":"BTC","price":50000,"currency":"EUR"}
{"record":"asset","id":"aapl","ticker":"AAPL","price":200,"currency":"USD"}
`,
			wantErr: "mixed currencies",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeLedger(strings.NewReader(tc.stream))
			if err == nil {
				t.Fatalf("DecodeLedger() = nil error, want %q", tc.wantErr)
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("DecodeLedger() error = %q, want it to contain %q", err, tc.wantErr)
			}
		})
	}
}

// Decoding then encoding yields the canonical file: declarations first,
// transactions in chronological order, stable field order, exact numbers.
func TestEncodeLedger_Canonical(t *testing.T) {
	ledger := NewLedger()
	ledger.DeclareCategory(Category{ID: "crypto", Name: "Crypto"})
	ledger.Declare(NewAsset("btc", "BTC", "Bitcoin", "crypto", EUR(50000)))
	ledger.SetObjective(ObjectiveParams{TargetAmount: 100000, TargetYears: 10, InterestRate: 5})
	ledger.Append(
		NewBuy(MustParseDate("2023-06-01"), "", "btc", Q(0.3), EUR(45000), EUR(30)),
		NewBuy(MustParseDate("2023-01-01"), "", "btc", Q(0.5), EUR(40000), EUR(50)),
	)

	var first bytes.Buffer
	if err := EncodeLedger(&first, ledger); err != nil {
		t.Fatalf("EncodeLedger() returned an unexpected error: %v", err)
	}

	decoded, err := DecodeLedger(bytes.NewReader(first.Bytes()))
	if err != nil {
		t.Fatalf("DecodeLedger() of encoded output failed: %v", err)
	}
	var second bytes.Buffer
	if err := EncodeLedger(&second, decoded); err != nil {
		t.Fatalf("EncodeLedger() after round trip failed: %v", err)
	}

	if first.String() != second.String() {
		t.Errorf("encode/decode/encode is not stable.\nFirst:\n%s\nSecond:\n%s", first.String(), second.String())
	}

	lines := strings.Split(strings.TrimSpace(first.String()), "\n")
	if len(lines) != 5 {
		t.Fatalf("encoded %d lines, want 5", len(lines))
	}

	// Query the encoded lines by path rather than by exact string, so the
	// assertions survive field additions.
	query := func(line, path string) any {
		t.Helper()
		var jobj any
		if err := json.Unmarshal([]byte(line), &jobj); err != nil {
			t.Fatalf("encoded line is not valid JSON: %v\n%s", err, line)
		}
		v, err := jsonpath.Get(path, jobj)
		if err != nil {
			t.Fatalf("jsonpath %s failed on %s: %v", path, line, err)
		}
		return v
	}

	if got := query(lines[0], "$.record"); got != "category" {
		t.Errorf("line 1 record = %v, want category", got)
	}
	if got := query(lines[1], "$.record"); got != "asset" {
		t.Errorf("line 2 record = %v, want asset", got)
	}
	if got := query(lines[2], "$.record"); got != "objective" {
		t.Errorf("line 3 record = %v, want objective", got)
	}
	// Transactions come last, oldest first.
	if got := query(lines[3], "$.date"); got != "2023-01-01" {
		t.Errorf("line 4 date = %v, want 2023-01-01", got)
	}
	if got := query(lines[3], "$.quantity"); got != 0.5 {
		t.Errorf("line 4 quantity = %v, want the plain number 0.5", got)
	}
	if got := query(lines[4], "$.price"); got != 45000.0 {
		t.Errorf("line 5 price = %v, want the plain number 45000", got)
	}
	if got := query(lines[4], "$.currency"); got != "EUR" {
		t.Errorf("line 5 currency = %v, want EUR", got)
	}
}
