package bitpack

import (
	"strings"
	"testing"
)

func TestTable_Lookup(t *testing.T) {
	table := makeTestTable()

	type testRow struct {
		symbol Symbol
		expect string
	}

	testData := [...]testRow{
		{symbol: 0, expect: "\"1\""},
		{symbol: 1, expect: "\"01\""},
		{symbol: 2, expect: "\"000\""},
		{symbol: 3, expect: "\"0010\""},
		{symbol: 4, expect: "\"00110\""},
		{symbol: 5, expect: "\"00111\""},
	}
	for _, row := range testData {
		actual := table.Lookup(row.symbol).String()
		if row.expect != actual {
			t.Errorf("Lookup(%d): wrong output:\n\texpect: %s\n\tactual: %s", row.symbol, row.expect, actual)
		}
	}
}

func TestTable_Accessors(t *testing.T) {
	table := makeTestTable()

	if expect, actual := 6, table.NumSymbols(); expect != actual {
		t.Errorf("expected NumSymbols %d, got %d", expect, actual)
	}
	if expect, actual := Symbol(5), table.MaxSymbol(); expect != actual {
		t.Errorf("expected MaxSymbol %d, got %d", expect, actual)
	}
	if expect, actual := 5, table.MaxSize(); expect != actual {
		t.Errorf("expected MaxSize %d, got %d", expect, actual)
	}
}

func TestTable_Dump(t *testing.T) {
	table := NewTable([]Codeword[uint8]{
		MakeCodeword[uint8](1, 0x01),
		MakeCodeword[uint8](2, 0x02),
		{},
	})

	expectDump := strings.Join([]string{
		"Table{\n",
		"\tNumSymbols() = 3\n",
		"\tMaxSize() = 2\n",
		"\tLookup(0) = \"1\"\n",
		"\tLookup(1) = \"01\"\n",
		"\tLookup(2) = nil\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = table.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}

func TestTable_ZeroSizeEntries(t *testing.T) {
	// An alphabet where most symbols never occur is the common case for
	// byte input; unused entries carry Size 0 and are legal to store.
	codes := make([]Codeword[uint8], NumByteSymbols)
	codes['a'] = MakeCodeword[uint8](1, 0x00)
	codes['b'] = MakeCodeword[uint8](1, 0x01)
	table := NewTable(codes)

	if expect, actual := 1, table.MaxSize(); expect != actual {
		t.Errorf("expected MaxSize %d, got %d", expect, actual)
	}
	if cw := table.Lookup('z'); cw.Size != 0 {
		t.Errorf("expected zero-size codeword, got %s", cw)
	}
}
