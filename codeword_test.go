package bitpack

import (
	"testing"
)

func TestCodeword_String(t *testing.T) {
	type testRow struct {
		name   string
		cw     Codeword[uint8]
		expect string
	}

	testData := [...]testRow{
		{name: "empty", cw: MakeCodeword[uint8](0), expect: "\"\""},
		{name: "one-bit", cw: MakeCodeword[uint8](1, 0x01), expect: "\"1\""},
		{name: "three-bit", cw: MakeCodeword[uint8](3, 0x05), expect: "\"101\""},
		{name: "five-bit", cw: MakeCodeword[uint8](5, 0x01), expect: "\"10000\""},
		{name: "two-word", cw: MakeCodeword[uint8](12, 0xff, 0x0a), expect: "\"111111110101\""},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			actual := row.cw.String()
			if row.expect != actual {
				t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", row.expect, actual)
			}
		})
	}
}

func TestCodeword_AppendDropBit(t *testing.T) {
	var cw Codeword[uint8]
	for _, bit := range []bool{false, true, true, false, true} {
		cw.AppendBit(bit)
	}
	if expect, actual := "\"01101\"", cw.String(); expect != actual {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expect, actual)
	}

	// Dropping a 1 bit and appending a 0 in its place must not leave the
	// old bit behind.
	cw.DropBit()
	cw.AppendBit(false)
	if expect, actual := "\"01100\"", cw.String(); expect != actual {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expect, actual)
	}
}

func TestCodeword_AppendBitGrowsWords(t *testing.T) {
	var cw Codeword[uint8]
	for i := 0; i < 70; i++ {
		cw.AppendBit(i%3 == 0)
	}
	if cw.Size != 70 {
		t.Fatalf("expected size 70, got %d", cw.Size)
	}
	if len(cw.Words) != 9 {
		t.Errorf("expected 70 bits to occupy 9 words, got %d", len(cw.Words))
	}
	for i := 0; i < 70; i++ {
		expect := i%3 == 0
		if actual := cw.Bit(i); expect != actual {
			t.Errorf("bit %d: expected %v, got %v", i, expect, actual)
		}
	}
}

func TestCodeword_Clone(t *testing.T) {
	cw := MakeCodeword[uint8](3, 0x05)
	clone := cw.Clone()
	cw.AppendBit(true)

	if expect, actual := "\"101\"", clone.String(); expect != actual {
		t.Errorf("clone changed with its original:\n\texpect: %s\n\tactual: %s", expect, actual)
	}
	if expect, actual := "\"1011\"", cw.String(); expect != actual {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expect, actual)
	}
}
