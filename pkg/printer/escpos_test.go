package printer

import (
	"bytes"
	"testing"
)

func TestNewDocument_InitializesPrinter(t *testing.T) {
	d := NewDocument(32)
	if !bytes.HasPrefix(d.Bytes(), []byte{ESC, '@'}) {
		t.Fatal("document must start with the initialize command")
	}
}

func TestKeyValue_PadsToWidth(t *testing.T) {
	d := NewDocument(20)
	d.buf.Reset()
	d.KeyValue("Total", "12.50")

	line := d.Bytes()
	if line[len(line)-1] != LF {
		t.Fatal("line must end with a line feed")
	}
	if got := len(line) - 1; got != 20 {
		t.Fatalf("expected 20-character line, got %d", got)
	}
	if !bytes.HasPrefix(line, []byte("Total")) || !bytes.Contains(line, []byte("12.50")) {
		t.Fatalf("unexpected line %q", line)
	}
}

func TestKeyValue_OverflowKeepsOneSpace(t *testing.T) {
	d := NewDocument(10)
	d.buf.Reset()
	d.KeyValue("A very long label", "99.99")

	line := string(d.Bytes())
	if line != "A very long label 99.99\n" {
		t.Fatalf("expected minimum single-space separator, got %q", line)
	}
}

func TestItemLine_Format(t *testing.T) {
	d := NewDocument(30)
	d.buf.Reset()
	d.ItemLine(2, "Burger", "20.00")

	line := string(d.Bytes())
	if !bytes.HasPrefix([]byte(line), []byte("2x Burger")) {
		t.Fatalf("expected qty prefix, got %q", line)
	}
	if len(line)-1 != 30 {
		t.Fatalf("expected 30-character line, got %d", len(line)-1)
	}
}

func TestItemLine_TruncatesLongNames(t *testing.T) {
	d := NewDocument(20)
	d.buf.Reset()
	d.ItemLine(1, "Spaghetti alla Carbonara", "12.50")

	line := string(d.Bytes())
	if len(line)-1 != 20 {
		t.Fatalf("expected 20-character line, got %d (%q)", len(line)-1, line)
	}
	if line != "1x Spaghetti . 12.50\n" {
		t.Fatalf("expected truncated name with amount intact, got %q", line)
	}
}

func TestSeparatorAndCut(t *testing.T) {
	d := NewDocument(8)
	d.buf.Reset()
	d.Separator('-').PartialCut()

	out := d.Bytes()
	if !bytes.HasPrefix(out, []byte("--------\n")) {
		t.Fatalf("expected full-width separator, got %q", out)
	}
	if !bytes.HasSuffix(out, []byte{GS, 'V', 0x01}) {
		t.Fatal("expected partial cut trailer")
	}
}

func TestNewFromConfig(t *testing.T) {
	p, err := NewFromConfig(false, "")
	if err != nil {
		t.Fatalf("disabled printer must not error: %v", err)
	}
	if p.IsConnected() {
		t.Fatal("null printer must report disconnected")
	}

	if _, err := NewFromConfig(true, ""); err == nil {
		t.Fatal("enabled printer without an address must error")
	}
}
