package parser

import (
	"bytes"
	"io"
	"testing"
)

func TestNewUTF8Reader_PassThrough(t *testing.T) {
	t.Parallel()
	input := []byte(`{"name":"Pokémon ☺"}`)

	for _, contentType := range []string{"", "application/json", "application/json; charset=utf-8", "not a media type;;"} {
		reader, err := NewUTF8Reader(bytes.NewReader(input), contentType)
		if err != nil {
			t.Fatalf("NewUTF8Reader(%q) failed: %v", contentType, err)
		}
		output, err := io.ReadAll(reader)
		if err != nil {
			t.Fatalf("Failed to read: %v", err)
		}
		if !bytes.Equal(output, input) {
			t.Errorf("Content type %q: expected content to pass through unchanged, got %q", contentType, output)
		}
	}
}

func TestNewUTF8Reader_ISO88591ToUTF8(t *testing.T) {
	t.Parallel()
	// é = 0xE9 in ISO-8859-1
	input := []byte(`{"name":"Caf` + string([]byte{0xE9}) + `"}`)

	reader, err := NewUTF8Reader(bytes.NewReader(input), "application/json; charset=ISO-8859-1")
	if err != nil {
		t.Fatalf("NewUTF8Reader failed: %v", err)
	}

	output, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("Failed to read: %v", err)
	}
	if string(output) != `{"name":"Café"}` {
		t.Errorf("Expected transcoded UTF-8 output, got %q", output)
	}
}

func TestNewUTF8Reader_Windows1252ToUTF8(t *testing.T) {
	t.Parallel()
	// ™ = 0x99 in Windows-1252
	input := []byte(`{"name":"Test` + string([]byte{0x99}) + `"}`)

	reader, err := NewUTF8Reader(bytes.NewReader(input), "application/json; charset=windows-1252")
	if err != nil {
		t.Fatalf("NewUTF8Reader failed: %v", err)
	}

	output, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("Failed to read: %v", err)
	}
	if string(output) != `{"name":"Test™"}` {
		t.Errorf("Expected transcoded UTF-8 output, got %q", output)
	}
}

func TestNewUTF8Reader_UnknownCharset(t *testing.T) {
	t.Parallel()
	_, err := NewUTF8Reader(bytes.NewReader([]byte("{}")), "application/json; charset=klingon")
	if err == nil {
		t.Fatal("Expected error for an unknown charset label")
	}
}
