package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestTable(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	var buf bytes.Buffer
	table := NewTable(&buf, []string{"Name", "Type", "Required"}, &TableOptions{NoColor: true})

	table.AddRow("id", "integer", "yes")
	table.AddRow("email", "email", "yes")
	table.AddRow("bio", "text", "no")

	table.Render()

	output := buf.String()

	for _, exp := range []string{"Name", "Type", "Required", "id", "integer", "email", "bio"} {
		if !strings.Contains(output, exp) {
			t.Errorf("Table output missing %q", exp)
		}
	}

	if !strings.Contains(output, "─") {
		t.Errorf("Table output missing separator")
	}

	if table.Len() != 3 {
		t.Errorf("expected 3 rows, got %d", table.Len())
	}
}

func TestTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	table := NewTable(&buf, []string{}, &TableOptions{NoColor: true})

	table.Render()

	if output := buf.String(); output != "" {
		t.Errorf("Expected empty output for table with no headers, got: %q", output)
	}
}

func TestTableAlignment(t *testing.T) {
	var buf bytes.Buffer
	table := NewTable(&buf, []string{"Short", "VeryLongHeader"}, &TableOptions{NoColor: true})

	table.AddRow("a", "b")
	table.AddRow("longer", "c")

	table.Render()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("Expected 4 lines (header, separator, 2 rows), got %d", len(lines))
	}

	// The second column starts at the same offset on every line
	want := strings.Index(lines[0], "VeryLongHeader")
	if got := strings.Index(lines[2], "b"); got != want {
		t.Errorf("row 1 second column at %d, want %d", got, want)
	}
	if got := strings.Index(lines[3], "c"); got != want {
		t.Errorf("row 2 second column at %d, want %d", got, want)
	}
}

func TestRowTable(t *testing.T) {
	var buf bytes.Buffer
	rows := []map[string]any{
		{"name": "alice", "id": int64(1)},
		{"id": int64(2), "email": nil},
	}

	table := NewRowTable(&buf, rows, &TableOptions{NoColor: true})
	table.Render()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d: %q", len(lines), buf.String())
	}

	header := strings.Fields(lines[0])
	if strings.Join(header, ",") != "email,id,name" {
		t.Errorf("expected sorted columns, got %v", header)
	}

	if !strings.Contains(lines[3], Null) {
		t.Errorf("expected nil cell rendered as %s, got %q", Null, lines[3])
	}
	if !strings.Contains(lines[2], "alice") {
		t.Errorf("expected row data, got %q", lines[2])
	}
}

func TestFormatCell(t *testing.T) {
	tests := []struct {
		input    any
		expected string
	}{
		{nil, "NULL"},
		{"text", "text"},
		{int64(42), "42"},
		{3.5, "3.5"},
		{true, "true"},
		{[]int{1, 2}, "[1 2]"},
	}

	for _, tt := range tests {
		if got := FormatCell(tt.input); got != tt.expected {
			t.Errorf("FormatCell(%#v) = %q; want %q", tt.input, got, tt.expected)
		}
	}
}

func TestKeyValueTable(t *testing.T) {
	var buf bytes.Buffer
	kvTable := NewKeyValueTable(&buf, true)

	kvTable.AddRow("id", "1")
	kvTable.AddRow("name", "alice")

	kvTable.Render()

	output := buf.String()
	for _, exp := range []string{"id:", "1", "name:", "alice"} {
		if !strings.Contains(output, exp) {
			t.Errorf("KeyValueTable output missing: %q", exp)
		}
	}
}

func TestKeyValueTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	NewKeyValueTable(&buf, true).Render()

	if output := buf.String(); output != "" {
		t.Errorf("Expected empty output for empty KeyValueTable, got: %q", output)
	}
}

func TestHeader(t *testing.T) {
	var buf bytes.Buffer
	Header(&buf, "User", true)

	output := buf.String()
	if !strings.Contains(output, "User") {
		t.Errorf("Header output missing title")
	}
	if !strings.Contains(output, "────") {
		t.Errorf("Header output missing divider")
	}
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	PrintError(&buf, errors.New("DB ERROR: [HY000] boom"), true)

	if got := buf.String(); got != "Error: DB ERROR: [HY000] boom\n" {
		t.Errorf("unexpected output %q", got)
	}
}

func TestPrintSuccess(t *testing.T) {
	var buf bytes.Buffer
	PrintSuccess(&buf, "schema is valid", true)

	if !strings.Contains(buf.String(), "schema is valid") {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		input    string
		width    int
		expected string
	}{
		{"test", 10, "test      "},
		{"test", 4, "test"},
		{"test", 2, "test"},
		{"", 5, "     "},
		{"é", 3, "é  "},
	}

	for _, tt := range tests {
		result := padRight(tt.input, tt.width)
		if result != tt.expected {
			t.Errorf("padRight(%q, %d) = %q; want %q", tt.input, tt.width, result, tt.expected)
		}
	}
}
