package csv

import (
	"reflect"
	"strings"
	"testing"
)

func TestDetectDelimiter(t *testing.T) {
	tests := []struct {
		name string
		text string
		want byte
	}{
		{"plain commas", "a,b,c\n1,2,3", ','},
		{"plain semicolons", "a;b;c\n1;2;3", ';'},
		{"semicolon majority", "a;b;c,d\n", ';'},
		{"comma majority", "a,b;c,d,e\n", ','},
		{"tie goes to comma", "a;b,c\n", ','},
		{"no delimiter at all", "header\ndata", ','},
		{"empty input", "", ','},
		{"only first line counts", "a,b\nx;y;z;w;v", ','},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectDelimiter(tt.text); got != tt.want {
				t.Errorf("DetectDelimiter(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseLine(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		delim byte
		want  []string
	}{
		{"simple", "a,b,c", ',', []string{"a", "b", "c"}},
		{"quoted delimiter", `a,"b,c",d`, ',', []string{"a", "b,c", "d"}},
		{"escaped quote", `"say ""hi""",x`, ',', []string{`say "hi"`, "x"}},
		{"trims fields", " a , b ", ',', []string{"a", "b"}},
		{"trailing delimiter", "a,b,", ',', []string{"a", "b", ""}},
		{"semicolon delimiter", "a;b;c", ';', []string{"a", "b", "c"}},
		{"empty line", "", ',', []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseLine(tt.line, tt.delim); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseLine(%q) = %#v, want %#v", tt.line, got, tt.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		delim byte
		want  [][]string
	}{
		{
			name:  "quotes and escapes",
			text:  "A,\"B,C\",\"D\"\"E\"\nF,G,H",
			delim: ',',
			want:  [][]string{{"A", "B,C", `D"E`}, {"F", "G", "H"}},
		},
		{
			name:  "embedded newline inside quotes",
			text:  "a,\"line1\nline2\",b\nc,d,e",
			delim: ',',
			want:  [][]string{{"a", "line1\nline2", "b"}, {"c", "d", "e"}},
		},
		{
			name:  "crlf line endings",
			text:  "a,b\r\nc,d\r\n",
			delim: ',',
			want:  [][]string{{"a", "b"}, {"c", "d"}},
		},
		{
			name:  "blank lines skipped",
			text:  "a,b\n\n\nc,d",
			delim: ',',
			want:  [][]string{{"a", "b"}, {"c", "d"}},
		},
		{
			name:  "pending final row flushed",
			text:  "a,b\nc,d",
			delim: ',',
			want:  [][]string{{"a", "b"}, {"c", "d"}},
		},
		{
			name:  "trailing delimiter keeps empty field",
			text:  "a,b,\n",
			delim: ',',
			want:  [][]string{{"a", "b", ""}},
		},
		{
			name:  "semicolon delimiter with comma content",
			text:  "a;1,5;b\n",
			delim: ';',
			want:  [][]string{{"a", "1,5", "b"}},
		},
		{
			name:  "fields are trimmed",
			text:  " a , b \n",
			delim: ',',
			want:  [][]string{{"a", "b"}},
		},
		{
			name:  "empty input",
			text:  "",
			delim: ',',
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Parse(tt.text, tt.delim); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %#v, want %#v", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseIsRestartable(t *testing.T) {
	text := "a,\"b\nc\",d\ne,f,g"
	first := Parse(text, ',')
	second := Parse(text, ',')

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated Parse calls disagree: %#v vs %#v", first, second)
	}
}

func TestNormalizeInput(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"strips BOM", "\uFEFFa,b", "a,b"},
		{"trims whitespace", "  a,b\n\n", "a,b"},
		{"BOM then whitespace", "\uFEFF \na,b ", "a,b"},
		{"clean input untouched", "a,b", "a,b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeInput(tt.in); got != tt.want {
				t.Errorf("NormalizeInput(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTemplateRoundTrip(t *testing.T) {
	data := string(Template())

	if DetectDelimiter(data) != ',' {
		t.Fatal("template must be comma-delimited")
	}

	rows := Parse(data, ',')
	if len(rows) < 2 {
		t.Fatalf("template has %d rows, want header plus samples", len(rows))
	}

	if !reflect.DeepEqual(rows[0], TemplateHeader) {
		t.Errorf("template header = %#v, want %#v", rows[0], TemplateHeader)
	}

	for i, row := range rows[1:] {
		if len(row) != len(TemplateHeader) {
			t.Errorf("sample row %d has %d fields, want %d", i, len(row), len(TemplateHeader))
		}
	}
}

func BenchmarkParse(b *testing.B) {
	var sb strings.Builder
	sb.WriteString("Invoice ID,Recipient Name,Phone Number,Full Address,COD Amount,Weight (kg),Note\n")
	for i := 0; i < 1000; i++ {
		sb.WriteString(`INV-1001,Rahim Uddin,01712345678,"House 12, Road 5, Dhanmondi",1250,1.5,"Call first"` + "\n")
	}
	text := sb.String()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		rows := Parse(text, ',')
		if len(rows) != 1001 {
			b.Fatalf("got %d rows", len(rows))
		}
	}
}
