package extract

import (
	"testing"
	"time"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
		ok   bool
	}{
		{name: "plain", in: "95000.00", want: 95000, ok: true},
		{name: "thousands separators", in: "1,387,101.46", want: 1387101.46, ok: true},
		{name: "integer", in: "14", want: 14, ok: true},
		{name: "surrounding space", in: " 85.50 ", want: 85.5, ok: true},
		{name: "empty", in: "", ok: false},
		{name: "not a number", in: "N/A", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseAmount(tt.in)
			if tt.ok != (got != nil) {
				t.Fatalf("parseAmount(%q) = %v, want ok=%v", tt.in, got, tt.ok)
			}
			if got != nil && *got != tt.want {
				t.Errorf("parseAmount(%q) = %v, want %v", tt.in, *got, tt.want)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string // YYYY-MM-DD, "" for nil
	}{
		{name: "long form with comma", in: "March 4, 2024", want: "2024-03-04"},
		{name: "uppercase abbreviation", in: "MAR 04 2024", want: "2024-03-04"},
		{name: "slash date", in: "11/15/2025", want: "2025-11-15"},
		{name: "iso date", in: "2025-11-15", want: "2025-11-15"},
		{name: "extra whitespace", in: "  June   3,  2025 ", want: "2025-06-03"},
		{name: "garbage", in: "sometime soon", want: ""},
		{name: "empty", in: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseDate(tt.in)
			if tt.want == "" {
				if got != nil {
					t.Fatalf("parseDate(%q) = %v, want nil", tt.in, got)
				}
				return
			}
			if got == nil {
				t.Fatalf("parseDate(%q) = nil, want %s", tt.in, tt.want)
			}
			if s := got.Format("2006-01-02"); s != tt.want {
				t.Errorf("parseDate(%q) = %s, want %s", tt.in, s, tt.want)
			}
		})
	}
}

func TestParseDateTime(t *testing.T) {
	got := parseDateTime("June 3, 2025", "2:00 pm")
	if got == nil {
		t.Fatal("parseDateTime returned nil")
	}
	want := time.Date(2025, time.June, 3, 14, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("parseDateTime = %v, want %v", got, want)
	}

	if got := parseDateTime("June 3, 2025", "2:00pm"); got == nil || got.Hour() != 14 {
		t.Errorf("parseDateTime with compact meridiem = %v, want 14:00", got)
	}
	if got := parseDateTime("", "2:00 pm"); got != nil {
		t.Errorf("parseDateTime with empty date = %v, want nil", got)
	}
}

func TestExtractContractNumber(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		filename string
		want     string
	}{
		{
			name: "labeled in text",
			text: "Contract No.: DA12345",
			want: "DA12345",
		},
		{
			name: "bare identifier in text",
			text: "resurfacing under DA00234 in Brunswick County",
			want: "DA00234",
		},
		{
			name: "lowercase is uppercased",
			text: "contract no. da00234",
			want: "DA00234",
		},
		{
			name: "eight digit fallback",
			text: "WBS 46789301 covers this work",
			want: "46789301",
		},
		{
			name:     "filename fallback",
			text:     "no identifiers here",
			filename: "da55555_bid_tab.pdf",
			want:     "DA55555",
		},
		{
			name:     "text wins over filename",
			text:     "Contract No.: DA11111",
			filename: "da22222.pdf",
			want:     "DA11111",
		},
		{
			name: "absent",
			text: "no identifiers here",
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractContractNumber(tt.text, tt.filename); got != tt.want {
				t.Errorf("extractContractNumber = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCleanDescription(t *testing.T) {
	in := "GRADING, DRAINAGE\n   AND PAVING"
	if got := cleanDescription(in); got != "GRADING, DRAINAGE AND PAVING" {
		t.Errorf("cleanDescription = %q", got)
	}

	long := make([]byte, 600)
	for i := range long {
		long[i] = 'A'
	}
	if got := cleanDescription(string(long)); len(got) != 500 {
		t.Errorf("cleanDescription length = %d, want 500", len(got))
	}
}
