package events

import (
	"strings"
	"testing"

	"github.com/kamilmatejuk/ascfmt/internal/edit"
)

func TestScan(t *testing.T) {
	text := `[0.5, "o", "a\"b"]` + "\n" + `[12,"i",'x']`
	descs := Scan(text, 0)
	if len(descs) != 2 {
		t.Fatalf("expected 2 events, got %d", len(descs))
	}

	first := descs[0]
	if first.Open != 0 || first.Close != 17 {
		t.Errorf("first brackets = %d,%d, want 0,17", first.Open, first.Close)
	}
	if first.Number.Text != "0.5" || first.Number.Start != 1 {
		t.Errorf("first number = %+v", first.Number)
	}
	if first.Type.Text != `"o"` || first.Type.Start != 6 {
		t.Errorf("first type = %+v", first.Type)
	}
	if first.Payload.Text != `"a\"b"` || first.Payload.Start != 11 || first.Payload.End != 17 {
		t.Errorf("first payload = %+v", first.Payload)
	}

	second := descs[1]
	if second.Open != 19 {
		t.Errorf("second open = %d, want 19", second.Open)
	}
	if second.Number.Text != "12" || second.Type.Text != `"i"` || second.Payload.Text != `'x'` {
		t.Errorf("second fields = %q %q %q", second.Number.Text, second.Type.Text, second.Payload.Text)
	}
}

func TestScan_BracketsInsidePayloadAreNotEvents(t *testing.T) {
	descs := Scan(`[1.0, "o", "[not an event]"]`, 0)
	if len(descs) != 1 {
		t.Fatalf("expected 1 event, got %d", len(descs))
	}
	if descs[0].Close != 27 {
		t.Errorf("close = %d, want 27", descs[0].Close)
	}
}

func TestScan_StartsAtBodyStart(t *testing.T) {
	text := `{"a": [1, 2]}` + "\n" + `[3, "o", "x"]`
	if descs := Scan(text, 14); len(descs) != 1 || descs[0].Number.Text != "3" {
		t.Errorf("expected only the event after the header, got %+v", descs)
	}
}

func TestScan_Sentinels(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		wantNumber  Token
		wantType    Token
		wantPayload Token
		wantClose   int
	}{
		{
			name:        "missing timestamp",
			text:        `["o", "x"]`,
			wantNumber:  Token{Text: SentinelNumber, Start: 1, End: 1, Synthetic: true},
			wantType:    Token{Text: `"o"`, Start: 1, End: 4},
			wantPayload: Token{Text: `"x"`, Start: 6, End: 9},
			wantClose:   9,
		},
		{
			name:        "only a timestamp",
			text:        `[1.5]`,
			wantNumber:  Token{Text: "1.5", Start: 1, End: 4},
			wantType:    Token{Text: SentinelType, Start: 4, End: 4, Synthetic: true},
			wantPayload: Token{Text: SentinelPayload, Start: 4, End: 4, Synthetic: true},
			wantClose:   4,
		},
		{
			name:        "unclosed event",
			text:        `[1, "o", "x"`,
			wantNumber:  Token{Text: "1", Start: 1, End: 2},
			wantType:    Token{Text: `"o"`, Start: 4, End: 7},
			wantPayload: Token{Text: `"x"`, Start: 9, End: 12},
			wantClose:   -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			descs := Scan(tt.text, 0)
			if len(descs) != 1 {
				t.Fatalf("expected 1 event, got %d", len(descs))
			}
			d := descs[0]
			if d.Number != tt.wantNumber {
				t.Errorf("number = %+v, want %+v", d.Number, tt.wantNumber)
			}
			if d.Type != tt.wantType {
				t.Errorf("type = %+v, want %+v", d.Type, tt.wantType)
			}
			if d.Payload != tt.wantPayload {
				t.Errorf("payload = %+v, want %+v", d.Payload, tt.wantPayload)
			}
			if d.Close != tt.wantClose {
				t.Errorf("close = %d, want %d", d.Close, tt.wantClose)
			}
		})
	}
}

func TestScan_BrokenEventDoesNotSwallowNext(t *testing.T) {
	descs := Scan("[1, \"o\"\n[2, \"o\", \"x\"]", 0)
	if len(descs) != 2 {
		t.Fatalf("expected 2 events, got %d", len(descs))
	}
	if !descs[0].Payload.Synthetic || descs[0].Close != -1 {
		t.Errorf("first event should have a synthetic payload and no close: %+v", descs[0])
	}
	if descs[1].Number.Text != "2" {
		t.Errorf("second event number = %q, want 2", descs[1].Number.Text)
	}
}

func TestComputeWidths(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Widths
	}{
		{name: "no events", text: ``, want: Widths{}},
		{name: "mixed integer widths", text: `[0,"o","a"]` + "\n" + `[15.5,"o","bb"]`, want: Widths{IntegerDigits: 2, TypeWidth: 3}},
		{name: "long type", text: `[1.0, "marker", "x"]`, want: Widths{IntegerDigits: 1, TypeWidth: 8}},
		{name: "integer without decimals", text: `[123, "o", "x"]` + "\n" + `[4.5, "o", "y"]`, want: Widths{IntegerDigits: 3, TypeWidth: 3}},
		{name: "wide runes", text: `[1.0, "日本", "x"]`, want: Widths{IntegerDigits: 1, TypeWidth: 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeWidths(Scan(tt.text, 0)); got != tt.want {
				t.Errorf("ComputeWidths() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func format(t *testing.T, text string, floor int) string {
	t.Helper()
	descs := Scan(text, floor)
	ops := PlanEdits(text, descs, ComputeWidths(descs), floor)
	if err := edit.Validate(ops); err != nil {
		t.Fatalf("planned edits overlap: %v", err)
	}
	out, err := edit.Apply(text, ops)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	return out
}

func TestPlanEdits(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "single event",
			input: `[0,"o","hi"]`,
			want:  `[0.000000, "o", "hi"]`,
		},
		{
			name:  "integer parts right-align",
			input: "[0,\"o\",\"a\"]\n[15.5,\"o\",\"bb\"]",
			want:  "[ 0.000000, \"o\", \"a\"]\n[15.500000, \"o\", \"bb\"]",
		},
		{
			name:  "type column pads before separator",
			input: "[1.0, \"o\", \"a\"]\n[2.0, \"marker\", \"chapter\"]",
			want:  "[1.000000, \"o\"     , \"a\"]\n[2.000000, \"marker\", \"chapter\"]",
		},
		{
			name:  "separators normalized",
			input: `[1.25 ,  "o" ,"x"]`,
			want:  `[1.250000, "o", "x"]`,
		},
		{
			name:  "excess padding trimmed",
			input: `[    1.0, "o", "x"]`,
			want:  `[1.000000, "o", "x"]`,
		},
		{
			name:  "trailing junk removed",
			input: `[1.0, "o", "x"   ]`,
			want:  `[1.000000, "o", "x"]`,
		},
		{
			name:  "indentation removed",
			input: "   [1.0, \"o\", \"x\"]\n\t[2.0, \"o\", \"y\"]",
			want:  "[1.000000, \"o\", \"x\"]\n[2.000000, \"o\", \"y\"]",
		},
		{
			name:  "events on one line are split",
			input: `[1.0, "o", "x"], [2.0, "o", "y"] [3.0, "o", "z"]`,
			want:  "[1.000000, \"o\", \"x\"]\n[2.000000, \"o\", \"y\"]\n[3.000000, \"o\", \"z\"]",
		},
		{
			name:  "adjacent events are split",
			input: `[1,"o","a"][2,"o","b"]`,
			want:  "[1.000000, \"o\", \"a\"]\n[2.000000, \"o\", \"b\"]",
		},
		{
			name:  "adjacent unclosed event is split",
			input: `[1,"o","a"[2,"o","b"]`,
			want:  "[1.000000, \"o\", \"a\"\n[2.000000, \"o\", \"b\"]",
		},
		{
			name:  "long fraction kept",
			input: `[1.1234567, "o", "x"]`,
			want:  `[1.1234567, "o", "x"]`,
		},
		{
			name:  "escaped quotes in payload",
			input: `[1.0,"o","say \"hi\", ok"]`,
			want:  `[1.000000, "o", "say \"hi\", ok"]`,
		},
		{
			name:  "missing fields filled with sentinels",
			input: `[1.5]`,
			want:  `[1.500000, "o", ""]`,
		},
		{
			name:  "missing timestamp",
			input: `["i", "x"]`,
			want:  `[0.000000, "i", "x"]`,
		},
		{
			name:  "unclosed event followed by another on the same line",
			input: `[1, "o", "x" [2, "o", "y"]`,
			want:  "[1.000000, \"o\", \"x\"\n[2.000000, \"o\", \"y\"]",
		},
		{
			name:  "crlf line endings kept",
			input: "[1,\"o\",\"x\"]\r\n[2,\"o\",\"y\"]\r\n",
			want:  "[1.000000, \"o\", \"x\"]\r\n[2.000000, \"o\", \"y\"]\r\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := format(t, tt.input, 0); got != tt.want {
				t.Errorf("formatted =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestPlanEdits_RespectsFloor(t *testing.T) {
	header := `{"version": 2}`
	text := header + ` [1, "o", "x"]`
	floor := len(header) + 1

	got := format(t, text, floor)
	want := header + ` [1.000000, "o", "x"]`
	if got != want {
		t.Errorf("formatted = %q, want %q", got, want)
	}
}

func TestPlanEdits_FormattedTextIsStable(t *testing.T) {
	input := strings.Join([]string{
		`  [0.1,"o","$ "]`,
		`[10.25, "i" , "ls\r"]`,
		`[100, "r", "80x24"] [101.5, "marker", "done"]`,
	}, "\n")

	once := format(t, input, 0)
	descs := Scan(once, 0)
	if ops := PlanEdits(once, descs, ComputeWidths(descs), 0); len(ops) != 0 {
		t.Errorf("second pass planned edits: %v\ntext:\n%s", ops, once)
	}
}
