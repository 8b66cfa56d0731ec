package edit

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestApply(t *testing.T) {
	tests := []struct {
		name string
		text string
		ops  []Operation
		want string
	}{
		{
			name: "no ops",
			text: "abc",
			want: "abc",
		},
		{
			name: "insert and delete",
			text: "[1,\"o\"]",
			ops:  []Operation{NewInsert(2, ".000000"), NewDelete(2, 3), NewInsert(3, ", ")},
			want: "[1.000000, \"o\"]",
		},
		{
			name: "order of list does not matter across offsets",
			text: "hello world",
			ops:  []Operation{NewDelete(5, 6), NewInsert(11, "!"), NewInsert(0, ">")},
			want: ">helloworld!",
		},
		{
			name: "insert at start of deletion goes first",
			text: "  x",
			ops:  []Operation{NewDelete(0, 2), NewInsert(0, "head\n")},
			want: "head\nx",
		},
		{
			name: "inserts at same offset keep list order",
			text: "x",
			ops:  []Operation{NewInsert(1, "a"), NewInsert(1, "b")},
			want: "xab",
		},
		{
			name: "empty deletion is ignored",
			text: "abc",
			ops:  []Operation{NewDelete(1, 3), NewDelete(1, 1)},
			want: "a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Apply(tt.text, tt.ops)
			if err != nil {
				t.Fatalf("Apply() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Apply() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		ops     []Operation
		wantErr error
	}{
		{
			name: "adjacent deletions",
			ops:  []Operation{NewDelete(0, 2), NewDelete(2, 4)},
		},
		{
			name: "insert at deletion edges",
			ops:  []Operation{NewDelete(2, 4), NewInsert(2, "a"), NewInsert(4, "b")},
		},
		{
			name:    "overlapping deletions",
			ops:     []Operation{NewDelete(0, 3), NewDelete(2, 4)},
			wantErr: ErrOverlap,
		},
		{
			name:    "insert inside deletion",
			ops:     []Operation{NewInsert(3, "x"), NewDelete(1, 5)},
			wantErr: ErrOverlap,
		},
		{
			name:    "nested deletion after a short one",
			ops:     []Operation{NewDelete(0, 10), NewDelete(1, 2), NewDelete(5, 6)},
			wantErr: ErrOverlap,
		},
		{
			name:    "negative start",
			ops:     []Operation{NewDelete(-1, 2)},
			wantErr: ErrOutOfRange,
		},
		{
			name:    "inverted range",
			ops:     []Operation{{Kind: Delete, Start: 4, End: 2}},
			wantErr: ErrOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.ops)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestApply_OutOfRange(t *testing.T) {
	_, err := Apply("abc", []Operation{NewDelete(1, 10)})
	if !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got %v", err)
	}
}

func TestChanged(t *testing.T) {
	if Changed(nil) {
		t.Error("nil ops should not count as a change")
	}
	if Changed([]Operation{NewInsert(0, ""), NewDelete(3, 3)}) {
		t.Error("empty ops should not count as a change")
	}
	if !Changed([]Operation{NewDelete(0, 1)}) {
		t.Error("a deletion should count as a change")
	}
}

func TestOperation_JSON(t *testing.T) {
	data, err := json.Marshal(NewInsert(3, ", "))
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	want := `{"kind":"insert","start":3,"end":3,"text":", "}`
	if string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}

	var op Operation
	if err := json.Unmarshal([]byte(`{"kind":"delete","start":1,"end":4}`), &op); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if op != NewDelete(1, 4) {
		t.Errorf("Unmarshal = %+v, want delete 1-4", op)
	}

	if err := json.Unmarshal([]byte(`{"kind":"replace"}`), &op); err == nil {
		t.Error("expected error for unknown kind")
	}
}
