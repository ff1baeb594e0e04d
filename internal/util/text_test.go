package util

import "testing"

func TestSnippet(t *testing.T) {
	tests := []struct {
		name  string
		input string
		max   int
		want  string
	}{
		{
			name:  "shorter than max",
			input: "hello",
			max:   10,
			want:  "hello",
		},
		{
			name:  "exactly max",
			input: "hello",
			max:   5,
			want:  "hello",
		},
		{
			name:  "longer than max",
			input: "hello world",
			max:   5,
			want:  "hello...",
		},
		{
			name:  "multibyte runes",
			input: "ééééé",
			max:   3,
			want:  "ééé...",
		},
		{
			name:  "zero max",
			input: "hello",
			max:   0,
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Snippet(tt.input, tt.max)
			if got != tt.want {
				t.Fatalf("unexpected snippet: got %q, want %q", got, tt.want)
			}
		})
	}
}
