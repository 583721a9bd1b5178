package internal

import (
	"errors"
	"strings"
	"testing"
)

func TestErrorMessagesAndUnwrap(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		name string
		err  error
		want []string
	}{
		{
			name: "input error",
			err:  &InputError{Path: "export.zip", Op: "locate", Err: cause},
			want: []string{"input error", "locate", "export.zip", "boom"},
		},
		{
			name: "parse error",
			err:  &ParseError{Source: "export.xml", Err: cause},
			want: []string{"parse error", "export.xml", "boom"},
		},
		{
			name: "export error",
			err:  &ExportError{Format: "csv", Path: "out.csv", Err: cause},
			want: []string{"export error", "csv", "out.csv", "boom"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, want := range tt.want {
				if !strings.Contains(msg, want) {
					t.Errorf("message %q missing %q", msg, want)
				}
			}
			if !errors.Is(tt.err, cause) {
				t.Error("wrapped cause not reachable via errors.Is")
			}
		})
	}
}
