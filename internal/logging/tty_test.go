package logging

import (
	"bytes"
	"os"
	"testing"
)

func TestSupportsColor(t *testing.T) {
	tests := []struct {
		name  string
		env   map[string]string
		isTTY bool
		want  bool
	}{
		{
			name:  "NO_COLOR prevents color",
			env:   map[string]string{"NO_COLOR": "1"},
			isTTY: true,
			want:  false,
		},
		{
			name:  "TERM=dumb prevents color",
			env:   map[string]string{"TERM": "dumb"},
			isTTY: true,
			want:  false,
		},
		{
			name:  "non-TTY prevents color",
			env:   map[string]string{},
			isTTY: false,
			want:  false,
		},
		{
			name:  "CLICOLOR_FORCE on non-TTY",
			env:   map[string]string{"CLICOLOR_FORCE": "1"},
			isTTY: false,
			want:  true,
		},
		{
			name:  "CLICOLOR_FORCE loses to NO_COLOR",
			env:   map[string]string{"CLICOLOR_FORCE": "1", "NO_COLOR": ""},
			isTTY: false,
			want:  false,
		},
		{
			name:  "TTY with color terminal",
			env:   map[string]string{"TERM": "xterm-256color"},
			isTTY: true,
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "")
			os.Unsetenv("NO_COLOR")
			t.Setenv("TERM", "")
			os.Unsetenv("TERM")
			t.Setenv("CLICOLOR_FORCE", "")

			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			var w bytes.Buffer
			if got := supportsColor(&w, tt.isTTY); got != tt.want {
				t.Errorf("supportsColor() = %v, want %v (env=%v, isTTY=%v)", got, tt.want, tt.env, tt.isTTY)
			}
		})
	}
}

func TestIsTTY_NonFile(t *testing.T) {
	var w bytes.Buffer
	if IsTTY(&w) {
		t.Error("IsTTY should return false for a bytes.Buffer")
	}
}
