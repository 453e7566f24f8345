package pathutil

import (
	"path/filepath"
	"testing"
)

func TestResolve(t *testing.T) {
	root := "/workspace"

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "simple relative", input: "a/b.go", want: filepath.Join(root, "a/b.go")},
		{name: "dot relative", input: "./a.go", want: filepath.Join(root, "a.go")},
		{name: "absolute inside root", input: filepath.Join(root, "x.go"), want: filepath.Join(root, "x.go")},
		{name: "escapes via dotdot", input: "../outside.go", wantErr: true},
		{name: "escapes via nested dotdot", input: "a/../../outside.go", wantErr: true},
		{name: "null byte rejected", input: "a\x00.go", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(root, tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Resolve(%q) error = nil, want non-nil", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestLooksBinary(t *testing.T) {
	if LooksBinary([]byte("plain ascii text\nwith newlines\n")) {
		t.Error("LooksBinary() = true for plain text")
	}
	if !LooksBinary([]byte("abc\x00def")) {
		t.Error("LooksBinary() = false for data containing a NUL byte")
	}
}
