package langdetect

import "testing"

func TestHasAllowedExtension(t *testing.T) {
	tests := []struct {
		path       string
		extensions []string
		want       bool
	}{
		{"main.go", nil, true},
		{"main.c", nil, true},
		{"component.tsx", nil, true},
		{"README.md", nil, false},
		{"Makefile", nil, false},
		{"MAIN.GO", nil, true}, // extension match is case-insensitive
		{"main.go", []string{".c"}, false},
		{"main.c", []string{".c"}, true},
	}

	for _, tt := range tests {
		if got := HasAllowedExtension(tt.path, tt.extensions); got != tt.want {
			t.Errorf("HasAllowedExtension(%q, %v) = %v, want %v",
				tt.path, tt.extensions, got, tt.want)
		}
	}
}

func TestIsBinary(t *testing.T) {
	if IsBinary([]byte("plain text\n")) {
		t.Error("text misdetected as binary")
	}
	if !IsBinary([]byte{0x00, 0x01, 0x02, 0xff}) {
		t.Error("null bytes should be detected as binary")
	}
}

func TestDetect(t *testing.T) {
	if got := Detect("main.go", []byte("package main\n")); got != "go" {
		t.Errorf("Detect go file = %q", got)
	}
	if got := Detect("data.bin", []byte{0x00, 0x01}); got != LangUnknown && got == "" {
		t.Errorf("Detect should never return empty, got %q", got)
	}
}

func TestShouldLint(t *testing.T) {
	if !ShouldLint("main.c", []byte("int main() {}\n"), nil) {
		t.Error("plain C source should be lintable")
	}
	if ShouldLint("notes.txt", []byte("text"), nil) {
		t.Error("disallowed extension should not be lintable")
	}
	if ShouldLint("blob.c", []byte{0x00, 0x01, 0x02}, nil) {
		t.Error("binary content should not be lintable")
	}
	if ShouldLint("vendor/lib/util.c", []byte("int x;\n"), nil) {
		t.Error("vendored paths should not be lintable")
	}
}
