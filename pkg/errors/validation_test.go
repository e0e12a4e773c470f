package errors

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidateSourcePath(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "plots.py")
	notebook := filepath.Join(dir, "plots.txt")
	for _, p := range []string{script, notebook} {
		if err := os.WriteFile(p, []byte("import matplotlib\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	tests := []struct {
		name     string
		input    string
		wantCode Code
		wantWarn bool
	}{
		{"python script", script, "", false},
		{"wrong extension", notebook, "", true},
		{"empty", "", ErrCodeInvalidPath, false},
		{"control char", "foo\x01.py", ErrCodeInvalidPath, false},
		{"missing", filepath.Join(dir, "missing.py"), ErrCodeFileNotFound, false},
		{"directory", dir, ErrCodeInvalidPath, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warn, err := ValidateSourcePath(tt.input)
			if tt.wantCode == "" && err != nil {
				t.Fatalf("ValidateSourcePath(%q) unexpected error: %v", tt.input, err)
			}
			if tt.wantCode != "" && !Is(err, tt.wantCode) {
				t.Fatalf("ValidateSourcePath(%q) error = %v, want code %s", tt.input, err, tt.wantCode)
			}
			if (warn != "") != tt.wantWarn {
				t.Errorf("ValidateSourcePath(%q) warning = %q, wantWarn %v", tt.input, warn, tt.wantWarn)
			}
		})
	}
}

func TestValidateFormat(t *testing.T) {
	supported := []string{"png", "pdf", "svg"}
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"png", false},
		{"PDF", false},
		{".svg", false},
		{"", true},
		{"gif", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := ValidateFormat(tt.input, supported)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidFormat) {
				t.Errorf("ValidateFormat(%q) wrong code: %v", tt.input, err)
			}
		})
	}
}

func TestErrorCodesAreUnique(t *testing.T) {
	codes := []Code{
		ErrCodeInvalidInput,
		ErrCodeInvalidFormat,
		ErrCodeInvalidPath,
		ErrCodeNotFound,
		ErrCodeJournalNotFound,
		ErrCodeFileNotFound,
		ErrCodeInternal,
		ErrCodeUnsupported,
	}

	seen := make(map[Code]bool)
	for _, code := range codes {
		if seen[code] {
			t.Errorf("Duplicate error code: %s", code)
		}
		seen[code] = true
	}
}
