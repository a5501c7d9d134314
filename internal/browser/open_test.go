package browser

import (
	"slices"
	"testing"
)

func TestCommand(t *testing.T) {
	tests := []struct {
		goos     string
		wantName string
		wantArgs []string
	}{
		{"darwin", "open", []string{"https://example.com"}},
		{"linux", "xdg-open", []string{"https://example.com"}},
		{"windows", "rundll32", []string{"url.dll,FileProtocolHandler", "https://example.com"}},
	}
	for _, tt := range tests {
		name, args, err := command(tt.goos, "https://example.com")
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.goos, err)
		}
		if name != tt.wantName || !slices.Equal(args, tt.wantArgs) {
			t.Errorf("%s: got %s %v, want %s %v", tt.goos, name, args, tt.wantName, tt.wantArgs)
		}
	}

	if _, _, err := command("plan9", "https://example.com"); err == nil {
		t.Error("expected an error for an unsupported platform")
	}
}

func TestOpenRejectsNonWebLinks(t *testing.T) {
	for _, link := range []string{"file:///etc/passwd", "javascript:alert(1)", "://bad"} {
		if err := Open(link); err == nil {
			t.Errorf("Open(%q) should fail", link)
		}
	}
}
