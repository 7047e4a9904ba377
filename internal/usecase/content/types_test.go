package content

import (
	"strings"
	"testing"
)

func TestComposeCaption(t *testing.T) {
	cases := []struct {
		name     string
		caption  string
		hashtags []string
		want     string
	}{
		{"both", "hello", []string{"one", "two"}, "hello\n\n#one #two"},
		{"prefixed tags", "hello", []string{"#one"}, "hello\n\n#one"},
		{"no tags", "hello", nil, "hello"},
		{"empty tags skipped", "hello", []string{"", " "}, "hello"},
		{"tags only", "", []string{"one"}, "#one"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := composeCaption(tc.caption, tc.hashtags); got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestCaptionPreview(t *testing.T) {
	long := strings.Repeat("a", 300)
	if got := captionPreview(long); len(got) > captionPreviewLen+len("…") {
		t.Errorf("expected truncation, got %d bytes", len(got))
	}
	if got := captionPreview("short"); got != "short" {
		t.Errorf("expected passthrough, got %q", got)
	}
}
