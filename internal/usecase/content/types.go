package content

import (
	"fmt"
	"strings"

	"github.com/patimanas321/ForgeLens/internal/model"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 200

	captionPreviewLen = 120
)

func clampLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}

// composeCaption builds the final published caption: the caption body,
// a blank line, then the hashtags.
func composeCaption(caption string, hashtags []string) string {
	tags := make([]string, 0, len(hashtags))
	for _, h := range hashtags {
		h = strings.TrimSpace(strings.TrimPrefix(h, "#"))
		if h == "" {
			continue
		}
		tags = append(tags, "#"+h)
	}
	if len(tags) == 0 {
		return caption
	}
	if caption == "" {
		return strings.Join(tags, " ")
	}
	return caption + "\n\n" + strings.Join(tags, " ")
}

func captionPreview(caption string) string {
	if len(caption) <= captionPreviewLen {
		return caption
	}
	return caption[:captionPreviewLen] + "…"
}

// accountContext condenses the target account persona for the LLM reviewer.
func accountContext(c *model.Content) string {
	var b strings.Builder
	if c.TargetAccountName != "" {
		fmt.Fprintf(&b, "Account: %s. ", c.TargetAccountName)
	}
	if c.Topic != "" {
		fmt.Fprintf(&b, "Topic: %s. ", c.Topic)
	}
	fmt.Fprintf(&b, "Post type: %s.", c.PostType)
	return b.String()
}
