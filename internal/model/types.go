package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// Strings is a JSON-encoded list column (hashtags, carousel URLs).
type Strings []string

func (s Strings) Value() (driver.Value, error) {
	if s == nil {
		s = Strings{}
	}
	b, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal Strings: %w", err)
	}
	return b, nil
}

// Scan accepts either a JSON array or, for rows written by older tooling,
// a single whitespace/comma delimited string which is collapsed to a list.
func (s *Strings) Scan(src interface{}) error {
	if src == nil {
		*s = nil
		return nil
	}
	data, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("Strings.Scan: expected []byte, got %T", src)
	}
	if len(data) == 0 {
		*s = nil
		return nil
	}
	if err := json.Unmarshal(data, s); err == nil {
		return nil
	}
	*s = SplitTags(string(data))
	return nil
}

// SplitTags normalises a delimited hashtag string into a list.
func SplitTags(raw string) Strings {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\n'
	})
	out := make(Strings, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		out = append(out, strings.TrimPrefix(f, "#"))
	}
	return out
}

// Severities is the per-category severity map returned by the moderation
// service (0 safe through 6 severe).
type Severities map[string]int

func (s Severities) Value() (driver.Value, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal Severities: %w", err)
	}
	return b, nil
}

func (s *Severities) Scan(src interface{}) error {
	if src == nil {
		*s = nil
		return nil
	}
	data, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("Severities.Scan: expected []byte, got %T", src)
	}
	if err := json.Unmarshal(data, s); err != nil {
		return fmt.Errorf("unmarshal Severities: %w", err)
	}
	return nil
}

// Merge combines two severity maps, keeping the worst score per category.
func (s Severities) Merge(other Severities) Severities {
	if len(other) == 0 {
		return s
	}
	out := make(Severities, len(s)+len(other))
	for cat, sev := range s {
		out[cat] = sev
	}
	for cat, sev := range other {
		if sev > out[cat] {
			out[cat] = sev
		}
	}
	return out
}

// Blocked returns the categories at or above the given threshold.
func (s Severities) Blocked(threshold int) []string {
	var blocked []string
	for cat, sev := range s {
		if sev >= threshold {
			blocked = append(blocked, cat)
		}
	}
	return blocked
}
