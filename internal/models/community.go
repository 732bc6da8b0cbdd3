package models

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"tours.stagebridge.org/internal/geo"
)

// Community is a host venue/community as seen by the tour planner.
type Community struct {
	ID           int64        `json:"id"`
	Name         string       `json:"name"`
	Location     string       `json:"location"`
	Latitude     *float64     `json:"latitude"`
	Longitude    *float64     `json:"longitude"`
	AudienceSize AudienceSize `json:"audience_size"`
}

// Point returns the community's coordinates.
func (c Community) Point() geo.Point {
	return geo.Point{Latitude: c.Latitude, Longitude: c.Longitude}
}

// Located reports whether the community has both coordinates.
func (c Community) Located() bool {
	return c.Point().Located()
}

// AudienceSize is either a categorical label (small, medium, large,
// very_large, xl), a raw head count, or unset. On the wire it is a JSON
// string, number or null.
type AudienceSize struct {
	Label string
	Count *int
}

// AudienceLabel returns a categorical audience size.
func AudienceLabel(label string) AudienceSize {
	return AudienceSize{Label: label}
}

// AudienceCount returns a numeric audience size.
func AudienceCount(n int) AudienceSize {
	return AudienceSize{Count: &n}
}

// IsZero reports whether no audience size was given.
func (a AudienceSize) IsZero() bool {
	return a.Count == nil && a.Label == ""
}

func (a AudienceSize) String() string {
	switch {
	case a.Count != nil:
		return strconv.Itoa(*a.Count)
	case a.Label != "":
		return a.Label
	default:
		return ""
	}
}

func (a AudienceSize) MarshalJSON() ([]byte, error) {
	switch {
	case a.Count != nil:
		return json.Marshal(*a.Count)
	case a.Label != "":
		return json.Marshal(a.Label)
	default:
		return []byte("null"), nil
	}
}

func (a *AudienceSize) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = AudienceSize{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var label string
		if err := json.Unmarshal(data, &label); err != nil {
			return err
		}
		*a = AudienceLabel(label)
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("audience_size must be a string, integer or null: %w", err)
	}
	*a = AudienceCount(n)
	return nil
}

// ParseAudienceSize reads the text form stored in a database column: digits
// become a count, anything else a label. Empty text is unset.
func ParseAudienceSize(s string) AudienceSize {
	s = strings.TrimSpace(s)
	if s == "" {
		return AudienceSize{}
	}
	if n, err := strconv.Atoi(s); err == nil {
		return AudienceCount(n)
	}
	return AudienceLabel(s)
}
