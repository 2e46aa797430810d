package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// WebsiteID is the text form of a website identifier. The upstream dataset
// uses both JSON strings and JSON numbers for it.
type WebsiteID string

func (id *WebsiteID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = WebsiteID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("websiteId must be a string or a number: %w", err)
	}
	*id = WebsiteID(n.String())
	return nil
}

// MarshalJSON writes ids that are valid JSON number literals back as numbers,
// so numeric ids keep their token kind. A string id that happens to read as
// a number ("15") comes out as a number too.
func (id WebsiteID) MarshalJSON() ([]byte, error) {
	if isNumberLiteral(string(id)) {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

func isNumberLiteral(s string) bool {
	if s == "" || (s[0] != '-' && (s[0] < '0' || s[0] > '9')) {
		return false
	}
	return json.Valid([]byte(s))
}

type Record struct {
	WebsiteID   WebsiteID `json:"websiteId"`
	Date        string    `json:"date"`
	Chats       int64     `json:"chats"`
	MissedChats int64     `json:"missedChats"`
}

type AggregateResult struct {
	WebsiteID        WebsiteID `json:"websiteId"`
	TotalChats       int64     `json:"totalChats"`
	TotalMissedChats int64     `json:"totalMissedChats"`
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseDate parses a record or bound date. Values without a zone are read
// as UTC. ok is false for anything that matches none of the layouts.
func ParseDate(s string) (t time.Time, ok bool) {
	for _, layout := range dateLayouts {
		parsed, err := time.ParseInLocation(layout, s, time.UTC)
		if err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

type Source string

const (
	SourceRemote Source = "remote"
	SourceStored Source = "stored"
)

type Summary struct {
	Source    Source
	StartDate *time.Time // nil when no lower bound was applied
	EndDate   *time.Time // nil when no upper bound was applied
	Results   []AggregateResult
}
