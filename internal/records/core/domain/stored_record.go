package domain

import "time"

type StoredRecord struct {
	WebsiteID   string
	Date        string // as received
	RecordTime  time.Time
	Chats       int64
	MissedChats int64
	DedupeKey   string
}
