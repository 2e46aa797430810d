package fiber

import statsdomain "webstats-service/internal/webstats/core/domain"

// CreateRecordRequest represents a single stats record
// @Description Website chat statistics for one date
type CreateRecordRequest struct {
	WebsiteID   statsdomain.WebsiteID `json:"websiteId" swaggertype:"string" example:"1"`
	Date        string                `json:"date" example:"2023-01-01"`
	Chats       int64                 `json:"chats" example:"10"`
	MissedChats int64                 `json:"missedChats" example:"2"`
}

type CreateRecordResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type BulkCreateRecordsRequest struct {
	Records []CreateRecordRequest `json:"records"`
}

type BulkCreateRecordsResponse struct {
	Created    int `json:"created"`
	Duplicates int `json:"duplicates"`
	Skipped    int `json:"skipped,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_record"`
	Message string `json:"message" example:"invalid record: websiteId is required"`
}
