package fiber

import "webstats-service/internal/webstats/core/domain"

type AggregateResultResponse struct {
	WebsiteID        domain.WebsiteID `json:"websiteId" swaggertype:"string" example:"1"`
	TotalChats       int64            `json:"totalChats" example:"15"`
	TotalMissedChats int64            `json:"totalMissedChats" example:"3"`
}

type SummaryResponse struct {
	Source    string                    `json:"source" example:"remote"`
	StartDate string                    `json:"start_date,omitempty" example:"2023-01-01T00:00:00Z"`
	EndDate   string                    `json:"end_date,omitempty" example:"2023-01-31T00:00:00Z"`
	Results   []AggregateResultResponse `json:"results"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_query"`
	Message string `json:"message" example:"invalid source"`
}
