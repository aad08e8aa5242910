package dto

// RecordEventRequest is the body of POST /events. Time is free text; empty means now.
type RecordEventRequest struct {
	Dataspace string         `json:"dataspace" binding:"required"`
	EventType string         `json:"eventType" binding:"required"`
	Count     float64        `json:"count" binding:"gte=0"`
	Time      string         `json:"time"`
	Props     map[string]any `json:"props"`
}

// EventResponse represents a stored event
type EventResponse struct {
	ID        string         `json:"id"`
	Dataspace string         `json:"dataspace"`
	EventType string         `json:"eventType"`
	Count     float64        `json:"count"`
	Time      string         `json:"time"`
	RawTime   string         `json:"rawTime,omitempty"`
	Props     map[string]any `json:"props"`
	CreatedAt string         `json:"createdAt"`
}

// EventListResponse is the result of a period query
type EventListResponse struct {
	Dataspace string          `json:"dataspace"`
	Period    string          `json:"period"`
	Events    []EventResponse `json:"events"`
}

// DayCountResponse is one histogram bucket
type DayCountResponse struct {
	Day   string  `json:"day"`
	Count float64 `json:"count"`
}

// HistogramResponse holds one bucket per day of the period
type HistogramResponse struct {
	Dataspace string             `json:"dataspace"`
	Period    string             `json:"period"`
	Total     float64            `json:"total"`
	Days      []DayCountResponse `json:"days"`
}

// HealthResponse reports service and dependency status
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Time     string `json:"time"`
}
