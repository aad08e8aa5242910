package dto

// WarningResponse describes a heuristic the parser had to apply
type WarningResponse struct {
	Heuristic  string `json:"heuristic"`
	Assumption string `json:"assumption"`
}

// ParseResponse is the normalized form of one time expression
type ParseResponse struct {
	Input       string            `json:"input"`
	Instant     string            `json:"instant"`
	Start       string            `json:"start"`
	End         string            `json:"end"`
	Granularity string            `json:"granularity"`
	Strategy    string            `json:"strategy"`
	Relative    bool              `json:"relative"`
	Warnings    []WarningResponse `json:"warnings,omitempty"`
}

// BatchParseRequest carries several expressions to normalize at once
type BatchParseRequest struct {
	Inputs []string `json:"inputs" binding:"required,min=1"`
}

// BatchItemResponse is one entry of a batch; exactly one of Result and Error is set
type BatchItemResponse struct {
	Index  int            `json:"index"`
	Input  string         `json:"input"`
	Result *ParseResponse `json:"result,omitempty"`
	Error  *ErrorResponse `json:"error,omitempty"`
}

// BatchParseResponse keeps the request order
type BatchParseResponse struct {
	Results []BatchItemResponse `json:"results"`
	Failed  int                 `json:"failed"`
}

// IntervalResponse describes a parsed span
type IntervalResponse struct {
	Input  string           `json:"input"`
	Start  string           `json:"start"`
	End    string           `json:"end"`
	ISO    string           `json:"iso"`
	Text   string           `json:"text"`
	Human  string           `json:"human"`
	Length DurationResponse `json:"length"`
}

// DurationResponse describes a length of time
type DurationResponse struct {
	Value  float64 `json:"value"`
	Unit   string  `json:"unit"`
	Millis int64   `json:"millis"`
	Text   string  `json:"text"`
	Human  string  `json:"human"`
}

// HumanizeResponse renders an expression relative to now
type HumanizeResponse struct {
	Input    string `json:"input"`
	Instant  string `json:"instant"`
	Now      string `json:"now"`
	Relative string `json:"relative"`
	Interval string `json:"interval,omitempty"`
	Local    string `json:"local,omitempty"`
}

// DiffResponse is the signed distance from one expression to another
type DiffResponse struct {
	From     string           `json:"from"`
	To       string           `json:"to"`
	Duration DurationResponse `json:"duration"`
}
