package responses

// TransformResponse wraps a normalized text.
type TransformResponse struct {
	ProcessedText string `json:"processed_text" example:"best article ever"`
}
