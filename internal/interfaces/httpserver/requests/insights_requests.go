package requests

// TransformRequest carries free text to normalize. An empty string is a valid
// value; only an absent field is rejected.
type TransformRequest struct {
	Text *string `json:"text" binding:"required" example:"Is this the best article ever?"`
}

// AnalyzeRequest selects one conversation.
type AnalyzeRequest struct {
	ConversationID *string `json:"conversation_id" binding:"required" example:"t_d004c097-424d-45d4-8f91-833d85c2da31"`
}
