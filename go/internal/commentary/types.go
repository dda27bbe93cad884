package commentary

// AppendCommentaryRequest represents a new commentary entry for a match.
// Minute and Sequence are optional ordering hints; Metadata and Tags pass
// through opaquely and are validated for shape only.
type AppendCommentaryRequest struct {
	Minute    *int                   `json:"minute" validate:"omitempty,min=0"`
	Sequence  *int                   `json:"sequence" validate:"omitempty,min=0"`
	Period    *string                `json:"period"`
	EventType *string                `json:"eventType"`
	Actor     *string                `json:"actor"`
	Team      *string                `json:"team"`
	Message   string                 `json:"message" validate:"required"`
	Metadata  map[string]interface{} `json:"metadata"`
	Tags      []string               `json:"tags"`
}
