package types

// MessageResponse is the flat {message} payload shared by the upload,
// delete and reset endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}

type FilesResponse struct {
	Files []string `json:"files"`
}

// AskResponse carries exactly one of answer or image.
type AskResponse struct {
	Answer string `json:"answer,omitempty"`
	Image  string `json:"image,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type WebsocketResponse struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

type WebsocketChunkPayload struct {
	Content string `json:"content"`
}
