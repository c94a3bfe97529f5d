package dto

type SendMessageRequest struct {
	Content string `json:"content" binding:"required,max=1000"`
}

type UpdateNoteRequest struct {
	Content string `json:"content"`
}
