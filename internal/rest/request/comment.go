package request

type Comment struct {
	Body string `json:"body" binding:"required"` // for CREATE
}

// CommentStatus carries the moderation state change for one comment.
type CommentStatus struct {
	Status int `json:"status" binding:"commentstatus"`
}
