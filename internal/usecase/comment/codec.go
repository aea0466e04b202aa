package comment

import (
	"encoding/json"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/Go-Campus-Backend/domain"
)

// blobComment is the persisted shape of one comment inside a post's column.
// It carries the stored fields only, so the enrichment fields of
// domain.Comment can never leak into storage and unknown keys found in
// legacy blobs are dropped on re-encode.
type blobComment struct {
	ID        string               `json:"id"`
	AuthorID  int64                `json:"author_id"`
	Body      string               `json:"body"`
	CreatedAt time.Time            `json:"created_at"`
	Status    domain.CommentStatus `json:"status"`
}

// DecodeComments parses the serialized collection stored on a post.
// Absent, empty and malformed input all degrade to an empty collection:
// legacy rows predate the blob format and must keep working. Malformed
// input is logged, never surfaced.
func DecodeComments(raw string) []domain.Comment {
	if raw == "" {
		return []domain.Comment{}
	}

	var records []blobComment
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		logrus.Warnf("malformed comment blob, treating as empty: %v", err)
		return []domain.Comment{}
	}

	res := make([]domain.Comment, len(records))
	for i, r := range records {
		res[i] = domain.Comment{
			ID:        r.ID,
			AuthorID:  r.AuthorID,
			Body:      r.Body,
			CreatedAt: r.CreatedAt,
			Status:    r.Status,
		}
	}
	return res
}

// EncodeComments serializes a collection back into its column form,
// preserving order. A failure here must abort the surrounding mutation: a
// comment is never acknowledged if its collection failed to serialize.
func EncodeComments(comments []domain.Comment) (string, error) {
	records := make([]blobComment, len(comments))
	for i, c := range comments {
		records[i] = blobComment{
			ID:        c.ID,
			AuthorID:  c.AuthorID,
			Body:      c.Body,
			CreatedAt: c.CreatedAt,
			Status:    c.Status,
		}
	}

	data, err := json.Marshal(records)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
