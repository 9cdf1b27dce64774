package request

import "github.com/adiwangsa/forum-api/domain"

type Comment struct {
	Content string `json:"content"`
}

// ToDomain: Request -> Domain
func (r *Comment) ToDomain() domain.NewComment {
	return domain.NewComment{
		Content: r.Content,
	}
}
