package request

import "github.com/adiwangsa/forum-api/domain"

type Reply struct {
	Content string `json:"content"`
}

// ToDomain: Request -> Domain
func (r *Reply) ToDomain() domain.NewReply {
	return domain.NewReply{
		Content: r.Content,
	}
}
