package request

import "github.com/adiwangsa/forum-api/domain"

type Thread struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// ToDomain: Request -> Domain
func (r *Thread) ToDomain() domain.NewThread {
	return domain.NewThread{
		Title: r.Title,
		Body:  r.Body,
	}
}
