package response

import "github.com/adiwangsa/forum-api/domain"

type AddedComment struct {
	AddedComment domain.AddedComment `json:"addedComment"`
}

// NewAddedCommentFromDomain: Domain -> Response
func NewAddedCommentFromDomain(c domain.AddedComment) AddedComment {
	return AddedComment{AddedComment: c}
}
