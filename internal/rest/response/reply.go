package response

import "github.com/adiwangsa/forum-api/domain"

type AddedReply struct {
	AddedReply domain.AddedReply `json:"addedReply"`
}

// NewAddedReplyFromDomain: Domain -> Response
func NewAddedReplyFromDomain(r domain.AddedReply) AddedReply {
	return AddedReply{AddedReply: r}
}
