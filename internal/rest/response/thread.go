package response

import "github.com/adiwangsa/forum-api/domain"

type AddedThread struct {
	AddedThread domain.AddedThread `json:"addedThread"`
}

// NewAddedThreadFromDomain: Domain -> Response
func NewAddedThreadFromDomain(t domain.AddedThread) AddedThread {
	return AddedThread{AddedThread: t}
}

type ThreadDetail struct {
	Thread domain.ThreadDetail `json:"thread"`
}

// NewThreadDetailFromDomain: Domain -> Response
func NewThreadDetailFromDomain(t domain.ThreadDetail) ThreadDetail {
	return ThreadDetail{Thread: t}
}
