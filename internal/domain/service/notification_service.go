package service

import "context"

// MaxBatchTokens is the most device tokens a single push call may address.
const MaxBatchTokens = 500

// PushMessage is what a follower's device shows for one event.
type PushMessage struct {
	Title string
	Body  string
	Data  map[string]string
}

// BatchResult summarizes one provider call. InvalidTokens lists tokens the
// provider rejected as unknown or unregistered; callers purge those devices.
type BatchResult struct {
	Sent          int
	Failed        int
	InvalidTokens []string
}

// NotificationService delivers push messages to follower devices.
type NotificationService interface {
	SendBatch(ctx context.Context, tokens []string, msg PushMessage) (BatchResult, error)
}
