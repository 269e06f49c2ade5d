package notification

import (
	"context"
	"fmt"
	"log/slog"
	"testing"

	"foodiecircle/config"
	"foodiecircle/internal/domain/service"
	"foodiecircle/internal/errors"

	"firebase.google.com/go/v4/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	got      *messaging.MulticastMessage
	response *messaging.BatchResponse
	err      error
}

func (f *fakeSender) SendEachForMulticast(_ context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error) {
	f.got = message

	return f.response, f.err
}

var testMessage = service.PushMessage{
	Title: "ann logged a dish",
	Body:  "Tonkotsu at Ichiran",
	Data:  map[string]string{"dish_id": "1"},
}

func TestSendBatch_Empty(t *testing.T) {
	sender := &fakeSender{}
	svc := &firebaseService{client: sender}

	result, err := svc.SendBatch(context.Background(), nil, testMessage)
	require.NoError(t, err)
	assert.Equal(t, service.BatchResult{}, result)
	assert.Nil(t, sender.got)
}

func TestSendBatch_TooManyTokens(t *testing.T) {
	svc := &firebaseService{client: &fakeSender{}}

	tokens := make([]string, service.MaxBatchTokens+1)
	for i := range tokens {
		tokens[i] = fmt.Sprintf("tok-%d", i)
	}

	_, err := svc.SendBatch(context.Background(), tokens, testMessage)
	assert.ErrorContains(t, err, "exceeds limit")
}

func TestSendBatch_Success(t *testing.T) {
	sender := &fakeSender{response: &messaging.BatchResponse{
		SuccessCount: 2,
		Responses:    []*messaging.SendResponse{{Success: true}, {Success: true}},
	}}
	svc := &firebaseService{client: sender}

	result, err := svc.SendBatch(context.Background(), []string{"a", "b"}, testMessage)
	require.NoError(t, err)
	assert.Equal(t, service.BatchResult{Sent: 2}, result)
	assert.Equal(t, []string{"a", "b"}, sender.got.Tokens)
	assert.Equal(t, testMessage.Title, sender.got.Notification.Title)
	assert.Equal(t, testMessage.Body, sender.got.Notification.Body)
	assert.Equal(t, "1", sender.got.Data["dish_id"])
}

func TestSendBatch_ProviderError(t *testing.T) {
	svc := &firebaseService{client: &fakeSender{err: errors.New("quota")}}

	_, err := svc.SendBatch(context.Background(), []string{"a"}, testMessage)
	assert.ErrorContains(t, err, "quota")
}

func TestRejectedTokens_IgnoresTransientAndSuccess(t *testing.T) {
	responses := []*messaging.SendResponse{
		{Success: true},
		{Error: errors.New("deadline exceeded")},
		nil,
	}

	assert.Empty(t, rejectedTokens([]string{"a", "b", "c"}, responses))
}

func TestNewFirebaseService_DisabledWithoutConfig(t *testing.T) {
	svc, err := NewFirebaseService(context.Background(), &config.Config{}, slog.New(slog.DiscardHandler))
	require.NoError(t, err)

	result, err := svc.SendBatch(context.Background(), []string{"a"}, testMessage)
	require.NoError(t, err)
	assert.Equal(t, service.BatchResult{}, result)
}
