package handler

import (
	"context"
	"crypto/tls"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "foodiecircle/internal/delivery/context"
	"foodiecircle/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDishEvent(t *testing.T) {
	data := base64.StdEncoding.EncodeToString([]byte(`{"dish_id":"d-1","author_id":"a-1","dish_name":"Ramen"}`))

	msg, event, err := decodeDishEvent(strings.NewReader(`{"message":{"data":"` + data + `","messageId":"m-9"}}`))
	require.NoError(t, err)
	assert.Equal(t, "m-9", msg.Message.MessageID)
	assert.Equal(t, "d-1", event.DishID)
	assert.Equal(t, "a-1", event.AuthorID)
}

func TestDecodeDishEvent_Malformed(t *testing.T) {
	for name, body := range map[string]string{
		"not json":    `{`,
		"bad base64":  `{"message":{"data":"%%%"}}`,
		"bad payload": `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte("[")) + `"}}`,
	} {
		t.Run(name, func(t *testing.T) {
			_, _, err := decodeDishEvent(strings.NewReader(body))
			assert.Error(t, err)
		})
	}
}

func TestRequestID_Priority(t *testing.T) {
	var msg PubSubMessage
	msg.Message.Attributes = map[string]string{"request_id": "from-attr"}
	event := &service.DishLoggedEvent{RequestID: "from-event"}
	ctx := deliverycontext.WithRequestID(context.Background(), "from-ctx")

	assert.Equal(t, "from-attr", requestID(ctx, &msg, event))

	msg.Message.Attributes = nil
	assert.Equal(t, "from-event", requestID(ctx, &msg, event))
	assert.Equal(t, "from-ctx", requestID(ctx, &msg, &service.DishLoggedEvent{}))

	_, err := uuid.Parse(requestID(context.Background(), &msg, &service.DishLoggedEvent{}))
	assert.NoError(t, err)
}

func TestBearerToken(t *testing.T) {
	token, err := bearerToken("Bearer abc.def")
	require.NoError(t, err)
	assert.Equal(t, "abc.def", token)

	for _, header := range []string{"", "Basic xyz", "Bearer  "} {
		_, err := bearerToken(header)
		assert.Error(t, err, header)
	}
}

func TestPushAudience(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "http://worker.internal/push?x=1", nil)
	assert.Equal(t, "http://worker.internal/push", pushAudience(req))

	req.TLS = &tls.ConnectionState{}
	assert.Equal(t, "https://worker.internal/push", pushAudience(req))
}

func TestVerifyPubSubToken_MissingHeader(t *testing.T) {
	err := verifyPubSubToken(httptest.NewRequest(http.MethodPost, "/push", nil))

	assert.ErrorContains(t, err, "missing authorization header")
}
