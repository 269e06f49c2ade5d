package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	deliverycontext "foodiecircle/internal/delivery/context"
	"foodiecircle/internal/domain/service"
	"foodiecircle/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"google.golang.org/api/idtoken"
)

// PubSubMessage is the body Pub/Sub POSTs to a push subscription.
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

var googleIssuers = map[string]struct{}{
	"accounts.google.com":         {},
	"https://accounts.google.com": {},
}

// decodeDishEvent reads a push envelope and the base64 JSON event it carries.
func decodeDishEvent(r io.Reader) (*PubSubMessage, *service.DishLoggedEvent, error) {
	var msg PubSubMessage
	if err := json.NewDecoder(r).Decode(&msg); err != nil {
		return nil, nil, errors.Wrap(err, "decode push envelope")
	}

	data, err := base64.StdEncoding.DecodeString(msg.Message.Data)
	if err != nil {
		return nil, nil, errors.Wrap(err, "decode message data")
	}

	var event service.DishLoggedEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, nil, errors.Wrap(err, "decode dish event")
	}

	return &msg, &event, nil
}

// requestID prefers the publisher's message attribute, then the event field,
// then the ID of the push request itself.
func requestID(ctx context.Context, msg *PubSubMessage, event *service.DishLoggedEvent) string {
	candidates := []string{
		msg.Message.Attributes["request_id"],
		event.RequestID,
		deliverycontext.GetRequestIDFromContext(ctx),
	}
	for _, id := range candidates {
		if id != "" {
			return id
		}
	}

	return uuid.NewString()
}

// verifyPubSubToken checks the Google-signed OIDC token Pub/Sub attaches to
// push requests. The audience is the URL of this endpoint.
func verifyPubSubToken(req *http.Request) error {
	token, err := bearerToken(req.Header.Get(echo.HeaderAuthorization))
	if err != nil {
		return err
	}

	payload, err := idtoken.Validate(req.Context(), token, pushAudience(req))
	if err != nil {
		return errors.Wrap(err, "validate push token")
	}

	if _, ok := googleIssuers[payload.Issuer]; !ok {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok && !verified {
		return errors.New("push token email not verified")
	}

	return nil
}

func bearerToken(header string) (string, error) {
	if header == "" {
		return "", errors.New("missing authorization header")
	}

	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || strings.TrimSpace(token) == "" {
		return "", errors.New("invalid authorization header format")
	}

	return token, nil
}

func pushAudience(req *http.Request) string {
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}

	return scheme + "://" + req.Host + req.URL.Path
}
