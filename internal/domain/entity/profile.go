package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the public face of a user, searched by username.
type Profile struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
