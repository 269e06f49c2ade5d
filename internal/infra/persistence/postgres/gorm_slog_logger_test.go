package postgres

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"foodiecircle/config"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestStatementKind(t *testing.T) {
	assert.Equal(t, "select", statementKind(`SELECT * FROM "dishes" WHERE restaurant IS NOT NULL`))
	assert.Equal(t, "insert", statementKind(" insert into subscriptions"))
	assert.Equal(t, "delete", statementKind("DELETE FROM subscriptions WHERE id = $1"))
	assert.Equal(t, "other", statementKind("BEGIN"))
	assert.Equal(t, "other", statementKind(""))
}

func TestGormSlogLogger_Trace(t *testing.T) {
	cfg := &config.Config{Store: &config.StoreConfig{SlowQueryThreshold: 10 * time.Millisecond}}
	statement := func() (string, int64) { return "SELECT 1", 1 }

	tests := []struct {
		name  string
		begin time.Time
		err   error
		want  string
	}{
		{name: "failure", begin: time.Now(), err: errors.New("conn refused"), want: "Record store statement failed"},
		{name: "not found is quiet", begin: time.Now(), err: gorm.ErrRecordNotFound, want: ""},
		{name: "slow", begin: time.Now().Add(-time.Second), want: "Record store slow statement"},
		{name: "fast is quiet", begin: time.Now(), want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := newGormSlogLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), cfg)

			l.Trace(context.Background(), tt.begin, statement, tt.err)

			if tt.want == "" {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestGormSlogLogger_Silent(t *testing.T) {
	var buf bytes.Buffer
	l := newGormSlogLogger(slog.New(slog.NewTextHandler(&buf, nil)), nil).LogMode(logger.Silent)

	l.Trace(context.Background(), time.Now().Add(-time.Hour), func() (string, int64) { return "SELECT 1", 0 }, errors.New("boom"))
	l.Error(context.Background(), "boom %d", 1)

	assert.Empty(t, buf.String())
}
