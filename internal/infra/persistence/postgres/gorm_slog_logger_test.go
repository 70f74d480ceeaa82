package postgres

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"sarahkyoga/config"
	deliverycontext "sarahkyoga/internal/delivery/context"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferedGormLogger(cfg *config.Config) (*gormSlogLogger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	base := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return newGormSlogLogger(base, cfg).(*gormSlogLogger), buf
}

func TestGormSlogLogger_Thresholds(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Log.SlowQueryThreshold = 2 * time.Second

	l, _ := newBufferedGormLogger(cfg)
	assert.Equal(t, 2*time.Second, l.slowThreshold)
	assert.Equal(t, logger.Warn, l.level)

	cfg.Env.Debug = true
	l, _ = newBufferedGormLogger(cfg)
	assert.Equal(t, logger.Info, l.level)

	l, _ = newBufferedGormLogger(nil)
	assert.Equal(t, defaultGormSlowThreshold, l.slowThreshold)
}

func TestGormSlogLogger_Trace(t *testing.T) {
	sqlFn := func() (string, int64) { return "SELECT 1", 1 }

	l, buf := newBufferedGormLogger(&config.Config{})
	l.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String())

	l.Trace(context.Background(), time.Now(), sqlFn, errors.New("boom"))
	assert.Contains(t, buf.String(), "GORM query failed")

	buf.Reset()
	l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, nil)
	assert.Contains(t, buf.String(), "GORM slow query")

	buf.Reset()
	l.Trace(context.Background(), time.Now(), sqlFn, nil)
	assert.Empty(t, buf.String())
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	l, base := newBufferedGormLogger(&config.Config{})
	reqBuf := &bytes.Buffer{}
	reqLogger := slog.New(slog.NewTextHandler(reqBuf, nil)).With(slog.String("request_id", "req-7"))
	ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

	l.Trace(ctx, time.Now(), func() (string, int64) { return "UPDATE promo_codes", 1 }, errors.New("deadlock"))

	assert.Empty(t, base.String())
	assert.Contains(t, reqBuf.String(), "request_id=req-7")
	assert.Contains(t, reqBuf.String(), "UPDATE promo_codes")
}
