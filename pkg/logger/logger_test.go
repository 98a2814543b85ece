package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"go.llib.dev/bcl/pkg/logger"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/clock/timecop"
	"go.llib.dev/testcase/random"
)

func TestLogger_smoke(t *testing.T) {
	now := time.Now()
	timecop.Travel(t, now, timecop.Freeze)
	rnd := random.New(random.CryptoSeed{})

	t.Run("output is a valid JSON by default", func(t *testing.T) {
		ctx := context.Background()
		buf := &bytes.Buffer{}
		l := &logger.Logger{Out: buf}

		expected := rnd.Repeat(3, 7, func() {
			l.Info(ctx, rnd.String())
		})

		dec := json.NewDecoder(buf)

		var got int
		for dec.More() {
			got++
			msg := map[string]any{}
			assert.NoError(t, dec.Decode(&msg))
			assert.NotEmpty(t, msg)
		}

		assert.Equal(t, expected, got)
	})

	t.Run("log entries split by the configured separator", func(t *testing.T) {
		ctx := context.Background()
		buf := &bytes.Buffer{}
		l := &logger.Logger{Out: buf, Separator: "|"}
		expected := rnd.Repeat(3, 7, func() {
			l.Info(ctx, rnd.StringNC(8, random.CharsetAlpha()))
		})
		gotEntries := strings.Split(buf.String(), "|")
		if li := len(gotEntries) - 1; gotEntries[li] == "" {
			gotEntries = gotEntries[:li]
		}
		assert.Equal(t, expected, len(gotEntries))
	})

	t.Run("message, timestamp, level and all details are logged, including from context", func(t *testing.T) {
		buf := &bytes.Buffer{}
		l := &logger.Logger{Out: buf, Level: logger.LevelDebug}

		ctx := context.Background()
		ctx = logger.ContextWith(ctx, logger.Details{"foo": "bar"})
		ctx = logger.ContextWith(ctx, logger.Field("bar", 42))

		l.Info(ctx, "a", logger.Details{"info": "level"})
		assert.Contains(t, buf.String(), fmt.Sprintf(`"timestamp":"%s"`, now.Format(time.RFC3339)))
		assert.Contains(t, buf.String(), `"info":"level"`)
		assert.Contains(t, buf.String(), `"foo":"bar"`)
		assert.Contains(t, buf.String(), `"message":"a"`)
		assert.Contains(t, buf.String(), `"bar":42`)
		assert.Contains(t, buf.String(), `"level":"info"`)

		l.Debug(ctx, "b")
		assert.Contains(t, buf.String(), `"message":"b"`)
		assert.Contains(t, buf.String(), `"level":"debug"`)
		l.Warn(ctx, "c")
		assert.Contains(t, buf.String(), `"level":"warn"`)
		l.Error(ctx, "d", logger.ErrField(errors.New("boom")))
		assert.Contains(t, buf.String(), `"level":"error"`)
		assert.Contains(t, buf.String(), `"error":{"message":"boom"}`)
		l.Fatal(ctx, "e")
		assert.Contains(t, buf.String(), `"level":"fatal"`)
	})

	t.Run("inner context details override outer ones", func(t *testing.T) {
		buf := &bytes.Buffer{}
		l := &logger.Logger{Out: buf}
		ctx := logger.ContextWith(context.Background(), logger.Field("k", "outer"))
		ctx = logger.ContextWith(ctx, logger.Field("k", "inner"))
		l.Info(ctx, "msg")
		assert.Contains(t, buf.String(), `"k":"inner"`)
	})

	t.Run("entries below the level are skipped", func(t *testing.T) {
		buf := &bytes.Buffer{}
		l := &logger.Logger{Out: buf, Level: logger.LevelWarn}
		l.Info(context.Background(), "quiet")
		assert.Empty(t, buf.String())
		assert.False(t, l.IsEnabled(logger.LevelInfo))
		l.Warn(context.Background(), "loud")
		assert.Contains(t, buf.String(), `"message":"loud"`)
	})

	t.Run("keys can be configured", func(t *testing.T) {
		ctx := context.Background()
		buf := &bytes.Buffer{}
		l := &logger.Logger{Out: buf}

		l.MessageKey = "msg"
		l.TimestampKey = "ts"
		l.LevelKey = "lvl"
		l.KeyFormatter = strings.ToUpper

		l.Info(ctx, "foo", logger.Field("detail", 1))
		assert.Contains(t, buf.String(), fmt.Sprintf(`"TS":"%s"`, now.Format(time.RFC3339)))
		assert.Contains(t, buf.String(), `"MSG":"foo"`)
		assert.Contains(t, buf.String(), `"LVL":"info"`)
		assert.Contains(t, buf.String(), `"DETAIL":1`)
	})
}

func TestStub(t *testing.T) {
	out := logger.Stub(t)
	logger.Debug(context.Background(), "hello", logger.Field("answer", 42))
	assert.Contains(t, out.String(), `"message":"hello"`)
	assert.Contains(t, out.String(), `"answer":42`)
}

func TestParseLevel(t *testing.T) {
	level, ok := logger.ParseLevel(" Debug ")
	assert.True(t, ok)
	assert.Equal(t, logger.LevelDebug, level)

	_, ok = logger.ParseLevel("verbose")
	assert.False(t, ok)
}
