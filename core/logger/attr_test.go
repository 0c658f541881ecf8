package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emmydush/businessos/core/logger"
)

func TestGroup(t *testing.T) {
	t.Parallel()

	attr := logger.Group("req", slog.String("id", "1"), slog.Int("n", 2))
	require.Equal(t, "req", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "id", g[0].Key)
	assert.Equal(t, "n", g[1].Key)
}

func TestErrors(t *testing.T) {
	t.Parallel()

	attr := logger.Errors(errors.New("first"), nil, errors.New("second"))
	require.Equal(t, "errors", attr.Key)
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "0", g[0].Key)
	assert.Equal(t, "2", g[1].Key)

	assert.Equal(t, slog.Attr{}, logger.Errors(nil, nil))
}

func TestNilSafeAttrs(t *testing.T) {
	t.Parallel()

	empty := slog.Attr{}
	assert.Equal(t, empty, logger.Error(nil))
	assert.Equal(t, empty, logger.RequestID(""))
	assert.Equal(t, empty, logger.Form(""))
	assert.Equal(t, empty, logger.Field(""))
	assert.Equal(t, empty, logger.Fields(nil))
	assert.Equal(t, empty, logger.SubmissionID(""))
	assert.Equal(t, empty, logger.Language(""))
	assert.Equal(t, empty, logger.Key("k", nil))
}

func TestFormAttrs(t *testing.T) {
	t.Parallel()

	assert.True(t, slog.String("form", "product").Equal(logger.Form("product")))
	assert.True(t, slog.String("field", "price").Equal(logger.Field("price")))
	assert.True(t, slog.String("submission_id", "abc").Equal(logger.SubmissionID("abc")))
	assert.True(t, slog.String("lang", "fr").Equal(logger.Language("fr")))
	assert.True(t, slog.String("result", "stored").Equal(logger.Result("stored")))
	assert.Equal(t, "fields", logger.Fields([]string{"a"}).Key)
}

func TestHTTPAttrs(t *testing.T) {
	t.Parallel()

	assert.True(t, slog.String("method", "POST").Equal(logger.Method("POST")))
	assert.True(t, slog.String("path", "/api/forms").Equal(logger.Path("/api/forms")))
	assert.True(t, slog.Int("status_code", 201).Equal(logger.StatusCode(201)))
	assert.True(t, slog.Duration("duration", time.Second).Equal(logger.Duration(time.Second)))
	assert.Equal(t, "elapsed", logger.Elapsed(time.Now()).Key)
}
