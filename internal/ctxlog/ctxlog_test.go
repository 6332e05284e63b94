package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromContext_FallsBackToDefault(t *testing.T) {
	assert.Same(t, slog.Default(), FromContext(context.Background()))
}

func TestWith_AttachesAttributes(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, nil))
	ctx := WithLogger(context.Background(), base)

	ctx, logger := With(ctx, "run", "part-one")
	logger.Info("direct")
	FromContext(ctx).Info("from context")

	out := buf.String()
	assert.Contains(t, out, "msg=direct run=part-one")
	assert.Contains(t, out, `msg="from context" run=part-one`)
}
