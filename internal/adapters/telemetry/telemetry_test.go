package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wesleykendall/footing/internal/adapters/telemetry"
)

func TestRecorder_RecordAndClose(t *testing.T) {
	rec := telemetry.New()

	ctx, vtx := rec.Record(context.Background(), "lock toolkit:dev")
	require.NotNil(t, ctx)
	require.NotNil(t, vtx)

	vtx.Log("promoting lock from local registry")
	vtx.Complete(nil)

	_, failed := rec.Record(context.Background(), "materialize myproj-dev")
	failed.Complete(errors.New("solver exploded"))

	assert.NoError(t, rec.Close())
}

func TestRecorder_CachedVertex(t *testing.T) {
	rec := telemetry.New()

	_, vtx := rec.Record(context.Background(), "lock toolkit:dev")
	vtx.Cached()
	vtx.Complete(nil)

	assert.NoError(t, rec.Close())
}

func TestNoOp(t *testing.T) {
	rec := telemetry.NewNoOp()

	ctx, vtx := rec.Record(context.Background(), "anything")
	require.NotNil(t, ctx)

	vtx.Log("discarded")
	vtx.Cached()
	vtx.Complete(errors.New("also discarded"))

	assert.NoError(t, rec.Close())
}
