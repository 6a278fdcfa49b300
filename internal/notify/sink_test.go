package notify_test

import (
	"context"
	"testing"

	"github.com/Gunvolt24/storefront/internal/notify"
	"github.com/Gunvolt24/storefront/internal/ports/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestSink_CollectsInOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := notify.NewSink(mocks.NewMockLogger(ctrl))
	ctx := notify.WithCollector(context.Background())

	s.Notify(ctx, "first")
	s.Notify(ctx, "second")

	got := notify.Collected(ctx)
	assert.Equal(t, []notify.Toast{
		{Message: "first", DismissAfterMs: 3000},
		{Message: "second", DismissAfterMs: 3000},
	}, got)
}

func TestSink_WithoutCollectorLogs(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Infof(gomock.Any(), gomock.Any(), "hello").Times(1)

	notify.NewSink(log).Notify(context.Background(), "hello")
	assert.Nil(t, notify.Collected(context.Background()))
}

func TestCollector_SurvivesDetachedContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := notify.NewSink(mocks.NewMockLogger(ctrl))
	ctx := notify.WithCollector(context.Background())

	s.Notify(context.WithoutCancel(ctx), "detached")
	assert.Len(t, notify.Collected(ctx), 1)
}
