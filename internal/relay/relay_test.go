package relay

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/medportal/slotbooker/internal/domain"
	"github.com/medportal/slotbooker/internal/relay/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestRelay_Tick_PublishesAndMarks(t *testing.T) {
	outbox := mocks.NewMockOutboxSource(t)
	sink := mocks.NewMockEventSink(t)
	log := newTestLogger(t)

	r := New(outbox, sink, 50*time.Millisecond, 100, log)

	events := []*domain.OutboxEvent{
		{ID: "e1", EventType: domain.EventSlotBooked, Payload: []byte(`{"slot_id":"s1"}`)},
		{ID: "e2", EventType: domain.EventSlotBooked, Payload: []byte(`{"slot_id":"s2"}`)},
	}
	outbox.EXPECT().ListUnpublished(mock.Anything, 100).Return(events, nil)
	sink.EXPECT().Publish(mock.Anything, domain.EventSlotBooked, mock.Anything).Return(nil)
	outbox.EXPECT().MarkPublished(mock.Anything, []string{"e1", "e2"}).Return(nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	r.Start(ctx)

	assert.GreaterOrEqual(t, len(outbox.Calls), 2)
}

func TestRelay_Tick_PublishErrorLeavesUnmarked(t *testing.T) {
	outbox := mocks.NewMockOutboxSource(t)
	sink := mocks.NewMockEventSink(t)
	log := newTestLogger(t)

	r := New(outbox, sink, 50*time.Millisecond, 100, log)

	events := []*domain.OutboxEvent{
		{ID: "e1", EventType: domain.EventSlotBooked, Payload: []byte(`{}`)},
	}
	outbox.EXPECT().ListUnpublished(mock.Anything, 100).Return(events, nil)
	sink.EXPECT().Publish(mock.Anything, domain.EventSlotBooked, mock.Anything).Return(errors.New("broker down"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	r.Start(ctx)

	// MarkPublished was never expected: the events must stay in the outbox.
	outbox.AssertNotCalled(t, "MarkPublished", mock.Anything, mock.Anything)
}

func TestRelay_Tick_ReadError(t *testing.T) {
	outbox := mocks.NewMockOutboxSource(t)
	sink := mocks.NewMockEventSink(t)
	log := newTestLogger(t)

	r := New(outbox, sink, 50*time.Millisecond, 100, log)

	outbox.EXPECT().ListUnpublished(mock.Anything, 100).Return(nil, errors.New("db error"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	r.Start(ctx)

	assert.GreaterOrEqual(t, len(outbox.Calls), 1)
}

func TestRelay_StopsOnContextCancel(t *testing.T) {
	outbox := mocks.NewMockOutboxSource(t)
	sink := mocks.NewMockEventSink(t)
	log := newTestLogger(t)

	r := New(outbox, sink, time.Second, 100, log) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		r.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("relay did not stop on context cancel")
	}
}

func TestRelay_EmptyOutbox(t *testing.T) {
	outbox := mocks.NewMockOutboxSource(t)
	sink := mocks.NewMockEventSink(t)
	log := newTestLogger(t)

	r := New(outbox, sink, 30*time.Millisecond, 100, log)

	outbox.EXPECT().ListUnpublished(mock.Anything, 100).Return(nil, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	r.Start(ctx)

	calls := len(outbox.Calls)
	assert.GreaterOrEqual(t, calls, 2)
	sink.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}
