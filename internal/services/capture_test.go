package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/hookline/internal/domain"
	portsmocks "github.com/renato0307/hookline/internal/ports/mocks"
)

func newTestCaptureService(t *testing.T, reg *portsmocks.MockSessionRegistry, sink *portsmocks.MockEventSink, opts CaptureOptions) (*CaptureService, *clock.Mock) {
	t.Helper()
	clk := clock.NewMock()
	clk.Set(time.Date(2025, 1, 15, 17, 30, 0, 0, time.UTC))
	resolver := NewAttributionResolver(reg, defaultAttributionConfig())
	return NewCaptureService(resolver, sink, clk, opts), clk
}

func TestCapture_WritesEnvelope(t *testing.T) {
	reg := portsmocks.NewMockSessionRegistry(t)
	sink := portsmocks.NewMockEventSink(t)
	la, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)

	service, clk := newTestCaptureService(t, reg, sink, CaptureOptions{Location: la, ZoneLabel: "PST"})

	reg.EXPECT().Set(mock.Anything, "abc", "engineer").Return(nil)

	var written *domain.Envelope
	sink.EXPECT().Append(mock.Anything, mock.AnythingOfType("*domain.Envelope")).
		Run(func(_ context.Context, env *domain.Envelope) { written = env }).
		Return("/tmp/events.jsonl", nil)

	input := `{"session_id":"abc","tool_name":"Task","tool_input":{"subagent_type":"engineer"},"n":12345678901234567890}`
	result, err := service.Capture(context.Background(), domain.EventPreToolUse, strings.NewReader(input))
	require.NoError(t, err)

	require.NotNil(t, written)
	assert.Equal(t, "engineer", written.SourceApp)
	assert.Equal(t, "abc", written.SessionID)
	assert.Equal(t, domain.EventPreToolUse, written.HookEventType)
	assert.Equal(t, clk.Now().UnixMilli(), written.Timestamp)
	assert.Equal(t, "2025-01-15 09:30:00 PST", written.TimestampPST)
	assert.Equal(t, json.Number("12345678901234567890"), written.Payload["n"])

	assert.Equal(t, "/tmp/events.jsonl", result.Path)
	assert.Equal(t, RuleSubagentLaunch, result.Attribution.Rule)
	assert.Same(t, written, result.Envelope)
}

func TestCapture_DefaultsMissingSession(t *testing.T) {
	reg := portsmocks.NewMockSessionRegistry(t)
	sink := portsmocks.NewMockEventSink(t)
	service, _ := newTestCaptureService(t, reg, sink, CaptureOptions{})

	reg.EXPECT().Get(mock.Anything, "main", "kai").Return("kai")
	sink.EXPECT().Append(mock.Anything, mock.Anything).Return("/tmp/x", nil)

	result, err := service.Capture(context.Background(), "Notification", strings.NewReader(`{}`))

	require.NoError(t, err)
	assert.Equal(t, "main", result.Envelope.SessionID)
	assert.Equal(t, "kai", result.Envelope.SourceApp)
	assert.Equal(t, "2025-01-15 17:30:00 UTC", result.Envelope.TimestampPST)
}

func TestCapture_InputErrorsWriteNothing(t *testing.T) {
	tests := []struct {
		name      string
		eventType string
		input     string
		expected  error
	}{
		{name: "missing event type", eventType: "", input: `{}`, expected: domain.ErrMissingEventType},
		{name: "blank event type", eventType: "   ", input: `{}`, expected: domain.ErrMissingEventType},
		{name: "empty stdin", eventType: "Stop", input: "", expected: domain.ErrInvalidPayload},
		{name: "malformed JSON", eventType: "Stop", input: `{"session_id":`, expected: domain.ErrInvalidPayload},
		{name: "array payload", eventType: "Stop", input: `[1,2,3]`, expected: domain.ErrInvalidPayload},
		{name: "string payload", eventType: "Stop", input: `"hello"`, expected: domain.ErrInvalidPayload},
		{name: "null payload", eventType: "Stop", input: `null`, expected: domain.ErrInvalidPayload},
		{name: "trailing garbage", eventType: "Stop", input: `{"a":1} {"b":2}`, expected: domain.ErrInvalidPayload},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Mocks fail the test on any unexpected call
			reg := portsmocks.NewMockSessionRegistry(t)
			sink := portsmocks.NewMockEventSink(t)
			service, _ := newTestCaptureService(t, reg, sink, CaptureOptions{})

			result, err := service.Capture(context.Background(), tt.eventType, strings.NewReader(tt.input))

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.expected)
			assert.Nil(t, result)
		})
	}
}

func TestCapture_PayloadTooLarge(t *testing.T) {
	reg := portsmocks.NewMockSessionRegistry(t)
	sink := portsmocks.NewMockEventSink(t)
	service, _ := newTestCaptureService(t, reg, sink, CaptureOptions{MaxPayloadBytes: 16})

	_, err := service.Capture(context.Background(), "Stop", strings.NewReader(`{"session_id":"a-much-longer-id"}`))

	assert.ErrorIs(t, err, domain.ErrPayloadTooLarge)
}

func TestCapture_WhitespaceAroundObjectIsAccepted(t *testing.T) {
	reg := portsmocks.NewMockSessionRegistry(t)
	sink := portsmocks.NewMockEventSink(t)
	service, _ := newTestCaptureService(t, reg, sink, CaptureOptions{})

	reg.EXPECT().Get(mock.Anything, "s1", "kai").Return("kai")
	sink.EXPECT().Append(mock.Anything, mock.Anything).Return("/tmp/x", nil)

	_, err := service.Capture(context.Background(), "Notification", strings.NewReader("\n  {\"session_id\":\"s1\"}\n\n"))

	require.NoError(t, err)
}

func TestCapture_SinkFailure(t *testing.T) {
	reg := portsmocks.NewMockSessionRegistry(t)
	sink := portsmocks.NewMockEventSink(t)
	service, _ := newTestCaptureService(t, reg, sink, CaptureOptions{})

	reg.EXPECT().Set(mock.Anything, "s1", "kai").Return(nil)
	sink.EXPECT().Append(mock.Anything, mock.Anything).Return("", errors.New("read-only file system"))

	_, err := service.Capture(context.Background(), domain.EventStop, strings.NewReader(`{"session_id":"s1"}`))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write event")
	assert.Contains(t, err.Error(), "read-only file system")
}

func TestCapture_UsesClockPerInvocation(t *testing.T) {
	reg := portsmocks.NewMockSessionRegistry(t)
	sink := portsmocks.NewMockEventSink(t)
	service, clk := newTestCaptureService(t, reg, sink, CaptureOptions{})

	reg.EXPECT().Get(mock.Anything, "s1", "kai").Return("kai")
	sink.EXPECT().Append(mock.Anything, mock.Anything).Return("/tmp/x", nil)

	first, err := service.Capture(context.Background(), "Notification", strings.NewReader(`{"session_id":"s1"}`))
	require.NoError(t, err)
	clk.Add(1500 * time.Millisecond)
	second, err := service.Capture(context.Background(), "Notification", strings.NewReader(`{"session_id":"s1"}`))
	require.NoError(t, err)

	assert.Equal(t, int64(1500), second.Envelope.Timestamp-first.Envelope.Timestamp)
}
