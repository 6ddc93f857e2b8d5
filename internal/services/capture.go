package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"

	"github.com/renato0307/hookline/internal/domain"
	"github.com/renato0307/hookline/internal/logging"
	"github.com/renato0307/hookline/internal/ports"
)

// CaptureOptions configures envelope construction
type CaptureOptions struct {
	FallbackSessionID string
	Location          *time.Location
	MaxPayloadBytes   int64
	ZoneLabel         string
}

// CaptureResult describes one successfully captured event
type CaptureResult struct {
	Attribution domain.Attribution
	Envelope    *domain.Envelope
	Path        string
}

// CaptureService turns one hook invocation into one appended envelope
type CaptureService struct {
	clock    clock.Clock
	opts     CaptureOptions
	resolver *AttributionResolver
	sink     ports.EventSink
}

// NewCaptureService creates a new CaptureService
func NewCaptureService(
	resolver *AttributionResolver,
	sink ports.EventSink,
	clk clock.Clock,
	opts CaptureOptions,
) *CaptureService {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.MaxPayloadBytes <= 0 {
		opts.MaxPayloadBytes = domain.DefaultMaxPayloadBytes
	}
	if opts.FallbackSessionID == "" {
		opts.FallbackSessionID = domain.DefaultFallbackSessionID
	}
	return &CaptureService{
		clock:    clk,
		opts:     opts,
		resolver: resolver,
		sink:     sink,
	}
}

// Capture reads the payload from r, attributes it and appends the envelope.
// Input problems are reported as errors wrapping the domain sentinels; nothing
// is written in that case.
func (s *CaptureService) Capture(ctx context.Context, eventType string, r io.Reader) (*CaptureResult, error) {
	eventType = strings.TrimSpace(eventType)
	if eventType == "" {
		return nil, domain.ErrMissingEventType
	}

	payload, err := s.DecodePayload(r)
	if err != nil {
		return nil, err
	}

	captureID := uuid.New().String()
	event := domain.NewHookEvent(eventType, payload, s.opts.FallbackSessionID)

	logging.Logger.Debugw("Capturing hook event",
		"capture_id", captureID,
		"event", event.Kind,
		"session_id", event.SessionID)

	attribution := s.resolver.Resolve(ctx, event)
	envelope := domain.NewEnvelope(event, attribution.Agent, s.clock.Now(), s.opts.Location, s.opts.ZoneLabel)

	path, err := s.sink.Append(ctx, envelope)
	if err != nil {
		return nil, fmt.Errorf("failed to write event: %w", err)
	}

	logging.Logger.Infow("Hook event captured",
		"capture_id", captureID,
		"event", event.Kind,
		"session_id", event.SessionID,
		"agent", attribution.Agent,
		"rule", attribution.Rule,
		"path", path)

	return &CaptureResult{
		Attribution: attribution,
		Envelope:    envelope,
		Path:        path,
	}, nil
}

// DecodePayload reads exactly one JSON object from r. Numbers are kept as
// json.Number so large integers round-trip into the log unchanged.
func (s *CaptureService) DecodePayload(r io.Reader) (map[string]any, error) {
	data, err := io.ReadAll(io.LimitReader(r, s.opts.MaxPayloadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read stdin: %v", domain.ErrInvalidPayload, err)
	}
	if int64(len(data)) > s.opts.MaxPayloadBytes {
		return nil, fmt.Errorf("%w: more than %d bytes", domain.ErrPayloadTooLarge, s.opts.MaxPayloadBytes)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var decoded any
	if err := dec.Decode(&decoded); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidPayload, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after JSON object", domain.ErrInvalidPayload)
	}

	payload, ok := decoded.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected a JSON object", domain.ErrInvalidPayload)
	}

	return payload, nil
}
