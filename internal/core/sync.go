package core

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// RelaySyncer forwards bridge relay events to the chain as new blocks arrive.
// The block cursor lives in memory and starts at the chain head.
type RelaySyncer struct {
	logs    *zap.SugaredLogger
	source  RelayEventSource
	mu      sync.Mutex
	started bool
	next    uint64
}

func NewRelaySyncer(logger *zap.SugaredLogger, source RelayEventSource) *RelaySyncer {
	return &RelaySyncer{
		logs:   logger,
		source: source,
	}
}

// Sync applies the relay events of every block since the previous call.
// The cursor only moves once the events are applied.
func (s *RelaySyncer) Sync(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	latest, err := s.source.BlockNumber(ctx)
	if err != nil {
		return fmt.Errorf("get block number: %w", err)
	}

	if !s.started {
		s.next = latest
		s.started = true
	}

	if latest < s.next {
		return nil
	}

	head, err := s.source.GetBlockByNumber(ctx, latest)
	if err != nil {
		return fmt.Errorf("get block %d: %w", latest, err)
	}
	if head == nil {
		// the execution service reports heads it cannot serve yet
		s.logs.Infow("head block not available yet", "block_number", latest)
		return nil
	}

	events, err := s.source.RelayEvents(ctx, s.next, latest)
	if err != nil {
		return fmt.Errorf("get relay events: %w", err)
	}

	if !isEmptyEvents(events) {
		if err := s.source.ApplyRelayEvents(ctx, events); err != nil {
			return fmt.Errorf("apply relay events: %w", err)
		}

		s.logs.Infow("relay events applied",
			"from_block", s.next,
			"to_block", latest,
			"to_block_hash", head.Hash)
	}

	s.next = latest + 1
	return nil
}

func isEmptyEvents(events json.RawMessage) bool {
	trimmed := bytes.TrimSpace(events)
	switch string(trimmed) {
	case "", "null", "[]", "{}":
		return true
	}
	return false
}
