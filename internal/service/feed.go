package service

import (
	"context"
	"time"

	"github.com/faridmohammadi00/entrypoint-app/internal/store"
)

type Publisher interface {
	Publish(ctx context.Context, key string, v any)
}

// StateEvent is one settled store action as published to the state feed.
type StateEvent struct {
	Type      string      `json:"type"`
	Slice     string      `json:"slice"`
	Phase     store.Phase `json:"phase,omitempty"`
	RequestID uint64      `json:"requestId,omitempty"`
	Error     string      `json:"error,omitempty"`
	Payload   any         `json:"payload,omitempty"`
	At        time.Time   `json:"at"`
}

// Feed forwards settled actions to p. Pending phases are skipped and auth
// payloads never leave the process.
func Feed(p Publisher) func(store.Action) {
	return func(a store.Action) {
		if a.Phase == store.PhasePending {
			return
		}

		ev := StateEvent{
			Type:      a.Type,
			Slice:     a.Slice,
			Phase:     a.Phase,
			RequestID: a.RequestID,
			Error:     a.Error,
			Payload:   a.Payload,
			At:        time.Now().UTC(),
		}

		if a.Slice == "auth" {
			ev.Payload = nil
		}

		p.Publish(context.Background(), a.Slice, ev)
	}
}
