package usecases

import (
	"context"
	"fmt"
	"time"
)

type Pinger interface {
	Ping(ctx context.Context, timeout time.Duration) error
}

// PingStore checks that the reservation store answers within Timeout.
type PingStore struct {
	Store   Pinger
	Timeout time.Duration
}

func (u PingStore) Execute(ctx context.Context) error {
	if u.Store == nil {
		return fmt.Errorf("store is nil")
	}
	if err := u.Store.Ping(ctx, u.Timeout); err != nil {
		return fmt.Errorf("ping store: %w", err)
	}
	return nil
}
