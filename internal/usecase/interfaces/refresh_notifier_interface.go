package interfaces

import "context"

// IRefreshNotifier tells every running instance that the entity caches are stale.
type IRefreshNotifier interface {
	Publish(ctx context.Context, reason string) error
}
