package ports

import "context"

// PublisherPort posts formatted chunks to the social network. Chunks after
// the first become replies to the previous one, forming a linear thread.
type PublisherPort interface {
	Login(ctx context.Context, identifier, password string) error
	PublishThread(ctx context.Context, parts []string) error
}
