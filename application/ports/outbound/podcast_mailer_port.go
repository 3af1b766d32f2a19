package outbound

import "context"

type PodcastMailerPort interface {
	Send(ctx context.Context, to string, audioPath string) error
}
