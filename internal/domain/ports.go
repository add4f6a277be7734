package domain

import "context"

type LaunchSource interface {
	Upcoming(ctx context.Context) (Payload, error)
}

type Notifier interface {
	Notify(ctx context.Context, title, body, url string) error
}

type ModelSink interface {
	Write(ctx context.Context, s Snapshot) error
}
