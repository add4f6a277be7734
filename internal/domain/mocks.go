package domain

import (
	"context"
)

type MockSource struct {
	Payload Payload
	Err     error
	Called  int
}

func (m *MockSource) Upcoming(ctx context.Context) (Payload, error) {
	m.Called++
	if m.Err != nil {
		return Payload{}, m.Err
	}
	return m.Payload, nil
}

type MockNotifier struct {
	Messages []string
	Err      error
}

func (n *MockNotifier) Notify(ctx context.Context, title, body, url string) error {
	n.Messages = append(n.Messages, title+"|"+body+"|"+url)
	return n.Err
}

type MockSink struct {
	Snapshots []Snapshot
	Err       error
}

func (c *MockSink) Write(ctx context.Context, s Snapshot) error {
	if c.Err != nil {
		return c.Err
	}
	c.Snapshots = append(c.Snapshots, s)
	return nil
}
