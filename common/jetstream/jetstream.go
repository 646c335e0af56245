package jetstream

import (
	"context"
	"github.com/nats-io/nats.go/jetstream"
	"masjid-events/common/constant"
)

//go:generate mockgen -destination=mocks/publisher.go -package=mocks github.com/nats-io/nats.go/jetstream Publisher

func CreateQueueStream(ctx context.Context, js jetstream.JetStream) jetstream.Stream {
	cfg := jetstream.StreamConfig{
		Name:      constant.QueueStreamName,
		Retention: jetstream.WorkQueuePolicy,
		Subjects:  []string{constant.NotifyWildcard},
		MaxBytes:  5 * 1024 * 1024,
	}

	st, err := js.CreateOrUpdateStream(ctx, cfg)
	if err != nil {
		panic(err)
	}

	return st
}
