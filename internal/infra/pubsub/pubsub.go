package pubsub

import "context"

//go:generate mockgen -source=pubsub.go -destination=../../../test/unit/doubles/infra/pubsub/pubsub_mock.go -package=pubsub -mock_names=ConsumerFactory=MockConsumerFactory,Consumer=MockConsumer,PublisherFactory=MockPublisherFactory,Publisher=MockPublisher

type PublisherFactory interface {
	New(Topic) (Publisher, error)
}

type Publisher interface {
	Publish(context.Context, Key, Message) error
}

type Key string
type Message any

type ConsumerFactory interface {
	New() Consumer
}

// Consume blocks until ctx is done or the consumer fails.
type Consumer interface {
	Consume(context.Context, Topic, MessageHandler) error
}

type Topic string
type MessageHandler func(context.Context, Key, Message) error

const RecordEventsTopic Topic = "record_events"
