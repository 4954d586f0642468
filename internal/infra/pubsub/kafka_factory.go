package pubsub

import (
	"fmt"

	"hubble-workspace/internal/infra/cache"
	"hubble-workspace/internal/shared_kernel/avro"
)

var _ PublisherFactory = (*KafkaPublisherFactory)(nil)

type KafkaFactoryOptions struct {
	Brokers           []string
	SchemaRegistryURL string
	Group             string
	Schemas           cache.Cache
}

func NewKafkaPublisherFactory(opts KafkaFactoryOptions) *KafkaPublisherFactory {
	return &KafkaPublisherFactory{
		brokers:  opts.Brokers,
		registry: avro.NewSchemaRegistry(opts.SchemaRegistryURL),
		schemas:  opts.Schemas,
	}
}

type KafkaPublisherFactory struct {
	brokers  []string
	registry avro.SchemaRegistry
	schemas  cache.Cache
}

func (f *KafkaPublisherFactory) New(topic Topic) (Publisher, error) {
	publisher, err := NewKafkaPublisher(f.brokers, topic, f.registry, f.schemas)
	if err != nil {
		return nil, fmt.Errorf("creating publisher: %w", err)
	}
	return publisher, nil
}

var _ ConsumerFactory = (*KafkaConsumerFactory)(nil)

func NewKafkaConsumerFactory(opts KafkaFactoryOptions) *KafkaConsumerFactory {
	return &KafkaConsumerFactory{
		brokers:  opts.Brokers,
		group:    opts.Group,
		registry: avro.NewSchemaRegistry(opts.SchemaRegistryURL),
		schemas:  opts.Schemas,
	}
}

type KafkaConsumerFactory struct {
	brokers  []string
	group    string
	registry avro.SchemaRegistry
	schemas  cache.Cache
}

func (f *KafkaConsumerFactory) New() Consumer {
	return NewKafkaConsumer(f.brokers, f.group, f.registry, f.schemas)
}
