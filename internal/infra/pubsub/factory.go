package pubsub

import "hubble-workspace/internal/infra/cache"

const EnvironmentLocal = "local"

// Factory picks the memory broker for the local environment and Kafka for
// every other one.
type Factory struct {
	publisherFactory PublisherFactory
	consumerFactory  ConsumerFactory
}

type FactoryOptions struct {
	Environment       string
	KafkaBrokers      []string
	SchemaRegistryURL string
	ConsumerGroup     string
	Broker            *MemoryBroker
	Schemas           cache.Cache
}

func NewFactory(opts FactoryOptions) *Factory {
	if opts.Environment == EnvironmentLocal {
		broker := opts.Broker
		if broker == nil {
			broker = NewMemoryBroker()
		}
		return &Factory{
			publisherFactory: NewMemoryPublisherFactory(broker),
			consumerFactory:  NewMemoryConsumerFactory(broker, opts.ConsumerGroup),
		}
	}

	kafka := KafkaFactoryOptions{
		Brokers:           opts.KafkaBrokers,
		SchemaRegistryURL: opts.SchemaRegistryURL,
		Group:             opts.ConsumerGroup,
		Schemas:           opts.Schemas,
	}
	return &Factory{
		publisherFactory: NewKafkaPublisherFactory(kafka),
		consumerFactory:  NewKafkaConsumerFactory(kafka),
	}
}

func (f *Factory) GetPublisherFactory() PublisherFactory {
	return f.publisherFactory
}

func (f *Factory) GetConsumerFactory() ConsumerFactory {
	return f.consumerFactory
}
