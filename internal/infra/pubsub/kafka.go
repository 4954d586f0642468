package pubsub

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"hubble-workspace/internal/infra/cache"
	"hubble-workspace/internal/shared_kernel/avro"

	"github.com/lovoo/goka"
)

const (
	maxRetries int = 10
	retryDelay     = 5 * time.Second
)

func NewKafkaPublisher(brokers []string, topic Topic, registry avro.SchemaRegistry, schemas cache.Cache) (*KafkaPublisher, error) {
	slog.Debug("creating kafka publisher",
		slog.String("brokers", strings.Join(brokers, ",")),
		slog.String("topic", string(topic)))

	codec := avro.NewConfluentAvroCodec(registry, string(topic), schemas)

	var lastErr error
	for try := 0; try < maxRetries; try++ {
		emitter, err := goka.NewEmitter(brokers, goka.Stream(topic), codec)
		if err == nil {
			return &KafkaPublisher{emitter: emitter, topic: topic}, nil
		}

		lastErr = err
		slog.Warn("connecting to kafka brokers",
			slog.Int("try", try+1),
			slog.String("error", err.Error()))
		time.Sleep(retryDelay)
	}

	return nil, fmt.Errorf("connecting to kafka brokers after %d retries: %w", maxRetries, lastErr)
}

type KafkaPublisher struct {
	emitter *goka.Emitter
	topic   Topic
}

func (p *KafkaPublisher) Publish(ctx context.Context, key Key, message Message) error {
	slog.Debug("publishing message", slog.String("topic", string(p.topic)), slog.String("key", string(key)))

	headers := TraceHeadersFromContext(ctx).Map()
	if err := p.emitter.EmitSyncWithHeaders(string(key), message, headers); err != nil {
		slog.Error("emitting message", slog.String("error", err.Error()))
		return fmt.Errorf("emitting %s: %w", key, err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.emitter.Finish()
}

var _ Consumer = (*KafkaConsumer)(nil)

type KafkaConsumer struct {
	brokers  []string
	group    goka.Group
	registry avro.SchemaRegistry
	schemas  cache.Cache
}

func NewKafkaConsumer(brokers []string, group string, registry avro.SchemaRegistry, schemas cache.Cache) *KafkaConsumer {
	return &KafkaConsumer{
		brokers:  brokers,
		group:    goka.Group(group),
		registry: registry,
		schemas:  schemas,
	}
}

func (c *KafkaConsumer) Consume(ctx context.Context, topic Topic, handler MessageHandler) error {
	cb := func(gctx goka.Context, msg any) {
		msgCtx := ParseTraceHeaders(gctx.Headers()).Inject(gctx.Context())
		msgCtx, span := StartConsumerSpan(msgCtx, topic)
		defer span.End()

		if err := handler(msgCtx, Key(gctx.Key()), msg); err != nil {
			slog.Error("handling message",
				slog.String("topic", string(topic)),
				slog.String("key", gctx.Key()),
				slog.String("error", err.Error()))
		}
	}

	codec := avro.NewConfluentAvroCodec(c.registry, string(topic), c.schemas)
	group := goka.DefineGroup(c.group, goka.Input(goka.Stream(topic), codec, cb))

	processor, err := goka.NewProcessor(c.brokers, group)
	if err != nil {
		return fmt.Errorf("creating processor for %s: %w", topic, err)
	}
	return processor.Run(ctx)
}
