package pubsub

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

const defaultMemoryBuffer = 256

var ErrBufferFull = fmt.Errorf("memory topic buffer full")

// MemoryBroker delivers every message to one consumer per group, in publish
// order per topic.
type MemoryBroker struct {
	mu     sync.RWMutex
	topics map[Topic]*memoryTopic
	buffer int
}

type memoryTopic struct {
	mu     sync.RWMutex
	groups map[string]chan memoryMessage
}

type memoryMessage struct {
	ctx     context.Context
	key     Key
	message Message
}

func NewMemoryBroker() *MemoryBroker {
	return &MemoryBroker{
		topics: make(map[Topic]*memoryTopic),
		buffer: defaultMemoryBuffer,
	}
}

func (b *MemoryBroker) topic(name Topic) *memoryTopic {
	b.mu.Lock()
	defer b.mu.Unlock()

	t, ok := b.topics[name]
	if !ok {
		t = &memoryTopic{groups: make(map[string]chan memoryMessage)}
		b.topics[name] = t
	}
	return t
}

func (b *MemoryBroker) Publish(ctx context.Context, topic Topic, key Key, message Message) error {
	t := b.topic(topic)

	t.mu.RLock()
	defer t.mu.RUnlock()

	for group, queue := range t.groups {
		select {
		case queue <- memoryMessage{ctx: context.WithoutCancel(ctx), key: key, message: message}:
		default:
			slog.Warn("dropping message", slog.String("topic", string(topic)), slog.String("group", group))
			return fmt.Errorf("%w: %s/%s", ErrBufferFull, topic, group)
		}
	}
	return nil
}

// Subscribe runs handler for each message of topic delivered to group until ctx is done.
func (b *MemoryBroker) Subscribe(ctx context.Context, topic Topic, group string, handler MessageHandler) error {
	t := b.topic(topic)

	t.mu.Lock()
	queue, ok := t.groups[group]
	if !ok {
		queue = make(chan memoryMessage, b.buffer)
		t.groups[group] = queue
	}
	t.mu.Unlock()

	for {
		select {
		case <-ctx.Done():
			return nil
		case msg := <-queue:
			b.dispatch(topic, handler, msg)
		}
	}
}

func (b *MemoryBroker) dispatch(topic Topic, handler MessageHandler, msg memoryMessage) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("panic in message handler", slog.String("topic", string(topic)), slog.Any("panic", r))
		}
	}()

	if err := handler(msg.ctx, msg.key, msg.message); err != nil {
		slog.Error("handling message",
			slog.String("topic", string(topic)),
			slog.String("key", string(msg.key)),
			slog.String("error", err.Error()))
	}
}

func (b *MemoryBroker) Subscribed(topic Topic, group string) bool {
	t := b.topic(topic)

	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.groups[group]
	return ok
}

// Pending reports the messages waiting for group on topic.
func (b *MemoryBroker) Pending(topic Topic, group string) int {
	t := b.topic(topic)

	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.groups[group])
}

var _ PublisherFactory = (*MemoryPublisherFactory)(nil)

type MemoryPublisherFactory struct {
	broker *MemoryBroker
}

func NewMemoryPublisherFactory(broker *MemoryBroker) *MemoryPublisherFactory {
	return &MemoryPublisherFactory{broker: broker}
}

func (f *MemoryPublisherFactory) New(topic Topic) (Publisher, error) {
	return &MemoryPublisher{broker: f.broker, topic: topic}, nil
}

type MemoryPublisher struct {
	broker *MemoryBroker
	topic  Topic
}

func (p *MemoryPublisher) Publish(ctx context.Context, key Key, message Message) error {
	return p.broker.Publish(ctx, p.topic, key, message)
}

var _ ConsumerFactory = (*MemoryConsumerFactory)(nil)

type MemoryConsumerFactory struct {
	broker *MemoryBroker
	group  string
}

func NewMemoryConsumerFactory(broker *MemoryBroker, group string) *MemoryConsumerFactory {
	return &MemoryConsumerFactory{broker: broker, group: group}
}

func (f *MemoryConsumerFactory) New() Consumer {
	return &MemoryConsumer{broker: f.broker, group: f.group}
}

type MemoryConsumer struct {
	broker *MemoryBroker
	group  string
}

func (c *MemoryConsumer) Consume(ctx context.Context, topic Topic, handler MessageHandler) error {
	return c.broker.Subscribe(ctx, topic, c.group, handler)
}
