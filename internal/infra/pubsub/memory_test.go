package pubsub_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"hubble-workspace/internal/infra/pubsub"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"go.uber.org/goleak"
)

type received struct {
	key     pubsub.Key
	message pubsub.Message
}

type collector struct {
	mu    sync.Mutex
	items []received
}

func (c *collector) handle(_ context.Context, key pubsub.Key, message pubsub.Message) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, received{key: key, message: message})
	return nil
}

func (c *collector) snapshot() []received {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]received(nil), c.items...)
}

var _ = ginkgo.Describe("MemoryBroker", func() {
	const topic pubsub.Topic = "record_events"

	var (
		broker *pubsub.MemoryBroker
		ctx    context.Context
		cancel context.CancelFunc
		done   sync.WaitGroup
	)

	ginkgo.BeforeEach(func() {
		ignore := goleak.IgnoreCurrent()
		broker = pubsub.NewMemoryBroker()
		ctx, cancel = context.WithCancel(context.Background())

		ginkgo.DeferCleanup(func() {
			cancel()
			done.Wait()
			goleak.VerifyNone(ginkgo.GinkgoT(), ignore)
		})
	})

	consume := func(group string, handler pubsub.MessageHandler) {
		consumer := pubsub.NewMemoryConsumerFactory(broker, group).New()
		done.Add(1)
		go func() {
			defer done.Done()
			defer ginkgo.GinkgoRecover()
			gomega.Expect(consumer.Consume(ctx, topic, handler)).To(gomega.Succeed())
		}()
		gomega.Eventually(func() bool { return broker.Subscribed(topic, group) }).Should(gomega.BeTrue())
	}

	ginkgo.It("delivers messages in publish order", func() {
		got := &collector{}
		consume("analytics", got.handle)

		publisher, err := pubsub.NewMemoryPublisherFactory(broker).New(topic)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		for _, key := range []pubsub.Key{"plan-1", "plan-2", "plan-3"} {
			gomega.Expect(publisher.Publish(ctx, key, "created")).To(gomega.Succeed())
		}

		gomega.Eventually(got.snapshot).Should(gomega.HaveLen(3))
		items := got.snapshot()
		gomega.Expect(items[0].key).To(gomega.Equal(pubsub.Key("plan-1")))
		gomega.Expect(items[2].key).To(gomega.Equal(pubsub.Key("plan-3")))
		gomega.Expect(items[1].message).To(gomega.Equal("created"))
	})

	ginkgo.It("delivers each message once per group", func() {
		first := &collector{}
		second := &collector{}
		consume("analytics", first.handle)
		consume("audit", second.handle)

		gomega.Expect(broker.Publish(ctx, topic, "inv-1", "updated")).To(gomega.Succeed())

		gomega.Eventually(first.snapshot).Should(gomega.HaveLen(1))
		gomega.Eventually(second.snapshot).Should(gomega.HaveLen(1))
		gomega.Consistently(first.snapshot, 50*time.Millisecond).Should(gomega.HaveLen(1))
	})

	ginkgo.It("accepts messages nobody listens to", func() {
		gomega.Expect(broker.Publish(ctx, topic, "acc-1", "created")).To(gomega.Succeed())
		gomega.Expect(broker.Subscribed(topic, "analytics")).To(gomega.BeFalse())
	})

	ginkgo.It("keeps consuming after a failing or panicking handler", func() {
		got := &collector{}
		consume("analytics", func(ctx context.Context, key pubsub.Key, message pubsub.Message) error {
			switch key {
			case "boom":
				panic("handler exploded")
			case "fail":
				return errors.New("handler failed")
			}
			return got.handle(ctx, key, message)
		})

		gomega.Expect(broker.Publish(ctx, topic, "boom", nil)).To(gomega.Succeed())
		gomega.Expect(broker.Publish(ctx, topic, "fail", nil)).To(gomega.Succeed())
		gomega.Expect(broker.Publish(ctx, topic, "ok", nil)).To(gomega.Succeed())

		gomega.Eventually(got.snapshot).Should(gomega.HaveLen(1))
		gomega.Expect(got.snapshot()[0].key).To(gomega.Equal(pubsub.Key("ok")))
	})

	ginkgo.It("stops consuming when the context ends", func() {
		consume("analytics", (&collector{}).handle)
		cancel()
		done.Wait()

		gomega.Expect(broker.Publish(context.Background(), topic, "late", nil)).To(gomega.Succeed())
		gomega.Expect(broker.Pending(topic, "analytics")).To(gomega.Equal(1))
	})

	ginkgo.It("passes a context that outlives the publisher's", func() {
		seen := make(chan error, 1)
		consume("analytics", func(ctx context.Context, _ pubsub.Key, _ pubsub.Message) error {
			seen <- ctx.Err()
			return nil
		})

		publishCtx, stop := context.WithCancel(context.Background())
		gomega.Expect(broker.Publish(publishCtx, topic, "acc-1", nil)).To(gomega.Succeed())
		stop()

		gomega.Eventually(seen).Should(gomega.Receive(gomega.BeNil()))
	})
})
