package client_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"time"

	"hubble-workspace/internal/billing/client"
	"hubble-workspace/internal/billing/httpapi"
	"hubble-workspace/internal/billing/persistence"
	billingusecases "hubble-workspace/internal/billing/usecases"
	"hubble-workspace/internal/infra/httpserver"
	"hubble-workspace/internal/infra/pubsub"
	shareddomain "hubble-workspace/internal/shared_kernel/domain"
	"hubble-workspace/internal/workspace/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// requestLog remembers every request that reached the server.
type requestLog struct {
	mu       sync.Mutex
	paths    []string
	sequence []uint64
}

func (l *requestLog) wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		l.mu.Lock()
		l.paths = append(l.paths, r.Method+" "+r.URL.Path)
		seq, _ := strconv.ParseUint(r.Header.Get(httpserver.RequestSeqHeader), 10, 64)
		l.sequence = append(l.sequence, seq)
		l.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (l *requestLog) count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.paths)
}

var _ = Describe("RecordClient", func() {
	var (
		ctx        context.Context
		server     *httptest.Server
		log        *requestLog
		repository *persistence.MemoryRecordRepository
		records    *client.RecordClient
	)

	BeforeEach(func() {
		ctx = context.Background()
		log = &requestLog{}

		publisher, err := pubsub.NewMemoryPublisherFactory(pubsub.NewMemoryBroker()).New(pubsub.RecordEventsTopic)
		Expect(err).NotTo(HaveOccurred())
		repository = persistence.NewMemoryRecordRepository()
		router := http.NewServeMux()
		httpapi.NewRecordController(billingusecases.NewRecordService(repository, publisher)).AddRoutes(router)

		server = httptest.NewServer(log.wrap(router))
		records = client.NewRecordClient(client.DefaultConfig(server.URL))

		Expect(repository.Insert(ctx, shareddomain.ResourcePlans, shareddomain.Record{
			"id": "1", "identifier": "gold", "name": "Gold", "createdAt": time.Now().UTC(),
		})).To(Succeed())
		Expect(repository.Insert(ctx, shareddomain.ResourcePlans, shareddomain.Record{
			"id": "2", "identifier": "silver", "name": "Silver", "createdAt": time.Now().UTC(),
		})).To(Succeed())
	})

	AfterEach(func() {
		server.Close()
	})

	It("lists a page of records", func() {
		result, err := records.List(ctx, shareddomain.ResourcePlans, map[string]string{"page": "1", "limit": "1"})

		Expect(err).NotTo(HaveOccurred())
		Expect(result.TotalRecords).To(Equal(2))
		Expect(result.Records).To(HaveLen(1))
		Expect(result.Records[0].Identifier()).To(Equal(shareddomain.ID("silver")))
	})

	It("reads a record with its times as text", func() {
		record, err := records.Get(ctx, shareddomain.ResourcePlans, "gold")

		Expect(err).NotTo(HaveOccurred())
		Expect(record.String("name")).To(Equal("Gold"))
		_, ok := record.Time("createdAt")
		Expect(ok).To(BeTrue())
	})

	It("serves repeated reads from its cache", func() {
		_, err := records.Get(ctx, shareddomain.ResourcePlans, "gold")
		Expect(err).NotTo(HaveOccurred())
		_, err = records.Get(ctx, shareddomain.ResourcePlans, "gold")
		Expect(err).NotTo(HaveOccurred())

		Expect(log.count()).To(Equal(1))
	})

	It("drops cached reads after a write", func() {
		before, err := records.List(ctx, shareddomain.ResourcePlans, nil)
		Expect(err).NotTo(HaveOccurred())

		created, err := records.Create(ctx, shareddomain.ResourcePlans, shareddomain.Record{"name": "Bronze"})
		Expect(err).NotTo(HaveOccurred())
		Expect(created.Identifier()).NotTo(BeEmpty())
		Expect(created.String("id")).NotTo(BeEmpty())

		after, err := records.List(ctx, shareddomain.ResourcePlans, nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(after.TotalRecords).To(Equal(before.TotalRecords + 1))
		Expect(log.count()).To(Equal(3))
	})

	It("tags every request with an increasing sequence number", func() {
		for range 3 {
			_, err := records.List(ctx, shareddomain.ResourcePlans, map[string]string{"page": strconv.Itoa(log.count())})
			Expect(err).NotTo(HaveOccurred())
		}

		Expect(log.sequence).To(Equal([]uint64{1, 2, 3}))
	})

	It("updates a record", func() {
		updated, err := records.Update(ctx, shareddomain.ResourcePlans, "gold", shareddomain.Record{"identifier": "gold", "name": "Gold+"})

		Expect(err).NotTo(HaveOccurred())
		Expect(updated.String("name")).To(Equal("Gold+"))
		Expect(updated.String("id")).To(Equal("1"))
	})

	It("reports a missing record as not found", func() {
		_, err := records.Get(ctx, shareddomain.ResourcePlans, "platinum")

		Expect(err).To(MatchError(usecases.ErrRecordNotFound))
	})

	It("reports rejected writes with their status", func() {
		_, err := records.Update(ctx, shareddomain.ResourcePlans, "gold", shareddomain.Record{"identifier": "silver"})

		var statusErr *client.StatusError
		Expect(errors.As(err, &statusErr)).To(BeTrue())
		Expect(statusErr.Status).To(Equal(http.StatusConflict))
		Expect(statusErr.Message).To(Equal("identifier cannot be changed"))
	})

	It("reports an unreachable server as a network failure", func() {
		server.Close()

		_, err := records.List(ctx, shareddomain.ResourcePlans, nil)

		var failure *client.NetworkFailure
		Expect(errors.As(err, &failure)).To(BeTrue())
		Expect(failure.Op).To(Equal("listing plans"))
		Expect(failure.Unwrap()).To(HaveOccurred())
	})
})
