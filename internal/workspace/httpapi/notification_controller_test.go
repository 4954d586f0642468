package httpapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"hubble-workspace/internal/infra/async"
	"hubble-workspace/internal/workspace/domain"
	"hubble-workspace/internal/workspace/httpapi"
	"hubble-workspace/internal/workspace/usecases"

	"github.com/gorilla/websocket"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("NotificationController", func() {
	var (
		ctx        context.Context
		broker     *async.LocalBroker
		controller *httpapi.NotificationController
		server     *httptest.Server
		notifier   *usecases.BrokerNotifier
	)

	type message struct {
		Type     string `json:"type"`
		Message  string `json:"message"`
		Category string `json:"category"`
		Open     bool   `json:"open"`
	}

	dial := func() *websocket.Conn {
		url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/notifications"
		conn, _, err := websocket.DefaultDialer.Dial(url, nil)
		Expect(err).NotTo(HaveOccurred())
		return conn
	}

	read := func(conn *websocket.Conn) message {
		var msg message
		Expect(conn.SetReadDeadline(time.Now().Add(2 * time.Second))).To(Succeed())
		Expect(conn.ReadJSON(&msg)).To(Succeed())
		return msg
	}

	BeforeEach(func() {
		ctx = context.Background()
		broker = async.NewLocalBroker()
		notifier = usecases.NewBrokerNotifier(broker)

		var err error
		controller, err = httpapi.NewNotificationController(broker)
		Expect(err).NotTo(HaveOccurred())

		router := http.NewServeMux()
		controller.AddRoutes(router)
		server = httptest.NewServer(router)
	})

	AfterEach(func() {
		controller.Shutdown()
		server.Close()
	})

	It("delivers notifications to every connected client", func() {
		first := dial()
		defer first.Close()
		second := dial()
		defer second.Close()
		Eventually(controller.Clients).Should(Equal(2))

		notifier.Show(ctx, "Saving transaction...", domain.CategoryLoading)

		for _, conn := range []*websocket.Conn{first, second} {
			Expect(read(conn)).To(Equal(message{
				Type:     usecases.NotificationShowEvent,
				Message:  "Saving transaction...",
				Category: "LOADING",
				Open:     true,
			}))
		}
	})

	It("delivers close events", func() {
		conn := dial()
		defer conn.Close()
		Eventually(controller.Clients).Should(Equal(1))

		notifier.Close(ctx)

		Expect(read(conn)).To(Equal(message{Type: usecases.NotificationCloseEvent}))
	})

	It("forgets clients that disconnect", func() {
		conn := dial()
		Eventually(controller.Clients).Should(Equal(1))

		Expect(conn.Close()).To(Succeed())

		Eventually(controller.Clients).Should(BeZero())
	})
})
