package driver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/websocket"
)

type APIDriver struct {
	baseURL string
	client  *http.Client
}

func NewAPIDriver(baseURL string) *APIDriver {
	return &APIDriver{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (d *APIDriver) GetHealthz() (*http.Response, error) {
	return d.client.Get(fmt.Sprintf("%s/healthz", d.baseURL))
}

func (d *APIDriver) CreateRecord(resource string, body map[string]any) (*http.Response, error) {
	return d.send(http.MethodPost, fmt.Sprintf("%s/api/v1/%s", d.baseURL, resource), body)
}

func (d *APIDriver) GetRecord(resource, identifier string) (*http.Response, error) {
	return d.client.Get(fmt.Sprintf("%s/api/v1/%s/%s", d.baseURL, resource, url.PathEscape(identifier)))
}

func (d *APIDriver) UpdateRecord(resource, identifier string, body map[string]any) (*http.Response, error) {
	return d.send(http.MethodPut, fmt.Sprintf("%s/api/v1/%s/%s", d.baseURL, resource, url.PathEscape(identifier)), body)
}

func (d *APIDriver) ListRecords(resource string, page, limit int) (*http.Response, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("page", strconv.Itoa(page))
		query.Set("limit", strconv.Itoa(limit))
	}
	return d.client.Get(fmt.Sprintf("%s/api/v1/%s?%s", d.baseURL, resource, query.Encode()))
}

func (d *APIDriver) GetAnalytics() (*http.Response, error) {
	return d.client.Get(fmt.Sprintf("%s/api/v1/analytics", d.baseURL))
}

func (d *APIDriver) ListViews() (*http.Response, error) {
	return d.client.Get(fmt.Sprintf("%s/api/v1/workspace/views", d.baseURL))
}

func (d *APIDriver) RenderView(view string, params map[string]string) (*http.Response, error) {
	query := url.Values{}
	for key, value := range params {
		query.Set(key, value)
	}
	return d.client.Get(fmt.Sprintf("%s/api/v1/workspace/views/%s?%s", d.baseURL, view, query.Encode()))
}

func (d *APIDriver) OpenForm(form string, quickAdd bool) (*http.Response, error) {
	return d.client.Get(fmt.Sprintf("%s/api/v1/workspace/forms/%s?quick_add=%t", d.baseURL, form, quickAdd))
}

func (d *APIDriver) SubmitForm(form string, values map[string]any) (*http.Response, error) {
	return d.send(http.MethodPost, fmt.Sprintf("%s/api/v1/workspace/forms/%s", d.baseURL, form), values)
}

func (d *APIDriver) GetAddDialog() (*http.Response, error) {
	return d.client.Get(fmt.Sprintf("%s/api/v1/workspace/add-dialog", d.baseURL))
}

func (d *APIDriver) ConnectNotifications() (*websocket.Conn, error) {
	wsURL := "ws" + strings.TrimPrefix(d.baseURL, "http") + "/ws/notifications"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	return conn, err
}

func (d *APIDriver) send(method, target string, body map[string]any) (*http.Response, error) {
	reqBody, err := json.Marshal(body)
	if err != nil {
		panic(err)
	}
	req, err := http.NewRequest(method, target, bytes.NewBuffer(reqBody))
	if err != nil {
		panic(err)
	}
	req.Header.Set("Content-Type", "application/json")
	return d.client.Do(req)
}
