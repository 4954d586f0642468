package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"sync/atomic"
	"time"

	"hubble-workspace/internal/infra/httpserver"
	shareddomain "hubble-workspace/internal/shared_kernel/domain"
	"hubble-workspace/internal/workspace/usecases"

	"github.com/go-resty/resty/v2"
	lru "github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	recordsPath = "/api/v1/{resource}"
	recordPath  = "/api/v1/{resource}/{identifier}"
)

type Config struct {
	BaseURL   string
	Timeout   time.Duration
	CacheSize int
	CacheTTL  time.Duration
}

func DefaultConfig(baseURL string) Config {
	return Config{
		BaseURL:   baseURL,
		Timeout:   10 * time.Second,
		CacheSize: 128,
		CacheTTL:  30 * time.Second,
	}
}

var _ usecases.RecordService = &RecordClient{}

// RecordClient talks to the record API. Successful GET bodies are kept for
// CacheTTL and every write drops them. Requests are never retried.
type RecordClient struct {
	http  *resty.Client
	cache *lru.LRU[string, []byte]
	seq   atomic.Uint64
}

func NewRecordClient(config Config) *RecordClient {
	restClient := resty.New().
		SetBaseURL(config.BaseURL).
		SetTimeout(config.Timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &RecordClient{
		http:  restClient,
		cache: lru.NewLRU[string, []byte](config.CacheSize, nil, config.CacheTTL),
	}
}

func (c *RecordClient) List(ctx context.Context, resource shareddomain.Resource, params map[string]string) (shareddomain.PageResult, error) {
	var result shareddomain.PageResult
	err := c.get(ctx, "listing "+resource.String(), &result, func(r *resty.Request) (string, string) {
		query := url.Values{}
		for key, value := range params {
			query.Set(key, value)
		}
		r.SetPathParam("resource", resource.String()).SetQueryParamsFromValues(query)
		return recordsPath, resource.String() + "?" + query.Encode()
	})
	return result, err
}

func (c *RecordClient) Get(ctx context.Context, resource shareddomain.Resource, identifier shareddomain.ID) (shareddomain.Record, error) {
	var record shareddomain.Record
	err := c.get(ctx, fmt.Sprintf("getting %s %s", resource.Singular(), identifier), &record, func(r *resty.Request) (string, string) {
		r.SetPathParams(map[string]string{"resource": resource.String(), "identifier": identifier.String()})
		return recordPath, resource.String() + "/" + identifier.String()
	})
	return record, err
}

func (c *RecordClient) Create(ctx context.Context, resource shareddomain.Resource, body shareddomain.Record) (shareddomain.Record, error) {
	request := c.request(ctx).
		SetPathParam("resource", resource.String()).
		SetBody(body)

	var record shareddomain.Record
	err := c.write(request, http.MethodPost, recordsPath, "creating "+resource.Singular(), &record)
	return record, err
}

func (c *RecordClient) Update(ctx context.Context, resource shareddomain.Resource, identifier shareddomain.ID, body shareddomain.Record) (shareddomain.Record, error) {
	request := c.request(ctx).
		SetPathParams(map[string]string{"resource": resource.String(), "identifier": identifier.String()}).
		SetBody(body)

	var record shareddomain.Record
	err := c.write(request, http.MethodPut, recordPath, fmt.Sprintf("updating %s %s", resource.Singular(), identifier), &record)
	return record, err
}

func (c *RecordClient) request(ctx context.Context) *resty.Request {
	return c.http.R().
		SetContext(ctx).
		SetHeader(httpserver.RequestSeqHeader, strconv.FormatUint(c.seq.Add(1), 10))
}

// get serves from the cache when it can. prepare fills the request and
// returns the path template along with the cache key.
func (c *RecordClient) get(ctx context.Context, op string, out any, prepare func(*resty.Request) (string, string)) error {
	request := c.request(ctx)
	path, key := prepare(request)

	if body, ok := c.cache.Get(key); ok {
		return decode(op, body, out)
	}

	body, err := c.execute(request, http.MethodGet, path, op)
	if err != nil {
		return err
	}
	if err := decode(op, body, out); err != nil {
		return err
	}

	c.cache.Add(key, body)
	return nil
}

func (c *RecordClient) write(request *resty.Request, method, path, op string, out any) error {
	body, err := c.execute(request, method, path, op)
	c.cache.Purge()
	if err != nil {
		return err
	}
	return decode(op, body, out)
}

func (c *RecordClient) execute(request *resty.Request, method, path, op string) ([]byte, error) {
	response, err := request.Execute(method, path)
	if err != nil {
		return nil, &NetworkFailure{Op: op, Err: err}
	}

	if response.IsError() {
		return nil, statusError(op, response)
	}
	return response.Body(), nil
}

func statusError(op string, response *resty.Response) error {
	var body httpserver.ErrorResponse
	_ = json.Unmarshal(response.Body(), &body)

	if response.StatusCode() == http.StatusNotFound {
		return fmt.Errorf("%s: %w", op, usecases.ErrRecordNotFound)
	}
	return &StatusError{Op: op, Status: response.StatusCode(), Message: body.Message}
}

func decode(op string, body []byte, out any) error {
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%s: decoding response: %w", op, err)
	}
	return nil
}
