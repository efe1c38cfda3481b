package api

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"cricket-roster/internal/constants"

	"github.com/valyala/fasthttp"
)

var ErrNotModified = errors.New("catalog not modified")

// CatalogClient downloads player catalogs over HTTP and remembers validators
// per URL so unchanged catalogs are not downloaded twice.
type CatalogClient struct {
	client      *fasthttp.Client
	validatorMu sync.RWMutex
	validators  map[string]Validators
}

type Validators struct {
	ETag         string
	LastModified string
	UpdatedAt    time.Time
}

func NewCatalogClient() *CatalogClient {
	return &CatalogClient{
		client: &fasthttp.Client{
			MaxConnsPerHost:     16,
			ReadTimeout:         constants.ExternalAPITimeout,
			WriteTimeout:        constants.ExternalAPITimeout,
			MaxIdleConnDuration: 1 * time.Minute,
			MaxResponseBodySize: constants.MaxCatalogBytes,
		},
		validators: make(map[string]Validators),
	}
}

func (c *CatalogClient) GetValidators(url string) Validators {
	c.validatorMu.RLock()
	defer c.validatorMu.RUnlock()
	return c.validators[url]
}

func (c *CatalogClient) updateValidators(url string, resp *fasthttp.Response) {
	c.validatorMu.Lock()
	defer c.validatorMu.Unlock()

	v := c.validators[url]
	if etag := string(resp.Header.Peek(fasthttp.HeaderETag)); etag != "" {
		v.ETag = etag
	}
	if lm := string(resp.Header.Peek(fasthttp.HeaderLastModified)); lm != "" {
		v.LastModified = lm
	}
	v.UpdatedAt = time.Now()
	c.validators[url] = v
}

// FetchCatalog returns the raw catalog body. When the server confirms the
// previously fetched copy is current it returns ErrNotModified.
func (c *CatalogClient) FetchCatalog(ctx context.Context, url string) ([]byte, error) {
	return doRequest(ctx, c, url)
}

func doRequest(ctx context.Context, client *CatalogClient, url string) ([]byte, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set(fasthttp.HeaderAccept, "application/json")

	v := client.GetValidators(url)
	if v.ETag != "" {
		req.Header.Set(fasthttp.HeaderIfNoneMatch, v.ETag)
	}
	if v.LastModified != "" {
		req.Header.Set(fasthttp.HeaderIfModifiedSince, v.LastModified)
	}

	deadline, ok := ctx.Deadline()
	if ok {
		if err := client.client.DoDeadline(req, resp, deadline); err != nil {
			return nil, err
		}
	} else {
		if err := client.client.Do(req, resp); err != nil {
			return nil, err
		}
	}

	switch resp.StatusCode() {
	case fasthttp.StatusOK:
	case fasthttp.StatusNotModified:
		return nil, ErrNotModified
	default:
		return nil, fmt.Errorf("catalog fetch failed: %d", resp.StatusCode())
	}

	client.updateValidators(url, resp)

	// the response body is recycled on release
	body := make([]byte, len(resp.Body()))
	copy(body, resp.Body())
	return body, nil
}
