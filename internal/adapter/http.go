package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-coll-sync/internal/config"
	"github.com/MKhiriev/go-coll-sync/internal/logger"
	"github.com/MKhiriev/go-coll-sync/internal/utils"
	"github.com/MKhiriev/go-coll-sync/models"
	"github.com/go-resty/resty/v2"
)

// Response headers of the storage protocol. The continuation token and the
// collection-level timestamp ride on headers, not in the body, so a page
// can be streamed/decoded independently of its pagination state.
const (
	headerNextOffset        = "X-Next-Offset"
	headerLastModified      = "X-Last-Modified"
	headerIfUnmodifiedSince = "X-If-Unmodified-Since"
	headerRequestID         = "X-Request-Id"
)

type httpCollectionClient struct {
	client *utils.HTTPClient
	ids    *utils.UUIDGenerator

	token string

	logger *logger.Logger
}

// NewHTTPCollectionClient constructs an HTTP/REST implementation of
// [CollectionClient]. It normalises and validates the base URL from
// adapterCfg.ServerAddress, configures the underlying HTTP client with the
// resolved base URL and request timeout, and stores the configured bearer
// token for subsequent requests.
//
// Returns an error if adapterCfg.ServerAddress is empty or cannot be
// parsed as a valid URL.
func NewHTTPCollectionClient(adapterCfg config.ClientAdapter, logger *logger.Logger) (CollectionClient, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.ServerAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter server address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	c := &httpCollectionClient{
		client: client,
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
	}
	c.SetToken(adapterCfg.Token)

	return c, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [CollectionClient]. It stores token
// (whitespace-trimmed) for use in the Authorization header of all
// subsequent requests.
func (h *httpCollectionClient) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [CollectionClient]. It returns the bearer token
// currently held by the client, or an empty string if none has been set.
func (h *httpCollectionClient) Token() string {
	return h.token
}

// FetchBatch implements [CollectionClient]. It issues
// GET /storage/<collection> with the newer/limit/sort/offset query derived
// from req, decodes the record array, and lifts the continuation token and
// collection timestamp out of the response headers. A 412 response maps to
// [ErrPreconditionFailed] (wrapped); all other non-2xx statuses map to the
// corresponding sentinel in errors.go.
func (h *httpCollectionClient) FetchBatch(ctx context.Context, req models.FetchRequest) (models.BatchResponse, error) {
	r := h.authedRequest(ctx).
		SetQueryParam("newer", strconv.FormatUint(uint64(req.Newer), 10)).
		SetQueryParam("limit", strconv.Itoa(req.Limit)).
		SetQueryParam("sort", "newest")
	if req.Offset != "" {
		r.SetQueryParam("offset", req.Offset)
	}
	if req.UnmodifiedSince > 0 {
		r.SetHeader(headerIfUnmodifiedSince, strconv.FormatUint(uint64(req.UnmodifiedSince), 10))
	}

	resp, err := r.Get("/storage/" + url.PathEscape(req.Collection))
	if err != nil {
		return models.BatchResponse{}, fmt.Errorf("fetch batch request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.BatchResponse{}, err
	}

	var records []models.Record
	if err = json.Unmarshal(resp.Body(), &records); err != nil {
		return models.BatchResponse{}, fmt.Errorf("decode fetch batch response: %w", err)
	}

	return models.BatchResponse{
		Records:      records,
		NextOffset:   resp.Header().Get(headerNextOffset),
		LastModified: parseTimestampHeader(resp.Header().Get(headerLastModified)),
		Status:       resp.StatusCode(),
	}, nil
}

// GetCollectionInfo implements [CollectionClient]. It GETs
// /info/collections and decodes the response into a map of collection name
// to collection-level modification timestamp. Returns an error if the
// request, response mapping, or JSON decoding fails.
func (h *httpCollectionClient) GetCollectionInfo(ctx context.Context) (map[string]models.Timestamp, error) {
	resp, err := h.authedRequest(ctx).Get("/info/collections")
	if err != nil {
		return nil, fmt.Errorf("get collection info request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var info map[string]models.Timestamp
	if err = json.Unmarshal(resp.Body(), &info); err != nil {
		return nil, fmt.Errorf("decode collection info response: %w", err)
	}

	return info, nil
}

func (h *httpCollectionClient) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().
		SetContext(ctx).
		SetHeader(headerRequestID, h.ids.Generate())
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func parseTimestampHeader(value string) models.Timestamp {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}

	ts, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0
	}
	return models.Timestamp(ts)
}
