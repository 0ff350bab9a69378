package expenses

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"max.ks1230/expense-dashboard/internal/entity/expense"
)

type config interface {
	BaseURL() string
	Timeout() int64
}

// Client talks to the remote expense service under /api/v1. Reads treat 404
// as "no data"; every other non-2xx status is an operation failure.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

func New(cfg config) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: time.Duration(cfg.Timeout()) * time.Second},
		baseURL:    cfg.BaseURL(),
	}
}

// List fetches the full expense collection.
func (c *Client) List(ctx context.Context) ([]expense.Record, error) {
	return c.getList(ctx, c.baseURL+"/expenses", "list")
}

// Convert fetches the collection with amounts converted into target.
// The service answers with records enriched with converted_amount and
// target_currency; the stored amounts are untouched.
func (c *Client) Convert(ctx context.Context, target string) ([]expense.Record, error) {
	return c.getList(ctx, c.baseURL+"/expenses/convert/"+target, "convert")
}

func (c *Client) getList(ctx context.Context, url, op string) ([]expense.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, op)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		observeAPICall(op, false)
		return nil, errors.Wrap(err, op)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		observeAPICall(op, true)
		return []expense.Record{}, nil
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		observeAPICall(op, false)
		return nil, fmt.Errorf("%s: unexpected status %d", op, res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		observeAPICall(op, false)
		return nil, errors.Wrap(err, op)
	}

	records, err := decodeList(body)
	if err != nil {
		observeAPICall(op, false)
		return nil, errors.Wrap(err, op)
	}
	observeAPICall(op, true)
	return records, nil
}

// Create submits a record without id/timestamps and returns the enriched one.
func (c *Client) Create(ctx context.Context, rec expense.Record) (expense.Record, error) {
	rec.ID = 0
	rec.CreatedAt = ""
	rec.UpdatedAt = ""
	return c.send(ctx, http.MethodPost, c.baseURL+"/expenses", rec, "create")
}

// Update submits the full new field set for id, with a fresh updated_at and
// no created_at (the service owns that one).
func (c *Client) Update(ctx context.Context, id int64, rec expense.Record) (expense.Record, error) {
	rec.ID = 0
	rec.CreatedAt = ""
	rec.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	return c.send(ctx, http.MethodPut, fmt.Sprintf("%s/expenses/%d", c.baseURL, id), rec, "update")
}

func (c *Client) send(ctx context.Context, method, url string, rec expense.Record, op string) (expense.Record, error) {
	payload, err := json.Marshal(rec)
	if err != nil {
		return expense.Record{}, errors.Wrap(err, op)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(payload))
	if err != nil {
		return expense.Record{}, errors.Wrap(err, op)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		observeAPICall(op, false)
		return expense.Record{}, errors.Wrap(err, op)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		observeAPICall(op, false)
		return expense.Record{}, fmt.Errorf("%s: unexpected status %d", op, res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		observeAPICall(op, false)
		return expense.Record{}, errors.Wrap(err, op)
	}

	saved, err := decodeRecord(body)
	if err != nil {
		observeAPICall(op, false)
		return expense.Record{}, errors.Wrap(err, op)
	}
	observeAPICall(op, true)
	return saved, nil
}

// Delete requests removal of id. No body is expected back.
func (c *Client) Delete(ctx context.Context, id int64) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete,
		fmt.Sprintf("%s/expenses/%d", c.baseURL, id), nil)
	if err != nil {
		return errors.Wrap(err, "delete")
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		observeAPICall("delete", false)
		return errors.Wrap(err, "delete")
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		observeAPICall("delete", false)
		return fmt.Errorf("delete: unexpected status %d", res.StatusCode)
	}
	observeAPICall("delete", true)
	return nil
}

// The service answers either with a bare JSON value or a {"data": ...}
// envelope; both shapes are accepted.
func decodeList(body []byte) ([]expense.Record, error) {
	var records []expense.Record
	if err := json.Unmarshal(body, &records); err == nil {
		return records, nil
	}

	var envelope struct {
		Data []expense.Record `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, errors.Wrap(err, "unmarshalling response")
	}
	if envelope.Data == nil {
		envelope.Data = []expense.Record{}
	}
	return envelope.Data, nil
}

func decodeRecord(body []byte) (expense.Record, error) {
	var envelope struct {
		Data *expense.Record `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Data != nil {
		return *envelope.Data, nil
	}

	var rec expense.Record
	if err := json.Unmarshal(body, &rec); err != nil {
		return expense.Record{}, errors.Wrap(err, "unmarshalling response")
	}
	return rec, nil
}
