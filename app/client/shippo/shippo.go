// Package shippo is a thin client for the Shippo REST API. Shippo publishes
// no Go SDK; the surface used here is three plain JSON POSTs.
package shippo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.goshippo.com"

type Address struct {
	Name    string `json:"name,omitempty"`
	Street1 string `json:"street1,omitempty"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

type Parcel struct {
	Length       string `json:"length"`
	Width        string `json:"width"`
	Height       string `json:"height"`
	DistanceUnit string `json:"distance_unit"`
	Weight       string `json:"weight"`
	MassUnit     string `json:"mass_unit"`
}

// DefaultParcel matches the fixed box the storefront quotes with.
func DefaultParcel() Parcel {
	return Parcel{
		Length:       "12",
		Width:        "8",
		Height:       "5",
		DistanceUnit: "in",
		Weight:       "2",
		MassUnit:     "lb",
	}
}

type ShipmentRequest struct {
	AddressFrom Address  `json:"address_from"`
	AddressTo   Address  `json:"address_to"`
	Parcels     []Parcel `json:"parcels"`
	Async       bool     `json:"async"`
}

// Transaction is a purchased label.
type Transaction struct {
	ObjectID       string `json:"object_id"`
	Status         string `json:"status"`
	TrackingNumber string `json:"tracking_number"`
	TrackingURL    string `json:"tracking_url_provider"`
	LabelURL       string `json:"label_url"`
	Rate           string `json:"rate"`
	ETA            string `json:"eta"`
}

// APIError relays a non-2xx Shippo response without translation.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("shippo: status %d: %s", e.StatusCode, e.Detail)
}

type Client interface {
	// CreateShipment submits the shipment synchronously and returns the raw
	// rate objects so callers can relay them untouched.
	CreateShipment(ctx context.Context, req ShipmentRequest) ([]json.RawMessage, error)
	PurchaseLabel(ctx context.Context, rateObjectID, labelFileType string) (*Transaction, error)
	VoidLabel(ctx context.Context, transactionID string) error
}

var _ Client = (*restClient)(nil)

type restClient struct {
	token   string
	baseURL string
	httpc   *http.Client
}

func New(token string, opts ...Option) Client {
	c := &restClient{
		token:   token,
		baseURL: defaultBaseURL,
		httpc:   &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type Option func(*restClient)

func WithBaseURL(u string) Option {
	return func(c *restClient) { c.baseURL = u }
}

func WithHTTPClient(h *http.Client) Option {
	return func(c *restClient) { c.httpc = h }
}

func (c *restClient) CreateShipment(ctx context.Context, req ShipmentRequest) ([]json.RawMessage, error) {
	// Rates only come back inline on synchronous shipments.
	req.Async = false

	var out struct {
		Rates []json.RawMessage `json:"rates"`
	}
	if err := c.post(ctx, "/shipments/", req, &out); err != nil {
		return nil, err
	}
	return out.Rates, nil
}

func (c *restClient) PurchaseLabel(ctx context.Context, rateObjectID, labelFileType string) (*Transaction, error) {
	if labelFileType == "" {
		labelFileType = "PDF"
	}
	body := map[string]any{
		"rate":            rateObjectID,
		"label_file_type": labelFileType,
		"async":           false,
	}
	var tx Transaction
	if err := c.post(ctx, "/transactions/", body, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

func (c *restClient) VoidLabel(ctx context.Context, transactionID string) error {
	body := map[string]any{"transaction": transactionID}
	var out struct {
		Status string `json:"status"`
	}
	return c.post(ctx, "/refunds/", body, &out)
}

func (c *restClient) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "ShippoToken "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Detail: string(raw)}
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(raw, out)
}
