package shippo

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, Client) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv, New("shippo_test_token", WithBaseURL(srv.URL), WithHTTPClient(srv.Client()))
}

func TestCreateShipment_SendsSynchronousRequest(t *testing.T) {
	var got struct {
		Async     bool     `json:"async"`
		Parcels   []Parcel `json:"parcels"`
		AddressTo Address  `json:"address_to"`
	}
	var auth string
	_, cli := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/shipments/" {
			t.Errorf("path = %s, want /shipments/", r.URL.Path)
		}
		auth = r.Header.Get("Authorization")
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &got); err != nil {
			t.Fatalf("request body: %v", err)
		}
		_, _ = w.Write([]byte(`{"rates":[{"object_id":"rate_1"},{"object_id":"rate_2"}]}`))
	})

	rates, err := cli.CreateShipment(context.Background(), ShipmentRequest{
		AddressFrom: Address{City: "Austin", State: "TX", Zip: "78701", Country: "US"},
		AddressTo:   Address{City: "NYC", State: "NY", Zip: "10001", Country: "US"},
		Parcels:     []Parcel{DefaultParcel()},
		Async:       true, // must be forced off
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rates) != 2 {
		t.Errorf("rates = %d, want 2", len(rates))
	}
	if got.Async {
		t.Error("shipment sent async, rates would not come back inline")
	}
	if auth != "ShippoToken shippo_test_token" {
		t.Errorf("auth header = %q", auth)
	}
	if got.AddressTo.Zip != "10001" {
		t.Errorf("address_to = %+v", got.AddressTo)
	}
}

func TestPurchaseLabel_DefaultsToPDF(t *testing.T) {
	var got map[string]any
	_, cli := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/transactions/" {
			t.Errorf("path = %s, want /transactions/", r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &got)
		_, _ = w.Write([]byte(`{"object_id":"tx_1","status":"SUCCESS","tracking_number":"94001","label_url":"https://example.com/l.pdf"}`))
	})

	tx, err := cli.PurchaseLabel(context.Background(), "rate_1", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tx.ObjectID != "tx_1" || tx.TrackingNumber != "94001" {
		t.Errorf("transaction = %+v", tx)
	}
	if got["rate"] != "rate_1" || got["label_file_type"] != "PDF" {
		t.Errorf("request body = %v", got)
	}
	if asyncFlag, ok := got["async"].(bool); !ok || asyncFlag {
		t.Errorf("async = %v, want false", got["async"])
	}
}

func TestVoidLabel_PostsRefund(t *testing.T) {
	var got map[string]any
	_, cli := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/refunds/" {
			t.Errorf("path = %s, want /refunds/", r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &got)
		_, _ = w.Write([]byte(`{"status":"QUEUED"}`))
	})

	if err := cli.VoidLabel(context.Background(), "tx_1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got["transaction"] != "tx_1" {
		t.Errorf("request body = %v", got)
	}
}

func TestErrorResponsesRelayStatusAndBody(t *testing.T) {
	_, cli := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"address_to":["Invalid address"]}`))
	})

	_, err := cli.CreateShipment(context.Background(), ShipmentRequest{})
	if err == nil {
		t.Fatal("expected an error for a 422 response")
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", apiErr.StatusCode)
	}
	if apiErr.Detail == "" {
		t.Error("expected the upstream body to be relayed")
	}
}
