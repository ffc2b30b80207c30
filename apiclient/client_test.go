package apiclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"food-delivery-admin/errorlog"
	"food-delivery-admin/models"
)

type fakeTokens struct {
	token       string
	invalidated bool
}

func (f *fakeTokens) AccessToken() string { return f.token }
func (f *fakeTokens) Invalidate()         { f.invalidated = true }

func newTestClient(t *testing.T, handler http.Handler) (*Client, *fakeTokens, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	tokens := &fakeTokens{token: "token-123"}
	cache := errorlog.New(zap.NewNop().Sugar())
	client := New(srv.URL, 2*time.Second, tokens, cache, zap.NewNop().Sugar())
	return client, tokens, srv
}

func writeEnvelope(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func TestListOrdersUnwrapsEnvelope(t *testing.T) {
	client, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/admin/orders", r.URL.Path)
		assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))
		writeEnvelope(w, http.StatusOK, `{
			"success": true,
			"message": "ok",
			"data": [{"id": 42, "orderNumber": "ORD-1", "status": "PLACED"}]
		}`)
	}))

	orders, err := client.ListOrders(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, int64(42), orders[0].ID)
	assert.Equal(t, models.StatusPlaced, orders[0].Status)
}

func TestListOrdersPassesStatusFilter(t *testing.T) {
	client, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "PLACED", r.URL.Query().Get("status"))
		writeEnvelope(w, http.StatusOK, `{"success": true, "message": "ok", "data": []}`)
	}))

	_, err := client.ListOrders(context.Background(), "PLACED")
	require.NoError(t, err)
}

func TestSuccessFalseIsAnError(t *testing.T) {
	client, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, `{"success": false, "message": "order not in PLACED state"}`)
	}))

	_, err := client.AcceptOrder(context.Background(), 42)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "order not in PLACED state", apiErr.Message)
	assert.Equal(t, http.StatusOK, apiErr.StatusCode)
}

func TestHTTPFailureCarriesStatusClassifier(t *testing.T) {
	client, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusInternalServerError, `{"success": false, "message": "boom"}`)
	}))

	_, err := client.GetOrder(context.Background(), 42)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "500", apiErr.Classifier)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
}

func TestUnauthorizedInvalidatesSession(t *testing.T) {
	client, tokens, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusUnauthorized, `{"success": false, "message": "invalid token"}`)
	}))

	_, err := client.ListOrders(context.Background(), "")
	require.Error(t, err)
	assert.True(t, tokens.invalidated)
}

func TestTransportFailureClassifiedAsNetworkError(t *testing.T) {
	client, _, srv := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := client.ListOrders(context.Background(), "")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, ClassifierNetwork, apiErr.Classifier)
	assert.Zero(t, apiErr.StatusCode)
}

func TestTimeoutClassified(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	t.Cleanup(srv.Close)

	tokens := &fakeTokens{token: "token-123"}
	cache := errorlog.New(zap.NewNop().Sugar())
	client := New(srv.URL, 20*time.Millisecond, tokens, cache, zap.NewNop().Sugar())

	_, err := client.ListOrders(context.Background(), "")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, ClassifierTimeout, apiErr.Classifier)
}

func TestRejectOrderSendsReason(t *testing.T) {
	client, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/admin/orders/42/reject", r.URL.Path)
		var body struct {
			Reason string `json:"reason"`
		}
		require.NoError(t, decodeBody(r, &body))
		assert.Equal(t, "out of stock", body.Reason)
		writeEnvelope(w, http.StatusOK, `{"success": true, "message": "rejected"}`)
	}))

	require.NoError(t, client.RejectOrder(context.Background(), 42, "out of stock"))
}

func TestContextCancellationSurfacesAsError(t *testing.T) {
	client, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(time.Second)
	}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := client.ListOrders(ctx, "")
	require.Error(t, err)
}

func decodeBody(r *http.Request, out any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(out)
}
