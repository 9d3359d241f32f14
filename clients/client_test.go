package clients_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"stagelink/clients"
	"stagelink/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serviceError(t *testing.T, err error) *clients.ServiceError {
	t.Helper()
	var se *clients.ServiceError
	require.ErrorAs(t, err, &se)
	return se
}

func TestServiceClient_DecodesSuccessResponse(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"totalCredits":100,"usedCredits":30,"availableCredits":70}`))
	}))
	defer backend.Close()

	client := clients.NewServiceClient("hotel", backend.URL, time.Second)

	var balance models.CreditBalance
	err := client.Get(context.Background(), "/api/hotels/h-1/credits", nil, &balance)
	require.NoError(t, err)
	assert.Equal(t, int64(70), balance.AvailableCredits)
}

func TestServiceClient_Classifies4xxWithRemoteMessage(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"success":false,"error":"Insufficient credits"}`))
	}))
	defer backend.Close()

	client := clients.NewServiceClient("hotel", backend.URL, time.Second)
	err := client.Post(context.Background(), "/api/hotels/h-1/credits/use", models.CreditAmountRequest{Amount: 10}, nil, nil)

	se := serviceError(t, err)
	assert.Equal(t, clients.ErrHTTP4xx, se.Kind)
	assert.Equal(t, http.StatusBadRequest, se.Status)
	assert.Equal(t, "Insufficient credits", se.Message)
	assert.False(t, clients.IsUnavailable(err))
}

func TestServiceClient_Classifies5xxAsUnavailable(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer backend.Close()

	client := clients.NewServiceClient("hotel", backend.URL, time.Second)
	err := client.Get(context.Background(), "/api/hotels/h-1/credits", nil, nil)

	se := serviceError(t, err)
	assert.Equal(t, clients.ErrHTTP5xx, se.Kind)
	assert.True(t, clients.IsUnavailable(err))
}

func TestServiceClient_ClassifiesTimeout(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer backend.Close()

	client := clients.NewServiceClient("hotel", backend.URL, 20*time.Millisecond)
	err := client.Get(context.Background(), "/slow", nil, nil)

	se := serviceError(t, err)
	assert.Equal(t, clients.ErrTimeout, se.Kind)
	assert.True(t, clients.IsUnavailable(err))
}

func TestServiceClient_ClassifiesConnectionRefused(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	backend.Close()

	client := clients.NewServiceClient("hotel", backend.URL, time.Second)
	err := client.Get(context.Background(), "/anything", nil, nil)

	se := serviceError(t, err)
	assert.Equal(t, clients.ErrTransport, se.Kind)
	assert.True(t, clients.IsUnavailable(err))
}

func TestServiceClient_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
	}))
	defer backend.Close()

	client := clients.NewServiceClient("hotel", backend.URL, time.Second).WithBearer("svc-token")
	require.NoError(t, client.Get(context.Background(), "/anything", nil, nil))
	assert.Equal(t, "Bearer svc-token", gotAuth)

	// Explicit headers win over the client-level token.
	require.NoError(t, client.Get(context.Background(), "/anything",
		map[string]string{"Authorization": "Bearer caller-token"}, nil))
	assert.Equal(t, "Bearer caller-token", gotAuth)
}

func TestIsUnavailable_NonServiceError(t *testing.T) {
	assert.False(t, clients.IsUnavailable(errors.New("plain error")))
	assert.False(t, clients.IsUnavailable(nil))
}
