package gateway_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hrms.lite/internal/console/gateway"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticKeySource struct {
	key string
}

func (s *staticKeySource) Get() string { return s.key }

func TestClient_InjectsStoredCredential(t *testing.T) {
	var gotHeader string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Get("X-Superadmin-Key")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := gateway.NewClient(srv.URL, &staticKeySource{key: "stored-key"})
	err := client.Do(context.Background(), http.MethodGet, "/employees", nil, nil, nil)

	require.NoError(t, err)
	assert.Equal(t, "stored-key", gotHeader)
}

func TestClient_OmitsHeaderWithoutCredential(t *testing.T) {
	var hasHeader bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasHeader = r.Header["X-Superadmin-Key"]
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := gateway.NewClient(srv.URL, &staticKeySource{})
	err := client.Do(context.Background(), http.MethodPost, "/auth/enter", nil, map[string]string{"key": "k"}, nil)

	require.NoError(t, err)
	assert.False(t, hasHeader, "request without stored credential must not carry the key header")
}

func TestClient_UsesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"Employee with this employee_id already exists"}`))
	}))
	defer srv.Close()

	client := gateway.NewClient(srv.URL, &staticKeySource{key: "k"})
	err := client.Do(context.Background(), http.MethodPost, "/employees", nil, map[string]string{}, nil)

	var gwErr *gateway.Error
	require.True(t, errors.As(err, &gwErr))
	assert.Equal(t, gateway.KindConflict, gwErr.Kind)
	assert.Equal(t, "Employee with this employee_id already exists", gwErr.Message)
}

func TestClient_FallsBackToGenericMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`upstream exploded`))
	}))
	defer srv.Close()

	client := gateway.NewClient(srv.URL, &staticKeySource{key: "k"})
	err := client.Do(context.Background(), http.MethodGet, "/employees", nil, nil, nil)

	var gwErr *gateway.Error
	require.True(t, errors.As(err, &gwErr))
	assert.Equal(t, gateway.KindUnexpected, gwErr.Kind)
	assert.Equal(t, "Unexpected error occurred", gwErr.Message)
}

func TestClient_StatusKinds(t *testing.T) {
	cases := []struct {
		status int
		kind   gateway.Kind
	}{
		{http.StatusUnauthorized, gateway.KindUnauthorized},
		{http.StatusNotFound, gateway.KindNotFound},
		{http.StatusConflict, gateway.KindConflict},
		{http.StatusBadRequest, gateway.KindValidation},
		{http.StatusUnprocessableEntity, gateway.KindValidation},
	}

	for _, tc := range cases {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
			w.Write([]byte(`{"message":"nope"}`))
		}))

		client := gateway.NewClient(srv.URL, &staticKeySource{key: "k"})
		err := client.Do(context.Background(), http.MethodGet, "/x", nil, nil, nil)

		var gwErr *gateway.Error
		require.True(t, errors.As(err, &gwErr), "status %d", tc.status)
		assert.Equal(t, tc.kind, gwErr.Kind, "status %d", tc.status)
		srv.Close()
	}
}

func TestClient_TimeoutKind(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	client := gateway.NewClient(srv.URL, &staticKeySource{key: "k"})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	err := client.Do(ctx, http.MethodGet, "/employees", nil, nil, nil)

	var gwErr *gateway.Error
	require.True(t, errors.As(err, &gwErr))
	assert.Equal(t, gateway.KindTimeout, gwErr.Kind)
}

func TestClient_NetworkKind(t *testing.T) {
	// A closed server makes the transport fail outright.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := gateway.NewClient(srv.URL, &staticKeySource{key: "k"})
	err := client.Do(context.Background(), http.MethodGet, "/employees", nil, nil, nil)

	var gwErr *gateway.Error
	require.True(t, errors.As(err, &gwErr))
	assert.Equal(t, gateway.KindNetwork, gwErr.Kind)
}
