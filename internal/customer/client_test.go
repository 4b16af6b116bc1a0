package customer

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"creditbank/internal/errors"
	"creditbank/internal/model"
)

func customerJSON(id string, customerType model.CustomerType) string {
	return fmt.Sprintf(`{"id":%q,"customerType":%q}`, id, customerType)
}

func TestGetCustomerByID_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/customers/cust-1", r.URL.Path)
		fmt.Fprint(w, customerJSON("cust-1", model.CustomerTypePersonal))
	}))
	defer server.Close()

	client := NewClient(Options{BaseURL: server.URL})

	cust, err := client.GetCustomerByID(context.Background(), "cust-1")

	assert.NoError(t, err)
	assert.Equal(t, "cust-1", cust.ID)
	assert.Equal(t, model.CustomerTypePersonal, cust.CustomerType)
}

func TestGetCustomerByID_NotFoundIsNeverRetried(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(Options{BaseURL: server.URL, RetryAttempts: 3})

	_, err := client.GetCustomerByID(context.Background(), "ghost")

	assert.True(t, errors.IsNotFound(err))
	assert.NotErrorIs(t, err, errors.ErrDependencyUnavailable)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestGetCustomerByID_TransientFailuresAreRetried(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, customerJSON("cust-1", model.CustomerTypeBusiness))
	}))
	defer server.Close()

	client := NewClient(Options{BaseURL: server.URL, RetryAttempts: 3})

	cust, err := client.GetCustomerByID(context.Background(), "cust-1")

	assert.NoError(t, err)
	assert.Equal(t, model.CustomerTypeBusiness, cust.CustomerType)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestGetCustomerByID_ExhaustedRetriesBecomeUnavailable(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(Options{BaseURL: server.URL, RetryAttempts: 2})

	_, err := client.GetCustomerByID(context.Background(), "cust-1")

	assert.ErrorIs(t, err, errors.ErrDependencyUnavailable)
	assert.False(t, errors.IsNotFound(err))
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestGetCustomerByID_TimeoutBecomesUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		fmt.Fprint(w, customerJSON("cust-1", model.CustomerTypePersonal))
	}))
	defer server.Close()

	client := NewClient(Options{
		BaseURL:       server.URL,
		Timeout:       50 * time.Millisecond,
		RetryAttempts: 1,
	})

	_, err := client.GetCustomerByID(context.Background(), "cust-1")

	assert.ErrorIs(t, err, errors.ErrDependencyUnavailable)
}

func TestGetCustomerByID_OpenBreakerFailsFast(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(Options{
		BaseURL:          server.URL,
		RetryAttempts:    1,
		BreakerThreshold: 2,
		BreakerCooldown:  100 * time.Millisecond,
	})

	// Two failing calls trip the breaker.
	_, err := client.GetCustomerByID(context.Background(), "cust-1")
	assert.ErrorIs(t, err, errors.ErrDependencyUnavailable)
	_, err = client.GetCustomerByID(context.Background(), "cust-1")
	assert.ErrorIs(t, err, errors.ErrDependencyUnavailable)

	attemptsSoFar := atomic.LoadInt32(&calls)

	// Open breaker short-circuits: no network attempt is made.
	_, err = client.GetCustomerByID(context.Background(), "cust-1")
	assert.ErrorIs(t, err, errors.ErrDependencyUnavailable)
	assert.Equal(t, attemptsSoFar, atomic.LoadInt32(&calls))

	// After the cooldown the breaker half-opens and probes again.
	time.Sleep(150 * time.Millisecond)
	_, err = client.GetCustomerByID(context.Background(), "cust-1")
	assert.ErrorIs(t, err, errors.ErrDependencyUnavailable)
	assert.Greater(t, atomic.LoadInt32(&calls), attemptsSoFar)
}

func TestGetCustomerByID_NotFoundDoesNotTripBreaker(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(Options{
		BaseURL:          server.URL,
		RetryAttempts:    1,
		BreakerThreshold: 2,
		BreakerCooldown:  time.Minute,
	})

	for i := 0; i < 5; i++ {
		_, err := client.GetCustomerByID(context.Background(), "ghost")
		assert.True(t, errors.IsNotFound(err))
	}
	// Every call reached the network; absences never open the circuit.
	assert.Equal(t, int32(5), atomic.LoadInt32(&calls))
}

func TestExists(t *testing.T) {
	t.Run("found maps to true", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, customerJSON("cust-1", model.CustomerTypePersonal))
		}))
		defer server.Close()

		client := NewClient(Options{BaseURL: server.URL})

		exists, err := client.Exists(context.Background(), "cust-1")
		assert.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("not found maps to false", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := NewClient(Options{BaseURL: server.URL})

		exists, err := client.Exists(context.Background(), "ghost")
		assert.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("unavailable maps to false", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := NewClient(Options{BaseURL: server.URL, RetryAttempts: 1})

		exists, err := client.Exists(context.Background(), "cust-1")
		assert.NoError(t, err)
		assert.False(t, exists)
	})
}
