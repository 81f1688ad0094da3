package backendsvc

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mentoralabs/mentora/core"
	"github.com/mentoralabs/mentora/core/user"
	inmemstore "github.com/mentoralabs/mentora/storage/session/inmem"
)

type nopLogger struct{}

func (nopLogger) Enable(bool)                  {}
func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Fatal(string, ...interface{}) {}

func testConfig(baseURL string) *core.Config {
	conf := &core.Config{}
	conf.Backend.BaseURL = baseURL
	conf.Backend.Timeout = 5 * time.Second
	conf.Backend.StreamTimeout = 5 * time.Second
	conf.Backend.PollInterval = 10 * time.Millisecond
	conf.Backend.PollBudget = 5 * time.Second
	return conf
}

// newTestClient spins up a test backend and a client logged in against it.
func newTestClient(t *testing.T, handler http.Handler, onUnauthorized func()) (*Client, user.Store) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	store := inmemstore.NewStore()
	if err := store.SaveToken("test-token"); err != nil {
		t.Fatalf("saving test token: %v", err)
	}
	client := NewClient(testConfig(server.URL), store, nopLogger{}, onUnauthorized)
	return client, store
}
