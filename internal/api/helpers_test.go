package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"readinglog/internal/catalog"
	"readinglog/internal/httpx"
	"readinglog/internal/prefs"
	"readinglog/internal/store"
	"readinglog/internal/testutil"
	"readinglog/pkg/logger"

	"github.com/stretchr/testify/mock"
)

const (
	testSecret = "api-test-secret"
	testUser   = "user-1"
)

type mockFetcher struct {
	mock.Mock
}

func (m *mockFetcher) Fetch(ctx context.Context, p catalog.Params) (*catalog.Response, error) {
	args := m.Called(ctx, p)
	res, _ := args.Get(0).(*catalog.Response)
	return res, args.Error(1)
}

type testServer struct {
	mux      *http.ServeMux
	mem      *store.Memory
	registry *Registry
	fetcher  *mockFetcher
	token    string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	mem := store.NewMemory()
	return newTestServerWithGateway(t, mem, store.NewMemoryGateway(mem))
}

func newTestServerWithGateway(t *testing.T, mem *store.Memory, gw *store.Gateway) *testServer {
	t.Helper()
	fetcher := new(mockFetcher)
	registry := NewRegistry(gw, prefs.NewMemory(), fetcher, time.Hour, logger.Discard(), nil)
	t.Cleanup(registry.Close)

	mux := http.NewServeMux()
	NewHandler(registry, logger.Discard()).Register(mux, httpx.AuthMiddleware(testSecret))

	token := testutil.GenerateTestToken(testSecret, testUser)
	return &testServer{mux: mux, mem: mem, registry: registry, fetcher: fetcher, token: token}
}

func (s *testServer) do(t *testing.T, method, path string, body any) (*httptest.ResponseRecorder, testutil.Envelope) {
	t.Helper()
	return testutil.Serve(t, s.mux, testutil.NewRequestWithAuth(method, path, body, s.token))
}
