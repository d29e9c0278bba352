package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/slots-tracker/internal/entity/record"
)

type testConfig struct {
	url      string
	token    string
	attempts uint
	strict   bool
}

func (c testConfig) BaseURL() string { return c.url }
func (c testConfig) StaticToken() string { return c.token }
func (c testConfig) Timeout() time.Duration { return time.Second }
func (c testConfig) ReadAttempts() uint { return c.attempts }
func (c testConfig) StrictIdentifiers() bool { return c.strict }

type seenRequest struct {
	Method string
	Path   string
	Auth   string
	Body   map[string]any
}

type fakeAPI struct {
	mu       sync.Mutex
	requests []seenRequest
	handler  func(w http.ResponseWriter, r *http.Request)
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	raw, _ := io.ReadAll(r.Body)
	seen := seenRequest{Method: r.Method, Path: r.URL.RequestURI(), Auth: r.Header.Get("Authorization")}
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &seen.Body)
	}
	f.mu.Lock()
	f.requests = append(f.requests, seen)
	f.mu.Unlock()

	if f.handler != nil {
		f.handler(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(raw)
}

func (f *fakeAPI) seen() []seenRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]seenRequest(nil), f.requests...)
}

func newTestClient(t *testing.T, cfg testConfig, opts ...Option) (*Client, *fakeAPI) {
	t.Helper()
	fake := &fakeAPI{}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	if cfg.url == "" {
		cfg.url = srv.URL + "/"
	}
	client, err := New(cfg, opts...)
	require.NoError(t, err)
	client.readDelay = time.Millisecond
	return client, fake
}

func wait(t *testing.T, p *Pending) (record.Record, error) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return p.Wait(ctx)
}

func Test_OnUpsertWithoutID_ShouldPost(t *testing.T) {
	client, fake := newTestClient(t, testConfig{})

	_, err := wait(t, client.Upsert(context.Background(), "expenses", record.Record{"amount": 42, "description": "coffee"}))
	require.NoError(t, err)

	reqs := fake.seen()
	require.Len(t, reqs, 1)
	assert.Equal(t, http.MethodPost, reqs[0].Method)
	assert.Equal(t, "/expenses/", reqs[0].Path)
	assert.Equal(t, map[string]any{"amount": 42.0, "description": "coffee"}, reqs[0].Body)
}

func Test_OnUpsertWithID_ShouldPutWithoutIDInBody(t *testing.T) {
	client, fake := newTestClient(t, testConfig{})
	in := record.Record{record.IDField: record.Ref("abc123"), "amount": 10}

	rec, err := wait(t, client.Upsert(context.Background(), "expenses", in))
	require.NoError(t, err)

	reqs := fake.seen()
	require.Len(t, reqs, 1)
	assert.Equal(t, http.MethodPut, reqs[0].Method)
	assert.Equal(t, "/expenses/abc123", reqs[0].Path)
	assert.Equal(t, map[string]any{"amount": 10.0}, reqs[0].Body)
	assert.Contains(t, in, record.IDField, "caller record must stay untouched")
	assert.Equal(t, record.Record{"amount": 10.0}, rec)
}

func Test_OnUpsertWithMalformedID_ShouldPostRecordAsIs(t *testing.T) {
	client, fake := newTestClient(t, testConfig{})

	for _, id := range []any{map[string]any{}, nil} {
		_, err := wait(t, client.Upsert(context.Background(), "pay_methods", record.Record{record.IDField: id, "name": "cash"}))
		require.NoError(t, err)
	}

	reqs := fake.seen()
	require.Len(t, reqs, 2)
	assert.Equal(t, http.MethodPost, reqs[0].Method)
	assert.Equal(t, "/pay_methods/", reqs[0].Path)
	assert.Equal(t, map[string]any{"_id": map[string]any{}, "name": "cash"}, reqs[0].Body)
	assert.Equal(t, http.MethodPost, reqs[1].Method)
	assert.Equal(t, map[string]any{"_id": nil, "name": "cash"}, reqs[1].Body)
}

func Test_OnStrictUpsertWithMalformedID_ShouldNotSend(t *testing.T) {
	client, fake := newTestClient(t, testConfig{strict: true})

	_, err := wait(t, client.Upsert(context.Background(), "pay_methods", record.Record{record.IDField: map[string]any{}, "name": "cash"}))

	assert.True(t, errors.Is(err, record.ErrMalformedIdentifier))
	assert.Empty(t, fake.seen())
}

func Test_OnStrictUpsertWithValidID_ShouldPut(t *testing.T) {
	client, fake := newTestClient(t, testConfig{strict: true})
	id := record.NewObjectID().Oid

	_, err := wait(t, client.Upsert(context.Background(), "pay_methods", record.Record{record.IDField: record.Ref(id), "name": "cash"}))
	require.NoError(t, err)

	reqs := fake.seen()
	require.Len(t, reqs, 1)
	assert.Equal(t, "/pay_methods/"+id, reqs[0].Path)
}

func Test_OnUpsertFailure_ShouldPassErrorThroughOnce(t *testing.T) {
	client, fake := newTestClient(t, testConfig{attempts: 3})
	fake.handler = func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"database is down"}`))
	}

	_, err := wait(t, client.Upsert(context.Background(), "expenses", record.Record{"amount": 1}))

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.Equal(t, "database is down", Message(err))
	assert.Len(t, fake.seen(), 1, "writes are never retried")
}

func Test_OnUpsert_ShouldReturnBeforeResponse(t *testing.T) {
	release := make(chan struct{})
	client, fake := newTestClient(t, testConfig{})
	fake.handler = func(w http.ResponseWriter, r *http.Request) {
		<-release
		_, _ = w.Write([]byte(`{"_id":{"$oid":"new"}}`))
	}

	p := client.Upsert(context.Background(), "expenses", record.Record{"amount": 1})
	select {
	case <-p.Done():
		t.Fatal("pending must not be settled before the server answers")
	default:
	}

	close(release)
	rec, err := wait(t, p)
	require.NoError(t, err)
	id, _ := record.Identifier(rec)
	assert.Equal(t, "new", id)
}

func Test_OnWaitWithCancelledContext_ShouldGiveUp(t *testing.T) {
	p := newPending()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Wait(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func Test_OnList_ShouldRetryServerErrors(t *testing.T) {
	client, fake := newTestClient(t, testConfig{attempts: 3})
	var calls int32
	fake.handler = func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`[{"_id":{"$oid":"a"},"name":"cash"}]`))
	}

	rs, err := client.List(context.Background(), "pay_methods", nil)
	require.NoError(t, err)
	require.Len(t, rs, 1)
	assert.Equal(t, "cash", rs[0].String("name"))
	assert.Len(t, fake.seen(), 3)
}

func Test_OnList_ShouldNotRetryClientErrors(t *testing.T) {
	client, fake := newTestClient(t, testConfig{attempts: 3})
	fake.handler = func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}

	_, err := client.Get(context.Background(), "expenses", "missing")
	assert.True(t, IsNotFound(err))
	assert.Len(t, fake.seen(), 1)
}

func Test_OnListWithQuery_ShouldSendQuery(t *testing.T) {
	client, fake := newTestClient(t, testConfig{})
	fake.handler = func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}

	rs, err := client.List(context.Background(), "expenses", url.Values{"amount": {"42"}})
	require.NoError(t, err)
	assert.Empty(t, rs)
	assert.Equal(t, "/expenses/?amount=42", fake.seen()[0].Path)
}

func Test_OnLogin_ShouldSendTokenAfterwards(t *testing.T) {
	client, fake := newTestClient(t, testConfig{})
	fake.handler = func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/login/" {
			_, _ = w.Write([]byte(`{"access_token":"tkn"}`))
			return
		}
		_, _ = w.Write([]byte(`[]`))
	}

	require.NoError(t, client.Login(context.Background(), "me@example.com", "pw"))
	_, err := client.Expenses(context.Background())
	require.NoError(t, err)

	reqs := fake.seen()
	require.Len(t, reqs, 2)
	assert.Equal(t, map[string]any{"email": "me@example.com", "password": "pw"}, reqs[0].Body)
	assert.Empty(t, reqs[0].Auth)
	assert.Equal(t, "Bearer tkn", reqs[1].Auth)
}

func Test_OnLoginWithoutToken_ShouldFail(t *testing.T) {
	client, fake := newTestClient(t, testConfig{})
	fake.handler = func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`Bad login`))
	}

	assert.Error(t, client.Login(context.Background(), "me@example.com", "pw"))
}

func Test_OnNewWithRelativeURL_ShouldFail(t *testing.T) {
	_, err := New(testConfig{url: "expenses/"})
	assert.Error(t, err)
}

func Test_OnBaseURLWithPath_ShouldKeepPrefix(t *testing.T) {
	client, err := New(testConfig{url: "http://example.com/api"})
	require.NoError(t, err)

	assert.Equal(t, "http://example.com/api/expenses/", client.collectionURL("expenses"))
	assert.Equal(t, "http://example.com/api/expenses/a%2Fb", client.itemURL("expenses", "a/b"))
}

type memCache struct {
	mu          sync.Mutex
	lists       map[string][]byte
	invalidated []string
}

var errMiss = errors.New("miss")

func (m *memCache) GetList(collection string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	raw, ok := m.lists[collection]
	if !ok {
		return nil, errMiss
	}
	return raw, nil
}

func (m *memCache) CacheList(collection string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lists[collection] = data
	return nil
}

func (m *memCache) InvalidateList(collection string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.lists, collection)
	m.invalidated = append(m.invalidated, collection)
	return nil
}

func Test_OnCachedList_ShouldRefetchAfterUpsert(t *testing.T) {
	cache := &memCache{lists: map[string][]byte{}}
	client, fake := newTestClient(t, testConfig{}, WithCache(cache))
	fake.handler = func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			_, _ = w.Write([]byte(`[{"name":"cash"}]`))
			return
		}
		_, _ = w.Write([]byte(`{}`))
	}
	ctx := context.Background()

	_, err := client.List(ctx, "pay_methods", nil)
	require.NoError(t, err)
	_, err = client.List(ctx, "pay_methods", nil)
	require.NoError(t, err)
	assert.Len(t, fake.seen(), 1, "second list is served from cache")

	_, err = wait(t, client.CreateOrUpdatePayMethod(ctx, record.Record{"name": "visa"}))
	require.NoError(t, err)
	assert.Equal(t, []string{"pay_methods"}, cache.invalidated)

	_, err = client.List(ctx, "pay_methods", nil)
	require.NoError(t, err)
	assert.Len(t, fake.seen(), 3)
}

func Test_OnDelete_ShouldSendDelete(t *testing.T) {
	client, fake := newTestClient(t, testConfig{token: "static"})
	fake.handler = func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}

	require.NoError(t, client.Delete(context.Background(), "expenses", "abc"))

	reqs := fake.seen()
	require.Len(t, reqs, 1)
	assert.Equal(t, http.MethodDelete, reqs[0].Method)
	assert.Equal(t, "/expenses/abc", reqs[0].Path)
	assert.Equal(t, "Bearer static", reqs[0].Auth)
}

func Test_OnListSpanningUpsert_ShouldNotCacheStaleList(t *testing.T) {
	cache := &memCache{lists: map[string][]byte{}}
	client, fake := newTestClient(t, testConfig{}, WithCache(cache))

	var written, gets int32
	getStarted := make(chan struct{})
	releaseGet := make(chan struct{})
	fake.handler = func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			atomic.StoreInt32(&written, 1)
			_, _ = w.Write([]byte(`{"_id":{"$oid":"pm1"},"name":"visa"}`))
			return
		}
		body := `[]`
		if atomic.LoadInt32(&written) == 1 {
			body = `[{"_id":{"$oid":"pm1"},"name":"visa"}]`
		}
		if atomic.AddInt32(&gets, 1) == 1 {
			close(getStarted)
			<-releaseGet
		}
		_, _ = w.Write([]byte(body))
	}
	ctx := context.Background()

	slow := make(chan []record.Record)
	go func() {
		rs, _ := client.List(ctx, "pay_methods", nil)
		slow <- rs
	}()
	<-getStarted

	_, err := wait(t, client.CreateOrUpdatePayMethod(ctx, record.Record{"name": "visa"}))
	require.NoError(t, err)

	close(releaseGet)
	assert.Empty(t, <-slow)

	rs, err := client.List(ctx, "pay_methods", nil)
	require.NoError(t, err)
	require.Len(t, rs, 1)
	assert.Equal(t, "visa", rs[0].String("name"))
	assert.Equal(t, int32(2), atomic.LoadInt32(&gets))
}

func Test_OnParallelUpserts_ShouldSendEveryRequestAtOnce(t *testing.T) {
	const n = 5
	client, fake := newTestClient(t, testConfig{})

	var arrived int32
	allIn := make(chan struct{})
	fake.handler = func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&arrived, 1) == n {
			close(allIn)
		}
		select {
		case <-allIn:
			_, _ = w.Write([]byte(`{}`))
		case <-time.After(2 * time.Second):
			w.WriteHeader(http.StatusGatewayTimeout)
		}
	}
	ctx := context.Background()

	pending := make([]*Pending, 0, n)
	for i := 0; i < n; i++ {
		pending = append(pending, client.Upsert(ctx, "expenses", record.Record{"amount": i}))
	}
	for _, p := range pending {
		_, err := wait(t, p)
		assert.NoError(t, err)
	}
	assert.Len(t, fake.seen(), n)
}
