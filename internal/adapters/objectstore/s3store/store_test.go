package s3store

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captured struct {
	mu          sync.Mutex
	method      string
	path        string
	acl         string
	contentType string
	body        []byte
}

func fakeS3(t *testing.T, status int) (*httptest.Server, *captured) {
	t.Helper()
	c := &captured{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.method = r.Method
		c.path = r.URL.Path
		c.acl = r.Header.Get("X-Amz-Acl")
		c.contentType = r.Header.Get("Content-Type")
		c.body, _ = io.ReadAll(r.Body)
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)
	return srv, c
}

func newTestStore(t *testing.T, endpoint string) *Store {
	t.Helper()
	s, err := New(Config{
		Bucket:      "catcollector",
		BaseURL:     "https://s3.us-east-1.amazonaws.com",
		Region:      "us-east-1",
		Endpoint:    endpoint,
		Credentials: credentials.NewStaticCredentials("AKID", "SECRET", ""),
	})
	require.NoError(t, err)
	return s
}

func TestPut_SendsPublicObject(t *testing.T) {
	srv, got := fakeS3(t, http.StatusOK)
	s := newTestStore(t, srv.URL)

	err := s.Put(context.Background(), "abc123def456.png", "image/png", bytes.NewReader([]byte("pngdata")))
	require.NoError(t, err)

	got.mu.Lock()
	defer got.mu.Unlock()
	assert.Equal(t, http.MethodPut, got.method)
	assert.Equal(t, "/catcollector/abc123def456.png", got.path)
	assert.Equal(t, "public-read", got.acl)
	assert.Equal(t, "image/png", got.contentType)
	assert.Equal(t, "pngdata", string(got.body))
}

func TestPut_ServerErrorIsReturned(t *testing.T) {
	srv, _ := fakeS3(t, http.StatusForbidden)
	s := newTestStore(t, srv.URL)

	err := s.Put(context.Background(), "k.png", "image/png", bytes.NewReader([]byte("x")))
	assert.Error(t, err)
}

func TestURL(t *testing.T) {
	s := NewWithClient(nil, "catcollector", "https://s3.us-east-1.amazonaws.com/")
	assert.Equal(t, "https://s3.us-east-1.amazonaws.com/catcollector/abc.jpg", s.URL("abc.jpg"))

	noSlash := NewWithClient(nil, "catcollector", "https://s3.us-east-1.amazonaws.com")
	assert.Equal(t, "https://s3.us-east-1.amazonaws.com/catcollector/abc.jpg", noSlash.URL("abc.jpg"))
}

func TestNew_RequiresBucketAndBaseURL(t *testing.T) {
	_, err := New(Config{BaseURL: "https://x/"})
	assert.Error(t, err)
	_, err = New(Config{Bucket: "b"})
	assert.Error(t, err)
}
