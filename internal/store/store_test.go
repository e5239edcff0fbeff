package store

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.prisma")
	s := NewFileStore(path)

	const text = "model User {\n  id String @id\n}\n"
	require.NoError(t, s.Save(context.Background(), text))

	got, err := s.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, text, got)
}

func TestFileStore_LoadMissing(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "missing.prisma"))
	_, err := s.Load(context.Background())
	require.Error(t, err)
}

func TestHTTPStore_Load(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/schema", r.URL.Path)
		w.Write([]byte("enum Role {\n  ADMIN\n}\n"))
	}))
	defer srv.Close()

	s := NewHTTPStore(srv.URL)
	text, err := s.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, "enum Role {\n  ADMIN\n}\n", text)
}

func TestHTTPStore_Save(t *testing.T) {
	var posted string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/schema", r.URL.Path)
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		posted = string(body)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	s := NewHTTPStore(srv.URL + "/")
	require.NoError(t, s.Save(context.Background(), "model A {\n}\n"))
	require.Equal(t, "model A {\n}\n", posted)
}

func TestHTTPStore_LoadErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	s := NewHTTPStore(srv.URL)
	_, err := s.Load(context.Background())
	require.Error(t, err)
}
