package memstore

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"
)

// Store guarda los objetos en memoria. Se usa en modo dev y en tests.
type Store struct {
	mu      sync.RWMutex
	objects map[string]Object
	baseURL string

	// Err, si no es nil, lo devuelve Put sin guardar nada.
	Err error
}

type Object struct {
	ContentType string
	Data        []byte
}

func New(baseURL string) *Store {
	return &Store{objects: make(map[string]Object), baseURL: baseURL}
}

func (s *Store) Put(ctx context.Context, key, contentType string, body io.ReadSeeker) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	s.objects[key] = Object{ContentType: contentType, Data: data}
	return nil
}

func (s *Store) URL(key string) string {
	return s.baseURL + key
}

func (s *Store) Get(key string) (Object, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.objects[key]
	return o, ok
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}

// SetErr hace fallar (o no) los próximos Put.
func (s *Store) SetErr(err error) {
	s.mu.Lock()
	s.Err = err
	s.mu.Unlock()
}

// ServeHTTP sirve los objetos guardados; la key es el último segmento del path.
// Permite ver las fotos en modo dev sin bucket real.
func (s *Store) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Path[strings.LastIndex(r.URL.Path, "/")+1:]
	o, ok := s.Get(key)
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", o.ContentType)
	http.ServeContent(w, r, key, time.Time{}, bytes.NewReader(o.Data))
}
