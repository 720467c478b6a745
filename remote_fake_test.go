package includefile

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/tenrok/includefile/remote"
)

// fakeStore — тестовое удалённое хранилище, зарегистрированное под схемой
// «fake». Объекты регистрируются по полному URI, стягивание фиксирует пути
// временных файлов, чтобы тесты могли проверить их удаление.
type fakeStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	fails   map[string]error
	staged  []string
}

var testStore = &fakeStore{
	objects: make(map[string][]byte),
	fails:   make(map[string]error),
}

func init() {
	remote.Register("fake", testStore)
}

func (s *fakeStore) put(uri string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[uri] = data
}

func (s *fakeStore) failWith(uri string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fails[uri] = err
}

func (s *fakeStore) stagedPaths() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.staged...)
}

func (s *fakeStore) NewStorage(ctx context.Context, connString string) (remote.Storage, error) {
	return &fakeSession{store: s, uri: connString}, nil
}

func (s *fakeStore) Get(ctx context.Context, name string, opts ...remote.Option) (string, error) {
	return "", fmt.Errorf("fake: no session")
}

func (s *fakeStore) Stat(ctx context.Context, name string) (remote.FileInfo, error) {
	return nil, fmt.Errorf("fake: no session")
}

func (s *fakeStore) Exists(ctx context.Context, name string) (bool, error) {
	return false, fmt.Errorf("fake: no session")
}

func (s *fakeStore) Close() error { return nil }

// fakeSession — сессия тестового хранилища для одного URI.
type fakeSession struct {
	store *fakeStore
	uri   string
}

func (s *fakeSession) NewStorage(ctx context.Context, connString string) (remote.Storage, error) {
	return &fakeSession{store: s.store, uri: connString}, nil
}

func (s *fakeSession) Get(ctx context.Context, name string, opts ...remote.Option) (string, error) {
	o := &remote.Options{}
	for _, opt := range opts {
		opt(o)
	}

	s.store.mu.Lock()
	failErr := s.store.fails[s.uri]
	data, ok := s.store.objects[s.uri]
	s.store.mu.Unlock()

	if failErr != nil {
		return "", failErr
	}
	if !ok {
		return "", fmt.Errorf("fake: object %q does not exist", s.uri)
	}

	tmpfile, err := os.CreateTemp(o.TempDir, "fakestorage")
	if err != nil {
		return "", err
	}
	if _, err := tmpfile.Write(data); err != nil {
		tmpfile.Close()
		os.Remove(tmpfile.Name())
		return "", err
	}
	if err := tmpfile.Close(); err != nil {
		os.Remove(tmpfile.Name())
		return "", err
	}

	s.store.mu.Lock()
	s.store.staged = append(s.store.staged, tmpfile.Name())
	s.store.mu.Unlock()

	return tmpfile.Name(), nil
}

func (s *fakeSession) Stat(ctx context.Context, name string) (remote.FileInfo, error) {
	return nil, fmt.Errorf("fake: Stat is not supported")
}

func (s *fakeSession) Exists(ctx context.Context, name string) (bool, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	_, ok := s.store.objects[s.uri]
	return ok, nil
}

func (s *fakeSession) Close() error { return nil }
