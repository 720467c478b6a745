package remote

import (
	"context"
	"fmt"
	"sync"
)

var (
	storagesMu sync.RWMutex
	storages   = make(map[string]Storage)
)

type Storage interface {
	NewStorage(ctx context.Context, connString string) (Storage, error)

	// Get стягивает объект в локальный временный файл и возвращает путь к нему.
	// Удаление файла — обязанность вызывающей стороны.
	Get(ctx context.Context, name string, opts ...Option) (string, error)

	// Stat получает информацию об объекте.
	Stat(ctx context.Context, name string) (FileInfo, error)

	// Exists определяет, существует ли объект.
	Exists(ctx context.Context, name string) (bool, error)

	// Close освобождает ресурсы сессии.
	Close() error
}

// NewStorage создаёт новый экземпляр удаленного хранилища.
func NewStorage(ctx context.Context, connString string) (Storage, error) {
	scheme, err := schemeFromURL(connString)
	if err != nil {
		return nil, err
	}

	storagesMu.RLock()
	s, ok := storages[scheme]
	storagesMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("unknown storage %v (forgotten import?)", scheme)
	}

	return s.NewStorage(ctx, connString)
}

// Get открывает сессию хранилища по URI объекта, стягивает объект во
// временный файл, закрывает сессию и возвращает путь к файлу.
func Get(ctx context.Context, uri string, opts ...Option) (string, error) {
	s, err := NewStorage(ctx, uri)
	if err != nil {
		return "", err
	}
	defer s.Close()

	return s.Get(ctx, "", opts...)
}

// IsRemote сообщает, зарегистрировано ли хранилище для схемы URI.
func IsRemote(uri string) bool {
	scheme, err := schemeFromURL(uri)
	if err != nil {
		return false
	}

	storagesMu.RLock()
	defer storagesMu.RUnlock()

	_, ok := storages[scheme]
	return ok
}

// Register глобально регистрирует хранилище.
func Register(name string, storage Storage) {
	storagesMu.Lock()
	defer storagesMu.Unlock()

	if storage == nil {
		panic("Register storage is nil")
	}

	if _, exists := storages[name]; exists {
		panic("Register called twice for storage " + name)
	}

	storages[name] = storage
}
