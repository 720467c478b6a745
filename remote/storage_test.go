package remote

import (
	"context"
	"os"
	"strings"
	"testing"
)

// stubStorage — минимальная реализация Storage для проверки реестра.
type stubStorage struct {
	connString string
}

func (s *stubStorage) NewStorage(ctx context.Context, connString string) (Storage, error) {
	return &stubStorage{connString: connString}, nil
}

func (s *stubStorage) Get(ctx context.Context, name string, opts ...Option) (string, error) {
	o := &Options{}
	for _, opt := range opts {
		opt(o)
	}

	tmpfile, err := os.CreateTemp(o.TempDir, "stubstorage")
	if err != nil {
		return "", err
	}
	if _, err := tmpfile.WriteString(s.connString); err != nil {
		tmpfile.Close()
		os.Remove(tmpfile.Name())
		return "", err
	}
	if err := tmpfile.Close(); err != nil {
		os.Remove(tmpfile.Name())
		return "", err
	}
	return tmpfile.Name(), nil
}

func (s *stubStorage) Stat(ctx context.Context, name string) (FileInfo, error) {
	return nil, os.ErrNotExist
}

func (s *stubStorage) Exists(ctx context.Context, name string) (bool, error) {
	return false, nil
}

func (s *stubStorage) Close() error { return nil }

func init() {
	Register("stub", &stubStorage{})
}

func TestSchemeFromURL(t *testing.T) {
	cases := []struct {
		name        string
		url         string
		expected    string
		expectedErr error
	}{
		{"full URI", "stub://bucket/key.txt", "stub", nil},
		{"scheme only", "minio:", "minio", nil},
		{"empty", "", "", ErrEmptyURL},
		{"no scheme", "/local/path.txt", "", ErrNoScheme},
		{"colon first", ":oops", "", ErrNoScheme},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			scheme, err := schemeFromURL(tc.url)
			if err != tc.expectedErr {
				t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
			}
			if scheme != tc.expected {
				t.Errorf("expected %q, got %q", tc.expected, scheme)
			}
		})
	}
}

func TestNewStorageUnknownScheme(t *testing.T) {
	_, err := NewStorage(context.Background(), "bogus://bucket/key")
	if err == nil || !strings.Contains(err.Error(), "unknown storage") {
		t.Fatalf("expected unknown storage error, got %v", err)
	}
}

func TestIsRemote(t *testing.T) {
	cases := []struct {
		name     string
		uri      string
		expected bool
	}{
		{"registered scheme", "stub://bucket/key", true},
		{"unregistered scheme", "bogus://bucket/key", false},
		{"local path", "/tmp/file.txt", false},
		{"relative path", "file.txt", false},
		{"empty", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsRemote(tc.uri); got != tc.expected {
				t.Errorf("IsRemote(%q) = %v, expected %v", tc.uri, got, tc.expected)
			}
		})
	}
}

func TestGet(t *testing.T) {
	dir := t.TempDir()

	path, err := Get(context.Background(), "stub://bucket/key.txt", WithTempDir(dir))
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(path)

	if !strings.HasPrefix(path, dir) {
		t.Errorf("temp file %q created outside %q", path, dir)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "stub://bucket/key.txt" {
		t.Errorf("unexpected staged content %q", data)
	}
}
