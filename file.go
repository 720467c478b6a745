package includefile

import (
	"context"
	"fmt"
	"os"
	"unicode/utf8"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/transform"

	"github.com/tenrok/includefile/remote"
)

// File описывает один включаемый файл: локальный путь или URI удалённого
// хранилища. Создание дешёвое, содержимое читается только при вызове
// Resolve. Удалённый объект на время чтения стягивается во временный файл,
// который удаляется при любом исходе.
type File struct {
	path     string
	isText   bool
	encoding string
	tempDir  string
	size     int64
	logger   Logger
}

type FileOption func(*File)

// AsBinary отключает текстовый режим: Resolve возвращает сырые байты.
func AsBinary() FileOption {
	return func(f *File) {
		f.isText = false
	}
}

// WithEncoding задаёт кодировку текстового содержимого. Пустое значение
// означает UTF-8.
func WithEncoding(encoding string) FileOption {
	return func(f *File) {
		f.encoding = encoding
	}
}

// WithLogger заменяет журнал по умолчанию.
func WithLogger(logger Logger) FileOption {
	return func(f *File) {
		f.logger = logger
	}
}

// WithTempDir устанавливает каталог для временных файлов при стягивании
// удалённых объектов.
func WithTempDir(dir string) FileOption {
	return func(f *File) {
		f.tempDir = dir
	}
}

// NewFile создаёт описание файла. По умолчанию файл считается текстовым
// в кодировке UTF-8, сообщения идут в журнал по умолчанию.
func NewFile(path string, opts ...FileOption) *File {
	f := &File{
		path:   path,
		isText: true,
		logger: DefaultLogger(),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// IsReachable проверяет, что путь в принципе доступен для чтения. URI
// удалённого хранилища не проверяется: его существование выяснится при
// разрешении. Локальный путь пробуем открыть; при неудаче возвращается
// причина для пользователя. Проверка предварительная — Resolve всё равно
// может завершиться ошибкой.
func IsReachable(path string) (bool, string) {
	if remote.IsRemote(path) {
		return true, ""
	}

	fh, err := os.Open(path)
	if err != nil {
		return false, fmt.Sprintf("Could not open file '%s'", path)
	}
	fi, err := fh.Stat()
	fh.Close()
	if err != nil || fi.IsDir() {
		return false, fmt.Sprintf("Could not open file '%s'", path)
	}

	return true, ""
}

// Resolve читает содержимое файла. В текстовом режиме байты декодируются
// в UTF-8 согласно заданной кодировке. Повторный вызов читает файл заново,
// для удалённого пути — с повторным стягиванием.
func (f *File) Resolve(ctx context.Context) ([]byte, error) {
	local := f.path

	if remote.IsRemote(f.path) {
		tmp, err := f.stage(ctx)
		if err != nil {
			return nil, err
		}
		defer os.Remove(tmp)
		local = tmp
	}

	return f.readLocal(local)
}

// stage создаёт собственный временный файл и перемещает в него объект,
// полученный от клиента хранилища. Файл клиента при этом не остаётся
// на диске даже при ошибке перемещения.
func (f *File) stage(ctx context.Context) (string, error) {
	tmpfile, err := os.CreateTemp(f.tempDir, "includefile")
	if err != nil {
		return "", err
	}
	tmpfile.Close()

	f.log(fmt.Sprintf("Fetching %s from remote storage to temporary file %s", f.path, tmpfile.Name()))

	fetched, err := remote.Get(ctx, f.path, remote.WithTempDir(f.tempDir))
	if err != nil {
		os.Remove(tmpfile.Name())
		return "", err
	}

	if err := os.Rename(fetched, tmpfile.Name()); err != nil {
		os.Remove(fetched)
		os.Remove(tmpfile.Name())
		return "", err
	}

	return tmpfile.Name(), nil
}

// readLocal читает содержимое по локальному пути и запоминает размер.
func (f *File) readLocal(path string) ([]byte, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	f.size = fi.Size()

	sz, unit, large := FormatSize(f.size)
	extra := ""
	if large {
		extra = " (this may take a while)"
	}
	f.log(fmt.Sprintf("Including file %s of size %d%s%s", f.path, sz, unit, extra))

	data, err := os.ReadFile(path)
	if err != nil {
		// Файл существует, но прочитать его целиком не удалось.
		return nil, &ResolutionError{Path: f.path, Msg: "file too large or unreadable", Err: err}
	}

	if f.isText {
		return f.decode(data)
	}
	return data, nil
}

// decode приводит текстовое содержимое к UTF-8.
func (f *File) decode(data []byte) ([]byte, error) {
	if f.encoding == "" {
		if !utf8.Valid(data) {
			return nil, &ResolutionError{Path: f.path, Msg: "content is not valid UTF-8"}
		}
		return data, nil
	}

	enc, _ := charset.Lookup(f.encoding)
	if enc == nil {
		return nil, &ResolutionError{Path: f.path, Msg: fmt.Sprintf("unknown encoding %q", f.encoding)}
	}

	decoded, _, err := transform.Bytes(enc.NewDecoder(), data)
	if err != nil {
		return nil, &ResolutionError{Path: f.path, Msg: fmt.Sprintf("cannot decode content as %s", f.encoding), Err: err}
	}
	return decoded, nil
}

func (f *File) log(msg string) {
	if f.logger == nil {
		return
	}
	defer func() { _ = recover() }()
	f.logger(msg)
}

// Name возвращает исходный путь, как его задал пользователь.
func (f *File) Name() string { return f.path }

// Size возвращает размер файла в байтах. До первого успешного Resolve
// значение равно нулю.
func (f *File) Size() int64 { return f.size }
