package includefile

import (
	"context"
	"iter"
	"math/rand"
	"os"
)

// Entry — результат разрешения одного файла группы.
type Entry struct {
	Name    string
	Content []byte
	Size    int64
}

// FileGroup — набор файлов, найденных по глоб-шаблону. Каждому файлу
// выдаётся уникальный идентификатор с общим префиксом, чтобы дальше по
// конвейеру на файлы можно было ссылаться как на отдельные значения.
// После раскрытия шаблона состав группы не меняется.
type FileGroup struct {
	base     string
	rng      *rand.Rand
	fileOpts []FileOption
	namer    *Namer
	names    []string // порядок добавления
	files    map[string]*File
}

type GroupOption func(*FileGroup)

// WithRand задаёт источник случайности для суффиксов имён.
func WithRand(rng *rand.Rand) GroupOption {
	return func(g *FileGroup) {
		g.rng = rng
	}
}

// WithFileOptions задаёт параметры, с которыми создаются файлы группы.
func WithFileOptions(opts ...FileOption) GroupOption {
	return func(g *FileGroup) {
		g.fileOpts = opts
	}
}

// NewFileGroup создаёт пустую группу с префиксом имён base.
func NewFileGroup(base string, opts ...GroupOption) *FileGroup {
	g := &FileGroup{
		base:  base,
		files: make(map[string]*File),
	}

	for _, opt := range opts {
		opt(g)
	}

	g.namer = NewNamer(g.base, g.rng)

	return g
}

// AddMatch добавляет найденный по шаблону путь. Недоступный для чтения
// файл или каталог молча пропускается: раскрытие шаблона собирает максимум
// возможного, и отдельная ошибка по каждому пропуску не возвращается.
func (g *FileGroup) AddMatch(path string) {
	fh, err := os.Open(path)
	if err != nil {
		return
	}
	fi, err := fh.Stat()
	fh.Close()
	if err != nil || fi.IsDir() {
		return
	}

	name := g.namer.Name(path)
	g.names = append(g.names, name)
	g.files[name] = NewFile(path, g.fileOpts...)
}

// Len возвращает число файлов в группе.
func (g *FileGroup) Len() int { return len(g.names) }

// ReferenceMap возвращает соответствие идентификатор → исходный путь,
// не читая содержимого.
func (g *FileGroup) ReferenceMap() map[string]string {
	refs := make(map[string]string, len(g.files))
	for name, f := range g.files {
		refs[name] = f.Name()
	}
	return refs
}

// ProduceAll лениво разрешает файлы группы по одному в порядке добавления.
// Ошибка разрешения отдаётся вместе с именем файла, обход продолжается.
// Повторный проход читает (а для удалённых путей заново стягивает) каждый
// файл ещё раз; результат при необходимости кэширует вызывающая сторона.
func (g *FileGroup) ProduceAll(ctx context.Context) iter.Seq2[Entry, error] {
	return func(yield func(Entry, error) bool) {
		for _, name := range g.names {
			f := g.files[name]

			content, err := f.Resolve(ctx)
			if err != nil {
				if !yield(Entry{Name: name}, err) {
					return
				}
				continue
			}

			if !yield(Entry{Name: name, Content: content, Size: f.Size()}, nil) {
				return
			}
		}
	}
}
