package includefile

import (
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/pflag"
)

// Converter превращает сырое значение аргумента командной строки в объект,
// который можно разрешить позже. При неудаче возвращается ошибка с текстом
// для пользователя — разбор аргументов на ней прерывается.
type Converter interface {
	Convert(raw string) (any, error)
}

// Убеждаемся в том, что адаптеры реализуют нужные интерфейсы.
var (
	_ Converter = FilePath{}
	_ Converter = FileGlob{}

	_ pflag.Value = (*FileValue)(nil)
	_ pflag.Value = (*GlobValue)(nil)
)

// FilePath — адаптер параметра с одиночным файлом.
type FilePath struct {
	IsText   bool
	Encoding string
	Logger   Logger
	TempDir  string
}

func (p FilePath) Convert(raw string) (any, error) {
	return p.ConvertFile(raw)
}

// ConvertFile раскрывает «~», проверяет доступность пути и возвращает
// неразрешённый File. Содержимое на этом этапе не читается.
func (p FilePath) ConvertFile(raw string) (*File, error) {
	path := ExpandUser(raw)

	if ok, reason := IsReachable(path); !ok {
		return nil, &UnreachableError{Path: path, Reason: reason}
	}

	return NewFile(path, p.fileOptions()...), nil
}

func (p FilePath) fileOptions() []FileOption {
	var opts []FileOption
	if !p.IsText {
		opts = append(opts, AsBinary())
	}
	if p.Encoding != "" {
		opts = append(opts, WithEncoding(p.Encoding))
	}
	if p.Logger != nil {
		opts = append(opts, WithLogger(p.Logger))
	}
	if p.TempDir != "" {
		opts = append(opts, WithTempDir(p.TempDir))
	}
	return opts
}

// FileGlob — адаптер параметра с глоб-шаблоном. Name служит префиксом
// генерируемых идентификаторов. Recursive включает шаблоны с «**».
type FileGlob struct {
	Name      string
	IsText    bool
	Encoding  string
	Recursive bool
	Logger    Logger
	TempDir   string
	Rand      *rand.Rand
}

func (p FileGlob) Convert(raw string) (any, error) {
	return p.ConvertGlob(raw)
}

// ConvertGlob раскрывает шаблон по локальной файловой системе и собирает
// группу. Отсутствие совпадений и нечитаемые совпадения ошибкой не
// считаются: пустая группа — допустимый результат.
func (p FileGlob) ConvertGlob(raw string) (*FileGroup, error) {
	pattern := ExpandUser(raw)

	var matches []string
	var err error
	if p.Recursive {
		matches, err = doublestar.FilepathGlob(pattern)
	} else {
		matches, err = filepath.Glob(pattern)
	}
	if err != nil {
		return nil, err
	}

	fp := FilePath{IsText: p.IsText, Encoding: p.Encoding, Logger: p.Logger, TempDir: p.TempDir}
	group := NewFileGroup(p.Name, WithRand(p.Rand), WithFileOptions(fp.fileOptions()...))

	for _, match := range matches {
		group.AddMatch(match)
	}

	return group, nil
}

// ExpandUser раскрывает префикс «~» в домашний каталог пользователя.
// Раскрытие выполняется до любых обращений к файловой системе.
func ExpandUser(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// FileValue подключает одиночный файловый параметр к pflag.
type FileValue struct {
	conv FilePath
	file *File
}

// NewFileValue создаёт значение параметра для pflag.FlagSet.Var.
func NewFileValue(conv FilePath) *FileValue {
	return &FileValue{conv: conv}
}

func (v *FileValue) Set(raw string) error {
	f, err := v.conv.ConvertFile(raw)
	if err != nil {
		return err
	}
	v.file = f
	return nil
}

func (v *FileValue) String() string {
	if v.file == nil {
		return ""
	}
	return v.file.Name()
}

func (v *FileValue) Type() string { return "FilePath" }

// File возвращает созданный при разборе аргументов файл или nil, если
// параметр не был задан.
func (v *FileValue) File() *File { return v.file }

// GlobValue подключает параметр с глоб-шаблоном к pflag.
type GlobValue struct {
	conv    FileGlob
	pattern string
	group   *FileGroup
}

// NewGlobValue создаёт значение параметра для pflag.FlagSet.Var.
func NewGlobValue(conv FileGlob) *GlobValue {
	return &GlobValue{conv: conv}
}

func (v *GlobValue) Set(raw string) error {
	group, err := v.conv.ConvertGlob(raw)
	if err != nil {
		return err
	}
	v.pattern = raw
	v.group = group
	return nil
}

func (v *GlobValue) String() string { return v.pattern }

func (v *GlobValue) Type() string { return "FileGlob" }

// Group возвращает собранную при разборе аргументов группу или nil, если
// параметр не был задан.
func (v *GlobValue) Group() *FileGroup { return v.group }
