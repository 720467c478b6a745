package remote

type Option func(*Options)

type Options struct {
	TempDir string
}

// WithTempDir устанавливает каталог для стягиваемых временных файлов.
// Пустое значение означает каталог по умолчанию (os.TempDir).
func WithTempDir(dir string) Option {
	return func(o *Options) {
		o.TempDir = dir
	}
}
