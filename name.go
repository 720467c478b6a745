package includefile

import (
	"math/rand"
	"path/filepath"
	"regexp"
	"strconv"
	"time"
)

// unsafeNameChars — символы, недопустимые в идентификаторе.
var unsafeNameChars = regexp.MustCompile(`[^a-zA-Z0-9_]`)

// Namer выдаёт уникальные идентификаторы для найденных файлов. Источник
// случайности передаётся снаружи, чтобы тесты на коллизии имён были
// воспроизводимыми.
type Namer struct {
	base string
	rng  *rand.Rand
	used map[string]struct{}
}

// NewNamer создаёт генератор имён с общим префиксом base. При rng == nil
// используется источник, затравленный текущим временем.
func NewNamer(base string, rng *rand.Rand) *Namer {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Namer{base: base, rng: rng, used: make(map[string]struct{})}
}

// Name очищает имя файла от каталога и недопустимых символов, добавляет
// префикс и регистрирует результат. Повтор получает случайный двухзначный
// суффикс, который перебирается до тех пор, пока имя не станет уникальным.
// Файлы с совпадающими базовыми именами различаются только суффиксом,
// поэтому сгенерированное имя не детерминировано между запусками.
func (n *Namer) Name(path string) string {
	name := unsafeNameChars.ReplaceAllString(filepath.Base(path), "_")
	name = n.base + "_" + name

	ending := ""
	for {
		if _, exists := n.used[name+ending]; !exists {
			break
		}
		ending = strconv.Itoa(n.rng.Intn(10)) + strconv.Itoa(n.rng.Intn(10))
	}
	name += ending

	n.used[name] = struct{}{}
	return name
}
