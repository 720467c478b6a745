package includefile

import "fmt"

// UnreachableError возвращается предварительной проверкой, когда локальный
// файл не удаётся открыть на чтение. Для одиночного параметра такая ошибка
// прерывает разбор аргументов; при раскрытии глоб-шаблона совпадение просто
// пропускается.
type UnreachableError struct {
	Path   string
	Reason string
}

func (e *UnreachableError) Error() string { return e.Reason }

// ResolutionError возвращается при неудачном чтении содержимого: файл не
// декодируется в заданной кодировке либо не читается целиком, хотя и
// существует. Низкоуровневая причина сохраняется в Err.
type ResolutionError struct {
	Path string
	Msg  string
	Err  error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("cannot include file at %s: %s", e.Path, e.Msg)
}

func (e *ResolutionError) Unwrap() error { return e.Err }
