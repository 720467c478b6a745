package includefile

// sizeUnits — единицы измерения размера файла.
var sizeUnits = [...]string{"B", "KB", "MB", "GB", "TB"}

// FormatSize переводит размер в байтах в удобочитаемую величину с единицей
// измерения. Третье значение сообщает, что размер достиг гигабайта и чтение
// может занять заметное время. На терабайтах деление останавливается,
// поэтому значение может превысить 1024.
func FormatSize(size int64) (int64, string, bool) {
	pos := 0
	for pos < len(sizeUnits)-1 && size >= 1024 {
		size /= 1024
		pos++
	}
	return size, sizeUnits[pos], pos >= 3
}
