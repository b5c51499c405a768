// files.go — выбор уникального имени, копирование, перемещение
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// renameFn подменяется в тестах, чтобы стабильно получить
// fallback copy+delete без второй файловой системы
var renameFn = os.Rename

// getUniqueDestinationPath возвращает путь в destinationDir, по которому
// ещё ничего не существует:
// 1) если destinationDir/filename свободен — вернёт его.
// 2) иначе перебирает stem_1.ext, stem_2.ext… начиная с 1 до первого
//    свободного имени. Пропуски не переиспользуются, верхней границы нет.
// Существование проверяется только в момент вызова.
func getUniqueDestinationPath(destinationDir, filename string) string {
	candidate := filepath.Join(destinationDir, filename)
	if _, err := os.Stat(candidate); os.IsNotExist(err) {
		return candidate
	}

	ext := filepath.Ext(filename)
	stem := strings.TrimSuffix(filename, ext)

	for i := 1; ; i++ {
		candidate = filepath.Join(destinationDir, fmt.Sprintf("%s_%d%s", stem, i, ext))
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate
		}
	}
}

// copyFile копирует содержимое src в dst.
// dst не должен существовать: файл создаётся эксклюзивно,
// чтобы не затереть появившийся между проверкой и записью файл.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source file: %w", err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o666)
	if err != nil {
		return fmt.Errorf("failed to create destination file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copy failed: %w", err)
	}
	return nil
}

// moveFile переносит src в dst: сначала атомарный rename,
// при любой его ошибке (обычно другая файловая система) — copy+delete.
// viaCopy=true означает, что сработал fallback.
// При ошибке fallback исходный файл остаётся на месте.
func moveFile(src, dst string) (viaCopy bool, err error) {
	if err := renameFn(src, dst); err == nil {
		return false, nil
	}

	if err := copyFile(src, dst); err != nil {
		return false, err
	}
	if err := os.Remove(src); err != nil {
		return true, fmt.Errorf("failed to remove source after copy: %w", err)
	}
	return true, nil
}
