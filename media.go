// media.go — классификация файлов по расширению
package main

import "path/filepath"

type MediaType int

const (
	MediaUnknown MediaType = iota
	MediaImages
	MediaVideos
)

// String возвращает метку категории для отчёта
func (t MediaType) String() string {
	switch t {
	case MediaImages:
		return "images"
	case MediaVideos:
		return "videos"
	default:
		return "unknown"
	}
}

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".bmp":  true,
	".tiff": true,
	".tif":  true,
	".webp": true,
	".heic": true,
	".ico":  true,
}

var videoExtensions = map[string]bool{
	".mp4":  true,
	".mov":  true,
	".avi":  true,
	".mkv":  true,
	".wmv":  true,
	".flv":  true,
	".webm": true,
	".mpeg": true,
	".mpg":  true,
	".m4v":  true,
}

// toLower переводит ASCII-буквы в нижний регистр побайтово,
// остальные байты не трогает
func toLower(s string) string {
	b := []byte(s)
	for i := 0; i < len(b); i++ {
		if b[i] >= 'A' && b[i] <= 'Z' {
			b[i] += 'a' - 'A'
		}
	}
	return string(b)
}

// isTargetFile проверяет, относится ли файл к выбранной категории.
// Сопоставление по расширению, без учёта регистра, строго по таблице.
func isTargetFile(path string, mediaType MediaType) bool {
	ext := toLower(filepath.Ext(path))
	if mediaType == MediaImages {
		return imageExtensions[ext]
	}
	return videoExtensions[ext]
}
