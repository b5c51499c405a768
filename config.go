// config.go — глобальная конфигурация приложения
package main

// AppConfig хранит параметры запуска и накопленные результаты
type AppConfig struct {
	SrcDir string
	DstDir string
	Media  MediaType
	// флаги из CLI
	UseLog bool
	// счётчики прогона
	MovedCount   int
	SkippedCount int
	// списки для итогового отчёта
	SkipList    []string
	RenamedList []string
}

// cfg доступен из любого файла пакета main
var cfg *AppConfig
