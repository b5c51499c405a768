// reelocate — перемещает изображения или видео из дерева каталогов
// в один плоский каталог назначения
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var bar *progressbar.ProgressBar

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		mediaFlag string
		useLog    bool
	)

	cmd := &cobra.Command{
		Use:   "reelocate [source] [destination]",
		Short: "reelocate — move images or videos into a single flat directory",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			cfg = &AppConfig{UseLog: useLog}
			initLog()

			in := bufio.NewScanner(os.Stdin)

			media, err := resolveMediaType(mediaFlag, in)
			if err != nil {
				return err
			}

			srcDir, dstDir := resolveDirs(args, in)

			cfg.Media = media
			cfg.SrcDir = srcDir
			cfg.DstDir = dstDir
			logStartup()

			if err := checkPreconditions(); err != nil {
				logf(LogErr, "Error: %v", err)
				return err
			}

			total, err := countTargets(cfg.SrcDir, cfg.Media)
			if err != nil {
				logf(LogErr, "Error: failed to scan source: %v", err)
				return err
			}

			bar = progressbar.NewOptions(total,
				progressbar.OptionSetDescription("Moving"),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionShowCount(),
				progressbar.OptionShowIts(),
				progressbar.OptionSetPredictTime(true),
				progressbar.OptionClearOnFinish(),
			)

			if err := relocate(); err != nil {
				logf(LogErr, "Traversal error: %v", err)
				return err
			}

			logf(LogNotice, "done. %s moved: %d, skipped: %d",
				cfg.Media, cfg.MovedCount, cfg.SkippedCount)
			return nil
		},
	}

	cmd.Flags().StringVarP(&mediaFlag, "type", "t", "", "Media type to move: images or videos (default: ask)")
	cmd.Flags().BoolVar(&useLog, "log", false, "Append a detailed run log to reelocate.log")
	// ошибки печатаем сами через logf, cobra их не дублирует
	cmd.SilenceErrors = true

	return cmd
}

// resolveMediaType берёт категорию из флага --type,
// а при его отсутствии показывает меню оригинала (1/2)
func resolveMediaType(flag string, in *bufio.Scanner) (MediaType, error) {
	if flag != "" {
		switch toLower(flag) {
		case "images":
			return MediaImages, nil
		case "videos":
			return MediaVideos, nil
		default:
			err := fmt.Errorf("invalid media type %q: use images or videos", flag)
			logf(LogErr, "Error: %v", err)
			return MediaUnknown, err
		}
	}

	fmt.Println("Choose media type to move:")
	fmt.Println("1) Images")
	fmt.Println("2) Videos")
	fmt.Print("Enter 1 or 2: ")
	in.Scan()

	media, err := parseMediaChoice(strings.TrimSpace(in.Text()))
	if err != nil {
		logf(LogErr, "Error: %v", err)
		return MediaUnknown, err
	}
	return media, nil
}

// parseMediaChoice разбирает пункт меню: 1 — изображения, 2 — видео,
// всё остальное — фатальная ошибка ввода
func parseMediaChoice(choice string) (MediaType, error) {
	switch choice {
	case "1":
		return MediaImages, nil
	case "2":
		return MediaVideos, nil
	default:
		return MediaUnknown, errors.New("invalid choice, please run again and choose 1 or 2")
	}
}

// resolveDirs берёт каталоги из аргументов, недостающие спрашивает
func resolveDirs(args []string, in *bufio.Scanner) (srcDir, dstDir string) {
	if len(args) > 0 {
		srcDir = args[0]
	} else {
		fmt.Print("Enter source folder path: ")
		in.Scan()
		srcDir = strings.TrimSpace(in.Text())
	}

	if len(args) > 1 {
		dstDir = args[1]
	} else {
		fmt.Print("Enter destination folder path: ")
		in.Scan()
		dstDir = strings.TrimSpace(in.Text())
	}

	return srcDir, dstDir
}

// checkPreconditions валидирует каталоги до любых перемещений:
// источник существует и является каталогом, назначение — не тот же
// каталог; назначение создаётся вместе с родителями
func checkPreconditions() error {
	srcInfo, err := os.Stat(cfg.SrcDir)
	if err != nil || !srcInfo.IsDir() {
		return errors.New("source path does not exist or is not a directory")
	}

	if dstInfo, err := os.Stat(cfg.DstDir); err == nil {
		if os.SameFile(srcInfo, dstInfo) {
			return errors.New("source and destination cannot be the same folder")
		}
	}

	if err := os.MkdirAll(cfg.DstDir, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create destination directory: %w", err)
	}
	return nil
}

// countTargets считает подходящие файлы для прогресс-бара
func countTargets(root string, media MediaType) (int, error) {
	count := 0
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrPermission) {
				return nil
			}
			return err
		}
		if isRegularFile(path, d) && isTargetFile(path, media) {
			count++
		}
		return nil
	})
	return count, err
}

// isRegularFile повторяет семантику fs::is_regular_file:
// символические ссылки разыменовываются, битая ссылка — не файл
func isRegularFile(path string, d os.DirEntry) bool {
	if d.IsDir() {
		return false
	}
	if d.Type().IsRegular() {
		return true
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// relocate — основной цикл: обход источника, классификация,
// выбор уникального имени и перемещение. Ошибки отдельных файлов
// учитываются и не прерывают обход; ошибка самого обхода — фатальна.
func relocate() error {
	return filepath.WalkDir(cfg.SrcDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			// как skip_permission_denied: недоступные записи пропускаем
			if errors.Is(err, fs.ErrPermission) {
				return nil
			}
			return err
		}

		if !isRegularFile(path, d) {
			return nil
		}
		if !isTargetFile(path, cfg.Media) {
			return nil
		}

		filename := filepath.Base(path)
		// структура подкаталогов не сохраняется: всё в корень назначения
		dst := getUniqueDestinationPath(cfg.DstDir, filename)
		if filepath.Base(dst) != filename {
			cfg.RenamedList = append(cfg.RenamedList, path)
			logf(LogInfo, "renamed %s -> %s", filename, filepath.Base(dst))
		}

		viaCopy, err := moveFile(path, dst)
		if err != nil {
			cfg.SkippedCount++
			cfg.SkipList = append(cfg.SkipList, path)
			logf(LogErr, "Skipped: %s (%v)", path, err)
			if bar != nil {
				bar.Add(1)
			}
			return nil
		}

		cfg.MovedCount++
		if viaCopy {
			logf(LogNotice, "moved (copy+delete): %s -> %s", path, dst)
		} else {
			logf(LogNotice, "moved: %s -> %s", path, dst)
		}

		if cfg.UseLog {
			if t, err := getMediaDate(dst, cfg.Media); err == nil {
				logf(LogInfo, "capture date of %s: %s", filepath.Base(dst), t.Format("2006-01-02 15:04:05"))
			} else {
				logf(LogWarning, "failed to get capture date of %s: %v", filepath.Base(dst), err)
			}
		}

		if bar != nil {
			bar.Add(1)
		}
		return nil
	})
}
