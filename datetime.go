// datetime.go — дата съёмки перемещённого файла для подробного лога
package main

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/abema/go-mp4"
	"github.com/rwcarlsen/goexif/exif"
)

// контейнеры семейства MP4/QuickTime с боксом mvhd
var mp4Extensions = map[string]bool{
	".mp4": true,
	".m4v": true,
	".mov": true,
}

// начало отсчёта времени в mvhd
var mp4Epoch = time.Date(1904, time.January, 1, 0, 0, 0, 0, time.UTC)

// getMediaDate возвращает дату съёмки файла:
// EXIF для изображений, creation time из mvhd для видео MP4-семейства,
// иначе — mtime файла.
func getMediaDate(path string, mediaType MediaType) (time.Time, error) {
	switch mediaType {
	case MediaImages:
		if t, err := exifDate(path); err == nil {
			return t, nil
		}
	case MediaVideos:
		if t, err := mp4Date(path); err == nil {
			return t, nil
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, err
	}
	return info.ModTime(), nil
}

func exifDate(path string) (time.Time, error) {
	f, err := os.Open(path)
	if err != nil {
		return time.Time{}, err
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return time.Time{}, err
	}
	return x.DateTime()
}

func mp4Date(path string) (time.Time, error) {
	if !mp4Extensions[toLower(filepath.Ext(path))] {
		return time.Time{}, errors.New("not an mp4 container")
	}

	f, err := os.Open(path)
	if err != nil {
		return time.Time{}, err
	}
	defer f.Close()

	boxes, err := mp4.ExtractBoxWithPayload(f, nil,
		mp4.BoxPath{mp4.BoxTypeMoov(), mp4.BoxTypeMvhd()})
	if err != nil {
		return time.Time{}, err
	}
	if len(boxes) == 0 {
		return time.Time{}, errors.New("no mvhd box")
	}
	mvhd, ok := boxes[0].Payload.(*mp4.Mvhd)
	if !ok {
		return time.Time{}, errors.New("unexpected mvhd payload")
	}

	sec := uint64(mvhd.CreationTimeV0)
	if mvhd.GetVersion() == 1 {
		sec = mvhd.CreationTimeV1
	}
	if sec == 0 {
		return time.Time{}, errors.New("mvhd creation time is not set")
	}
	return mp4Epoch.Add(time.Duration(sec) * time.Second), nil
}
