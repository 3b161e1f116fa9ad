package cli

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"strings"
)

// maxImageBytes - предел размера одного файла.
const maxImageBytes = 5 << 20

// LoadImage читает файл и возвращает data URI. Ссылки http(s) и data: возвращаются как есть.
func LoadImage(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if strings.HasPrefix(ref, "data:") || strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref, nil
	}

	info, err := os.Stat(ref)
	if err != nil {
		return "", fmt.Errorf("failed to read image %s: %w", ref, err)
	}
	if info.Size() > maxImageBytes {
		return "", fmt.Errorf("image %s is larger than %d MB", ref, maxImageBytes>>20)
	}
	data, err := os.ReadFile(ref)
	if err != nil {
		return "", fmt.Errorf("failed to read image %s: %w", ref, err)
	}

	mime := http.DetectContentType(data)
	if !strings.HasPrefix(mime, "image/") {
		return "", fmt.Errorf("file %s is not an image (%s)", ref, mime)
	}
	return fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(data)), nil
}
