package utils

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// SaveBase64Image writes a base64-encoded image under folder and returns the
// saved path. Used for menu item pictures; the folder is served statically.
func SaveBase64Image(b64, folder string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(folder, 0755); err != nil {
		return "", err
	}
	filename := fmt.Sprintf("%d.png", time.Now().UnixNano())
	path := filepath.Join(folder, filename)

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}
