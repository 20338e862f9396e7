package audio

import (
	"crypto/md5"
	"encoding/hex"
	"io"
	"os"
	"path/filepath"
)

// cacheFilePath derives the cache location for a generated clip. The key
// covers the text plus every setting that changes the audio (provider name,
// locale), hashed and sharded into two-character subdirectories.
func cacheFilePath(cacheDir string, keyParts ...string) string {
	h := md5.New()
	for _, part := range keyParts {
		h.Write([]byte(part))
	}
	hash := hex.EncodeToString(h.Sum(nil))

	// Use first 2 chars as subdirectory for better file system performance
	subdir := hash[:2]
	filename := hash[2:] + ".mp3"

	return filepath.Join(cacheDir, subdir, filename)
}

// copyFile copies a file from src to dst, creating the destination directory
func copyFile(src, dst string) error {
	dir := filepath.Dir(dst)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	source, err := os.Open(src)
	if err != nil {
		return err
	}
	defer source.Close()

	destination, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer destination.Close()

	_, err = io.Copy(destination, source)
	return err
}

// ClearCache removes all cached audio files below cacheDir
func ClearCache(cacheDir string) error {
	if cacheDir == "" {
		return nil
	}
	return os.RemoveAll(cacheDir)
}

// CacheStats returns the number of cached files and their total size
func CacheStats(cacheDir string) (fileCount int, totalSize int64, err error) {
	if cacheDir == "" {
		return 0, 0, nil
	}
	if _, statErr := os.Stat(cacheDir); os.IsNotExist(statErr) {
		return 0, 0, nil
	}

	err = filepath.Walk(cacheDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			fileCount++
			totalSize += info.Size()
		}
		return nil
	})

	return fileCount, totalSize, err
}
