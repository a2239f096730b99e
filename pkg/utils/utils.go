package utils

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// FmtBytes converts bytes to a printable string with unit
func FmtBytes(bytes uint64) string {
	if bytes >= 1024*1024*1024*1024 {
		return fmt.Sprintf("%.1fTiB", float64(bytes)/1024/1024/1024/1024)
	} else if bytes >= 1024*1024*1024 {
		return fmt.Sprintf("%.1fGiB", float64(bytes)/1024/1024/1024)
	} else if bytes >= 1024*1024 {
		return fmt.Sprintf("%.1fMiB", float64(bytes)/1024/1024)
	} else if bytes >= 1024 {
		return fmt.Sprintf("%.1fKiB", float64(bytes)/1024)
	}
	return fmt.Sprintf("%dB", bytes)
}

func SubDirectories(dirPath string) ([]string, error) {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var directories []string
	for _, entry := range entries {
		if entry.IsDir() {
			directories = append(directories, entry.Name())
		}
	}
	return directories, nil
}

func IsTerminalOutput() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
