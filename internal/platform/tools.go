package platform

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// Timeout constants
const (
	DefaultVersionTimeout = 10 * time.Second
)

// Downloader flags
const (
	VersionFlag = "--version"
)

// LookupExecutable resolves name through PATH. Paths containing a separator
// are checked directly.
func LookupExecutable(name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("executable name is empty")
	}
	path, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("%s not found: %w", name, err)
	}
	return path, nil
}

// DownloaderVersion runs "<path> --version" and returns the first output line
func DownloaderVersion(ctx context.Context, path string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, DefaultVersionTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, path, VersionFlag)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("%s %s timed out: %w", path, VersionFlag, ctx.Err())
		}
		return "", fmt.Errorf("%s %s failed: %w", path, VersionFlag, err)
	}

	scanner := bufio.NewScanner(&stdout)
	if scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			return line, nil
		}
	}
	return "", fmt.Errorf("%s %s printed nothing", path, VersionFlag)
}
