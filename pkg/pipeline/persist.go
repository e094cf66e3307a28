package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mhartmer/certforge/pkg/errors"
)

// resolveOutputDir returns the directory certificates are written to,
// creating it (recursively) if absent. An empty dir selects the default
// application data location under the user's config directory.
func resolveOutputDir(dir string) (string, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", errors.WrapGeneration(err, "resolve home directory")
		}
		dir = filepath.Join(home, ".config", "certforge", "certificates")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.WrapGeneration(err, "create output directory %s", dir)
	}
	return dir, nil
}

// buildFilename returns the artifact filename: the caller-supplied name when
// present, otherwise certificate_<id>_<epochMillis>.<format>.
func buildFilename(custom, certificateID, format string, now time.Time) string {
	if custom != "" {
		return custom
	}
	return fmt.Sprintf("certificate_%s_%d.%s", certificateID, now.UnixMilli(), format)
}

// persist writes the encoded bytes to the resolved path. Any I/O failure is
// wrapped as a generation failure, never leaked raw. A failed write may
// leave a partial file behind; callers must treat any pipeline error as "no
// usable artifact".
func persist(dir, filename string, data []byte) (string, error) {
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", errors.WrapGeneration(err, "write certificate %s", path)
	}
	return path, nil
}
