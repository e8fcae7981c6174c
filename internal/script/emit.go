package script

import (
	"fmt"
	"log/slog"
	"os"
)

// Mode lets the owner read, write and execute and everyone else read and
// execute.
const Mode os.FileMode = 0o755

// Emit writes content to path, replacing whatever is there, then sets Mode.
// The chmod is explicit so an existing file or the umask cannot leave the
// script non-executable.
func Emit(path, content string) error {
	if err := os.WriteFile(path, []byte(content), Mode); err != nil {
		return fmt.Errorf("write script: %w", err)
	}

	if err := os.Chmod(path, Mode); err != nil {
		return fmt.Errorf("chmod script: %w", err)
	}

	slog.Debug("wrote script", "path", path, "bytes", len(content))
	return nil
}
