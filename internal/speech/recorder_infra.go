package speech

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// ShellRecorder captures microphone audio with whatever recorder the
// platform provides: sox's rec on macOS, arecord elsewhere.
type ShellRecorder struct {
	dir string
	log *zap.SugaredLogger
}

func NewShellRecorder(dir string, log *zap.SugaredLogger) *ShellRecorder {
	return &ShellRecorder{dir: dir, log: log}
}

func (r *ShellRecorder) Record(ctx context.Context, duration time.Duration) (string, error) {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return "", fmt.Errorf("create audio dir: %w", err)
	}

	path := filepath.Join(r.dir, fmt.Sprintf("rec-%d.wav", time.Now().UnixMilli()))
	secs := strconv.Itoa(int(duration.Seconds()))

	var cmd *exec.Cmd
	if runtime.GOOS == "darwin" {
		cmd = exec.CommandContext(ctx, "rec", "-q", path, "trim", "0", secs)
	} else {
		cmd = exec.CommandContext(ctx, "arecord", "-q", "-f", "cd", "-d", secs, path)
	}

	if out, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("audio capture failed (is sox or alsa-utils installed?): %w: %s", err, out)
	}

	if d, err := AudioDuration(path); err == nil {
		r.log.Debugw("audio captured", "path", path, "seconds", d)
	}
	return path, nil
}
