package speech

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// AudioDuration measures the length of a recording in seconds by asking
// ffprobe for the container's format duration.
func AudioDuration(path string) (float64, error) {
	out, err := exec.Command("ffprobe",
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	).Output()
	if err != nil {
		return 0, fmt.Errorf("probe audio duration: %w", err)
	}
	return parseDurationSeconds(string(out))
}

// parseDurationSeconds decodes ffprobe's single-value output. ffprobe
// prints "N/A" for streams it cannot measure.
func parseDurationSeconds(out string) (float64, error) {
	s := strings.TrimSpace(out)
	if s == "" || s == "N/A" {
		return 0, fmt.Errorf("audio duration unavailable")
	}
	secs, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse audio duration %q: %w", s, err)
	}
	if secs < 0 {
		return 0, fmt.Errorf("negative audio duration %q", s)
	}
	return secs, nil
}
