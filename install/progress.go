package install

import (
	"strings"
)

// ProgressFunc turns a chunk of package manager output into indicator text.
// It reports false when the chunk should not change the indicator.
type ProgressFunc func(chunk string) (text string, ok bool)

// PNPMProgress keeps only the "Progress" lines pnpm prints, trimmed to what follows " | ".
func PNPMProgress(chunk string) (string, bool) {
	if !strings.Contains(chunk, "Progress") {
		return "", false
	}

	if !strings.Contains(chunk, "|") {
		return chunk, true
	}

	parts := strings.Split(chunk, " | ")
	if len(parts) < 2 {
		return "", true
	}

	return parts[1], true
}

func YarnProgress(chunk string) (string, bool) {
	return chunk, true
}
