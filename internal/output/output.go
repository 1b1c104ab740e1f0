// Package output persists generated source text and renders terminal previews.
package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
)

// ruleWidth is the default width of the horizontal rules framing a
// preview when the terminal size is unknown.
const ruleWidth = 64

// maxRule caps the rule width even on ultra-wide terminals.
const maxRule = 110

// Color helpers — each returns a sprint function.
var (
	cDim = color.New(color.Faint).SprintFunc()
)

// unsafeOutputPrefixes are path prefixes where writing output files is
// rejected. Prevents accidental overwrite of system files.
var unsafeOutputPrefixes = []string{"/etc/", "/proc/", "/sys/", "/dev/", "/boot/", "/sbin/", "/bin/", "/usr/"}

// IsDumbTerm returns true when the terminal doesn't support Unicode.
func IsDumbTerm() bool {
	t := os.Getenv("TERM")
	return t == "dumb" || t == ""
}

// ValidateOutputPath checks that the output file path is safe to write to.
func ValidateOutputPath(path string) error {
	cleaned := filepath.Clean(path)
	if filepath.IsAbs(cleaned) {
		for _, prefix := range unsafeOutputPrefixes {
			if strings.HasPrefix(cleaned, prefix) {
				return fmt.Errorf("refusing to write to system path %q", cleaned)
			}
		}
	}
	return nil
}

// WriteFile writes text to path, creating or truncating the file. The
// path is checked against the unsafe-prefix list first; nothing is
// written when the check fails.
func WriteFile(path, text string) error {
	if err := ValidateOutputPath(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	if _, err := io.WriteString(f, text); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if _, err := io.WriteString(f, "\n"); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// Preview renders text to w between dim horizontal rules, sized to the
// terminal width when known. The payload itself is printed verbatim —
// it is source code and must stay copy-pasteable.
func Preview(w io.Writer, text string, termWidth int) {
	rule := strings.Repeat("-", previewRuleWidth(termWidth))
	fmt.Fprintf(w, "%s\n", cDim(rule))
	fmt.Fprintln(w, text)
	fmt.Fprintf(w, "%s\n", cDim(rule))
}

// previewRuleWidth returns the effective rule width: the terminal width
// when known, clamped to maxRule, else the default.
func previewRuleWidth(termWidth int) int {
	if termWidth <= 0 {
		return ruleWidth
	}
	if termWidth > maxRule {
		return maxRule
	}
	return termWidth
}
