package gates

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/codeframe-hq/codeframe/pkg/models"
)

// skipMarker is one language-specific test-skip pattern. Level "error"
// markers disable a test unconditionally; "warning" markers are conditional
// or environment-dependent skips.
type skipMarker struct {
	Pattern     string
	Level       string
	Description string
}

var skipMarkers = map[string][]skipMarker{
	LangPython: {
		{Pattern: "@pytest.mark.skip(", Level: "error", Description: "unconditionally skipped test"},
		{Pattern: "@unittest.skip(", Level: "error", Description: "unconditionally skipped test"},
		{Pattern: "@pytest.mark.skipif(", Level: "warning", Description: "conditionally skipped test"},
		{Pattern: "pytest.skip(", Level: "warning", Description: "runtime skip call"},
	},
	LangJS: {
		{Pattern: "it.skip(", Level: "error", Description: "disabled test"},
		{Pattern: "test.skip(", Level: "error", Description: "disabled test"},
		{Pattern: "describe.skip(", Level: "error", Description: "disabled suite"},
		{Pattern: "xit(", Level: "error", Description: "disabled test"},
		{Pattern: "xdescribe(", Level: "error", Description: "disabled suite"},
		{Pattern: "it.todo(", Level: "warning", Description: "unimplemented test"},
	},
	LangGo: {
		{Pattern: "t.Skip(", Level: "warning", Description: "runtime skip call"},
		{Pattern: "t.Skipf(", Level: "warning", Description: "runtime skip call"},
		{Pattern: "t.SkipNow(", Level: "error", Description: "unconditional skip"},
		{Pattern: "//go:build ignore", Level: "error", Description: "build-tag excluded file"},
	},
}

// isTestFile reports whether path is a test file for the language.
func isTestFile(path, language string) bool {
	base := filepath.Base(path)
	switch language {
	case LangPython:
		return strings.HasPrefix(base, "test_") && strings.HasSuffix(base, ".py") ||
			strings.HasSuffix(base, "_test.py")
	case LangJS:
		for _, suffix := range []string{".test.js", ".test.ts", ".test.jsx", ".test.tsx", ".spec.js", ".spec.ts"} {
			if strings.HasSuffix(base, suffix) {
				return true
			}
		}
		return false
	case LangGo:
		return strings.HasSuffix(base, "_test.go")
	default:
		return false
	}
}

// skippedDirs are never scanned for test files.
var skippedDirs = map[string]bool{
	".git": true, "node_modules": true, "vendor": true,
	"__pycache__": true, ".venv": true, "venv": true, "dist": true,
}

// DetectSkips scans the project's test files for skip markers. The returned
// error covers filesystem failures only; the caller reports it as a
// low-severity finding rather than failing the gate.
func DetectSkips(projectRoot, language string) ([]models.SkipViolation, error) {
	markers, ok := skipMarkers[language]
	if !ok {
		return nil, nil
	}

	var violations []models.SkipViolation
	err := filepath.WalkDir(projectRoot, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if skippedDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if !isTestFile(path, language) {
			return nil
		}

		found, err := scanFile(path, projectRoot, markers)
		if err != nil {
			return err
		}
		violations = append(violations, found...)
		return nil
	})
	if err != nil {
		return violations, err
	}
	return violations, nil
}

func scanFile(path, projectRoot string, markers []skipMarker) ([]models.SkipViolation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rel, relErr := filepath.Rel(projectRoot, path)
	if relErr != nil {
		rel = path
	}

	var violations []models.SkipViolation
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		for _, marker := range markers {
			if strings.Contains(line, strings.TrimSuffix(marker.Pattern, "\n")) {
				violations = append(violations, models.SkipViolation{
					File:        rel,
					Line:        lineNo,
					Marker:      strings.TrimSuffix(strings.TrimSuffix(marker.Pattern, "\n"), "("),
					Level:       marker.Level,
					Description: marker.Description,
				})
				break
			}
		}
	}
	return violations, scanner.Err()
}
