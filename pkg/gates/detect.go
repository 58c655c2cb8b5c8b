package gates

import (
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"
)

// Supported languages. Tool strategies are keyed by these identifiers.
const (
	LangPython = "python"
	LangJS     = "js"
	LangGo     = "go"
)

// DetectProject sniffs the project root for build manifests and returns the
// language and test framework. Unknown projects yield empty strings; the
// pipeline then runs with missing-tool semantics.
func DetectProject(projectRoot string) (language, framework string) {
	if fileExists(filepath.Join(projectRoot, "go.mod")) {
		return LangGo, "go test"
	}

	if pkg := filepath.Join(projectRoot, "package.json"); fileExists(pkg) {
		framework := "node"
		if data, err := os.ReadFile(pkg); err == nil {
			deps := gjson.GetBytes(data, "devDependencies")
			if !deps.Get("jest").Exists() {
				deps = gjson.GetBytes(data, "dependencies")
			}
			switch {
			case deps.Get("jest").Exists():
				framework = "jest"
			case deps.Get("vitest").Exists():
				framework = "vitest"
			case deps.Get("mocha").Exists():
				framework = "mocha"
			}
		}
		return LangJS, framework
	}

	for _, manifest := range []string{"pyproject.toml", "requirements.txt", "setup.py"} {
		if fileExists(filepath.Join(projectRoot, manifest)) {
			return LangPython, "pytest"
		}
	}

	return "", ""
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
