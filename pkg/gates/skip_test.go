package gates

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestDetectSkipsPython(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "test_auth.py", `
import pytest

@pytest.mark.skip(reason="flaky")
def test_login():
    pass

@pytest.mark.skipif(sys.platform == "win32", reason="posix only")
def test_paths():
    pass
`)
	writeFile(t, root, "helpers.py", `# not a test file, markers ignored
@pytest.mark.skip(reason="x")
`)

	violations, err := DetectSkips(root, LangPython)
	require.NoError(t, err)
	require.Len(t, violations, 2)

	assert.Equal(t, "test_auth.py", violations[0].File)
	assert.Equal(t, "error", violations[0].Level)
	assert.Equal(t, "@pytest.mark.skip", violations[0].Marker)
	assert.Equal(t, "warning", violations[1].Level)
}

func TestDetectSkipsJS(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "src/app.test.ts", `
describe("app", () => {
  it.skip("does the thing", () => {});
  it("works", () => {});
});
`)
	writeFile(t, root, "node_modules/dep/dep.test.js", `it.skip("vendored", () => {});`)

	violations, err := DetectSkips(root, LangJS)
	require.NoError(t, err)
	require.Len(t, violations, 1, "node_modules is never scanned")
	assert.Equal(t, filepath.Join("src", "app.test.ts"), violations[0].File)
	assert.Equal(t, "error", violations[0].Level)
}

func TestDetectSkipsGo(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "thing_test.go", `package thing

func TestSlow(t *testing.T) {
	t.Skip("needs network")
}
`)

	violations, err := DetectSkips(root, LangGo)
	require.NoError(t, err)
	require.Len(t, violations, 1)
	assert.Equal(t, "warning", violations[0].Level)
	assert.Equal(t, 4, violations[0].Line)
}

func TestDetectSkipsUnknownLanguage(t *testing.T) {
	violations, err := DetectSkips(t.TempDir(), "")
	require.NoError(t, err)
	assert.Empty(t, violations)
}

func TestDetectProject(t *testing.T) {
	root := t.TempDir()
	lang, framework := DetectProject(root)
	assert.Empty(t, lang)
	assert.Empty(t, framework)

	writeFile(t, root, "requirements.txt", "pytest\n")
	lang, framework = DetectProject(root)
	assert.Equal(t, LangPython, lang)
	assert.Equal(t, "pytest", framework)

	jsRoot := t.TempDir()
	writeFile(t, jsRoot, "package.json", `{"devDependencies": {"jest": "^29.0.0"}}`)
	lang, framework = DetectProject(jsRoot)
	assert.Equal(t, LangJS, lang)
	assert.Equal(t, "jest", framework)

	goRoot := t.TempDir()
	writeFile(t, goRoot, "go.mod", "module example.com/demo\n")
	lang, framework = DetectProject(goRoot)
	assert.Equal(t, LangGo, lang)
	assert.Equal(t, "go test", framework)
}
