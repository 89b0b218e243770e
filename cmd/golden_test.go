package cmd_test

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"

	"github.com/leonardinius/loxfront/cmd"
)

const testDir = "testdata"

var expectedOutputPattern = regexp.MustCompile(`// expect: ?(.*)`)
var expectedErrorPattern = regexp.MustCompile(`// (\[line \d+\] Error.*)`)

type goldenTest struct {
	path             string
	expectedOutput   []string
	expectedErrors   []string
	expectedExitCode int
}

func TestGoldenFiles(t *testing.T) {
	files, err := filepath.Glob(filepath.Join(testDir, "*.lox"))
	require.NoError(t, err)
	require.NotEmpty(t, files)
	slices.Sort(files)

	for _, file := range files {
		test := parseGolden(t, file)
		t.Run(filepath.Base(file), func(t *testing.T) {
			t.Parallel()
			test.run(t)
		})
	}
}

func parseGolden(t *testing.T, path string) *goldenTest {
	t.Helper()

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	test := &goldenTest{path: path}
	for _, line := range strings.Split(string(content), "\n") {
		if match := expectedOutputPattern.FindStringSubmatch(line); match != nil {
			test.expectedOutput = append(test.expectedOutput, match[1])
			continue
		}
		if match := expectedErrorPattern.FindStringSubmatch(line); match != nil {
			test.expectedErrors = append(test.expectedErrors, match[1])
			test.expectedExitCode = cmd.ExitDataErr
		}
	}
	return test
}

func (test *goldenTest) run(t *testing.T) {
	stdout := new(strings.Builder)
	stderr := new(strings.Builder)

	app := cmd.NewLoxApp(cmd.WithStdout(stdout), cmd.WithStderr(stderr))
	code := app.Main([]string{test.path})

	assert.Equal(t, test.expectedExitCode, code, "exit code")
	assert.Equal(t, test.expectedOutput, lines(stdout.String()), "stdout")
	assert.Equal(t, test.expectedErrors, lines(stderr.String()), "stderr")
}

func lines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}
