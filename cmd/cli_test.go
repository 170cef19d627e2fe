package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionPrintsBuildVersion(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "", "version")
	require.NoError(t, err)
	assert.Equal(t, "fishpi dev\n", stdout)
}

func TestLoginWithFlagsRunsCommandsAndPersistsAccount(t *testing.T) {
	home := t.TempDir()

	stdout, stderr, err := executeCLI(t, home, "#me\n#answer\n#rp-time 30\n",
		"--username", "alice", "--password", "secret",
	)
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "欢迎 alice")
	assert.Contains(t, stdout, "当前用户")
	assert.Contains(t, stdout, "* alice")
	assert.Contains(t, stdout, "进入答题模式")
	assert.Contains(t, stdout, "红包等待时间已设置成功 30s")

	data, err := os.ReadFile(filepath.Join(home, ".fishpi", "config.toml"))
	require.NoError(t, err)
	config := string(data)
	assert.Contains(t, config, "username = 'alice'")
	assert.Contains(t, config, "answer_mode = true")
	assert.Contains(t, config, "rate = 30")
	assert.FileExists(t, filepath.Join(home, ".fishpi", "secrets", "alice", "credentials"))
}

func TestLoginPromptsForMissingUsernameAndPassword(t *testing.T) {
	stdout, stderr, err := executeCLI(t, t.TempDir(), "alice\nsecret\n#me\n")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "请输入用户名:")
	assert.Contains(t, stdout, "请输入密码:")
	assert.Contains(t, stdout, "欢迎 alice")
	assert.Contains(t, stdout, "* alice")
}

func TestLoginRepromptsForBlankUsername(t *testing.T) {
	stdout, stderr, err := executeCLI(t, t.TempDir(), "\n   \nalice\nsecret\n")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Equal(t, 3, strings.Count(stdout, "请输入用户名:"))
	assert.Equal(t, 1, strings.Count(stdout, "请输入密码:"))
	assert.Contains(t, stdout, "欢迎 alice")
}

func TestLoginFailsWhenInputEndsBeforeUsername(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read username")
}

func TestLoginFailsWhenInputEndsBeforePassword(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "", "--username", "alice")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "login alice")
}

func TestRememberedAccountsSwitchWithoutPrompt(t *testing.T) {
	home := t.TempDir()

	_, stderr, err := executeCLI(t, home, "", "-u", "bob", "-p", "bob-secret")
	require.NoError(t, err, "stderr: %s", stderr)
	_, stderr, err = executeCLI(t, home, "", "-u", "alice", "-p", "alice-secret")
	require.NoError(t, err, "stderr: %s", stderr)

	stdout, stderr, err := executeCLI(t, home, "#change bob\n#account\n")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "欢迎 alice")
	assert.Contains(t, stdout, "账户切换 alice ===> bob")
	assert.Contains(t, stdout, "分身账户")
	assert.Contains(t, stdout, "* bob")
	assert.NotContains(t, stdout, "请输入密码:")
}

func TestAccountListMarksDefaultLogin(t *testing.T) {
	home := t.TempDir()

	_, stderr, err := executeCLI(t, home, "", "-u", "bob", "-p", "bob-secret")
	require.NoError(t, err, "stderr: %s", stderr)
	_, stderr, err = executeCLI(t, home, "", "-u", "alice", "-p", "alice-secret")
	require.NoError(t, err, "stderr: %s", stderr)

	stdout, _, err := executeCLI(t, home, "", "account", "list")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(stdout, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "  bob\tfishpi://bob/credentials", lines[0])
	assert.Equal(t, "* alice\tfishpi://alice/credentials", lines[1])
}

func TestFilePathFlagOverridesConfigLocation(t *testing.T) {
	home := t.TempDir()
	configPath := filepath.Join(t.TempDir(), "custom.toml")

	_, stderr, err := executeCLI(t, home, "#answer\n", "-f", configPath, "-u", "alice", "-p", "secret")
	require.NoError(t, err, "stderr: %s", stderr)

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "answer_mode = true")
	assert.NoFileExists(t, filepath.Join(home, ".fishpi", "config.toml"))
}

func TestUsernameFromEnvironment(t *testing.T) {
	t.Setenv("FISHPI_USERNAME", "carol")

	stdout, stderr, err := executeCLI(t, t.TempDir(), "", "--password", "secret")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "欢迎 carol")
}

func TestInvalidLogLevelFails(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "", "--log-level", "loud", "-u", "alice", "-p", "secret")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported log level")
}

func TestCommandFailureDoesNotStopLoop(t *testing.T) {
	stdout, stderr, err := executeCLI(t, t.TempDir(), "#transfer nobody 10 thanks\n#me\n", "-u", "alice", "-p", "secret")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "命令执行失败")
	assert.Contains(t, stdout, "当前用户")
	assert.Contains(t, stderr, "warn")
	assert.Contains(t, stderr, "command failed")
	assert.Contains(t, stderr, "#transfer")
}

func executeCLI(t *testing.T, home string, input string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)
	// Keep a developer's pass store out of the way; the file fallback is used.
	t.Setenv("PATH", "")

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetIn(strings.NewReader(input))
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}
