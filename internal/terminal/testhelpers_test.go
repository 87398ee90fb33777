package terminal

import (
	"testing"
)

// setupCleanEnv controls every color related environment variable and sets
// only the specified ones, so tests do not depend on the caller's shell.
func setupCleanEnv(t *testing.T, envVars map[string]string) {
	t.Helper()

	// Checked with os.LookupEnv: only set when specified, since empty != unset
	existenceCheckedVars := []string{"NO_COLOR"}

	// Checked with os.Getenv: empty is treated as unset
	valueCheckedVars := []string{
		"CLICOLOR", "CLICOLOR_FORCE", "TERM", "COLORTERM",
		"CI", "GITHUB_ACTIONS", "JENKINS_URL", "BUILD_NUMBER",
		"CONTINUOUS_INTEGRATION", "TRAVIS", "CIRCLECI", "APPVEYOR", "GITLAB_CI",
		"BUILDKITE", "DRONE", "TF_BUILD",
	}

	for _, v := range existenceCheckedVars {
		if value, specified := envVars[v]; specified {
			t.Setenv(v, value)
		}
	}

	for _, v := range valueCheckedVars {
		t.Setenv(v, envVars[v])
	}
}

// stubTerminal makes every stream report the given terminal status.
func stubTerminal(t *testing.T, tty bool) {
	t.Helper()
	orig := isTerminal
	isTerminal = func(int) bool { return tty }
	t.Cleanup(func() { isTerminal = orig })
}
