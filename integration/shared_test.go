//go:build basic || database

// Package integration holds end-to-end tests that drive the nutriplan binary.
// These tests are excluded from normal test runs due to build tags.
// To run these tests: go test -tags basic ./integration
// Or with containers: go test -tags database ./integration
package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	// sharedBinaryPath holds the path to a nutriplan binary built once for all tests.
	sharedBinaryPath string

	// buildOnce ensures we only build the binary once.
	buildOnce sync.Once

	// buildMutex protects the shared binary path.
	buildMutex sync.Mutex

	// tempDir holds the temp directory for cleanup.
	tempDir string
)

// TestMain handles setup and cleanup for all integration tests.
func TestMain(m *testing.M) {
	code := m.Run()

	// Cleanup the shared binary after all tests
	if tempDir != "" {
		_ = os.RemoveAll(tempDir)
	}

	os.Exit(code)
}

// getBinary returns the path to the nutriplan binary, building it once if needed.
func getBinary() string {
	buildMutex.Lock()
	defer buildMutex.Unlock()

	buildOnce.Do(func() {
		var err error
		tempDir, err = os.MkdirTemp("", "nutriplan-integration-*")
		if err != nil {
			panic(fmt.Sprintf("failed to create temp dir: %v", err))
		}

		binaryPath := filepath.Join(tempDir, "nutriplan")
		buildCmd := exec.Command("go", "build", "-o", binaryPath, ".")
		buildCmd.Dir = ".." // Build from parent directory (project root)
		if out, err := buildCmd.CombinedOutput(); err != nil {
			panic(fmt.Sprintf("failed to build nutriplan: %v\n%s", err, out))
		}

		sharedBinaryPath = binaryPath
	})

	return sharedBinaryPath
}

// result captures one run of the binary.
type result struct {
	stdout   string
	stderr   string
	exitCode int
}

// run executes nutriplan with the given store settings. Every run works in
// its own directory so no .nutriplan.yaml or .env leaks in.
func run(t *testing.T, env map[string]string, args ...string) result {
	t.Helper()
	cmd := exec.Command(getBinary(), args...)
	cmd.Dir = t.TempDir()
	cmd.Env = append(os.Environ(), "HOME="+cmd.Dir)
	for k, v := range env {
		cmd.Env = append(cmd.Env, k+"="+v)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()

	res := result{stdout: stdout.String(), stderr: stderr.String()}
	if exitErr, ok := err.(*exec.ExitError); ok {
		res.exitCode = exitErr.ExitCode()
	} else {
		require.NoError(t, err, "cannot start %s", cmd.String())
	}
	return res
}

// mustRun executes nutriplan and fails the test on a non-zero exit.
func mustRun(t *testing.T, env map[string]string, args ...string) string {
	t.Helper()
	res := run(t, env, args...)
	require.Equal(t, 0, res.exitCode, "nutriplan %v failed\nstdout: %s\nstderr: %s", args, res.stdout, res.stderr)
	return res.stdout
}

// runJSON executes nutriplan with --output json and decodes stdout.
func runJSON[T any](t *testing.T, env map[string]string, args ...string) T {
	t.Helper()
	out := mustRun(t, env, append(args, "--output", "json")...)
	var v T
	require.NoError(t, json.Unmarshal([]byte(out), &v), out)
	return v
}

// onboardArgs is the onboarding submission used across the store tests.
var onboardArgs = []string{
	"onboard",
	"--name", "Camille",
	"--dob", "1996-05-20",
	"--sex", "female",
	"--weight", "65",
	"--height", "168",
	"--activity", "light",
	"--goal", "lose_weight",
	"--target", "55",
	"--diet-type", "vegetarian",
	"--allergies", "peanuts,shellfish",
}

// onboarded is the part of the onboarding JSON the store tests rely on.
type onboarded struct {
	ProfileID string `json:"profile_id"`
	Saved     bool   `json:"saved"`
}

// profileDetails is the part of the profile JSON the store tests rely on.
type profileDetails struct {
	Profile struct {
		ProfileID   string `json:"profile_id"`
		Name        string `json:"name"`
		Preferences *struct {
			DietType  string   `json:"diet_type"`
			Allergies []string `json:"allergies"`
		} `json:"preferences"`
	} `json:"profile"`
	History []struct {
		Weight float64 `json:"weight"`
		Notes  string  `json:"notes"`
	} `json:"history"`
}

// exerciseStore onboards a profile, records a weigh-in, reads both back,
// exports the store and clears it.
func exerciseStore(t *testing.T, env map[string]string) {
	t.Helper()

	mustRun(t, env, "store", "clear")
	mustRun(t, env, "store", "migrate")

	saved := runJSON[onboarded](t, env, onboardArgs...)
	require.True(t, saved.Saved)
	require.Len(t, saved.ProfileID, 36)

	mustRun(t, env, "profile", "weigh", saved.ProfileID, "--weight", "64.2", "--notes", "week one")

	details := runJSON[profileDetails](t, env, "profile", "show", saved.ProfileID)
	require.Equal(t, "Camille", details.Profile.Name)
	require.NotNil(t, details.Profile.Preferences)
	require.Equal(t, "vegetarian", details.Profile.Preferences.DietType)
	require.Equal(t, []string{"peanuts", "shellfish"}, details.Profile.Preferences.Allergies)
	require.Len(t, details.History, 2)
	require.Equal(t, 65.0, details.History[0].Weight)
	require.Equal(t, 64.2, details.History[1].Weight)
	require.Equal(t, "week one", details.History[1].Notes)

	profiles := runJSON[[]struct {
		ProfileID string `json:"profile_id"`
	}](t, env, "profile", "list")
	require.Len(t, profiles, 1)

	status := mustRun(t, env, "store", "status")
	require.Contains(t, status, "Connected: true")
	require.Contains(t, status, "Total Profiles: 1")
	require.Contains(t, status, "Total Weigh-ins: 2")

	exportPrefix := filepath.Join(t.TempDir(), "export")
	mustRun(t, env, "store", "export", "--output-file", exportPrefix)
	for _, suffix := range []string{".profiles.parquet", ".weight_history.parquet"} {
		info, err := os.Stat(exportPrefix + suffix)
		require.NoError(t, err)
		require.Greater(t, info.Size(), int64(0))
	}

	res := run(t, env, "profile", "show", "00000000-0000-0000-0000-000000000000")
	require.NotEqual(t, 0, res.exitCode)
	require.Contains(t, res.stderr, "profile not found")

	mustRun(t, env, "store", "clear")
}
