package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/pidigits/chudnovsky"
	"github.com/katalvlaran/pidigits/config"
)

const pi60 = "3.141592653589793238462643383279502884197169399375105820974944"

// newTestApp wires an App to in-memory output and default config.
func newTestApp(t *testing.T, tty bool, args ...string) (*App, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	app := NewApp(
		WithIO(&out, io.Discard),
		WithConfigLoader(func(string) (*config.Config, error) { return config.Default(), nil }),
		WithLoggerFactory(func(zapcore.Level, bool) (*zap.Logger, error) { return zap.NewNop(), nil }),
		WithTerminalCheck(func(io.Writer) bool { return tty }),
	)
	app.SetArgs(args)

	return app, &out
}

// exitCode extracts the exit code carried by err, or -1.
func exitCode(err error) int {
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.ExitCode()
	}
	return -1
}

func TestCompute_Plain(t *testing.T) {
	app, out := newTestApp(t, false, "compute", "10")
	require.NoError(t, app.Execute())
	assert.Equal(t, "3.1415926535\n", out.String())
}

func TestCompute_OneDigit(t *testing.T) {
	app, out := newTestApp(t, false, "compute", "1")
	require.NoError(t, app.Execute())
	assert.Equal(t, "3.1\n", out.String())
}

func TestCompute_Limit(t *testing.T) {
	app, out := newTestApp(t, false, "compute", "30", "--limit", "4")
	require.NoError(t, app.Execute())
	assert.Equal(t, "3.1415\n", out.String())
}

func TestCompute_GroupedOnTerminal(t *testing.T) {
	app, out := newTestApp(t, true, "compute", "60")
	require.NoError(t, app.Execute())
	assert.Equal(t, "3.1415926535 8979323846 2643383279 5028841971 6939937510\n  5820974944\n", out.String())
}

func TestCompute_GroupFlagOverridesTerminal(t *testing.T) {
	app, out := newTestApp(t, true, "compute", "12", "--group=false")
	require.NoError(t, app.Execute())
	assert.Equal(t, pi60[:14]+"\n", out.String())

	app, out = newTestApp(t, false, "compute", "12", "--group")
	require.NoError(t, app.Execute())
	assert.Equal(t, "3.1415926535 89\n", out.String())
}

func TestCompute_JSON(t *testing.T) {
	app, out := newTestApp(t, false, "--json", "compute", "20")
	require.NoError(t, app.Execute())

	var res computeResult
	require.NoError(t, json.Unmarshal(out.Bytes(), &res))
	assert.Equal(t, uint32(20), res.Digits)
	assert.Equal(t, pi60[:22], res.Pi)
}

func TestCompute_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code int
	}{
		{"zero digits", []string{"compute", "0"}, ExitValidation},
		{"not a number", []string{"compute", "many"}, ExitValidation},
		{"negative", []string{"compute", "--", "-5"}, ExitValidation},
		{"too large", []string{"compute", "1073741824"}, ExitValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, out := newTestApp(t, false, tt.args...)
			err := app.Execute()
			require.Error(t, err)
			assert.Equal(t, tt.code, exitCode(err))
			assert.Empty(t, out.String())
		})
	}
}

func TestConfigLoadFailure(t *testing.T) {
	var out bytes.Buffer
	app := NewApp(
		WithIO(&out, io.Discard),
		WithConfigLoader(func(string) (*config.Config, error) { return nil, config.ErrInvalidConfig }),
	)
	app.SetArgs([]string{"compute", "5"})

	err := app.Execute()
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.Equal(t, ExitValidation, exitCode(err))
}

func TestServe_InvalidOverride(t *testing.T) {
	app, _ := newTestApp(t, false, "serve", "--workers", "-2")
	err := app.Execute()
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.Equal(t, ExitValidation, exitCode(err))
}

func TestVersion(t *testing.T) {
	app, out := newTestApp(t, false, "version")
	require.NoError(t, app.Execute())
	assert.True(t, strings.HasPrefix(out.String(), "pidigits "+Version+" ("))
	assert.Contains(t, out.String(), "max 1073741823 digits, recursive evaluator")

	app, out = newTestApp(t, false, "version", "--json")
	require.NoError(t, app.Execute())
	var v versionInfo
	require.NoError(t, json.Unmarshal(out.Bytes(), &v))
	assert.Equal(t, Version, v.Version)
	assert.Equal(t, uint32(chudnovsky.MaxDigits), v.MaxDigits)
	assert.Equal(t, "recursive", v.Evaluator)
}

func TestExitError(t *testing.T) {
	inner := errors.New("test error")
	err := exitWithCode(ExitRuntime, inner)

	assert.Equal(t, "test error", err.Error())
	assert.ErrorIs(t, err, inner)
	assert.Equal(t, ExitRuntime, exitCode(err))
}

func TestGroupDigits(t *testing.T) {
	assert.Equal(t, "3.1", groupDigits("3.1"))
	assert.Equal(t, "3.1415926535", groupDigits(pi60[:12]))
	assert.Equal(t, "3.1415926535 8", groupDigits(pi60[:13]))
	assert.Equal(t, "3.1415926535 8979323846 2643383279 5028841971 6939937510", groupDigits(pi60[:52]))
}

func TestIsTerminal_NonFile(t *testing.T) {
	assert.False(t, isTerminal(&bytes.Buffer{}))
}
