package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (Options, error) {
	t.Helper()
	var got Options
	cmd := NewRootCommand(func(opts Options) error {
		got = opts
		return nil
	})
	// nil 参数会让 cobra 读取 os.Args
	cmd.SetArgs(append([]string{}, args...))
	err := cmd.Execute()
	return got, err
}

func TestRootCommand_Defaults(t *testing.T) {
	opts, err := execute(t)
	require.NoError(t, err)
	assert.Equal(t, Options{}, opts)
}

func TestRootCommand_Flags(t *testing.T) {
	opts, err := execute(t,
		"--layout", "custom.yaml",
		"-v",
		"--ease", "EaseOutBack",
		"--duration", "0.4",
		"--margin-reference", "Parent",
		"--reposition=false",
	)
	require.NoError(t, err)

	assert.Equal(t, "custom.yaml", opts.LayoutPath)
	assert.True(t, opts.Verbose)
	assert.Equal(t, "EaseOutBack", opts.Ease)
	assert.Equal(t, 0.4, opts.Duration)
	assert.Equal(t, "parent", opts.MarginReference)
	require.NotNil(t, opts.Reposition)
	assert.False(t, *opts.Reposition)
}

func TestRootCommand_Env(t *testing.T) {
	t.Setenv("UIKIT_EASE", "linear")
	t.Setenv("UIKIT_MARGIN_REFERENCE", "screen")
	t.Setenv("UIKIT_REPOSITION", "true")

	opts, err := execute(t)
	require.NoError(t, err)
	assert.Equal(t, "linear", opts.Ease)
	assert.Equal(t, "screen", opts.MarginReference)
	require.NotNil(t, opts.Reposition)
	assert.True(t, *opts.Reposition)

	// 命令行优先于环境变量
	opts, err = execute(t, "--ease", "EaseInQuad")
	require.NoError(t, err)
	assert.Equal(t, "EaseInQuad", opts.Ease)
}

func TestRootCommand_Invalid(t *testing.T) {
	_, err := execute(t, "--duration=-1")
	assert.Error(t, err)

	_, err = execute(t, "--margin-reference", "window")
	assert.Error(t, err)

	_, err = execute(t, "extra-arg")
	assert.Error(t, err)
}
