package embedded

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reset() {
	dataFS = nil
	initialized = false
}

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	reset()
	defer reset()

	assert.False(t, IsInitialized())
	Init(nil)
	assert.False(t, IsInitialized(), "nil 文件系统不算初始化")
	Init(fstest.MapFS{})
	assert.True(t, IsInitialized())
}

func TestNotInitialized(t *testing.T) {
	reset()

	_, err := Open("data/ui.yaml")
	assert.ErrorIs(t, err, ErrNotInitialized)
	_, err = ReadFile("data/ui.yaml")
	assert.ErrorIs(t, err, ErrNotInitialized)
	assert.False(t, Exists("data/ui.yaml"))
}

func TestReadFile(t *testing.T) {
	reset()
	defer reset()

	Init(fstest.MapFS{
		"data/ui.yaml": {Data: []byte("panels: []\n")},
	})

	data, err := ReadFile("./data/ui.yaml")
	require.NoError(t, err)
	assert.Equal(t, "panels: []\n", string(data))

	layout, err := DefaultLayout()
	require.NoError(t, err)
	assert.Equal(t, data, layout)

	assert.True(t, Exists("data/ui.yaml"))
	assert.False(t, Exists("data/missing.yaml"))

	_, err = ReadFile("assets/images/a.png")
	assert.Error(t, err, "只支持 data/ 前缀")
}
