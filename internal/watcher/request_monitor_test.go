package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccp-p/yt2srt-cli/pkg/utils"
)

func TestParseRequestFile(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "watcher_test")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	path := filepath.Join(tempDir, "requests.txt")
	content := "# 注释行\nhttps://www.youtube.com/watch?v=abc12345678\n\n  https://youtu.be/xyz98765432  \n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	urls, err := ParseRequestFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"https://www.youtube.com/watch?v=abc12345678",
		"https://youtu.be/xyz98765432",
	}, urls)
}

func TestParseRequestFileMissing(t *testing.T) {
	_, err := ParseRequestFile("no_such_file.txt")
	assert.Error(t, err)
}

func TestHandleFileRename(t *testing.T) {
	utils.InitLogger(utils.LogLevelQuiet, "")

	tempDir, err := os.MkdirTemp("", "watcher_test")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	path := filepath.Join(tempDir, "requests.txt")
	require.NoError(t, os.WriteFile(path, []byte("https://youtu.be/abc12345678\n"), 0644))

	var handled []string
	m := &RequestMonitor{
		folderPath: tempDir,
		runner: func(url string) error {
			handled = append(handled, url)
			return nil
		},
		pendingFiles: make(map[string]*time.Timer),
		stopChan:     make(chan struct{}),
	}

	m.handleFile(path)

	// 全部成功后文件改名为.done
	assert.Equal(t, []string{"https://youtu.be/abc12345678"}, handled)
	assert.False(t, utils.CheckFileExists(path))
	assert.True(t, utils.CheckFileExists(path+".done"))
}

func TestHandleFileFailedRename(t *testing.T) {
	utils.InitLogger(utils.LogLevelQuiet, "")

	tempDir, err := os.MkdirTemp("", "watcher_test")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	path := filepath.Join(tempDir, "requests.url")
	require.NoError(t, os.WriteFile(path, []byte("bad-url\n"), 0644))

	m := &RequestMonitor{
		folderPath: tempDir,
		runner: func(url string) error {
			return utils.NewProcessError(utils.KindDownload, "下载失败", nil)
		},
		pendingFiles: make(map[string]*time.Timer),
		stopChan:     make(chan struct{}),
	}

	m.handleFile(path)

	// 有失败时文件改名为.failed
	assert.True(t, utils.CheckFileExists(path+".failed"))
}

func TestIsRequestFile(t *testing.T) {
	assert.True(t, isRequestFile("a.txt"))
	assert.True(t, isRequestFile("a.URL"))
	assert.False(t, isRequestFile("a.mp3"))
	assert.False(t, isRequestFile("a.txt.done"))
}
