package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"

	"github.com/ccp-p/yt2srt-cli/pkg/models"
	"github.com/ccp-p/yt2srt-cli/pkg/utils"
)

// Workspace 管理工作目录中的音频和字幕产物路径。
// 音频产物按视频ID确定性命名，已存在即复用（下载代价高且结果不变）；
// 字幕产物永远不覆盖已有文件，重复运行会得到带编号的新文件。
type Workspace struct {
	Dir string
}

// New 创建工作目录并返回Workspace
func New(dir string) (*Workspace, error) {
	if err := utils.EnsureDirExists(dir); err != nil {
		return nil, utils.NewProcessError(utils.KindWorkspace, fmt.Sprintf("创建工作目录失败: %s", dir), err)
	}

	return &Workspace{Dir: dir}, nil
}

// AudioPath 返回视频对应的音频产物路径，以及该文件是否已存在（缓存命中）
func (w *Workspace) AudioPath(videoID string, format models.AudioFormat) (string, bool) {
	path := filepath.Join(w.Dir, fmt.Sprintf("youtube_%s.%s", videoID, format))
	return path, utils.CheckFileExists(path)
}

// SubtitlePath 解析并占住一个不与现有文件冲突的字幕输出路径。
// 基础名已被占用时从_02开始追加编号，直到创建成功。
// 文件以O_EXCL方式独占创建，并发运行不会抢到同一路径，
// 已有的字幕文件永远不会被覆盖。
func (w *Workspace) SubtitlePath(audioPath string, model models.ModelSize) (string, error) {
	baseName := filepath.Base(audioPath)
	baseName = strings.TrimSuffix(baseName, filepath.Ext(baseName))

	path := filepath.Join(w.Dir, fmt.Sprintf("%s_%s.srt", baseName, model))
	for counter := 2; ; counter++ {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
		if err == nil {
			f.Close()
			return path, nil
		}
		if !os.IsExist(err) {
			return "", utils.NewProcessError(utils.KindExport, fmt.Sprintf("创建字幕文件失败: %s", path), err)
		}
		path = filepath.Join(w.Dir, fmt.Sprintf("%s_%s_%02d.srt", baseName, model, counter))
	}
}

// LockAudio 对音频产物加建议性文件锁。
// 多个运行共用一个工作目录时，检查缓存和下载必须在锁内完成，
// 否则两个运行会同时下载同一个文件。调用方负责Unlock。
func (w *Workspace) LockAudio(audioPath string) (*flock.Flock, error) {
	lock := flock.New(audioPath + ".lock")
	if err := lock.Lock(); err != nil {
		return nil, utils.NewProcessError(utils.KindWorkspace, fmt.Sprintf("获取文件锁失败: %s", lock.Path()), err)
	}
	return lock, nil
}
