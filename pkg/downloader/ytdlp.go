package downloader

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/ccp-p/yt2srt-cli/pkg/models"
	"github.com/ccp-p/yt2srt-cli/pkg/utils"
)

// YtDlpDownloader 通过yt-dlp命令行工具下载音频
type YtDlpDownloader struct {
	Bin string
}

// NewYtDlpDownloader 创建yt-dlp下载器，bin为空时使用PATH中的yt-dlp
func NewYtDlpDownloader(bin string) *YtDlpDownloader {
	if bin == "" {
		bin = "yt-dlp"
	}
	return &YtDlpDownloader{Bin: bin}
}

// Fetch 调用yt-dlp下载音频。参数逐个传递，不经过shell，
// URL中的特殊字符不会被解释。
func (d *YtDlpDownloader) Fetch(ctx context.Context, url string, format models.AudioFormat, outPath string) error {
	if url == "" {
		return utils.NewProcessError(utils.KindDownload, "未提供视频URL", nil)
	}

	// 输出模板让yt-dlp自己决定中间文件的扩展名
	baseName := filepath.Base(outPath)
	template := strings.TrimSuffix(baseName, filepath.Ext(baseName)) + ".%(ext)s"

	args := []string{
		"--hls-use-mpegts",
		"--force-overwrites",
		"-x", "--audio-format", string(format),
		"-o", template,
		url,
	}

	cmd := exec.CommandContext(ctx, d.Bin, args...)
	cmd.Dir = filepath.Dir(outPath)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	utils.Info("正在下载音频: %s", url)
	if err := cmd.Run(); err != nil {
		msg := "yt-dlp 下载失败"
		if detail := strings.TrimSpace(stderr.String()); detail != "" {
			msg = fmt.Sprintf("%s: %s", msg, lastLine(detail))
		}
		return utils.NewProcessError(utils.KindDownload, msg, err)
	}

	// yt-dlp成功退出不代表产物一定在预期位置
	if !utils.CheckFileExists(outPath) {
		return utils.NewProcessError(utils.KindDownload, fmt.Sprintf("未找到下载的音频文件: %s", outPath), nil)
	}

	utils.Info("下载完成: %s", outPath)
	return nil
}

// lastLine 取多行输出的最后一行，yt-dlp的错误原因在最后
func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	return strings.TrimSpace(lines[len(lines)-1])
}
