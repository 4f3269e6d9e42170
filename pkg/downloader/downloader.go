package downloader

import (
	"context"
	"strings"

	"github.com/ccp-p/yt2srt-cli/pkg/models"
)

// videoIDLength YouTube视频ID的固定长度
const videoIDLength = 11

// Downloader 负责把远程视频的音轨下载到指定路径
type Downloader interface {
	// Fetch 下载url对应的音频并转码为format格式，产物必须出现在outPath
	Fetch(ctx context.Context, url string, format models.AudioFormat, outPath string) error
}

// VideoID 从视频URL中提取视频ID。
// 支持 watch?v= 标准链接和 youtu.be 短链接；
// 其他输入取前11个字符作为ID。
func VideoID(rawURL string) string {
	token := rawURL

	if idx := strings.LastIndex(rawURL, "watch?v="); idx >= 0 {
		token = rawURL[idx+len("watch?v="):]
	} else if idx := strings.Index(rawURL, "youtu.be/"); idx >= 0 {
		token = rawURL[idx+len("youtu.be/"):]
	}

	// 去掉拼接在ID后面的其他参数
	if idx := strings.IndexAny(token, "?&/"); idx >= 0 {
		token = token[:idx]
	}

	if len(token) > videoIDLength {
		token = token[:videoIDLength]
	}

	return token
}
