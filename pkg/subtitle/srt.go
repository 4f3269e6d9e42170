package subtitle

import (
	"fmt"
	"os"
	"strings"

	"github.com/ccp-p/yt2srt-cli/pkg/models"
	"github.com/ccp-p/yt2srt-cli/pkg/utils"
)

// GenerateSRT 将识别段落序列化为SRT文档。
// 段落按输入顺序原样输出，不排序也不修正时间范围；
// 空序列产生空文档。
func GenerateSRT(segments []models.DataSegment) string {
	var b strings.Builder

	for i, segment := range segments {
		srtStart := FormatSRTTime(segment.StartTime)
		srtEnd := FormatSRTTime(segment.EndTime)

		fmt.Fprintf(&b, "%d\n", i+1)
		fmt.Fprintf(&b, "%s --> %s\n", srtStart, srtEnd)
		fmt.Fprintf(&b, "%s\n\n", strings.TrimSpace(segment.Text))
	}

	return b.String()
}

// WriteSRT 生成SRT内容并写入文件
func WriteSRT(path string, segments []models.DataSegment) error {
	content := GenerateSRT(segments)

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return utils.NewProcessError(utils.KindExport, fmt.Sprintf("写入SRT文件失败: %s", path), err)
	}

	utils.Info("已导出SRT字幕: %s", path)
	return nil
}

// TimingIssues 检查段落时间的异常情况，返回描述列表。
// 序列化本身不做任何修正，这里只用于记录警告。
func TimingIssues(segments []models.DataSegment) []string {
	var issues []string

	prevEnd := 0.0
	for i, segment := range segments {
		if segment.EndTime < segment.StartTime {
			issues = append(issues, fmt.Sprintf("段落 %d 结束时间早于开始时间 (%.3f < %.3f)", i+1, segment.EndTime, segment.StartTime))
		}
		if segment.StartTime < prevEnd {
			issues = append(issues, fmt.Sprintf("段落 %d 与前一段时间重叠 (%.3f < %.3f)", i+1, segment.StartTime, prevEnd))
		}
		if segment.EndTime > prevEnd {
			prevEnd = segment.EndTime
		}
	}

	return issues
}
