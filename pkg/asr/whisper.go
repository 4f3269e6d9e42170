package asr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/ccp-p/yt2srt-cli/pkg/models"
	"github.com/ccp-p/yt2srt-cli/pkg/subtitle"
	"github.com/ccp-p/yt2srt-cli/pkg/utils"
)

// WhisperService 通过本地whisper命令行工具完成语音识别
type WhisperService struct {
	AudioPath string
	Bin       string
	ModelID   string
	Language  string // auto表示自动检测
}

// NewWhisperService 创建whisper识别服务，bin为空时使用PATH中的mlx_whisper
func NewWhisperService(audioPath, bin string, model models.ModelSize, language string) *WhisperService {
	if bin == "" {
		bin = "mlx_whisper"
	}
	return &WhisperService{
		AudioPath: audioPath,
		Bin:       bin,
		ModelID:   model.ResolveModelID(),
		Language:  language,
	}
}

// whisperResult 是whisper命令行JSON输出的结构
type whisperResult struct {
	Language string `json:"language"`
	Segments []struct {
		Start float64 `json:"start"`
		End   float64 `json:"end"`
		Text  string  `json:"text"`
	} `json:"segments"`
}

// GetResult 执行识别并返回段落序列
func (s *WhisperService) GetResult(ctx context.Context, callback ProgressCallback) ([]models.DataSegment, error) {
	if !utils.CheckFileExists(s.AudioPath) {
		return nil, utils.NewProcessError(utils.KindTranscribe, fmt.Sprintf("音频文件不存在: %s", s.AudioPath), nil)
	}

	if callback != nil {
		callback(0, fmt.Sprintf("加载模型 %s", s.ModelID))
	}

	// 识别结果写入临时目录，避免和工作目录中的产物混在一起
	outDir, err := os.MkdirTemp("", "yt2srt-whisper")
	if err != nil {
		return nil, utils.NewProcessError(utils.KindTranscribe, "创建识别临时目录失败", err)
	}
	defer os.RemoveAll(outDir)

	args := []string{
		s.AudioPath,
		"--model", s.ModelID,
		"--output-format", "json",
		"--output-dir", outDir,
	}
	if !strings.EqualFold(s.Language, "auto") {
		args = append(args, "--language", s.Language)
	}

	cmd := exec.CommandContext(ctx, s.Bin, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	utils.Info("正在识别音频: %s (模型: %s)", filepath.Base(s.AudioPath), s.ModelID)
	if callback != nil {
		callback(10, "正在识别")
	}

	if err := cmd.Run(); err != nil {
		msg := "whisper 识别失败"
		if detail := strings.TrimSpace(stderr.String()); detail != "" {
			lines := strings.Split(detail, "\n")
			msg = fmt.Sprintf("%s: %s", msg, strings.TrimSpace(lines[len(lines)-1]))
		}
		return nil, utils.NewProcessError(utils.KindTranscribe, msg, err)
	}

	if callback != nil {
		callback(90, "解析识别结果")
	}

	baseName := filepath.Base(s.AudioPath)
	baseName = strings.TrimSuffix(baseName, filepath.Ext(baseName))
	resultPath := filepath.Join(outDir, baseName+".json")

	data, err := os.ReadFile(resultPath)
	if err != nil {
		return nil, utils.NewProcessError(utils.KindTranscribe, fmt.Sprintf("读取识别结果失败: %s", resultPath), err)
	}

	segments, err := parseWhisperResult(data)
	if err != nil {
		return nil, err
	}

	if callback != nil {
		callback(100, fmt.Sprintf("识别完成，共 %d 个段落", len(segments)))
	}

	return segments, nil
}

// parseWhisperResult 解析whisper的JSON输出。
// 段落按引擎给出的顺序原样保留；时间异常只记录警告，不做修正。
func parseWhisperResult(data []byte) ([]models.DataSegment, error) {
	var result whisperResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, utils.NewProcessError(utils.KindTranscribe, "解析识别结果JSON失败", err)
	}

	segments := make([]models.DataSegment, 0, len(result.Segments))
	for _, seg := range result.Segments {
		segments = append(segments, models.DataSegment{
			Text:      seg.Text,
			StartTime: seg.Start,
			EndTime:   seg.End,
		})
	}

	for _, issue := range subtitle.TimingIssues(segments) {
		utils.Warn("识别结果时间异常: %s", issue)
	}

	return segments, nil
}
