package pipeline

import (
	"context"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ccp-p/yt2srt-cli/pkg/asr"
	"github.com/ccp-p/yt2srt-cli/pkg/downloader"
	"github.com/ccp-p/yt2srt-cli/pkg/models"
	"github.com/ccp-p/yt2srt-cli/pkg/subtitle"
	"github.com/ccp-p/yt2srt-cli/pkg/utils"
	"github.com/ccp-p/yt2srt-cli/pkg/workspace"
)

// Stage 表示流水线所处的阶段
type Stage string

// 流水线阶段。失败可以发生在任何非终止阶段，没有重试。
const (
	StageIdle         Stage = "idle"
	StageDownloading  Stage = "downloading"
	StageTranscribing Stage = "transcribing"
	StageExporting    Stage = "exporting"
	StageDone         Stage = "done"
	StageFailed       Stage = "failed"
)

// ProgressFunc 阶段进度回调，percent为0-100
type ProgressFunc func(stage Stage, percent int, message string)

// Result 一次流水线运行的结果
type Result struct {
	RunID        string        // 本次运行的标识，用于关联日志
	AudioPath    string        // 音频产物路径
	SubtitlePath string        // 字幕产物路径
	CacheHit     bool          // 音频是否来自缓存
	SegmentCount int           // 识别出的段落数
	Elapsed      time.Duration // 总耗时
}

// Pipeline 串联下载、识别、导出三个阶段。
// 各阶段严格串行执行，前一阶段的输出是后一阶段的输入；
// 任何阶段失败都直接终止本次运行并报告失败的阶段和原因。
// Pipeline本身不在多次运行之间保留状态，缓存完全通过文件系统体现。
type Pipeline struct {
	cfg        models.Config // 按值保存，运行期间不可变
	ws         *workspace.Workspace
	dl         downloader.Downloader
	newService asr.ServiceCreator
	progress   ProgressFunc
}

// New 创建流水线，工作目录不可用时返回错误
func New(cfg *models.Config) (*Pipeline, error) {
	ws, err := workspace.New(cfg.WorkDir)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		cfg: *cfg,
		ws:  ws,
		dl:  downloader.NewYtDlpDownloader(cfg.YtDlpBin),
	}

	model, _ := models.ParseModelSize(cfg.ModelSize)
	whisperBin := cfg.WhisperBin
	language := cfg.Language
	p.newService = func(audioPath string) (asr.Service, error) {
		return asr.NewWhisperService(audioPath, whisperBin, model, language), nil
	}

	return p, nil
}

// SetDownloader 替换下载器实现
func (p *Pipeline) SetDownloader(dl downloader.Downloader) {
	p.dl = dl
}

// SetServiceCreator 替换识别服务的创建函数
func (p *Pipeline) SetServiceCreator(creator asr.ServiceCreator) {
	p.newService = creator
}

// SetProgressFunc 设置阶段进度回调
func (p *Pipeline) SetProgressFunc(fn ProgressFunc) {
	p.progress = fn
}

// Run 对一个视频URL执行完整流水线，返回字幕产物位置。
// 阶段状态完全在本次调用内部，同一个Pipeline可以被并发调用
// （监听模式下多个请求文件会这样触发）。
func (p *Pipeline) Run(ctx context.Context, url string) (*Result, error) {
	if utils.Log == nil {
		utils.InitLogger(utils.LogLevelNormal, "")
	}

	runID := uuid.NewString()[:8]
	log := utils.WithFields(logrus.Fields{"run": runID, "url": url})
	start := time.Now()

	enterStage(log, StageDownloading)
	audioPath, cacheHit, err := p.acquire(ctx, url, log)
	if err != nil {
		return nil, fail(log, err)
	}

	enterStage(log, StageTranscribing)
	segments, err := p.transcribe(ctx, audioPath)
	if err != nil {
		return nil, fail(log, err)
	}

	enterStage(log, StageExporting)
	model, _ := models.ParseModelSize(p.cfg.ModelSize)
	srtPath, err := p.ws.SubtitlePath(audioPath, model)
	if err != nil {
		return nil, fail(log, err)
	}
	if err := subtitle.WriteSRT(srtPath, segments); err != nil {
		return nil, fail(log, err)
	}

	enterStage(log, StageDone)
	p.report(StageDone, 100, "完成")

	result := &Result{
		RunID:        runID,
		AudioPath:    audioPath,
		SubtitlePath: srtPath,
		CacheHit:     cacheHit,
		SegmentCount: len(segments),
		Elapsed:      time.Since(start),
	}

	log.Infof("流水线完成: %s (%d 个段落, 耗时 %s)",
		srtPath, result.SegmentCount, utils.FormatTimeDuration(result.Elapsed.Seconds()))
	return result, nil
}

// acquire 获取音频产物。缓存检查和下载在文件锁内完成，
// 共用工作目录的并发运行不会重复下载同一个视频。
func (p *Pipeline) acquire(ctx context.Context, url string, log *logrus.Entry) (string, bool, error) {
	format, _ := models.ParseAudioFormat(p.cfg.AudioFormat)
	videoID := downloader.VideoID(url)
	audioPath, _ := p.ws.AudioPath(videoID, format)

	lock, err := p.ws.LockAudio(audioPath)
	if err != nil {
		return "", false, err
	}
	defer lock.Unlock()

	// 拿到锁之后重新检查，文件可能刚被并发运行下载好
	if utils.CheckFileExists(audioPath) {
		log.Infof("音频已存在，跳过下载: %s", audioPath)
		p.report(StageDownloading, 100, "使用缓存的音频")
		return audioPath, true, nil
	}

	p.report(StageDownloading, 0, "正在下载音频")
	if err := p.dl.Fetch(ctx, url, format, audioPath); err != nil {
		return "", false, err
	}

	if info, err := os.Stat(audioPath); err == nil {
		log.Infof("音频下载完成: %s (%s)", audioPath, utils.FormatFileSize(info.Size()))
	}
	p.report(StageDownloading, 100, "下载完成")
	return audioPath, false, nil
}

// transcribe 执行语音识别。空结果不算失败，静音视频是合法输入。
func (p *Pipeline) transcribe(ctx context.Context, audioPath string) ([]models.DataSegment, error) {
	service, err := p.newService(audioPath)
	if err != nil {
		return nil, utils.NewProcessError(utils.KindTranscribe, "创建识别服务失败", err)
	}

	segments, err := service.GetResult(ctx, func(percent int, message string) {
		p.report(StageTranscribing, percent, message)
	})
	if err != nil {
		return nil, err
	}

	if len(segments) == 0 {
		utils.Warn("识别结果为空，将生成空字幕文件")
	}
	return segments, nil
}

func enterStage(log *logrus.Entry, stage Stage) {
	log.Debugf("进入阶段: %s", stage)
}

func fail(log *logrus.Entry, err error) error {
	log.Errorf("流水线失败 (阶段: %s): %v", utils.ErrorKind(err), err)
	return err
}

func (p *Pipeline) report(stage Stage, percent int, message string) {
	if p.progress != nil {
		p.progress(stage, percent, message)
	}
}
