package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"

	"github.com/ccp-p/yt2srt-cli/internal/ui"
	"github.com/ccp-p/yt2srt-cli/internal/watcher"
	"github.com/ccp-p/yt2srt-cli/pkg/models"
	"github.com/ccp-p/yt2srt-cli/pkg/pipeline"
	"github.com/ccp-p/yt2srt-cli/pkg/utils"
)

var (
	language    string
	modelSize   string
	audioFormat string
	workDir     string
	watchDir    string
	configFile  string
	logLevel    string
	logFile     string
	noProgress  bool
)

func init() {
	flag.StringVar(&language, "language", "", "语言代码 (例如 en, ja, auto)")
	flag.StringVar(&language, "l", "", "语言代码 (同 -language)")
	flag.StringVar(&modelSize, "model", "", "whisper模型规格 (tiny/base/small/medium/large/large-4bit/turbo/turbo-4bit)")
	flag.StringVar(&modelSize, "m", "", "whisper模型规格 (同 -model)")
	flag.StringVar(&audioFormat, "audio-format", "", "下载音频格式 (mp3, wav, m4a)")
	flag.StringVar(&audioFormat, "a", "", "下载音频格式 (同 -audio-format)")
	flag.StringVar(&workDir, "workdir", "", "工作目录，音频和字幕产物的存放位置")
	flag.StringVar(&watchDir, "watch", "", "监听模式: 处理该目录中的URL请求文件")
	flag.StringVar(&configFile, "config", "", "配置文件路径")
	flag.StringVar(&logLevel, "log-level", "INFO", "日志级别 (VERBOSE/INFO/WARN)")
	flag.StringVar(&logFile, "log-file", "", "日志文件路径")
	flag.BoolVar(&noProgress, "no-progress", false, "不显示进度条")
}

func main() {
	flag.Parse()

	utils.InitLogger(logLevel, logFile)

	printWelcome()

	config := loadConfig()

	// 命令行参数优先于配置文件
	if language != "" {
		config.Language = language
	}
	if modelSize != "" {
		config.ModelSize = modelSize
	}
	if audioFormat != "" {
		config.AudioFormat = audioFormat
	}
	if workDir != "" {
		config.WorkDir = workDir
	}
	if watchDir != "" {
		config.WatchFolder = watchDir
	}
	if noProgress {
		config.ShowProgress = false
	}

	url := flag.Arg(0)

	// 没有给任何参数时进入交互模式
	if url == "" && config.WatchFolder == "" {
		url = interactiveMode(config)
	} else if url != "" && language == "" && modelSize == "" && audioFormat == "" {
		// 只给了URL时可以选择交互式补全其余参数
		reader := bufio.NewReader(os.Stdin)
		if confirmRemaining(reader) {
			promptRemaining(reader, config)
		}
	}

	if err := config.Validate(); err != nil {
		color.Red("参数错误: %v", err)
		os.Exit(2)
	}

	if !checkDependencies(config) {
		os.Exit(1)
	}

	if config.WatchFolder != "" {
		if err := runWatchMode(config); err != nil {
			color.Red("监听模式失败: %v", err)
			os.Exit(1)
		}
		return
	}

	if url == "" {
		color.Red("未提供视频URL")
		os.Exit(2)
	}

	if err := runOnce(config, url); err != nil {
		os.Exit(1)
	}
}

// runOnce 对单个URL执行一次完整流水线
func runOnce(config *models.Config, url string) error {
	fmt.Printf("\n处理视频: %s\n", url)
	fmt.Printf("语言: %s | 模型: %s | 音频格式: %s\n", config.Language, config.ModelSize, config.AudioFormat)

	p, err := pipeline.New(config)
	if err != nil {
		color.Red("初始化失败: %v", err)
		return err
	}

	pm := ui.NewProgressManager(config.ShowProgress)
	if config.ShowProgress {
		utils.EnableTerminalProgress()
		defer utils.DisableTerminalProgress()
	}
	p.SetProgressFunc(stageProgress(pm))

	// Ctrl-C 直接放弃本次运行，外部工具进程随之终止
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	startTime := time.Now()
	result, err := p.Run(ctx, url)
	pm.CloseAll("")

	if err != nil {
		color.Red("\n处理失败 (阶段: %s): %v", utils.ErrorKind(err), err)
		return err
	}

	color.Green("\n完成! SRT文件已保存: %s", result.SubtitlePath)
	if result.CacheHit {
		fmt.Println("音频来自缓存，未重新下载")
	}
	fmt.Printf("识别段落: %d | 处理用时: %s\n",
		result.SegmentCount, utils.FormatTimeDuration(time.Since(startTime).Seconds()))
	return nil
}

// runWatchMode 监听请求目录，逐个处理投递进来的URL
func runWatchMode(config *models.Config) error {
	p, err := pipeline.New(config)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	monitor, err := watcher.NewRequestMonitor(config.WatchFolder, func(url string) error {
		_, err := p.Run(ctx, url)
		return err
	}, 2*time.Second)
	if err != nil {
		return err
	}

	if err := monitor.Start(); err != nil {
		return err
	}
	defer monitor.Stop()

	fmt.Printf("监听中: %s (Ctrl-C 退出)\n", config.WatchFolder)
	<-ctx.Done()
	fmt.Println("\n收到退出信号，停止监听")
	return nil
}

// stageProgress 把流水线进度转成终端进度条
func stageProgress(pm *ui.ProgressManager) pipeline.ProgressFunc {
	labels := map[pipeline.Stage]string{
		pipeline.StageDownloading:  "下载音频",
		pipeline.StageTranscribing: "语音识别",
		pipeline.StageExporting:    "写入字幕",
	}

	return func(stage pipeline.Stage, percent int, message string) {
		label, ok := labels[stage]
		if !ok {
			return
		}

		id := string(stage)
		switch {
		case percent <= 0:
			pm.CreateProgressBar(id, label, message)
		case percent >= 100:
			pm.CompleteProgressBar(id, message)
		default:
			pm.UpdateProgressBar(id, percent, message)
		}
	}
}

func printWelcome() {
	fmt.Println()
	color.Cyan("================================")
	color.Cyan("   YouTube 视频转SRT字幕工具    ")
	color.Cyan("================================")
	fmt.Println()
}

func checkDependencies(config *models.Config) bool {
	fmt.Print("检查系统依赖... ")

	if !utils.CheckYtDlp(config.YtDlpBin) {
		color.Red("失败")
		utils.Error("未检测到yt-dlp，请确保yt-dlp已安装并添加到系统路径")
		return false
	}

	if !utils.CheckWhisper(config.WhisperBin) {
		color.Red("失败")
		utils.Error("未检测到whisper命令行工具，请确保mlx_whisper已安装")
		return false
	}

	color.Green("通过")
	return true
}

func loadConfig() *models.Config {
	config := models.NewDefaultConfig()

	if configFile != "" {
		if err := config.LoadFromFile(configFile); err != nil {
			color.Yellow("警告: 加载配置文件失败: %v，将使用默认配置", err)
			config.Reset()
		}
	}

	return config
}
