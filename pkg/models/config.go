package models

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Config 表示应用程序的配置。一次流水线运行期间配置不会被修改。
type Config struct {
	WorkDir      string `json:"work_dir"`      // 工作目录，音频和字幕产物都放在这里
	AudioFormat  string `json:"audio_format"`  // 下载音频格式 (mp3, wav, m4a)
	ModelSize    string `json:"model_size"`    // whisper模型规格
	Language     string `json:"language"`      // 语言代码，auto表示自动检测
	YtDlpBin     string `json:"ytdlp_bin"`     // yt-dlp可执行文件，空则使用PATH中的yt-dlp
	WhisperBin   string `json:"whisper_bin"`   // whisper可执行文件，空则使用PATH中的mlx_whisper
	ShowProgress bool   `json:"show_progress"` // 显示进度条
	LogLevel     string `json:"log_level"`     // 日志级别
	LogFile      string `json:"log_file"`      // 日志文件
	WatchFolder  string `json:"watch_folder"`  // 监听模式的请求文件目录，空表示不启用
}

// ConfigValidationError 表示配置验证错误
type ConfigValidationError struct {
	Field   string
	Message string
}

func (e ConfigValidationError) Error() string {
	msg := fmt.Sprintf("配置验证错误: %s - %s", e.Field, e.Message)
	logrus.Error(msg)
	return msg
}

// NewDefaultConfig 创建默认配置
func NewDefaultConfig() *Config {
	return &Config{
		WorkDir:      "whisper_workspace",
		AudioFormat:  string(FormatMP3),
		ModelSize:    string(ModelTurboQ4),
		Language:     "auto",
		YtDlpBin:     "",
		WhisperBin:   "",
		ShowProgress: true,
		LogLevel:     "INFO",
		LogFile:      "",
		WatchFolder:  "",
	}
}

// Validate 验证配置是否有效
func (c *Config) Validate() error {
	if c.WorkDir == "" {
		return &ConfigValidationError{"WorkDir", "工作目录不能为空"}
	}

	if _, ok := ParseAudioFormat(c.AudioFormat); !ok {
		return &ConfigValidationError{"AudioFormat", fmt.Sprintf("不支持的音频格式: %s (可选: mp3, wav, m4a)", c.AudioFormat)}
	}

	if _, ok := ParseModelSize(c.ModelSize); !ok {
		return &ConfigValidationError{"ModelSize", fmt.Sprintf("不支持的模型规格: %s", c.ModelSize)}
	}

	if c.Language == "" {
		return &ConfigValidationError{"Language", "语言代码不能为空，自动检测请使用auto"}
	}

	return nil
}

// LoadFromFile 从文件加载配置
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		logrus.Errorf("读取配置文件失败: %v", err)
		return err
	}

	err = json.Unmarshal(data, c)
	if err != nil {
		logrus.Errorf("解析配置文件失败: %v", err)
		return err
	}

	if err := c.Validate(); err != nil {
		logrus.Errorf("配置验证失败: %v", err)
		return err
	}

	return nil
}

// SaveToFile 保存配置到文件
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		logrus.Errorf("创建目录失败: %v", err)
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		logrus.Errorf("序列化配置失败: %v", err)
		return err
	}

	err = os.WriteFile(path, data, 0644)
	if err != nil {
		logrus.Errorf("写入配置文件失败: %v", err)
		return err
	}

	return nil
}

// Update 批量更新配置，验证失败时回滚
func (c *Config) Update(updates map[string]interface{}) error {
	tempConfig := *c

	// 将更新序列化为JSON再反序列化到结构体中
	updateBytes, err := json.Marshal(updates)
	if err != nil {
		logrus.Errorf("序列化更新数据失败: %v", err)
		return err
	}

	err = json.Unmarshal(updateBytes, c)
	if err != nil {
		*c = tempConfig
		logrus.Errorf("应用配置更新失败: %v", err)
		return err
	}

	if err := c.Validate(); err != nil {
		*c = tempConfig
		logrus.Errorf("配置验证失败: %v", err)
		return err
	}

	return nil
}

// Reset 重置为默认配置
func (c *Config) Reset() {
	defaultConfig := NewDefaultConfig()
	*c = *defaultConfig
}
