package models

// DataSegment 表示一个语音识别结果段落
type DataSegment struct {
	Text      string  // 识别出的文本内容
	StartTime float64 // 开始时间（秒）
	EndTime   float64 // 结束时间（秒）
}

// AudioFormat 下载音频使用的封装格式
type AudioFormat string

// 支持的音频格式
const (
	FormatMP3 AudioFormat = "mp3"
	FormatWAV AudioFormat = "wav"
	FormatM4A AudioFormat = "m4a"
)

// AllAudioFormats 返回所有支持的音频格式
func AllAudioFormats() []AudioFormat {
	return []AudioFormat{FormatMP3, FormatWAV, FormatM4A}
}

// ParseAudioFormat 解析音频格式，不认识的格式返回false
func ParseAudioFormat(s string) (AudioFormat, bool) {
	switch AudioFormat(s) {
	case FormatMP3, FormatWAV, FormatM4A:
		return AudioFormat(s), true
	}
	return "", false
}

// ModelSize 识别模型的规格名称
type ModelSize string

// 支持的模型规格
const (
	ModelTiny      ModelSize = "tiny"
	ModelBase      ModelSize = "base"
	ModelSmall     ModelSize = "small"
	ModelMedium    ModelSize = "medium"
	ModelLarge     ModelSize = "large"
	ModelLargeQ4   ModelSize = "large-4bit"
	ModelTurbo     ModelSize = "turbo"
	ModelTurboQ4   ModelSize = "turbo-4bit"
	DefaultModelID           = "mlx-community/whisper-large-v3-turbo-q4"
)

// AllModelSizes 返回所有支持的模型规格
func AllModelSizes() []ModelSize {
	return []ModelSize{
		ModelTiny, ModelBase, ModelSmall, ModelMedium,
		ModelLarge, ModelLargeQ4, ModelTurbo, ModelTurboQ4,
	}
}

// ParseModelSize 解析模型规格，不认识的规格返回false
func ParseModelSize(s string) (ModelSize, bool) {
	for _, m := range AllModelSizes() {
		if ModelSize(s) == m {
			return m, true
		}
	}
	return "", false
}

// ResolveModelID 将模型规格映射为具体的whisper模型标识。
// 不认识的规格不报错，统一回退到turbo-4bit模型。
func (m ModelSize) ResolveModelID() string {
	switch m {
	case ModelTiny:
		return "mlx-community/whisper-tiny-mlx"
	case ModelBase:
		return "mlx-community/whisper-base-mlx"
	case ModelSmall:
		return "mlx-community/whisper-small-mlx"
	case ModelMedium:
		return "mlx-community/whisper-medium-mlx"
	case ModelLarge:
		return "mlx-community/whisper-large-v3-mlx"
	case ModelLargeQ4:
		return "mlx-community/whisper-large-v3-mlx-4bit"
	case ModelTurbo:
		return "mlx-community/whisper-large-v3-turbo"
	case ModelTurboQ4:
		return DefaultModelID
	default:
		// 回退分支：未知规格使用默认模型
		return DefaultModelID
	}
}
