package subtitle

import (
	"fmt"
	"math"
)

// FormatSRTTime 将秒数格式化为SRT时间格式 (HH:MM:SS,mmm)
func FormatSRTTime(seconds float64) string {
	if seconds < 0 {
		// 浮点误差可能产生略小于零的值
		seconds = 0
	}

	hours := int(seconds / 3600)
	minutes := int(math.Mod(seconds, 3600) / 60)
	secs := int(seconds) % 60
	milliseconds := int(math.Round((seconds - math.Floor(seconds)) * 1000))
	if milliseconds > 999 {
		milliseconds = 999
	}

	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, secs, milliseconds)
}
