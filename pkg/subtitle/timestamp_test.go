package subtitle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatSRTTime(t *testing.T) {
	// 基础用例
	assert.Equal(t, "00:00:00,000", FormatSRTTime(0))
	assert.Equal(t, "01:01:01,500", FormatSRTTime(3661.5))
	assert.Equal(t, "00:00:01,500", FormatSRTTime(1.5))
	assert.Equal(t, "00:01:00,000", FormatSRTTime(60))

	// 小时字段可以超过两位
	assert.Equal(t, "100:00:00,000", FormatSRTTime(360000))
}

func TestFormatSRTTimeNegativeEpsilon(t *testing.T) {
	// 浮点误差产生的负值不应该panic或输出负号
	assert.Equal(t, "00:00:00,000", FormatSRTTime(-0.0001))
}

func TestFormatSRTTimeMilliseconds(t *testing.T) {
	// 毫秒按四舍五入处理
	assert.Equal(t, "00:00:00,123", FormatSRTTime(0.1234))
	assert.Equal(t, "00:00:00,124", FormatSRTTime(0.1236))

	// 毫秒字段固定三位，不向秒进位
	assert.Equal(t, "00:00:00,999", FormatSRTTime(0.9996))
}

func TestFormatSRTTimeOrdering(t *testing.T) {
	// 同一小时内，递增的输入产生字典序不降的输出
	inputs := []float64{0, 0.5, 1, 59.999, 60, 61.5, 599, 3599}

	prev := FormatSRTTime(inputs[0])
	for _, sec := range inputs[1:] {
		cur := FormatSRTTime(sec)
		if cur < prev {
			t.Errorf("时间戳顺序错误: %f -> %s 小于前一个 %s", sec, cur, prev)
		}
		prev = cur
	}
}
