package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveModelID(t *testing.T) {
	cases := map[ModelSize]string{
		ModelTiny:    "mlx-community/whisper-tiny-mlx",
		ModelBase:    "mlx-community/whisper-base-mlx",
		ModelSmall:   "mlx-community/whisper-small-mlx",
		ModelMedium:  "mlx-community/whisper-medium-mlx",
		ModelLarge:   "mlx-community/whisper-large-v3-mlx",
		ModelLargeQ4: "mlx-community/whisper-large-v3-mlx-4bit",
		ModelTurbo:   "mlx-community/whisper-large-v3-turbo",
		ModelTurboQ4: "mlx-community/whisper-large-v3-turbo-q4",
	}

	for size, expected := range cases {
		assert.Equal(t, expected, size.ResolveModelID(), "模型规格: %s", size)
	}
}

func TestResolveModelIDFallback(t *testing.T) {
	// 未知规格统一回退到默认模型，不报错
	assert.Equal(t, DefaultModelID, ModelSize("does-not-exist").ResolveModelID())
	assert.Equal(t, DefaultModelID, ModelSize("").ResolveModelID())
}

func TestParseModelSize(t *testing.T) {
	m, ok := ParseModelSize("tiny")
	assert.True(t, ok)
	assert.Equal(t, ModelTiny, m)

	_, ok = ParseModelSize("huge")
	assert.False(t, ok)
}

func TestParseAudioFormat(t *testing.T) {
	for _, s := range []string{"mp3", "wav", "m4a"} {
		f, ok := ParseAudioFormat(s)
		assert.True(t, ok)
		assert.Equal(t, AudioFormat(s), f)
	}

	_, ok := ParseAudioFormat("ogg")
	assert.False(t, ok)

	_, ok = ParseAudioFormat("")
	assert.False(t, ok)
}
