package main

import (
	"bufio"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ccp-p/yt2srt-cli/pkg/models"
)

func TestWantsInteractive(t *testing.T) {
	assert.True(t, wantsInteractive("y"))
	assert.True(t, wantsInteractive("Y"))
	assert.True(t, wantsInteractive("yes"))
	assert.True(t, wantsInteractive(" y "))

	// 默认为n
	assert.False(t, wantsInteractive(""))
	assert.False(t, wantsInteractive("n"))
	assert.False(t, wantsInteractive("no"))
}

func TestConfirmRemaining(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader("y\n"))
	assert.True(t, confirmRemaining(reader))

	reader = bufio.NewReader(strings.NewReader("\n"))
	assert.False(t, confirmRemaining(reader))
}

func TestPrompt(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader("  ja  \n"))
	assert.Equal(t, "ja", prompt(reader, "语言: "))
}

func TestPromptRemaining(t *testing.T) {
	origLanguage, origModel := language, modelSize
	language, modelSize = "", ""
	defer func() { language, modelSize = origLanguage, origModel }()

	config := models.NewDefaultConfig()
	reader := bufio.NewReader(strings.NewReader("ja\nsmall\n"))
	promptRemaining(reader, config)

	assert.Equal(t, "ja", config.Language)
	assert.Equal(t, "small", config.ModelSize)
}

func TestPromptRemainingKeepsDefaults(t *testing.T) {
	origLanguage, origModel := language, modelSize
	language, modelSize = "", ""
	defer func() { language, modelSize = origLanguage, origModel }()

	config := models.NewDefaultConfig()
	reader := bufio.NewReader(strings.NewReader("\n\n"))
	promptRemaining(reader, config)

	// 空输入保留配置默认值
	assert.Equal(t, "auto", config.Language)
	assert.Equal(t, string(models.ModelTurboQ4), config.ModelSize)
}

func TestPromptRemainingSkipsGivenFlags(t *testing.T) {
	origLanguage, origModel := language, modelSize
	language, modelSize = "en", "base"
	defer func() { language, modelSize = origLanguage, origModel }()

	config := models.NewDefaultConfig()
	config.Language = "en"
	config.ModelSize = "base"

	// 两个参数都已给出，不应消耗任何输入
	reader := bufio.NewReader(strings.NewReader(""))
	promptRemaining(reader, config)

	assert.Equal(t, "en", config.Language)
	assert.Equal(t, "base", config.ModelSize)
}
