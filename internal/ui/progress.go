package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
)

// ProgressBar 终端进度条，进度按0-100的百分比计
type ProgressBar struct {
	Current   int       // 当前百分比
	Prefix    string    // 前缀
	Suffix    string    // 后缀
	Width     int       // 进度条宽度
	FillChar  string    // 填充字符
	EmptyChar string    // 空白字符
	StartTime time.Time // 开始时间
}

// NewProgressBar 创建新的进度条
func NewProgressBar(prefix string, suffix string) *ProgressBar {
	return &ProgressBar{
		Current:   0,
		Prefix:    prefix,
		Suffix:    suffix,
		Width:     30,
		FillChar:  "█",
		EmptyChar: "░",
		StartTime: time.Now(),
	}
}

// Update 更新进度
func (p *ProgressBar) Update(percent int, suffix string) {
	if percent < 0 {
		return
	}
	if percent > 100 {
		percent = 100
	}

	p.Current = percent
	if suffix != "" {
		p.Suffix = suffix
	}

	p.draw()
}

// Complete 完成进度条
func (p *ProgressBar) Complete(suffix string) {
	p.Update(100, suffix)
	fmt.Println()
}

// 绘制进度条
func (p *ProgressBar) draw() {
	filled := p.Current * p.Width / 100
	if filled > p.Width {
		filled = p.Width
	}

	bar := strings.Repeat(p.FillChar, filled) + strings.Repeat(p.EmptyChar, p.Width-filled)
	elapsed := formatDuration(time.Since(p.StartTime))

	progressLine := fmt.Sprintf("\r%s [%s] %3d%% | %s | %s",
		p.Prefix, bar, p.Current, elapsed, p.Suffix)

	fmt.Print(color.CyanString(progressLine))
}

// 格式化持续时间为 MM:SS 格式
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
