package asr

import (
	"context"

	"github.com/ccp-p/yt2srt-cli/pkg/models"
)

// ProgressCallback 是进度回调函数，用于通知识别过程的进度
type ProgressCallback func(percent int, message string)

// Service 定义了语音识别服务的接口
type Service interface {
	// GetResult 执行识别并按时间顺序返回结果段落。
	// 没有检测到语音时返回空切片，不算错误。
	GetResult(ctx context.Context, callback ProgressCallback) ([]models.DataSegment, error)
}

// ServiceCreator 是创建识别服务实例的函数类型
type ServiceCreator func(audioPath string) (Service, error)
