package utils

import (
	"errors"
	"fmt"
)

// 错误所属的处理阶段
const (
	KindDownload   = "download"   // 获取远程音频失败
	KindWorkspace  = "workspace"  // 工作目录不可用
	KindTranscribe = "transcribe" // 语音识别失败
	KindExport     = "export"     // 字幕文件写入失败
)

// ProcessError 是处理流程错误的基础类型，记录错误发生的阶段
type ProcessError struct {
	Kind    string
	Message string
	Cause   error
}

// Error 实现error接口
func (e *ProcessError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %s", e.Kind, e.Message, e.Cause.Error())
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

// Unwrap 支持error chain
func (e *ProcessError) Unwrap() error {
	return e.Cause
}

// NewProcessError 创建一个新的ProcessError
func NewProcessError(kind, message string, cause error) error {
	return &ProcessError{
		Kind:    kind,
		Message: message,
		Cause:   cause,
	}
}

// ErrorKind 返回错误所属的阶段，非ProcessError返回空字符串
func ErrorKind(err error) string {
	var pe *ProcessError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return ""
}

// IsDownloadError 判断是否为下载阶段错误
func IsDownloadError(err error) bool {
	return ErrorKind(err) == KindDownload
}

// IsWorkspaceError 判断是否为工作目录错误
func IsWorkspaceError(err error) bool {
	return ErrorKind(err) == KindWorkspace
}

// IsTranscribeError 判断是否为识别阶段错误
func IsTranscribeError(err error) bool {
	return ErrorKind(err) == KindTranscribe
}

// IsExportError 判断是否为导出阶段错误
func IsExportError(err error) bool {
	return ErrorKind(err) == KindExport
}
