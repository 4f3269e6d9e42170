package utils

import "os/exec"

// CheckTool 检查外部命令行工具是否可用
func CheckTool(name string, args ...string) bool {
	cmd := exec.Command(name, args...)
	err := cmd.Run()
	return err == nil
}

// CheckYtDlp 检查yt-dlp是否可用
func CheckYtDlp(bin string) bool {
	if bin == "" {
		bin = "yt-dlp"
	}
	return CheckTool(bin, "--version")
}

// CheckWhisper 检查whisper命令行工具是否可用
func CheckWhisper(bin string) bool {
	if bin == "" {
		bin = "mlx_whisper"
	}
	return CheckTool(bin, "--help")
}
