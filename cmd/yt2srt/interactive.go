package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/ccp-p/yt2srt-cli/pkg/models"
)

// interactiveMode 交互式收集缺失的参数，返回视频URL
func interactiveMode(config *models.Config) string {
	fmt.Println("YouTube 转 SRT (交互模式)")
	fmt.Println("==========================================")

	reader := bufio.NewReader(os.Stdin)

	url := prompt(reader, "请输入视频URL: ")
	promptRemaining(reader, config)
	return url
}

// confirmRemaining 只给了URL时询问是否交互式补全其余参数
func confirmRemaining(reader *bufio.Reader) bool {
	answer := prompt(reader, "是否交互式设置其余参数? (y/n, 默认: n): ")
	return wantsInteractive(answer)
}

func wantsInteractive(answer string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(answer)), "y")
}

// promptRemaining 逐项询问命令行没有给出的参数，空输入保留默认值
func promptRemaining(reader *bufio.Reader, config *models.Config) {
	if language == "" {
		input := prompt(reader, "语言代码 (例如 ja, en, auto / 默认: auto): ")
		if input != "" {
			config.Language = input
		}
	}

	if modelSize == "" {
		fmt.Println("可选的模型规格:")
		fmt.Println("- tiny: 最快，精度最低")
		fmt.Println("- base: 较快，基础精度")
		fmt.Println("- small: 速度和精度均衡")
		fmt.Println("- medium: 精度更高，速度较慢")
		fmt.Println("- large: 精度最高，速度最慢")
		fmt.Println("- large-4bit: 比large性能更好")
		fmt.Println("- turbo: 最快的large模型")
		fmt.Println("- turbo-4bit: 推荐 (4-bit量化的最快large模型)")

		input := prompt(reader, fmt.Sprintf("模型规格 (默认: %s): ", models.ModelTurboQ4))
		if input != "" {
			config.ModelSize = input
		}
	}
}

// prompt 读取一行输入并去掉首尾空白
func prompt(reader *bufio.Reader, label string) string {
	fmt.Print(label)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}
