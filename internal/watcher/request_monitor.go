package watcher

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/ccp-p/yt2srt-cli/pkg/utils"
)

// URLRunner 处理一条视频URL，返回错误表示处理失败
type URLRunner func(url string) error

// RequestMonitor 监控请求目录。放入目录的 .txt / .url 文件每行一个视频URL，
// 全部处理完后文件被改名为 .done（全部成功）或 .failed（有失败）。
type RequestMonitor struct {
	watcher      *fsnotify.Watcher
	folderPath   string
	runner       URLRunner
	debounceTime time.Duration
	pendingFiles map[string]*time.Timer
	mutex        sync.Mutex
	stopChan     chan struct{}
}

// NewRequestMonitor 创建新的请求目录监控器
func NewRequestMonitor(folderPath string, runner URLRunner, debounceTime time.Duration) (*RequestMonitor, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("创建文件监控器失败: %w", err)
	}

	return &RequestMonitor{
		watcher:      watcher,
		folderPath:   folderPath,
		runner:       runner,
		debounceTime: debounceTime,
		pendingFiles: make(map[string]*time.Timer),
		stopChan:     make(chan struct{}),
	}, nil
}

// Start 开始监控请求目录，目录中已有的请求文件也会被处理
func (m *RequestMonitor) Start() error {
	if err := os.MkdirAll(m.folderPath, 0755); err != nil {
		return fmt.Errorf("创建请求目录失败: %w", err)
	}

	if err := m.watcher.Add(m.folderPath); err != nil {
		return fmt.Errorf("添加监控目录失败: %w", err)
	}

	// 先处理目录中已有的请求文件
	entries, err := os.ReadDir(m.folderPath)
	if err == nil {
		for _, entry := range entries {
			if !entry.IsDir() && isRequestFile(entry.Name()) {
				m.scheduleFile(filepath.Join(m.folderPath, entry.Name()))
			}
		}
	}

	go m.watchLoop()

	utils.Info("开始监控请求目录: %s", m.folderPath)
	return nil
}

// Stop 停止监控
func (m *RequestMonitor) Stop() {
	close(m.stopChan)
	m.watcher.Close()
	utils.Info("停止监控请求目录: %s", m.folderPath)

	m.mutex.Lock()
	defer m.mutex.Unlock()
	for _, timer := range m.pendingFiles {
		timer.Stop()
	}
}

// watchLoop 监控循环
func (m *RequestMonitor) watchLoop() {
	for {
		select {
		case <-m.stopChan:
			return
		case event, ok := <-m.watcher.Events:
			if !ok {
				return
			}
			if !isRequestFile(event.Name) {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				m.scheduleFile(event.Name)
			}
		case err, ok := <-m.watcher.Errors:
			if !ok {
				return
			}
			utils.Error("文件监控错误: %v", err)
		}
	}
}

// scheduleFile 延迟处理文件，短时间内的重复写入只触发一次
func (m *RequestMonitor) scheduleFile(path string) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if timer, exists := m.pendingFiles[path]; exists {
		timer.Stop()
	}

	m.pendingFiles[path] = time.AfterFunc(m.debounceTime, func() {
		m.mutex.Lock()
		delete(m.pendingFiles, path)
		m.mutex.Unlock()

		m.handleFile(path)
	})
}

// handleFile 处理一个请求文件中的所有URL
func (m *RequestMonitor) handleFile(path string) {
	urls, err := ParseRequestFile(path)
	if err != nil {
		utils.Error("读取请求文件失败: %v", err)
		return
	}

	if len(urls) == 0 {
		utils.Warn("请求文件没有有效的URL: %s", path)
		return
	}

	utils.Info("处理请求文件: %s (%d 条URL)", filepath.Base(path), len(urls))

	failed := 0
	for _, url := range urls {
		if err := m.runner(url); err != nil {
			utils.Error("URL处理失败: %s - %v", url, err)
			failed++
		}
	}

	suffix := ".done"
	if failed > 0 {
		suffix = ".failed"
	}
	if err := os.Rename(path, path+suffix); err != nil {
		utils.Error("改名请求文件失败: %v", err)
	}
}

// ParseRequestFile 读取请求文件中的URL，跳过空行和#注释行
func ParseRequestFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var urls []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}

	return urls, scanner.Err()
}

// isRequestFile 判断是否为请求文件
func isRequestFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".txt" || ext == ".url"
}
