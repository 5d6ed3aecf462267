package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// ConfigWatcher 监听引导页配置文件的修改（开发时热重载用）
//
// 监听在后台 goroutine 中进行，但不会直接修改任何引导页状态：
// 解析成功的配置被投递到 Reloads() 通道，由游戏主循环在 Update 中取出。
type ConfigWatcher struct {
	path    string
	watcher *fsnotify.Watcher
	reloads chan *OnboardingConfig
	done    chan struct{}
}

// NewConfigWatcher 创建并启动配置文件监听
//
// 监听文件所在目录而不是文件本身，因为编辑器保存时常常先删除再重建文件。
func NewConfigWatcher(path string) (*ConfigWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", path, err)
	}

	cw := &ConfigWatcher{
		path:    filepath.Clean(path),
		watcher: w,
		reloads: make(chan *OnboardingConfig, 1),
		done:    make(chan struct{}),
	}
	go cw.run()

	log.Printf("[ConfigWatcher] Watching %s", cw.path)
	return cw, nil
}

// Reloads 返回新配置通道（容量为 1，只保留最新一份）
func (cw *ConfigWatcher) Reloads() <-chan *OnboardingConfig {
	return cw.reloads
}

// Close 停止监听
func (cw *ConfigWatcher) Close() error {
	select {
	case <-cw.done:
		return nil
	default:
	}
	close(cw.done)
	return cw.watcher.Close()
}

func (cw *ConfigWatcher) run() {
	for {
		select {
		case <-cw.done:
			return
		case event, ok := <-cw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != cw.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			cw.reload()
		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("[ConfigWatcher] Watch error: %v", err)
		}
	}
}

func (cw *ConfigWatcher) reload() {
	data, err := os.ReadFile(cw.path)
	if err != nil {
		log.Printf("[ConfigWatcher] Failed to read %s: %v", cw.path, err)
		return
	}
	cfg, err := ParseOnboardingConfig(data)
	if err != nil {
		log.Printf("[ConfigWatcher] Ignoring invalid config: %v", err)
		return
	}

	// 丢弃尚未被取走的旧配置
	select {
	case <-cw.reloads:
	default:
	}
	select {
	case cw.reloads <- cfg:
		log.Printf("[ConfigWatcher] Reloaded %s (%d pages)", cw.path, cfg.PageCount())
	default:
	}
}
