// Package embedded 提供嵌入资源的统一访问接口
//
// Go embed 指令只能嵌入当前包目录及其子目录的文件，
// 所以 embed.FS 变量声明在项目根目录（embed.go），启动时通过 Init 传入。
// 测试可以传入 fstest.MapFS。
package embedded

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// ErrNotInitialized 在 Init 之前访问资源时返回
var ErrNotInitialized = errors.New("embedded package not initialized, call Init() first")

var dataFS fs.FS

// Init 设置资源文件系统
// 必须在 main() 开始时、任何资源加载之前调用
func Init(data fs.FS) {
	dataFS = data
}

// Reset 清除已设置的文件系统
func Reset() {
	dataFS = nil
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return dataFS != nil
}

// normalize 标准化路径并检查前缀，路径必须以 "data/" 开头
func normalize(path string) (string, error) {
	if dataFS == nil {
		return "", ErrNotInitialized
	}

	path = strings.TrimPrefix(filepath.ToSlash(path), "./")
	if !strings.HasPrefix(path, "data/") {
		return "", fmt.Errorf("unknown resource path prefix: %s (must start with 'data/')", path)
	}
	return path, nil
}

// ReadFile 读取嵌入文件内容
func ReadFile(path string) ([]byte, error) {
	p, err := normalize(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(dataFS, p)
}

// Exists 检查文件是否存在
func Exists(path string) bool {
	p, err := normalize(path)
	if err != nil {
		return false
	}
	_, err = fs.Stat(dataFS, p)
	return err == nil
}
