// Washed Away! 一只迷路的袜子在洗衣机里寻找另一只
//
// 用法:
//
//	washedaway [--verbose] [--config path/to/game.yaml] [--seed N] [--fullscreen]
//
// 关卡参数默认读取嵌入的 data/game.yaml，可用 WASHEDAWAY_ 前缀的环境变量覆盖。
package main

import (
	"flag"
	"log"

	"github.com/decker502/washedaway/pkg/app"
	"github.com/decker502/washedaway/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细日志")
	configPath = flag.String("config", "", "从磁盘读取关卡参数（默认使用嵌入的 data/game.yaml）")
	seed       = flag.Uint64("seed", 0, "随机种子，0 表示随机")
	fullscreen = flag.Bool("fullscreen", false, "全屏启动")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源（dataFS 在 embed.go 中声明）
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		Seed:       *seed,
		Fullscreen: *fullscreen,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	gameApp.ApplyWindowSettings()

	// Start the game loop
	// Escape 返回 ebiten.Termination，RunGame 此时返回 nil
	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
