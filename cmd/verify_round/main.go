// verify_round 无窗口运行多局游戏，用直线走向目标的机器人验证关卡参数
//
// 用法:
//
//	go run ./cmd/verify_round --rounds 200 --seed 1
//	go run ./cmd/verify_round --config data/game.yaml --verbose
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"

	"github.com/decker502/washedaway/pkg/app"
	"github.com/decker502/washedaway/pkg/components"
	"github.com/decker502/washedaway/pkg/ecs"
	"github.com/decker502/washedaway/pkg/game"
	"github.com/decker502/washedaway/pkg/scenes"
	"github.com/decker502/washedaway/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	configPath = flag.String("config", "", "关卡参数文件（默认使用内置默认值）")
	rounds     = flag.Int("rounds", 100, "模拟局数")
	seed       = flag.Uint64("seed", 1, "随机种子")
)

// deadZone 机器人认为已经对齐的距离（像素）
const deadZone = 4.0

// seekerBot 按住方向键直线走向目标
type seekerBot struct {
	scene *scenes.MainScene
}

func (b *seekerBot) delta() (dx, dy float64) {
	em := b.scene.EntityManager()
	ppos, ok1 := ecs.GetComponent[*components.PositionComponent](em, b.scene.Player())
	tpos, ok2 := ecs.GetComponent[*components.PositionComponent](em, b.scene.Target())
	if !ok1 || !ok2 {
		return 0, 0
	}
	return tpos.X - ppos.X, tpos.Y - ppos.Y
}

// IsPressed 实现 utils.KeyInput
func (b *seekerBot) IsPressed(key ebiten.Key) bool {
	dx, dy := b.delta()
	switch key {
	case ebiten.KeyArrowLeft:
		return dx < -deadZone
	case ebiten.KeyArrowRight:
		return dx > deadZone
	case ebiten.KeyArrowUp:
		return dy < -deadZone
	case ebiten.KeyArrowDown:
		return dy > deadZone
	}
	return false
}

// IsJustPressed 实现 utils.KeyInput，机器人从不重新开始
func (b *seekerBot) IsJustPressed(ebiten.Key) bool {
	return false
}

// nopLoader 忽略场景切换
type nopLoader struct{}

func (nopLoader) Load(string) error { return nil }

type roundResult struct {
	outcome  game.Outcome
	timeLeft float64
	hits     int
	frames   int
}

func main() {
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	cfg, err := app.LoadGameConfig(*configPath, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载关卡参数失败: %v\n", err)
		os.Exit(1)
	}

	rng := utils.NewRand(*seed)
	rm := game.NewResourceManager(rng)
	if err := rm.LoadFonts(); err != nil {
		fmt.Fprintf(os.Stderr, "加载字体失败: %v\n", err)
		os.Exit(1)
	}
	rm.LoadTextures()

	stats := game.NewStatsManager(nil)
	bot := &seekerBot{}
	deps := &scenes.Deps{
		Config:    cfg,
		Resources: rm,
		Scenes:    nopLoader{},
		Input:     bot,
		Stats:     stats,
		RNG:       rng,
	}

	// 留出余量，保证每局都能结束
	maxFrames := int(math.Ceil(cfg.Round.TotalTime*60)) + 60

	results := make([]roundResult, 0, *rounds)
	for i := 0; i < *rounds; i++ {
		scene, err := scenes.NewMainScene(deps)
		if err != nil {
			fmt.Fprintf(os.Stderr, "创建第 %d 局失败: %v\n", i+1, err)
			os.Exit(1)
		}
		bot.scene = scene

		frames := 0
		for !scene.Round().Ended() && frames < maxFrames {
			scene.Update(1.0 / 60.0)
			frames++
		}

		r := scene.Round()
		results = append(results, roundResult{outcome: r.Outcome, timeLeft: r.TimeLeft, hits: r.Hits, frames: frames})
		log.Printf("[verify_round] Round %d: %s, %.2fs left, %d hits", i+1, r.Outcome, r.TimeLeft, r.Hits)
	}

	printSummary(results, stats.Stats())
}

func printSummary(results []roundResult, stats game.PlayerStats) {
	var wins, pending int
	var winTime, hits float64
	for _, r := range results {
		switch r.outcome {
		case game.OutcomeWin:
			wins++
			winTime += r.timeLeft
		case game.OutcomePending:
			pending++
		}
		hits += float64(r.hits)
	}

	n := len(results)
	fmt.Printf("=== verify_round: %d rounds ===\n", n)
	if n == 0 {
		return
	}
	fmt.Printf("Wins:       %d (%.1f%%)\n", wins, 100*float64(wins)/float64(n))
	fmt.Printf("Time ups:   %d\n", n-wins-pending)
	if pending > 0 {
		fmt.Printf("Unfinished: %d\n", pending)
	}
	if wins > 0 {
		fmt.Printf("Avg time left on win: %.2fs\n", winTime/float64(wins))
	}
	fmt.Printf("Avg bubble hits: %.2f\n", hits/float64(n))
	fmt.Printf("Best time left:  %.2fs\n", stats.BestTimeLeft)
}
