package scenes

import (
	"fmt"
	"log"

	"github.com/decker502/washedaway/internal/audio"
	"github.com/decker502/washedaway/pkg/components"
	"github.com/decker502/washedaway/pkg/ecs"
	"github.com/decker502/washedaway/pkg/entities"
	"github.com/decker502/washedaway/pkg/game"
	"github.com/decker502/washedaway/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// MainScene 一局游戏
//
// 每次开始或重新开始都会创建新的 MainScene，布局随机生成。
// 每帧按顺序执行：背景滚动、泡泡漂移、倒计时、超时判定、方向切换、
// 玩家控制、位置积分、碰撞检测。本局结束后只保留补间动画和 SPACE 重新开始。
type MainScene struct {
	deps          *Deps
	entityManager *ecs.EntityManager
	round         *game.Round

	background *systems.BackgroundScrollSystem
	bubbles    *systems.BubbleDriftSystem
	hud        *systems.HUDSystem
	control    *systems.PlayerControlSystem
	movement   *systems.MovementSystem
	collision  *systems.CollisionSystem
	tweens     *systems.TweenSystem
	render     *systems.RenderSystem

	player ecs.EntityID
	target ecs.EntityID

	restartRequested bool
}

// NewMainScene 创建一局并生成全部实体
func NewMainScene(deps *Deps) (*MainScene, error) {
	cfg := deps.Config
	em := ecs.NewEntityManager()
	round := game.NewRound(cfg.Round)
	w, h := float64(cfg.Window.Width), float64(cfg.Window.Height)

	s := &MainScene{
		deps:          deps,
		entityManager: em,
		round:         round,
		background:    systems.NewBackgroundScrollSystem(em),
		bubbles:       systems.NewBubbleDriftSystem(em, w, h, cfg.Bubbles.BounceMargin),
		hud:           systems.NewHUDSystem(em, round, cfg.TimerBar),
		control:       systems.NewPlayerControlSystem(em, deps.Input, round, cfg.Player.Speed),
		movement:      systems.NewMovementSystem(em, w, h),
		tweens:        systems.NewTweenSystem(em),
		render:        systems.NewRenderSystem(em, deps.Resources),
	}

	s.collision = systems.NewCollisionSystem(em, round, systems.CollisionConfig{
		PushImpulse:       cfg.Player.PushImpulse,
		KnockbackDuration: cfg.Player.KnockbackDuration,
		WinDistanceFactor: cfg.Target.WinDistanceFactor,
	})
	s.collision.OnBubbleHit = s.onBubbleHit
	s.collision.OnTargetReached = func() { s.endRound(true) }

	if err := s.create(); err != nil {
		return nil, fmt.Errorf("failed to create main scene: %w", err)
	}
	return s, nil
}

// create 按绘制层级从下到上生成实体
func (s *MainScene) create() error {
	cfg := s.deps.Config
	em := s.entityManager
	res := s.deps.Resources

	if _, err := entities.NewBackground(em, res, cfg); err != nil {
		return err
	}

	entities.NewDirectionText(em, cfg, s.round.Direction)
	entities.NewTimerText(em, cfg, s.round.DisplaySeconds())
	if _, err := entities.NewTimerBar(em, res, cfg); err != nil {
		return err
	}

	var err error
	if s.player, err = entities.NewPlayer(em, res, cfg); err != nil {
		return err
	}
	if s.target, err = entities.NewTarget(em, res, cfg, s.deps.RNG); err != nil {
		return err
	}

	entities.SpawnBubbles(em, cfg, s.deps.RNG)

	tpos, _ := ecs.GetComponent[*components.PositionComponent](em, s.target)
	log.Printf("[MainScene] Round created: target at (%.0f, %.0f), %d bubbles", tpos.X, tpos.Y, cfg.Bubbles.Count)
	return nil
}

// OnEnter 实现 game.Enterer
func (s *MainScene) OnEnter() {
	s.deps.playSound(audio.SoundStart)
}

// Round 当前局的规则状态
func (s *MainScene) Round() *game.Round {
	return s.round
}

// EntityManager 当前局的实体管理器
func (s *MainScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// Player 玩家实体
func (s *MainScene) Player() ecs.EntityID {
	return s.player
}

// Target 目标实体
func (s *MainScene) Target() ecs.EntityID {
	return s.target
}

// Update 推进一帧
func (s *MainScene) Update(deltaTime float64) {
	defer s.entityManager.RemoveMarkedEntities()

	if s.round.Ended() {
		s.tweens.Update(deltaTime)
		if !s.restartRequested && s.deps.Input.IsJustPressed(ebiten.KeySpace) {
			log.Printf("[MainScene] Restart requested")
			if err := s.deps.Scenes.Load(game.SceneMain); err != nil {
				log.Printf("[MainScene] Warning: Restart failed: %v", err)
			} else {
				s.restartRequested = true
			}
		}
		return
	}

	s.background.Update(deltaTime)
	s.bubbles.Update(deltaTime)

	expired := s.round.Tick(deltaTime)
	s.hud.Update(deltaTime)
	if expired {
		s.endRound(false)
		return
	}

	if s.round.ShouldFlip() {
		direction := s.round.Flip()
		s.hud.Update(deltaTime)
		entities.NewDirectionFlash(s.entityManager, s.deps.Config, direction)
		s.deps.playSound(audio.SoundFlip)
	}

	s.control.Update(deltaTime)
	s.movement.Update(deltaTime)
	s.collision.Update(deltaTime)
	s.tweens.Update(deltaTime)
}

func (s *MainScene) onBubbleHit(_ ecs.EntityID, expired bool) {
	s.deps.playSound(audio.SoundPop)
	if expired {
		s.endRound(false)
	}
}

// endRound 结束本局，只有第一次调用生效
// 冻结玩家和目标，显示结果横幅，记录统计
func (s *MainScene) endRound(win bool) {
	if !s.round.End(win) {
		return
	}

	for _, id := range []ecs.EntityID{s.player, s.target} {
		if body, ok := ecs.GetComponent[*components.BodyComponent](s.entityManager, id); ok {
			body.Enabled = false
		}
		if vel, ok := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id); ok {
			vel.VX, vel.VY = 0, 0
		}
	}

	entities.NewEndBanners(s.entityManager, s.deps.Config, win)

	if win {
		s.deps.playSound(audio.SoundWin)
	} else {
		s.deps.playSound(audio.SoundLose)
	}

	if s.deps.Stats != nil {
		newBest, err := s.deps.Stats.RecordRound(s.round.Outcome, s.round.TimeLeft)
		if err != nil {
			log.Printf("[MainScene] Warning: Failed to save stats: %v", err)
		}
		if newBest {
			log.Printf("[MainScene] New best: %.2fs left", s.round.TimeLeft)
		}
	}
}

// Draw 绘制整个关卡
func (s *MainScene) Draw(screen *ebiten.Image) {
	screen.Fill(ClearColor)
	s.render.Draw(screen)
}
