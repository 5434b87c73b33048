package game

import (
	"errors"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// 场景名称
const (
	SceneInstructions = "instructions"
	SceneMain         = "main"
)

// ErrNoSceneFactory 在设置工厂之前调用 Load 时返回
var ErrNoSceneFactory = errors.New("scene factory not set")

// SceneFactory 场景工厂函数类型
// 根据名称创建全新的场景实例，避免 game 包依赖 scenes 包
type SceneFactory func(name string) Scene

// SceneManager manages which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
	currentName  string
	sceneFactory SceneFactory
	// pending 在下一次 Update 开始时生效，避免在场景自己的 Update 中途替换自己
	pending     Scene
	pendingName string
}

// NewSceneManager creates a SceneManager with no active scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo changes the active scene immediately.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.switchNow(scene, "")
}

func (sm *SceneManager) switchNow(scene Scene, name string) {
	sm.currentScene = scene
	sm.currentName = name
	if enterer, ok := scene.(Enterer); ok {
		enterer.OnEnter()
	}
}

// GetCurrentScene 返回当前活动的场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// CurrentName 返回通过 Load 进入的场景名称
func (sm *SceneManager) CurrentName() string {
	return sm.currentName
}

// Load 通过工厂创建指定名称的新场景，在下一帧切换
// 重新开始一局也走这里（创建全新的场景实例）
// 创建失败时返回错误，当前场景保持不变
func (sm *SceneManager) Load(name string) error {
	log.Printf("[SceneManager] 加载场景: %s", name)

	if sm.sceneFactory == nil {
		log.Printf("[SceneManager] 错误: SceneFactory 未设置")
		return ErrNoSceneFactory
	}

	newScene := sm.sceneFactory(name)
	if newScene == nil {
		log.Printf("[SceneManager] 错误: 无法创建场景: %s", name)
		return fmt.Errorf("failed to create scene %q", name)
	}

	sm.pending = newScene
	sm.pendingName = name
	return nil
}

// Update updates the currently active scene.
// deltaTime is the time elapsed since the last update in seconds.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.pending != nil {
		next, name := sm.pending, sm.pendingName
		sm.pending, sm.pendingName = nil, ""
		sm.switchNow(next, name)
		log.Printf("[SceneManager] 成功切换到场景: %s", name)
	}

	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
