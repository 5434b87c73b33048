package scenes

import (
	"log"

	"github.com/decker502/washedaway/pkg/game"
)

// NewSceneFactory 创建供 SceneManager 使用的场景工厂
// 创建失败时返回 nil，SceneManager 会保留当前场景
func NewSceneFactory(deps *Deps) game.SceneFactory {
	return func(name string) game.Scene {
		switch name {
		case game.SceneInstructions:
			return NewInstructionScene(deps)
		case game.SceneMain:
			scene, err := NewMainScene(deps)
			if err != nil {
				log.Printf("[SceneFactory] 错误: %v", err)
				return nil
			}
			return scene
		default:
			log.Printf("[SceneFactory] 未知场景: %s", name)
			return nil
		}
	}
}
