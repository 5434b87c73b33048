// Package scenes 实现游戏的两个场景：说明页和关卡
package scenes

import (
	"math/rand/v2"

	"github.com/decker502/washedaway/internal/audio"
	"github.com/decker502/washedaway/pkg/config"
	"github.com/decker502/washedaway/pkg/entities"
	"github.com/decker502/washedaway/pkg/game"
	"github.com/decker502/washedaway/pkg/systems"
	"github.com/decker502/washedaway/pkg/utils"
)

// Scene is a type alias for game.Scene.
type Scene = game.Scene

// ClearColor 画面底色 #3a8fd8
var ClearColor = utils.HexColor(0x3a8fd8)

// Resources 场景需要的纹理和字体，通常是 game.ResourceManager
type Resources interface {
	entities.ImageSource
	systems.FontProvider
}

// SoundPlayer 播放合成音效，通常是 game.AudioManager
type SoundPlayer interface {
	PlaySound(id audio.SoundID) bool
}

// SceneLoader 按名称切换场景，通常是 game.SceneManager
// 返回错误表示场景没有切换
type SceneLoader interface {
	Load(name string) error
}

// Deps 场景共享的依赖
type Deps struct {
	Config    *config.GameConfig
	Resources Resources
	Scenes    SceneLoader
	Input     utils.KeyInput
	Sounds    SoundPlayer
	Settings  *game.SettingsManager
	Stats     *game.StatsManager
	// RNG 关卡布局使用的随机数生成器，在多局之间共享
	RNG *rand.Rand
}

func (d *Deps) playSound(id audio.SoundID) {
	if d.Sounds != nil {
		d.Sounds.PlaySound(id)
	}
}
