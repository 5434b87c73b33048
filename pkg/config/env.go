package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix 环境变量覆盖前缀，例如 WASHEDAWAY_TOTAL_TIME=45
const EnvPrefix = "WASHEDAWAY_"

// ApplyEnv 用环境变量覆盖配置字段，未设置的变量保留原值
//
// environ 为 nil 时读取进程环境变量，测试中可以传入固定的映射。
func ApplyEnv(cfg *GameConfig, environ map[string]string) error {
	opts := env.Options{Prefix: EnvPrefix}
	if environ != nil {
		opts.Environment = environ
	}

	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid game config after env overrides: %w", err)
	}
	return nil
}
