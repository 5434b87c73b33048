package game

import (
	"fmt"
	"log"

	"github.com/decker502/washedaway/pkg/utils"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// AppName gdata 数据目录名
const AppName = "washedaway"

// OpenStorage 打开跨平台数据目录
//
// 失败时返回错误，调用方可以传 nil 给各个管理器进入降级模式（仅内存）。
func OpenStorage(appName string) (*gdata.Manager, error) {
	if err := utils.EnsureStorageDir(); err != nil {
		return nil, fmt.Errorf("failed to prepare storage dir: %w", err)
	}

	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("failed to open gdata storage: %w", err)
	}
	log.Printf("[Storage] Opened app data storage %q", appName)
	return manager, nil
}

// yamlObject 以 YAML 格式存放在 gdata 中的一个对象属性
type yamlObject struct {
	manager  *gdata.Manager // 可为 nil
	object   string
	property string
}

// load 读取并反序列化，对象不存在时返回 found=false
func (o yamlObject) load(v any) (found bool, err error) {
	if o.manager == nil || !o.manager.ObjectPropExists(o.object, o.property) {
		return false, nil
	}

	data, err := o.manager.LoadObjectProp(o.object, o.property)
	if err != nil {
		return true, fmt.Errorf("failed to load %s/%s: %w", o.object, o.property, err)
	}

	if err := yaml.Unmarshal(data, v); err != nil {
		return true, fmt.Errorf("failed to unmarshal %s/%s: %w", o.object, o.property, err)
	}
	return true, nil
}

// save 序列化并写入，manager 为 nil 时什么也不做
func (o yamlObject) save(v any) error {
	if o.manager == nil {
		return nil
	}

	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s/%s: %w", o.object, o.property, err)
	}

	if err := o.manager.SaveObjectProp(o.object, o.property, data); err != nil {
		return fmt.Errorf("failed to save %s/%s: %w", o.object, o.property, err)
	}
	return nil
}
