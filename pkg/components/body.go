package components

// BodyComponent 物理体开关
// 结束时关闭玩家和目标的物理体，之后不再移动也不参与碰撞
type BodyComponent struct {
	Enabled bool
	// CollideWorldBounds 为 true 时位置被限制在屏幕内
	CollideWorldBounds bool
	// Immovable 为 true 时不受速度和推力影响
	Immovable bool
}

// CollisionComponent 轴对齐碰撞盒，中心与实体位置对齐
type CollisionComponent struct {
	Width  float64
	Height float64
}

// CircleComponent 圆形实体（泡泡）
type CircleComponent struct {
	Radius float64
}
