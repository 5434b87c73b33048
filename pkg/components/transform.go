package components

// PositionComponent 实体中心点的世界坐标（像素）
type PositionComponent struct {
	X, Y float64
}

// VelocityComponent 实体速度（像素/秒）
type VelocityComponent struct {
	VX, VY float64
}

// KnockbackComponent 泡泡撞击产生的短暂推力
// 叠加在玩家速度之上，Remaining 归零后移除
type KnockbackComponent struct {
	VX, VY    float64
	Remaining float64 // 剩余持续时间（秒）
}

// ScaleComponent 渲染缩放
type ScaleComponent struct {
	ScaleX float64
	ScaleY float64
}

// DepthComponent 绘制层级，数值大的后绘制（显示在上层）
type DepthComponent struct {
	Depth int
}
