package components

// PlayerComponent 标记玩家控制的袜子
type PlayerComponent struct{}

// TargetComponent 标记要寻找的另一只袜子
type TargetComponent struct{}

// BubbleComponent 漂浮泡泡
// DriftX/DriftY 是泡泡自身的漂移速度，每帧写回 VelocityComponent，碰到边缘时反向
type BubbleComponent struct {
	DriftX float64
	DriftY float64
}
