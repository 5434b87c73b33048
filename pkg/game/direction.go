package game

// Direction 洗衣机滚筒的旋转方向
// 只有顺时针阶段允许玩家移动
type Direction int

const (
	// Clockwise 顺时针（可以移动）
	Clockwise Direction = iota
	// Anticlockwise 逆时针（冻结）
	Anticlockwise
)

// String 返回 HUD 上显示的大写方向名
func (d Direction) String() string {
	if d == Anticlockwise {
		return "ANTICLOCKWISE"
	}
	return "CLOCKWISE"
}

// Toggle 返回相反方向
func (d Direction) Toggle() Direction {
	if d == Clockwise {
		return Anticlockwise
	}
	return Clockwise
}
