package components

// TweenComponent 透明度与缩放补间
// 由 TweenSystem 推进，完成后可选择销毁实体
type TweenComponent struct {
	Duration float64
	Elapsed  float64

	FromAlpha, ToAlpha float64
	FromScale, ToScale float64

	// Ease 缓动函数，nil 表示线性
	Ease func(t float64) float64

	DestroyOnComplete bool
}

// Progress 返回归一化进度 [0, 1]
func (t *TweenComponent) Progress() float64 {
	if t.Duration <= 0 {
		return 1
	}
	p := t.Elapsed / t.Duration
	if p > 1 {
		return 1
	}
	return p
}
