package utils

import "math/rand/v2"

// NewRand 创建随机数生成器，seed 为 0 时使用随机种子
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// IntBetween 返回 [min, max] 闭区间内的整数
func IntBetween(rng *rand.Rand, min, max int) int {
	if max <= min {
		return min
	}
	return min + rng.IntN(max-min+1)
}

// FloatBetween 返回 [min, max) 区间内的浮点数
func FloatBetween(rng *rand.Rand, min, max float64) float64 {
	return min + rng.Float64()*(max-min)
}
