package feature

// Normalizer 是特征归一化/标准化接口。
type Normalizer interface {
	// Normalize 归一化特征（返回新 map，不修改输入）
	Normalize(features map[string]float64) map[string]float64
	// NormalizeValueWithKey 归一化单个值（指定特征名）
	NormalizeValueWithKey(key string, value float64) float64
}

// MinMaxNormalizer Min-Max 归一化。
// 公式: x' = (x - min) / (max - min)
// 特点: 将值缩放到 [0, 1] 区间。
//
// 参数在整个语料上拟合一次（FitMinMaxNormalizer），所有用户共用同一份
// 缩放参数，保证任意两个用户的候选打分使用逐位一致的特征列。
// 常数列（max == min）不做特殊处理：归一化原样返回，仍是常数。
type MinMaxNormalizer struct {
	Min map[string]float64 // 特征最小值
	Max map[string]float64 // 特征最大值
}

// NewMinMaxNormalizer 创建 Min-Max 归一化器
func NewMinMaxNormalizer(min, max map[string]float64) *MinMaxNormalizer {
	return &MinMaxNormalizer{
		Min: min,
		Max: max,
	}
}

// FitMinMaxNormalizer 在整个语料上拟合缩放参数：
// 对每个特征列取所有行的最小/最大值。所有数值列（含价格与 0/1 独热列）
// 一并拟合，独热列在 min-max 下通常保持不变。
func FitMinMaxNormalizer(rows []map[string]float64) *MinMaxNormalizer {
	min := make(map[string]float64)
	max := make(map[string]float64)

	for _, row := range rows {
		for k, v := range row {
			lo, seen := min[k]
			if !seen {
				min[k] = v
				max[k] = v
				continue
			}
			if v < lo {
				min[k] = v
			}
			if v > max[k] {
				max[k] = v
			}
		}
	}

	return NewMinMaxNormalizer(min, max)
}

// Normalize 归一化特征
func (n *MinMaxNormalizer) Normalize(features map[string]float64) map[string]float64 {
	normalized := make(map[string]float64, len(features))
	for k, v := range features {
		normalized[k] = n.NormalizeValueWithKey(k, v)
	}
	return normalized
}

// NormalizeValueWithKey 归一化单个值（指定特征名）
func (n *MinMaxNormalizer) NormalizeValueWithKey(key string, value float64) float64 {
	min := n.Min[key]
	max := n.Max[key]
	rangeVal := max - min
	if rangeVal > 0 {
		return (value - min) / rangeVal
	}
	return value
}

var _ Normalizer = (*MinMaxNormalizer)(nil)
