package feature

import (
	"fmt"
	"strconv"
	"strings"
)

// Encoder 是特征编码器接口。
// 所有编码都需要特征名才能正确编码（因为需要通过特征名查找对应的取值空间）。
type Encoder interface {
	// EncodeWithKey 编码单个值（指定特征名）
	EncodeWithKey(key string, value interface{}) map[string]float64
	// EncodeFeatures 编码特征字典（批量编码）
	EncodeFeatures(features map[string]interface{}) map[string]float64
}

// OneHotEncoder One-Hot 编码（独热编码）。
// 将类别特征转换为二进制向量：每个观测到的取值对应一列，
// 列名为 {key}_{value}（与 pandas get_dummies 的命名一致）。
//
// 取值空间由语料观测得出（见 CollectValues）；
// 未知取值编码为全 0 行，空值不占据独立的一列。
type OneHotEncoder struct {
	Categories map[string][]string // 每个特征名对应的取值列表
}

// NewOneHotEncoder 创建 One-Hot 编码器
func NewOneHotEncoder(categories map[string][]string) *OneHotEncoder {
	return &OneHotEncoder{
		Categories: categories,
	}
}

// EncodeWithKey 编码单个值（指定特征名）。
// 输出覆盖该特征的全部取值列（命中为 1，其余为 0）。
func (e *OneHotEncoder) EncodeWithKey(key string, value interface{}) map[string]float64 {
	encoded := make(map[string]float64)
	categories, ok := e.Categories[key]
	if !ok {
		return encoded
	}

	valStr := fmt.Sprintf("%v", value)
	for _, cat := range categories {
		featureName := key + "_" + cat
		if cat == valStr {
			encoded[featureName] = 1.0
		} else {
			encoded[featureName] = 0.0
		}
	}

	return encoded
}

// EncodeFeatures 编码特征字典
func (e *OneHotEncoder) EncodeFeatures(features map[string]interface{}) map[string]float64 {
	encoded := make(map[string]float64)
	for k, v := range features {
		encodedFeatures := e.EncodeWithKey(k, v)
		for ek, ev := range encodedFeatures {
			encoded[ek] = ev
		}
	}
	return encoded
}

// ParsePrice 把事件的原始价格字符串解析为非负数值。
// 规则（与外部应用的写入习惯对齐）：
//   - "Free"（大小写不敏感）或空串 => 0.0
//   - 允许携带货币符号（$ € £），解析前剥除
//   - 不可解析 => 0.0（按免费处理，绝不报错）
//   - 负数 => 0.0（价格不变量：始终可解析为非负数）
func ParsePrice(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" || strings.EqualFold(s, "free") {
		return 0.0
	}

	s = strings.NewReplacer("$", "", "€", "", "£", "", ",", "").Replace(s)

	price, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0.0
	}
	if price < 0 {
		return 0.0
	}
	return price
}
