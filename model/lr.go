package model

import (
	"math"
	"sort"

	"github.com/rushteam/feedkit/core"
)

// 训练超参数默认值。样本规模是"单个用户的交互数"量级（几十条），
// 全量批梯度下降足够，不需要随机化。
const (
	DefaultLearningRate = 0.5
	DefaultEpochs       = 500
)

// LogisticRegression 实现了多项逻辑回归 (Multinomial Logistic Regression)。
//
// 预测原理：
//  1. 对每个类别线性加权求和: z_c = Bias_c + sum(W_c_i * Feature_i)
//  2. Softmax 归一化: P_c = exp(z_c) / sum(exp(z_k))
//  3. 取概率最大的类别作为预测标签
//
// 训练为确定性的全量批梯度下降：零初始化、固定迭代次数、
// 类别与特征都按排序后的固定顺序遍历。同样的训练集两次 Fit
// 得到逐位一致的参数，这是整条管线幂等性的前提。
type LogisticRegression struct {
	// LearningRate 学习率，<=0 时取 DefaultLearningRate
	LearningRate float64

	// Epochs 迭代轮数，<=0 时取 DefaultEpochs
	Epochs int

	// L2 正则系数，0 表示不做正则
	L2 float64

	keys    []string    // 特征列（排序后固定）
	classes []int       // 类别标签（排序后固定）
	weights [][]float64 // weights[class][feature]
	bias    []float64   // bias[class]
}

func (m *LogisticRegression) Name() string { return "lr" }

// Fit 在训练样本上拟合模型（实现 Classifier 接口）。
func (m *LogisticRegression) Fit(rows []map[string]float64, labels []int) error {
	if len(rows) == 0 || len(rows) != len(labels) {
		return core.ErrNoTrainingData
	}

	m.classes = distinctSorted(labels)
	if len(m.classes) < 2 {
		// 单一类别拟合不出决策边界，显式降级为"无训练数据"
		return core.ErrNoTrainingData
	}
	m.keys = featureKeys(rows)

	classIndex := make(map[int]int, len(m.classes))
	for i, c := range m.classes {
		classIndex[c] = i
	}

	n := len(rows)
	numClasses := len(m.classes)
	numFeatures := len(m.keys)

	x := make([][]float64, n)
	for i, row := range rows {
		x[i] = m.vectorize(row)
	}
	y := make([]int, n)
	for i, label := range labels {
		y[i] = classIndex[label]
	}

	m.weights = make([][]float64, numClasses)
	for c := range m.weights {
		m.weights[c] = make([]float64, numFeatures)
	}
	m.bias = make([]float64, numClasses)

	lr := m.LearningRate
	if lr <= 0 {
		lr = DefaultLearningRate
	}
	epochs := m.Epochs
	if epochs <= 0 {
		epochs = DefaultEpochs
	}

	gradW := make([][]float64, numClasses)
	for c := range gradW {
		gradW[c] = make([]float64, numFeatures)
	}
	gradB := make([]float64, numClasses)

	for epoch := 0; epoch < epochs; epoch++ {
		for c := 0; c < numClasses; c++ {
			for d := 0; d < numFeatures; d++ {
				gradW[c][d] = 0
			}
			gradB[c] = 0
		}

		for i := 0; i < n; i++ {
			probs := m.softmax(x[i])
			for c := 0; c < numClasses; c++ {
				diff := probs[c]
				if c == y[i] {
					diff -= 1
				}
				for d := 0; d < numFeatures; d++ {
					gradW[c][d] += diff * x[i][d]
				}
				gradB[c] += diff
			}
		}

		inv := 1.0 / float64(n)
		for c := 0; c < numClasses; c++ {
			for d := 0; d < numFeatures; d++ {
				m.weights[c][d] -= lr * (gradW[c][d]*inv + m.L2*m.weights[c][d])
			}
			m.bias[c] -= lr * gradB[c] * inv
		}
	}

	return nil
}

// Predict 预测单个样本的标签（实现 Classifier 接口）。
// 未出现在训练列模式中的特征被忽略，缺失特征取 0。
func (m *LogisticRegression) Predict(features map[string]float64) int {
	probs := m.softmax(m.vectorize(features))
	best := 0
	for c := 1; c < len(probs); c++ {
		if probs[c] > probs[best] {
			best = c
		}
	}
	return m.classes[best]
}

// vectorize 按固定列顺序把特征 map 转为稠密向量。
func (m *LogisticRegression) vectorize(features map[string]float64) []float64 {
	x := make([]float64, len(m.keys))
	for d, k := range m.keys {
		x[d] = features[k]
	}
	return x
}

// softmax 计算各类别概率（减最大值保证数值稳定）。
func (m *LogisticRegression) softmax(x []float64) []float64 {
	z := make([]float64, len(m.classes))
	for c := range m.classes {
		score := m.bias[c]
		for d, v := range x {
			score += m.weights[c][d] * v
		}
		z[c] = score
	}

	maxZ := z[0]
	for _, v := range z[1:] {
		if v > maxZ {
			maxZ = v
		}
	}

	var sum float64
	for c := range z {
		z[c] = math.Exp(z[c] - maxZ)
		sum += z[c]
	}
	for c := range z {
		z[c] /= sum
	}
	return z
}

func distinctSorted(labels []int) []int {
	seen := make(map[int]struct{}, len(labels))
	for _, l := range labels {
		seen[l] = struct{}{}
	}
	out := make([]int, 0, len(seen))
	for l := range seen {
		out = append(out, l)
	}
	sort.Ints(out)
	return out
}

func featureKeys(rows []map[string]float64) []string {
	seen := make(map[string]struct{})
	for _, row := range rows {
		for k := range row {
			seen[k] = struct{}{}
		}
	}
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// 确保 LogisticRegression 实现了 Classifier 接口
var _ Classifier = (*LogisticRegression)(nil)
