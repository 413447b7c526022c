package model

// Classifier 是偏好模型的最小抽象：用 (特征 -> 整数标签) 样本拟合，
// 再对新样本预测标签。标签直接使用交互权重的带符号整数值，
// 多个不同权重值即多个类别（不提前二值化）。
//
// 每个用户一个独立、用完即弃的实例；实例之间不共享状态。
type Classifier interface {
	Name() string

	// Fit 在训练样本上拟合模型。
	// 训练集中不足两个不同标签类别时无法定义决策边界，
	// 返回 core.ErrNoTrainingData，调用方按"该用户跳过"处理。
	Fit(rows []map[string]float64, labels []int) error

	// Predict 预测单个样本的标签（必须在 Fit 成功之后调用）
	Predict(features map[string]float64) int
}
