package core

// Outcome 标记批处理中单个用户的处理结果。
type Outcome string

const (
	// OutcomeTrained 模型训练完成且 feed 已写回
	OutcomeTrained Outcome = "trained"

	// OutcomeSkippedNoData 用户没有训练样本（零交互或单一标签类别），本次不动其 feed
	OutcomeSkippedNoData Outcome = "skipped_no_data"

	// OutcomeNotFound 写回时用户文档已不存在
	OutcomeNotFound Outcome = "not_found"

	// OutcomeFailed 训练/打分过程中出现其他错误（仅影响该用户，批次继续）
	OutcomeFailed Outcome = "failed"
)
