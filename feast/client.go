package feast

import "context"

// Client 是 Feast Feature Store 的客户端接口。
//
// Feast 提供在线特征存储（Online Store）与 Feature Server，
// feedkit 用它在语料编码阶段补充事件级的线上统计特征
// （如实时曝光、点击率），参与统一的 Min-Max 缩放。
//
// 实现：
//   - GrpcClient（官方 SDK，grpc_client.go）
//   - 也可自行实现此接口接入其他特征服务
type Client interface {
	// GetOnlineFeatures 获取在线特征（按实体行批量取）
	GetOnlineFeatures(ctx context.Context, req *GetOnlineFeaturesRequest) (*GetOnlineFeaturesResponse, error)

	// Close 关闭客户端连接
	Close() error
}

// GetOnlineFeaturesRequest 获取在线特征请求
type GetOnlineFeaturesRequest struct {
	// Features 特征名称列表，例如 ["event_stats:exposure", "event_stats:ctr"]
	Features []string

	// EntityRows 实体行，例如 [{"event_id": "abc123"}]
	EntityRows []map[string]interface{}

	// Project 项目名称（可选，缺省用客户端配置的项目）
	Project string
}

// GetOnlineFeaturesResponse 获取在线特征响应
type GetOnlineFeaturesResponse struct {
	// FeatureVectors 特征向量列表，每个元素对应一个实体行
	FeatureVectors []FeatureVector
}

// FeatureVector 特征向量
type FeatureVector struct {
	// Values 特征值，key 为特征名称
	Values map[string]interface{}

	// EntityRow 对应的实体行
	EntityRow map[string]interface{}
}
