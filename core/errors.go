package core

// DomainError 是领域层的统一错误类型。
//
// 设计原则：
//   - 所有领域层错误都使用此类型
//   - 提供错误代码（Code）和消息（Message）
//   - 支持错误检查函数（IsXXX）
//
// 使用场景：
//   - Store 错误：NOT_FOUND
//   - Model 错误：NO_TRAINING_DATA
//   - Feature 错误：INVALID_INPUT
type DomainError struct {
	Code    string // 错误代码（如 "NOT_FOUND", "NO_TRAINING_DATA"）
	Message string // 错误消息
	Module  string // 模块名称（如 "store", "model", "feature"）
}

func (e *DomainError) Error() string {
	return e.Message
}

// IsDomainError 检查错误是否为 DomainError 类型
func IsDomainError(err error) bool {
	if err == nil {
		return false
	}
	_, ok := err.(*DomainError)
	return ok
}

// GetDomainError 获取 DomainError，如果不是则返回 nil
func GetDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	if domainErr, ok := err.(*DomainError); ok {
		return domainErr
	}
	return nil
}

// NewDomainError 创建新的领域错误
func NewDomainError(module, code, message string) *DomainError {
	return &DomainError{
		Module:  module,
		Code:    code,
		Message: message,
	}
}

// 错误代码常量
const (
	ErrorCodeNotFound       = "NOT_FOUND"        // 资源不存在
	ErrorCodeNoTrainingData = "NO_TRAINING_DATA" // 没有可用的训练样本
	ErrorCodeInvalidInput   = "INVALID_INPUT"    // 输入无效
	ErrorCodeInternalError  = "INTERNAL_ERROR"   // 内部错误
)

// 模块名称常量
const (
	ModuleStore   = "store"   // 存储模块
	ModuleFeature = "feature" // 特征模块
	ModuleModel   = "model"   // 模型模块
	ModuleFeed    = "feed"    // Feed 写入模块
)

// 通用领域错误定义
var (
	// ErrUserNotFound 表示用户文档不存在（读取与写回之间可能被删除）
	ErrUserNotFound = NewDomainError(ModuleStore, ErrorCodeNotFound, "store: user not found")

	// ErrEventNotFound 表示事件文档不存在
	ErrEventNotFound = NewDomainError(ModuleStore, ErrorCodeNotFound, "store: event not found")

	// ErrNoTrainingData 表示该用户没有足够的训练样本（零交互或单一类别）
	ErrNoTrainingData = NewDomainError(ModuleModel, ErrorCodeNoTrainingData, "model: no training data")
)

// IsNotFound 检查错误是否为 NOT_FOUND
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	if domainErr := GetDomainError(err); domainErr != nil {
		return domainErr.Code == ErrorCodeNotFound
	}
	return false
}

// IsNoTrainingData 检查错误是否为 NO_TRAINING_DATA
func IsNoTrainingData(err error) bool {
	if err == nil {
		return false
	}
	if domainErr := GetDomainError(err); domainErr != nil {
		return domainErr.Code == ErrorCodeNoTrainingData
	}
	return false
}
