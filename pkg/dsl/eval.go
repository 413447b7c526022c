package dsl

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"

	"github.com/rushteam/feedkit/core"
)

var (
	// celEnv 是全局的 CEL 环境，线程安全，可复用
	celEnv     *cel.Env
	celEnvOnce sync.Once
)

// initCELEnv 初始化 CEL 环境，定义变量
func initCELEnv() (*cel.Env, error) {
	env, err := cel.NewEnv(
		cel.Variable("item", cel.DynType),
		cel.Variable("label", cel.DynType),
		cel.Variable("user", cel.DynType),
	)
	return env, err
}

// getCELEnv 获取或创建 CEL 环境
func getCELEnv() (*cel.Env, error) {
	var err error
	celEnvOnce.Do(func() {
		celEnv, err = initCELEnv()
	})
	return celEnv, err
}

// Eval 是规则表达式解释器，使用 CEL (Common Expression Language) 实现。
// 用于 feed 排除规则：命中表达式的候选不进入用户 feed。
//
// 表达式语法（CEL 标准语法）：
//   - 数值：item.score > 1.5 / item.price == 0.0
//   - 类别：item.category == "Nightlife" && item.city != "Athens"
//   - 标签：label.predicted_label == "2"（标签值均为字符串）
//   - 用户：user.id == "abc123"
//
// 示例：
//   - `item.category == "Sports" && item.price > 0.8` → 过滤高价体育事件
//   - `label.rank_model != "lr"` → 只保留 LR 打分的候选
type Eval struct {
	item *core.Item
	rctx *core.RecommendContext
	env  *cel.Env
}

// NewEval 创建一个新的规则解释器。
func NewEval(item *core.Item, rctx *core.RecommendContext) *Eval {
	env, _ := getCELEnv()
	return &Eval{
		item: item,
		rctx: rctx,
		env:  env,
	}
}

// programCache 缓存编译后的 CEL 程序：同一条规则会对每个用户的
// 每个候选求值一次，重复编译的开销不可接受。
var programCache sync.Map // expr string -> cel.Program

// Evaluate 解析并执行规则表达式，返回布尔结果。
// 空表达式视为恒真。
func (e *Eval) Evaluate(expr string) (bool, error) {
	if expr == "" {
		return true, nil
	}
	if e.env == nil {
		return false, fmt.Errorf("cel env not initialized")
	}

	var prg cel.Program
	if cached, ok := programCache.Load(expr); ok {
		prg = cached.(cel.Program)
	} else {
		ast, issues := e.env.Compile(expr)
		if issues != nil && issues.Err() != nil {
			return false, fmt.Errorf("compile error: %v", issues.Err())
		}
		compiled, err := e.env.Program(ast)
		if err != nil {
			return false, fmt.Errorf("program error: %v", err)
		}
		programCache.Store(expr, compiled)
		prg = compiled
	}

	out, _, err := prg.Eval(e.buildInput())
	if err != nil {
		// 访问不存在的 key 时 CEL 会报错；规则应使用 label.key != null 判存在
		return false, fmt.Errorf("eval error: %v", err)
	}

	result, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("expression must return boolean, got %T", out.Value())
	}

	return result, nil
}

// buildInput 构建 CEL 表达式的输入数据
func (e *Eval) buildInput() map[string]interface{} {
	item := map[string]interface{}{
		"id":    e.item.ID,
		"score": e.item.Score,
	}
	// Meta 里的事件属性（category/city/price/title）提升为 item 的顶层字段
	for k, v := range e.item.Meta {
		item[k] = v
	}

	// label.predicted_label 直接取 value，便于写短规则
	labelAccessor := make(map[string]interface{})
	for k, v := range e.item.Labels {
		labelAccessor[k] = v.Value
	}

	user := map[string]interface{}{}
	if e.rctx != nil {
		user["id"] = e.rctx.UserID
	}

	return map[string]interface{}{
		"item":  item,
		"label": labelAccessor,
		"user":  user,
	}
}
