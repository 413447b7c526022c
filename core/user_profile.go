package core

// UserProfile 是用户文档的领域模型：四个交互列表（liked / disliked /
// bookmarked / owned）加一个输出列表（Feed，每次运行整体覆盖）。
//
// 交互列表是无序集合语义：权重聚合与列表顺序无关。
// nil 列表与空列表等价（非列表输入在反序列化阶段落为 nil）。
type UserProfile struct {
	ID         string   `json:"id"`
	Username   string   `json:"username,omitempty"`
	Email      string   `json:"email,omitempty"`
	Liked      []string `json:"likedEvents"`
	Disliked   []string `json:"dislikedEvents"`
	Bookmarked []string `json:"bookmarkedEvents"`
	Owned      []string `json:"myEvents"`
	Feed       []string `json:"homeEvents"`
}

func NewUserProfile(id string) *UserProfile {
	return &UserProfile{ID: id}
}

// HasInteractions 判断用户是否有任何交互记录。
// 四个列表全空的用户没有训练样本，上游应整体跳过（outcome = skipped）。
func (u *UserProfile) HasInteractions() bool {
	return len(u.Liked)+len(u.Disliked)+len(u.Bookmarked)+len(u.Owned) > 0
}

// InteractionWeights 把四个交互列表折叠为 event ID -> 带符号整数权重：
//   - liked / bookmarked / owned 每次出现 +1
//   - disliked 每次出现 -1
//
// 同一事件出现在多个列表中时权重累加（例如 liked+bookmarked => +2）。
// 返回的 map 包含所有被引用过的事件 ID，权重恰好抵消为 0 的键也保留：
// 零权重键不参与训练，但它标记"用户已接触过该事件"，
// 因此也不进入候选集（候选集 = 语料 - 所有被引用事件）。
func (u *UserProfile) InteractionWeights() map[string]int {
	weights := make(map[string]int)
	for _, id := range u.Liked {
		weights[id]++
	}
	for _, id := range u.Bookmarked {
		weights[id]++
	}
	for _, id := range u.Owned {
		weights[id]++
	}
	for _, id := range u.Disliked {
		weights[id]--
	}
	return weights
}

// DislikedSet 返回 disliked 列表的集合形态，供过滤器做 O(1) 查找。
func (u *UserProfile) DislikedSet() map[string]struct{} {
	set := make(map[string]struct{}, len(u.Disliked))
	for _, id := range u.Disliked {
		set[id] = struct{}{}
	}
	return set
}
