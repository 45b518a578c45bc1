package llm

import (
	"encoding/json"

	"github.com/kaptinlin/jsonrepair"
)

// ParseJSON 将回答文本解析到 v，首次失败时尝试修复后重解
// 模型偶尔产出缺引号或带尾随逗号的 JSON，修复后大多可用
func ParseJSON(s string, v interface{}) bool {
	if err := json.Unmarshal([]byte(s), v); err == nil {
		return true
	}

	repaired, err := jsonrepair.JSONRepair(s)
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(repaired), v) == nil
}
