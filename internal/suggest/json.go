package suggest

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/zinando/smartapplicant-backend/internal/types"
)

// decodeMatchReport 从模型原始响应中提取并解析匹配报告。
// 模型偶尔会包裹markdown代码块或在字符串内混入未转义引号，这里统一修复。
func decodeMatchReport(raw string) (*types.MatchReport, error) {
	cleaned := strings.ReplaceAll(raw, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")

	jsonStr := extractJSONObject(cleaned)
	if jsonStr == "" {
		return nil, fmt.Errorf("响应中未找到JSON对象")
	}

	var report types.MatchReport
	if err := json.Unmarshal([]byte(jsonStr), &report); err != nil {
		// 先尝试修复字符串内部的非法引号再解析一次
		if retryErr := json.Unmarshal([]byte(sanitizeJSON(jsonStr)), &report); retryErr != nil {
			return nil, fmt.Errorf("解析匹配报告JSON失败: %w", err)
		}
	}
	return &report, nil
}

// extractJSONObject 返回文本中第一个配平的花括号片段
func extractJSONObject(text string) string {
	start := strings.Index(text, "{")
	if start == -1 {
		return ""
	}
	level := 0
	for i := start; i < len(text); i++ {
		if text[i] == '{' {
			level++
		} else if text[i] == '}' {
			level--
			if level == 0 {
				return text[start : i+1]
			}
		}
	}
	return ""
}

// sanitizeJSON 会遍历 src，将任何位于字符串字面量内部但并非真正结束的双引号写成 \"，
// 以保证整个 JSON 能够正常反序列化。
// 它通过检查下一个非空白字符是否为 :, ], }, 或 , 来判断该 " 是否为字符串的结束。
func sanitizeJSON(src string) string {
	var b strings.Builder
	inStr := false
	escaped := false

	for i := 0; i < len(src); i++ {
		c := src[i]

		if c == '"' && !escaped {
			if !inStr {
				inStr = true
				b.WriteByte(c)
			} else {
				j := i + 1
				for j < len(src) && (src[j] == ' ' || src[j] == '\t' || src[j] == '\n' || src[j] == '\r') {
					j++
				}
				if j < len(src) && (src[j] == ':' || src[j] == ',' || src[j] == ']' || src[j] == '}') {
					inStr = false
					b.WriteByte(c)
				} else {
					b.WriteString("\\\"")
				}
			}
			escaped = false

		} else if c == '\\' && !escaped {
			escaped = true
			b.WriteByte(c)

		} else {
			b.WriteByte(c)
			escaped = false
		}
	}

	return b.String()
}
