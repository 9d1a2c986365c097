package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zinando/smartapplicant-backend/internal/config"
)

// defaultTestConfig 加载默认配置（指向不存在的文件以跳过本地config.yaml）
func defaultTestConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err, "加载默认配置失败")
	return cfg
}

// TestNewParserLoadsConfiguredSkillData 配置技能数据目录后，
// 解析器使用目录中的词表做全文技能扫描
func TestNewParserLoadsConfiguredSkillData(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "ts.json"), []byte(`["Elixir", "Phoenix"]`), 0644)
	require.NoError(t, err, "写入技能数据文件失败")

	cfg := defaultTestConfig(t)
	cfg.Parser.SkillDataDir = dir

	text := `jane doe
jane@gmail.com
Work Experience
Built services with Python, Elixir and Phoenix daily
Skills
• Teamwork`

	result := newParser(cfg).Parse(text)

	assert.Contains(t, result.Skills, "Elixir", "目录词表中的技能应被全文扫描发现")
	assert.Contains(t, result.Skills, "Phoenix")
	assert.NotContains(t, result.Skills, "Python", "内置词表应被目录词表整体替换")
}

// TestNewParserWithoutSkillDataDir 未配置数据目录时仍使用内置词表
func TestNewParserWithoutSkillDataDir(t *testing.T) {
	cfg := defaultTestConfig(t)

	text := `jane doe
jane@gmail.com
Work Experience
Built services with Python daily
Skills
• Teamwork`

	result := newParser(cfg).Parse(text)

	assert.Contains(t, result.Skills, "Python", "内置词表技能应被全文扫描发现")
}

// TestBuildMatchReportAttachesSuggestions 匹配报告始终附带改进建议，
// 未配置文本生成器时回退到内置建议列表
func TestBuildMatchReportAttachesSuggestions(t *testing.T) {
	cfg := defaultTestConfig(t)

	resumeText := `Jane Doe
jane@gmail.com
Work Experience
Backend Engineer, Acme Ltd Jan 2018 - Dec 2021
Skills
Programming: Python, SQL`
	jdText := `Requirements
Skills
Programming: Python, SQL`

	report := buildMatchReport(cfg, resumeText, jdText, "Software Engineer")

	require.NotNil(t, report)
	assert.NotEmpty(t, report.ReportID)
	assert.NotEmpty(t, report.Suggestions, "匹配报告应始终附带改进建议")
}
