package vocab

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefaultVocabulary 内置词汇表各组成部分齐备且统一为小写
func TestDefaultVocabulary(t *testing.T) {
	v := Default()
	require.NotNil(t, v)

	assert.Contains(t, v.EducationTitles, "education")
	assert.Contains(t, v.ExperienceTitles, "work experience")
	assert.Contains(t, v.SkillsTitles, "technical skills")
	assert.Contains(t, v.CertificationTitles, "certifications")
	assert.Contains(t, v.CareerObjectiveTitles, "summary")

	assert.Contains(t, v.DegreeKeywords, "B.Sc")
	assert.Contains(t, v.InstitutionKeywords, "University")

	assert.Equal(t, 1, v.NumberWords["one"])
	assert.Equal(t, 21, v.NumberWords["twenty-one"])
	assert.Equal(t, 50, v.NumberWords["fifty"])

	require.NotNil(t, v.Skills)
	assert.True(t, v.Skills.Contains("python"))
}

// TestAllSectionTitles 汇总标题包含所有节的标题
func TestAllSectionTitles(t *testing.T) {
	v := Default()
	all := v.AllSectionTitles()

	assert.Contains(t, all, "education")
	assert.Contains(t, all, "skills")
	assert.Contains(t, all, "projects")
	assert.Len(t, all,
		len(v.CareerObjectiveTitles)+len(v.EducationTitles)+len(v.ExperienceTitles)+
			len(v.SkillsTitles)+len(v.CertificationTitles)+len(v.OtherBoundaryTitles))
}

// TestKnownSkillsAll All 合并五类技能且 Contains 不区分大小写
func TestKnownSkillsAll(t *testing.T) {
	skills := DefaultKnownSkills()
	all := skills.All()

	assert.NotEmpty(t, all)
	assert.Contains(t, all, "python")
	assert.True(t, skills.Contains("Python"))
	assert.False(t, skills.Contains("definitely-not-a-skill"))
}

// TestLoadKnownSkillsFromDir 从数据目录加载技能词表，缺失文件降级为空类别
func TestLoadKnownSkillsFromDir(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "skills-data")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	err = os.WriteFile(filepath.Join(tmpDir, "ts.json"), []byte(`["Python", "Go"]`), 0644)
	require.NoError(t, err)

	skills := LoadKnownSkills(tmpDir)
	require.NotNil(t, skills)

	// 词条统一为小写
	assert.Contains(t, skills.Technical, "python")
	assert.Contains(t, skills.Technical, "go")
	assert.Empty(t, skills.Soft)
}

// TestJobFieldsConsistency 每个领域在职位表与关键词表中都有对应条目
func TestJobFieldsConsistency(t *testing.T) {
	for _, field := range JobFieldOrder {
		assert.NotEmpty(t, JobFields[field], "领域 %s 缺少职位列表", field)
		assert.NotEmpty(t, TechnicalKeywords[field], "领域 %s 缺少关键词", field)
		assert.NotEmpty(t, SoftSkillsKeywords[field], "领域 %s 缺少软技能关键词", field)
		assert.NotEmpty(t, ToolsTech[field], "领域 %s 缺少工具关键词", field)
	}
}
