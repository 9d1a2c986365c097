package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zinando/smartapplicant-backend/internal/types"
)

// fullResumeText 一份各节齐备、格式规范的简历样本
const fullResumeText = `Chisom Hamzat
chisom.hamzat@gmail.com
+2348031234567
Lagos, Nigeria

Summary
Software engineer with 5+ years of experience building backend services.

Work Experience
Backend Engineer, Acme Ltd Jan 2018 - Dec 2021
- Designed and maintained REST APIs

Education
B.Sc in Computer Science, University of Lagos, Lagos State Nigeria - Jan 2016 - Dec 2020

Skills
Programming: Python, Java, C++
Databases: SQL, MongoDB

Certifications
AWS Certified Cloud Practitioner - Amazon Web Services - Jul 2023`

func fixedClock() time.Time {
	return time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
}

// TestParseFullResume 验证规范简历能提取出全部结构化数据且不丢分
func TestParseFullResume(t *testing.T) {
	p := NewResumeParser(WithNow(fixedClock))
	result := p.Parse(fullResumeText)
	require.NotNil(t, result)

	assert.Equal(t, "Chisom Hamzat", result.Metadata.Name)
	assert.Equal(t, "chisom.hamzat@gmail.com", result.Metadata.Email)
	assert.Equal(t, "+2348031234567", result.Metadata.Phone)
	assert.NotEmpty(t, result.Metadata.Location)

	require.Len(t, result.Education, 1)
	assert.Equal(t, "B.Sc", result.Education[0].Degree)
	assert.Equal(t, "Computer Science", result.Education[0].Field)

	// 摘要中的年限陈述优先于日期区间推算
	assert.Equal(t, "5 Years of Professional Experience", result.ExperienceDuration)

	assert.Subset(t, result.Skills, []string{"Python", "Java", "C++", "Sql", "Mongodb"})

	require.Len(t, result.Certifications, 1)
	assert.Equal(t, "AWS Certified Cloud Practitioner", result.Certifications[0].Name)

	// 全部主要节满分
	for _, section := range []types.SectionKey{
		types.SectionContact, types.SectionEducation, types.SectionExperience,
		types.SectionSkills, types.SectionCertifications,
	} {
		assert.InDelta(t, 20.0, result.SectionScores[section], 0.001, "节 %s 应为满分", section)
	}
	assert.Equal(t, 100, result.ATSScore)
}

// TestParseEmptyInput 空文本不报错，降级为零分结果
func TestParseEmptyInput(t *testing.T) {
	p := NewResumeParser()
	result := p.Parse("")
	require.NotNil(t, result)

	assert.True(t, result.Metadata.IsEmpty())
	assert.Empty(t, result.Education)
	assert.Empty(t, result.Skills)
	assert.Empty(t, result.Certifications)
	assert.Equal(t, 0, result.ATSScore)
	assert.NotEmpty(t, result.Errors)
}

// TestParseIdempotent 同一文本重复解析结果完全一致
func TestParseIdempotent(t *testing.T) {
	p := NewResumeParser(WithNow(fixedClock))
	first := p.Parse(fullResumeText)
	second := p.Parse(fullResumeText)
	assert.Equal(t, first, second)
}

// TestScoreBoundsAndTotal 各节得分在预算范围内，总分等于各节得分之和取整
func TestScoreBoundsAndTotal(t *testing.T) {
	samples := []string{
		fullResumeText,
		"",
		"random text without any resume structure",
		"Skills\nPython, SQL",
	}

	p := NewResumeParser(WithNow(fixedClock))
	for _, sample := range samples {
		result := p.Parse(sample)

		var total float64
		for section, score := range result.SectionScores {
			budget := sectionBudgets[section]
			assert.GreaterOrEqual(t, score, 0.0, "节 %s 得分不应为负", section)
			assert.LessOrEqual(t, score, budget, "节 %s 得分不应超出预算", section)
			total += score
		}
		assert.GreaterOrEqual(t, result.ATSScore, 0)
		assert.LessOrEqual(t, result.ATSScore, 100)
		assert.InDelta(t, total, float64(result.ATSScore), 0.5, "总分应为各节得分之和取整")
	}
}

// TestSectionIdentificationByExactTitle 标题匹配按整行相等，正文中的关键词不会误判
func TestSectionIdentificationByExactTitle(t *testing.T) {
	// "education" 出现在经历正文中，不应被当作教育节标题
	text := `Jane Doe
jane.doe@gmail.com

Work Experience
Coordinated education programs for the community Jan 2019 - Dec 2020

Education
B.Sc in Mathematics, University of Ibadan, Oyo State Nigeria - 2015`

	p := NewResumeParser()
	result := p.Parse(text)

	require.Len(t, result.Education, 1)
	assert.Equal(t, "B.Sc", result.Education[0].Degree)
	assert.Equal(t, "Mathematics", result.Education[0].Field)
}
