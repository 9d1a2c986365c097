package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countErrorsContaining 统计包含指定子串的缺陷消息数量
func countErrorsContaining(errors []string, substr string) int {
	count := 0
	for _, msg := range errors {
		if strings.Contains(msg, substr) {
			count++
		}
	}
	return count
}

// TestParseMissingContactInfo 无姓名、邮箱、电话的简历：
// 元数据为空，联系节清零，且三条缺陷消息各自独立出现
func TestParseMissingContactInfo(t *testing.T) {
	text := `seasoned professional open to new opportunities

Work Experience
Sales Associate, Shopmart Jan 2019 - Dec 2022

Education
B.Sc in Marketing, University of Lagos, Lagos State Nigeria - Jan 2012 - Dec 2016

Skills
Programming: Python, SQL

Certifications
Google Data Analytics Certificate - Google - 2021`

	p := NewResumeParser()
	result := p.Parse(text)

	assert.True(t, result.Metadata.IsEmpty(), "联系元数据应为空")
	assert.InDelta(t, 0.0, result.SectionScores["contact"], 0.001)

	assert.Equal(t, 1, countErrorsContaining(result.Errors, "Contact Section - email"))
	assert.Equal(t, 1, countErrorsContaining(result.Errors, "Contact Section - phone"))
	assert.Equal(t, 1, countErrorsContaining(result.Errors, "Contact Section - name"))
}

// TestExtractNameFirstLines 前三行中符合姓名模式的行被识别为姓名
func TestExtractNameFirstLines(t *testing.T) {
	p := NewResumeParser()

	cases := []struct {
		contact string
		want    string
	}{
		{"Chisom Hamzat\nchisom@gmail.com", "Chisom Hamzat"},
		{"CHISOM HAMZAT\nchisom@gmail.com", "CHISOM HAMZAT"},
		{"Chisom Ayokunle Hamzat\nchisom@gmail.com", "Chisom Ayokunle Hamzat"},
	}
	for _, tc := range cases {
		got := p.extractName(tc.contact, []string{"chisom@gmail.com"})
		assert.Equal(t, tc.want, got)
	}
}

// TestExtractNameRejectsJobTitleLines 含职位名称的行不会被误判为姓名
func TestExtractNameRejectsJobTitleLines(t *testing.T) {
	p := NewResumeParser()

	got := p.extractName("Senior Software Engineer\nchisom@gmail.com", []string{"chisom@gmail.com"})
	assert.Empty(t, got)
}

// TestExtractNamePreEmailFallback 前三行无姓名时回退到邮箱前最后一行
func TestExtractNamePreEmailFallback(t *testing.T) {
	p := NewResumeParser()

	contact := "experienced and motivated professional\n" +
		"available for remote roles\n" +
		"+234 803 123 4567\n" +
		"Adaeze Okafor\n" +
		"adaeze@gmail.com"
	got := p.extractName(contact, []string{"adaeze@gmail.com"})
	assert.Equal(t, "Adaeze Okafor", got)
}

// TestExtractLocationMarkerFallback 前几行无地名时回退到 Location:/Address: 标记
func TestExtractLocationMarkerFallback(t *testing.T) {
	p := NewResumeParser()

	contact := "experienced backend developer\nlocation: Abuja, Nigeria"
	got := p.extractLocation(contact)
	assert.Equal(t, "Abuja, Nigeria", got)
}

// TestParseMetadataExtractsPhone 国际格式与本地格式的电话都规范化为 E.164
func TestParseMetadataExtractsPhone(t *testing.T) {
	text := `Adaeze Okafor
adaeze@gmail.com
08031234567

Education
B.Sc in Law, University of Lagos, Lagos State Nigeria - 2018`

	p := NewResumeParser()
	result := p.Parse(text)
	require.NotNil(t, result)
	assert.Equal(t, "+2348031234567", result.Metadata.Phone)
}
