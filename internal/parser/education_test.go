package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zinando/smartapplicant-backend/internal/types"
)

func parseEducationText(t *testing.T, body string) *types.ParsedResume {
	t.Helper()
	p := NewResumeParser()
	return p.Parse("Education\n" + body)
}

// TestParseEducationSingleLine 单行格式：学位、专业、院校、地点与日期区间齐备
func TestParseEducationSingleLine(t *testing.T) {
	result := parseEducationText(t,
		"B.Sc in Computer Science, University of Lagos, Lagos State Nigeria - Jan 2016 - Dec 2020")

	require.Len(t, result.Education, 1)
	entry := result.Education[0]
	assert.Equal(t, "B.Sc", entry.Degree)
	assert.Equal(t, "Computer Science", entry.Field)
	assert.Equal(t, "University of Lagos", entry.Institution)
	assert.Equal(t, "Lagos State Nigeria", entry.Location)
	assert.Contains(t, entry.Date, "2016")
	assert.Contains(t, entry.Date, "2020")

	assert.InDelta(t, 20.0, result.SectionScores[types.SectionEducation], 0.001)
}

// TestParseEducationMultiLine 多行格式：学位行尾带日期，院校行带地点，第三行为描述
func TestParseEducationMultiLine(t *testing.T) {
	result := parseEducationText(t,
		"B.Sc in Computer Science Aug 2020\n"+
			"University of Lagos, Lagos State Nigeria\n"+
			"Graduated with First Class Honours")

	require.Len(t, result.Education, 1)
	entry := result.Education[0]
	assert.Equal(t, "B.Sc", entry.Degree)
	assert.Equal(t, "Computer Science", entry.Field)
	assert.Equal(t, "University of Lagos", entry.Institution)
	assert.Equal(t, "Lagos State Nigeria", entry.Location)
	assert.Equal(t, "Aug 2020", entry.Date)
	assert.Equal(t, "Graduated with First Class Honours", entry.Description)

	assert.InDelta(t, 20.0, result.SectionScores[types.SectionEducation], 0.001)
}

// TestParseEducationDeduplicates 字节级相同的重复条目折叠为一条
func TestParseEducationDeduplicates(t *testing.T) {
	line := "B.Sc in Computer Science, University of Lagos, Lagos State Nigeria - Jan 2016 - Dec 2020"
	result := parseEducationText(t, line+"\n"+line)

	assert.Len(t, result.Education, 1)
}

// TestParseEducationMissingLocation 单行条目缺少地点时按条目数摊薄扣分
func TestParseEducationMissingLocation(t *testing.T) {
	result := parseEducationText(t,
		"B.Sc in Computer Science, University of Lagos - Jan 2016 - Dec 2020")

	require.Len(t, result.Education, 1)
	assert.Empty(t, result.Education[0].Location)
	assert.Equal(t, 1, countErrorsContaining(result.Errors, "Education Section - location"))
	assert.InDelta(t, 16.0, result.SectionScores[types.SectionEducation], 0.001)
}

// TestParseEducationMissingSection 无教育节标题时扣除全部教育分
func TestParseEducationMissingSection(t *testing.T) {
	p := NewResumeParser()
	result := p.Parse("Jane Doe\njane@gmail.com\n\nSkills\nPython, SQL")

	assert.Empty(t, result.Education)
	assert.InDelta(t, 0.0, result.SectionScores[types.SectionEducation], 0.001)
	assert.Equal(t, 1, countErrorsContaining(result.Errors, "Education Section - Title"))
}

// TestParseEducationMissingDescriptionIsAdviceOnly 缺少描述行只产生建议，不扣分
// TestExtractOneLineDateRemovesOnlyMatchedSpan 剥离日期只移除匹配到的那一段，
// 行内其余位置重复出现的年份保持原样
func TestExtractOneLineDateRemovesOnlyMatchedSpan(t *testing.T) {
	cleaned, date := extractOneLineDate(
		"B.Sc in Computer Science 2019, Class of 2019 College, Lagos Nigeria")

	assert.Equal(t, "2019", date)
	assert.Equal(t, "B.Sc in Computer Science, Class of 2019 College, Lagos Nigeria", cleaned)
}

func TestParseEducationMissingDescriptionIsAdviceOnly(t *testing.T) {
	result := parseEducationText(t,
		"B.Sc in Computer Science, University of Lagos, Lagos State Nigeria - Jan 2016 - Dec 2020")

	assert.Equal(t, 1, countErrorsContaining(result.Errors, "Education Section - description"))
	assert.InDelta(t, 20.0, result.SectionScores[types.SectionEducation], 0.001)
}
