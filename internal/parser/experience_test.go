package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/zinando/smartapplicant-backend/internal/types"
)

// TestParseExperienceDateRange 行尾日期区间推算出精确的年月跨度
func TestParseExperienceDateRange(t *testing.T) {
	text := `Jane Doe
jane@acme.com

Work Experience
Software Developer, Acme Ltd Jan 2018 - Dec 2021
- Built internal tools`

	p := NewResumeParser(WithNow(fixedClock))
	result := p.Parse(text)

	assert.Equal(t, "3 Years 11 Months of Professional Experience", result.ExperienceDuration)
}

// TestParseExperiencePresentUsesInjectedClock "Present" 解析为注入时钟的当前时间
func TestParseExperiencePresentUsesInjectedClock(t *testing.T) {
	text := `Jane Doe
jane@acme.com

Work Experience
Software Developer, Acme Ltd Jan 2020 - Present`

	// 固定时钟为 2024-06-15：2020 年 1 月至 2024 年 6 月共 4 年 5 个月
	p := NewResumeParser(WithNow(func() time.Time {
		return time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	}))
	result := p.Parse(text)

	assert.Equal(t, "4 Years 5 Months of Professional Experience", result.ExperienceDuration)
}

// TestParseExperienceSummaryStatement 摘要中的年限陈述优先于日期区间推算
func TestParseExperienceSummaryStatement(t *testing.T) {
	text := `Jane Doe
jane@acme.com

Summary
Software engineer with 5+ years of experience.

Work Experience
Software Developer, Acme Ltd Jan 2022 - Dec 2023`

	p := NewResumeParser(WithNow(fixedClock))
	result := p.Parse(text)

	assert.Equal(t, "5 Years of Professional Experience", result.ExperienceDuration)
}

// TestParseExperienceNumberWord 英文数词形式的年限陈述也能识别
func TestParseExperienceNumberWord(t *testing.T) {
	text := `John Okoro
john@acme.com

Summary
Accountant with seven years of experience in auditing.

Work Experience
Senior Accountant, BigFirm
- Handled statutory audits`

	p := NewResumeParser()
	result := p.Parse(text)

	assert.Equal(t, "7 Years of Professional Experience", result.ExperienceDuration)
	// 经历节没有日期区间：已有摘要年限时按较低额度扣分
	assert.InDelta(t, 10.0, result.SectionScores[types.SectionExperience], 0.001)
	assert.Equal(t, 1, countErrorsContaining(result.Errors, "experience duration"))
}

// TestParseExperienceNoDates 两级策略都落空时降级为不足一个月
func TestParseExperienceNoDates(t *testing.T) {
	text := `John Okoro
john@acme.com

Work Experience
Senior Accountant, BigFirm
- Handled statutory audits`

	p := NewResumeParser()
	result := p.Parse(text)

	assert.Equal(t, "Less than a month of Professional Experience", result.ExperienceDuration)
	// 摘要与日期区间双双缺失：按全额扣分
	assert.InDelta(t, 0.0, result.SectionScores[types.SectionExperience], 0.001)
}

// TestFormatExperienceSpan 跨度格式化的边界情况
func TestFormatExperienceSpan(t *testing.T) {
	jan2020 := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		end  time.Time
		want string
	}{
		{time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC), "3 Years of Professional Experience"},
		{time.Date(2020, time.April, 1, 0, 0, 0, 0, time.UTC), "3 Months of Professional Experience"},
		{jan2020, "Less than a month of Professional Experience"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, formatExperienceSpan(jan2020, tc.end))
	}

	// 起止颠倒时自动交换
	assert.Equal(t, "3 Years of Professional Experience",
		formatExperienceSpan(time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC), jan2020))
}

// TestExtractSummaryYears 年限陈述的各类写法
func TestExtractSummaryYears(t *testing.T) {
	p := NewResumeParser()

	cases := []struct {
		text string
		want int
	}{
		{"5+ years of backend experience", 5},
		{"over 10 years in finance", 10},
		{"twenty-one years of service", 21},
		{"three yrs experience", 3},
	}
	for _, tc := range cases {
		got, ok := p.extractSummaryYears(tc.text)
		assert.True(t, ok, "应识别出年限: %q", tc.text)
		assert.Equal(t, tc.want, got, "文本: %q", tc.text)
	}

	_, ok := p.extractSummaryYears("passionate about clean code")
	assert.False(t, ok)
}
