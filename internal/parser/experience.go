package parser

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/zinando/smartapplicant-backend/internal/logger"
	"github.com/zinando/smartapplicant-backend/internal/types"
)

const lessThanAMonth = "Less than a month of Professional Experience"

// 月份写法（缩写或全称）
const monthPattern = `(?:Jan(?:uary)?|Feb(?:ruary)?|Mar(?:ch)?|Apr(?:il)?|May|Jun(?:e)?|Jul(?:y)?|Aug(?:ust)?|Sep(?:t(?:ember)?)?|Oct(?:ober)?|Nov(?:ember)?|Dec(?:ember)?)`

// 日期区间分隔符：连字符、各类破折号或 "to"
const rangeSeparator = `(?:[-–—]|to)`

// experienceRangeRe 行尾的工作时间区间，覆盖
// 月 年 - 月 年、月 年 - Present、MM/YYYY、YYYY - YYYY 与 YYYY - Present 等写法。
var experienceRangeRe = regexp.MustCompile(`(?i)(` +
	monthPattern + `\s+\d{4}\s*` + rangeSeparator + `\s*` + monthPattern + `\s+\d{4}` +
	`|` + monthPattern + `\s+\d{4}\s*` + rangeSeparator + `\s*(?:Present|Current|Ongoing)` +
	`|\d{2}/\d{4}\s*` + rangeSeparator + `\s*\d{2}/\d{4}` +
	`|\b\d{4}\s*` + rangeSeparator + `\s*\d{4}\b` +
	`|\b\d{4}\s*` + rangeSeparator + `\s*(?:Present|Current|Ongoing|Till date|Till now|Till Present)\b` +
	`)$`)

var rangeSeparatorRe = regexp.MustCompile(`(?i)\s*(?:to|[-–—])\s*`)

// dateTokenLayouts 日期令牌的候选布局，按优先级排列。
var dateTokenLayouts = []string{"January 2006", "Jan 2006", "01/2006", "2006-01", "2006"}

// presentKeywords 表示开放区间终点的写法
var presentKeywords = map[string]bool{
	"present": true, "current": true, "till date": true, "till now": true, "now": true,
}

// parseExperience 两级策略提取工作年限。
// 第一级在职业目标/摘要中找明确的年限陈述（"5+ years of experience" 等）；
// 第二级扫描经历节中行尾的日期区间，取全局最早与最晚日期计算跨度。
// 两级皆失败时降级为 "Less than a month of Professional Experience"。
func (p *ResumeParser) parseExperience(sections map[types.SectionKey]string, card *scoreCard) string {
	var result string
	years := 0

	if objective := sections[types.SectionCareerObjective]; objective != "" {
		if found, ok := p.extractSummaryYears(objective); ok {
			years = found
			result = fmt.Sprintf("%d Years of Professional Experience", years)
		} else {
			card.note("Career Objective Section - content: It is a good practice to summarize your years of experience in your career summary section. Use ATS-friendly formats like '5+ years of experience' or '3-5 years of experience' summarize your total career experience in years.")
		}
	}

	// 第一级完全失败时第二级缺陷按更高额度扣分
	deduction := 10.0
	if years <= 0 {
		deduction = 20.0
	}

	if expText := sections[types.SectionExperience]; expText != "" {
		durations := extractExperienceDurations(expText)
		if len(durations) == 0 {
			card.deduct(types.SectionExperience, deduction,
				"Experience Section - experience duration: Your work experience should be clearly stated within your resume. Ensure it is well-formatted with job titles, company names, locations, and most importantly, the duration of the experience. Follow a consistent format for all entries. Duration of the experience should be a date range (start date - end date). For best practice, use month and year to represent the date, or just year (e.g Jun 2021 - Aug 2024 or 2021 - 2024). You can represent month name in full or just the first three letters as seen earlier, no punctuations. ATS algorithms will usually look for the dates on the same line where you provide the company name, or the job title line. If you have no work experience, you can provide your internship or volunteer experience.")
		} else {
			tokens := splitDateRanges(durations)
			start, end, ok := p.dateRangeBounds(tokens)
			if !ok {
				card.deduct(types.SectionExperience, deduction,
					"Experience Section - experience duration: Ensure you provide clear date ranges for your work experience in the format: 'Jan 2021 - Aug 2024' or '2021 - 2024'.")
			} else if years <= 0 {
				result = formatExperienceSpan(start, end)
			}
		}
	}

	if result == "" {
		result = lessThanAMonth
	}
	return result
}

// summaryYearPatterns 年限陈述的有序策略，命中即停。
func (p *ResumeParser) summaryYearPatterns() []*regexp.Regexp {
	words := make([]string, 0, len(p.vocab.NumberWords))
	for word := range p.vocab.NumberWords {
		words = append(words, word)
	}
	sort.Strings(words)

	return []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(\d{1,2})\+?\s+(?:years|yrs?)\b`),
		regexp.MustCompile(`(?i)\bover\s+(\d{1,2})\s+(?:years|yrs?)\b`),
		regexp.MustCompile(`(?i)\bmore than\s+(\d{1,2})\s+(?:years|yrs?)\b`),
		regexp.MustCompile(`(?i)\b(?:with|have|has)\s+(\d{1,2})\s+(?:years|yrs?)\b`),
		regexp.MustCompile(`(?i)\b(` + strings.Join(words, "|") + `)\s+(?:years|yrs?)\b`),
		regexp.MustCompile(`(?i)\b(?:\w+\s+)?\((\d{1,2})\)\s+(?:years|yrs?)\b`),
	}
}

// extractSummaryYears 在摘要文本中查找明确的年限数字或英文数词。
func (p *ResumeParser) extractSummaryYears(text string) (int, bool) {
	for _, re := range p.summaryYearPatterns() {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		value := strings.ToLower(m[1])
		if n, err := strconv.Atoi(value); err == nil {
			return n, true
		}
		if n, ok := p.vocab.NumberWords[value]; ok {
			return n, true
		}
	}
	return 0, false
}

// extractExperienceDurations 收集经历节中锚定在行尾的日期区间。
func extractExperienceDurations(text string) []string {
	var durations []string
	for _, line := range nonEmptyLines(text) {
		if m := experienceRangeRe.FindStringSubmatch(line); m != nil {
			durations = append(durations, strings.TrimSpace(m[1]))
		}
	}
	return durations
}

// splitDateRanges 把区间拆分为单独的日期令牌。
func splitDateRanges(durations []string) []string {
	var tokens []string
	for _, duration := range durations {
		for _, part := range rangeSeparatorRe.Split(duration, -1) {
			if part = strings.TrimSpace(part); part != "" {
				tokens = append(tokens, part)
			}
		}
	}
	return tokens
}

// dateRangeBounds 解析全部日期令牌并返回最早与最晚日期。
// "Present" 等开放区间写法解析为当前时间；无法解析的令牌忽略。
func (p *ResumeParser) dateRangeBounds(tokens []string) (time.Time, time.Time, bool) {
	var parsed []time.Time
	for _, token := range tokens {
		if presentKeywords[strings.ToLower(strings.TrimSpace(token))] {
			parsed = append(parsed, p.now())
			continue
		}
		if t, ok := parseDateToken(token); ok {
			parsed = append(parsed, t)
		}
	}
	if len(parsed) == 0 {
		return time.Time{}, time.Time{}, false
	}

	start, end := parsed[0], parsed[0]
	for _, t := range parsed[1:] {
		if t.Before(start) {
			start = t
		}
		if t.After(end) {
			end = t
		}
	}
	return start, end, true
}

// parseDateToken 按已知布局解析日期令牌，失败时回退到宽松解析。
func parseDateToken(token string) (time.Time, bool) {
	token = strings.TrimSpace(token)
	for _, layout := range dateTokenLayouts {
		if t, err := time.Parse(layout, token); err == nil {
			return t, true
		}
	}
	t, err := dateparse.ParseAny(token)
	if err != nil {
		logger.Debug().Str("token", token).Msg("日期令牌无法解析，已忽略")
		return time.Time{}, false
	}
	return t, true
}

// formatExperienceSpan 按起止日期计算跨度并输出年月描述。
func formatExperienceSpan(start, end time.Time) string {
	if start.After(end) {
		start, end = end, start
	}
	totalMonths := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	if totalMonths < 0 {
		totalMonths = 0
	}

	years := totalMonths / 12
	months := totalMonths % 12
	switch {
	case years > 0 && months > 0:
		return fmt.Sprintf("%d Years %d Months of Professional Experience", years, months)
	case years > 0:
		return fmt.Sprintf("%d Years of Professional Experience", years)
	case months > 0:
		return fmt.Sprintf("%d Months of Professional Experience", months)
	}
	return lessThanAMonth
}
