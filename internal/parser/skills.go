package parser

import (
	"regexp"
	"sort"
	"strings"

	"github.com/zinando/smartapplicant-backend/internal/types"
)

const maxSkillsSectionLen = 5000

var (
	// 形如 "Programming: Python, Java" 的分组单行（分隔符后必须有空格）
	groupedLineRe = regexp.MustCompile(`^[\w\s]+[:\-–—]\s+(.+)`)

	// 裸组名行，如 "Technical Skills:"
	groupLabelRe = regexp.MustCompile(`^[\w\s]+:\s*$`)

	// 行首项目符号
	bulletPrefixRe = regexp.MustCompile(`^[•\-●*]+ `)

	// 单行与多行格式各自的技能分隔符集合
	oneLineDelimiterRe   = regexp.MustCompile(`[,\x{2022};|\x{2023}\x{25AA}\x{25CF}\x{2024}\x{2027}\-•·]+`)
	multiLineDelimiterRe = regexp.MustCompile(`[,\x{2022};|\x{2023}\x{25AA}\x{25CF}\x{2024}\x{2027}–—•·]+`)
)

// parseSkills 提取技能列表。对技能节做两轮互补提取并取并集：
// 分组单行格式与多行分组格式；之后再用已知技能词典
// 对简历其余部分做整词扫描补充。结果去重、标题化、按字母序排列。
func (p *ResumeParser) parseSkills(resumeText string, sections map[types.SectionKey]string, card *scoreCard) []string {
	skillsText, ok := sections[types.SectionSkills]
	if !ok || skillsText == "" {
		return nil
	}

	found := make(map[string]bool)
	for _, skill := range extractGroupedOneLineSkills(skillsText) {
		found[titleCase(skill)] = true
	}
	for _, skill := range extractMultiLineSkills(skillsText) {
		found[titleCase(skill)] = true
	}

	if len(found) == 0 {
		card.deduct(types.SectionSkills, 20,
			"Skills Section: Use bullet points to present your skills in the Skills section of your resume. You can group your skills or list them as is (e.g., Python, SQL, Java; or groups like this- Programming: Python, Dart, C++). When listing in groups, ensure the group name is separated from the skills by a colon (:), dash (-), en-dash (–), or em-dash (—) wisth a space after the separator. Use common delimiters like comma, semicolon, bullet point, pipe, etc., to separate individual skills within the group.")
		return nil
	}

	// 其余部分的已知技能扫描，排除技能节自身的文本
	rest := strings.Replace(strings.ToLower(resumeText), strings.ToLower(skillsText), "", 1)
	for _, sp := range p.skillPatterns {
		if sp.re.MatchString(rest) {
			found[titleCase(sp.skill)] = true
		}
	}

	skills := make([]string, 0, len(found))
	for skill := range found {
		skills = append(skills, skill)
	}
	sort.Slice(skills, func(i, j int) bool {
		return strings.ToLower(skills[i]) < strings.ToLower(skills[j])
	})
	return skills
}

// extractGroupedOneLineSkills 处理 "GroupName: item1, item2" 式的分组单行，
// 按常见分隔符拆出技能项。
func extractGroupedOneLineSkills(skillsText string) []string {
	if skillsText == "" || len(skillsText) > maxSkillsSectionLen {
		return nil
	}

	var skills []string
	for _, line := range strings.Split(skillsText, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		m := groupedLineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		for _, item := range oneLineDelimiterRe.Split(m[1], -1) {
			if item = strings.TrimSpace(item); item != "" {
				skills = append(skills, item)
			}
		}
	}
	return skills
}

// extractMultiLineSkills 处理多行技能节：
// 裸 "Label:" 行开启新分组，其后各行累积为该组内容；
// 无分组时各行按原样拆分。
func extractMultiLineSkills(skillsText string) []string {
	if skillsText == "" {
		return nil
	}

	splitItems := func(line string) []string {
		var items []string
		for _, item := range multiLineDelimiterRe.Split(line, -1) {
			if item = strings.TrimSpace(item); item != "" {
				items = append(items, item)
			}
		}
		return items
	}

	var skills []string
	var groupLines []string
	flush := func() {
		for _, groupLine := range groupLines {
			skills = append(skills, splitItems(groupLine)...)
		}
		groupLines = nil
	}

	for _, line := range nonEmptyLines(skillsText) {
		line = strings.TrimSpace(bulletPrefixRe.ReplaceAllString(line, ""))
		if groupLabelRe.MatchString(line) {
			flush()
		} else {
			groupLines = append(groupLines, line)
		}
	}
	flush()
	return skills
}
