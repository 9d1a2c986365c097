package parser

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

var (
	dashVariantRe   = regexp.MustCompile("[‒–—―]")
	dashSpacingRe   = regexp.MustCompile(`\s*-\s*`)
	multiSpaceRe    = regexp.MustCompile(`\s+`)
	linePrefixRe    = regexp.MustCompile("^[•\\-–*\\s]*")
	lineSuffixRe    = regexp.MustCompile(`[:\-\s]*$`)
	nonWordBoundary = `[^0-9A-Za-z_]`
)

// monthAbbreviations 完整月份名到三字母缩写的替换规则（May 无需缩写）。
var monthAbbreviations = buildMonthAbbreviations()

type monthRule struct {
	re   *regexp.Regexp
	abbr string
}

func buildMonthAbbreviations() []monthRule {
	full := map[string]string{
		"Sept": "Sep", "January": "Jan", "February": "Feb", "March": "Mar",
		"April": "Apr", "June": "Jun", "July": "Jul", "August": "Aug",
		"October": "Oct", "November": "Nov", "December": "Dec",
	}
	rules := make([]monthRule, 0, len(full))
	for name, abbr := range full {
		rules = append(rules, monthRule{
			re:   regexp.MustCompile(`(?i)\b` + name + `\b`),
			abbr: abbr,
		})
	}
	return rules
}

var titleCaser = cases.Title(language.English)

// normalizeUnicode 对文本做 NFKC 归一化，统一全角/兼容字符。
func normalizeUnicode(text string) string {
	return norm.NFKC.String(text)
}

// normalizeLine 行归一化：去掉行首项目符号、行尾冒号与破折号并转小写。
// 节标题匹配按归一化后的整行相等比较。
func normalizeLine(line string) string {
	line = strings.TrimSpace(line)
	line = linePrefixRe.ReplaceAllString(line, "")
	line = lineSuffixRe.ReplaceAllString(line, "")
	return strings.ToLower(line)
}

// normalizeDocText 清理文档行文本：制表符替换为空格、
// 统一各类破折号、规范破折号两侧空格、折叠多余空格、
// 将完整月份名替换为三字母缩写。
func normalizeDocText(text string) string {
	if text == "" {
		return ""
	}
	text = strings.ReplaceAll(text, "\t", " ")
	text = dashVariantRe.ReplaceAllString(text, "-")
	text = dashSpacingRe.ReplaceAllString(text, " - ")
	text = strings.TrimSpace(multiSpaceRe.ReplaceAllString(text, " "))
	for _, rule := range monthAbbreviations {
		text = rule.re.ReplaceAllString(text, rule.abbr)
	}
	return text
}

// titleCase 首字母大写、其余小写的逐词标题格式（SQL -> Sql）。
func titleCase(s string) string {
	return titleCaser.String(strings.ToLower(s))
}

// wholeWordPattern 编译整词匹配模式。
// 标准库不支持环视断言，用非单词字符或行列边界模拟词界，
// 以兼容 C++、.NET 这类含标点的词条。
func wholeWordPattern(term string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)(?:^|` + nonWordBoundary + `)` + regexp.QuoteMeta(strings.ToLower(term)) + `(?:` + nonWordBoundary + `|$)`)
}

// nonEmptyLines 按行拆分并去掉空白行，每行去除首尾空白。
func nonEmptyLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
