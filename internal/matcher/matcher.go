// Package matcher 实现简历与职位描述（JD）的匹配引擎。
// 简历与 JD 均由同一解析流水线产出；引擎在
// 技能、教育、经验、证书四个维度上计算匹配百分比与
// 匹配/缺失清单，并结合领域关键词覆盖率给出综合适配度。
package matcher

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/google/uuid"
	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/zinando/smartapplicant-backend/internal/config"
	"github.com/zinando/smartapplicant-backend/internal/logger"
	"github.com/zinando/smartapplicant-backend/internal/types"
	"github.com/zinando/smartapplicant-backend/internal/vocab"
)

// degreeHierarchy 学历层级。分值用于跨学历比较：
// 简历最高匹配层级与 JD 最高要求层级之比即教育维度得分。
var degreeHierarchy = map[string]int{
	"phd":       4,
	"m.sc":      3,
	"m.tech":    3,
	"master":    3,
	"b.sc":      2,
	"b.tech":    2,
	"bachelor":  2,
	"hnd":       1,
	"ond":       1,
	"ond/hnd":   1,
	"associate": 0,
}

var yearsRe = regexp.MustCompile(`(?i)(\d+)\+?\s*(years|yrs)`)

// Engine 简历-岗位匹配引擎。阈值来自配置，构造后只读。
type Engine struct {
	skillThreshold   int
	certThreshold    int
	keywordThreshold int
}

// NewEngine 按配置创建匹配引擎。
func NewEngine(cfg config.MatcherConfig) *Engine {
	return &Engine{
		skillThreshold:   cfg.SkillMatchThreshold,
		certThreshold:    cfg.CertMatchThreshold,
		keywordThreshold: cfg.KeywordMatchThreshold,
	}
}

// Match 生成简历对 JD 的完整匹配报告。
// resumeText 为简历原文，jobTitle 用于确定领域关键词组。
func (e *Engine) Match(resume, jd *types.ParsedResume, resumeText, jobTitle string) *types.MatchReport {
	field := e.MatchJobField(jobTitle)
	coverage := e.KeywordCoverage(resumeText, field.ExpectedKeywords)

	skills := e.AnalyzeSkills(jd.Skills, resumeText)
	education := e.AnalyzeEducation(resume.Education, jd.Education)
	experience := e.AnalyzeExperience(resume.ExperienceDuration, jd.ExperienceDuration)
	certifications := e.AnalyzeCertificates(resume.Certifications, jd.Certifications)

	coverage["Experience Level"] = experience.MatchPercentage
	coverage["Education Requirements"] = education.MatchPercentage

	components := make(map[string]float64, len(coverage)+1)
	for k, v := range coverage {
		components[k] = v
	}
	components["ats_score"] = float64(resume.ATSScore)

	report := &types.MatchReport{
		ReportID:        uuid.NewString(),
		KeywordCoverage: coverage,
		SectionalMatching: types.SectionalMatching{
			Skills:         skills,
			Education:      education,
			Experience:     experience,
			Certifications: certifications,
		},
		SuitabilityScore: SuitabilityScore(components),
	}
	logger.Debug().
		Str("report_id", report.ReportID).
		Float64("suitability", report.SuitabilityScore).
		Msg("匹配报告生成完成")
	return report
}

// AnalyzeEducation 教育维度匹配。
// JD 未列出学历要求时直接得满分；简历与 JD 的学历集合无交集时得 0；
// 否则按双方最高层级之比计分，保留一位小数。
func (e *Engine) AnalyzeEducation(resumeEntries, jdEntries []types.EducationEntry) types.SectionMatch {
	resumeDegrees := degreeSet(resumeEntries)
	jdDegrees := degreeSet(jdEntries)

	if len(jdDegrees) == 0 {
		return types.SectionMatch{MatchPercentage: 100}
	}

	var matched, missing []string
	for degree := range jdDegrees {
		if resumeDegrees[degree] {
			matched = append(matched, degree)
		} else {
			missing = append(missing, degree)
		}
	}
	sort.Strings(matched)
	sort.Strings(missing)

	if len(matched) == 0 {
		return types.SectionMatch{Missing: missing}
	}

	maxJD := maxHierarchyLevel(jdDegrees)
	maxMatched := 0
	for _, degree := range matched {
		if level := degreeHierarchy[degree]; level > maxMatched {
			maxMatched = level
		}
	}

	score := 100.0
	if maxJD > 0 {
		score = math.Round(float64(maxMatched)/float64(maxJD)*100*10) / 10
	}
	return types.SectionMatch{MatchPercentage: score, Matched: matched, Missing: missing}
}

// AnalyzeSkills 技能维度匹配：JD 的每项技能与简历全文做
// 令牌集合模糊比对，超过阈值视为命中。JD 无技能要求时得满分。
func (e *Engine) AnalyzeSkills(jdSkills []string, resumeText string) types.SectionMatch {
	unique := dedupeStrings(jdSkills)
	if len(unique) == 0 {
		return types.SectionMatch{MatchPercentage: 100}
	}

	var matched, missing []string
	for _, skill := range unique {
		if fuzzy.TokenSetRatio(skill, resumeText) >= e.skillThreshold {
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}

	score := 0.0
	switch {
	case len(matched) == len(unique):
		score = 100
	case len(matched) > 0:
		score = float64(int(float64(len(matched)) / float64(len(unique)) * 100))
	}
	return types.SectionMatch{MatchPercentage: score, Matched: matched, Missing: missing}
}

// AnalyzeExperience 经验维度匹配：从双方的年限描述中取首个整数比较。
// JD 无要求得满分；JD 有要求而简历无年限得 0；
// 其余按年限之比计分，上限 100。
func (e *Engine) AnalyzeExperience(resumeDuration, jdDuration string) types.SectionMatch {
	jdMatch := yearsRe.FindStringSubmatch(jdDuration)
	if jdMatch == nil {
		return types.SectionMatch{MatchPercentage: 100}
	}
	resumeMatch := yearsRe.FindStringSubmatch(resumeDuration)
	if resumeMatch == nil {
		return types.SectionMatch{Missing: []string{jdDuration}}
	}

	jdYears := parseLeadingInt(jdMatch[1])
	resumeYears := parseLeadingInt(resumeMatch[1])

	if resumeYears >= jdYears {
		return types.SectionMatch{MatchPercentage: 100, Matched: []string{resumeDuration}}
	}
	score := 0.0
	if jdYears > 0 {
		score = float64(int(float64(resumeYears) / float64(jdYears) * 100))
	}
	return types.SectionMatch{
		MatchPercentage: score,
		Matched:         []string{resumeDuration},
		Missing:         []string{jdDuration},
	}
}

// AnalyzeCertificates 证书维度匹配：JD 的每个证书名与简历证书名
// 做部分比率模糊比对，取最佳匹配超过阈值视为命中。
// JD 未列证书时得分为 0 而非满分，该既有行为被刻意保留，
// 对应回归测试锁定当前值。
func (e *Engine) AnalyzeCertificates(resumeEntries, jdEntries []types.CertificationEntry) types.SectionMatch {
	jdCerts := certNameSet(jdEntries)
	resumeCerts := certNameSet(resumeEntries)

	if len(jdCerts) == 0 {
		return types.SectionMatch{MatchPercentage: 0}
	}

	var matched, missing []string
	for jdCert := range jdCerts {
		best := 0
		for resumeCert := range resumeCerts {
			if ratio := fuzzy.PartialRatio(jdCert, resumeCert); ratio > best {
				best = ratio
			}
		}
		if best >= e.certThreshold {
			matched = append(matched, jdCert)
		} else {
			missing = append(missing, jdCert)
		}
	}
	sort.Strings(matched)
	sort.Strings(missing)

	score := math.Round(100 * float64(len(matched)) / float64(len(jdCerts)))
	return types.SectionMatch{MatchPercentage: score, Matched: matched, Missing: missing}
}

// FieldMatch 职位名称到领域的匹配结果
type FieldMatch struct {
	InputTitle       string
	MatchedJobTitle  string
	Field            string
	ExpectedKeywords map[string][]string
}

// MatchJobField 把输入职位名称模糊匹配到领域关键词表中最接近的职位，
// 返回该职位所属领域及其三类期望关键词。无法归类时回退到 general。
func (e *Engine) MatchJobField(inputTitle string) FieldMatch {
	if strings.TrimSpace(inputTitle) == "" {
		return FieldMatch{InputTitle: inputTitle, Field: "general", ExpectedKeywords: map[string][]string{}}
	}

	bestScore := -1
	bestTitle := ""
	bestField := ""
	for _, field := range vocab.JobFieldOrder {
		for _, title := range vocab.JobFields[field] {
			if score := fuzzy.WRatio(inputTitle, title); score > bestScore {
				bestScore = score
				bestTitle = title
				bestField = field
			}
		}
	}

	if bestField == "" {
		return FieldMatch{InputTitle: inputTitle, Field: "general", ExpectedKeywords: map[string][]string{}}
	}
	return FieldMatch{
		InputTitle:       inputTitle,
		MatchedJobTitle:  bestTitle,
		Field:            bestField,
		ExpectedKeywords: vocab.TechnicalKeywords[bestField],
	}
}

// KeywordCoverage 按类别统计期望关键词在简历全文中的命中率（百分比）。
func (e *Engine) KeywordCoverage(resumeText string, expectedKeywords map[string][]string) map[string]float64 {
	coverage := make(map[string]float64, len(expectedKeywords))
	lowerText := strings.ToLower(resumeText)

	for category, keywords := range expectedKeywords {
		if len(keywords) == 0 {
			coverage[category] = 0
			continue
		}
		found := 0
		for _, keyword := range keywords {
			if fuzzy.TokenSetRatio(strings.ToLower(keyword), lowerText) >= e.keywordThreshold {
				found++
			}
		}
		coverage[category] = math.Round(float64(found) / float64(len(keywords)) * 100)
	}
	return coverage
}

// SuitabilityScore 综合适配度：所有非零分量的算术平均值，保留两位小数。
// 零值分量不参与平均而不是按零计入，该取舍与既有行为保持一致。
func SuitabilityScore(components map[string]float64) float64 {
	var total float64
	count := 0
	for _, value := range components {
		if value > 0 {
			total += value
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return math.Round(total/float64(count)*100) / 100
}

func degreeSet(entries []types.EducationEntry) map[string]bool {
	set := make(map[string]bool, len(entries))
	for _, entry := range entries {
		degree := strings.ToLower(strings.TrimSpace(entry.Degree))
		if degree != "" {
			set[degree] = true
		}
	}
	return set
}

func certNameSet(entries []types.CertificationEntry) map[string]bool {
	set := make(map[string]bool, len(entries))
	for _, entry := range entries {
		name := strings.ToLower(strings.TrimSpace(entry.Name))
		if name != "" {
			set[name] = true
		}
	}
	return set
}

func maxHierarchyLevel(degrees map[string]bool) int {
	max := 0
	for degree := range degrees {
		if level := degreeHierarchy[degree]; level > max {
			max = level
		}
	}
	return max
}

func dedupeStrings(values []string) []string {
	seen := make(map[string]bool, len(values))
	var out []string
	for _, v := range values {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

func parseLeadingInt(s string) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		n = n*10 + int(r-'0')
	}
	return n
}
