// Package parser 实现基于规则的简历解析与评分引擎。
// 输入为已解码的纯文本（PDF/DOCX 的文本提取由外部协作方完成），
// 输出为结构化的 ParsedResume：联系人元数据、教育经历、工作年限、
// 技能列表、证书列表、各节得分与 0-100 的 ATS 总分，
// 以及与每次扣分一一对应的可读的整改建议列表。
//
// 解析器本身只持有只读配置（词汇表、电话区域、时钟），
// 每次 Parse 调用使用独立的累加器状态，可安全地重复与并发调用。
package parser

import (
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/zinando/smartapplicant-backend/internal/types"
	"github.com/zinando/smartapplicant-backend/internal/vocab"
)

// sectionBudgets 各节的满分预算。career_objective 仅提供信息，不计分。
var sectionBudgets = map[types.SectionKey]float64{
	types.SectionContact:         20,
	types.SectionEducation:       20,
	types.SectionExperience:      20,
	types.SectionSkills:          20,
	types.SectionCertifications:  20,
	types.SectionCareerObjective: 0,
}

// ResumeParser 简历解析器。构造后配置只读，可跨多次解析复用。
type ResumeParser struct {
	vocab         *vocab.Vocabulary
	primaryRegion string
	regions       []string
	now           func() time.Time

	phoneExtractor *PhoneExtractor

	// 由词汇表预编译的识别模式
	degreeLineRe      *regexp.Regexp
	institutionLineRe *regexp.Regexp
	skillPatterns     []skillPattern
}

// skillPattern 已知技能及其整词匹配模式
type skillPattern struct {
	skill string
	re    *regexp.Regexp
}

// Option 解析器构造选项
type Option func(*ResumeParser)

// WithVocabulary 替换默认词汇表（测试中可注入小词表）。
func WithVocabulary(v *vocab.Vocabulary) Option {
	return func(p *ResumeParser) {
		p.vocab = v
	}
}

// WithRegions 设置电话号码识别的首选区域与候选区域列表。
func WithRegions(primary string, supported []string) Option {
	return func(p *ResumeParser) {
		p.primaryRegion = primary
		p.regions = supported
	}
}

// WithNow 注入时钟，用于解析 "Present" 等开放日期区间。测试中可固定时间。
func WithNow(now func() time.Time) Option {
	return func(p *ResumeParser) {
		p.now = now
	}
}

// NewResumeParser 创建简历解析器。默认使用内置词汇表、
// 尼日利亚为首选电话区域以及系统时钟。
func NewResumeParser(opts ...Option) *ResumeParser {
	p := &ResumeParser{
		vocab:         vocab.Default(),
		primaryRegion: "NG",
		regions:       []string{"US", "GB", "CA", "ZA", "GH", "KE", "IN", "DE", "FR", "AU"},
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.phoneExtractor = NewPhoneExtractor(p.primaryRegion, p.regions)
	p.degreeLineRe = keywordListPattern(p.vocab.DegreeKeywords)
	p.institutionLineRe = keywordListPattern(p.vocab.InstitutionKeywords)
	for _, skill := range p.vocab.Skills.All() {
		p.skillPatterns = append(p.skillPatterns, skillPattern{skill: skill, re: wholeWordPattern(skill)})
	}
	return p
}

// mentionsKnownSkill 判断一行文本是否整词出现任一已知技能。
func (p *ResumeParser) mentionsKnownSkill(line string) bool {
	for _, sp := range p.skillPatterns {
		if sp.re.MatchString(line) {
			return true
		}
	}
	return false
}

// mentionsJobTitle 判断一行文本是否包含常见职位名称（子串匹配，不区分大小写）。
func (p *ResumeParser) mentionsJobTitle(lowerLine string) bool {
	for _, title := range p.vocab.CommonJobTitles {
		if strings.Contains(lowerLine, strings.ToLower(title)) {
			return true
		}
	}
	return false
}

// keywordListPattern 将关键词列表编译为不区分大小写的整词匹配模式。
func keywordListPattern(keywords []string) *regexp.Regexp {
	quoted := make([]string, len(keywords))
	for i, kw := range keywords {
		quoted[i] = regexp.QuoteMeta(kw)
	}
	return regexp.MustCompile(`(?i)\b(?:` + strings.Join(quoted, "|") + `)\b`)
}

// scoreCard 单次解析的评分累加器：各节剩余分数与缺陷消息列表。
// 每次扣分都伴随一条消息，消息按发现顺序保留。
type scoreCard struct {
	scores map[types.SectionKey]float64
	errors []string
}

func newScoreCard() *scoreCard {
	scores := make(map[types.SectionKey]float64, len(sectionBudgets))
	for section, budget := range sectionBudgets {
		scores[section] = budget
	}
	return &scoreCard{scores: scores}
}

// deduct 从指定节扣分并记录对应消息，分数下限为 0。
func (c *scoreCard) deduct(section types.SectionKey, points float64, msg string) {
	c.errors = append(c.errors, msg)
	if score, ok := c.scores[section]; ok {
		score -= points
		if score < 0 {
			score = 0
		}
		c.scores[section] = score
	}
}

// note 仅记录消息，不扣分。
func (c *scoreCard) note(msg string) {
	c.errors = append(c.errors, msg)
}

// atsScore 各节剩余分数之和，四舍五入为整数。
func (c *scoreCard) atsScore() int {
	var total float64
	for _, score := range c.scores {
		total += score
	}
	return int(math.Round(total))
}

// Parse 解析完整简历文本。空文本不报错，降级为
// 所有节缺失、记录全部缺陷、总分为 0 的结果。
func (p *ResumeParser) Parse(text string) *types.ParsedResume {
	card := newScoreCard()
	sections := p.identifySections(text, card)

	result := &types.ParsedResume{
		Metadata:       p.parseMetadata(sections, card),
		Education:      p.parseEducation(sections, card),
		Skills:         p.parseSkills(text, sections, card),
		Certifications: p.parseCertifications(sections, card),
	}
	result.ExperienceDuration = p.parseExperience(sections, card)

	result.SectionScores = card.scores
	result.ATSScore = card.atsScore()
	result.Errors = card.errors
	return result
}
