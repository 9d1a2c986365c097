package types

// SectionKey 表示简历章节的键名
type SectionKey = string

const (
	// SectionContact 联系方式章节（简历顶部，无标题）
	SectionContact SectionKey = "contact"
	// SectionCareerObjective 职业目标/个人总结章节
	SectionCareerObjective SectionKey = "career_objective"
	// SectionEducation 教育经历章节
	SectionEducation SectionKey = "education"
	// SectionExperience 工作经历章节
	SectionExperience SectionKey = "experience"
	// SectionSkills 技能章节
	SectionSkills SectionKey = "skills"
	// SectionCertifications 证书章节
	SectionCertifications SectionKey = "certifications"
)

// ContactMetadata 联系人元数据，所有字段均为可选
type ContactMetadata struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
}

// IsEmpty 判断是否未提取到任何联系信息
func (m ContactMetadata) IsEmpty() bool {
	return m.Name == "" && m.Email == "" && m.Phone == "" && m.Location == ""
}

// EducationEntry 单条教育经历记录
type EducationEntry struct {
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	Institution string `json:"institution"`
	Location    string `json:"location"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

// CertificationEntry 单条证书记录，按 (name, issuer, date) 三元组去重
type CertificationEntry struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer,omitempty"`
	Date   string `json:"date,omitempty"`
}

// ParsedResume 简历解析结果，解析完成后不再变更
type ParsedResume struct {
	Metadata           ContactMetadata      `json:"metadata"`
	Education          []EducationEntry     `json:"education"`
	ExperienceDuration string               `json:"experience_duration,omitempty"`
	Skills             []string             `json:"skills"`
	Certifications     []CertificationEntry `json:"certifications"`

	// ATSScore 为各章节剩余分数之和，0-100
	ATSScore int `json:"ats_score"`

	// SectionScores 各章节剩余分数（扣分后），键为章节名
	SectionScores map[SectionKey]float64 `json:"section_scores"`

	// Errors 按发现顺序累积的缺陷整改提示
	Errors []string `json:"errors"`
}

// SectionMatch 单个匹配维度的结果
type SectionMatch struct {
	MatchPercentage float64  `json:"match_percentage"`
	Matched         []string `json:"matched"`
	Missing         []string `json:"missing"`
}

// SectionalMatching 简历与JD的分维度匹配结果
type SectionalMatching struct {
	Skills         SectionMatch `json:"skills"`
	Education      SectionMatch `json:"education"`
	Experience     SectionMatch `json:"experience"`
	Certifications SectionMatch `json:"certifications"`
}

// MatchReport 简历-岗位匹配报告
type MatchReport struct {
	// ReportID 报告的唯一标识
	ReportID string `json:"report_id,omitempty"`

	// KeywordCoverage 关键词覆盖率，类别名 -> 百分比
	KeywordCoverage map[string]float64 `json:"keyword_coverage"`

	SectionalMatching SectionalMatching `json:"sectional_matching"`

	Suggestions []string `json:"suggestions"`

	// SuitabilityScore 所有非零分量的算术平均值
	SuitabilityScore float64 `json:"suitability_score"`
}

// SectionalAnalysis 基础分析（不依赖JD）的分章节得分
type SectionalAnalysis struct {
	Metadata       int `json:"metadata"`
	Education      int `json:"education"`
	Skills         int `json:"skills"`
	Experience     int `json:"experience"`
	Certifications int `json:"certifications"`
}

// AsMap 以原始键名返回各章节得分
func (s SectionalAnalysis) AsMap() map[string]int {
	return map[string]int{
		"metadata":       s.Metadata,
		"education":      s.Education,
		"skills":         s.Skills,
		"experience":     s.Experience,
		"certifications": s.Certifications,
	}
}
