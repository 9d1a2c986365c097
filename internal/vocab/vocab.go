// Package vocab 提供解析与匹配使用的只读词汇表：
// 各节标题同义词、学位与院校关键词、常见职位名称、数字单词以及已知技能词典。
// 词汇表在启动时构建一次，之后只读。
package vocab

// Vocabulary 解析器与匹配引擎共享的词汇表。
// 所有标题与关键词统一为小写，比较前调用方需先归一化输入。
type Vocabulary struct {
	// 各节标题同义词（小写）
	CareerObjectiveTitles []string
	EducationTitles       []string
	ExperienceTitles      []string
	SkillsTitles          []string
	CertificationTitles   []string
	OtherBoundaryTitles   []string

	// 教育行识别关键词
	DegreeKeywords      []string
	InstitutionKeywords []string

	// 职位领域匹配
	CommonJobTitles []string

	// 英文数字单词 -> 数值（one..fifty，含连字符复合词）
	NumberWords map[string]int

	// 已知技能词典
	Skills *KnownSkills
}

// Default 返回内置默认词汇表。
func Default() *Vocabulary {
	return New("")
}

// New 构建词汇表。skillDataDir 非空时从该目录加载技能数据文件，
// 否则使用内置默认技能词典。
func New(skillDataDir string) *Vocabulary {
	var skills *KnownSkills
	if skillDataDir == "" {
		skills = DefaultKnownSkills()
	} else {
		skills = LoadKnownSkills(skillDataDir)
	}
	return &Vocabulary{
		CareerObjectiveTitles: defaultCareerObjectiveTitles,
		EducationTitles:       defaultEducationTitles,
		ExperienceTitles:      defaultExperienceTitles,
		SkillsTitles:          defaultSkillsTitles,
		CertificationTitles:   defaultCertificationTitles,
		OtherBoundaryTitles:   defaultOtherBoundaryTitles,
		DegreeKeywords:        defaultDegreeKeywords,
		InstitutionKeywords:   defaultInstitutionKeywords,
		CommonJobTitles:       defaultCommonJobTitles,
		NumberWords:           buildNumberWords(),
		Skills:                skills,
	}
}

// AllSectionTitles 返回全部节标题（用于判定节边界行）。
func (v *Vocabulary) AllSectionTitles() []string {
	out := make([]string, 0,
		len(v.CareerObjectiveTitles)+len(v.EducationTitles)+len(v.ExperienceTitles)+
			len(v.SkillsTitles)+len(v.CertificationTitles)+len(v.OtherBoundaryTitles))
	out = append(out, v.CareerObjectiveTitles...)
	out = append(out, v.EducationTitles...)
	out = append(out, v.ExperienceTitles...)
	out = append(out, v.SkillsTitles...)
	out = append(out, v.CertificationTitles...)
	out = append(out, v.OtherBoundaryTitles...)
	return out
}
