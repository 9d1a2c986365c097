package matcher

import (
	"strings"

	"github.com/zinando/smartapplicant-backend/internal/types"
)

// 基础分析的行业基准：期望至少三年经验、两类证书
// （一张学历证书加一张非学历证书）。
const (
	expectedExperienceYears = 3
	expectedCertifications  = 2
)

var (
	fullDegreeMarkers    = []string{"b.sc", "bsc", "bachelor", "m.sc", "msc", "master", "phd", "doctorate", "hnd", "higher national diploma", "b.tech", "btech", "m.tech", "mtech"}
	partialDegreeMarkers = []string{"ond", "associate", "diploma"}
)

// SectionalAnalysis 不依赖 JD 的基础分析，对解析结果的
// 五个维度各给出 0-100 的完备度评分。
func SectionalAnalysis(parsed *types.ParsedResume) types.SectionalAnalysis {
	return types.SectionalAnalysis{
		Metadata:       metadataScore(parsed.Metadata),
		Education:      educationScore(parsed.Education),
		Skills:         45, // 技能维度使用固定的启发式基准分
		Experience:     experienceScore(parsed.ExperienceDuration),
		Certifications: certificationScore(parsed),
	}
}

// metadataScore 按 name、email、phone、location 的顺序检查联系信息，
// 在第一个缺失字段处停止，得分为已确认字段占比。
func metadataScore(meta types.ContactMetadata) int {
	fields := []string{meta.Name, meta.Email, meta.Phone, meta.Location}
	present := 0
	for _, value := range fields {
		if value == "" {
			break
		}
		present++
	}
	if present == len(fields) {
		return 100
	}
	return present * 100 / len(fields)
}

// educationScore 学历完备度：本科及以上（或 HND）得满分，
// 专科层次（OND/Associate/Diploma）得一半。
func educationScore(entries []types.EducationEntry) int {
	for _, entry := range entries {
		degree := strings.ToLower(entry.Degree)
		for _, marker := range fullDegreeMarkers {
			if strings.Contains(degree, marker) {
				return 100
			}
		}
	}
	for _, entry := range entries {
		degree := strings.ToLower(entry.Degree)
		for _, marker := range partialDegreeMarkers {
			if strings.Contains(degree, marker) {
				return 50
			}
		}
	}
	return 0
}

// experienceScore 工作年限相对行业基准三年的占比。
func experienceScore(duration string) int {
	m := yearsRe.FindStringSubmatch(duration)
	if m == nil {
		return 0
	}
	years := parseLeadingInt(m[1])
	if years >= expectedExperienceYears {
		return 100
	}
	if years > 0 {
		return years * 100 / expectedExperienceYears
	}
	return 0
}

// certificationScore 证书完备度：学历证书与非学历证书各占一半。
func certificationScore(parsed *types.ParsedResume) int {
	count := 0
	if educationScore(parsed.Education) > 0 {
		count++
	}
	if len(parsed.Certifications) > 0 {
		count++
	}
	if count >= expectedCertifications {
		return 100
	}
	return count * 100 / expectedCertifications
}
