package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zinando/smartapplicant-backend/internal/types"
)

// TestSectionalAnalysisCompleteResume 各字段齐备的解析结果拿到高分
func TestSectionalAnalysisCompleteResume(t *testing.T) {
	parsed := &types.ParsedResume{
		Metadata: types.ContactMetadata{
			Name:     "Chisom Hamzat",
			Email:    "chisom@gmail.com",
			Phone:    "+2348031234567",
			Location: "Lagos, Nigeria",
		},
		Education:          []types.EducationEntry{{Degree: "B.Sc"}},
		ExperienceDuration: "5 Years of Professional Experience",
		Certifications:     []types.CertificationEntry{{Name: "AWS Certified Cloud Practitioner"}},
	}

	analysis := SectionalAnalysis(parsed)
	assert.Equal(t, 100, analysis.Metadata)
	assert.Equal(t, 100, analysis.Education)
	assert.Equal(t, 100, analysis.Experience)
	assert.Equal(t, 100, analysis.Certifications)
	assert.Equal(t, 45, analysis.Skills)
}

// TestMetadataScoreStopsAtFirstGap 联系信息按顺序检查，遇到第一个缺失即停止
func TestMetadataScoreStopsAtFirstGap(t *testing.T) {
	// 姓名缺失：即使其余字段齐备也得 0
	assert.Equal(t, 0, metadataScore(types.ContactMetadata{
		Email: "a@b.com", Phone: "+2348031234567", Location: "Lagos",
	}))

	// 姓名与邮箱在、电话缺失：得 2/4
	assert.Equal(t, 50, metadataScore(types.ContactMetadata{
		Name: "Jane Doe", Email: "a@b.com", Location: "Lagos",
	}))
}

// TestEducationScoreByDegreeClass 学历层次决定教育完备度
func TestEducationScoreByDegreeClass(t *testing.T) {
	cases := []struct {
		degree string
		want   int
	}{
		{"B.Sc", 100},
		{"Master of Science", 100},
		{"Higher National Diploma", 100},
		{"OND", 50},
		{"Diploma", 50},
		{"", 0},
	}
	for _, tc := range cases {
		entries := []types.EducationEntry{{Degree: tc.degree}}
		assert.Equal(t, tc.want, educationScore(entries), "学位: %q", tc.degree)
	}
	assert.Equal(t, 0, educationScore(nil))
}

// TestExperienceScoreAgainstBaseline 相对三年基准的年限占比
func TestExperienceScoreAgainstBaseline(t *testing.T) {
	assert.Equal(t, 100, experienceScore("5 Years of Professional Experience"))
	assert.Equal(t, 100, experienceScore("3 Years of Professional Experience"))
	assert.Equal(t, 33, experienceScore("1 Years of Professional Experience"))
	assert.Equal(t, 0, experienceScore("Less than a month of Professional Experience"))
	assert.Equal(t, 0, experienceScore(""))
}

// TestCertificationScoreHalves 学历证书与非学历证书各占一半
func TestCertificationScoreHalves(t *testing.T) {
	withBoth := &types.ParsedResume{
		Education:      []types.EducationEntry{{Degree: "B.Sc"}},
		Certifications: []types.CertificationEntry{{Name: "PMP"}},
	}
	assert.Equal(t, 100, certificationScore(withBoth))

	onlyDegree := &types.ParsedResume{Education: []types.EducationEntry{{Degree: "B.Sc"}}}
	assert.Equal(t, 50, certificationScore(onlyDegree))

	assert.Equal(t, 0, certificationScore(&types.ParsedResume{}))
}
