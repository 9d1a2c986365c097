package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zinando/smartapplicant-backend/internal/types"
)

func parseCertificationsText(t *testing.T, body string) *types.ParsedResume {
	t.Helper()
	p := NewResumeParser()
	return p.Parse("Certifications\n" + body)
}

// TestParseCertificationsSingleLine 单行格式：名称、机构、日期用分隔符拆开
func TestParseCertificationsSingleLine(t *testing.T) {
	result := parseCertificationsText(t,
		"AWS Certified Cloud Practitioner - Amazon Web Services - Jul 2023")

	require.Len(t, result.Certifications, 1)
	cert := result.Certifications[0]
	assert.Equal(t, "AWS Certified Cloud Practitioner", cert.Name)
	assert.Equal(t, "Amazon Web Services", cert.Issuer)
	assert.Equal(t, "Jul 2023", cert.Date)
	assert.InDelta(t, 20.0, result.SectionScores[types.SectionCertifications], 0.001)
}

// TestParseCertificationsTwoLine 双行格式：证书行与单独的日期行成对出现
func TestParseCertificationsTwoLine(t *testing.T) {
	result := parseCertificationsText(t,
		"AWS Certified Cloud Practitioner, Amazon Web Services\n"+
			"Jul 2023\n"+
			"Google Data Analytics Certificate, Google\n"+
			"2024")

	require.Len(t, result.Certifications, 2)
	assert.Equal(t, "AWS Certified Cloud Practitioner", result.Certifications[0].Name)
	assert.Equal(t, "Jul 2023", result.Certifications[0].Date)
	assert.Equal(t, "Google Data Analytics Certificate", result.Certifications[1].Name)
	assert.Equal(t, "2024", result.Certifications[1].Date)
}

// TestParseCertificationsDeduplicates 相同的 (名称, 机构, 日期) 三元组只保留一条
func TestParseCertificationsDeduplicates(t *testing.T) {
	result := parseCertificationsText(t,
		"PMP - PMI - 2020\nPMP - PMI - 2020")

	assert.Len(t, result.Certifications, 1)
	assert.InDelta(t, 20.0, result.SectionScores[types.SectionCertifications], 0.001)
}

// TestParseCertificationsMissingIssuerAndDate 机构与日期缺失分别扣分，条目保留
func TestParseCertificationsMissingIssuerAndDate(t *testing.T) {
	result := parseCertificationsText(t, "Scrum Master Certification")

	require.Len(t, result.Certifications, 1)
	assert.Equal(t, "Scrum Master Certification", result.Certifications[0].Name)
	assert.Empty(t, result.Certifications[0].Issuer)
	assert.Empty(t, result.Certifications[0].Date)

	assert.Equal(t, 1, countErrorsContaining(result.Errors, "Certifications Section - issuer"))
	assert.Equal(t, 1, countErrorsContaining(result.Errors, "Certifications Section - date"))
	assert.InDelta(t, 0.0, result.SectionScores[types.SectionCertifications], 0.001)
}

// TestParseCertificationsMissingSection 无证书节时扣除全部证书分
func TestParseCertificationsMissingSection(t *testing.T) {
	p := NewResumeParser()
	result := p.Parse("Jane Doe\njane@gmail.com")

	assert.Empty(t, result.Certifications)
	assert.InDelta(t, 0.0, result.SectionScores[types.SectionCertifications], 0.001)
	assert.Equal(t, 1, countErrorsContaining(result.Errors, "Certifications Section - title"))
}

// TestIsTwoLineCertFormat 双行布局判定
func TestIsTwoLineCertFormat(t *testing.T) {
	assert.True(t, isTwoLineCertFormat([]string{"AWS Certified Cloud Practitioner, Amazon", "Jul 2023"}))
	assert.False(t, isTwoLineCertFormat([]string{"PMP - PMI - 2020", "CISSP - ISC2 - 2021"}))
	assert.False(t, isTwoLineCertFormat([]string{"PMP - PMI - 2020"}))
}
