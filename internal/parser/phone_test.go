package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPhoneExtractorNormalizesToE164 不同写法的同一号码统一到 E.164 并去重
func TestPhoneExtractorNormalizesToE164(t *testing.T) {
	e := NewPhoneExtractor("NG", []string{"US", "GB"})

	found := e.Extract("Call +234 803 123 4567 or 08031234567 anytime.")
	require.Len(t, found, 1)
	assert.Equal(t, "+2348031234567", found[0])
}

// TestPhoneExtractorFallbackRegions 首选区域校验失败时尝试后备区域
func TestPhoneExtractorFallbackRegions(t *testing.T) {
	e := NewPhoneExtractor("NG", []string{"US"})

	found := e.Extract("Reach me at (415) 555-2671.")
	require.Len(t, found, 1)
	assert.Equal(t, "+14155552671", found[0])
}

// TestPhoneExtractorKeepsUnvalidatedRaw 无法校验的候选保留清理后的数字串
func TestPhoneExtractorKeepsUnvalidatedRaw(t *testing.T) {
	e := NewPhoneExtractor("NG", nil)

	found := e.Extract("ref no 0000 1111 2222")
	require.NotEmpty(t, found)
	assert.Equal(t, "000011112222", found[0])
}

// TestPhoneExtractorNoCandidates 无电话候选时返回空
func TestPhoneExtractorNoCandidates(t *testing.T) {
	e := NewPhoneExtractor("NG", nil)
	assert.Empty(t, e.Extract("no digits here"))
}

// TestIsCanonicalPhone 国际规范格式判定
func TestIsCanonicalPhone(t *testing.T) {
	assert.True(t, isCanonicalPhone("+2348031234567"))
	assert.True(t, isCanonicalPhone("+14155552671 x123"))
	assert.False(t, isCanonicalPhone("08031234567"))
	assert.False(t, isCanonicalPhone("+12345"))
}
