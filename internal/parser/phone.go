package parser

import (
	"regexp"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

var (
	phoneCandidateRe = regexp.MustCompile(`\+?\d[\d\s().-]{8,}\d`)
	nonPhoneCharRe   = regexp.MustCompile(`[^\d+]`)
	canonicalPhoneRe = regexp.MustCompile(`^\+\d{10,15}(?: x\d{1,5})?$`)
)

// PhoneExtractor 从自由文本中提取并规范化电话号码。
// 先按首选区域尝试国际化校验，再依次尝试其余支持区域；
// 校验全部失败的候选保留清理后的原始数字串，不静默丢弃。
type PhoneExtractor struct {
	primaryRegion    string
	supportedRegions []string
}

// NewPhoneExtractor 创建电话提取器。primary 优先尝试，supported 为后备区域。
func NewPhoneExtractor(primary string, supported []string) *PhoneExtractor {
	return &PhoneExtractor{primaryRegion: primary, supportedRegions: supported}
}

// Extract 提取文本中的电话号码，输出去重后的 E.164 格式
// （无法校验的候选输出清理后的原始串）。
func (e *PhoneExtractor) Extract(text string) []string {
	candidates := phoneCandidateRe.FindAllString(text, -1)
	if len(candidates) == 0 {
		return nil
	}

	seen := make(map[string]bool)
	var found []string
	for _, candidate := range candidates {
		raw := nonPhoneCharRe.ReplaceAllString(candidate, "")
		if raw == "" {
			continue
		}

		formatted := e.validate(raw, e.primaryRegion)
		if formatted == "" {
			for _, region := range e.supportedRegions {
				if formatted = e.validate(raw, region); formatted != "" {
					break
				}
			}
		}
		if formatted == "" {
			formatted = raw
		}

		if !seen[formatted] {
			seen[formatted] = true
			found = append(found, formatted)
		}
	}
	return found
}

// validate 按指定区域解析并校验号码，成功时返回 E.164 格式。
func (e *PhoneExtractor) validate(raw, region string) string {
	num, err := phonenumbers.Parse(raw, region)
	if err != nil {
		return ""
	}
	if !phonenumbers.IsValidNumber(num) {
		return ""
	}
	return phonenumbers.Format(num, phonenumbers.E164)
}

// isCanonicalPhone 判断号码是否为完整国际格式（+国家码与 10-15 位数字）。
func isCanonicalPhone(number string) bool {
	return canonicalPhoneRe.MatchString(strings.TrimSpace(number))
}
