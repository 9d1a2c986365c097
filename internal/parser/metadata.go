package parser

import (
	"regexp"
	"strings"

	"github.com/zinando/smartapplicant-backend/internal/types"
)

var (
	emailRe = regexp.MustCompile(`[\w.\-]+@[\w.\-]+\.\w+`)

	// namePatternRe 姓名行模式：2 到 4 个部分，每部分为全大写、
	// 首字母大写或单字母缩写，可带 Jr. 之类后缀。
	namePatternRe = regexp.MustCompile(
		`^(?:(?:[A-ZÀ-ÖØ-Ý]{2,}|[A-ZÀ-ÖØ-Ý][a-zà-öø-ÿ'’\-]+|[A-Z]\.?)\s+){1,3}` +
			`(?:[A-ZÀ-ÖØ-Ý]{2,}|[A-ZÀ-ÖØ-Ý][a-zà-öø-ÿ'’\-]+|[A-Z]\.?)` +
			`(?:\s+(?:Jr\.?|Sr\.?|II|III|IV|V))?$`)

	// locationPatternRe 形如 "Lagos, Nigeria" 的首字母大写词组
	locationPatternRe = regexp.MustCompile(
		`\b[A-Z][a-z]+(?:\s[A-Z][a-z]+)*(?:,\s*[A-Z][a-z]+(?:\s[A-Z][a-z]+)*){0,2}\b`)

	containsDigitRe = regexp.MustCompile(`\d`)
)

// parseMetadata 从联系区提取姓名、邮箱、电话与所在地。
// 邮箱、电话、姓名缺失分别扣 6、6、8 分；
// 所在地缺失只记录建议，按既有行为不扣分。
func (p *ResumeParser) parseMetadata(sections map[types.SectionKey]string, card *scoreCard) types.ContactMetadata {
	var meta types.ContactMetadata
	contactText, ok := sections[types.SectionContact]
	if !ok || contactText == "" {
		return meta
	}

	emails := emailRe.FindAllString(contactText, -1)
	if len(emails) > 0 {
		meta.Email = emails[0]
	} else {
		card.deduct(types.SectionContact, 6,
			"Contact Section - email: Ensure your email is correctly formatted: e.g yourname@yourdomain.com. For best practice, email should be within the first three lines in your resume, usually below your name.")
	}

	for _, number := range p.phoneExtractor.Extract(contactText) {
		if isCanonicalPhone(number) {
			meta.Phone = number
			break
		}
	}
	if meta.Phone == "" {
		card.deduct(types.SectionContact, 6,
			"Contact Section - phone: Ensure your phone number is correctly formatted. For best practice, phone number should be within the first three lines in your resume, usually below your name. Use international format: e.g +2341234567890 or 1234567890.")
	}

	meta.Name = p.extractName(contactText, emails)
	if meta.Name == "" {
		card.deduct(types.SectionContact, 8,
			"Contact Section - name: Ensure your name is clearly stated at the top of your resume. It should be the first line before your contact information. Name should be in all uppercase letters or proper case and should be bolded or larger than the rest of the text (e.g: Chisom Ayokunle Hamzat, Chisom A. Hamzat, C. A. Hamzat, or CHISOM HAMZAT). Avoid Abbreviations or using initials.")
	}

	meta.Location = p.extractLocation(contactText)
	if meta.Location == "" {
		card.note("Contact Section - address: Ensure your location is clearly stated. It should be in the format: City, State/Province, Country (e.g: Lagos, Nigeria). Location should be within the first five lines in your resume, usually below your name.")
	}

	return meta
}

// extractName 有序策略链提取姓名：
// 先在前三行中找符合姓名模式的行，再回退到第一个邮箱之前的最后一行。
func (p *ResumeParser) extractName(contactText string, emails []string) string {
	lines := nonEmptyLines(contactText)
	for i, line := range lines {
		lines[i] = normalizeUnicode(line)
	}

	limit := len(lines)
	if limit > 3 {
		limit = 3
	}
	for _, line := range lines[:limit] {
		if p.looksLikeName(line) {
			return line
		}
	}

	if len(emails) > 0 {
		preEmail, _, found := strings.Cut(contactText, emails[0])
		if found {
			preLines := nonEmptyLines(preEmail)
			if len(preLines) > 0 {
				candidate := normalizeUnicode(preLines[len(preLines)-1])
				if p.looksLikeName(candidate) && !containsDigitRe.MatchString(candidate) {
					return candidate
				}
			}
		}
	}
	return ""
}

// looksLikeName 姓名行校验：满足姓名模式且不含已知技能或职位名称。
func (p *ResumeParser) looksLikeName(line string) bool {
	lower := strings.ToLower(line)
	return namePatternRe.MatchString(line) &&
		!p.mentionsKnownSkill(lower) &&
		!p.mentionsJobTitle(lower)
}

// extractLocation 有序策略链提取所在地：
// 先在前五行中找 "City, Country" 式的大写词组，
// 再回退到 "Location:"、"Address:"、"based in" 标记之后的文本。
func (p *ResumeParser) extractLocation(contactText string) string {
	lines := nonEmptyLines(contactText)
	limit := len(lines)
	if limit > 5 {
		limit = 5
	}
	for _, line := range lines[:limit] {
		lower := strings.ToLower(line)
		if p.mentionsKnownSkill(lower) || p.mentionsJobTitle(lower) {
			continue
		}
		if matched := locationPatternRe.FindString(line); matched != "" {
			return strings.TrimSpace(matched)
		}
	}

	lowerText := strings.ToLower(contactText)
	for _, marker := range []string{"location:", "address:", "based in"} {
		pos := strings.Index(lowerText, marker)
		if pos < 0 {
			continue
		}
		rest := contactText[pos+len(marker):]
		firstLine := strings.TrimSpace(strings.SplitN(rest, "\n", 2)[0])
		if firstLine != "" {
			return strings.Trim(firstLine, ",. ")
		}
	}
	return ""
}
