package parser

import (
	"regexp"
	"strings"

	"github.com/zinando/smartapplicant-backend/internal/types"
)

var (
	certDashVariantRe = regexp.MustCompile("[‒–—―]")
	certSeparatorRe   = regexp.MustCompile(`\s*(?:–|-|\||,)\s*`)

	// certDatePatterns 日期写法按优先级尝试：月 年、MM/YYYY、纯年份、区间
	certDatePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)((?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s+\d{4})`),
		regexp.MustCompile(`(\d{1,2}/\d{4})`),
		regexp.MustCompile(`(\b\d{4}\b)`),
		regexp.MustCompile(`(?i)((?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s+\d{4}\s*(?:-|to)\s*(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s+\d{4})`),
	}
)

const certNameMessage = "Certifications Section - name: List your certifications in single or double lines. For single line, the certificate name be followed by the issuer name. These two should be separated by a comma (,), pipe (|) or hyphen (-). For double line, the first line should contain the certificate name and issuer name separated by a comma (,) or pipe (|), then the date of issue, separated by a hyphen (-). For double line: the certificate and issuer on the first line, the date on the second line."

// parseCertifications 解析证书节。
// 自动判定单行或双行布局（双行为证书行加单独日期行）；
// 每条按日期、名称、颁发机构拆解，名称缺失的条目丢弃，
// 颁发机构或日期缺失按条目数摊薄扣分但条目保留。
func (p *ResumeParser) parseCertifications(sections map[types.SectionKey]string, card *scoreCard) []types.CertificationEntry {
	certText, ok := sections[types.SectionCertifications]
	if !ok || strings.TrimSpace(certText) == "" {
		return nil
	}

	lines := nonEmptyLines(certText)
	lineCount := len(lines)
	var certs []types.CertificationEntry

	if isTwoLineCertFormat(lines) {
		// 证书行与日期行成对出现
		for i := 0; i+1 < len(lines); i += 2 {
			cert := parseCertificationLine(lines[i])
			if _, date := extractCertDate(lines[i+1], false); date != "" {
				cert.Date = date
			}
			if cert.Name != "" {
				certs = append(certs, cert)
			} else {
				card.deduct(types.SectionCertifications, round2(20/float64(lineCount)), certNameMessage)
			}
		}
	} else {
		for _, line := range lines {
			cert := parseCertificationLine(line)
			if cert.Name != "" {
				certs = append(certs, cert)
			} else {
				card.deduct(types.SectionCertifications, round2(20/float64(lineCount)), certNameMessage)
			}
		}
	}

	if len(certs) == 0 {
		return nil
	}

	unique := dedupeCertifications(certs)
	perEntry := float64(len(unique))
	for _, cert := range unique {
		if cert.Issuer == "" {
			card.deduct(types.SectionCertifications, round2(10/perEntry),
				"Certifications Section - issuer: State the name of your certificate issuer immediately after the certificate name. These two should be separated by a comma (,), pipe (|) or hyphen (-). (e.g 'AWS Certified Cloud Practitioner – Amazon Web Services').")
		}
		if cert.Date == "" {
			card.deduct(types.SectionCertifications, round2(10/perEntry),
				"Certifications Section - date: State the date of issue of your certificate. This should be on the first line, separated by a hyphen (-) from the other content. Or on the second line alone. (e.g 'AWS Certified Cloud Practitioner – Amazon Web Services - Jul 2023').")
		}
	}
	return unique
}

// normalizeCertText 证书行归一化：各类破折号替换为 " - " 并折叠空白。
func normalizeCertText(text string) string {
	text = certDashVariantRe.ReplaceAllString(text, " - ")
	return strings.TrimSpace(multiSpaceRe.ReplaceAllString(text, " "))
}

// extractCertDate 从文本中按优先级提取日期并剥离。
// lone 为 true 时要求整行只含日期，否则返回原文与空日期。
func extractCertDate(text string, lone bool) (string, string) {
	for _, re := range certDatePatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		date := m[1]
		if lone {
			if strings.TrimSpace(text) == strings.TrimSpace(date) {
				return "", date
			}
			return text, ""
		}
		cleaned := strings.Trim(strings.Replace(text, date, "", 1), " ,-")
		return cleaned, date
	}
	return text, ""
}

// parseCertificationLine 把一行证书文本拆解为名称、机构与日期。
func parseCertificationLine(line string) types.CertificationEntry {
	line = normalizeCertText(line)
	var cert types.CertificationEntry

	lineWithoutDate, date := extractCertDate(line, false)
	cert.Date = date

	parts := certSeparatorRe.Split(lineWithoutDate, 2)
	if len(parts) == 2 {
		cert.Name = strings.TrimSpace(parts[0])
		cert.Issuer = strings.TrimSpace(parts[1])
	} else {
		cert.Name = strings.TrimSpace(lineWithoutDate)
	}
	return cert
}

// isTwoLineCertFormat 双行布局判定：首行不是单独日期且第二行是单独日期。
func isTwoLineCertFormat(lines []string) bool {
	if len(lines) < 2 {
		return false
	}
	_, firstDate := extractCertDate(lines[0], true)
	_, secondDate := extractCertDate(lines[1], true)
	return firstDate == "" && secondDate != ""
}

// dedupeCertifications 折叠名称、机构、日期三元组相同的重复条目。
func dedupeCertifications(certs []types.CertificationEntry) []types.CertificationEntry {
	seen := make(map[types.CertificationEntry]bool, len(certs))
	var out []types.CertificationEntry
	for _, cert := range certs {
		if !seen[cert] {
			seen[cert] = true
			out = append(out, cert)
		}
	}
	return out
}
