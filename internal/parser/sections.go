package parser

import (
	"strings"

	"github.com/zinando/smartapplicant-backend/internal/logger"
	"github.com/zinando/smartapplicant-backend/internal/types"
)

// identifySections 将简历文本切分为各命名节的正文。
// 节标题按归一化后的整行相等匹配，避免正文中偶然出现的
// 关键词（如某条目里提到 "Education"）被误判为标题。
// 无法恢复内容的节不出现在结果中，并按节记录缺陷与扣分。
func (p *ResumeParser) identifySections(text string, card *scoreCard) map[types.SectionKey]string {
	lines := nonEmptyLines(text)

	sections := map[types.SectionKey]string{
		types.SectionContact:         p.extractContactSection(lines, card),
		types.SectionEducation:       p.extractEducationSection(lines, card),
		types.SectionExperience:      p.extractExperienceSection(lines, card),
		types.SectionSkills:          p.extractSkillsSection(lines, card),
		types.SectionCertifications:  p.extractCertificationsSection(lines, card),
		types.SectionCareerObjective: p.extractCareerObjectiveSection(lines, card),
	}

	for key, body := range sections {
		if body == "" {
			delete(sections, key)
		}
	}
	logger.Debug().Int("sections", len(sections)).Msg("简历分节完成")
	return sections
}

// matchesAnyTitle 判断行的归一化形式是否与标题列表中某项完全相等。
func matchesAnyTitle(line string, titles []string) bool {
	norm := normalizeLine(line)
	for _, title := range titles {
		if norm == title {
			return true
		}
	}
	return false
}

// sectionBody 返回标题行之后、下一个边界行之前的正文。
func sectionBody(lines []string, startIdx int, boundaries []string) string {
	endIdx := len(lines)
	for i := startIdx + 1; i < len(lines); i++ {
		if matchesAnyTitle(lines[i], boundaries) {
			endIdx = i
			break
		}
	}
	return strings.TrimSpace(strings.Join(lines[startIdx+1:endIdx], "\n"))
}

// concatTitles 合并多个标题列表作为节边界集合。
func concatTitles(lists ...[]string) []string {
	var out []string
	for _, list := range lists {
		out = append(out, list...)
	}
	return out
}

// extractContactSection 联系区没有自己的标题，
// 定义为第一个节边界行之前的全部内容。
func (p *ResumeParser) extractContactSection(lines []string, card *scoreCard) string {
	boundaries := p.vocab.AllSectionTitles()

	endIdx := len(lines)
	for i, line := range lines {
		if matchesAnyTitle(line, boundaries) {
			endIdx = i
			break
		}
	}

	body := strings.TrimSpace(strings.Join(lines[:endIdx], "\n"))
	if body == "" {
		card.deduct(types.SectionContact, 20,
			"Contact Section - extraction: Your contact information such as your name, email, phone number should all be in the first few lines of your resume before Career Summary, Work Experience, Education, or Skills sections.")
	}
	return body
}

func (p *ResumeParser) extractEducationSection(lines []string, card *scoreCard) string {
	boundaries := concatTitles(p.vocab.OtherBoundaryTitles, p.vocab.SkillsTitles,
		p.vocab.ExperienceTitles, p.vocab.CertificationTitles, p.vocab.CareerObjectiveTitles)

	startIdx := -1
	for i, line := range lines {
		if matchesAnyTitle(line, p.vocab.EducationTitles) {
			startIdx = i
			break
		}
	}
	if startIdx < 0 {
		card.deduct(types.SectionEducation, 20,
			"Education Section - Title: Your resume should contain a clearly marked education section. Mark this off with a clearly stated title like: Education, Academic Background, or Academic Qualifications. Should be written in all upper case letters or proper case.")
		return ""
	}

	body := sectionBody(lines, startIdx, boundaries)
	if body == "" {
		card.deduct(types.SectionEducation, 20, educationContentMessage)
	}
	return body
}

func (p *ResumeParser) extractExperienceSection(lines []string, card *scoreCard) string {
	boundaries := concatTitles(p.vocab.OtherBoundaryTitles, p.vocab.SkillsTitles,
		p.vocab.EducationTitles, p.vocab.CertificationTitles, p.vocab.CareerObjectiveTitles)

	startIdx := -1
	for i, line := range lines {
		if matchesAnyTitle(line, p.vocab.ExperienceTitles) {
			startIdx = i
			break
		}
	}
	if startIdx < 0 {
		card.deduct(types.SectionExperience, 20,
			"Experience Section - title: Your work experience should be clearly stated within your resume. Mark this off with a clearly stated title like: Work Experience, Professional Experience, Employment History, or Career History. Should be written in all upper case letters or proper case. If you have no work experience, you can provide your internship or volunteer experience.")
		return ""
	}

	body := sectionBody(lines, startIdx, boundaries)
	if body == "" {
		card.deduct(types.SectionExperience, 20,
			"Experience Section - content: Provide some infomation about your work history. If you have no work experience, you can provide your internship or volunteer experience. Ensure it is well-formatted with job titles, company names, locations, and dates. Follow a consistent format for all entries.")
	}
	return body
}

func (p *ResumeParser) extractSkillsSection(lines []string, card *scoreCard) string {
	boundaries := concatTitles(p.vocab.OtherBoundaryTitles, p.vocab.EducationTitles,
		p.vocab.ExperienceTitles, p.vocab.CertificationTitles, p.vocab.CareerObjectiveTitles)

	for i, line := range lines {
		// 内联写法：如 "Skills: Python, SQL"
		lower := strings.ToLower(line)
		for _, title := range p.vocab.SkillsTitles {
			if strings.HasPrefix(lower, title+":") {
				return strings.TrimSpace(line[len(title)+1:])
			}
		}

		if matchesAnyTitle(line, p.vocab.SkillsTitles) {
			body := sectionBody(lines, i, boundaries)
			if body == "" {
				card.deduct(types.SectionSkills, 20,
					"Skills Section: Your skills should be listed in the Skills section of your resume. Mark them with a header like 'Skills' or 'Technical Skills'. You use simple rounded bullet point for eack skill. You can group your skills or list them as is (e.g., Python, SQL, Java; or groups like this- Programming: Python, Dart, C++).")
			}
			return body
		}
	}

	card.deduct(types.SectionSkills, 20,
		"Skills Section - title: Your skills should be listed in the Skills section of your resume. Mark them with a header like 'Skills' or 'Technical Skills'. You can use simple rounded bullet point for each skill. You can group your skills or list them as is (e.g., Python, SQL, Java; or groups like this - Programming: Python, Dart, C++).")
	return ""
}

func (p *ResumeParser) extractCertificationsSection(lines []string, card *scoreCard) string {
	boundaries := concatTitles(p.vocab.OtherBoundaryTitles, p.vocab.SkillsTitles,
		p.vocab.ExperienceTitles, p.vocab.EducationTitles, p.vocab.CareerObjectiveTitles)

	startIdx := -1
	for i, line := range lines {
		if matchesAnyTitle(line, p.vocab.CertificationTitles) {
			startIdx = i
			break
		}
	}
	if startIdx < 0 {
		card.deduct(types.SectionCertifications, 20,
			"Certifications Section - title: Your certifications should be clearly stated in the Certifications section of your resume. Mark this off with a clearly stated title like: Certifications, Professional Certifications, or Professional Qualifications. Should be written in all upper case letters or proper case.")
		return ""
	}

	body := sectionBody(lines, startIdx, boundaries)
	if body == "" {
		card.deduct(types.SectionCertifications, 20,
			"Certifications Section - content: Your certifications should be clearly stated in the Certifications section of your resume. Mark this off with a clearly stated title like: Certifications, Professional Certifications, or Professional Qualifications. Should be written in all upper case letters or proper case.")
	}
	return body
}

func (p *ResumeParser) extractCareerObjectiveSection(lines []string, card *scoreCard) string {
	boundaries := concatTitles(p.vocab.OtherBoundaryTitles, p.vocab.ExperienceTitles,
		p.vocab.SkillsTitles, p.vocab.EducationTitles, p.vocab.CertificationTitles)

	startIdx := -1
	for i, line := range lines {
		if matchesAnyTitle(line, p.vocab.CareerObjectiveTitles) {
			startIdx = i
			break
		}
	}
	if startIdx < 0 {
		card.note("Career Objective/Summary Section - title: Your career objective should be clearly stated in the first few lines of your resume before Work Experience, Education, or Skills sections. Mark this off with a clearly stated title like: Career Objective, SUMMARY, or Career Profile or just Objective. Should be written in all upper case letters or proper case.")
		return ""
	}

	body := sectionBody(lines, startIdx, boundaries)
	if body == "" {
		card.deduct(types.SectionCareerObjective, 20,
			"Career Objective/Summary Section - extraction: Your career objective should be clearly stated in the first few lines of your resume before Work Experience, Education, or Skills sections. Mark this off with a clearly stated title like: Career Objective, SUMMARY, or Career Profile or just Objective. Should be written in all upper case letters or proper case.")
	}
	return body
}

// educationContentMessage 教育节为空或无法解析时的整改建议，多个路径共用。
const educationContentMessage = "Education Section - content: Your education should be clearly stated in the Education section of your resume. Ensure it is well-formatted with degrees, institutions, and dates. Follow either a single line format (Degree in Field, Instition, Location, Graduation date. e.g Bachelor of Science in Computer Science, University of Lagos, Lagos State Nigeria, Jan 2020) or a multi-line format (Degree in Field and Graduation date on the first line, Institution and Location on the second line, optional third line to state your class of graduation or CGPA. e.g Bachelor of Science in Computer Science Aug 2020 (on the first line); University of Lagos, Lagos State Nigeria (on the second line); Graduated with First Class Honours (optional, on the third line)). Maintain the same order for all your education entries."
