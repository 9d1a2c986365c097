package parser

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/zinando/smartapplicant-backend/internal/types"
)

// 单行格式的日期模式（月份缩写可选，支持 "Jan 2016 - Dec 2020" 式区间）
var oneLineDateRe = regexp.MustCompile(
	`(?i)(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Sept|Oct|Nov|Dec)?\.?\s?\d{4}` +
		`(?:\s?[-–to]+\s?(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Sept|Oct|Nov|Dec)?\.?\s?\d{4})?`)

// 多行格式的日期模式（支持完整月份名）
var multiLineDateRe = regexp.MustCompile(
	`(?i)(?:Jan(?:uary)?|Feb(?:ruary)?|Mar(?:ch)?|Apr(?:il)?|May|Jun(?:e)?|Jul(?:y)?|Aug(?:ust)?|` +
		`Sep(?:tember)?|Oct(?:ober)?|Nov(?:ember)?|Dec(?:ember)?)?\.?\s*\d{4}` +
		`(?:\s*(?:–|-|to)\s*(?:Jan(?:uary)?|Feb(?:ruary)?|Mar(?:ch)?|Apr(?:il)?|May|Jun(?:e)?|` +
		`Jul(?:y)?|Aug(?:ust)?|Sep(?:tember)?|Oct(?:ober)?|Nov(?:ember)?|Dec(?:ember)?)?\.?\s*\d{4})?`)

var (
	fieldSplitRe    = regexp.MustCompile(`(?i)\s+in\s+`)
	trailingJunkRe  = regexp.MustCompile(`[\s,–-]+$`)
	descriptionNote = "Education Section - description: You can use an extra line to provide additional information about your education, such as your Class of graduation or CGPA or something about your school project."
)

// eduGroup 教育节分组后的一个条目：单行格式使用 mainLine，
// 多行格式使用 degreeLine 与 institutionLine。
type eduGroup struct {
	mainLine        string
	degreeLine      string
	institutionLine string
	descriptionLine string
}

func (g *eduGroup) completeMultiLine() bool {
	return g.degreeLine != "" && g.institutionLine != ""
}

// round2 保留两位小数的四舍五入，用于按条目数均摊的扣分。
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// parseEducation 解析教育节。自动识别单行、学位在前或院校在前三种布局，
// 逐条提取学位、专业、院校、地点与日期；缺失子字段按条目数摊薄扣分，
// 使多条目简历不会因同一字段的普遍缺失被过度惩罚。
func (p *ResumeParser) parseEducation(sections map[types.SectionKey]string, card *scoreCard) []types.EducationEntry {
	eduText, ok := sections[types.SectionEducation]
	if !ok || eduText == "" {
		return nil
	}

	lines := nonEmptyLines(eduText)
	if len(lines) == 0 {
		card.deduct(types.SectionEducation, 20, educationContentMessage)
		return nil
	}

	formatType := p.identifyEducationFormat(lines[0])
	if formatType == "" {
		card.deduct(types.SectionEducation, 20,
			"Education Section - format: Your education data should follow a clear format. Ensure each entry has a degree, institution, and date. Use one of the following formats: Degree First line (e.g., B.Sc in Computer Science) and institution second line, Institution First line (e.g., University of Lagos, B.Sc in Computer Science) and degree on the second line, or One Line (e.g., B.Sc in Computer Science, University of Lagos, 2020). Use an extra 3rd or second line to provide a extra information like your Class of graduation or CGPA etc.")
		return nil
	}

	var groups []eduGroup
	if formatType == "one_line" {
		groups = p.groupOneLineEntries(lines, card)
	} else {
		groups = p.groupMultiLineEntries(lines, card)
	}

	const inconsistentFormatMessage = "Education Section - format: Your education history should be presented following a consistent format. Ensure it is well-formatted with degrees, institutions, and dates. Follow either a single line format (Degree in Field, Instition, Location, Graduation date. e.g Bachelor of Science in Computer Science, University of Lagos, Lagos State Nigeria, Jan 2020) or a multi-line format (Degree in Field and Graduation date on the first line, Institution and Location on the second line, optional third line to state your class of graduation or CGPA. e.g Bachelor of Science in Computer Science Aug 2020 (on the first line); University of Lagos, Lagos State Nigeria (on the second line); Graduated with First Class Honours (optional, on the third line)). Maintain the same order for all your education entries."
	if len(groups) == 0 {
		card.deduct(types.SectionEducation, 20, inconsistentFormatMessage)
		return nil
	}

	var entries []types.EducationEntry
	if formatType == "one_line" {
		entries = p.parseOneLineEntries(groups, card)
	} else {
		entries = p.parseMultiLineEntries(groups, card)
	}
	if len(entries) == 0 {
		card.deduct(types.SectionEducation, 20, inconsistentFormatMessage)
		return nil
	}

	for i := range entries {
		entries[i].Degree = normalizeUnicode(entries[i].Degree)
		entries[i].Field = normalizeUnicode(entries[i].Field)
		entries[i].Institution = normalizeUnicode(entries[i].Institution)
		entries[i].Location = normalizeUnicode(entries[i].Location)
		entries[i].Date = normalizeUnicode(entries[i].Date)
		entries[i].Description = normalizeUnicode(entries[i].Description)
	}
	return dedupeEducation(entries)
}

// identifyEducationFormat 由首个内容行判定教育节布局。
func (p *ResumeParser) identifyEducationFormat(firstLine string) string {
	isDegree := p.degreeLineRe.MatchString(firstLine)
	isInstitution := p.institutionLineRe.MatchString(firstLine)
	switch {
	case isDegree && isInstitution:
		return "one_line"
	case isInstitution:
		return "institution_first"
	case isDegree:
		return "degree_first"
	}
	return ""
}

// groupMultiLineEntries 把连续行聚合为多行格式条目：
// 学位行与院校行齐备后，下一个既非学位也非院校的行作为可选描述行并关闭条目。
func (p *ResumeParser) groupMultiLineEntries(lines []string, card *scoreCard) []eduGroup {
	var groups []eduGroup
	var current eduGroup
	complete := false

	closeEntry := func() {
		groups = append(groups, current)
		if current.descriptionLine == "" {
			card.note(descriptionNote)
		}
		current = eduGroup{}
		complete = false
	}

	for i, line := range lines {
		isDegree := p.degreeLineRe.MatchString(line)
		isInstitution := p.institutionLineRe.MatchString(line)

		if current.completeMultiLine() {
			if !complete && !isDegree && !isInstitution {
				current.descriptionLine = line
				complete = true
			} else if isDegree || isInstitution {
				complete = true
			}
		}
		if complete {
			closeEntry()
		}

		if isDegree {
			current.degreeLine = line
		} else if isInstitution {
			current.institutionLine = line
		}

		if i == len(lines)-1 && current.completeMultiLine() {
			groups = append(groups, current)
			if current.descriptionLine == "" {
				card.note(descriptionNote)
			}
		}
	}
	return groups
}

// groupOneLineEntries 单行格式分组：含学位或院校关键词的行作为主行，
// 其后第一个不含学位关键词的行作为可选描述行。
func (p *ResumeParser) groupOneLineEntries(lines []string, card *scoreCard) []eduGroup {
	var groups []eduGroup
	var current eduGroup
	complete := false

	for i, line := range lines {
		isDegree := p.degreeLineRe.MatchString(line)
		isInstitution := p.institutionLineRe.MatchString(line)

		if current.mainLine != "" {
			if !complete && !isDegree {
				current.descriptionLine = line
				complete = true
			} else if isDegree || isInstitution {
				complete = true
			}
		}
		if complete {
			groups = append(groups, current)
			if current.descriptionLine == "" {
				card.note(descriptionNote)
			}
			current = eduGroup{}
			complete = false
		}

		if isDegree || isInstitution {
			current.mainLine = normalizeDocText(line)
		}

		if i == len(lines)-1 && current.mainLine != "" {
			groups = append(groups, current)
			if current.descriptionLine == "" {
				card.note(descriptionNote)
			}
		}
	}
	return groups
}

// parseOneLineEntries 解析单行格式条目：先剥离行尾日期，
// 再按 "学位 in 专业" 与 "院校, 地点" 拆分。
func (p *ResumeParser) parseOneLineEntries(groups []eduGroup, card *scoreCard) []types.EducationEntry {
	entryCount := len(groups)
	var results []types.EducationEntry

	for _, group := range groups {
		mainLine := strings.TrimSpace(group.mainLine)
		if mainLine == "" {
			continue
		}

		line, date := extractOneLineDate(mainLine)

		degree, field := p.extractDegreeAndField(line)
		lineWithoutDegree := line
		if degree != "" && field != "" {
			degreeFieldText := degree + " in " + field
			if strings.Contains(degree, "in") {
				degreeFieldText = degree + " " + field
			}
			lineWithoutDegree = strings.Trim(strings.ReplaceAll(line, degreeFieldText, ""), ", ")
		}

		institution, location := p.extractInstitutionAndLocation(lineWithoutDegree)

		// 顺序颠倒的行（院校在前）再按完整行重试
		if degree == "" || field == "" {
			if guess, _ := p.extractInstitutionAndLocation(line); guess != "" {
				degree, field = p.extractDegreeAndField(line)
			}
		}

		if degree == "" || institution == "" {
			continue
		}

		if location == "" {
			card.deduct(types.SectionEducation, round2(4/float64(entryCount)),
				"Education Section - location: State your institution locattion after your institution name, separating them by a comma (e.g BSc in Computer Science, University of Ibadan, Oyo State Nigeria - Jun 2012).")
		}
		if date == "" {
			card.deduct(types.SectionEducation, round2(4/float64(entryCount)),
				"Education Section - date: Ensure you provide the date of graduation or duration of attendance for each education entry. This should be in the format: Jan 2020 - Dec 2020 or Jan 2020. Note the date format (Month Year or you can use just the year). You can write the month name in full or just the first three letters (January or Jan). It should be separated by a dash from the main content (e.g: BSc in Computer Science, Federal University of Owerri, Imo State Nigeria - Jan 2020 - Dec 2020).")
		}
		if field == "" {
			card.deduct(types.SectionEducation, round2(4/float64(entryCount)),
				`Education Section - field: Ensure you provide the field of study for each education entry. This should be in the format: BSc in Computer Science, MSc in Software Engineering, etc where the degree and the field are separated by the text "in".`)
		}

		results = append(results, types.EducationEntry{
			Degree:      degree,
			Field:       field,
			Institution: institution,
			Location:    location,
			Date:        date,
			Description: group.descriptionLine,
		})
	}
	return results
}

// parseMultiLineEntries 解析多行格式条目：日期优先取学位行行尾，
// 否则从院校行剥离；学位与专业按 " in " 拆分，院校与地点按首个逗号拆分。
func (p *ResumeParser) parseMultiLineEntries(groups []eduGroup, card *scoreCard) []types.EducationEntry {
	entryCount := len(groups)
	var results []types.EducationEntry

	for _, group := range groups {
		degreeLine := strings.TrimSpace(group.degreeLine)
		institutionLine := strings.TrimSpace(group.institutionLine)
		if degreeLine == "" || institutionLine == "" {
			continue
		}

		degreeLineWithoutDate, date := extractMultiLineDate(degreeLine)
		if date == "" {
			institutionLine, date = extractMultiLineDate(institutionLine)
		}

		degree, field := splitDegreeField(degreeLineWithoutDate)
		institution, location := splitOnFirstComma(institutionLine)

		if location == "" {
			card.deduct(types.SectionEducation, round2(4/float64(entryCount)),
				"Education Section - location: Ensure you provide the location of your institution. The institution location should be clearly stated and separated from the institution name by a comma (e.g University of Abuja, Abuja Nigeria). This should be on the first line if the degree is on the second line or on the second line if the degree is on the first line.")
		}
		if field == "" {
			card.deduct(types.SectionEducation, round2(4/float64(entryCount)),
				`Education Section - field: Ensure you provide the field of study for each education entry. This should be in the format: BSc in Computer Science, MSc in Software Engineering, etc Where the degree and the field are separated by the text "in". This should be on the first line if the institution is on the second line or on the second line if the institution is on the first line.`)
		}
		if date == "" {
			card.deduct(types.SectionEducation, round2(4/float64(entryCount)),
				"Education Section - date: Ensure you provide the date of graduation or duration of attendance for each education entry. This should be in the format: Jan 2020 - Dec 2020 or Jan 2020. Note the date format (Month Year or you can use just the year). You can write the month name in full or just the first three letters (January or Jan). The date should be on the far right of the either the Institution line or the degree line (e.g: BSc in Computer Science         Jan 2020 - Dec 2020) or (University of Lagos, Lagos State Nigeria         Dec 2020).")
		}

		results = append(results, types.EducationEntry{
			Degree:      degree,
			Field:       field,
			Institution: institution,
			Location:    location,
			Date:        date,
			Description: group.descriptionLine,
		})
	}
	return results
}

// extractOneLineDate 从单行条目中剥离日期，返回清理后的文本与日期。
func extractOneLineDate(text string) (string, string) {
	match := oneLineDateRe.FindString(text)
	if match == "" {
		return text, ""
	}
	cleaned := strings.Trim(strings.Replace(text, match, "", 1), " ,–-")
	return cleaned, strings.TrimSpace(match)
}

// extractMultiLineDate 从多行条目的某一行剥离日期，文本先做文档归一化。
func extractMultiLineDate(text string) (string, string) {
	text = normalizeDocText(text)
	match := multiLineDateRe.FindString(text)
	if match == "" {
		return strings.TrimSpace(text), ""
	}
	date := strings.TrimSpace(strings.Trim(match, "–- "))
	cleaned := strings.Replace(text, match, "", 1)
	cleaned = strings.TrimSpace(trailingJunkRe.ReplaceAllString(cleaned, ""))
	return cleaned, date
}

// extractDegreeAndField 按长度降序尝试学位关键词（大小写敏感以减少误判），
// 匹配 "学位 [in] 专业" 结构。
func (p *ResumeParser) extractDegreeAndField(text string) (string, string) {
	degrees := make([]string, len(p.vocab.DegreeKeywords))
	copy(degrees, p.vocab.DegreeKeywords)
	sort.SliceStable(degrees, func(i, j int) bool { return len(degrees[i]) > len(degrees[j]) })

	for _, degree := range degrees {
		re := regexp.MustCompile(`(` + regexp.QuoteMeta(degree) + `)\s*(in)?\s*([\w &/-]+)`)
		if m := re.FindStringSubmatch(text); m != nil {
			return m[1], strings.TrimSpace(m[3])
		}
	}
	return "", ""
}

// extractInstitutionAndLocation 含院校关键词的行按逗号拆为院校与地点。
func (p *ResumeParser) extractInstitutionAndLocation(text string) (string, string) {
	lower := strings.ToLower(text)
	for _, keyword := range p.vocab.InstitutionKeywords {
		if strings.Contains(lower, strings.ToLower(keyword)) {
			parts := strings.Split(text, ",")
			institution := strings.TrimSpace(parts[0])
			location := ""
			if len(parts) > 1 {
				location = strings.TrimSpace(strings.Join(parts[1:], ","))
			}
			return institution, location
		}
	}
	return "", ""
}

// splitDegreeField 按 " in " 拆分学位与专业。
func splitDegreeField(text string) (string, string) {
	parts := fieldSplitRe.Split(text, 2)
	if len(parts) >= 2 {
		return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	}
	return strings.TrimSpace(text), ""
}

// splitOnFirstComma 按首个逗号拆分院校与地点。
func splitOnFirstComma(line string) (string, string) {
	if before, after, found := strings.Cut(line, ","); found {
		return strings.TrimSpace(before), strings.TrimSpace(after)
	}
	return strings.TrimSpace(line), ""
}

// dedupeEducation 折叠字段完全相同的重复条目，保持原有顺序。
func dedupeEducation(entries []types.EducationEntry) []types.EducationEntry {
	seen := make(map[types.EducationEntry]bool, len(entries))
	var out []types.EducationEntry
	for _, entry := range entries {
		if !seen[entry] {
			seen[entry] = true
			out = append(out, entry)
		}
	}
	return out
}
