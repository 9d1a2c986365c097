// Package suggest 根据简历分析结果生成改进建议。
// 基础建议由规则分析结果直接映射为静态文案，进阶建议
// 通过可注入的文本生成器（通常是LLM客户端）产出。
package suggest

import (
	"context"
	"fmt"
	"strings"

	"github.com/zinando/smartapplicant-backend/internal/logger"
	"github.com/zinando/smartapplicant-backend/internal/types"
)

// TextGenerator 抽象文本生成能力，便于在测试中用固定响应替换真实模型
type TextGenerator interface {
	// Generate 根据提示词生成文本
	Generate(ctx context.Context, prompt string) (string, error)
}

// Advisor 负责组装提示词并把模型输出转换为结构化建议
type Advisor struct {
	llm TextGenerator
}

// NewAdvisor 创建建议生成器。llm 为 nil 时仅静态建议可用
func NewAdvisor(llm TextGenerator) *Advisor {
	return &Advisor{llm: llm}
}

// suggestionOrder 固定各章节建议的输出顺序
var suggestionOrder = []string{"metadata", "education", "skills", "experience", "certifications"}

// sectionSuggestions 各章节未满分时返回的静态改进文案
var sectionSuggestions = map[string]string{
	"education": `
                    Add a 'Education' section with degrees (e.g., 'B.Sc Computer Science'). Use standard abbreviations (B.Sc, M.Sc, PhD).
                    Format as: 'University Name – Location – YYYY-YYYY'. Avoid bullets or icons in this section.
                    Include dates for each degree (e.g., '2015-2019'). Use full years or 'Present' if ongoing.
                    Specify fields (e.g., 'B.Sc in Data Science'). Align with job description keywords.
                    `,
	"metadata": `
                    Add a professional email (e.g., name@gmail.com) in the header. Avoid unformatted or placeholder emails.
                    Include a phone number with country code (e.g., +1 123-456-7890). Place it near your email.
                    Ensure your full name is the first line of your resume. Avoid nicknames or icons interfering with text.
                    Add your city/country (e.g., 'San Francisco, CA'). Use standard abbreviations for states/countries.
                    `,
	"skills": `
                    Create a dedicated 'Skills' section. List 6-12 key skills in bullet points (e.g., 'Python, SQL, AWS').
                    Replace generic terms (e.g., 'Microsoft Office') with specific tools (e.g., 'Excel VLOOKUP, PowerPoint').
                    Move technical skills higher in your resume. Group them by type (e.g., 'Programming: Python, R, Java').
                    Add 3-5 keywords from the job description (e.g., 'Tableau' if listed in requirements).
                    Use commas or bullets to separate skills. Avoid icons, tables, or images for critical skills.
                    `,
	"certifications": `
                    Add a 'Certifications' section. Format as: 'AWS Certified Cloud Practitioner (AWS) - 2023'.
                    Include issuing organization and year (e.g., 'Google Data Analytics Certificate (Google) - 2024').
                    Move certifications to a dedicated section. Avoid mixing with education/experience.
                    Use consistent formatting: 'Cert Name (Issuer) - Year'. Avoid bullets/icons in this section.
                    Remove expired certifications unless highly relevant. Add 'In Progress' for current studies.
                    `,
	"experience": `
                    Add a professional summary and summarize your total experience in it (e.g., '5+ years experience as a Software Developer').
                    Format employment dates clearly: 'Jan 2020 - Present' or 'Mar 2018 - Dec 2022' for each role.
                    Specify level in your summary (e.g., 'Senior Product Manager with 8+ years experience').
                    Label contract roles clearly and include total duration (e.g., '2-year contract at Google').
                    Briefly note gaps (e.g., 'Career break: 2020-2021'). Use years (not months) for clarity.
                    `,
}

// fallbackSuggestions 在模型不可用或返回空响应时使用
var fallbackSuggestions = []string{
	"Add missing keywords like 'TypeScript' and 'GraphQL' to your skills section",
	"Highlight your computer science education if applicable",
	"Mention any agile methodology experience you have",
}

// BasicSuggestions 根据基础分析结果挑选静态建议，只对未满分的章节给出文案
func BasicSuggestions(analysis types.SectionalAnalysis) []string {
	scores := analysis.AsMap()

	var suggestions []string
	for _, section := range suggestionOrder {
		if scores[section] < 100 {
			suggestions = append(suggestions, sectionSuggestions[section])
		}
	}
	return suggestions
}

// buildImprovementPrompt 组装简历改进建议的提示词。
// 要求模型用分号分隔各条建议，方便后续机械拆分。
func buildImprovementPrompt(resumeText, jobDescription string) string {
	var b strings.Builder
	b.WriteString("Analyze my resume versus the job i want to apply for.\n")
	b.WriteString("Give me structured advice on how to improve my resume versus the job description\n")
	b.WriteString("Let your analysis center on the following topics requirements: Education, Skills, Certifications, Personal Information, and Experience.\n")
	b.WriteString("Be silent where my resume feels strong. Point out missing specific requirement items and how i should add them to my resume.\n\n")
	b.WriteString("My Resume:\n")
	b.WriteString(resumeText)
	b.WriteString("\n\n")
	b.WriteString("Job Description:\n")
	b.WriteString(jobDescription)
	b.WriteString("\n\n")
	b.WriteString("I want you to send me structured response ONLY because this is automated.")
	b.WriteString("separate your responses for each point with a semicolon (;).")
	b.WriteString("Remember to be very brief, professional, but hitting the most relevant points.")
	return b.String()
}

// ImprovementSuggestions 请求模型给出针对JD的改进建议并按分号拆分。
// 模型缺失、调用失败或响应为空时返回静态兜底建议。
func (a *Advisor) ImprovementSuggestions(ctx context.Context, resumeText, jobDescription string) []string {
	if a.llm == nil {
		return fallbackSuggestions
	}

	response, err := a.llm.Generate(ctx, buildImprovementPrompt(resumeText, jobDescription))
	if err != nil {
		logger.Warn().Err(err).Msg("生成改进建议失败，使用兜底建议")
		return fallbackSuggestions
	}

	var suggestions []string
	for _, part := range strings.Split(response, ";") {
		if part = strings.TrimSpace(part); part != "" {
			suggestions = append(suggestions, part)
		}
	}
	if len(suggestions) == 0 {
		return fallbackSuggestions
	}
	return suggestions
}

// buildMatchPrompt 组装简历与JD匹配评估的提示词，约定模型返回纯JSON
func buildMatchPrompt(resumeText, jobDescription string) string {
	prompt := `
    I want you to analyze my resume and the job description I want to apply for.
    I want you to grade various sections of the resume against the job details. Follow the format below.

    {
        "keyword_coverage": {
            "Technical Skills": <1-100 integer>,
            "Tools and Concepts": <1-100 integer>,
            "Soft Skills": <1-100 integer>,
            "Experience Level": <resume years vs required years as a whole number; 100 if no experience is required, 0 if required but none provided>,
            "Education Requirements": <resume education vs required education as a whole number; 100 if no education is required, 0 if required but none provided>
        },
        "sectional_matching": {
            "skills": {
                "match_percentage": <percent of job description skills present in the resume>,
                "matched": [<skills present in both>],
                "missing": [<skills in the job description but not in the resume>]
            },
            "education": {
                "match_percentage": <0 if the field of study is unrelated to the requirement; 100 if the resume has the target degree>,
                "matched": [<education items present in both>],
                "missing": [<education items in the job description but not in the resume>]
            },
            "experience": {
                "match_percentage": <resume years vs required years; 100 if no experience is required>,
                "matched": [<experience items present in the resume>],
                "missing": [<experience items in the job description but not in the resume>]
            },
            "certifications": {
                "match_percentage": <percent of required certifications present in the resume; 100 if none are required>,
                "matched": [<certifications present in both>],
                "missing": [<certifications in the job description but not in the resume>]
            }
        },
        "suggestions": [<for each section scoring below 100, one practical improvement suggestion>],
        "suitability_score": <average of all section scores above>
    }

    I want your response to come in JSON format. Please DO NOT INCLUDE TRIPLE BACKTICKS in your response.
    I want you to be very brief and professional.
`
	prompt += "My Resume:\n"
	prompt += resumeText + "\n"
	prompt += "Job Description:\n"
	prompt += jobDescription
	return prompt
}

// MatchWithModel 请求模型对简历与JD做结构化匹配评估。
// 调用失败或JSON解析失败时返回错误，调用方可回退到规则引擎结果。
func (a *Advisor) MatchWithModel(ctx context.Context, resumeText, jobDescription string) (*types.MatchReport, error) {
	if a.llm == nil {
		return nil, fmt.Errorf("未配置文本生成器")
	}

	response, err := a.llm.Generate(ctx, buildMatchPrompt(resumeText, jobDescription))
	if err != nil {
		return nil, fmt.Errorf("模型匹配评估调用失败: %w", err)
	}

	report, err := decodeMatchReport(response)
	if err != nil {
		logger.Warn().Err(err).Int("response_length", len(response)).Msg("解析模型匹配评估响应失败")
		return nil, err
	}
	return report, nil
}
