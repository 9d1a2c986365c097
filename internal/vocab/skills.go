package vocab

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/zinando/smartapplicant-backend/internal/logger"
)

// KnownSkills 已知技能词典。全部条目统一存为小写，
// 匹配时与简历文本的小写形式比较。
type KnownSkills struct {
	Technical []string
	Soft      []string
	Domain    []string
	Tools     []string
	Cert      []string
}

// All 返回五类技能的并集（保持类别顺序，类别内顺序不变）。
func (k *KnownSkills) All() []string {
	out := make([]string, 0, len(k.Technical)+len(k.Soft)+len(k.Domain)+len(k.Tools)+len(k.Cert))
	out = append(out, k.Technical...)
	out = append(out, k.Soft...)
	out = append(out, k.Domain...)
	out = append(out, k.Tools...)
	out = append(out, k.Cert...)
	return out
}

// Contains 判断词典中是否含有指定技能（不区分大小写）。
func (k *KnownSkills) Contains(skill string) bool {
	s := strings.ToLower(strings.TrimSpace(skill))
	for _, group := range [][]string{k.Technical, k.Soft, k.Domain, k.Tools, k.Cert} {
		for _, v := range group {
			if v == s {
				return true
			}
		}
	}
	return false
}

// LoadKnownSkills 从数据目录加载技能词典。
// 每个文件是一个 JSON 字符串数组；文件缺失或解析失败时该类别为空，
// 不视为错误。dir 为空时直接返回内置默认词典。
func LoadKnownSkills(dir string) *KnownSkills {
	if dir == "" {
		return DefaultKnownSkills()
	}
	ks := &KnownSkills{
		Technical: loadSkillFile(filepath.Join(dir, "ts.json")),
		Soft:      loadSkillFile(filepath.Join(dir, "ss.json")),
		Domain:    loadSkillFile(filepath.Join(dir, "dss.json")),
		Tools:     loadSkillFile(filepath.Join(dir, "tools.json")),
		Cert:      loadSkillFile(filepath.Join(dir, "cm.json")),
	}
	return ks
}

func loadSkillFile(path string) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Debug().Str("path", path).Err(err).Msg("技能数据文件缺失，使用空列表")
		return nil
	}
	var raw []string
	if err := json.Unmarshal(data, &raw); err != nil {
		logger.Warn().Str("path", path).Err(err).Msg("技能数据文件解析失败，使用空列表")
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, s := range raw {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// DefaultKnownSkills 内置默认技能词典。
func DefaultKnownSkills() *KnownSkills {
	return &KnownSkills{
		Technical: []string{
			"python", "java", "javascript", "typescript", "go", "golang",
			"c", "c++", "c#", "rust", "ruby", "php", "swift", "kotlin",
			"scala", "r", "matlab", "sql", "nosql", "html", "css",
			"react", "angular", "vue", "node.js", "django", "flask",
			"spring", "spring boot", ".net", "express", "fastapi",
			"machine learning", "deep learning", "data analysis",
			"data science", "natural language processing", "computer vision",
			"rest api", "graphql", "microservices", "system design",
			"algorithms", "data structures", "debugging", "unit testing",
			"test automation", "web development", "mobile development",
			"cloud computing", "distributed systems", "linux", "bash",
			"shell scripting", "networking", "cybersecurity",
			"database design", "etl", "big data", "hadoop", "spark",
		},
		Soft: []string{
			"communication", "teamwork", "leadership", "problem solving",
			"problem-solving", "critical thinking", "time management",
			"adaptability", "creativity", "collaboration", "attention to detail",
			"decision making", "conflict resolution", "negotiation",
			"presentation", "public speaking", "mentoring", "empathy",
			"work ethic", "interpersonal skills",
		},
		Domain: []string{
			"project management", "agile", "scrum", "kanban",
			"financial modeling", "market research", "business analysis",
			"supply chain management", "risk management", "quality assurance",
			"regulatory compliance", "customer relationship management",
			"digital marketing", "search engine optimization",
			"patient care",
		},
		Tools: []string{
			"git", "github", "gitlab", "docker", "kubernetes", "jenkins",
			"terraform", "ansible", "aws", "azure", "gcp", "jira",
			"confluence", "excel", "power bi", "tableau", "salesforce",
			"sap", "quickbooks", "autocad", "solidworks", "photoshop",
			"figma", "postman", "mysql", "postgresql", "mongodb", "redis",
			"elasticsearch", "kafka",
		},
		Cert: []string{
			"pmp", "aws certified", "azure certified", "cissp", "ccna",
			"comptia", "scrum master", "six sigma", "itil",
			"google cloud certified",
		},
	}
}
