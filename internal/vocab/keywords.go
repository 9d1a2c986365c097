package vocab

import "fmt"

// defaultDegreeKeywords 学位关键词，覆盖常见的全称与缩写写法。
// 单行教育条目解析按长度降序做大小写敏感匹配，因此长全称排在前面。
var defaultDegreeKeywords = []string{
	"Bachelor of Science",
	"Bachelor of Arts",
	"Bachelor of Engineering",
	"Bachelor of Technology",
	"Bachelor of Education",
	"Bachelor of Laws",
	"Bachelor of Medicine",
	"Bachelor of Pharmacy",
	"Master of Science",
	"Master of Arts",
	"Master of Engineering",
	"Master of Technology",
	"Master of Business Administration",
	"Master of Public Health",
	"Master of Education",
	"Doctor of Philosophy",
	"Higher National Diploma",
	"Ordinary National Diploma",
	"National Diploma",
	"Postgraduate Diploma",
	"Associate Degree",
	"Bachelors",
	"Bachelor",
	"Masters",
	"Master",
	"Doctorate",
	"Diploma",
	"Associate",
	"B.Sc", "BSc", "B.S", "BS",
	"B.A", "BA",
	"B.Eng", "BEng",
	"B.Tech", "BTech",
	"B.Ed",
	"LLB",
	"M.Sc", "MSc", "M.S",
	"M.A",
	"M.Eng", "MEng",
	"M.Tech", "MTech",
	"MBA",
	"MPH",
	"Ph.D", "PhD", "DPhil",
	"PGD",
	"HND",
	"OND",
	"ND",
	"A.A", "A.S",
}

// defaultInstitutionKeywords 教育机构类型名词
var defaultInstitutionKeywords = []string{
	"University",
	"College",
	"Institute",
	"Institution",
	"Polytechnic",
	"Academy",
	"School",
	"Seminary",
	"Conservatory",
	"Faculty",
}

// defaultCommonJobTitles 常见职位名称，用于在联系区排除“看起来像姓名”的职位行。
// 元数据提取按子串包含做不区分大小写的比较。
var defaultCommonJobTitles = []string{
	// 具体职位
	"Software Engineer", "Data Scientist", "DevOps Engineer",
	"Frontend Developer", "Backend Developer", "Full Stack Developer",
	"Machine Learning Engineer", "Systems Administrator", "UI/UX Designer",
	"Product Manager", "Data Analyst", "Python Developer",
	"Mechanical Engineer", "Civil Engineer", "Electrical Engineer",
	"Electrical Maintenance Technician", "Mechanical Maintenance Technician",
	"HVAC Technician", "Automotive Engineer", "Aerospace Engineer",
	"Registered Nurse", "Physician", "Medical Technician",
	"Medical Lab Technician", "Pharmacist", "Surgeon", "Dentist",
	"Marketing Manager", "Financial Analyst", "HR Specialist",
	"Sales Executive", "Operations Manager", "Accountant",
	"Hotel Manager", "Chef", "Event Planner",
	"Tour Guide", "Sommelier", "Restaurant Manager",
	// 泛化称谓
	"Engineer", "Developer", "Programmer", "Analyst", "Consultant",
	"Technician", "Designer", "Administrator", "Specialist", "Officer",
	"Executive", "Coordinator", "Supervisor", "Director", "Architect",
	"Scientist", "Manager", "Intern",
}

// buildNumberWords 构造 one..fifty 的英文数词到整数的映射，
// 含连字符复合写法（twenty-one 等）。
func buildNumberWords() map[string]int {
	units := []string{
		"one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
		"ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen",
		"sixteen", "seventeen", "eighteen", "nineteen",
	}
	tens := map[string]int{"twenty": 20, "thirty": 30, "forty": 40, "fifty": 50}

	words := make(map[string]int, 50)
	for i, w := range units {
		words[w] = i + 1
	}
	for tw, tv := range tens {
		words[tw] = tv
		if tv == 50 {
			continue
		}
		for i, uw := range units[:9] {
			words[fmt.Sprintf("%s-%s", tw, uw)] = tv + i + 1
		}
	}
	return words
}
