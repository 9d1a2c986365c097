package vocab

// 章节标题词表。分段器对每一行做归一化（去项目符号、去尾部冒号/破折号、
// 转小写）后与这些标题做整行相等比较，因此这里全部以小写收录。

var defaultCareerObjectiveTitles = []string{
	"career objective",
	"objective",
	"summary",
	"professional summary",
	"career summary",
	"profile",
	"career profile",
	"professional profile",
	"professional objective",
	"personal statement",
	"personal profile",
	"about me",
	"about",
	"introduction",
	"executive summary",
	"summary of qualifications",
}

var defaultEducationTitles = []string{
	"education",
	"academic background",
	"academic qualifications",
	"educational background",
	"educational qualifications",
	"education and training",
	"education & training",
	"academic history",
	"education history",
	"education background",
	"academic profile",
	"academic credentials",
	"qualifications",
	"academics",
}

var defaultExperienceTitles = []string{
	"experience",
	"work experience",
	"professional experience",
	"employment history",
	"work history",
	"career history",
	"relevant experience",
	"professional background",
	"professional history",
	"job history",
	"employment",
	"internship experience",
	"volunteer experience",
	"work background",
	"career experience",
}

var defaultSkillsTitles = []string{
	"skills",
	"technical skills",
	"key skills",
	"core competencies",
	"core skills",
	"skill set",
	"areas of expertise",
	"competencies",
	"professional skills",
	"skills summary",
	"technical competencies",
	"technical proficiencies",
	"relevant skills",
	"skills and abilities",
	"expertise",
	"technologies",
}

var defaultCertificationTitles = []string{
	"certifications",
	"certification",
	"certificates",
	"licenses",
	"licences",
	"licenses and certifications",
	"licenses & certifications",
	"certifications and licenses",
	"professional certifications",
	"professional qualifications",
	"trainings",
	"training",
	"courses",
	"professional development",
	"credentials",
}

// defaultOtherBoundaryTitles 不提取内容、仅作为章节边界的标题
var defaultOtherBoundaryTitles = []string{
	"projects",
	"personal projects",
	"project experience",
	"publications",
	"awards",
	"honors",
	"honours",
	"honors and awards",
	"achievements",
	"accomplishments",
	"references",
	"referees",
	"languages",
	"interests",
	"hobbies",
	"hobbies and interests",
	"volunteering",
	"volunteer work",
	"activities",
	"extracurricular activities",
	"leadership experience",
	"research experience",
	"professional affiliations",
	"memberships",
	"additional information",
	"portfolio",
}
