package vocab

// JobFieldOrder 领域遍历顺序，保证职位归类结果确定。
var JobFieldOrder = []string{"technology", "engineering", "healthcare", "business", "hospitality"}

// JobFields 行业领域 -> 该领域的代表性职位名称。
// 关键词覆盖率计算先用模糊匹配把输入职位归入其中一个领域。
var JobFields = map[string][]string{
	"technology": {
		"Software Engineer", "Data Scientist", "DevOps Engineer",
		"Frontend Developer", "Machine Learning Engineer", "Systems Administrator",
		"Backend Developer", "UI/UX Designer",
		"Product Manager", "Data Analyst", "Python Developer",
	},
	"engineering": {
		"Mechanical Engineer", "Civil Engineer", "Electrical Engineer",
		"Electrical Maintenance Technician", "Mechanical Maintenance Technician",
		"HVAC Technician", "Automotive Engineer", "Aerospace Engineer",
	},
	"healthcare": {
		"Registered Nurse", "Physician", "Medical Technician", "Medical Lab Technician",
		"Pharmacist", "Surgeon", "Dentist",
	},
	"business": {
		"Marketing Manager", "Financial Analyst", "HR Specialist",
		"Sales Executive", "Operations Manager", "Accountant",
	},
	"hospitality": {
		"Hotel Manager", "Chef", "Event Planner",
		"Tour Guide", "Sommelier", "Restaurant Manager",
	},
}

// SoftSkillsKeywords 行业领域 -> 软技能关键词
var SoftSkillsKeywords = map[string][]string{
	"technology": {
		"Problem-solving", "Collaboration", "Adaptability", "Attention to detail",
		"Critical thinking", "Time management", "Creativity", "Communication",
		"Teamwork", "Leadership",
	},
	"engineering": {
		"Analytical thinking", "Precision", "Teamwork", "Project management",
		"Technical communication", "Safety awareness", "Decision-making",
		"Resourcefulness", "Quality focus", "Process improvement",
		"Cross-disciplinary coordination",
	},
	"healthcare": {
		"Empathy", "Active listening", "Stress management", "Compassion",
		"Patience", "Cultural sensitivity", "Ethical judgment",
		"Team coordination", "Crisis management", "Professional discretion",
	},
	"business": {
		"Leadership", "Negotiation", "Strategic planning", "Persuasion",
		"Networking", "Emotional intelligence", "Presentation skills",
		"Conflict resolution", "Decision-making", "Customer focus",
	},
	"hospitality": {
		"Customer service", "Multitasking", "Cultural awareness", "Patience",
		"Problem-solving", "Adaptability", "Attention to detail",
		"Communication", "Teamwork", "Creativity",
	},
	"general": {
		"Communication", "Teamwork", "Time management", "Work ethic",
		"Adaptability", "Problem-solving", "Positive attitude",
		"Professionalism", "Punctuality", "Initiative",
	},
}

// ToolsTech 行业领域 -> 工具与技术关键词
var ToolsTech = map[string][]string{
	"technology": {
		"Git", "Docker", "Kubernetes", "AWS", "Azure",
		"Jenkins", "Terraform", "Ansible", "Python", "Java",
		"SQL", "NoSQL", "React", "Node.js", "TensorFlow",
		"PyTorch", "JIRA", "Confluence", "VS Code", "IntelliJ",
		"Agile", "CI/CD", "Microservices",
	},
	"engineering": {
		"AutoCAD", "SolidWorks", "MATLAB", "ANSYS", "Revit",
		"PLC Systems", "CATIA", "LabVIEW", "Arduino", "Raspberry Pi",
		"CNC Machines", "3D Printing", "HVAC Controls", "PCB Design",
		"SPICE", "ETAP", "HYSYS", "EPANET", "STAAD Pro", "GIS",
	},
	"healthcare": {
		"EPIC EHR", "Cerner", "Meditech", "PACS Systems",
		"HL7 Interfaces", "DICOM", "Practice Management Software",
		"Telemedicine Platforms", "Bioinformatics Tools",
		"Medical Imaging Software", "Lab Information Systems",
		"ePrescribing Systems", "Patient Monitoring Devices",
		"EMR Systems", "CPOE Systems", "Medical Billing Software",
		"Surgical Robotics", "AI Diagnostic Tools", "Pharmacy Systems",
	},
	"business": {
		"Excel", "Tableau", "Power BI", "SAP", "QuickBooks",
		"Salesforce", "HubSpot", "Zoho CRM", "Google Analytics",
		"SQL Databases", "Oracle", "Bloomberg Terminal", "SPSS",
		"Python (Pandas)", "R", "JIRA", "Trello", "Asana",
		"Adobe Creative Suite", "Mailchimp",
	},
	"hospitality": {
		"Property Management Systems", "POS Systems", "OpenTable",
		"Reservation Software", "Event Management Platforms",
		"Housekeeping Management Tools", "Revenue Management Systems",
		"Customer Loyalty Platforms", "TripAdvisor Management",
		"Food Costing Software", "Beverage Inventory Systems",
		"HRIS Systems", "Digital Menu Platforms", "Guest Feedback Tools",
		"Channel Managers", "Booking Engines", "Tour Operator Software",
	},
	"general": {
		"Microsoft Office", "Google Workspace", "Zoom",
		"Slack", "Teams", "Project Management Software",
		"CRM Systems", "Basic Database Tools", "Social Media Platforms",
		"Cloud Storage Solutions",
	},
}

// TechnicalKeywords 行业领域 -> 三类期望关键词（专业技能/工具与概念/软技能）
var TechnicalKeywords = map[string]map[string][]string{
	"technology": {
		"Technical Skills":   {"programming", "algorithms", "debugging", "system design"},
		"Tools and Concepts": ToolsTech["technology"],
		"Soft Skills":        SoftSkillsKeywords["technology"],
	},
	"engineering": {
		"Technical Skills":   {"CAD", "prototyping", "fluid dynamics", "circuit design"},
		"Tools and Concepts": ToolsTech["engineering"],
		"Soft Skills":        SoftSkillsKeywords["engineering"],
	},
	"healthcare": {
		"Clinical Skills":    {"patient care", "phlebotomy", "EMR systems"},
		"Tools and Concepts": ToolsTech["healthcare"],
		"Soft Skills":        SoftSkillsKeywords["healthcare"],
	},
	"business": {
		"Analytical Skills":  {"financial modeling", "market research", "KPI tracking"},
		"Tools and Concepts": ToolsTech["business"],
		"Soft Skills":        SoftSkillsKeywords["business"],
	},
	"hospitality": {
		"Service Skills":     {"customer service", "event coordination", "menu planning"},
		"Tools and Concepts": ToolsTech["hospitality"],
		"Soft Skills":        SoftSkillsKeywords["hospitality"],
	},
}
