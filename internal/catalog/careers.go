package catalog

import "smartcareer/internal/model"

// CareerNames lists the ten career paths the quiz scores against. The
// order is significant: score ties are broken by position in this list.
var CareerNames = []string{
	"Software Developer",
	"Data Scientist",
	"AI/ML Engineer",
	"UX/UI Designer",
	"Digital Marketing Specialist",
	"Cybersecurity Expert",
	"Product Manager",
	"Cloud Architect",
	"Business Analyst",
	"Content Writer",
}

// CareerPaths is the career-path catalog, keyed by career name
var CareerPaths = map[string]model.CareerPath{
	"Software Developer": {
		Description:    "Build scalable software solutions using modern programming languages and frameworks",
		SalaryRange:    "₹5-35 LPA",
		Demand:         "Very High",
		SkillsRequired: []string{"Python Programming", "JavaScript & React", "SQL & Databases", "Java Development"},
		Education:      "B.Tech/B.Sc Computer Science",
		Companies:      []string{"Google", "Microsoft", "Amazon", "TCS", "Infosys", "Wipro"},
	},
	"Data Scientist": {
		Description:    "Analyze complex datasets and build predictive models for business insights using AI/ML",
		SalaryRange:    "₹8-55 LPA",
		Demand:         "Very High",
		SkillsRequired: []string{"Python Programming", "Data Science & Analytics", "SQL & Databases", "AI & Machine Learning"},
		Education:      "B.Tech/M.Tech Computer Science, Statistics",
		Companies:      []string{"Google", "Amazon", "Meta", "Adobe", "Flipkart", "Microsoft"},
	},
	"AI/ML Engineer": {
		Description:    "Design and implement cutting-edge artificial intelligence and machine learning solutions",
		SalaryRange:    "₹12-70 LPA",
		Demand:         "Very High",
		SkillsRequired: []string{"Python Programming", "AI & Machine Learning", "Data Science & Analytics", "Cloud Computing (AWS/Azure)"},
		Education:      "M.Tech AI/ML, B.Tech Computer Science",
		Companies:      []string{"Google", "OpenAI", "DeepMind", "Microsoft", "Tesla", "Anthropic"},
	},
	"UX/UI Designer": {
		Description:    "Create beautiful and intuitive user interfaces for web and mobile applications with AI integration",
		SalaryRange:    "₹5-30 LPA",
		Demand:         "Very High",
		SkillsRequired: []string{"UI/UX Design", "JavaScript & React", "Digital Marketing"},
		Education:      "B.Des, B.Tech, Diploma in Design",
		Companies:      []string{"Adobe", "Google", "Apple", "Figma", "Microsoft", "Canva"},
	},
	"Digital Marketing Specialist": {
		Description:    "Drive business growth through AI-powered digital marketing strategies and data analysis",
		SalaryRange:    "₹5-25 LPA",
		Demand:         "Very High",
		SkillsRequired: []string{"Digital Marketing", "Data Science & Analytics", "Project Management"},
		Education:      "B.Com, B.Tech, MBA Marketing",
		Companies:      []string{"Amazon", "Flipkart", "Unilever", "HUL", "Meta", "Google"},
	},
	"Cybersecurity Expert": {
		Description:    "Protect organizations from evolving cyber threats and ensure data security in cloud environments",
		SalaryRange:    "₹8-50 LPA",
		Demand:         "Very High",
		SkillsRequired: []string{"Cybersecurity", "Java Development", "SQL & Databases", "Cloud Computing (AWS/Azure)"},
		Education:      "B.Tech Computer Science, Cybersecurity Certification",
		Companies:      []string{"Microsoft", "Google", "Cisco", "JPMorgan", "Deloitte", "Palo Alto"},
	},
	"Product Manager": {
		Description:    "Lead product strategy and drive innovation in tech companies with AI/ML integration",
		SalaryRange:    "₹15-60 LPA",
		Demand:         "Very High",
		SkillsRequired: []string{"Project Management", "Data Science & Analytics", "Digital Marketing"},
		Education:      "MBA, B.Tech with Product Management focus",
		Companies:      []string{"Google", "Amazon", "Microsoft", "Apple", "Meta", "Netflix"},
	},
	"Cloud Architect": {
		Description:    "Design and manage cutting-edge cloud infrastructure for enterprise solutions with AI integration",
		SalaryRange:    "₹15-70 LPA",
		Demand:         "Very High",
		SkillsRequired: []string{"Cloud Computing (AWS/Azure)", "DevOps & CI/CD", "Docker & Kubernetes"},
		Education:      "B.Tech Computer Science, Cloud Certifications",
		Companies:      []string{"AWS", "Google Cloud", "Microsoft Azure", "IBM", "Oracle", "Alibaba Cloud"},
	},
	"Business Analyst": {
		Description:    "Bridge gap between business and technology teams with data-driven insights",
		SalaryRange:    "₹6-30 LPA",
		Demand:         "Very High",
		SkillsRequired: []string{"Project Management", "Data Science & Analytics", "SQL & Databases"},
		Education:      "B.Com, B.Tech, MBA",
		Companies:      []string{"Accenture", "Deloitte", "TCS", "Cognizant", "Capgemini", "EY"},
	},
	"Content Writer": {
		Description:    "Create engaging AI-assisted content for websites, blogs, and social media platforms",
		SalaryRange:    "₹3-18 LPA",
		Demand:         "High",
		SkillsRequired: []string{"Digital Marketing"},
		Education:      "B.A, B.Tech (any discipline)",
		Companies:      []string{"HubSpot", "Medium", "LinkedIn", "Quora", "Hashnode", "Notion"},
	},
}
