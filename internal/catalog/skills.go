package catalog

import "smartcareer/internal/model"

// Skills is the in-demand skills catalog, keyed by skill name
var Skills = map[string]model.Skill{
	"Python Programming": {
		Demand: 97, SalaryMin: 5, SalaryMax: 30, Jobs: 65000,
		GrowthRate: 15, Difficulty: "Beginner", Industry: "Software, Data Science, AI/ML",
	},
	"AI & Machine Learning": {
		Demand: 92, SalaryMin: 10, SalaryMax: 60, Jobs: 45000,
		GrowthRate: 28, Difficulty: "Advanced", Industry: "AI/ML, Research, Startups",
	},
	"Cloud Computing (AWS/Azure)": {
		Demand: 90, SalaryMin: 8, SalaryMax: 45, Jobs: 55000,
		GrowthRate: 22, Difficulty: "Intermediate", Industry: "DevOps, Infrastructure",
	},
	"Data Science & Analytics": {
		Demand: 93, SalaryMin: 8, SalaryMax: 50, Jobs: 48000,
		GrowthRate: 24, Difficulty: "Advanced", Industry: "Analytics, Finance, Tech",
	},
	"JavaScript & React": {
		Demand: 90, SalaryMin: 5, SalaryMax: 28, Jobs: 65000,
		GrowthRate: 18, Difficulty: "Intermediate", Industry: "Frontend, Web Development",
	},
	"Cybersecurity": {
		Demand: 85, SalaryMin: 7, SalaryMax: 40, Jobs: 38000,
		GrowthRate: 26, Difficulty: "Advanced", Industry: "Security, Enterprise",
	},
	"DevOps & CI/CD": {
		Demand: 88, SalaryMin: 9, SalaryMax: 45, Jobs: 32000,
		GrowthRate: 23, Difficulty: "Advanced", Industry: "Infrastructure, Tech",
	},
	"Docker & Kubernetes": {
		Demand: 82, SalaryMin: 10, SalaryMax: 50, Jobs: 28000,
		GrowthRate: 27, Difficulty: "Advanced", Industry: "DevOps, Cloud",
	},
	"Blockchain": {
		Demand: 72, SalaryMin: 12, SalaryMax: 70, Jobs: 20000,
		GrowthRate: 35, Difficulty: "Advanced", Industry: "Cryptocurrency, Fintech",
	},
	"UI/UX Design": {
		Demand: 85, SalaryMin: 4, SalaryMax: 25, Jobs: 42000,
		GrowthRate: 20, Difficulty: "Intermediate", Industry: "Design, Product",
	},
	"Digital Marketing": {
		Demand: 88, SalaryMin: 4, SalaryMax: 20, Jobs: 58000,
		GrowthRate: 17, Difficulty: "Beginner", Industry: "Marketing, Startups",
	},
	"SQL & Databases": {
		Demand: 95, SalaryMin: 5, SalaryMax: 25, Jobs: 62000,
		GrowthRate: 12, Difficulty: "Beginner", Industry: "Backend, Data",
	},
	"Java Development": {
		Demand: 90, SalaryMin: 5, SalaryMax: 35, Jobs: 70000,
		GrowthRate: 14, Difficulty: "Intermediate", Industry: "Enterprise, Backend",
	},
	"Mobile Development": {
		Demand: 87, SalaryMin: 6, SalaryMax: 30, Jobs: 52000,
		GrowthRate: 20, Difficulty: "Intermediate", Industry: "Mobile Apps, Startups",
	},
	"Project Management": {
		Demand: 83, SalaryMin: 10, SalaryMax: 50, Jobs: 42000,
		GrowthRate: 15, Difficulty: "Intermediate", Industry: "Management, Enterprise",
	},
}
