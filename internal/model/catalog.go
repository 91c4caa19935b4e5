package model

// College is one institute record in the reference tables. The field set
// varies by category, so optional fields use omitempty.
type College struct {
	Name             string  `json:"name"`
	Rank             int     `json:"rank,omitempty"`
	Location         string  `json:"location"`
	AvgPackage       float64 `json:"avg_package,omitempty"`
	HighestPackage   float64 `json:"highest_package,omitempty"`
	AcceptanceRate   float64 `json:"acceptance_rate,omitempty"`
	Entrance         string  `json:"entrance,omitempty"`
	NIRFRank         int     `json:"nirf_rank,omitempty"`
	Established      int     `json:"established,omitempty"`
	TopBranch        string  `json:"top_branch,omitempty"`
	CSEAvg           float64 `json:"cse_avg,omitempty"`
	Specialization   string  `json:"specialization,omitempty"`
	Seats            int     `json:"seats,omitempty"`
	NEETRankRequired string  `json:"neet_rank_required,omitempty"`
	Website          string  `json:"website"`
}

// Skill is one entry of the skills catalog
type Skill struct {
	Demand     int    `json:"demand"`
	SalaryMin  int    `json:"salary_min"`
	SalaryMax  int    `json:"salary_max"`
	Jobs       int    `json:"jobs"`
	GrowthRate int    `json:"growth_rate"`
	Difficulty string `json:"difficulty"`
	Industry   string `json:"industry"`
}

// CareerPath is one entry of the career-path catalog
type CareerPath struct {
	Description    string   `json:"description"`
	SalaryRange    string   `json:"salary_range"`
	Demand         string   `json:"demand"`
	SkillsRequired []string `json:"skills_required"`
	Education      string   `json:"education"`
	Companies      []string `json:"companies"`
}

// Scholarship is one scholarship listing. LastUpdated is stamped per
// request, not stored.
type Scholarship struct {
	Name           string `json:"name"`
	Organization   string `json:"organization"`
	DaysLeft       int    `json:"days_left"`
	Description    string `json:"description"`
	Amount         string `json:"amount"`
	Location       string `json:"location"`
	EducationLevel string `json:"education_level"`
	Deadline       string `json:"deadline"`
	Category       string `json:"category"`
	LastUpdated    string `json:"last_updated,omitempty"`
}
