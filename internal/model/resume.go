package model

// ResumeRequest carries the resume builder form fields. Missing fields
// fall back to placeholder text during rendering.
type ResumeRequest struct {
	Name             string   `json:"name"`
	Email            string   `json:"email"`
	Phone            string   `json:"phone"`
	Location         string   `json:"location"`
	Summary          string   `json:"summary"`
	Education        string   `json:"education"`
	University       string   `json:"university"`
	GraduationYear   string   `json:"graduation_year"`
	JobTitle         string   `json:"job_title"`
	Company          string   `json:"company"`
	EmploymentPeriod string   `json:"employment_period"`
	JobDescription   string   `json:"job_description"`
	Skills           []string `json:"skills"`
	ProjectName      string   `json:"project_name"`
	ProjectDesc      string   `json:"project_description"`
}

// ResumeResponse is returned from the resume builder
type ResumeResponse struct {
	HTML     string `json:"html"`
	Filename string `json:"filename"`
}
