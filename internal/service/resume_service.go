package service

import (
	"fmt"
	"html/template"
	"strings"

	"smartcareer/internal/model"
)

// resumeTemplate renders the single-page resume document. Every field is
// pre-defaulted before execution, so the template itself stays plain.
var resumeTemplate = template.Must(template.New("resume").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>{{.Name}}</title>
    <style>
        body { font-family: Arial, sans-serif; max-width: 800px; margin: 0 auto; padding: 20px; }
        .header { text-align: center; margin-bottom: 20px; border-bottom: 2px solid #333; padding-bottom: 10px; }
        .header h1 { margin: 0; font-size: 28px; }
        .header p { margin: 5px 0; color: #666; }
        .section { margin: 20px 0; }
        .section h2 { font-size: 14px; font-weight: bold; text-transform: uppercase; border-bottom: 1px solid #999; padding-bottom: 5px; }
        .entry { margin: 10px 0; }
        .entry h3 { margin: 0; font-size: 14px; }
        .entry p { margin: 5px 0; }
    </style>
</head>
<body>
    <div class="header">
        <h1>{{.Name}}</h1>
        <p>{{.Email}} | {{.Phone}}</p>
        <p>{{.Location}}</p>
    </div>

    <div class="section">
        <h2>Professional Summary</h2>
        <p>{{.Summary}}</p>
    </div>

    <div class="section">
        <h2>Education</h2>
        <div class="entry">
            <h3>{{.Education}}</h3>
            <p>{{.University}} | {{.GraduationYear}}</p>
        </div>
    </div>

    <div class="section">
        <h2>Experience</h2>
        <div class="entry">
            <h3>{{.JobTitle}}</h3>
            <p>{{.Company}} | {{.EmploymentPeriod}}</p>
            <p>{{.JobDescription}}</p>
        </div>
    </div>

    <div class="section">
        <h2>Skills</h2>
        <p>{{.SkillsJoined}}</p>
    </div>

    <div class="section">
        <h2>Projects</h2>
        <div class="entry">
            <h3>{{.ProjectName}}</h3>
            <p>{{.ProjectDesc}}</p>
        </div>
    </div>
</body>
</html>
`))

// resumeFields is the template context after placeholder defaulting
type resumeFields struct {
	model.ResumeRequest
	SkillsJoined string
}

// ResumeService fills the resume document from form fields
type ResumeService struct{}

// NewResumeService creates a new resume service
func NewResumeService() *ResumeService {
	return &ResumeService{}
}

func defaultStr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// Build renders the resume HTML and a download filename from the form
// payload. Missing fields get placeholder text rather than failing.
func (s *ResumeService) Build(req *model.ResumeRequest) (*model.ResumeResponse, error) {
	fields := resumeFields{ResumeRequest: *req}
	fields.Name = defaultStr(req.Name, "Your Name")
	fields.Email = defaultStr(req.Email, "email@example.com")
	fields.Phone = defaultStr(req.Phone, "+91-XXXXXXXXXX")
	fields.Location = defaultStr(req.Location, "City, State")
	fields.Summary = defaultStr(req.Summary, "Passionate professional with expertise in multiple domains.")
	fields.Education = defaultStr(req.Education, "B.Tech Computer Science")
	fields.University = defaultStr(req.University, "University Name")
	fields.GraduationYear = defaultStr(req.GraduationYear, "2024")
	fields.JobTitle = defaultStr(req.JobTitle, "Your Job Title")
	fields.Company = defaultStr(req.Company, "Company Name")
	fields.EmploymentPeriod = defaultStr(req.EmploymentPeriod, "Jan 2023 - Present")
	fields.JobDescription = defaultStr(req.JobDescription, "Describe your key responsibilities and achievements.")
	fields.ProjectName = defaultStr(req.ProjectName, "Project Name")
	fields.ProjectDesc = defaultStr(req.ProjectDesc, "Project description and technologies used.")
	fields.SkillsJoined = strings.Join(req.Skills, ", ")

	var sb strings.Builder
	if err := resumeTemplate.Execute(&sb, fields); err != nil {
		return nil, fmt.Errorf("failed to render resume: %w", err)
	}

	baseName := defaultStr(req.Name, "resume")
	filename := strings.ReplaceAll(baseName, " ", "_") + "_resume.html"

	return &model.ResumeResponse{
		HTML:     sb.String(),
		Filename: filename,
	}, nil
}
