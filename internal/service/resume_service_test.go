package service

import (
	"testing"

	"smartcareer/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildResume_FilledFields(t *testing.T) {
	svc := NewResumeService()

	resp, err := svc.Build(&model.ResumeRequest{
		Name:             "Priya Sharma",
		Email:            "priya@example.com",
		Phone:            "+91-9876543210",
		Location:         "Bengaluru, Karnataka",
		Summary:          "Backend engineer focused on distributed systems.",
		Education:        "B.Tech Computer Science",
		University:       "IIT Madras",
		GraduationYear:   "2022",
		JobTitle:         "Software Engineer",
		Company:          "Acme Corp",
		EmploymentPeriod: "Jun 2022 - Present",
		JobDescription:   "Built and operated payment services.",
		Skills:           []string{"Go", "PostgreSQL", "Kubernetes"},
		ProjectName:      "Ledger",
		ProjectDesc:      "Double-entry bookkeeping service in Go.",
	})
	require.NoError(t, err)

	assert.Equal(t, "Priya_Sharma_resume.html", resp.Filename)
	assert.Contains(t, resp.HTML, "<h1>Priya Sharma</h1>")
	assert.Contains(t, resp.HTML, "priya@example.com | +91-9876543210")
	assert.Contains(t, resp.HTML, "IIT Madras | 2022")
	assert.Contains(t, resp.HTML, "Acme Corp | Jun 2022 - Present")
	assert.Contains(t, resp.HTML, "Go, PostgreSQL, Kubernetes")
	assert.Contains(t, resp.HTML, "Double-entry bookkeeping service in Go.")
}

func TestBuildResume_PlaceholderDefaults(t *testing.T) {
	svc := NewResumeService()

	resp, err := svc.Build(&model.ResumeRequest{})
	require.NoError(t, err)

	assert.Equal(t, "resume_resume.html", resp.Filename)
	assert.Contains(t, resp.HTML, "<h1>Your Name</h1>")
	assert.Contains(t, resp.HTML, "email@example.com")
	assert.Contains(t, resp.HTML, "B.Tech Computer Science")
	assert.Contains(t, resp.HTML, "Jan 2023 - Present")
	assert.Contains(t, resp.HTML, "Describe your key responsibilities and achievements.")
}

func TestBuildResume_EscapesMarkup(t *testing.T) {
	svc := NewResumeService()

	resp, err := svc.Build(&model.ResumeRequest{
		Name:    "<script>alert(1)</script>",
		Summary: "Likes <b>bold</b> claims.",
	})
	require.NoError(t, err)

	assert.NotContains(t, resp.HTML, "<script>alert(1)</script>")
	assert.Contains(t, resp.HTML, "&lt;script&gt;")
	assert.NotContains(t, resp.HTML, "<b>bold</b>")
}
