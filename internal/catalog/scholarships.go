package catalog

import (
	"time"

	"smartcareer/internal/model"
)

// lastUpdatedLayout matches the frontend's expected timestamp format,
// e.g. "28/08/2026, 04:15:09 PM".
const lastUpdatedLayout = "02/01/2006, 03:04:05 PM"

var scholarships = []model.Scholarship{
	{
		Name:           "AICTE Pragati Scholarship for Girls",
		Organization:   "AICTE",
		DaysLeft:       2,
		Description:    "Girl students in technical courses",
		Amount:         "₹35,000 per annum + ₹2,500/month for hostel",
		Location:       "All India",
		EducationLevel: "Diploma/Degree",
		Deadline:       "15 Nov 2025",
		Category:       "Women",
	},
	{
		Name:           "HDFC Educational Crisis Scholarship",
		Organization:   "HDFC Bank",
		DaysLeft:       7,
		Description:    "Students affected by personal crises",
		Amount:         "Up to ₹40,000",
		Location:       "All India",
		EducationLevel: "Any",
		Deadline:       "20 Nov 2025",
		Category:       "Need-Based",
	},
	{
		Name:           "National Merit Scholarship",
		Organization:   "Ministry of Education",
		DaysLeft:       17,
		Description:    "Meritorious students with 80%+ marks",
		Amount:         "₹15,000 per annum",
		Location:       "All India",
		EducationLevel: "Graduate",
		Deadline:       "30 Nov 2025",
		Category:       "Merit-Based",
	},
	{
		Name:           "Tata Trusts Scholarship Program",
		Organization:   "Tata Trusts",
		DaysLeft:       32,
		Description:    "Students from economically weaker sections",
		Amount:         "Up to ₹75,000 per year",
		Location:       "All India",
		EducationLevel: "Graduate",
		Deadline:       "15 Dec 2025",
		Category:       "Need-Based",
	},
	{
		Name:           "Post-Matric Scholarship for OBC Students",
		Organization:   "Ministry of Social Justice and Empowerment",
		DaysLeft:       48,
		Description:    "OBC students with family income < ₹8 lakh",
		Amount:         "Up to ₹12,000 per annum",
		Location:       "All India",
		EducationLevel: "Post-Matric",
		Deadline:       "31 Dec 2025",
		Category:       "Minority",
	},
}

// Scholarships returns the scholarship listings with a fresh
// last_updated stamp on every call. Callers get copies, never the
// backing slice.
func Scholarships(now time.Time) []model.Scholarship {
	stamped := make([]model.Scholarship, len(scholarships))
	for i, s := range scholarships {
		s.LastUpdated = now.Format(lastUpdatedLayout)
		stamped[i] = s
	}
	return stamped
}
