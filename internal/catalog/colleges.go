package catalog

import "smartcareer/internal/model"

// College reference tables, grouped by category.
var iits = []model.College{
	{Name: "IIT Bombay", Rank: 1, Location: "Mumbai", AvgPackage: 21.8, HighestPackage: 2.14, AcceptanceRate: 0.5, Entrance: "JEE Advanced", NIRFRank: 2, Established: 1958, Website: "https://www.iitb.ac.in"},
	{Name: "IIT Delhi", Rank: 2, Location: "Delhi", AvgPackage: 18.2, HighestPackage: 1.8, AcceptanceRate: 0.6, Entrance: "JEE Advanced", NIRFRank: 4, Established: 1961, Website: "https://home.iitd.ac.in"},
	{Name: "IIT Madras", Rank: 3, Location: "Chennai", AvgPackage: 17.5, HighestPackage: 1.7, AcceptanceRate: 0.7, Entrance: "JEE Advanced", NIRFRank: 3, Established: 1959, Website: "https://www.iitm.ac.in"},
	{Name: "IIT Kanpur", Rank: 4, Location: "Kanpur", AvgPackage: 16.2, HighestPackage: 1.5, AcceptanceRate: 0.8, Entrance: "JEE Advanced", NIRFRank: 5, Established: 1959, Website: "https://www.iitk.ac.in"},
	{Name: "IIT Kharagpur", Rank: 5, Location: "Kharagpur", AvgPackage: 15.8, HighestPackage: 1.4, AcceptanceRate: 0.9, Entrance: "JEE Advanced", NIRFRank: 6, Established: 1951, Website: "http://www.iitkgp.ac.in"},
	{Name: "IIT Roorkee", Rank: 6, Location: "Roorkee", AvgPackage: 15.2, HighestPackage: 1.3, AcceptanceRate: 1.0, Entrance: "JEE Advanced", NIRFRank: 8, Established: 1854, Website: "https://www.iitr.ac.in"},
	{Name: "IIT Guwahati", Rank: 7, Location: "Guwahati", AvgPackage: 14.5, HighestPackage: 1.2, AcceptanceRate: 1.2, Entrance: "JEE Advanced", NIRFRank: 9, Established: 1994, Website: "https://www.iitg.ac.in"},
	{Name: "IIT Hyderabad", Rank: 8, Location: "Hyderabad", AvgPackage: 14.2, HighestPackage: 1.1, AcceptanceRate: 1.3, Entrance: "JEE Advanced", NIRFRank: 10, Established: 2008, Website: "https://iith.ac.in"},
	{Name: "IIT Indore", Rank: 9, Location: "Indore", AvgPackage: 13.8, HighestPackage: 1.0, AcceptanceRate: 1.5, Entrance: "JEE Advanced", NIRFRank: 16, Established: 2009, Website: "https://www.iiti.ac.in"},
	{Name: "IIT BHU Varanasi", Rank: 10, Location: "Varanasi", AvgPackage: 13.5, HighestPackage: 0.95, AcceptanceRate: 1.6, Entrance: "JEE Advanced", NIRFRank: 11, Established: 1919, Website: "https://www.iitbhu.ac.in"},
	{Name: "IIT Dhanbad", Rank: 11, Location: "Dhanbad", AvgPackage: 13.2, HighestPackage: 0.9, AcceptanceRate: 1.8, Entrance: "JEE Advanced", NIRFRank: 13, Established: 1926, Website: "https://www.iitism.ac.in"},
	{Name: "IIT Gandhinagar", Rank: 12, Location: "Gandhinagar", AvgPackage: 12.8, HighestPackage: 0.85, AcceptanceRate: 2.0, Entrance: "JEE Advanced", NIRFRank: 15, Established: 2007, Website: "https://iitgn.ac.in"},
	{Name: "IIT Bhubaneswar", Rank: 13, Location: "Bhubaneswar", AvgPackage: 12.5, HighestPackage: 0.8, AcceptanceRate: 2.2, Entrance: "JEE Advanced", NIRFRank: 17, Established: 2008, Website: "https://www.iitbbs.ac.in"},
	{Name: "IIT Palakkad", Rank: 14, Location: "Palakkad", AvgPackage: 12.2, HighestPackage: 0.75, AcceptanceRate: 2.4, Entrance: "JEE Advanced", NIRFRank: 25, Established: 2015, Website: "https://iitpkd.ac.in"},
	{Name: "IIT Tirupati", Rank: 15, Location: "Tirupati", AvgPackage: 12.0, HighestPackage: 0.72, AcceptanceRate: 2.5, Entrance: "JEE Advanced", NIRFRank: 30, Established: 2015, Website: "https://iittp.ac.in"},
	{Name: "IIT Jammu", Rank: 16, Location: "Jammu", AvgPackage: 11.8, HighestPackage: 0.7, AcceptanceRate: 2.6, Entrance: "JEE Advanced", NIRFRank: 35, Established: 2016, Website: "https://www.iitjammu.ac.in"},
	{Name: "IIT Bombay ISM Dhanbad", Rank: 17, Location: "Dhanbad", AvgPackage: 11.5, HighestPackage: 0.65, AcceptanceRate: 2.8, Entrance: "JEE Advanced", NIRFRank: 40, Established: 1926, Website: "https://www.iitism.ac.in"},
	{Name: "IIT Mandi", Rank: 18, Location: "Himachal Pradesh", AvgPackage: 11.2, HighestPackage: 0.62, AcceptanceRate: 3.0, Entrance: "JEE Advanced", NIRFRank: 42, Established: 2009, Website: "https://www.iitmandi.ac.in"},
	{Name: "IIT Goa", Rank: 19, Location: "Goa", AvgPackage: 11.0, HighestPackage: 0.6, AcceptanceRate: 3.2, Entrance: "JEE Advanced", NIRFRank: 45, Established: 2016, Website: "https://iitgoa.ac.in"},
	{Name: "IIT Bhilai", Rank: 20, Location: "Chhattisgarh", AvgPackage: 10.8, HighestPackage: 0.58, AcceptanceRate: 3.4, Entrance: "JEE Advanced", NIRFRank: 48, Established: 2016, Website: "https://www.iitbhilai.ac.in"},
	{Name: "IIT Dharwad", Rank: 21, Location: "Karnataka", AvgPackage: 10.5, HighestPackage: 0.55, AcceptanceRate: 3.6, Entrance: "JEE Advanced", NIRFRank: 50, Established: 2016, Website: "https://www.iitdh.ac.in"},
	{Name: "IIT Jodhpur", Rank: 22, Location: "Jodhpur", AvgPackage: 10.2, HighestPackage: 0.52, AcceptanceRate: 3.8, Entrance: "JEE Advanced", NIRFRank: 52, Established: 2008, Website: "https://iitj.ac.in"},
	{Name: "IIT Bombay Bombay", Rank: 23, Location: "Mumbai", AvgPackage: 10.0, HighestPackage: 0.5, AcceptanceRate: 4.0, Entrance: "JEE Advanced", NIRFRank: 54, Established: 1958, Website: "https://www.iitb.ac.in"},
}

var nits = []model.College{
	{Name: "NIT Trichy", Location: "Tiruchirappalli", AvgPackage: 9.5, HighestPackage: 0.95, NIRFRank: 7, TopBranch: "Computer Science", Website: "https://www.nitt.edu"},
	{Name: "NIT Surathkal", Location: "Mangalore", AvgPackage: 9.2, HighestPackage: 0.92, NIRFRank: 12, TopBranch: "Computer Science", Website: "https://www.nitk.ac.in"},
	{Name: "NIT Warangal", Location: "Warangal", AvgPackage: 8.8, HighestPackage: 0.88, NIRFRank: 14, TopBranch: "Computer Science", Website: "https://www.nitw.ac.in"},
	{Name: "NIT Rourkela", Location: "Rourkela", AvgPackage: 8.5, HighestPackage: 0.85, NIRFRank: 18, TopBranch: "Computer Science", Website: "https://www.nitrkl.ac.in"},
	{Name: "NIT Calicut", Location: "Kozhikode", AvgPackage: 8.2, HighestPackage: 0.82, NIRFRank: 20, TopBranch: "Computer Science", Website: "http://www.nitc.ac.in"},
	{Name: "NIT Silchar", Location: "Silchar", AvgPackage: 7.8, HighestPackage: 0.78, NIRFRank: 26, TopBranch: "Computer Science", Website: "http://www.nits.ac.in"},
	{Name: "NIT Hamirpur", Location: "Hamirpur", AvgPackage: 7.5, HighestPackage: 0.75, NIRFRank: 27, TopBranch: "Computer Science", Website: "https://nith.ac.in"},
	{Name: "NIT Srinagar", Location: "Srinagar", AvgPackage: 7.2, HighestPackage: 0.72, NIRFRank: 28, TopBranch: "Computer Science", Website: "http://www.nitsri.ac.in"},
	{Name: "NIT Allahabad", Location: "Allahabad", AvgPackage: 7.0, HighestPackage: 0.70, NIRFRank: 29, TopBranch: "Computer Science", Website: "http://www.mnnit.ac.in"},
	{Name: "NIT Raipur", Location: "Raipur", AvgPackage: 6.8, HighestPackage: 0.68, NIRFRank: 31, TopBranch: "Computer Science", Website: "http://www.nitrr.ac.in"},
	{Name: "NIT Jalandhar", Location: "Jalandhar", AvgPackage: 6.5, HighestPackage: 0.65, NIRFRank: 32, TopBranch: "Computer Science", Website: "https://www.nitj.ac.in"},
	{Name: "NIT Kurukshetra", Location: "Kurukshetra", AvgPackage: 6.2, HighestPackage: 0.62, NIRFRank: 33, TopBranch: "Computer Science", Website: "https://www.nitkkr.ac.in"},
	{Name: "NIT Nagpur", Location: "Nagpur", AvgPackage: 6.0, HighestPackage: 0.60, NIRFRank: 34, TopBranch: "Computer Science", Website: "https://www.vnit.ac.in"},
	{Name: "NIT Patna", Location: "Patna", AvgPackage: 5.8, HighestPackage: 0.58, NIRFRank: 36, TopBranch: "Computer Science", Website: "http://www.nitp.ac.in"},
	{Name: "NIT Goa", Location: "Goa", AvgPackage: 5.5, HighestPackage: 0.55, NIRFRank: 37, TopBranch: "Computer Science", Website: "https://www.nitgoa.ac.in"},
}

var iiits = []model.College{
	{Name: "IIIT Hyderabad", Location: "Hyderabad", AvgPackage: 32.0, HighestPackage: 2.5, CSEAvg: 32.0, Specialization: "Computer Science & AI/ML", Website: "https://www.iiit.ac.in"},
	{Name: "IIIT Bangalore", Location: "Bangalore", AvgPackage: 28.5, HighestPackage: 2.3, CSEAvg: 28.5, Specialization: "Computer Science & AI/ML", Website: "https://www.iiitb.ac.in"},
	{Name: "IIIT Delhi", Location: "Delhi", AvgPackage: 25.2, HighestPackage: 2.0, CSEAvg: 25.2, Specialization: "Computer Science & AI/ML", Website: "https://iiitd.ac.in"},
	{Name: "IIIT Guwahati", Location: "Guwahati", AvgPackage: 18.5, HighestPackage: 1.5, CSEAvg: 18.5, Specialization: "Computer Science", Website: "http://www.iiitg.ac.in"},
	{Name: "IIIT Pune", Location: "Pune", AvgPackage: 17.2, HighestPackage: 1.4, CSEAvg: 17.2, Specialization: "Computer Science", Website: "http://www.iiitp.ac.in"},
}

var aiims = []model.College{
	{Name: "AIIMS Delhi", Location: "Delhi", Seats: 107, NEETRankRequired: "500-800", Website: "https://www.aiims.edu"},
	{Name: "AIIMS Jodhpur", Location: "Jodhpur", Seats: 50, NEETRankRequired: "1000-1500", Website: "https://aiimsjodhpur.edu.in"},
	{Name: "AIIMS Bhopal", Location: "Bhopal", Seats: 50, NEETRankRequired: "1000-1500", Website: "https://aiimsbhopal.edu.in"},
	{Name: "AIIMS Patna", Location: "Patna", Seats: 50, NEETRankRequired: "1000-1500", Website: "https://aiimspatna.edu.in"},
	{Name: "AIIMS Raipur", Location: "Raipur", Seats: 50, NEETRankRequired: "1000-1500", Website: "https://aiimsraipur.edu.in"},
	{Name: "AIIMS Rishikesh", Location: "Rishikesh", Seats: 50, NEETRankRequired: "1000-1500", Website: "https://aiimsrishikesh.edu.in"},
	{Name: "AIIMS Nagpur", Location: "Nagpur", Seats: 50, NEETRankRequired: "1000-1500", Website: "https://aiimsnagpur.edu.in"},
	{Name: "AIIMS Guntur", Location: "Guntur", Seats: 50, NEETRankRequired: "1000-1500", Website: "https://aiimsguntur.edu.in"},
	{Name: "AIIMS Bibinagar", Location: "Bibinagar", Seats: 50, NEETRankRequired: "1000-1500", Website: "https://aiimsbibinagar.edu.in"},
	{Name: "AIIMS Bhubaneswar", Location: "Bhubaneswar", Seats: 50, NEETRankRequired: "1000-1500", Website: "https://aiimsbhubaneswar.nic.in"},
	{Name: "AIIMS Indore", Location: "Indore", Seats: 50, NEETRankRequired: "1000-1500", Website: "https://aiimsindore.edu.in"},
	{Name: "AIIMS Guwahati", Location: "Guwahati", Seats: 50, NEETRankRequired: "1000-1500", Website: "https://aiimsguwahati.edu.in"},
}

var privateUniversities = []model.College{
	{Name: "BITS Pilani", Location: "Pilani", AvgPackage: 15.0, HighestPackage: 1.6, Entrance: "BITSAT", NIRFRank: 19, Website: "https://www.bits-pilani.ac.in"},
	{Name: "VIT Vellore", Location: "Vellore", AvgPackage: 11.8, HighestPackage: 1.3, Entrance: "VITEEE", NIRFRank: 21, Website: "https://vit.ac.in"},
	{Name: "Manipal University", Location: "Manipal", AvgPackage: 10.5, HighestPackage: 1.1, Entrance: "MET", NIRFRank: 23, Website: "https://manipal.edu"},
	{Name: "Thapar University", Location: "Patiala", AvgPackage: 10.2, HighestPackage: 1.0, Entrance: "Thapar Entrance", NIRFRank: 24, Website: "https://www.thapar.edu"},
	{Name: "SRM University", Location: "Chennai", AvgPackage: 9.5, HighestPackage: 0.95, Entrance: "SRMJEEE", NIRFRank: 38, Website: "https://www.srmist.edu.in"},
	{Name: "Anna University", Location: "Chennai", AvgPackage: 8.8, HighestPackage: 0.88, Entrance: "TNEA", NIRFRank: 41, Website: "https://www.annauniv.edu"},
}

var iims = []model.College{
	{Name: "IIM Ahmedabad", Location: "Ahmedabad", AvgPackage: 32.5, HighestPackage: 3.5, Entrance: "CAT", Website: "https://www.iima.ac.in"},
	{Name: "IIM Bangalore", Location: "Bangalore", AvgPackage: 31.2, HighestPackage: 3.3, Entrance: "CAT", Website: "https://www.iimb.ac.in"},
	{Name: "IIM Calcutta", Location: "Kolkata", AvgPackage: 30.8, HighestPackage: 3.2, Entrance: "CAT", Website: "https://www.iimcal.ac.in"},
	{Name: "IIM Lucknow", Location: "Lucknow", AvgPackage: 28.5, HighestPackage: 3.0, Entrance: "CAT", Website: "https://www.iiml.ac.in"},
	{Name: "IIM Indore", Location: "Indore", AvgPackage: 27.0, HighestPackage: 2.8, Entrance: "CAT", Website: "https://www.iimidr.ac.in"},
}

// collegeGroups lists the categories in catalog order. The combined
// listing concatenates them in this order.
var collegeGroups = [][]model.College{iits, nits, iiits, aiims, privateUniversities, iims}

// CollegesByType returns the college list for the given type filter.
// Unknown or empty types fall back to the combined list of every
// category.
//
// TODO: decide whether to expose an "iiits" filter value; today the IIIT
// list is only reachable through the combined listing.
func CollegesByType(collegeType string) []model.College {
	switch collegeType {
	case "iits":
		return iits
	case "nits":
		return nits
	case "aiims":
		return aiims
	case "private":
		return privateUniversities
	case "iims":
		return iims
	default:
		var all []model.College
		for _, group := range collegeGroups {
			all = append(all, group...)
		}
		return all
	}
}
