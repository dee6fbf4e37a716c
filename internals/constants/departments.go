package constants

var Departments = []string{
	"Computer Engineering",
	"IT Engineering",
	"Electronics and Telecommunication Engineering",
	"Mechanical Engineering",
	"Civil Engineering",
	"Electrical Engineering",
	"Artificial Intelligence and Data Science",
}

func IsDepartment(d string) bool {
	for _, v := range Departments {
		if v == d {
			return true
		}
	}
	return false
}

// Room & subject vocabularies.
const (
	RoomClassroom = "Classroom"
	RoomLab       = "Lab"
	RoomTutorial  = "Tutorial"

	LabCategoryNone    = "None"
	LabCategoryDefault = "General Lab"

	ComponentTheory   = "Theory"
	ComponentLab      = "Lab"
	ComponentTutorial = "Tutorial"

	YearShared = "Shared"
)

var (
	RoomTypes      = []string{RoomClassroom, RoomLab, RoomTutorial}
	ComponentTypes = []string{ComponentTheory, ComponentLab, ComponentTutorial}
	AcademicYears  = []string{"1st", "2nd", "3rd", "4th"}
	RoomYears      = []string{"1st Year", "2nd Year", "3rd Year", "4th Year", YearShared}
	LabCategories  = []string{LabCategoryDefault, "Computer Lab", "Electronics Lab", "Hardware Lab", "Networking Lab", "Project Lab"}
)

func HasRoomYear(y string) bool {
	for _, v := range RoomYears {
		if v == y {
			return true
		}
	}
	return false
}

func HasAcademicYear(y string) bool {
	for _, v := range AcademicYears {
		if v == y {
			return true
		}
	}
	return false
}
