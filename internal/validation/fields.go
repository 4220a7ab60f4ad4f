package validation

// Value returns the candidate's value for a schema field name. Unknown
// names yield the empty string. Keeping this switch next to the struct
// lets callers walk the schema catalogue without reflection.
func (v *ValidatedCandidate) Value(name string) string {
	switch name {
	case "email":
		return v.Email
	case "name":
		return v.Name
	case "surname":
		return v.Surname
	case "birth_date":
		return v.BirthDate
	case "phone":
		return v.Phone
	case "residency":
		return v.Residency
	case "domiciliation":
		return v.Domiciliation
	case "university":
		return v.University
	case "faculty":
		return v.Faculty
	case "course":
		return v.Course
	case "curriculum_type":
		return v.CurriculumType
	case "course_year":
		return v.CourseYear
	case "area_1":
		return v.Area1
	case "area_2":
		return v.Area2
	case "how_know_jesap":
		return v.HowKnowJesap
	case "why_jesap":
		return v.WhyJesap
	case "why_area":
		return v.WhyArea
	case "know_someone":
		return v.KnowSomeone
	case "je_italy_member":
		return v.JEItalyMember
	default:
		return ""
	}
}
