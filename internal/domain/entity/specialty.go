package entity

// AllSpecialties is the fixed, ordered catalog of specialty names offered as
// filter choices and matched by suggestions. Names never contain commas.
var AllSpecialties = []string{
	"Dentist",
	"Cardiologist",
	"Dermatologist",
	"Neurologist",
	"Orthopedic",
	"Pediatrician",
	"Gynecologist",
	"Ophthalmologist",
	"ENT Specialist",
	"Psychiatrist",
	"Gastroenterologist",
	"Urologist",
	"Pulmonologist",
	"Endocrinologist",
	"Rheumatologist",
	"Oncologist",
	"Nephrologist",
	"Hematologist",
	"Nutritionist",
	"General Physician",
	"Physiotherapist",
	"Allergist",
	"Immunologist",
	"Anesthesiologist",
	"Radiologist",
}
