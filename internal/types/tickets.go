package types

// MissingField identifies a missing or incomplete profile field. Tickets
// are generated fresh on every completeness analysis pass and consumed
// immediately by the collection interface; they are never persisted.
type MissingField string

// The fixed missing-field taxonomy. The completeness analyzer emits
// tickets in exactly this order, and the collection interface asks the
// user in the same order.
const (
	MissingFullName                      MissingField = "fullName"
	MissingEmail                         MissingField = "email"
	MissingPhone                         MissingField = "phone"
	MissingLocation                      MissingField = "location"
	MissingDateOfBirth                   MissingField = "dateOfBirth"
	MissingEducation                     MissingField = "education"
	MissingCompleteEducationDetails      MissingField = "completeEducationDetails"
	MissingWorkExperience                MissingField = "workExperience"
	MissingCompleteWorkExperienceDetails MissingField = "completeWorkExperienceDetails"
	MissingSkills                        MissingField = "skills"
	MissingLanguages                     MissingField = "languages"
	MissingReferences                    MissingField = "references"
	MissingWorkAuthorization             MissingField = "workAuthorizationStatus"
	MissingSocialMediaProfiles           MissingField = "socialMediaProfiles"
)
