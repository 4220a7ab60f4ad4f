// Package schema is the single source of truth for the application form
// rules. The same catalogue is served to the client (so the form can
// pre-validate) and consulted by the server-side validator: a submission
// the client accepts is never rejected server-side for a rule the user
// could not see, and vice versa.
package schema

type Kind string

const (
	KindEmail    Kind = "email"
	KindText     Kind = "text"
	KindDate     Kind = "date"
	KindChoice   Kind = "choice"
	KindFreeText Kind = "freetext"
)

// Field is one declarative validation rule. MinLen applies on top of the
// required check; Message is the user-facing (Italian) failure text.
type Field struct {
	Name     string `json:"name"`
	Kind     Kind   `json:"kind"`
	Required bool   `json:"required"`
	MinLen   int    `json:"min_len,omitempty"`
	Message  string `json:"message"`
}

// Fields is the ordered catalogue. Order matters only for error
// collection and for the mirrored sheet row, which uses these names in
// this exact sequence.
var Fields = []Field{
	{Name: "email", Kind: KindEmail, Required: true, Message: "Inserisci un indirizzo email valido."},
	{Name: "name", Kind: KindText, Required: true, MinLen: 2, Message: "Il nome deve contenere almeno 2 caratteri."},
	{Name: "surname", Kind: KindText, Required: true, MinLen: 2, Message: "Il cognome deve contenere almeno 2 caratteri."},
	{Name: "birth_date", Kind: KindDate, Required: true, Message: "La data di nascita è obbligatoria"},
	{Name: "phone", Kind: KindText, Required: true, Message: "Il numero di telefono è obbligatorio"},
	{Name: "residency", Kind: KindChoice, Required: true, Message: "La residenza è obbligatoria"},
	{Name: "domiciliation", Kind: KindChoice, Required: true, Message: "Il domicilio è obbligatorio"},
	{Name: "university", Kind: KindChoice, Required: true, Message: "L'università è obbligatoria"},
	{Name: "faculty", Kind: KindChoice, Required: true, Message: "La facoltà è obbligatoria"},
	{Name: "course", Kind: KindChoice, Required: true, Message: "Il corso è obbligatorio"},
	{Name: "curriculum_type", Kind: KindText, Required: true, Message: "Il tipo di curriculum è obbligatorio"},
	{Name: "course_year", Kind: KindChoice, Required: true, Message: "L'anno di corso è obbligatorio"},
	{Name: "area_1", Kind: KindChoice, Required: true, Message: "La prima area di preferenza è obbligatoria"},
	{Name: "area_2", Kind: KindChoice, Required: true, Message: "La seconda area di preferenza è obbligatoria"},
	{Name: "how_know_jesap", Kind: KindChoice, Required: true, Message: "Seleziona come hai conosciuto JESAP"},
	{Name: "why_jesap", Kind: KindFreeText, Required: true, Message: "Spiegaci perché vuoi unirti a JESAP"},
	{Name: "why_area", Kind: KindFreeText, Required: true, MinLen: 10, Message: "Spiegaci perché hai scelto queste aree"},
	{Name: "know_someone", Kind: KindChoice, Required: false, Message: "Seleziona se conosci qualcuno in JESAP"},
	{Name: "je_italy_member", Kind: KindChoice, Required: false, Message: "Seleziona se fai parte di JE Italy"},
}

// AreaDistinctMessage is the one cross-field rule: the two preference
// areas must differ. The violation is reported against area_2.
const AreaDistinctMessage = "Le due aree di preferenza devono essere diverse"

// Resume constraints. The attachment is optional server-side; when
// present it must fit the size cap and carry an allowed extension.
const (
	ResumeField           = "resume"
	ResumeTooLargeMessage = "Il curriculum supera la dimensione massima consentita"
	ResumeBadTypeMessage  = "Formato del curriculum non supportato (PDF o Word)"
)

var AllowedResumeExts = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

// ByName returns the field definition, or false if the name is not in
// the catalogue.
func ByName(name string) (Field, bool) {
	for _, f := range Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Names returns the field names in catalogue order.
func Names() []string {
	names := make([]string, len(Fields))
	for i, f := range Fields {
		names[i] = f.Name
	}
	return names
}
