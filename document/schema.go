package document

import "github.com/reoring/kontrolluppgift/dsl"

// Envelope constants written on the root element. They are emitted verbatim
// and not interpreted on decode.
const (
	RootName       = "Skatteverket"
	RootQName      = "i:Skatteverket"
	InstanceNS     = "http://xmls.skatteverket.se/se/skatteverket/ai/instans/infoForBeskattning/8.0"
	ComponentNS    = "http://xmls.skatteverket.se/se/skatteverket/ai/komponent/infoForBeskattning/8.0"
	XSINS          = "http://www.w3.org/2001/XMLSchema-instance"
	Omrade         = "Kontrolluppgifter"
	SchemaLocation = InstanceNS + " http://xmls.skatteverket.se/se/skatteverket/ai/kontrolluppgift/instans/Kontrolluppgifter_8.0.xsd"

	xmlDecl = `version="1.0" encoding="UTF-8" standalone="no"`
)

// Element names of the envelope.
const (
	ElemSender   = "Avsandare"
	ElemShared   = "Blankettgemensamt"
	ElemEntry    = "Blankett"
	ElemCaseInfo = "Arendeinformation"
	ElemContent  = "Blankettinnehall"
	AttrNumber   = "nummer"
)

var TekniskKontaktperson = dsl.Record("TekniskKontaktperson").
	Field("Namn", dsl.String()).Required().
	Field("Telefon", dsl.String()).Required().
	Field("Epostadress", dsl.String()).Required().
	Field("Utdelningsadress1", dsl.String()).
	Field("Utdelningsadress2", dsl.String()).
	Field("Postnummer", dsl.String()).
	Field("Postort", dsl.String()).
	MustBuild()

// Avsandare describes the sender of the file, usually the software vendor.
var Avsandare = dsl.Record(ElemSender).
	Field("Programnamn", dsl.String()).Required().
	Field("Organisationsnummer", dsl.String()).Required().
	Nested("TekniskKontaktperson", TekniskKontaktperson).Required().
	Field("Skapad", dsl.String()).Required().
	MustBuild()

var Kontaktperson = dsl.Record("Kontaktperson").
	Field("Namn", dsl.String()).Required().
	Field("Telefon", dsl.String()).Required().
	Field("Epostadress", dsl.String()).Required().
	Field("Sakomrade", dsl.String()).
	MustBuild()

var Uppgiftslamnare = dsl.Record("Uppgiftslamnare").
	Field("UppgiftslamnarePersOrgnr", dsl.String()).Required().
	Nested("Kontaktperson", Kontaktperson).Required().
	MustBuild()

// Blankettgemensamt holds data shared by every form in the file.
var Blankettgemensamt = dsl.Record(ElemShared).
	Nested("Uppgiftslamnare", Uppgiftslamnare).Required().
	MustBuild()

// Arendeinformation identifies the case a form belongs to.
var Arendeinformation = dsl.Record(ElemCaseInfo).
	Field("Arendeagare", dsl.String()).Required().
	Field("Period", dsl.String()).Required().
	Field("Arendenummer", dsl.String()).
	MustBuild()
