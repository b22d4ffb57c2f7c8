package codec

const (
	leapYears = `(04|08|12|16|20|24|28|32|36|40|44|48|52|56|60|64|68|72|76|80|84|88|92|96)`
	serial    = `(00[1-9]|0[1-9][0-9]|[1-9][0-9][0-9])[0-9]`

	// PersonnummerPattern matches a twelve digit personnummer (YYYYMMDDNNNC).
	PersonnummerPattern = `((((18|19|20)[0-9][0-9])(((01|03|05|07|08|10|12)(0[1-9]|1[0-9]|2[0-9]|3[0-1]))|((04|06|09|11)(0[1-9]|1[0-9]|2[0-9]|30))|((02)(0[1-9]|1[0-9]|2[0-8]))))|(((18|19|20)` + leapYears + `(0229))|(20000229)))` + serial

	// SamordningsnummerPattern is PersonnummerPattern with 60 added to the day.
	SamordningsnummerPattern = `((((18|19|20)[0-9][0-9])(((01|03|05|07|08|10|12)(6[1-9]|7[0-9]|8[0-9]|9[0-1]))|((04|06|09|11)(6[1-9]|7[0-9]|8[0-9]|90))|((02)(6[1-9]|7[0-9]|8[0-8]))))|(((18|19|20)` + leapYears + `(0289))|(20000289)))` + serial

	// OrganisationsnummerPattern matches a "16"-prefixed organisationsnummer.
	OrganisationsnummerPattern = `16\d{2}[2-9]\d{7}`
)

var identityNumber = MustRestrict("IdentitetsbeteckningForPerson", String(), Restriction{
	Patterns: []string{PersonnummerPattern, SamordningsnummerPattern, OrganisationsnummerPattern},
})

// IdentityNumber returns the IdentitetsbeteckningForPerson codec. A value is
// accepted when any one of the identity patterns matches it.
func IdentityNumber() *Restricted[string] { return identityNumber }
