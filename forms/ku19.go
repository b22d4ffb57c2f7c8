package forms

import "github.com/reoring/kontrolluppgift/dsl"

var InkomsttagareKU19 = dsl.Record("InkomsttagareKU19").
	Field("LandskodTIN", landskod()).Code("076").
	Field("LandskodMedborgare", landskod()).Code("081").
	Field("Inkomsttagare", dsl.IdentityNumber()).Code("215").
	Field("Fornamn", dsl.String()).Code("216").
	Field("Efternamn", dsl.String()).Code("217").
	Field("Gatuadress", dsl.String()).Code("218").
	Field("Postnummer", dsl.String()).Code("219").
	Field("Postort", dsl.String()).Code("220").
	Field("LandskodPostort", landskod()).Code("221").
	Field("Fodelsetid", dsl.String()).Code("222").
	Field("AnnatIDNr", dsl.String()).Code("224").
	Field("OrgNamn", dsl.String()).Code("226").
	Field("Gatuadress2", dsl.String()).Code("228").
	Field("FriAdress", dsl.String()).Code("230").
	Field("TIN", dsl.String()).Code("252").
	MustBuild()

var UppgiftslamnareKU19 = provider("UppgiftslamnareKU19")

// KU19 reports compensation paid to members of a non-profit association
// and other taxable payments outside employment. Ersattningskod is kept as
// text; the authority publishes its code list separately.
var KU19 = dsl.Record("KU19").
	Field("AvdragenSkatt", dsl.Int()).Code("001").
	Field("Ersattningskod", dsl.String()).Code("004").
	Field("ErsattningBelopp", dsl.Int()).Code("005").
	Field("Inkomstar", dsl.String()).Code("203").Required().
	Field("Borttag", dsl.Bool()).Code("205").
	Field("Specifikationsnummer", dsl.Int()).Code("570").Required().
	Nested("InkomsttagareKU19", InkomsttagareKU19).Required().
	Nested("UppgiftslamnareKU19", UppgiftslamnareKU19).Required().
	MustBuild()
