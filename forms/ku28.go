package forms

import "github.com/reoring/kontrolluppgift/dsl"

var InkomsttagareKU28 = dsl.Record("InkomsttagareKU28").
	Field("LandskodTIN", dsl.String()).Code("076").
	Field("Inkomsttagare", dsl.String()).Code("215").
	Field("Fornamn", dsl.String()).Code("216").
	Field("Efternamn", dsl.String()).Code("217").
	Field("Gatuadress", dsl.String()).Code("218").
	Field("Postnummer", dsl.String()).Code("219").
	Field("Postort", dsl.String()).Code("220").
	Field("LandskodPostort", dsl.String()).Code("221").
	Field("Fodelsetid", dsl.String()).Code("222").
	Field("AnnatIDNr", dsl.String()).Code("224").
	Field("OrgNamn", dsl.String()).Code("226").
	Field("Gatuadress2", dsl.String()).Code("228").
	Field("FriAdress", dsl.String()).Code("230").
	Field("TIN", dsl.String()).Code("252").
	MustBuild()

var UppgiftslamnareKU28 = provider("UppgiftslamnareKU28")

// KU28 reports the basis for investment deduction (investeraravdrag) and
// its reversal.
var KU28 = dsl.Record("KU28").
	Field("Delagare", dsl.Bool()).Code("061").
	Field("Inkomstar", dsl.String()).Code("203").Required().
	Field("Borttag", dsl.Bool()).Code("205").
	Field("UnderlagForInvesteraravdrag", dsl.Int()).Code("528").
	Field("TotUnderlagInvesteraravdrag", dsl.Int()).Code("529").
	Field("Betalningsar", dsl.String()).Code("530").
	Field("AterforingAvyttring", dsl.Bool()).Code("531").
	Field("AterforingUtflyttning", dsl.Bool()).Code("532").
	Field("AterforingHogVardeoverforing", dsl.Bool()).Code("533").
	Field("AterforingInternaForvarv", dsl.Bool()).Code("534").
	Field("DatumForvarv", dsl.String()).Code("535").
	Field("Region", dsl.String()).Code("536").
	Field("Verksamhetsomrade", dsl.String()).Code("537").
	Field("Specifikationsnummer", dsl.Int()).Code("570").Required().
	Nested("InkomsttagareKU28", InkomsttagareKU28).Required().
	Nested("UppgiftslamnareKU28", UppgiftslamnareKU28).Required().
	MustBuild()
