package forms

import "github.com/reoring/kontrolluppgift/dsl"

// InkomsttagareKU10 identifies the recipient of a KU10.
var InkomsttagareKU10 = dsl.Record("InkomsttagareKU10").
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

// UppgiftslamnareKU10 identifies the provider of a KU10.
var UppgiftslamnareKU10 = provider("UppgiftslamnareKU10")

// KU10 is the statement of income from employment (Kontrolluppgift 10).
var KU10 = dsl.Record("KU10").
	Field("KontantBruttolonMm", dsl.Int()).Code("011").
	Field("FormanUtomBilDrivmedel", dsl.Int()).Code("012").
	Field("BilformanUtomDrivmedel", dsl.Int()).Code("013").
	Field("DrivmedelVidBilforman", dsl.Int()).Code("018").
	Field("AndraKostnadsers", dsl.Int()).Code("020").
	Field("UnderlagRutarbete", dsl.Int()).Code("021").
	Field("UnderlagRotarbete", dsl.Int()).Code("022").
	Field("ErsMEgenavgifter", dsl.Int()).Code("025").
	Field("Tjanstepension", dsl.Int()).Code("030").
	Field("ErsEjSocAvg", dsl.Int()).Code("031").
	Field("ErsEjSocAvgEjJobbavd", dsl.Int()).Code("032").
	Field("Forskarskattenamnden", dsl.Int()).Code("035").
	Field("VissaAvdrag", dsl.Int()).Code("037").
	Field("Hyresersattning", dsl.Int()).Code("039").
	Field("BostadSmahus", dsl.Bool()).Code("041").
	Field("BostadEjSmahus", dsl.Bool()).Code("043").
	Field("FormanHarJusterats", dsl.Bool()).Code("048").
	Field("FormanSomPension", dsl.Bool()).Code("049").
	Field("Bilersattning", dsl.Bool()).Code("050").
	Field("Traktamente", dsl.Bool()).Code("051").
	Field("PersonaloptionForvarvAndel", dsl.Bool()).Code("059").
	Field("Arbetsstallenummer", dsl.String()).Code("060").
	Field("Delagare", dsl.Bool()).Code("061").
	Field("SocialAvgiftsAvtal", dsl.Bool()).Code("093").
	Field("Inkomstar", dsl.String()).Code("203").Required().
	Field("Borttag", dsl.Bool()).Code("205").
	Field("Specifikationsnummer", dsl.Int()).Code("570").Required().
	Nested("InkomsttagareKU10", InkomsttagareKU10).Required().
	Nested("UppgiftslamnareKU10", UppgiftslamnareKU10).Required().
	MustBuild()
