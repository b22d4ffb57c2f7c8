package forms

import (
	"github.com/reoring/kontrolluppgift/codec"
	"github.com/reoring/kontrolluppgift/dsl"
)

// avstamningsdag is an xs:date kept as text.
var avstamningsdag = codec.MustRestrict("Avstamningsdag", codec.String(),
	codec.Restriction{Patterns: []string{`[0-9]{4}-[0-9]{2}-[0-9]{2}`}})

var InkomsttagareKU31 = dsl.Record("InkomsttagareKU31").
	Field("LandskodTIN", landskod()).Code("076").
	Field("Fodelseort", dsl.String()).Code("077").
	Field("LandskodFodelseort", landskod()).Code("078").
	Field("LandskodHemvist", landskod()).Code("079").
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

var UppgiftslamnareKU31 = provider("UppgiftslamnareKU31")

// KU31 reports dividends (utdelning) on shares held in Sweden.
var KU31 = dsl.Record("KU31").
	Field("AvdragenSkatt", dsl.Int()).Code("001").
	Field("AvdragenUtlandskSkatt", dsl.Int()).Code("002").
	Field("AvdragenKupongskatt", dsl.Int()).Code("003").
	Field("Delagare", dsl.Bool()).Code("061").
	Field("Inkomstar", dsl.String()).Code("203").Required().
	Field("Borttag", dsl.Bool()).Code("205").
	Field("AnnanInkomst", dsl.Int()).Code("504").
	Field("Depanummer", dsl.Int()).Code("523").
	Field("AndelAvDepan", dsl.Float()).Code("524").
	Field("Specifikationsnummer", dsl.Int()).Code("570").Required().
	Field("VPNamn", dsl.String()).Code("571").
	Field("ISIN", dsl.String()).Code("572").
	Field("UtbetaldUtdelning", dsl.Int()).Code("574").
	Field("AnnanKupongErsattning", dsl.Int()).Code("581").
	Field("OkandVarde", dsl.Bool()).Code("599").
	Field("Avstamningsdag", dsl.Restricted(avstamningsdag)).Code("853").
	Nested("InkomsttagareKU31", InkomsttagareKU31).Required().
	Nested("UppgiftslamnareKU31", UppgiftslamnareKU31).Required().
	MustBuild()
