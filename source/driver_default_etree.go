// Package source switches the default XML driver to beevik/etree when
// imported for its side effect:
//
//	import _ "github.com/reoring/kontrolluppgift/source"
package source

import (
	ku "github.com/reoring/kontrolluppgift"
	drvetree "github.com/reoring/kontrolluppgift/source/etreexml"
)

func init() { ku.SetXMLDriver(drvetree.Driver()) }
