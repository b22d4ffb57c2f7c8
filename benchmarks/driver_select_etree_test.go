//go:build etree

package benchmarks_test

import (
	ku "github.com/reoring/kontrolluppgift"
	drv "github.com/reoring/kontrolluppgift/source/etreexml"
)

func init() {
	ku.SetXMLDriver(drv.Driver())
}
