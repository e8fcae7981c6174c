// Package regions maps Genesys Cloud regions to their API domains.
package regions

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownRegion is returned for a region not in the table.
var ErrUnknownRegion = errors.New("unknown region")

var domains = map[string]string{
	"dca":            "inindca.com",
	"tca":            "inintca.com",
	"us-east-1":      "mypurecloud.com",
	"us-east-2":      "use2.us-gov-pure.cloud",
	"us-west-2":      "usw2.pure.cloud",
	"eu-west-1":      "mypurecloud.ie",
	"eu-west-2":      "euw2.pure.cloud",
	"ap-southeast-2": "mypurecloud.com.au",
	"ap-northeast-1": "mypurecloud.jp",
	"eu-central-1":   "mypurecloud.de",
	"ca-central-1":   "cac1.pure.cloud",
	"ap-northeast-2": "apne2.pure.cloud",
	"ap-south-1":     "aps1.pure.cloud",
	"sa-east-1":      "sae1.pure.cloud",
	"ap-northeast-3": "apne3.pure.cloud",
	"eu-central-2":   "euc2.pure.cloud",
	"me-central-1":   "mec1.pure.cloud",
	"mx-central-1":   "mxc1.pure.cloud",
	"ap-southeast-1": "apse1.pure.cloud",
}

// Region is a region name and its domain.
type Region struct {
	Name   string
	Domain string
}

// BasePath is the API root for the region.
func (r Region) BasePath() string {
	return "https://api." + r.Domain
}

// LoginURL is the OAuth host for the region.
func (r Region) LoginURL() string {
	return "https://login." + r.Domain
}

// Lookup finds a region by name, case-insensitively.
func Lookup(name string) (Region, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	domain, ok := domains[key]
	if !ok {
		return Region{}, fmt.Errorf("%w: %q", ErrUnknownRegion, name)
	}
	return Region{Name: key, Domain: domain}, nil
}

// List returns every known region sorted by name.
func List() []Region {
	list := make([]Region, 0, len(domains))
	for name, domain := range domains {
		list = append(list, Region{Name: name, Domain: domain})
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list
}
