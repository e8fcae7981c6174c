// Package credentials defines the Genesys Cloud OAuth credential set and the
// environment variable names it is exported under.
package credentials

const (
	// ClientIDVar holds the OAuth client ID
	ClientIDVar = "GENESYSCLOUD_OAUTHCLIENT_ID"
	// ClientSecretVar holds the OAuth client secret
	ClientSecretVar = "GENESYSCLOUD_OAUTHCLIENT_SECRET"
	// RegionVar holds the region the org lives in, e.g. us-east-1
	RegionVar = "GENESYSCLOUD_REGION"
)

// Set is the client ID, client secret and region collected from the user.
// Values are kept as typed; nothing checks them for format or emptiness.
type Set struct {
	ClientID     string
	ClientSecret string
	Region       string
}

// Var is a single NAME=value pair in export order.
type Var struct {
	Name  string
	Value string
}

// Vars returns the set as ordered variables: client ID, client secret, region.
func (s Set) Vars() []Var {
	return []Var{
		{Name: ClientIDVar, Value: s.ClientID},
		{Name: ClientSecretVar, Value: s.ClientSecret},
		{Name: RegionVar, Value: s.Region},
	}
}

// FromVars builds a Set from exported variables. Unknown names are ignored.
func FromVars(vars map[string]string) Set {
	return Set{
		ClientID:     vars[ClientIDVar],
		ClientSecret: vars[ClientSecretVar],
		Region:       vars[RegionVar],
	}
}
