package credentials

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet_VarsOrder(t *testing.T) {
	set := Set{ClientID: "abc", ClientSecret: "xyz", Region: "us-east-1"}

	assert.Equal(t, []Var{
		{Name: "GENESYSCLOUD_OAUTHCLIENT_ID", Value: "abc"},
		{Name: "GENESYSCLOUD_OAUTHCLIENT_SECRET", Value: "xyz"},
		{Name: "GENESYSCLOUD_REGION", Value: "us-east-1"},
	}, set.Vars())
}

func TestFromVars(t *testing.T) {
	set := FromVars(map[string]string{
		ClientIDVar:     "id",
		ClientSecretVar: "secret",
		RegionVar:       "eu-west-1",
		"PATH":          "/usr/bin",
	})

	assert.Equal(t, Set{ClientID: "id", ClientSecret: "secret", Region: "eu-west-1"}, set)
}

func TestFromVars_Missing(t *testing.T) {
	assert.Equal(t, Set{}, FromVars(nil))
}
