package document

import (
	"encoding/json"

	"github.com/erraggy/openapi-merge/internal/jsonext"
)

// SecurityScheme describes one authentication mechanism.
type SecurityScheme struct {
	Ref string `yaml:"$ref,omitempty" json:"$ref,omitempty"`

	Type             string         `yaml:"type,omitempty" json:"type,omitempty"`
	Description      string         `yaml:"description,omitempty" json:"description,omitempty"`
	Name             string         `yaml:"name,omitempty" json:"name,omitempty"`
	In               string         `yaml:"in,omitempty" json:"in,omitempty"`
	Scheme           string         `yaml:"scheme,omitempty" json:"scheme,omitempty"`
	BearerFormat     string         `yaml:"bearerFormat,omitempty" json:"bearerFormat,omitempty"`
	Flows            *OAuthFlows    `yaml:"flows,omitempty" json:"flows,omitempty"`
	OpenIDConnectURL string         `yaml:"openIdConnectUrl,omitempty" json:"openIdConnectUrl,omitempty"`
	Extra            map[string]any `yaml:",inline" json:"-"`
}

func (s *SecurityScheme) MarshalJSON() ([]byte, error) {
	type alias SecurityScheme
	return jsonext.MarshalAliasWithExtras((*alias)(s), s.Extra)
}

func (s *SecurityScheme) UnmarshalJSON(data []byte) error {
	type alias SecurityScheme
	if err := json.Unmarshal(data, (*alias)(s)); err != nil {
		return err
	}
	s.Extra = jsonext.ExtractExtensions(data)
	return nil
}

// OAuthFlows groups the OAuth2 flow variants a SecurityScheme may declare.
type OAuthFlows struct {
	Implicit          *OAuthFlow `yaml:"implicit,omitempty" json:"implicit,omitempty"`
	Password          *OAuthFlow `yaml:"password,omitempty" json:"password,omitempty"`
	ClientCredentials *OAuthFlow `yaml:"clientCredentials,omitempty" json:"clientCredentials,omitempty"`
	AuthorizationCode *OAuthFlow `yaml:"authorizationCode,omitempty" json:"authorizationCode,omitempty"`
}

// OAuthFlow configures a single OAuth2 flow.
type OAuthFlow struct {
	AuthorizationURL string            `yaml:"authorizationUrl,omitempty" json:"authorizationUrl,omitempty"`
	TokenURL         string            `yaml:"tokenUrl,omitempty" json:"tokenUrl,omitempty"`
	RefreshURL       string            `yaml:"refreshUrl,omitempty" json:"refreshUrl,omitempty"`
	Scopes           map[string]string `yaml:"scopes,omitempty" json:"scopes,omitempty"`
}
