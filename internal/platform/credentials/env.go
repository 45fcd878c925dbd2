package credentials

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ServiceAccountFields are the parts of a service-account key that can be
// supplied one by one through the environment.
type ServiceAccountFields struct {
	Type                    string `json:"type" mapstructure:"FIREBASE_TYPE"`
	ProjectID               string `json:"project_id" mapstructure:"FIREBASE_PROJECT_ID" validate:"required"`
	PrivateKeyID            string `json:"private_key_id,omitempty" mapstructure:"FIREBASE_PRIVATE_KEY_ID"`
	PrivateKey              string `json:"private_key" mapstructure:"FIREBASE_PRIVATE_KEY" validate:"required"`
	ClientEmail             string `json:"client_email" mapstructure:"FIREBASE_CLIENT_EMAIL" validate:"required,email"`
	ClientID                string `json:"client_id,omitempty" mapstructure:"FIREBASE_CLIENT_ID"`
	AuthURI                 string `json:"auth_uri,omitempty" mapstructure:"FIREBASE_AUTH_URI"`
	TokenURI                string `json:"token_uri,omitempty" mapstructure:"FIREBASE_TOKEN_URI"`
	AuthProviderX509CertURL string `json:"auth_provider_x509_cert_url,omitempty" mapstructure:"FIREBASE_AUTH_PROVIDER_X509_CERT_URL"`
	ClientX509CertURL       string `json:"client_x509_cert_url,omitempty" mapstructure:"FIREBASE_CLIENT_X509_CERT_URL"`
}

// EnvProvider builds a bundle from individually supplied fields.
type EnvProvider struct {
	fields   ServiceAccountFields
	validate *validator.Validate
}

func NewEnvProvider(fields ServiceAccountFields) *EnvProvider {
	return &EnvProvider{fields: fields, validate: validator.New(validator.WithRequiredStructEnabled())}
}

func (p *EnvProvider) Name() string { return "environment" }

// Resolve requires every mandatory field; anything less counts as absent so
// the next provider is consulted.
func (p *EnvProvider) Resolve(ctx context.Context) (*Bundle, error) {
	fields := p.fields
	if err := p.validate.Struct(fields); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			missing := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				missing = append(missing, fe.Field())
			}
			return nil, fmt.Errorf("%w: environment missing or invalid %s", ErrNoCredentials, strings.Join(missing, ", "))
		}
		return nil, err
	}

	if fields.Type == "" {
		fields.Type = "service_account"
	}
	// Keys pasted into env files usually carry literal \n sequences.
	fields.PrivateKey = strings.ReplaceAll(fields.PrivateKey, `\n`, "\n")

	data, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to encode environment credentials: %w", err)
	}
	return newBundle(ctx, p.Name(), data)
}
