package aws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

// Reference schemes understood by the resolver
const (
	SchemeSSM            = "ssm"
	SchemeSecretsManager = "secretsmanager"
)

var (
	ErrUnknownScheme = errors.New("unknown reference scheme")
	ErrBinarySecret  = errors.New("secret has no string value")
)

// SSMAPI is the part of the SSM client the resolver needs
type SSMAPI interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

// SecretsManagerAPI is the part of the Secrets Manager client the resolver needs
type SecretsManagerAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

var (
	_ SSMAPI            = (*ssm.Client)(nil)
	_ SecretsManagerAPI = (*secretsmanager.Client)(nil)
)

// Resolver looks up {{resolve:ssm:...}} and {{resolve:secretsmanager:...}}
// references. Values are cached for the life of the resolver so a pipeline
// reading many lines fetches each reference once.
type Resolver struct {
	ssm SSMAPI
	sm  SecretsManagerAPI

	mu    sync.Mutex
	cache map[string]string
}

// NewResolver creates a resolver over the given clients
func NewResolver(ssmClient SSMAPI, smClient SecretsManagerAPI) *Resolver {
	return &Resolver{
		ssm:   ssmClient,
		sm:    smClient,
		cache: make(map[string]string),
	}
}

// Resolve returns the value behind a reference.
//
// ssm keys are parameter names, optionally suffixed with :version or :label.
// secretsmanager keys are secret IDs or ARNs, optionally followed by
// :SecretString:json-key to pick one field of a JSON secret.
func (r *Resolver) Resolve(ctx context.Context, scheme, key string) (string, error) {
	cacheKey := scheme + ":" + key

	r.mu.Lock()
	v, ok := r.cache[cacheKey]
	r.mu.Unlock()
	if ok {
		return v, nil
	}

	var err error
	switch scheme {
	case SchemeSSM:
		v, err = r.getParameter(ctx, key)
	case SchemeSecretsManager:
		v, err = r.getSecret(ctx, key)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownScheme, scheme)
	}
	if err != nil {
		return "", err
	}

	r.mu.Lock()
	r.cache[cacheKey] = v
	r.mu.Unlock()
	return v, nil
}

func (r *Resolver) getParameter(ctx context.Context, name string) (string, error) {
	output, err := r.ssm.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(name),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("failed to get SSM parameter: %w", err)
	}
	if output.Parameter == nil {
		return "", fmt.Errorf("failed to get SSM parameter: %s returned no value", name)
	}
	return aws.ToString(output.Parameter.Value), nil
}

func (r *Resolver) getSecret(ctx context.Context, key string) (string, error) {
	id, field, _ := strings.Cut(key, ":SecretString:")

	output, err := r.sm.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(id),
	})
	if err != nil {
		return "", fmt.Errorf("failed to get secret: %w", err)
	}
	if output.SecretString == nil {
		return "", fmt.Errorf("%w: %s", ErrBinarySecret, id)
	}
	if field == "" {
		return *output.SecretString, nil
	}

	var doc map[string]any
	if err := json.Unmarshal([]byte(*output.SecretString), &doc); err != nil {
		return "", fmt.Errorf("failed to parse secret %s as JSON: %w", id, err)
	}
	val, ok := doc[field]
	if !ok {
		return "", fmt.Errorf("secret %s has no key %q", id, field)
	}
	if s, ok := val.(string); ok {
		return s, nil
	}
	b, err := json.Marshal(val)
	if err != nil {
		return "", fmt.Errorf("failed to encode key %q of secret %s: %w", field, id, err)
	}
	return string(b), nil
}
