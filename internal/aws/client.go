package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/chime"
	"github.com/aws/aws-sdk-go-v2/service/chimesdkmeetings"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	"github.com/vietdv277/chimectl/internal/catalog"
)

// Client wraps the AWS SDK clients chimectl talks to
type Client struct {
	Chime          *chime.Client
	Meetings       *chimesdkmeetings.Client
	SSM            *ssm.Client
	SecretsManager *secretsmanager.Client
	STS            *sts.Client

	cfg     aws.Config
	profile string
	region  string
}

// ClientOption allows customizing the AWS Client
type ClientOption func(*Client)

// WithProfile sets the AWS profile for the client
func WithProfile(profile string) ClientOption {
	return func(c *Client) {
		c.profile = profile
	}
}

// WithRegion sets the AWS region for the client
func WithRegion(region string) ClientOption {
	return func(c *Client) {
		c.region = region
	}
}

// NewClient loads the shared AWS config and builds the service clients.
// Every client makes a single attempt per call; failures surface to the
// caller instead of being retried.
func NewClient(ctx context.Context, opts ...ClientOption) (*Client, error) {
	c := &Client{}
	for _, opt := range opts {
		opt(c)
	}

	cfg, err := config.LoadDefaultConfig(ctx, c.loadOptions()...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS SDK config: %w", err)
	}
	c.cfg = cfg

	c.Chime = chime.NewFromConfig(cfg)
	c.Meetings = chimesdkmeetings.NewFromConfig(cfg)
	c.SSM = ssm.NewFromConfig(cfg)
	c.SecretsManager = secretsmanager.NewFromConfig(cfg)
	c.STS = sts.NewFromConfig(cfg)

	return c, nil
}

func (c *Client) loadOptions() []func(*config.LoadOptions) error {
	configOpts := []func(*config.LoadOptions) error{
		config.WithRetryMaxAttempts(1),
	}
	if c.profile != "" {
		configOpts = append(configOpts, config.WithSharedConfigProfile(c.profile))
	}
	if c.region != "" {
		configOpts = append(configOpts, config.WithRegion(c.region))
	}
	return configOpts
}

// Region returns the region the clients resolved to
func (c *Client) Region() string {
	return c.cfg.Region
}

// Profile returns the profile the client was built with, if any
func (c *Client) Profile() string {
	return c.profile
}

// Services maps catalog service keys to their SDK clients
func (c *Client) Services() map[string]any {
	return map[string]any{
		catalog.ServiceChime:    c.Chime,
		catalog.ServiceMeetings: c.Meetings,
	}
}

// Resolver returns a value reference resolver backed by this client
func (c *Client) Resolver() *Resolver {
	return NewResolver(c.SSM, c.SecretsManager)
}
