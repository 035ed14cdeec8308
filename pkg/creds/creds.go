// Package creds probes whether the credentials a generated command refers to
// can actually be resolved on this machine. It backs the doctor command and
// never touches ScoutSuite itself.
package creds

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// Options selects which credentials to probe. Static keys take precedence
// over a named profile, mirroring the --access-keys flags of the generated
// command; everything empty means the default credential chain.
type Options struct {
	Profile         string
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
}

// Identity is the caller identity resolved from STS.
type Identity struct {
	AccountID string `json:"account_id"`
	ARN       string `json:"arn"`
	UserID    string `json:"user_id"`
}

// STSAPI is the subset of the STS client used by Check.
type STSAPI interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

// ClientFactory builds an STS client from a resolved AWS config.
// Tests inject a fake here.
type ClientFactory func(aws.Config) STSAPI

func defaultFactory(cfg aws.Config) STSAPI {
	return sts.NewFromConfig(cfg)
}

// Check resolves the selected credentials and calls STS GetCallerIdentity.
func Check(ctx context.Context, opts Options) (*Identity, error) {
	return CheckWithFactory(ctx, opts, defaultFactory)
}

// CheckWithFactory is Check with an injectable STS client constructor.
func CheckWithFactory(ctx context.Context, opts Options, factory ClientFactory) (*Identity, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOptions(opts)...)
	if err != nil {
		return nil, fmt.Errorf("load AWS configuration: %w", err)
	}

	// STS is global; any region works, but the SDK requires one.
	if cfg.Region == "" {
		cfg.Region = "us-east-1"
	}

	out, err := factory(cfg).GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return nil, fmt.Errorf("STS GetCallerIdentity: %w", err)
	}

	return &Identity{
		AccountID: aws.ToString(out.Account),
		ARN:       aws.ToString(out.Arn),
		UserID:    aws.ToString(out.UserId),
	}, nil
}

// loadOptions maps Options onto AWS SDK config load options.
func loadOptions(opts Options) []func(*awsconfig.LoadOptions) error {
	var fns []func(*awsconfig.LoadOptions) error

	switch {
	case opts.AccessKeyID != "" && opts.SecretAccessKey != "":
		fns = append(fns, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				opts.AccessKeyID, opts.SecretAccessKey, opts.SessionToken)))
	case opts.Profile != "":
		fns = append(fns, awsconfig.WithSharedConfigProfile(opts.Profile))
	}

	return fns
}
