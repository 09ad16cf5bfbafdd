package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type Options struct {
	Region       string
	Endpoint     string
	AccessKey    string
	SecretKey    string
	SessionToken string
}

// NewClient builds the process-wide DynamoDB client. Call it once during
// container startup (cold start) and share the result across invocations.
func NewClient(ctx context.Context, opts Options) (*dynamodb.Client, error) {
	var loadOpts []func(*awscfg.LoadOptions) error

	// An empty region defers to the Lambda runtime's AWS_REGION.
	if region := strings.TrimSpace(opts.Region); region != "" {
		loadOpts = append(loadOpts, awscfg.WithRegion(region))
	}

	if opts.AccessKey != "" || opts.SecretKey != "" || opts.SessionToken != "" {
		if opts.AccessKey == "" || opts.SecretKey == "" {
			return nil, errors.New("dynamodb: access key and secret key must be set together")
		}
		loadOpts = append(loadOpts, awscfg.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, opts.SessionToken),
		))
	}

	cfg, err := awscfg.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("dynamodb: load aws config: %w", err)
	}

	client := dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
	})

	return client, nil
}

func validateTable(table string) error {
	if strings.TrimSpace(table) == "" {
		return errors.New("dynamodb: table name is required")
	}
	return nil
}
