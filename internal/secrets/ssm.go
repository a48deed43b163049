package secrets

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/smithy-go"
	"github.com/sirupsen/logrus"
)

// maxNamesPerCall is the GetParameters limit on names per request
const maxNamesPerCall = 10

// SSMAPI is the subset of the SSM client used by SSMProvider
type SSMAPI interface {
	GetParameters(ctx context.Context, params *ssm.GetParametersInput, optFns ...func(*ssm.Options)) (*ssm.GetParametersOutput, error)
}

// SSMOptions configures the SSM client
type SSMOptions struct {
	Region   string
	Endpoint string // optional override; credentials still come from the default chain
}

// SSMProvider implements Provider using AWS Systems Manager Parameter Store
type SSMProvider struct {
	client SSMAPI
	logger *logrus.Logger
}

// NewSSMProvider creates a provider backed by a real SSM client
func NewSSMProvider(ctx context.Context, opts SSMOptions, logger *logrus.Logger) (*SSMProvider, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(opts.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := ssm.NewFromConfig(cfg, func(o *ssm.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
	})

	return NewSSMProviderWithClient(client, logger), nil
}

// NewSSMProviderWithClient creates a provider around an existing client
func NewSSMProviderWithClient(client SSMAPI, logger *logrus.Logger) *SSMProvider {
	if logger == nil {
		logger = logrus.New()
	}
	return &SSMProvider{
		client: client,
		logger: logger,
	}
}

// Fetch resolves names under prefix with decryption enabled
func (p *SSMProvider) Fetch(ctx context.Context, prefix string, names []string) (map[string]string, error) {
	result := make(map[string]string, len(names))

	for start := 0; start < len(names); start += maxNamesPerCall {
		end := start + maxNamesPerCall
		if end > len(names) {
			end = len(names)
		}

		fullNames := make([]string, 0, end-start)
		for _, name := range names[start:end] {
			fullNames = append(fullNames, prefix+name)
		}

		out, err := p.client.GetParameters(ctx, &ssm.GetParametersInput{
			Names:          fullNames,
			WithDecryption: aws.Bool(true),
		})
		if err != nil {
			return nil, p.classify(err)
		}

		if len(out.InvalidParameters) > 0 {
			p.logger.WithFields(logrus.Fields{
				"prefix":  prefix,
				"invalid": out.InvalidParameters,
			}).Error("Parameters not found")
			return nil, NewError("GetParameters", strings.Join(out.InvalidParameters, ","), ErrParameterNotFound)
		}

		for _, param := range out.Parameters {
			name := aws.ToString(param.Name)
			result[strings.TrimPrefix(name, prefix)] = aws.ToString(param.Value)
		}
	}

	for _, name := range names {
		if _, ok := result[name]; !ok {
			return nil, NewError("GetParameters", prefix+name, ErrParameterNotFound)
		}
	}

	p.logger.WithFields(logrus.Fields{
		"prefix": prefix,
		"count":  len(result),
	}).Debug("Parameters resolved")

	return result, nil
}

// classify maps an SDK error onto the package sentinels
func (p *SSMProvider) classify(err error) error {
	fields := logrus.Fields{"error": err.Error()}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		fields["code"] = apiErr.ErrorCode()
		if apiErr.ErrorCode() == "ParameterNotFound" {
			p.logger.WithFields(fields).Error("Parameter lookup failed")
			return NewError("GetParameters", "", fmt.Errorf("%w: %v", ErrParameterNotFound, err))
		}
	}

	p.logger.WithFields(fields).Error("Parameter store request failed")
	return NewError("GetParameters", "", fmt.Errorf("%w: %v", ErrStoreUnavailable, err))
}
