package services

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/pkg/errors"
)

type Mailer interface {
	SendWelcome(ctx context.Context, to, name string) error
}

type SESMailer struct {
	client *ses.Client
	from   string
}

func NewSESMailer(ctx context.Context, region, from string) (*SESMailer, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, errors.Wrap(err, "load AWS config for SES")
	}
	return &SESMailer{client: ses.NewFromConfig(cfg), from: from}, nil
}

func (m *SESMailer) send(ctx context.Context, to, subject, body string) error {
	_, err := m.client.SendEmail(ctx, &ses.SendEmailInput{
		Destination: &types.Destination{ToAddresses: []string{to}},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject)},
			Body:    &types.Body{Text: &types.Content{Data: aws.String(body)}},
		},
		Source: aws.String(m.from),
	})
	if err != nil {
		return errors.Wrap(err, "ses send")
	}
	return nil
}

func (m *SESMailer) SendWelcome(ctx context.Context, to, name string) error {
	body := fmt.Sprintf("Hi %s,\n\nWelcome to NutriScan! Finish your profile in the app to get your daily calorie and macro targets.", name)
	return m.send(ctx, to, "Welcome to NutriScan", body)
}
