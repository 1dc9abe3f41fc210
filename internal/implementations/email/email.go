package email

import (
	"accounts/internal/core/domain/user"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

const charset = "UTF-8"

const passwordResetSubject = "Password Reset Request"

type Sender struct {
	ses *ses.Client
	// This address must be verified with Amazon SES.
	sender string
}

func NewSender(awsConfig aws.Config, sender string) *Sender {
	return &Sender{
		ses:    ses.NewFromConfig(awsConfig),
		sender: sender,
	}
}

func (s *Sender) SendResetLink(ctx context.Context, u user.User, link string) error {
	body := fmt.Sprintf(
		"Hi %s,\nUse the link below to reset your password:\n%s",
		u.Name,
		link,
	)
	_, err := s.ses.SendEmail(
		ctx,
		&ses.SendEmailInput{
			Source: &s.sender,
			Destination: &types.Destination{
				ToAddresses: []string{string(u.Email)},
			},
			Message: &types.Message{
				Subject: &types.Content{
					Data:    aws.String(passwordResetSubject),
					Charset: aws.String(charset),
				},
				Body: &types.Body{
					Text: &types.Content{
						Data:    aws.String(body),
						Charset: aws.String(charset),
					},
				},
			},
		},
	)
	return err
}
