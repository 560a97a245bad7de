package email

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSES struct {
	input *ses.SendEmailInput
	err   error
}

func (f *fakeSES) SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &ses.SendEmailOutput{MessageId: aws.String("msg-1")}, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewMailer(t *testing.T) {
	tests := []struct {
		name    string
		config  MailerConfig
		wantSES bool
		wantErr bool
	}{
		{name: "noop", config: MailerConfig{Provider: ProviderNoop}},
		{name: "unknown falls back to noop", config: MailerConfig{Provider: "smtp"}},
		{name: "ses", config: MailerConfig{Provider: ProviderSES, FromAddress: "hi@example.com", SES: SESConfig{Region: "us-east-2"}}, wantSES: true},
		{name: "ses without from", config: MailerConfig{Provider: ProviderSES}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMailer(tt.config, discardLogger())
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			_, isSES := m.(*sesMailer)
			assert.Equal(t, tt.wantSES, isSES)
		})
	}
}

func TestSESMailer_Send(t *testing.T) {
	client := &fakeSES{}
	m := newSESMailer(client, "hi@example.com", "Mpls Jr Devs", discardLogger())

	err := m.Send(context.Background(), "ada@example.com", "Next up", "<p>hi</p>", "hi")
	require.NoError(t, err)

	require.NotNil(t, client.input)
	assert.Equal(t, "Mpls Jr Devs <hi@example.com>", aws.ToString(client.input.Source))
	assert.Equal(t, []string{"ada@example.com"}, client.input.Destination.ToAddresses)
	assert.Equal(t, "Next up", aws.ToString(client.input.Message.Subject.Data))
	assert.Equal(t, "<p>hi</p>", aws.ToString(client.input.Message.Body.Html.Data))
	assert.Equal(t, "hi", aws.ToString(client.input.Message.Body.Text.Data))
}

func TestSESMailer_Send_textOnly(t *testing.T) {
	client := &fakeSES{}
	m := newSESMailer(client, "hi@example.com", "", discardLogger())

	require.NoError(t, m.Send(context.Background(), "ada@example.com", "s", "", "plain"))
	assert.Equal(t, "hi@example.com", aws.ToString(client.input.Source))
	assert.Nil(t, client.input.Message.Body.Html)
}

func TestSESMailer_Send_error(t *testing.T) {
	cause := errors.New("throttled")
	m := newSESMailer(&fakeSES{err: cause}, "hi@example.com", "", discardLogger())

	err := m.Send(context.Background(), "ada@example.com", "s", "h", "t")
	require.ErrorIs(t, err, cause)
}
