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

var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

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

func TestSESMailer_Send(t *testing.T) {
	client := &fakeSES{}
	m := newSESMailer(client, "ferias@example.com", "Ferias", testLogger)

	err := m.Send("mod@example.com", "Asunto", "<p>hola</p>", "")
	require.NoError(t, err)
	require.NotNil(t, client.input)
	assert.Equal(t, "Ferias <ferias@example.com>", aws.ToString(client.input.Source))
	assert.Equal(t, []string{"mod@example.com"}, client.input.Destination.ToAddresses)
	assert.Equal(t, "Asunto", aws.ToString(client.input.Message.Subject.Data))
	assert.Equal(t, "<p>hola</p>", aws.ToString(client.input.Message.Body.Html.Data))
	assert.Nil(t, client.input.Message.Body.Text)
}

func TestSESMailer_Send_without_from_name(t *testing.T) {
	client := &fakeSES{}
	m := newSESMailer(client, "ferias@example.com", "", testLogger)

	require.NoError(t, m.Send("mod@example.com", "s", "", "texto"))
	assert.Equal(t, "ferias@example.com", aws.ToString(client.input.Source))
	assert.Equal(t, "texto", aws.ToString(client.input.Message.Body.Text.Data))
}

func TestSESMailer_Send_error(t *testing.T) {
	client := &fakeSES{err: errors.New("throttled")}
	m := newSESMailer(client, "ferias@example.com", "", testLogger)

	err := m.Send("mod@example.com", "s", "h", "t")
	assert.ErrorIs(t, err, client.err)
}

func TestNewMailer(t *testing.T) {
	tests := []struct {
		name     string
		config   MailerConfig
		wantNoop bool
		wantErr  bool
	}{
		{name: "noop", config: MailerConfig{Provider: ProviderNoop}, wantNoop: true},
		{name: "empty provider", config: MailerConfig{}, wantNoop: true},
		{name: "unknown provider", config: MailerConfig{Provider: "smtp"}, wantNoop: true},
		{name: "ses", config: MailerConfig{Provider: ProviderSES, FromAddress: "a@b.c", SES: SESConfig{Region: "us-east-1"}}},
		{name: "ses without from address", config: MailerConfig{Provider: ProviderSES}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMailer(tt.config, testLogger)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			_, isNoop := m.(*noopMailer)
			assert.Equal(t, tt.wantNoop, isNoop)
		})
	}
}
