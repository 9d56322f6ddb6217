package mail

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/MedAmineFouzai/BuilderServiceRest/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type fakeSender struct {
	sent []*gomail.Message
	err  error
}

func (s *fakeSender) DialAndSend(m ...*gomail.Message) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, m...)
	return nil
}

func TestNotifyProject(t *testing.T) {
	sender := &fakeSender{}
	notifier := CreateProjectNotifier(sender, config.MailConfig{
		SMTPUsername:    "builder@example.com",
		NotifyRecipient: "pm@example.com",
	})

	err := notifier.NotifyProject(context.Background(), "66f1", "Shop", "state changed to mvp")
	require.NoError(t, err)
	require.Len(t, sender.sent, 1)

	msg := sender.sent[0]
	assert.Equal(t, []string{"builder@example.com"}, msg.GetHeader("From"))
	assert.Equal(t, []string{"pm@example.com"}, msg.GetHeader("To"))
	assert.Equal(t, []string{`Project "Shop": state changed to mvp`}, msg.GetHeader("Subject"))

	var body bytes.Buffer
	_, err = msg.WriteTo(&body)
	require.NoError(t, err)
	assert.Contains(t, body.String(), "Project Shop (66f1) changed: state changed to mvp.")
}

func TestNotifyProjectWithoutRecipient(t *testing.T) {
	sender := &fakeSender{}
	notifier := CreateProjectNotifier(sender, config.MailConfig{})

	assert.NoError(t, notifier.NotifyProject(context.Background(), "66f1", "Shop", "archived"))
	assert.Empty(t, sender.sent)
}

func TestNotifyProjectSendFailure(t *testing.T) {
	sender := &fakeSender{err: errors.New("535 authentication failed")}
	notifier := CreateProjectNotifier(sender, config.MailConfig{NotifyRecipient: "pm@example.com"})

	assert.EqualError(t, notifier.NotifyProject(context.Background(), "66f1", "Shop", "archived"), "535 authentication failed")
}
