package mail

import (
	"context"
	"fmt"

	"github.com/MedAmineFouzai/BuilderServiceRest/config"
	"github.com/rs/zerolog/log"
	"gopkg.in/gomail.v2"
)

// Sender delivers composed messages. *gomail.Dialer satisfies it.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

func CreateDialer(conf config.MailConfig) *gomail.Dialer {
	return gomail.NewDialer(conf.SMTPHost, conf.SMTPPort, conf.SMTPUsername, conf.SMTPPassword)
}

// ProjectNotifier emails the configured recipient about project lifecycle
// changes.
type ProjectNotifier struct {
	sender    Sender
	from      string
	recipient string
}

func CreateProjectNotifier(sender Sender, conf config.MailConfig) *ProjectNotifier {
	from := conf.Sender
	if from == "" {
		from = conf.SMTPUsername
	}
	return &ProjectNotifier{sender: sender, from: from, recipient: conf.NotifyRecipient}
}

func (n *ProjectNotifier) NotifyProject(ctx context.Context, projectID string, projectName string, change string) error {
	if n.recipient == "" {
		return nil
	}

	message := gomail.NewMessage()
	message.SetHeader("From", n.from)
	message.SetHeader("To", n.recipient)
	message.SetHeader("Subject", fmt.Sprintf("Project %q: %s", projectName, change))
	message.SetBody("text/plain", fmt.Sprintf("Project %s (%s) changed: %s.", projectName, projectID, change))

	if err := n.sender.DialAndSend(message); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "NotifyProject").Msg("")
		return err
	}

	return nil
}
