package adapters

import (
	"context"
	"fmt"

	mail "github.com/wneessen/go-mail"

	"github.com/JovialSquirrel/local-news-podcast/application/ports/outbound"
	"github.com/JovialSquirrel/local-news-podcast/config"
	"github.com/JovialSquirrel/local-news-podcast/domain"
)

const (
	podcastMailSubject = "Your Local News Podcast"
	podcastMailBody    = "Here is your requested podcast!"
)

type smtpMailer struct {
	mailConfig *config.MailConfig
	logger     outbound.LoggerPort
}

func NewSMTPMailer(mailConfig *config.MailConfig, logger outbound.LoggerPort) outbound.PodcastMailerPort {
	return &smtpMailer{
		mailConfig: mailConfig,
		logger:     logger,
	}
}

func (m *smtpMailer) Send(ctx context.Context, to string, audioPath string) error {
	msg := mail.NewMsg()
	if err := msg.From(m.mailConfig.Username); err != nil {
		return fmt.Errorf("%w: set sender: %v", domain.ErrDelivery, err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("%w: set recipient: %v", domain.ErrDelivery, err)
	}
	msg.Subject(podcastMailSubject)
	msg.SetBodyString(mail.TypeTextPlain, podcastMailBody)
	msg.AttachFile(audioPath, mail.WithFileContentType("audio/mpeg"))

	opts := []mail.Option{
		mail.WithPort(m.mailConfig.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.mailConfig.Username),
		mail.WithPassword(m.mailConfig.Password),
		mail.WithTimeout(m.mailConfig.Timeout),
	}
	if m.mailConfig.Port == 465 {
		opts = append(opts, mail.WithSSL())
	}

	client, err := mail.NewClient(m.mailConfig.Host, opts...)
	if err != nil {
		m.logger.Error(err, "failed to create mail client")
		return fmt.Errorf("%w: open mail session: %v", domain.ErrDelivery, err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		m.logger.ErrorWithFields(err, "failed to send podcast mail", map[string]interface{}{
			"to": to,
		})
		return fmt.Errorf("%w: send: %v", domain.ErrDelivery, err)
	}

	m.logger.InfoWithFields("podcast mail sent", map[string]interface{}{
		"to": to,
	})

	return nil
}
