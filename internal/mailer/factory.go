package mailer

import "github.com/victornavas/unified-api/pkg/config"

// FromConfig picks a mail backend: MailerSend when an API key is present,
// SMTP when a host is configured, otherwise the dev logger.
func FromConfig(cfg config.EmailConfig) Service {
	if cfg.DevMode {
		return NewDevMailer()
	}
	if cfg.MailerSendKey != "" {
		return NewMailerSend(cfg.MailerSendKey, cfg.FromName, cfg.FromEmail, cfg.NotifyEmail)
	}
	if cfg.SMTPHost != "" {
		return NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.FromEmail, cfg.SMTPUser, cfg.SMTPPass, cfg.NotifyEmail)
	}
	return NewDevMailer()
}
