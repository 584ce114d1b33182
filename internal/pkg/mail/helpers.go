package mail

import (
	"github.com/mx-space/portfolio/internal/config"
)

// BuildMailConfig maps the runtime mail section onto a sender Config.
func BuildMailConfig(cfg config.MailRuntimeConfig) Config {
	return Config{
		Enable:    cfg.Enable,
		Host:      cfg.SMTP.Host,
		Port:      cfg.SMTP.Port,
		User:      cfg.SMTP.User,
		Pass:      cfg.SMTP.Pass,
		From:      cfg.From,
		ResendKey: cfg.Resend.APIKey,
		Timeout:   cfg.Timeout,
	}
}
