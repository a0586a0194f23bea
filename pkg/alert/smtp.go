package alert

import (
	"context"
	"strconv"

	gomail "gopkg.in/gomail.v2"

	"github.com/raids-lab/orbit/dao/model"
	"github.com/raids-lab/orbit/pkg/config"
	"github.com/raids-lab/orbit/pkg/logutils"
)

type SMTPAlerter struct {
	dialer *gomail.Dialer
	from   string
}

func newSMTPAlerter() alertHandlerInterface {
	smtpConfig := config.GetConfig().SMTP
	port, err := strconv.Atoi(smtpConfig.Port)
	if err != nil {
		logutils.Log.Errorf("invalid smtp port %q, falling back to 25: %v", smtpConfig.Port, err)
		port = 25
	}
	return &SMTPAlerter{
		dialer: gomail.NewDialer(smtpConfig.Host, port, smtpConfig.User, smtpConfig.Password),
		from:   smtpConfig.Notify,
	}
}

func (sa *SMTPAlerter) SendMessageTo(_ context.Context, receiver *model.UserAttribute, subject, body string) error {
	if receiver.Email == "" {
		logutils.Log.Warnf("%s does not have an email address", receiver.Name)
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", sa.from)
	m.SetHeader("To", receiver.Email)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := sa.dialer.DialAndSend(m); err != nil {
		logutils.Log.Errorf("Failed to send email to %s: %v", receiver.Email, err)
		return err
	}

	logutils.Log.Infof("Sent email to %s", receiver.Email)
	return nil
}
