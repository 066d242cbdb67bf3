package lib

import (
	"log"

	"travelbook/src/config"

	"github.com/wneessen/go-mail"
)

func GetSMTPClient() (*mail.Client, error) {
	c, err := mail.NewClient(
		config.SMTPHost(),
		mail.WithPort(config.SMTPPort()),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithTLSPortPolicy(mail.TLSMandatory),
		mail.WithUsername(config.SMTPUsername()),
		mail.WithPassword(config.SMTPPassword()),
	)
	if err != nil {
		log.Printf("Could not initialize smtp client: %s\n", err.Error())
		return nil, err
	}
	return c, nil
}

// NewMessage builds a go-mail message. Invalid addresses are returned as errors rather
// than logged, since every caller has a recipient it must reach.
func NewMessage(input *SendMailInput) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.FromFormat(input.FromName, input.From); err != nil {
		return nil, err
	}
	if err := msg.To(input.To...); err != nil {
		return nil, err
	}
	if input.ReplyTo != "" {
		if err := msg.ReplyTo(input.ReplyTo); err != nil {
			log.Printf("Failed to set Reply-To address: %s\n", err.Error())
		}
	}
	if len(input.Bcc) > 0 {
		if err := msg.Bcc(input.Bcc...); err != nil {
			log.Printf("Failed to set Bcc address: %s\n", err.Error())
		}
	}
	msg.Subject(input.Subject)
	if input.Html {
		msg.SetBodyString(mail.TypeTextHTML, input.Body)
		if input.Text != "" {
			msg.AddAlternativeString(mail.TypeTextPlain, input.Text)
		}
	} else {
		msg.SetBodyString(mail.TypeTextPlain, input.Body)
	}
	for _, a := range input.Attachments {
		if err := msg.AttachReader(a.Name, a.Reader()); err != nil {
			return nil, err
		}
	}
	return msg, nil
}

func SendMail(input *SendMailInput) error {
	msg, err := NewMessage(input)
	if err != nil {
		return err
	}
	c, err := GetSMTPClient()
	if err != nil {
		return err
	}
	return c.DialAndSend(msg)
}

type SendMailInput struct {
	From        string
	FromName    string
	To          []string
	Bcc         []string
	ReplyTo     string
	Subject     string
	Body        string
	Text        string
	Html        bool
	Attachments []Attachment
}
