package mail

import (
	"bytes"
	"context"
	"html/template"
	"strings"
	texttemplate "text/template"
	"time"
)

const contactNotifyTpl = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta http-equiv="Content-Type" content="text/html; charset=UTF-8" />
</head>
<body style="background-color:#fff;margin:0 auto;font-family:ui-sans-serif,system-ui,-apple-system,BlinkMacSystemFont,Segoe UI,Roboto,Helvetica Neue,Arial,sans-serif;padding:.5rem">
  <table align="center" width="100%" role="presentation" cellspacing="0" cellpadding="0" border="0" style="max-width:100%;border:1px solid rgb(14,165,233);border-radius:.25rem;margin:40px auto;padding:20px;width:550px">
    <tbody>
      <tr><td>
        <h1 style="color:#000;font-size:18px;font-weight:400;text-align:center;margin:30px 0">New message from your portfolio contact form</h1>
        <p style="font-size:14px;line-height:24px;margin:16px 0;color:#000"><strong>Name:</strong> {{.Name}}</p>
        <p style="font-size:14px;line-height:24px;margin:16px 0;color:#000"><strong>Email:</strong> {{.Email}}</p>
        <p style="font-size:14px;line-height:24px;margin:16px 0;color:#000"><strong>Subject:</strong> {{.Subject}}</p>
        <table align="center" width="100%" role="presentation" border="0" cellpadding="0" cellspacing="0" style="background-color:rgb(243,244,246);border-radius:.75rem;padding:0 1rem">
          <tbody><tr><td><p style="font-size:13px;line-height:24px;margin:16px 0;color:rgb(51,51,51);white-space:pre-wrap">{{.Message}}</p></td></tr></tbody>
        </table>
        <hr style="width:100%;border:none;border-top:1px solid #eaeaea;margin:26px 0" />
        <p style="font-size:10px;line-height:24px;margin:16px 0;text-align:center;color:rgb(156,163,175)">Sent automatically at {{.ReceivedAt.Format "2006-01-02 15:04 MST"}}.<br />&copy;{{year}} {{.SiteOwner}}</p>
      </td></tr>
    </tbody>
  </table>
</body>
</html>`

const contactNotifyText = `You received a new message from {{.Name}} ({{.Email}}).

Subject: {{.Subject}}

Message:
{{.Message}}
`

// ContactNotifySubjectPrefix is prepended to the visitor's subject line.
const ContactNotifySubjectPrefix = "New Portfolio Contact: "

// ContactNotifyData is the data for contact form notification emails.
type ContactNotifyData struct {
	Name       string
	Email      string
	Subject    string
	Message    string
	SiteOwner  string
	ReceivedAt time.Time
}

func renderTemplate(tpl string, data interface{}) (string, error) {
	t, err := template.New("").Funcs(template.FuncMap{
		"year": func() int {
			return time.Now().Year()
		},
	}).Parse(tpl)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func renderText(tpl string, data interface{}) (string, error) {
	t, err := texttemplate.New("").Parse(tpl)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// BuildContactNotify renders the owner notification for one contact message.
func BuildContactNotify(to []string, data ContactNotifyData) (Message, error) {
	if strings.TrimSpace(data.SiteOwner) == "" {
		data.SiteOwner = "Portfolio"
	}
	if data.ReceivedAt.IsZero() {
		data.ReceivedAt = time.Now()
	}
	html, err := renderTemplate(contactNotifyTpl, data)
	if err != nil {
		return Message{}, err
	}
	text, err := renderText(contactNotifyText, data)
	if err != nil {
		return Message{}, err
	}
	return Message{
		To:      to,
		ReplyTo: data.Email,
		Subject: ContactNotifySubjectPrefix + data.Subject,
		HTML:    html,
		Text:    text,
	}, nil
}

// SendContactNotify renders and sends the owner notification.
func (s *Sender) SendContactNotify(ctx context.Context, to []string, data ContactNotifyData) error {
	msg, err := BuildContactNotify(to, data)
	if err != nil {
		return err
	}
	return s.Send(ctx, msg)
}
