package mail

import (
	"bytes"
	"fmt"
	"text/template"

	"gopkg.in/gomail.v2"
)

// welcomeTemplate is inlined so the binary needs no template directory on disk.
var welcomeTemplate = template.Must(template.New("welcome").Parse(`
<html>
  <body>
    <p>Hi {{.Name}},</p>
    <p>Your Pipetrack workspace is ready. We added two sample pipelines and a
    few example jobs so the dashboard is not empty on first visit.</p>
    <p>Happy tracking!</p>
  </body>
</html>
`))

type welcomeEmailData struct {
	Name string
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

func (s *EmailSender) SendWelcome(to, name string) error {
	var body bytes.Buffer
	if err := welcomeTemplate.Execute(&body, welcomeEmailData{Name: name}); err != nil {
		return fmt.Errorf("failed to render welcome template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Welcome to Pipetrack, %s!", name))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send welcome email: %w", err)
	}

	return nil
}
