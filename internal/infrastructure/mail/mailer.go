package mail

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// Config holds SMTP relay settings
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Mailer sends transactional mail through an SMTP relay. One attempt per
// call: transport errors propagate to the caller, nothing is retried or
// queued.
type Mailer struct {
	cfg Config
}

var dialAndSend = func(d *gomail.Dialer, m ...*gomail.Message) error {
	return d.DialAndSend(m...)
}

// NewMailer creates a new SMTP mailer
func NewMailer(cfg Config) *Mailer {
	return &Mailer{cfg: cfg}
}

// SendOTP delivers the plaintext one-time code
func (m *Mailer) SendOTP(to, code string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Your OTP for Registration")
	msg.SetBody("text/plain", fmt.Sprintf("Your OTP for registration is: %s", code))

	return m.send(msg)
}

// SendCard delivers the generated masked ID card: the PDF as an attachment
// and the PNG preview plus logo inline.
func (m *Mailer) SendCard(to, name, pdfPath, imagePath, logoPath string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Your Masked Aadhaar Card")

	body := fmt.Sprintf(`<p>Hello %s,</p>
<p>Your masked Aadhaar card is ready. A preview is below; the PDF is attached.</p>
<p><img src="cid:card.png" alt="masked aadhaar card"/></p>
<p><img src="cid:logo.png" alt="logo" width="96"/></p>`, name)
	msg.SetBody("text/html", body)

	msg.Embed(imagePath, gomail.Rename("card.png"))
	if logoPath != "" {
		msg.Embed(logoPath, gomail.Rename("logo.png"))
	}
	msg.Attach(pdfPath)

	return m.send(msg)
}

func (m *Mailer) send(msg *gomail.Message) error {
	d := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.Username, m.cfg.Password)
	if err := dialAndSend(d, msg); err != nil {
		return fmt.Errorf("smtp send failed: %w", err)
	}
	return nil
}
