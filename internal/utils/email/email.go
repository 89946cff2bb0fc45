package email

import (
	"bytes"
	"fmt"
	"net/smtp"

	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"

	"github.com/jkarlost/calculadora/internal/config"
)

// Sender handles sending emails via SMTP
type Sender struct {
	cfg    *config.Config
	logger *logrus.Logger
}

// NewSender creates a new email sender
func NewSender(cfg *config.Config, logger *logrus.Logger) *Sender {
	return &Sender{
		cfg:    cfg,
		logger: logger,
	}
}

// Enabled reports whether SMTP is configured.
func (s *Sender) Enabled() bool {
	return s.cfg.SMTPHost != ""
}

// SendReport emails the PDF report as an attachment.
func (s *Sender) SendReport(to, nombre, filename string, pdfBytes []byte) error {
	if !s.Enabled() {
		return fmt.Errorf("SMTP is not configured")
	}

	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{to}
	e.Subject = "Tu Informe Financiero - Taller de Bienes Raíces"

	body := fmt.Sprintf(
		"Hola %s,\n\n"+
			"Adjunto encontrarás tu informe financiero con el análisis de tu capacidad "+
			"de inversión en bienes raíces.\n\n"+
			"Saludos,\nTaller de Bienes Raíces",
		nombre,
	)
	e.Text = []byte(body)

	if _, err := e.Attach(bytes.NewReader(pdfBytes), filename, "application/pdf"); err != nil {
		return fmt.Errorf("failed to attach report: %w", err)
	}

	if err := s.send(e); err != nil {
		s.logger.Errorf("Failed to send report to %s: %v", to, err)
		return fmt.Errorf("failed to send report: %w", err)
	}

	s.logger.Infof("Report emailed to %s", to)
	return nil
}

// SendFollowUp sends the post-registration follow-up with next steps.
func (s *Sender) SendFollowUp(to, nombre string) error {
	if !s.Enabled() {
		return fmt.Errorf("SMTP is not configured")
	}

	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{to}
	e.Subject = "Próximos Pasos - Taller de Bienes Raíces"

	body := fmt.Sprintf(
		"Hola %s,\n\n"+
			"Gracias por completar tu registro en la calculadora financiera.\n\n"+
			"Próximos pasos:\n"+
			"- Revisa nuestro canal de YouTube: https://www.youtube.com/@carlosdevis\n"+
			"- Inscríbete en el ciclo educativo: https://landing.tallerdebienesraices.com/registro-ciclo-educativo/\n"+
			"- Asiste a nuestros eventos presenciales y online\n"+
			"- Comienza con una propiedad pequeña y escala progresivamente\n\n"+
			"Saludos,\nTaller de Bienes Raíces",
		nombre,
	)
	e.Text = []byte(body)

	if err := s.send(e); err != nil {
		s.logger.Errorf("Failed to send follow-up to %s: %v", to, err)
		return fmt.Errorf("failed to send follow-up: %w", err)
	}

	s.logger.Infof("Follow-up emailed to %s", to)
	return nil
}

func (s *Sender) send(e *email.Email) error {
	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	auth := smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	return e.Send(addr, auth)
}
