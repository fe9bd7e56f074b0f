package email

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
	"net/url"
)

// EmailConfig holds SMTP configuration
type EmailConfig struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromName     string
	FromEmail    string
	FrontendURL  string
	AppName      string
}

// EmailService handles email sending
type EmailService struct {
	config EmailConfig
}

// NewEmailService creates a new email service
func NewEmailService(config EmailConfig) *EmailService {
	return &EmailService{config: config}
}

// LeadNotification carries the contact-form fields forwarded to the
// studio inbox when a new lead arrives.
type LeadNotification struct {
	Name      string
	Email     string
	Phone     string
	Service   string
	EventDate string
	Message   string
}

// SendLeadNotification notifies the studio inbox about a new inquiry
func (s *EmailService) SendLeadNotification(toEmail string, lead LeadNotification) error {
	htmlContent, err := s.renderLeadNotification(lead)
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	subject := fmt.Sprintf("Nueva consulta de %s - %s", lead.Name, s.config.AppName)
	message := s.buildHTMLEmail(toEmail, subject, htmlContent)

	return s.sendEmail(toEmail, message)
}

// SendPasswordResetEmail sends a password reset email to an admin
func (s *EmailService) SendPasswordResetEmail(toEmail, token string) error {
	resetURL := fmt.Sprintf("%s/reset-password?token=%s&email=%s",
		s.config.FrontendURL,
		url.QueryEscape(token),
		url.QueryEscape(toEmail),
	)

	htmlContent, err := s.renderPasswordResetEmail(toEmail, resetURL)
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	subject := "Restablecer contraseña - " + s.config.AppName
	message := s.buildHTMLEmail(toEmail, subject, htmlContent)

	return s.sendEmail(toEmail, message)
}

// sendEmail sends an email using SMTP
func (s *EmailService) sendEmail(to string, message []byte) error {
	addr := fmt.Sprintf("%s:%d", s.config.SMTPHost, s.config.SMTPPort)

	auth := smtp.PlainAuth("", s.config.SMTPUsername, s.config.SMTPPassword, s.config.SMTPHost)

	err := smtp.SendMail(addr, auth, s.config.FromEmail, []string{to}, message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// buildHTMLEmail builds an HTML email message
func (s *EmailService) buildHTMLEmail(to, subject, htmlBody string) []byte {
	headers := fmt.Sprintf(
		"From: %s <%s>\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=\"UTF-8\"\r\n"+
			"\r\n",
		s.config.FromName,
		s.config.FromEmail,
		to,
		subject,
	)

	return []byte(headers + htmlBody)
}

func (s *EmailService) renderLeadNotification(lead LeadNotification) (string, error) {
	tmpl, err := template.New("lead_notification").Parse(leadNotificationTemplate)
	if err != nil {
		return "", err
	}

	data := struct {
		Lead    LeadNotification
		AppName string
	}{
		Lead:    lead,
		AppName: s.config.AppName,
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}

func (s *EmailService) renderPasswordResetEmail(email, resetURL string) (string, error) {
	tmpl, err := template.New("password_reset").Parse(passwordResetTemplate)
	if err != nil {
		return "", err
	}

	data := struct {
		Email    string
		ResetURL string
		AppName  string
	}{
		Email:    email,
		ResetURL: resetURL,
		AppName:  s.config.AppName,
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// leadNotificationTemplate is the HTML template for new lead alerts
const leadNotificationTemplate = `
<!DOCTYPE html>
<html lang="es">
<head>
    <meta charset="UTF-8">
    <title>Nueva consulta</title>
</head>
<body style="margin: 0; padding: 0; font-family: Georgia, 'Times New Roman', serif; background-color: #1a1a1a;">
    <table role="presentation" style="width: 100%; border-collapse: collapse;">
        <tr>
            <td style="padding: 40px 0;">
                <table role="presentation" style="max-width: 600px; margin: 0 auto; background-color: #f5f5f0; border-radius: 8px; overflow: hidden;">
                    <tr>
                        <td style="background-color: #1a1a1a; padding: 30px; text-align: center;">
                            <h1 style="color: #b89e50; margin: 0; font-size: 26px;">{{.AppName}}</h1>
                            <p style="color: #f5f5f0; margin: 8px 0 0 0; font-size: 14px;">Nueva consulta recibida</p>
                        </td>
                    </tr>
                    <tr>
                        <td style="padding: 30px;">
                            <table role="presentation" style="width: 100%; font-size: 15px; color: #333;">
                                <tr><td style="padding: 6px 0; font-weight: bold; width: 140px;">Nombre</td><td>{{.Lead.Name}}</td></tr>
                                {{if .Lead.Email}}<tr><td style="padding: 6px 0; font-weight: bold;">Email</td><td>{{.Lead.Email}}</td></tr>{{end}}
                                {{if .Lead.Phone}}<tr><td style="padding: 6px 0; font-weight: bold;">Teléfono</td><td>{{.Lead.Phone}}</td></tr>{{end}}
                                {{if .Lead.Service}}<tr><td style="padding: 6px 0; font-weight: bold;">Servicio</td><td>{{.Lead.Service}}</td></tr>{{end}}
                                {{if .Lead.EventDate}}<tr><td style="padding: 6px 0; font-weight: bold;">Fecha evento</td><td>{{.Lead.EventDate}}</td></tr>{{end}}
                                {{if .Lead.Message}}<tr><td style="padding: 6px 0; font-weight: bold; vertical-align: top;">Mensaje</td><td>{{.Lead.Message}}</td></tr>{{end}}
                            </table>
                        </td>
                    </tr>
                    <tr>
                        <td style="background-color: #eae8e0; padding: 20px; text-align: center;">
                            <p style="color: #888; font-size: 12px; margin: 0;">Este correo fue generado por {{.AppName}}.</p>
                        </td>
                    </tr>
                </table>
            </td>
        </tr>
    </table>
</body>
</html>
`

// passwordResetTemplate is the HTML template for password reset emails
const passwordResetTemplate = `
<!DOCTYPE html>
<html lang="es">
<head>
    <meta charset="UTF-8">
    <title>Restablecer contraseña</title>
</head>
<body style="margin: 0; padding: 0; font-family: Georgia, 'Times New Roman', serif; background-color: #1a1a1a;">
    <table role="presentation" style="width: 100%; border-collapse: collapse;">
        <tr>
            <td style="padding: 40px 0;">
                <table role="presentation" style="max-width: 600px; margin: 0 auto; background-color: #f5f5f0; border-radius: 8px; overflow: hidden;">
                    <tr>
                        <td style="background-color: #1a1a1a; padding: 30px; text-align: center;">
                            <h1 style="color: #b89e50; margin: 0; font-size: 26px;">{{.AppName}}</h1>
                        </td>
                    </tr>
                    <tr>
                        <td style="padding: 30px;">
                            <h2 style="color: #1a1a1a; margin: 0 0 16px 0; font-size: 20px;">Restablecer contraseña</h2>
                            <p style="color: #333; font-size: 15px; line-height: 1.6;">
                                Recibimos una solicitud para restablecer la contraseña de la cuenta <strong>{{.Email}}</strong>.
                                El enlace expira en <strong>1 hora</strong>.
                            </p>
                            <table role="presentation" style="margin: 24px auto;">
                                <tr>
                                    <td style="background-color: #b89e50; border-radius: 6px;">
                                        <a href="{{.ResetURL}}" style="display: inline-block; padding: 14px 28px; color: #1a1a1a; text-decoration: none; font-size: 15px; font-weight: bold;">
                                            Restablecer contraseña
                                        </a>
                                    </td>
                                </tr>
                            </table>
                            <p style="color: #888; font-size: 13px; line-height: 1.6;">
                                Si no solicitaste este cambio puedes ignorar este correo; tu contraseña seguirá siendo la misma.
                            </p>
                        </td>
                    </tr>
                </table>
            </td>
        </tr>
    </table>
</body>
</html>
`
