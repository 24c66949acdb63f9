package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendOTP(toEmail, otp string) error
	SendCancellationSummary(toEmail string, finalRefundCents int64, restrictionDays int) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	senderName  string
}

func NewEmailService(host string, port int, username, password, senderEmail, senderName string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
		senderName:  senderName,
	}
}

func (s *emailService) SendOTP(toEmail, otp string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.senderEmail, s.senderName)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Seu código de verificação")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Bem-vindo ao JuntaPlay!</h2>
			<p>Seu código de verificação é:</p>
			<h1 style="color: #6C5CE7; letter-spacing: 5px;">%s</h1>
			<p>Este código expira em 15 minutos.</p>
			<p>Se você não solicitou este código, ignore este e-mail.</p>
		</div>
	`, otp)

	m.SetBody("text/html", body)
	return s.dialer.DialAndSend(m)
}

func (s *emailService) SendCancellationSummary(toEmail string, finalRefundCents int64, restrictionDays int) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.senderEmail, s.senderName)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Cancelamento confirmado")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Cancelamento confirmado</h2>
			<p>Sua participação no grupo foi encerrada. Este cancelamento é irreversível.</p>
			<p>Reembolso creditado na sua carteira: <strong>R$ %d,%02d</strong></p>
			<p>Você poderá participar de novos grupos em %d dias.</p>
		</div>
	`, finalRefundCents/100, finalRefundCents%100, restrictionDays)

	m.SetBody("text/html", body)
	return s.dialer.DialAndSend(m)
}
