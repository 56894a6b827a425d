package utils

import (
	"fmt"
	"net/smtp"
	"os"
)

func SendEmail(to, subject, body string) error {
	from := os.Getenv("SMTP_EMAIL")
	pass := os.Getenv("SMTP_PASSWORD")

	// Cabeceras: UTF-8 y HTML
	msg := ""
	msg += "MIME-Version: 1.0\r\n"
	msg += "Content-Type: text/html; charset=\"UTF-8\"\r\n"
	msg += fmt.Sprintf("From: %s\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", to)
	msg += fmt.Sprintf("Subject: %s\r\n", subject)
	msg += "\r\n" + body

	err := smtp.SendMail(
		"smtp.gmail.com:587",
		smtp.PlainAuth("", from, pass, "smtp.gmail.com"),
		from,
		[]string{to},
		[]byte(msg),
	)

	if err != nil {
		return fmt.Errorf("no se pudo enviar el correo: %v", err)
	}
	return nil
}

// SendVerificationEmail envía el enlace de verificación de cuenta.
func SendVerificationEmail(email, token string) error {
	verifyURL := fmt.Sprintf("%s/api/auth/verify?token=%s", os.Getenv("APP_URL"), token)

	subject := "Verifica tu cuenta"
	body := `
	<h1>Verifica tu cuenta</h1>
	<p>Haz clic en el siguiente enlace para verificar tu cuenta:</p>
	<a href="` + verifyURL + `">Verificar cuenta</a>
	`
	return SendEmail(email, subject, body)
}
