package utils

import (
	"fmt"
	"net/smtp"
	"strings"

	"lms/config"
)

// Generic Send Email
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: Training Platform <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	return smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
}

func emailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; }
			.header { background-color: #00004D; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; }
			.content { padding: 40px 30px; color: #00004D; line-height: 1.6; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header"><h1>%s</h1></div>
			<div class="content">%s</div>
			<div class="footer">This is an automated message from the training platform.</div>
		</div>
	</body>
	</html>`, title, bodyContent)
}

// SendWelcomeEmail mails initial credentials to an admin-created account.
func SendWelcomeEmail(to, name, password string) error {
	body := fmt.Sprintf(`
		<h2>Welcome, %s!</h2>
		<p>An account was created for you on the training platform.</p>
		<p>Your temporary password is: <b>%s</b></p>
		<p>Please sign in and change it as soon as possible.</p>`, name, password)
	return SendEmail([]string{to}, "Your training platform account", emailTemplate("Welcome", body))
}

// SendCompletionReport mails the daily completion summary to admins.
func SendCompletionReport(to []string, completions int64, passes int64) error {
	body := fmt.Sprintf(`
		<h2>Daily training report</h2>
		<p>Videos completed in the last 24 hours: <b>%d</b></p>
		<p>Quizzes passed in the last 24 hours: <b>%d</b></p>`, completions, passes)
	return SendEmail(to, "Daily training completion report", emailTemplate("Training Report", body))
}
