package utils

import (
	"fmt"
	"log"

	"skillbridge/config"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendEmail delivers a single HTML email through SendGrid. When no API key
// is configured (local development, tests) delivery is skipped.
func SendEmail(toEmail, subject, htmlBody string) error {
	if config.AppConfig.SendgridAPIKey == "" {
		log.Printf("Email delivery skipped (no SENDGRID_API_KEY). To: %s Subject: %s", toEmail, subject)
		return nil
	}

	from := mail.NewEmail("SkillBridge", config.AppConfig.EmailSender)
	to := mail.NewEmail("", toEmail)
	message := mail.NewSingleEmail(from, subject, to, "", htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendgridAPIKey)
	resp, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending email to %s: %v", toEmail, err)
		return err
	}
	if resp.StatusCode >= 400 {
		log.Printf("SendGrid rejected email to %s: %d %s", toEmail, resp.StatusCode, resp.Body)
		return fmt.Errorf("sendgrid responded with status %d", resp.StatusCode)
	}
	return nil
}

// getEmailTemplate wraps body content in the shared HTML layout.
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1B3B6F; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1B3B6F; line-height: 1.6; }
			.content h2 { color: #1B3B6F; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.otp-box { font-size: 28px; letter-spacing: 8px; font-weight: bold; background: #E8F0FE; padding: 15px; border-radius: 4px; text-align: center; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>SKILLBRIDGE</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 SkillBridge. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// SendOTPEmail sends the trainer verification code. Fire-and-forget.
func SendOTPEmail(email, name, otp string, expiryMinutes int) {
	subject := "Your SkillBridge verification code"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Use the code below to verify your trainer account:</p>
		<div class="otp-box">%s</div>
		<p>This code expires in %d minutes. If you did not request it, you can ignore this email.</p>
	`, name, otp, expiryMinutes)

	go SendEmail(email, subject, getEmailTemplate("Verify Your Account", body))
}

// SendWelcomeEmail greets a newly registered learner. Fire-and-forget.
func SendWelcomeEmail(email, name string) {
	subject := "Welcome to SkillBridge"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Welcome to <strong>SkillBridge</strong>! Your account has been created.</p>
		<p>Browse the catalog, enroll in a course and start learning.</p>
	`, name)

	go SendEmail(email, subject, getEmailTemplate("Welcome Onboard!", body))
}
