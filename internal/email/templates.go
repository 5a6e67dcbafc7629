package email

import "fmt"

func VerificationApprovedBody(firstName string) (subject, body string) {
	subject = "Your account has been verified"
	body = fmt.Sprintf(`<p>Hi %s,</p>
<p>Your identity documents have been reviewed and your account is now verified.
You have full access to the marketplace.</p>`, firstName)
	return subject, body
}

func VerificationRejectedBody(firstName, reason string) (subject, body string) {
	subject = "Your account verification was declined"
	body = fmt.Sprintf(`<p>Hi %s,</p>
<p>We could not verify your identity documents.</p>`, firstName)
	if reason != "" {
		body += fmt.Sprintf("<p>Reason: %s</p>", reason)
	}
	body += "<p>You can contact your assigned agent for details.</p>"
	return subject, body
}
