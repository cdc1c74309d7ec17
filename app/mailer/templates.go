package mailer

import (
	"fmt"
	"html"
	"strings"
	"time"

	"fiber/khayalethu/app/model"
)

func uploaded(path string) string {
	if path == "" {
		return "Not provided"
	}
	return "Uploaded"
}

func adminDetailHTML(a model.Application) string {
	rows := [][2]string{
		{"Student Name", a.FullNames},
		{"Student Number", a.StudentNumber},
		{"Email", a.Email},
		{"Phone", a.Phone},
		{"Institution", a.Institution},
		{"Academic Year", a.Year},
		{"ID Number", a.IDNumber},
		{"Gender", a.Gender},
		{"Home Address", a.HomeAddress},
	}
	var b strings.Builder
	b.WriteString(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">`)
	b.WriteString(`<h2>New Student Accommodation Application</h2><table style="width:100%">`)
	for _, r := range rows {
		fmt.Fprintf(&b, `<tr><td style="font-weight:bold;padding:4px">%s:</td><td style="padding:4px">%s</td></tr>`,
			r[0], html.EscapeString(r[1]))
	}
	b.WriteString(`</table><h3>Guardian Information</h3>`)
	fmt.Fprintf(&b, `<p><strong>Name:</strong> %s<br><strong>Relationship:</strong> %s<br><strong>Phone:</strong> %s<br><strong>Email:</strong> %s</p>`,
		html.EscapeString(a.GuardianName), html.EscapeString(a.GuardianRelationship),
		html.EscapeString(a.GuardianPhone), html.EscapeString(a.GuardianEmail))
	b.WriteString(`<h3>Submitted Documents</h3>`)
	fmt.Fprintf(&b, `<p>Student Photo: %s<br>ID Card (Front): %s<br>ID Card (Back): %s<br>Acceptance Letter: %s</p>`,
		uploaded(a.Photo), uploaded(a.IDCard1), uploaded(a.IDCard2), uploaded(a.AcceptanceLetter))
	fmt.Fprintf(&b, `<p style="color:#666;font-size:12px">Submitted on %s</p></div>`,
		a.SubmittedAt.Format("Monday, 2 January 2006 15:04"))
	return b.String()
}

func confirmationHTML(a model.Application) string {
	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
<h2>Khayalethu Student Accommodation</h2>
<h3>Application Received Successfully</h3>
<p>Dear <strong>%s</strong>,</p>
<p>Thank you for your application for the <strong>%s</strong> academic year.
It is now being reviewed by our admissions team. We will contact you within
3-5 business days. Keep your student number (%s) for reference.</p>
<p style="color:#666;font-size:12px">This is an automated confirmation email. Please do not reply.</p>
</div>`,
		html.EscapeString(a.FullNames), html.EscapeString(a.Year), html.EscapeString(a.StudentNumber))
}

func decisionHTML(a model.Application, note string) string {
	var outcome string
	switch a.Status {
	case model.StatusAccepted:
		outcome = "We are pleased to inform you that your application has been <strong>accepted</strong>. We will contact you shortly with accommodation details and payment information."
	case model.StatusDeclined:
		outcome = "We regret to inform you that your application has been <strong>declined</strong>."
	}
	noteBlock := ""
	if note != "" {
		noteBlock = fmt.Sprintf(`<p><strong>Note from our team:</strong> %s</p>`, html.EscapeString(note))
	}
	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
<h2>Khayalethu Student Accommodation</h2>
<p>Dear <strong>%s</strong>,</p>
<p>%s</p>
%s
<p style="color:#666;font-size:12px">Reference: application %d, student number %s</p>
</div>`,
		html.EscapeString(a.FullNames), outcome, noteBlock, a.ID, html.EscapeString(a.StudentNumber))
}

func probeHTML() string {
	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 400px; margin: 0 auto; text-align: center;">
<h2>Email Configuration Test</h2>
<p>This is a test email to verify that admin notifications are working correctly.</p>
<p><strong>Timestamp:</strong> %s</p>
<p style="color:#666;font-size:12px">Student Accommodation Management System</p>
</div>`, time.Now().Format("2006-01-02 15:04:05"))
}
