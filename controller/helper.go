package controller

import (
	"encoding/base64"
	"fmt"

	"github.com/mailjet/mailjet-apiv3-go"
)

func (ctrl *controller) sendEmail(to string, subject string, body string, pdfName string, pdf []byte) error {
	// when in production, send real email, else just log to console
	if ctrl.model.Config.Mode == "production" {
		return ctrl.sendRealEmail(to, subject, body, pdfName, pdf)
	}
	fmt.Println("Sending email to", to, "with subject", subject, "and", len(pdf), "bytes attached")
	return nil
}

func (ctrl *controller) sendRealEmail(to string, subject string, body string, pdfName string, pdf []byte) error {
	mj := mailjet.NewMailjetClient(ctrl.model.Config.MailAPIKey, ctrl.model.Config.MailSecret)

	info := mailjet.InfoMessagesV31{
		From: &mailjet.RecipientV31{
			Email: ctrl.model.Config.MailSender,
			Name:  ctrl.model.Config.Issuer.CompanyName,
		},
		To: &mailjet.RecipientsV31{
			mailjet.RecipientV31{
				Email: to,
			},
		},
		Subject:  subject,
		TextPart: body,
	}
	if len(pdf) > 0 {
		info.Attachments = &mailjet.AttachmentsV31{
			mailjet.AttachmentV31{
				ContentType:   "application/pdf",
				Filename:      pdfName,
				Base64Content: base64.StdEncoding.EncodeToString(pdf),
			},
		}
	}

	messages := mailjet.MessagesV31{Info: []mailjet.InfoMessagesV31{info}}
	if _, err := mj.SendMailV31(&messages); err != nil {
		return ErrInvalid(err, "could not send email")
	}
	return nil
}
