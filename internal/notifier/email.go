package notifier

import (
	"fmt"

	"github.com/sirupsen/logrus"
	gomail "gopkg.in/gomail.v2"

	"github.com/bancotranquilo/compras-service/internal/models"
)

const confirmationSubject = "Confirmação de Pagamento - Banco Tranquilo"

// EmailNotifier sends the purchase-confirmation e-mail over SMTP.
type EmailNotifier struct {
	dialer *gomail.Dialer
	from   string
}

func NewEmailNotifier(host string, port int, username, password, from string) *EmailNotifier {
	return &EmailNotifier{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

func (n *EmailNotifier) SendConfirmation(purchase *models.Purchase) error {
	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", purchase.CustomerEmail)
	m.SetHeader("Subject", confirmationSubject)
	m.SetBody("text/plain", ConfirmationBody(purchase))

	if err := n.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("error sending confirmation email to %s: %w", purchase.CustomerEmail, err)
	}

	logrus.Infof("confirmation email sent to %s for purchase %d", purchase.CustomerEmail, purchase.ID)
	return nil
}

// ConfirmationBody builds the plain-text confirmation message.
func ConfirmationBody(purchase *models.Purchase) string {
	confirmedAt := "N/A"
	if purchase.ConfirmedAt != nil {
		confirmedAt = purchase.ConfirmedAt.Format("02/01/2006 15:04:05")
	}

	return fmt.Sprintf(
		"Olá %s,\n\n"+
			"Sua compra foi confirmada com sucesso!\n\n"+
			"Detalhes da transação:\n"+
			"ID da Compra: %d\n"+
			"Valor: R$ %s\n"+
			"Data de Confirmação: %s\n\n"+
			"Agradecemos pela preferência!\n\n"+
			"Atenciosamente,\n"+
			"Banco Tranquilo",
		purchase.CustomerName,
		purchase.ID,
		purchase.Amount.StringFixed(2),
		confirmedAt,
	)
}
