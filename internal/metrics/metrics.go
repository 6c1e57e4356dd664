package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	PurchasesCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "compras_criadas_total",
			Help: "Número total de compras criadas",
		},
	)

	Authorizations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "autorizacoes_total",
			Help: "Número total de autorizações processadas",
		},
		[]string{"status"},
	)

	ConfirmationEmails = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "emails_confirmacao_total",
			Help: "Número total de e-mails de confirmação",
		},
		[]string{"status"},
	)

	DeadLetters = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mensagens_dlq_total",
			Help: "Número total de mensagens enviadas à DLQ",
		},
		[]string{"topic"},
	)
)

func Register() {
	prometheus.MustRegister(
		PurchasesCreated,
		Authorizations,
		ConfirmationEmails,
		DeadLetters,
	)
}
