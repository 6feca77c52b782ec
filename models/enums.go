package models

// Session types offered by the studio for scheduling.
var SessionTypes = []string{
	"Acompanhamento Infantil",
	"Acompanhamento Gestante",
	"Ensaio Infantil",
	"Ensaio de Gestante",
	"Ensaio de Família",
	"Perfil Profissional",
	"Parto",
	"Eventos",
	"Newborn",
	"Smash the Cake",
	"Sessão Especial",
	"Natal",
	"Dia dos Pais",
	"Dia das Mães",
}

// Service types tracked in post-production. The catalog drifted apart from
// SessionTypes in the studio's own usage, so the two lists stay separate.
var TaskServiceTypes = []string{
	"Acompanhamento de bebes",
	"Acompanhamento de Gestante",
	"Ensaio Gestante",
	"Ensaio Infantil",
	"Eventos",
	"Parto",
	"Newborn",
	"Ensaio Familia",
	"Perfil Profissional",
	"Smash the cake",
	"Selebration",
	"Sessão especial",
	"Natal",
	"Dia dos Pais",
	"Dia das mães",
}

const (
	TaskStatusNotStarted = "Não iniciado"
	TaskStatusInProgress = "Em andamento"
	TaskStatusFinished   = "Finalizado"
)

var TaskStatusOptions = []string{
	TaskStatusNotStarted,
	TaskStatusInProgress,
	TaskStatusFinished,
}

const (
	PaymentStatusPending    = "Pendente"
	PaymentStatusDeposit    = "Entrada Paga"
	PaymentStatusPaidInFull = "Pago Integralmente"
)

var PaymentStatusOptions = []string{
	PaymentStatusPending,
	PaymentStatusDeposit,
	PaymentStatusPaidInFull,
}

var PaymentMethodOptions = []string{"Dinheiro", "Pix", "Débito", "Crédito"}

func contains(options []string, value string) bool {
	for _, o := range options {
		if o == value {
			return true
		}
	}
	return false
}

func IsSessionType(v string) bool     { return contains(SessionTypes, v) }
func IsTaskServiceType(v string) bool { return contains(TaskServiceTypes, v) }
func IsTaskStatus(v string) bool      { return contains(TaskStatusOptions, v) }
func IsPaymentStatus(v string) bool   { return contains(PaymentStatusOptions, v) }
func IsPaymentMethod(v string) bool   { return contains(PaymentMethodOptions, v) }
