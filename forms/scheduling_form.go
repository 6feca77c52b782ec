package forms

import "fotostudio-backend/models"

// SchedulingFormData holds the editable fields of the scheduling modal. Dates
// are kept as YYYY-MM-DD strings, the shape a date input edits.
type SchedulingFormData struct {
	CustomerID    string
	CustomerName  string
	SessionType   string
	Date          string
	Observacao    string
	Indicacao     string
	PaymentStatus string
	EntryValue    string
	PaymentMethod string
}

// ShowEntryValue reports whether the deposit field is visible: only a
// schedule with a paid deposit has one.
func (d SchedulingFormData) ShowEntryValue() bool {
	return d.PaymentStatus == models.PaymentStatusDeposit
}

// ShowPaymentMethod reports whether the payment-method field is visible. It
// is also required whenever visible.
func (d SchedulingFormData) ShowPaymentMethod() bool {
	return d.PaymentStatus != models.PaymentStatusPending
}

// PaymentMethodRequired mirrors ShowPaymentMethod; a visible method field
// must be filled before submit.
func (d SchedulingFormData) PaymentMethodRequired() bool {
	return d.ShowPaymentMethod()
}

// SchedulingForm is the edit buffer of the scheduling modal.
type SchedulingForm struct {
	Mode  Mode
	ID    string
	Data  SchedulingFormData
	Error string
}

func NewSchedulingForm() SchedulingForm {
	return SchedulingForm{Mode: ModeClosed}
}

// OpenNew resets the buffer: first session type preselected, payment pending.
func (f SchedulingForm) OpenNew() SchedulingForm {
	return SchedulingForm{
		Mode: ModeNew,
		Data: SchedulingFormData{
			SessionType:   models.SessionTypes[0],
			PaymentStatus: models.PaymentStatusPending,
		},
	}
}

// OpenEdit snapshots an existing record, reformatting the stored timestamp
// into the calendar-date string the date input edits.
func (f SchedulingForm) OpenEdit(schedule models.Scheduling) SchedulingForm {
	data := SchedulingFormData{
		CustomerName:  schedule.CustomerName,
		SessionType:   schedule.SessionType,
		Date:          schedule.Date.UTC().Format("2006-01-02"),
		Observacao:    schedule.Observacao,
		Indicacao:     schedule.Indicacao,
		PaymentStatus: schedule.PaymentStatus,
	}
	if schedule.CustomerID != nil {
		data.CustomerID = schedule.CustomerID.String()
	}
	if schedule.EntryValue != nil {
		data.EntryValue = formatAmount(*schedule.EntryValue)
	}
	if schedule.PaymentMethod != nil {
		data.PaymentMethod = *schedule.PaymentMethod
	}
	return SchedulingForm{Mode: ModeEditing, ID: schedule.ID.String(), Data: data}
}

func (f SchedulingForm) Close() SchedulingForm {
	return SchedulingForm{Mode: ModeClosed}
}

// SetPaymentStatus switches the status and blanks fields that just became
// invisible, so a later submit cannot resurrect them.
func (f SchedulingForm) SetPaymentStatus(status string) SchedulingForm {
	if f.Mode == ModeClosed {
		return f
	}
	f.Data.PaymentStatus = status
	if !f.Data.ShowEntryValue() {
		f.Data.EntryValue = ""
	}
	if !f.Data.ShowPaymentMethod() {
		f.Data.PaymentMethod = ""
	}
	return f
}

// PickCustomer links the form to a registered customer; an empty id unlinks
// it while keeping whatever free-text name was typed.
func (f SchedulingForm) PickCustomer(id, name string) SchedulingForm {
	if f.Mode == ModeClosed {
		return f
	}
	f.Data.CustomerID = id
	f.Data.CustomerName = name
	return f
}

func (f SchedulingForm) IsUpdate() bool { return f.ID != "" }

func (f SchedulingForm) SubmitSucceeded() (SchedulingForm, Effect) {
	return f.Close(), EffectRefetch
}

func (f SchedulingForm) SubmitFailed(message string) (SchedulingForm, Effect) {
	f.Error = message
	return f, EffectNone
}
