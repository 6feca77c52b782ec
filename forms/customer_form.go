package forms

import (
	"fotostudio-backend/models"
	"fotostudio-backend/utils"
)

// MaxChildren caps the "how many children" selector on the registration form.
const MaxChildren = 10

// ChildEntry mirrors one row of the editable children list.
type ChildEntry struct {
	Name string
	DOB  string
}

// CustomerFormData holds the editable fields of the registration/edit form.
type CustomerFormData struct {
	FullName      string
	PreferredName string
	CPF           string
	DOB           string
	Address       string
	CEP           string
	Phone         string
	Email         string
	Instagram     string
	Children      []ChildEntry
	HusbandName   string
	HusbandDOB    string
}

// CustomerForm is the edit buffer of the customer editor.
type CustomerForm struct {
	Mode  Mode
	ID    string // empty until editing an existing record
	Data  CustomerFormData
	Error string
}

func NewCustomerForm() CustomerForm {
	return CustomerForm{Mode: ModeClosed}
}

// OpenNew resets the buffer to blank initial values.
func (f CustomerForm) OpenNew() CustomerForm {
	return CustomerForm{Mode: ModeNew, Data: CustomerFormData{Children: []ChildEntry{}}}
}

// OpenEdit snapshots an existing record into the buffer. The children list is
// copied in order so the child-count selector starts at its current length.
func (f CustomerForm) OpenEdit(customer models.Customer) CustomerForm {
	children := make([]ChildEntry, 0, len(customer.Children))
	for _, child := range customer.Children {
		children = append(children, ChildEntry{Name: child.Name, DOB: child.DOB})
	}
	return CustomerForm{
		Mode: ModeEditing,
		ID:   customer.ID.String(),
		Data: CustomerFormData{
			FullName:      customer.FullName,
			PreferredName: customer.PreferredName,
			CPF:           customer.CPF,
			DOB:           customer.DOB,
			Address:       customer.Address,
			CEP:           customer.CEP,
			Phone:         customer.Phone,
			Email:         customer.Email,
			Instagram:     customer.Instagram,
			Children:      children,
			HusbandName:   customer.HusbandName,
			HusbandDOB:    customer.HusbandDOB,
		},
	}
}

func (f CustomerForm) Close() CustomerForm {
	return CustomerForm{Mode: ModeClosed}
}

// SetChildCount resizes the children list to n, preserving existing entries
// by index and appending blank ones. A no-op while the editor is closed so a
// stale selector cannot mutate a buffer in the background.
func (f CustomerForm) SetChildCount(n int) CustomerForm {
	if f.Mode == ModeClosed {
		return f
	}
	if n < 0 {
		n = 0
	}
	if n > MaxChildren {
		n = MaxChildren
	}
	children := make([]ChildEntry, n)
	copy(children, f.Data.Children)
	f.Data.Children = children
	return f
}

// SetChild fills one entry of the children list; out-of-range indexes are
// ignored.
func (f CustomerForm) SetChild(i int, entry ChildEntry) CustomerForm {
	if f.Mode == ModeClosed || i < 0 || i >= len(f.Data.Children) {
		return f
	}
	children := make([]ChildEntry, len(f.Data.Children))
	copy(children, f.Data.Children)
	children[i] = entry
	f.Data.Children = children
	return f
}

// IsUpdate reports whether submitting will update an existing record rather
// than create one.
func (f CustomerForm) IsUpdate() bool { return f.ID != "" }

// SubmitSucceeded closes the editor; the hosting view re-fetches the list.
func (f CustomerForm) SubmitSucceeded() (CustomerForm, Effect) {
	return f.Close(), EffectRefetch
}

// SubmitFailed keeps the editor open and surfaces the server message verbatim.
func (f CustomerForm) SubmitFailed(message string) (CustomerForm, Effect) {
	f.Error = message
	return f, EffectNone
}

// BirthdayIndicators marks which family members have a birthday in the
// filtered month. Each member gets its own indicator on the customer card;
// nothing is marked when no month filter is active.
type BirthdayIndicators struct {
	Customer bool
	Husband  bool
	Children []bool
}

func CustomerBirthdays(customer models.Customer, filterMonth string) BirthdayIndicators {
	ind := BirthdayIndicators{
		Customer: utils.BirthdayInMonth(customer.DOB, filterMonth),
		Husband:  utils.BirthdayInMonth(customer.HusbandDOB, filterMonth),
		Children: make([]bool, len(customer.Children)),
	}
	for i, child := range customer.Children {
		ind.Children[i] = utils.BirthdayInMonth(child.DOB, filterMonth)
	}
	return ind
}
