package forms

import (
	"testing"

	"fotostudio-backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestOpenNewResetsBuffer(t *testing.T) {
	f := NewCustomerForm().OpenNew()

	assert.Equal(t, ModeNew, f.Mode)
	assert.Empty(t, f.ID)
	assert.Empty(t, f.Data.FullName)
	assert.Len(t, f.Data.Children, 0)
	assert.False(t, f.IsUpdate())
}

func TestSetChildCountGrowsWithBlanks(t *testing.T) {
	f := NewCustomerForm().OpenNew().SetChildCount(3)

	assert.Len(t, f.Data.Children, 3)
	for _, child := range f.Data.Children {
		assert.Equal(t, ChildEntry{}, child)
	}
}

func TestSetChildCountPreservesEntriesByIndex(t *testing.T) {
	f := NewCustomerForm().OpenNew().
		SetChildCount(2).
		SetChild(0, ChildEntry{Name: "Ana", DOB: "2019-02-10"}).
		SetChild(1, ChildEntry{Name: "Luca", DOB: "2021-08-03"})

	f = f.SetChildCount(4)
	assert.Len(t, f.Data.Children, 4)
	assert.Equal(t, "Ana", f.Data.Children[0].Name)
	assert.Equal(t, "Luca", f.Data.Children[1].Name)
	assert.Equal(t, ChildEntry{}, f.Data.Children[2])
	assert.Equal(t, ChildEntry{}, f.Data.Children[3])

	f = f.SetChildCount(1)
	assert.Len(t, f.Data.Children, 1)
	assert.Equal(t, "Ana", f.Data.Children[0].Name)
}

func TestSetChildCountClamps(t *testing.T) {
	f := NewCustomerForm().OpenNew().SetChildCount(25)
	assert.Len(t, f.Data.Children, MaxChildren)

	f = f.SetChildCount(-2)
	assert.Len(t, f.Data.Children, 0)
}

func TestSetChildCountIsNoOpWhileClosed(t *testing.T) {
	f := NewCustomerForm().SetChildCount(3)

	assert.Equal(t, ModeClosed, f.Mode)
	assert.Len(t, f.Data.Children, 0)
}

func TestOpenEditSnapshotsRecord(t *testing.T) {
	customer := models.Customer{
		ID:          uuid.New(),
		FullName:    "Maria Souza",
		CPF:         "111.222.333-44",
		DOB:         "1990-07-15",
		Email:       "maria@example.com",
		HusbandName: "João",
		HusbandDOB:  "1988-03-02",
		Children: []models.Child{
			{Name: "Ana", DOB: "2019-02-10"},
			{Name: "Luca", DOB: "2021-08-03"},
		},
	}

	f := NewCustomerForm().OpenEdit(customer)

	assert.Equal(t, ModeEditing, f.Mode)
	assert.Equal(t, customer.ID.String(), f.ID)
	assert.True(t, f.IsUpdate())
	assert.Equal(t, "Maria Souza", f.Data.FullName)
	assert.Equal(t, []ChildEntry{
		{Name: "Ana", DOB: "2019-02-10"},
		{Name: "Luca", DOB: "2021-08-03"},
	}, f.Data.Children)
}

func TestSubmitOutcomes(t *testing.T) {
	f := NewCustomerForm().OpenNew()
	f.Data.FullName = "Maria"

	failed, effect := f.SubmitFailed("Erro: Email já cadastrado.")
	assert.Equal(t, ModeNew, failed.Mode)
	assert.Equal(t, "Erro: Email já cadastrado.", failed.Error)
	assert.Equal(t, "Maria", failed.Data.FullName)
	assert.Equal(t, EffectNone, effect)

	closed, effect := failed.SubmitSucceeded()
	assert.Equal(t, ModeClosed, closed.Mode)
	assert.Equal(t, EffectRefetch, effect)
}

func TestCustomerBirthdays(t *testing.T) {
	customer := models.Customer{
		DOB:        "1990-07-15",
		HusbandDOB: "1984-03-02",
		Children: []models.Child{
			{Name: "Ana", DOB: "2019-07-10"},
			{Name: "Luca", DOB: "2021-08-03"},
		},
	}

	ind := CustomerBirthdays(customer, "7")
	assert.True(t, ind.Customer)
	assert.False(t, ind.Husband)
	assert.Equal(t, []bool{true, false}, ind.Children)

	ind = CustomerBirthdays(customer, "3")
	assert.False(t, ind.Customer)
	assert.True(t, ind.Husband)
	assert.Equal(t, []bool{false, false}, ind.Children)

	// No active filter marks nobody.
	ind = CustomerBirthdays(customer, "")
	assert.False(t, ind.Customer)
	assert.False(t, ind.Husband)
	assert.Equal(t, []bool{false, false}, ind.Children)
}

func TestPendingDeleteConfirmation(t *testing.T) {
	var p PendingDelete
	assert.False(t, p.Confirmed(""))

	p = PendingDelete{ID: "abc"}
	assert.True(t, p.Confirmed("abc"))
	assert.False(t, p.Confirmed("other"))
}
