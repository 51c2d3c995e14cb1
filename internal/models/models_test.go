package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleValidation(t *testing.T) {
	assert.True(t, RoleUser.Valid())
	assert.True(t, RoleWorker.Valid())
	assert.True(t, RoleAdmin.Valid())
	assert.False(t, Role("superuser").Valid())

	assert.False(t, RoleUser.IsStaff())
	assert.True(t, RoleWorker.IsStaff())
	assert.True(t, RoleAdmin.IsStaff())
}

func TestEquipmentEnums(t *testing.T) {
	assert.True(t, TypeSkis.Valid())
	assert.True(t, TypeGoggles.Valid())
	assert.False(t, EquipmentType("Sledge").Valid())

	assert.True(t, SizeUniversal.Valid())
	assert.False(t, EquipmentSize("XXL").Valid())
}

func TestEquipmentName(t *testing.T) {
	e := Equipment{Type: TypeSkis, Size: SizeSmall}
	assert.Equal(t, "Skis Small", e.Name())
}

func TestEquipmentAvailable(t *testing.T) {
	e := Equipment{IsInWarehouse: true, IsReserved: false}
	assert.True(t, e.Available())

	e.IsReserved = true
	assert.False(t, e.Available())

	e = Equipment{IsInWarehouse: false, IsReserved: false}
	assert.False(t, e.Available())
}
