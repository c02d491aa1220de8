package services

import (
	"testing"

	"carelog-http-service/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResidentCRUD(t *testing.T) {
	db := newTestDB(t)
	svc := NewResidentService(db, newTestConfig())

	age := 82
	resident := &models.Resident{Name: "太郎", Age: &age, Gender: "male", RoomNumber: "101"}
	require.NoError(t, svc.CreateResident(resident))
	require.NotZero(t, resident.ID)

	got, err := svc.GetResidentByID(resident.ID)
	require.NoError(t, err)
	assert.Equal(t, "太郎", got.Name)

	newAge := 83
	updated, err := svc.UpdateResident(resident.ID, &models.Resident{
		Name:       "太郎",
		Age:        &newAge,
		Gender:     "male",
		RoomNumber: "102",
		Notes:      "要見守り",
	})
	require.NoError(t, err)
	assert.Equal(t, "102", updated.RoomNumber)
	assert.Equal(t, 83, *updated.Age)

	all, err := svc.GetAllResidents()
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, svc.DeleteResident(resident.ID))
	_, err = svc.GetResidentByID(resident.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateResidentValidation(t *testing.T) {
	svc := NewResidentService(newTestDB(t), newTestConfig())

	assert.ErrorIs(t, svc.CreateResident(&models.Resident{Name: "  "}), ErrConstraintViolation)

	negative := -1
	assert.ErrorIs(t, svc.CreateResident(&models.Resident{Name: "太郎", Age: &negative}), ErrConstraintViolation)
}

func TestDeleteResidentCascadesRecords(t *testing.T) {
	db := newTestDB(t)
	residentSvc := NewResidentService(db, newTestConfig())
	recordSvc := NewRecordService(db, newTestConfig())

	taro := mustCreateResident(t, db, "太郎")
	hanako := mustCreateResident(t, db, "花子")

	_, err := recordSvc.CreateRecord(taro.ID, CareRecordFields{Meal: "All"}, "佐藤")
	require.NoError(t, err)
	kept, err := recordSvc.CreateRecord(hanako.ID, CareRecordFields{Meal: "Half"}, "佐藤")
	require.NoError(t, err)

	require.NoError(t, residentSvc.DeleteResident(taro.ID))

	// 级联删除只影响被删入住者的记录
	var count int64
	require.NoError(t, db.Model(&models.CareRecord{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	rows, err := recordSvc.GetAllRecords()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, kept.ID, rows[0].ID)
}

func TestDeleteResidentKeepsHandoverItems(t *testing.T) {
	db := newTestDB(t)
	residentSvc := NewResidentService(db, newTestConfig())
	handoverSvc := NewHandoverService(db, newTestConfig())

	taro := mustCreateResident(t, db, "太郎")
	item, err := handoverSvc.CreateHandover(HandoverFields{
		OnDate:     "2025-10-24",
		Shift:      models.ShiftDay,
		ResidentID: &taro.ID,
		Title:      "夜間の様子",
	}, "佐藤")
	require.NoError(t, err)

	require.NoError(t, residentSvc.DeleteResident(taro.ID))

	// 交接事项保留，仅解除入住者关联
	var got models.HandoverItem
	require.NoError(t, db.First(&got, item.ID).Error)
	assert.Nil(t, got.ResidentID)

	rows, err := handoverSvc.ListHandover("2025-10-24", models.ShiftDay)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Nil(t, rows[0].ResidentName)
}
