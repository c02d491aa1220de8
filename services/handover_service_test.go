package services

import (
	"testing"
	"time"

	"carelog-http-service/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateHandoverDefaults(t *testing.T) {
	db := newTestDB(t)
	svc := NewHandoverService(db, newTestConfig())

	item, err := svc.CreateHandover(HandoverFields{Title: "夜間の様子"}, "佐藤")
	require.NoError(t, err)

	assert.Equal(t, time.Now().Format("2006-01-02"), item.OnDate)
	assert.Equal(t, models.ShiftDay, item.Shift)
	assert.Equal(t, models.PriorityMiddle, item.Priority)
	assert.Nil(t, item.ResidentID)
	assert.Equal(t, "佐藤", item.StaffName)
}

func TestCreateHandoverUnknownResident(t *testing.T) {
	svc := NewHandoverService(newTestDB(t), newTestConfig())

	unknown := uint(9999)
	_, err := svc.CreateHandover(HandoverFields{ResidentID: &unknown}, "佐藤")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListHandoverFiltersAndOrders(t *testing.T) {
	db := newTestDB(t)
	svc := NewHandoverService(db, newTestConfig())
	resident := mustCreateResident(t, db, "太郎")

	mk := func(date, shift string, priority int, title string, residentID *uint) *models.HandoverItem {
		item, err := svc.CreateHandover(HandoverFields{
			OnDate:     date,
			Shift:      shift,
			Priority:   priority,
			Title:      title,
			ResidentID: residentID,
		}, "佐藤")
		require.NoError(t, err)
		return item
	}

	lowOld := mk("2025-10-24", models.ShiftDay, models.PriorityLow, "low old", nil)
	midOld := mk("2025-10-24", models.ShiftDay, models.PriorityMiddle, "mid old", &resident.ID)
	midNew := mk("2025-10-24", models.ShiftDay, models.PriorityMiddle, "mid new", nil)
	high := mk("2025-10-24", models.ShiftDay, models.PriorityHigh, "high", nil)
	// 别的班次和别的日期不应出现
	mk("2025-10-24", models.ShiftNight, models.PriorityHigh, "other shift", nil)
	mk("2025-10-25", models.ShiftDay, models.PriorityHigh, "other day", nil)

	rows, err := svc.ListHandover("2025-10-24", models.ShiftDay)
	require.NoError(t, err)
	require.Len(t, rows, 4)

	// 优先级升序，同优先级内新的在前
	assert.Equal(t, high.ID, rows[0].ID)
	assert.Equal(t, midNew.ID, rows[1].ID)
	assert.Equal(t, midOld.ID, rows[2].ID)
	assert.Equal(t, lowOld.ID, rows[3].ID)

	// 左连接补出入住者姓名，未关联的为空
	require.NotNil(t, rows[2].ResidentName)
	assert.Equal(t, "太郎", *rows[2].ResidentName)
	assert.Nil(t, rows[0].ResidentName)
}

func TestListHandoverDefaultsToTodayDayShift(t *testing.T) {
	db := newTestDB(t)
	svc := NewHandoverService(db, newTestConfig())

	item, err := svc.CreateHandover(HandoverFields{Title: "today"}, "佐藤")
	require.NoError(t, err)

	rows, err := svc.ListHandover("", "")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, item.ID, rows[0].ID)
}

func TestDeleteHandover(t *testing.T) {
	db := newTestDB(t)
	svc := NewHandoverService(db, newTestConfig())

	item, err := svc.CreateHandover(HandoverFields{Title: "x"}, "佐藤")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteHandover(item.ID))
	assert.ErrorIs(t, svc.DeleteHandover(item.ID), ErrNotFound)
}
