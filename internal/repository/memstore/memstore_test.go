package memstore_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/hostelcare/complaints-backend/internal/model"
	"github.com/hostelcare/complaints-backend/internal/repository"
	"github.com/hostelcare/complaints-backend/internal/repository/memstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComplaintCreate_RequiresStudent(t *testing.T) {
	store := memstore.New()
	err := store.Complaints().Create(context.Background(), &model.Complaint{StudentID: uuid.New()})
	assert.ErrorIs(t, err, repository.ErrReferenceMissing)
}

func TestUniquenessIsPerKind(t *testing.T) {
	store := memstore.New()
	ctx := context.Background()

	require.NoError(t, store.Students().Create(ctx, &model.Student{RollNumber: "R1", Email: "x@h.local"}))
	assert.ErrorIs(t, store.Students().Create(ctx, &model.Student{RollNumber: "R2", Email: "x@h.local"}), repository.ErrDuplicate)
	assert.ErrorIs(t, store.Students().Create(ctx, &model.Student{RollNumber: "R1", Email: "y@h.local"}), repository.ErrDuplicate)

	require.NoError(t, store.Staff().Create(ctx, &model.Staff{StaffID: "S1", Email: "x@h.local"}))
	assert.ErrorIs(t, store.Staff().Create(ctx, &model.Staff{StaffID: "S1", Email: "z@h.local"}), repository.ErrDuplicate)
}

func TestReturnedComplaintsAreCopies(t *testing.T) {
	store := memstore.New()
	ctx := context.Background()
	student := &model.Student{RollNumber: "R1", Email: "x@h.local"}
	require.NoError(t, store.Students().Create(ctx, student))

	c := &model.Complaint{StudentID: student.ID, Category: model.CategoryOther, Image: model.Image{Data: []byte{1, 2, 3}}}
	require.NoError(t, store.Complaints().Create(ctx, c))

	got, err := store.Complaints().GetByID(ctx, c.ID)
	require.NoError(t, err)
	got.Image.Data[0] = 9
	got.Status = model.StatusResolved

	again, err := store.Complaints().GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, byte(1), again.Image.Data[0])
	assert.Equal(t, model.StatusSubmitted, again.Status)
}
