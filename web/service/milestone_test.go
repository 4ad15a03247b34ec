package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsprime/prime-cms/database/model"
)

func TestMilestoneCRUD(t *testing.T) {
	setup()
	defer teardown()

	svc := MilestoneService{}

	m := &model.Milestone{Year: "2015", Title: "Founded", Description: "Company founded"}
	require.NoError(t, svc.Create(m))
	assert.NotZero(t, m.Id)

	later := &model.Milestone{Year: "2020", Title: "Expansion", Description: "Second office"}
	require.NoError(t, svc.Create(later))

	// Sorted by year.
	all, err := svc.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "2015", all[0].Year)

	updated, err := svc.Update(m.Id, &model.Milestone{Year: "2014", Title: "Founded", Description: "Company founded"})
	require.NoError(t, err)
	assert.Equal(t, "2014", updated.Year)

	_, err = svc.Update(999, &model.Milestone{Year: "1990"})
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, svc.Delete(m.Id))
	assert.ErrorIs(t, svc.Delete(m.Id), ErrNotFound)
}

func TestCoreValueCRUD(t *testing.T) {
	setup()
	defer teardown()

	svc := CoreValueService{}

	v := &model.CoreValue{Title: "Integrity", Description: "We keep our word", Icon: "Shield"}
	require.NoError(t, svc.Create(v))
	assert.NotZero(t, v.Id)

	updated, err := svc.Update(v.Id, &model.CoreValue{Title: "Integrity", Description: "We deliver on our word", Icon: "Award"})
	require.NoError(t, err)
	assert.Equal(t, "Award", updated.Icon)

	all, err := svc.GetAll()
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, svc.Delete(v.Id))
	assert.ErrorIs(t, svc.Delete(v.Id), ErrNotFound)
}
