package jsonpatch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"repse-simulator/internal/model"
)

func TestDiffObjects(t *testing.T) {
	a := map[string]any{"keep": 1.0, "gone": "x", "change": "old"}
	b := map[string]any{"keep": 1.0, "change": "new", "added": true}

	ops := Diff(a, b, "")
	assert.Equal(t, []Operation{
		{Op: OpRemove, Path: "/gone"},
		{Op: OpAdd, Path: "/added", Value: true},
		{Op: OpReplace, Path: "/change", Value: "new"},
	}, ops)
}

func TestDiffArrays(t *testing.T) {
	a := []any{"a", "b", "c", "d"}
	b := []any{"a", "x"}

	ops := Diff(a, b, "/list")
	assert.Equal(t, []Operation{
		{Op: OpReplace, Path: "/list/1", Value: "x"},
		{Op: OpRemove, Path: "/list/3"},
		{Op: OpRemove, Path: "/list/2"},
	}, ops)

	ops = Diff(b, a, "")
	assert.Equal(t, []Operation{
		{Op: OpReplace, Path: "/1", Value: "b"},
		{Op: OpAdd, Path: "/2", Value: "c"},
		{Op: OpAdd, Path: "/3", Value: "d"},
	}, ops)
}

func TestDiffMixedKinds(t *testing.T) {
	ops := Diff(map[string]any{"k": 1.0}, []any{1.0}, "")
	require.Len(t, ops, 1)
	assert.Equal(t, OpReplace, ops[0].Op)

	assert.Nil(t, Diff(nil, nil, ""))
	assert.Equal(t, []Operation{{Op: OpReplace, Path: "/v", Value: nil}}, Diff("x", nil, "/v"))
}

func TestEscapeKey(t *testing.T) {
	ops := Diff(map[string]any{}, map[string]any{"a/b~c": 1.0}, "")
	require.Len(t, ops, 1)
	assert.Equal(t, "/a~1b~0c", ops[0].Path)
}

func TestCompareResults(t *testing.T) {
	before := model.SimulationResult{
		ID:    "first",
		Date:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		Score: 40,
		Infractions: []model.Infraction{
			{ID: "doc_repse", Description: "Registro REPSE"},
		},
		HasREPSECancellationRisk: true,
	}
	after := before
	after.ID = "second"
	after.Date = before.Date.Add(24 * time.Hour)
	after.Score = 85
	after.Infractions = []model.Infraction{}
	after.HasREPSECancellationRisk = false

	ops, err := Compare(before, after, "/id", "/date")
	require.NoError(t, err)
	assert.Equal(t, []Operation{
		{Op: OpReplace, Path: "/hasREPSECancellationRisk", Value: false},
		{Op: OpRemove, Path: "/infractions/0"},
		{Op: OpReplace, Path: "/score", Value: 85.0},
	}, ops)

	ops, err = Compare(before, before)
	require.NoError(t, err)
	assert.Empty(t, ops)
}

func TestCompareEncodeError(t *testing.T) {
	_, err := Compare(map[string]any{"f": func() {}}, nil)
	assert.Error(t, err)
}
