package batch

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/alexiusacademia/gocivil/internal/engine"
)

func workbook(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return &buf
}

func sampleRows() [][]interface{} {
	return [][]interface{}{
		{"Name", "Element", "Support", "Span", "Floors", "Concrete", "Steel", "Seismic", "Dead", "Live", "Finish"},
		{"B1", "", "simply-supported", 5, 1, "K-250", "BjTS-420", "moderate", 10, 5, ""},
		{"B2", "main-beam", "", 6, 2, "k-300", "bjts-420", "high", 8, 4, "tile-mortar; ceiling-me"},
		{"C1", "column", "", 5, 3, "K-300", "BjTS-420", "", "", "", ""},
		{"", "", "", "", "", "", "", "", "", "", ""},
		{"BAD", "", "simply-supported", "five", 1, "K-250", "BjTS-420", "low", 1, 1, ""},
		{"B404", "", "simply-supported", 5, 1, "K-999", "BjTS-420", "low", 1, 1, ""},
	}
}

func TestReadXLSX(t *testing.T) {
	items, err := ReadXLSX(workbook(t, sampleRows()))
	require.NoError(t, err)
	require.Len(t, items, 5)

	assert.Equal(t, 2, items[0].Row)
	assert.Equal(t, "B1", items[0].Request.Name)
	assert.Equal(t, 5.0, items[0].Request.Geometry.Span)
	assert.Nil(t, items[0].Request.Loads.FinishClasses)

	assert.Equal(t, []string{"tile-mortar", "ceiling-me"}, items[1].Request.Loads.FinishClasses)
	assert.Equal(t, 2, items[1].Request.Geometry.FloorCount)

	assert.True(t, items[2].Request.IsColumn())

	// blank row 5 skipped
	assert.Equal(t, 6, items[3].Row)
	assert.Error(t, items[3].Err)
	assert.NoError(t, items[4].Err)
}

func TestReadXLSX_NoSpanColumn(t *testing.T) {
	_, err := ReadXLSX(workbook(t, [][]interface{}{{"Name"}, {"B1"}}))
	assert.Error(t, err)
}

func TestReadXLSX_NotAWorkbook(t *testing.T) {
	_, err := ReadXLSX(strings.NewReader("span,floors\n5,1\n"))
	assert.Error(t, err)
}

func TestReadJSON(t *testing.T) {
	items, err := ReadJSON(strings.NewReader(`[
		{"name":"B1","material":{"concrete_grade":"K-250","steel_grade":"BjTS-420"},
		 "geometry":{"span_m":5,"floor_count":1},"support":"simply-supported",
		 "loads":{"dead_kn_m":10,"live_kn_m":5},"seismic":"moderate"}
	]`))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Row)
	assert.Equal(t, "K-250", items[0].Request.Material.ConcreteGrade)

	_, err = ReadJSON(strings.NewReader(`{"name":"B1"}`))
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	items, err := ReadXLSX(workbook(t, sampleRows()))
	require.NoError(t, err)

	r := &Runner{Engine: engine.New(zap.NewNop()), Workers: 2, Log: zap.NewNop()}
	out, err := r.Run(context.Background(), items)
	require.NoError(t, err)
	require.Len(t, out, len(items))

	for i, o := range out {
		assert.Equal(t, items[i].Row, o.Row, "outcomes keep input order")
	}
	require.NoError(t, out[0].Err)
	assert.Equal(t, 350, out[0].Result.Beam.Height)
	require.NoError(t, out[1].Err)
	assert.Equal(t, 550, out[1].Result.Beam.Height)
	require.NoError(t, out[2].Err)
	assert.NotNil(t, out[2].Result.Column)
	assert.Error(t, out[3].Err)
	assert.ErrorIs(t, out[4].Err, engine.ErrConfigLookup)
}

func TestRun_MatchesSingleDesign(t *testing.T) {
	items, err := ReadXLSX(workbook(t, sampleRows()))
	require.NoError(t, err)

	out, err := (&Runner{Workers: 4}).Run(context.Background(), items[:3])
	require.NoError(t, err)
	for i, o := range out {
		want, err := engine.Design(items[i].Request)
		require.NoError(t, err)
		assert.Equal(t, want, o.Result)
	}
}

func TestRun_Cancelled(t *testing.T) {
	items, err := ReadXLSX(workbook(t, sampleRows()))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = (&Runner{Workers: 1}).Run(ctx, items)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWriteXLSX(t *testing.T) {
	items, err := ReadXLSX(workbook(t, sampleRows()))
	require.NoError(t, err)
	out, err := (&Runner{}).Run(context.Background(), items)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, out))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Results")
	require.NoError(t, err)
	require.Len(t, rows, len(out)+1)
	assert.Equal(t, resultHeader[:4], rows[0][:4])

	assert.Equal(t, []string{"2", "B1", "", "ok", "200", "350"}, rows[1][:6])
	assert.Equal(t, "column", rows[3][2])
	assert.Equal(t, "error", rows[4][3])
}
