package parser

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/yourusername/storefront/internal/domain/entity"
)

func buildWorkbook(t *testing.T, rows [][]interface{}) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		axis, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		r := row
		require.NoError(t, f.SetSheetRow(sheet, axis, &r))
	}

	var buf bytes.Buffer
	_, err := f.WriteTo(&buf)
	require.NoError(t, err)
	return buf.Bytes()
}

func TestParseWithHeader(t *testing.T) {
	data := buildWorkbook(t, [][]interface{}{
		{"Product Name", "Image URL", "Price", "Category", "Badge"},
		{"Ferrari F40", "https://img/f40", "4,000 DA", "Cars", "hot"},
		{"", "", "", "", ""},
		{"Beach Villa", "https://img/villa", 12000, "", ""},
	})

	drafts, err := NewExcelParser(nil).ParseProductsFromBytes(context.Background(), data, "catalog.xlsx")
	require.NoError(t, err)
	require.Len(t, drafts, 2)

	assert.Equal(t, entity.ProductDraft{
		Name:     "Ferrari F40",
		Price:    4000,
		Img:      "https://img/f40",
		Category: "cars",
		Badge:    "hot",
	}, drafts[0])

	assert.Equal(t, "Beach Villa", drafts[1].Name)
	assert.Equal(t, int64(12000), drafts[1].Price)
	assert.Equal(t, entity.CategoryRealEstate, drafts[1].Category, "category guessed from name")
}

func TestParseWithoutHeader(t *testing.T) {
	data := buildWorkbook(t, [][]interface{}{
		{"Nissan GTR", 1500, "img1"},
		{"خدمة: تغيير الاسم", 300, "img2", "services"},
	})

	drafts, err := NewExcelParser(nil).ParseProductsFromBytes(context.Background(), data, "raw.xlsx")
	require.NoError(t, err)
	require.Len(t, drafts, 2)
	assert.Equal(t, entity.CategoryCars, drafts[0].Category)
	assert.Equal(t, "img1", drafts[0].Img)
	assert.Equal(t, entity.CategoryServices, drafts[1].Category)
}

func TestParseRejectsInvalidRows(t *testing.T) {
	cases := []struct {
		name    string
		rows    [][]interface{}
		field   string
		wantRow string
	}{
		{
			name:    "invalid price",
			rows:    [][]interface{}{{"name", "price", "img"}, {"Ferrari", 4000, "a"}, {"Broken", "free", "b"}},
			field:   "price",
			wantRow: "row 3",
		},
		{
			name:    "fractional price",
			rows:    [][]interface{}{{"name", "price", "img"}, {"Half", "12.5", "a"}},
			field:   "price",
			wantRow: "row 2",
		},
		{
			name:    "missing price",
			rows:    [][]interface{}{{"name", "price", "img"}, {"Ferrari", "", "a"}},
			field:   "price",
			wantRow: "row 2",
		},
		{
			name:    "missing name",
			rows:    [][]interface{}{{"name", "price", "img"}, {"", 100, "a"}},
			field:   "name",
			wantRow: "row 2",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			data := buildWorkbook(t, tc.rows)
			drafts, err := NewExcelParser(nil).ParseProductsFromBytes(context.Background(), data, "bad.xlsx")
			require.Error(t, err)
			assert.Nil(t, drafts)
			assert.ErrorIs(t, err, entity.ErrValidation)
			assert.Contains(t, err.Error(), tc.wantRow)
			assert.Contains(t, err.Error(), tc.field)
		})
	}
}

func TestParseRejectsEmptyWorkbook(t *testing.T) {
	data := buildWorkbook(t, [][]interface{}{
		{"name", "price"},
	})
	_, err := NewExcelParser(nil).ParseProductsFromBytes(context.Background(), data, "empty.xlsx")
	assert.Error(t, err)

	_, err = NewExcelParser(nil).ParseProductsFromBytes(context.Background(), []byte("not a workbook"), "bad.xlsx")
	assert.Error(t, err)
}

func TestWriteCatalogRoundTrip(t *testing.T) {
	ctx := context.Background()
	p := NewExcelParser(nil)
	products := []entity.Product{
		{ID: "p1", Name: "Lamborghini Veneno", Price: 2500, Category: "cars", Img: "img1", Badge: "new", Availability: true},
		{ID: "s2", Name: "Delete Char", Price: 2000, Category: "services", Img: "img2", Availability: false},
	}

	var buf bytes.Buffer
	require.NoError(t, p.WriteCatalog(ctx, &buf, products))

	drafts, err := p.ParseProductsFromBytes(ctx, buf.Bytes(), "export.xlsx")
	require.NoError(t, err)
	require.Len(t, drafts, 2)
	assert.Equal(t, entity.ProductDraft{Name: "Lamborghini Veneno", Price: 2500, Img: "img1", Category: "cars", Badge: "new"}, drafts[0])
	assert.Equal(t, "services", drafts[1].Category)
}

func TestParsePrice(t *testing.T) {
	cases := map[string]int64{
		"1500":     1500,
		"1,500":    1500,
		"$25":      25,
		"2500 DA":  2500,
		" 300.00 ": 300,
	}
	for in, want := range cases {
		got, err := parsePrice(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, in := range []string{"", "abc", "12.5"} {
		_, err := parsePrice(in)
		assert.Error(t, err, in)
	}
}
