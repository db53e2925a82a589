package parser

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/yourusername/storefront/internal/domain/entity"
	"github.com/yourusername/storefront/internal/domain/repository"
)

const sheetName = "Catalog"

var exportHeader = []interface{}{"id", "name", "price", "category", "img", "badge", "availability"}

type excelParser struct {
	logger *zap.Logger
}

// NewExcelParser yangi Excel parser yaratish
func NewExcelParser(logger *zap.Logger) repository.ExcelParser {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &excelParser{logger: logger}
}

// ParseProductsFromBytes byte array dan parse qilish
func (e *excelParser) ParseProductsFromBytes(ctx context.Context, data []byte, filename string) ([]entity.ProductDraft, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open excel from bytes: %w", err)
	}
	defer f.Close()

	drafts, err := e.parseExcelFile(f)
	if err != nil {
		return nil, err
	}
	e.logger.Info("catalog sheet parsed", zap.String("file", filename), zap.Int("products", len(drafts)))
	return drafts, nil
}

// parseExcelFile birinchi sheet dan mahsulotlarni o'qish
func (e *excelParser) parseExcelFile(f *excelize.File) ([]entity.ProductDraft, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("excel file has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("excel file is empty")
	}

	// Agar birinchi qatorning 2-ustuni raqam bo'lsa, header yo'q
	hasHeader := true
	startRow := 1
	if len(rows[0]) > 1 {
		if _, err := parsePrice(rows[0][1]); err == nil {
			hasHeader = false
			startRow = 0
			e.logger.Debug("no header detected, data starts from row 0")
		}
	}

	var columnMap map[string]int
	if hasHeader {
		columnMap = e.mapColumns(rows[0])
	} else {
		// Header yo'q: nom | narx | rasm | kategoriya
		columnMap = map[string]int{"name": 0, "price": 1, "img": 2, "category": 3}
	}
	e.logger.Debug("column mapping", zap.Any("columns", columnMap))

	var drafts []entity.ProductDraft
	for i := startRow; i < len(rows); i++ {
		row := rows[i]

		// Bo'sh qatorlarni skip qilish
		if isEmptyRow(row) {
			continue
		}

		// Bitta xato qator butun faylni rad etadi
		name := cell(row, columnMap, "name")
		if name == "" {
			return nil, fmt.Errorf("row %d: %w", i+1, &entity.ValidationError{Field: "name", Reason: "must not be empty"})
		}

		priceStr := cell(row, columnMap, "price")
		price, err := parsePrice(priceStr)
		if err != nil || price <= 0 {
			e.logger.Warn("invalid price in sheet", zap.Int("row", i+1), zap.String("price", priceStr))
			return nil, fmt.Errorf("row %d: %w", i+1, &entity.ValidationError{Field: "price", Reason: fmt.Sprintf("%q is not a positive whole number", priceStr)})
		}

		draft := entity.ProductDraft{
			Name:     name,
			Price:    price,
			Img:      cell(row, columnMap, "img"),
			Category: strings.ToLower(cell(row, columnMap, "category")),
			Badge:    cell(row, columnMap, "badge"),
		}
		if draft.Category == "" {
			draft.Category = detectCategory(name)
		}

		drafts = append(drafts, draft)
	}

	if len(drafts) == 0 {
		return nil, fmt.Errorf("no products found in excel file")
	}

	return drafts, nil
}

// WriteCatalog katalogni xlsx ko'rinishida yozish
func (e *excelParser) WriteCatalog(ctx context.Context, w io.Writer, products []entity.Product) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}
	if err := f.SetSheetRow(sheetName, "A1", &exportHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, p := range products {
		axis, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{p.ID, p.Name, p.Price, p.Category, p.Img, p.Badge, p.Availability}
		if err := f.SetSheetRow(sheetName, axis, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// isEmptyRow qator bo'sh yoki yo'qligini tekshirish
func isEmptyRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func cell(row []string, columnMap map[string]int, key string) string {
	idx, ok := columnMap[key]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// mapColumns header qatoridan column mapping yaratish
func (e *excelParser) mapColumns(header []string) map[string]int {
	columnMap := make(map[string]int)

	for i, col := range header {
		colName := strings.ToLower(strings.TrimSpace(col))

		switch {
		case contains(colName, "name", "nom", "название", "product", "mahsulot", "اسم", "المنتج"):
			columnMap["name"] = i
		case contains(colName, "category", "kategoriya", "категория", "type", "الفئة"):
			columnMap["category"] = i
		case contains(colName, "price", "narx", "цена", "cost", "السعر"):
			columnMap["price"] = i
		case contains(colName, "img", "image", "rasm", "photo", "url", "صورة"):
			columnMap["img"] = i
		case contains(colName, "badge", "label", "tag", "شارة"):
			columnMap["badge"] = i
		}
	}

	// Asosiy maydonlar topilmasa, birinchi ustunlar
	if _, ok := columnMap["name"]; !ok && len(header) > 0 {
		columnMap["name"] = 0
		e.logger.Warn("no name column found, using column 0")
	}
	if _, ok := columnMap["price"]; !ok && len(header) > 1 {
		columnMap["price"] = 1
		e.logger.Warn("no price column found, using column 1")
	}

	return columnMap
}

// contains tekshirish uchun helper
func contains(str string, keywords ...string) bool {
	for _, keyword := range keywords {
		if strings.Contains(str, keyword) {
			return true
		}
	}
	return false
}

// parsePrice narxni butun songa o'tkazish
func parsePrice(priceStr string) (int64, error) {
	priceStr = strings.ToLower(strings.TrimSpace(priceStr))
	if priceStr == "" {
		return 0, fmt.Errorf("empty price")
	}

	priceStr = strings.ReplaceAll(priceStr, ",", "")
	priceStr = strings.ReplaceAll(priceStr, " ", "")
	priceStr = strings.ReplaceAll(priceStr, "$", "")
	priceStr = strings.ReplaceAll(priceStr, "€", "")
	priceStr = strings.ReplaceAll(priceStr, "da", "")
	priceStr = strings.ReplaceAll(priceStr, "dzd", "")

	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid price format: %s", priceStr)
	}
	if price != math.Trunc(price) {
		return 0, fmt.Errorf("price must be a whole number: %s", priceStr)
	}

	return int64(price), nil
}

// detectCategory mahsulot nomidan kategoriyani aniqlash
func detectCategory(name string) string {
	nameLower := strings.ToLower(name)

	if contains(nameLower, "خدمة", "service") {
		return entity.CategoryServices
	}

	if contains(nameLower, "villa", "فيلا", "apt", "apartment", "شقة", "mansion", "قصر", "house", "منزل") {
		return entity.CategoryRealEstate
	}

	if contains(nameLower, "car", "سيارة", "lamborghini", "nissan", "rolls", "bmw", "mercedes", "ferrari", "gtr") {
		return entity.CategoryCars
	}

	return ""
}
