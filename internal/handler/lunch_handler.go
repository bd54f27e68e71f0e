package handler

import (
	"bytes"
	"encoding/csv"
	"errors"
	"log"
	"regexp"
	"strings"

	"lunch-backend/internal/localday"
	"lunch-backend/internal/model"
	"lunch-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

type LunchHandler struct {
	usecase *usecase.LunchUsecase
}

func NewLunchHandler(u *usecase.LunchUsecase) *LunchHandler {
	return &LunchHandler{usecase: u}
}

type RegisterLunchRequest struct {
	EmployeeCode string `json:"employeeCode" validate:"required"`
}

var dayPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Register dipanggil kios meja depan tiap kali barcode discan.
// Status bisnis (OK / ALREADY_REGISTERED / NOT_FOUND / INACTIVE) selalu
// balik sebagai 200 dengan field status; 400 hanya untuk input rusak,
// 500 hanya untuk gangguan infrastruktur.
func (h *LunchHandler) Register(c *fiber.Ctx) error {
	var req RegisterLunchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	// Tolak input kosong/spasi di boundary, sebelum nyentuh database
	if err := validate.Struct(req); err != nil || strings.TrimSpace(req.EmployeeCode) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Kode karyawan wajib diisi"})
	}

	result, err := h.usecase.Register(req.EmployeeCode)
	if err != nil {
		// Jangan bocorkan pesan error database ke client
		log.Println("Register lunch error:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": usecase.StatusError,
			"error":  "Gagal memproses registrasi, coba lagi",
		})
	}

	return c.JSON(result)
}

func (h *LunchHandler) GetLogs(c *fiber.Ctx) error {
	day := c.Query("day")
	if day == "" {
		day = localday.Today()
	}
	if !dayPattern.MatchString(day) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format tanggal harus YYYY-MM-DD"})
	}

	logs, err := h.usecase.LogsByDay(day)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data registrasi"})
	}

	return c.JSON(fiber.Map{"day": day, "data": logs})
}

func (h *LunchHandler) GetLogsByMonth(c *fiber.Ctx) error {
	month := c.Query("month")
	if month == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Parameter month wajib diisi"})
	}

	logs, err := h.usecase.LogsByMonth(month)
	if err != nil {
		if errors.Is(err, localday.ErrBadMonthRef) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format bulan harus YYYY-MM"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data registrasi"})
	}

	return c.JSON(fiber.Map{"month": month, "data": logs})
}

func (h *LunchHandler) GetRecent(c *fiber.Ctx) error {
	logs, err := h.usecase.RecentLogs(c.QueryInt("limit", 10))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data registrasi"})
	}
	return c.JSON(fiber.Map{"data": logs})
}

func (h *LunchHandler) GetSixMonthStats(c *fiber.Ctx) error {
	buckets, err := h.usecase.LastSixMonthsStats()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghitung statistik"})
	}
	return c.JSON(fiber.Map{"data": buckets})
}

// Export mengunduh laporan harian/bulanan sebagai XLSX (default) atau CSV.
func (h *LunchHandler) Export(c *fiber.Ctx) error {
	var (
		logs  []model.LunchLog
		label string
		err   error
	)

	if month := c.Query("month"); month != "" {
		logs, err = h.usecase.LogsByMonth(month)
		label = month
		if err != nil && errors.Is(err, localday.ErrBadMonthRef) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format bulan harus YYYY-MM"})
		}
	} else {
		day := c.Query("day")
		if day == "" {
			day = localday.Today()
		}
		if !dayPattern.MatchString(day) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format tanggal harus YYYY-MM-DD"})
		}
		logs, err = h.usecase.LogsByDay(day)
		label = day
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data registrasi"})
	}

	if c.Query("format") == "csv" {
		body, err := buildCSV(logs)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat file CSV"})
		}
		c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="makan_siang_`+label+`.csv"`)
		return c.Send(body)
	}

	buf, err := buildXLSX(logs)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat file Excel"})
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="makan_siang_`+label+`.xlsx"`)
	return c.Send(buf.Bytes())
}

var exportHeaders = []string{"Nama", "Kode", "Tanggal", "Jam"}

func buildXLSX(logs []model.LunchLog) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Registrasi"
	f.SetSheetName("Sheet1", sheet)

	for col, title := range exportHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return nil, err
		}
	}

	for row, entry := range logs {
		values := []interface{}{
			entry.EmployeeName,
			entry.EmployeeCode,
			entry.DayLocal,
			entry.RegisteredAt.In(localday.Location()).Format("15:04:05"),
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	return f.WriteToBuffer()
}

func buildCSV(logs []model.LunchLog) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(exportHeaders); err != nil {
		return nil, err
	}
	for _, entry := range logs {
		record := []string{
			entry.EmployeeName,
			entry.EmployeeCode,
			entry.DayLocal,
			entry.RegisteredAt.In(localday.Location()).Format("15:04:05"),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
