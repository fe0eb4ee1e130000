package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/elmerohueso/FamilyChores/internal/ledger"
	"github.com/elmerohueso/FamilyChores/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler writes the transaction history out as CSV or XLSX.
type ExportHandler struct {
	Ledger *ledger.Service
}

func NewExportHandler(svc *ledger.Service) *ExportHandler {
	return &ExportHandler{Ledger: svc}
}

var exportHeaders = []string{"User", "Chore", "Points", "Date"}

func exportRow(r *ledger.TransactionRecord) []string {
	userName := ""
	if r.UserName != nil {
		userName = *r.UserName
	}
	choreName := ""
	if r.ChoreName != nil {
		choreName = *r.ChoreName
	}
	return []string{
		userName,
		choreName,
		strconv.Itoa(r.Value),
		r.Timestamp.Format("2006-01-02 15:04:05"),
	}
}

// ExportCSV streams the ledger as a CSV attachment.
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	records, err := h.Ledger.ListTransactions()
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to list transactions")
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"transactions_%s.csv\"",
		time.Now().Format("20060102")))

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write(exportHeaders)
	for i := range records {
		writer.Write(exportRow(&records[i]))
	}
}

// ExportXLSX writes the ledger as an XLSX attachment.
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	records, err := h.Ledger.ListTransactions()
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to list transactions")
		return
	}

	f := excelize.NewFile()
	sheetName := "Transactions"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to create sheet")
		return
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for i, header := range exportHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}
	for idx := range records {
		row := idx + 2
		for col, v := range exportRow(&records[idx]) {
			cell := fmt.Sprintf("%c%d", 'A'+col, row)
			f.SetCellValue(sheetName, cell, v)
		}
	}

	f.SetColWidth(sheetName, "A", "B", 20)
	f.SetColWidth(sheetName, "C", "C", 10)
	f.SetColWidth(sheetName, "D", "D", 20)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"transactions_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to export")
	}
}
