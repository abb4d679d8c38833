package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Gusi-ui/sadmini-sub001/internal/dto"
	"github.com/Gusi-ui/sadmini-sub001/internal/repository"
)

// ── export module errors ──

var (
	ErrExportNoVisits     = errors.New("no visits in the requested range")
	ErrExportGenerateFail = errors.New("generating export file failed")
)

// ExportService turns a worker's resolved schedule into downloadable files.
// Exports are built from the same resolution path the read API uses, so a
// spreadsheet never disagrees with the screen.
type ExportService interface {
	// ExportWorkerXLSX renders a worker's visits for a range as an Excel
	// workbook. Returns the file content and a suggested filename.
	ExportWorkerXLSX(ctx context.Context, workerID string, req *dto.ResolveRequest) (*bytes.Buffer, string, error)
	// ExportWorkerICS renders the same visits as an iCalendar feed.
	ExportWorkerICS(ctx context.Context, workerID string, req *dto.ResolveRequest) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo     *repository.Repository
	schedule ScheduleService
	logger   *zap.Logger
}

// NewExportService creates an ExportService.
func NewExportService(repo *repository.Repository, schedule ScheduleService, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, schedule: schedule, logger: logger}
}

func (s *exportService) ExportWorkerXLSX(ctx context.Context, workerID string, req *dto.ResolveRequest) (*bytes.Buffer, string, error) {
	worker, resolved, err := s.load(ctx, workerID, req)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Schedule"
	idx, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheetName, "A", "A", 12)
	f.SetColWidth(sheetName, "B", "B", 12)
	f.SetColWidth(sheetName, "C", "D", 10)
	f.SetColWidth(sheetName, "E", "E", 24)
	f.SetColWidth(sheetName, "F", "F", 18)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// title row
	f.SetCellValue(sheetName, "A1", fmt.Sprintf("%s — visits %s to %s", worker.Name, resolved.From, resolved.To))
	f.MergeCell(sheetName, "A1", "F1")
	f.SetCellStyle(sheetName, "A1", "A1", headerStyle)

	// header row
	row := 2
	headers := []string{"Date", "Day type", "Start", "End", "Client", "Municipality"}
	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetCellValue(sheetName, cell(col, row), h)
	}

	// visit rows, already in resolution order
	row = 3
	for _, v := range resolved.Visits {
		clientName, municipality := "-", "-"
		if v.Client != nil {
			clientName = v.Client.Name
			municipality = v.Client.Municipality
		}
		f.SetCellValue(sheetName, cell("A", row), v.Date)
		f.SetCellValue(sheetName, cell("B", row), v.DayType)
		f.SetCellValue(sheetName, cell("C", row), v.StartTime)
		f.SetCellValue(sheetName, cell("D", row), v.EndTime)
		f.SetCellValue(sheetName, cell("E", row), clientName)
		f.SetCellValue(sheetName, cell("F", row), municipality)
		row++
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("writing xlsx failed", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("schedule_%s_%s_%s.xlsx", worker.EmployeeCode, resolved.From, resolved.To)
	return buf, filename, nil
}

func (s *exportService) ExportWorkerICS(ctx context.Context, workerID string, req *dto.ResolveRequest) (*bytes.Buffer, string, error) {
	worker, resolved, err := s.load(ctx, workerID, req)
	if err != nil {
		return nil, "", err
	}

	calendar := ics.NewCalendar()
	calendar.SetMethod(ics.MethodPublish)
	calendar.SetProductId("-//sadmini//care-schedule//EN")

	now := time.Now().UTC()
	for i, v := range resolved.Visits {
		start, err := time.Parse("2006-01-02 15:04", v.Date+" "+v.StartTime)
		if err != nil {
			s.logger.Error("malformed visit time", zap.String("date", v.Date), zap.String("start", v.StartTime), zap.Error(err))
			return nil, "", ErrExportGenerateFail
		}
		end, err := time.Parse("2006-01-02 15:04", v.Date+" "+v.EndTime)
		if err != nil {
			return nil, "", ErrExportGenerateFail
		}

		uid := fmt.Sprintf("%s-%s-%d@sadmini", v.AssignmentID, v.Date, i)
		event := calendar.AddEvent(uid)
		event.SetDtStampTime(now)
		event.SetStartAt(start)
		event.SetEndAt(end)

		summary := "Care visit"
		if v.Client != nil {
			summary = fmt.Sprintf("Care visit — %s", v.Client.Name)
			event.SetLocation(v.Client.Municipality)
		}
		event.SetSummary(summary)
		event.SetDescription(fmt.Sprintf("Worker: %s / Day type: %s", worker.Name, v.DayType))
	}

	buf := bytes.NewBufferString(calendar.Serialize())
	filename := fmt.Sprintf("schedule_%s_%s_%s.ics", worker.EmployeeCode, resolved.From, resolved.To)
	return buf, filename, nil
}

// load resolves the worker's schedule and refuses empty exports.
func (s *exportService) load(ctx context.Context, workerID string, req *dto.ResolveRequest) (*dto.WorkerResponse, *dto.ScheduleResponse, error) {
	worker, err := s.workerBrief(ctx, workerID)
	if err != nil {
		return nil, nil, err
	}

	resolved, err := s.schedule.ResolveWorker(ctx, workerID, req)
	if err != nil {
		return nil, nil, err
	}
	if len(resolved.Visits) == 0 {
		return nil, nil, ErrExportNoVisits
	}
	return worker, resolved, nil
}

func (s *exportService) workerBrief(ctx context.Context, workerID string) (*dto.WorkerResponse, error) {
	worker, err := s.repo.Worker.GetByID(ctx, workerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkerNotFound
		}
		return nil, err
	}
	return &dto.WorkerResponse{
		ID:           worker.WorkerID,
		Name:         worker.Name,
		EmployeeCode: worker.EmployeeCode,
	}, nil
}

// ── helpers ──

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
