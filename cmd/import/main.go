package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/janmeier/trackjob/internal/config"
	"github.com/janmeier/trackjob/internal/domain"
	applog "github.com/janmeier/trackjob/internal/logger"
	"github.com/janmeier/trackjob/internal/repository"
)

func main() {
	var (
		inputPath  = flag.String("input", "", "path to the CSV export to import")
		userID     = flag.String("user", "", "user id to attach imported applications to")
		configPath = flag.String("config", os.Getenv("CONFIG_PATH"), "path to config file")
		dryRun     = flag.Bool("dry-run", false, "parse and report without writing to the database")
	)
	flag.Parse()

	if *inputPath == "" || *userID == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := applog.NewDefault()
	applog.SetDefaultLogger(logger)
	defer applog.Sync()

	file, err := os.Open(*inputPath)
	if err != nil {
		logger.WithError(err).Fatal("Failed to open input file")
	}
	defer file.Close()

	apps, invalid, err := loadApplications(file, *userID)
	if err != nil {
		logger.WithError(err).Fatal("Failed to parse CSV")
	}
	logger.WithFields(applog.Fields{
		"parsed":  len(apps),
		"invalid": invalid,
	}).Info("CSV parsed")

	if *dryRun {
		logger.Info("Dry run, nothing written")
		return
	}

	db, err := repository.InitDB(&cfg.Database)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize database")
	}
	repo := repository.NewApplicationRepository(db)

	ctx := context.Background()
	imported := 0
	for i := range apps {
		if err := repo.Create(ctx, &apps[i]); err != nil {
			logger.WithError(err).WithField("company", apps[i].CompanyName).Error("Failed to import row")
			continue
		}
		imported++
	}

	logger.WithFields(applog.Fields{
		"imported": imported,
		"skipped":  len(apps) - imported + invalid,
	}).Info("Import finished")
}

// loadApplications parses a CSV export into application records. Rows
// missing a company, position, or parseable application date are counted
// as invalid and skipped rather than aborting the import.
// Parameters:
//   - r: CSV input with a header row.
//   - userID: owner attached to every imported record.
// Returns:
//   - []domain.JobApplication: parsed records, input order.
//   - int: number of skipped rows.
//   - error: non-nil on unreadable input or a missing required column.
func loadApplications(r io.Reader, userID string) ([]domain.JobApplication, int, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("unable to read header: %w", err)
	}

	colMap := normalizeHeaders(headers)
	companyIdx, ok := findColumn(colMap, []string{"company_name", "company"})
	if !ok {
		return nil, 0, errors.New("missing company_name column")
	}
	positionIdx, ok := findColumn(colMap, []string{"position_title", "position", "title", "role"})
	if !ok {
		return nil, 0, errors.New("missing position_title column")
	}
	appliedIdx, ok := findColumn(colMap, []string{"application_date", "applied", "applied_at", "date"})
	if !ok {
		return nil, 0, errors.New("missing application_date column")
	}

	statusIdx, _ := findColumn(colMap, []string{"status", "outcome"})
	areaIdx, _ := findColumn(colMap, []string{"area_of_work", "area", "field"})
	locationIdx, _ := findColumn(colMap, []string{"job_location", "location"})
	methodIdx, _ := findColumn(colMap, []string{"application_method", "method", "source"})
	notesIdx, _ := findColumn(colMap, []string{"notes", "comment"})
	sentIdx, _ := findColumn(colMap, []string{"application_sent_date", "sent"})
	responseIdx, _ := findColumn(colMap, []string{"first_response_date", "first_response", "response"})
	interviewIdx, _ := findColumn(colMap, []string{"interview_scheduled_date", "interview_scheduled", "interview"})
	offerIdx, _ := findColumn(colMap, []string{"offer_received_date", "offer_date", "offer"})
	rejectionIdx, _ := findColumn(colMap, []string{"rejection_date", "rejected", "rejected_at"})

	var apps []domain.JobApplication
	invalid := 0

	for {
		record, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, 0, fmt.Errorf("unable to read CSV: %w", err)
		}
		if len(record) == 0 {
			continue
		}

		company := getValue(record, companyIdx)
		position := getValue(record, positionIdx)
		applied, err := parseFlexibleDate(getValue(record, appliedIdx))
		if company == "" || position == "" || err != nil {
			invalid++
			continue
		}

		app := domain.JobApplication{
			ID:                uuid.New().String(),
			UserID:            userID,
			CompanyName:       company,
			PositionTitle:     position,
			Status:            parseStatus(getValue(record, statusIdx)),
			ApplicationDate:   applied,
			AreaOfWork:        getValue(record, areaIdx),
			JobLocation:       getValue(record, locationIdx),
			ApplicationMethod: getValue(record, methodIdx),
			Notes:             getValue(record, notesIdx),
		}
		app.ApplicationSentDate, _ = parseOptionalDate(getValue(record, sentIdx))
		app.FirstResponseDate, _ = parseOptionalDate(getValue(record, responseIdx))
		app.InterviewScheduledDate, _ = parseOptionalDate(getValue(record, interviewIdx))
		app.OfferReceivedDate, _ = parseOptionalDate(getValue(record, offerIdx))
		app.RejectionDate, _ = parseOptionalDate(getValue(record, rejectionIdx))

		apps = append(apps, app)
	}

	return apps, invalid, nil
}

// parseFlexibleDate accepts the date formats commonly seen in exports.
func parseFlexibleDate(value string) (domain.Date, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return domain.Date{}, errors.New("empty date")
	}
	layouts := []string{
		"2006-01-02",
		"2006/01/02",
		"01/02/2006",
		"02.01.2006",
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05Z07:00",
	}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return domain.DateOf(parsed), nil
		}
	}
	return domain.Date{}, fmt.Errorf("unsupported date format: %s", value)
}

// parseOptionalDate is parseFlexibleDate with empty treated as absent.
func parseOptionalDate(value string) (domain.Date, error) {
	if strings.TrimSpace(value) == "" {
		return domain.Date{}, nil
	}
	return parseFlexibleDate(value)
}

// parseStatus maps loose status text onto the closed status set,
// defaulting to applied.
func parseStatus(value string) domain.ApplicationStatus {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "interview", "interviewing":
		return domain.StatusInterview
	case "offer", "offered", "accepted":
		return domain.StatusOffer
	case "rejected", "rejection", "declined":
		return domain.StatusRejected
	case "withdrawn", "withdrew":
		return domain.StatusWithdrawn
	default:
		return domain.StatusApplied
	}
}

func normalizeHeaders(headers []string) map[string]int {
	result := make(map[string]int, len(headers))
	for idx, header := range headers {
		normalized := normalizeHeader(header)
		if _, exists := result[normalized]; !exists {
			result[normalized] = idx
		}
	}
	return result
}

func normalizeHeader(value string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	value = strings.ReplaceAll(value, " ", "")
	value = strings.ReplaceAll(value, "_", "")
	value = strings.ReplaceAll(value, "-", "")
	return value
}

func findColumn(headers map[string]int, names []string) (int, bool) {
	for _, name := range names {
		if idx, ok := headers[normalizeHeader(name)]; ok {
			return idx, true
		}
	}
	return -1, false
}

func getValue(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}
