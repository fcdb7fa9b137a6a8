package seed

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/noah-isme/campus-events-api/internal/models"
	"github.com/noah-isme/campus-events-api/internal/repository"
	"github.com/noah-isme/campus-events-api/pkg/database"
)

// Attendance and feedback cover the first registrations only. Odd positions are
// present with rating 4, even positions absent with rating 3.
const sampledRegistrations = 6

var colleges = []string{"REVA University", "PES University", "RV College"}

var students = []models.Student{
	{Name: "Alice Kumar", Email: strPtr("alice@example.com"), CollegeID: idPtr(1)},
	{Name: "Brunda N", Email: strPtr("brunda@example.com"), CollegeID: idPtr(1)},
	{Name: "Chirag Patel", Email: strPtr("chirag@example.com"), CollegeID: idPtr(2)},
	{Name: "Deepa Rao", Email: strPtr("deepa@example.com"), CollegeID: idPtr(2)},
	{Name: "Esha Singh", Email: strPtr("esha@example.com"), CollegeID: idPtr(3)},
	{Name: "Farhan Ahmed", Email: strPtr("farhan@example.com"), CollegeID: idPtr(1)},
	{Name: "Gita Sharma", Email: strPtr("gita@example.com"), CollegeID: idPtr(3)},
}

var events = []models.Event{
	{Name: "Hackathon 2025", Description: strPtr("24-hr coding hackathon"), Type: strPtr("Hackathon"), CollegeID: idPtr(1), StartDate: strPtr("2025-09-10"), EndDate: strPtr("2025-09-11")},
	{Name: "AI Workshop", Description: strPtr("Intro to AI tools"), Type: strPtr("Workshop"), CollegeID: idPtr(1), StartDate: strPtr("2025-08-25"), EndDate: strPtr("2025-08-25")},
	{Name: "Tech Talk: Cloud", Description: strPtr("Cloud trending topics"), Type: strPtr("Seminar"), CollegeID: idPtr(2), StartDate: strPtr("2025-09-05"), EndDate: strPtr("2025-09-05")},
	{Name: "Cultural Fest", Description: strPtr("Inter-college fest"), Type: strPtr("Fest"), CollegeID: idPtr(3), StartDate: strPtr("2025-10-20"), EndDate: strPtr("2025-10-21")},
}

// registrations are (student position, event position), both 1-based.
var registrations = [][2]int{
	{1, 1}, {2, 1}, {4, 1}, {6, 1},
	{1, 2}, {3, 2},
	{3, 3}, {5, 3}, {6, 3},
	{5, 4}, {7, 4},
}

// Summary counts the rows written by Load.
type Summary struct {
	Colleges      int
	Students      int
	Events        int
	Registrations int
	Attendance    int
	Feedback      int
}

// Reset drops and recreates every table.
func Reset(ctx context.Context, db *sqlx.DB) error {
	return database.ResetSchema(ctx, db)
}

// Load destroys existing data and inserts the sample campus dataset.
func Load(ctx context.Context, db *sqlx.DB, logr *zap.Logger) (*Summary, error) {
	if logr == nil {
		logr = zap.NewNop()
	}
	if err := Reset(ctx, db); err != nil {
		return nil, err
	}
	logr.Info("schema created")

	summary := &Summary{}

	collegeRepo := repository.NewCollegeRepository(db)
	collegeIDs := make([]int64, 0, len(colleges))
	for _, name := range colleges {
		college := &models.College{Name: name}
		if err := collegeRepo.Create(ctx, college); err != nil {
			return nil, fmt.Errorf("seed colleges: %w", err)
		}
		collegeIDs = append(collegeIDs, college.ID)
		summary.Colleges++
	}

	studentRepo := repository.NewStudentRepository(db)
	studentIDs := make([]int64, 0, len(students))
	for _, s := range students {
		student := s
		student.CollegeID = idPtr(collegeIDs[*s.CollegeID-1])
		if err := studentRepo.Create(ctx, &student); err != nil {
			return nil, fmt.Errorf("seed students: %w", err)
		}
		studentIDs = append(studentIDs, student.ID)
		summary.Students++
	}

	eventRepo := repository.NewEventRepository(db)
	eventIDs := make([]int64, 0, len(events))
	for _, e := range events {
		event := e
		event.CollegeID = idPtr(collegeIDs[*e.CollegeID-1])
		if err := eventRepo.Create(ctx, &event); err != nil {
			return nil, fmt.Errorf("seed events: %w", err)
		}
		eventIDs = append(eventIDs, event.ID)
		summary.Events++
	}

	registrationRepo := repository.NewRegistrationRepository(db)
	registrationIDs := make([]int64, 0, len(registrations))
	for _, reg := range registrations {
		result, err := registrationRepo.Create(ctx, studentIDs[reg[0]-1], eventIDs[reg[1]-1])
		if err != nil {
			return nil, fmt.Errorf("seed registrations: %w", err)
		}
		registrationIDs = append(registrationIDs, result.ID)
		summary.Registrations++
	}

	attendanceRepo := repository.NewAttendanceRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)
	for i, registrationID := range registrationIDs[:sampledRegistrations] {
		status, rating, comment := "absent", 3, "Good"
		if i%2 == 0 {
			status, rating, comment = models.AttendanceStatusPresent, 4, "Great event"
		}
		if _, err := attendanceRepo.Upsert(ctx, registrationID, status); err != nil {
			return nil, fmt.Errorf("seed attendance: %w", err)
		}
		summary.Attendance++
		if _, err := feedbackRepo.Upsert(ctx, registrationID, rating, comment); err != nil {
			return nil, fmt.Errorf("seed feedback: %w", err)
		}
		summary.Feedback++
	}

	logr.Info("sample data inserted",
		zap.Int("colleges", summary.Colleges),
		zap.Int("students", summary.Students),
		zap.Int("events", summary.Events),
		zap.Int("registrations", summary.Registrations),
		zap.Int("attendance", summary.Attendance),
		zap.Int("feedback", summary.Feedback),
	)
	return summary, nil
}

func strPtr(s string) *string { return &s }

func idPtr(v int64) *int64 { return &v }
