// Package export renders bookings and study sessions as spreadsheet-friendly CSV.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/m04kA/EconLab-ReservationService/internal/domain"
	"github.com/m04kA/EconLab-ReservationService/pkg/masking"
)

// BOM marks the file as UTF-8 for spreadsheet apps.
const BOM = "\uFEFF"

const timestampFormat = "2006-01-02 15:04"

var (
	bookingHeader = []string{"Date", "PC", "Slot", "Name", "Student ID", "Phone", "Dept", "Created At"}
	sessionHeader = []string{"Room", "Leader", "Student ID", "Dept", "Phone", "Party Size", "Members", "Start", "End"}
)

// WriteBookingsCSV writes bookings ordered by date, seat and slot,
// followed by a per-date summary of bookings per slot.
func WriteBookingsCSV(w io.Writer, bookings []*domain.Booking, loc *time.Location) error {
	if loc == nil {
		loc = time.Local
	}

	sorted := append([]*domain.Booking(nil), bookings...)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		if a.SeatNumber != b.SeatNumber {
			return a.SeatNumber < b.SeatNumber
		}
		return a.SlotHour < b.SlotHour
	})

	if _, err := io.WriteString(w, BOM); err != nil {
		return fmt.Errorf("export: write bom: %w", err)
	}

	cw := csv.NewWriter(w)
	records := [][]string{bookingHeader}
	for _, b := range sorted {
		records = append(records, []string{
			b.Date,
			fmt.Sprint(b.SeatNumber),
			b.SlotHour.Label(),
			b.Name,
			b.StudentID,
			masking.FormatPhone(b.Phone),
			b.Department,
			b.CreatedAt.In(loc).Format(timestampFormat),
		})
	}

	records = append(records, []string{})
	records = append(records, summaryHeader())
	records = append(records, summaryRows(sorted)...)

	if err := cw.WriteAll(records); err != nil {
		return fmt.Errorf("export: write bookings: %w", err)
	}
	return nil
}

// WriteSessionsCSV writes study sessions ordered by start time.
func WriteSessionsCSV(w io.Writer, sessions []*domain.StudySession, loc *time.Location) error {
	if loc == nil {
		loc = time.Local
	}

	sorted := append([]*domain.StudySession(nil), sessions...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartAt.Before(sorted[j].StartAt)
	})

	if _, err := io.WriteString(w, BOM); err != nil {
		return fmt.Errorf("export: write bom: %w", err)
	}

	cw := csv.NewWriter(w)
	records := [][]string{sessionHeader}
	for _, s := range sorted {
		members := make([]string, 0, len(s.Others))
		for _, m := range s.Others {
			members = append(members, fmt.Sprintf("%s(%s)", m.Name, m.StudentID))
		}
		records = append(records, []string{
			string(s.Room),
			s.Leader.Name,
			s.Leader.StudentID,
			s.Leader.Department,
			masking.FormatPhone(s.Leader.Phone),
			fmt.Sprint(s.PartySize()),
			strings.Join(members, "; "),
			s.StartAt.In(loc).Format(timestampFormat),
			s.EndAt.In(loc).Format(timestampFormat),
		})
	}

	if err := cw.WriteAll(records); err != nil {
		return fmt.Errorf("export: write sessions: %w", err)
	}
	return nil
}

func summaryHeader() []string {
	header := []string{"Date"}
	for _, slot := range domain.SlotHours {
		header = append(header, fmt.Sprintf("%02d:00", int(slot)))
	}
	return append(header, "Total")
}

// summaryRows expects bookings sorted by date.
func summaryRows(bookings []*domain.Booking) [][]string {
	var (
		rows   [][]string
		date   string
		counts map[domain.SlotHour]int
		total  int
	)

	flush := func() {
		if date == "" {
			return
		}
		row := []string{date}
		for _, slot := range domain.SlotHours {
			row = append(row, fmt.Sprint(counts[slot]))
		}
		rows = append(rows, append(row, fmt.Sprint(total)))
	}

	for _, b := range bookings {
		if b.Date != date {
			flush()
			date, counts, total = b.Date, make(map[domain.SlotHour]int), 0
		}
		counts[b.SlotHour]++
		total++
	}
	flush()

	return rows
}
