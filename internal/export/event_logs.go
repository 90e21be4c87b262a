package export

import (
	"github.com/SscSPs/product_pricing_app/internal/core/domain"
)

// EventLogsSheet is the sheet name of the event logs workbook.
const EventLogsSheet = "Event Logs"

var eventLogHeaders = []string{
	"ID", "User Name", "User Email", "Event Type", "Resource Type", "Resource ID",
	"Endpoint", "Method", "IP Address", "User Agent", "Created At",
}

// EventLogs renders audit entries in the order given. Entries without an actor
// get empty user columns.
func EventLogs(logs []domain.EventLog) (*Workbook, error) {
	wb, err := newWorkbook(EventLogsSheet, eventLogHeaders, []float64{8, 20, 28, 12, 16, 12, 40, 10, 16, 40, 20})
	if err != nil {
		return nil, err
	}

	for i, l := range logs {
		userName, userEmail := "", ""
		if l.User != nil {
			userName, userEmail = l.User.Name, l.User.Email
		}
		row := []any{
			l.EventLogID,
			userName,
			userEmail,
			string(l.EventType),
			l.ResourceType,
			optionalInt(l.ResourceID),
			l.Endpoint,
			l.Method,
			optionalString(l.IPAddress),
			optionalString(l.UserAgent),
			l.CreatedAt.Format(cellTimeLayout),
		}
		if err := wb.appendRow(i+1, row); err != nil {
			_ = wb.Close()
			return nil, err
		}
	}
	return wb, nil
}
